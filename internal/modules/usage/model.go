// README: Usage module errors and limits.
package usage

import (
	"errors"
	"time"
)

// ErrQuotaExceeded is returned when a user has no plan requests remaining for
// the current month.
var ErrQuotaExceeded = errors.New("monthly plan quota exhausted")

// ErrBurstLimited is returned when a user exceeds the short-window request limit.
var ErrBurstLimited = errors.New("too many requests")

// burstWindow is the sliding window for the Redis burst counter.
const burstWindow = time.Minute
