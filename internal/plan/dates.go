// README: Travel date arithmetic for building queries and defaults.
package plan

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// defaultDepartureLeadDays is how far out the trip starts when the caller
// gives no departure date.
const defaultDepartureLeadDays = 14

// ComputeTravelDates builds a TravelDates value from an optional departure
// date and a trip length. An empty departure defaults to
// defaultDepartureLeadDays after now.
func ComputeTravelDates(departure string, durationDays int, now time.Time) (TravelDates, error) {
	if durationDays <= 0 {
		return TravelDates{}, fmt.Errorf("duration must be positive, got %d", durationDays)
	}

	var start time.Time
	if departure == "" {
		start = now.AddDate(0, 0, defaultDepartureLeadDays)
	} else {
		var err error
		start, err = time.Parse(dateLayout, departure)
		if err != nil {
			return TravelDates{}, fmt.Errorf("parse departure date %q: %w", departure, err)
		}
	}

	return TravelDates{
		DepartureDate: start.Format(dateLayout),
		ReturnDate:    start.AddDate(0, 0, durationDays).Format(dateLayout),
		DurationDays:  durationDays,
	}, nil
}
