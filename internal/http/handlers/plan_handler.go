// README: Travel plan handler (quota-guarded AI planning).
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripsmith/internal/modules/usage"
	"tripsmith/internal/plan"
	"tripsmith/internal/planner"
)

// TravelPlanner produces a validated plan for a free-text query.
type TravelPlanner interface {
	GetTravelPlan(ctx context.Context, query string) (*plan.TravelPlan, error)
}

// TimezoneLookup resolves the expected IANA timezone for a destination.
// A nil TimezoneLookup disables the verification.
type TimezoneLookup interface {
	Lookup(ctx context.Context, city, country string) (string, error)
}

type PlanHandler struct {
	planner TravelPlanner
	usage   *usage.Service
	tz      TimezoneLookup
}

// NewPlanHandler wires the planner with optional usage accounting and
// timezone verification (either may be nil).
func NewPlanHandler(p TravelPlanner, usageSvc *usage.Service, tz TimezoneLookup) *PlanHandler {
	return &PlanHandler{planner: p, usage: usageSvc, tz: tz}
}

type createPlanReq struct {
	UID   string `json:"uid"`
	Query string `json:"query"`
}

// Create handles POST /api/travel-plans.
func (h *PlanHandler) Create(c *gin.Context) {
	var req createPlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.UID = strings.TrimSpace(req.UID)
	req.Query = strings.TrimSpace(req.Query)
	if req.UID == "" || req.Query == "" {
		writeError(c, http.StatusBadRequest, "missing uid or query")
		return
	}
	if !isValidID(req.UID) {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}

	// Generation can take a while: one call per attempt plus backoff.
	ctx, cancel := context.WithTimeout(c.Request.Context(), 90*time.Second)
	defer cancel()

	if h.usage != nil {
		if err := h.usage.Allow(ctx, req.UID); err != nil {
			switch {
			case errors.Is(err, usage.ErrQuotaExceeded), errors.Is(err, usage.ErrBurstLimited):
				writeError(c, http.StatusTooManyRequests, err.Error())
			default:
				writeError(c, http.StatusInternalServerError, "internal error")
			}
			return
		}
	}

	start := time.Now()
	p, err := h.planner.GetTravelPlan(ctx, req.Query)
	if err != nil {
		var exhausted *planner.ExhaustedRetriesError
		if errors.As(err, &exhausted) {
			writeError(c, http.StatusBadGateway, exhausted.Error())
		} else {
			writeError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}

	resp := gin.H{"plan": p}
	if h.tz != nil {
		if tzID, err := h.tz.Lookup(ctx, p.ToDestination.City, p.ToDestination.Country); err == nil {
			resp["timezone_verified"] = tzID == p.ToDestination.Timezone
		} else {
			log.Printf("timezone verification skipped: %v", err)
		}
	}

	if h.usage != nil {
		planJSON, _ := json.Marshal(p)
		if err := h.usage.RecordPlan(ctx, req.UID, req.Query, planJSON, time.Since(start)); err != nil {
			// History is best effort; the plan is already generated.
			log.Printf("record plan history: %v", err)
		}
	}

	writeJSON(c, http.StatusOK, resp)
}
