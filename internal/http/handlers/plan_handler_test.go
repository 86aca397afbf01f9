// README: Travel plan handler tests with a stubbed planner.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"tripsmith/internal/http/handlers"
	"tripsmith/internal/plan"
	"tripsmith/internal/planner"
)

// stubPlanner is a test double for handlers.TravelPlanner.
type stubPlanner struct {
	plan *plan.TravelPlan
	err  error
}

func (s *stubPlanner) GetTravelPlan(_ context.Context, _ string) (*plan.TravelPlan, error) {
	return s.plan, s.err
}

// stubTimezone is a test double for handlers.TimezoneLookup.
type stubTimezone struct {
	tz  string
	err error
}

func (s *stubTimezone) Lookup(_ context.Context, _, _ string) (string, error) {
	return s.tz, s.err
}

func testPlan() *plan.TravelPlan {
	return &plan.TravelPlan{
		FromDestination: plan.Destination{
			City: "Amsterdam", Country: "Netherlands", Timezone: "Europe/Amsterdam",
			LocalCurrency: "EUR", BestAreasToStay: []string{"Jordaan"},
		},
		ToDestination: plan.Destination{
			City: "Lisbon", Country: "Portugal", Timezone: "Europe/Lisbon",
			LocalCurrency: "EUR", BestAreasToStay: []string{"Alfama"},
		},
		TravelDates: plan.TravelDates{
			DepartureDate: "2025-06-01", ReturnDate: "2025-06-02", DurationDays: 1,
		},
		TravelParty: plan.TravelParty{Adults: 2},
		DailyPlans: []plan.DailyPlan{
			{Day: 1, Date: "2025-06-01", Accommodation: "Hotel in Baixa", Transportation: "walking"},
		},
		EstimatedTotalBudget: "€400",
		PackingSuggestions:   []string{"walking shoes"},
		TravelTips:           []string{"carry water"},
	}
}

// buildTestRouter wires a minimal Gin engine with the plan handler. Usage
// accounting is nil so no database is needed.
func buildTestRouter(p handlers.TravelPlanner, tz handlers.TimezoneLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewPlanHandler(p, nil, tz)
	r.POST("/api/travel-plans", h.Create)
	return r
}

func doRequest(r *gin.Engine, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/travel-plans", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreate_Success(t *testing.T) {
	r := buildTestRouter(&stubPlanner{plan: testPlan()}, nil)
	w := doRequest(r, map[string]any{"uid": "user123", "query": "1 day in Lisbon"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Plan *plan.TravelPlan `json:"plan"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Plan == nil || resp.Plan.ToDestination.City != "Lisbon" {
		t.Errorf("response plan = %+v", resp.Plan)
	}
	if strings.Contains(w.Body.String(), "timezone_verified") {
		t.Error("timezone_verified present without a lookup configured")
	}
}

func TestCreate_TimezoneVerified(t *testing.T) {
	r := buildTestRouter(&stubPlanner{plan: testPlan()}, &stubTimezone{tz: "Europe/Lisbon"})
	w := doRequest(r, map[string]any{"uid": "user123", "query": "1 day in Lisbon"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(resp["timezone_verified"]) != "true" {
		t.Errorf("timezone_verified = %s, want true", resp["timezone_verified"])
	}
}

func TestCreate_TimezoneLookupFailureIgnored(t *testing.T) {
	r := buildTestRouter(&stubPlanner{plan: testPlan()}, &stubTimezone{err: errors.New("maps down")})
	w := doRequest(r, map[string]any{"uid": "user123", "query": "1 day in Lisbon"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "timezone_verified") {
		t.Error("timezone_verified present despite lookup failure")
	}
}

func TestCreate_ExhaustedRetries(t *testing.T) {
	stub := &stubPlanner{err: &planner.ExhaustedRetriesError{Attempts: 3, LastErr: errors.New("upstream down")}}
	r := buildTestRouter(stub, nil)
	w := doRequest(r, map[string]any{"uid": "user123", "query": "1 day in Lisbon"})

	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}
}

func TestCreate_PlannerInternalError(t *testing.T) {
	r := buildTestRouter(&stubPlanner{err: errors.New("boom")}, nil)
	w := doRequest(r, map[string]any{"uid": "user123", "query": "1 day in Lisbon"})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

func TestCreate_BadRequests(t *testing.T) {
	r := buildTestRouter(&stubPlanner{plan: testPlan()}, nil)

	tests := []struct {
		name string
		body any
	}{
		{"invalid json", "{not json"},
		{"missing uid", map[string]any{"query": "1 day in Lisbon"}},
		{"missing query", map[string]any{"uid": "user123"}},
		{"blank query", map[string]any{"uid": "user123", "query": "   "}},
		{"invalid uid", map[string]any{"uid": "user 123!", "query": "1 day in Lisbon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}
