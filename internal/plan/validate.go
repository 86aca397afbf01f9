// README: Decoding and schema validation of raw AI responses into TravelPlan.
package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DecodeError reports response text that could not be parsed as JSON at all.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("travel plan response is not valid JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ValidationError reports a document that parsed as JSON but does not match
// the TravelPlan schema. Field is a path like "daily_plans[2].date".
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid travel plan: %s: %s", e.Field, e.Reason)
}

// requiredFields are the top-level keys a plan document must carry.
var requiredFields = []string{
	"from_destination",
	"to_destination",
	"travel_dates",
	"travel_party",
	"daily_plans",
	"estimated_total_budget",
	"packing_suggestions",
	"travel_tips",
}

// Decode parses raw response text and validates it against the TravelPlan
// schema. It returns either a fully-populated plan or an error; the aggregate
// is never partially constructed.
func Decode(raw []byte) (*TravelPlan, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &DecodeError{Err: err}
	}
	for _, name := range requiredFields {
		if _, ok := doc[name]; !ok {
			return nil, &ValidationError{Field: name, Reason: "missing"}
		}
	}

	var p TravelPlan
	if err := json.Unmarshal(raw, &p); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ValidationError{
				Field:  typeErr.Field,
				Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			}
		}
		return nil, &DecodeError{Err: err}
	}

	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *TravelPlan) validate() error {
	if err := p.FromDestination.validate("from_destination"); err != nil {
		return err
	}
	if err := p.ToDestination.validate("to_destination"); err != nil {
		return err
	}
	if err := p.TravelDates.validate("travel_dates"); err != nil {
		return err
	}
	if err := p.TravelParty.validate("travel_party"); err != nil {
		return err
	}
	for i, dp := range p.DailyPlans {
		if err := dp.validate(fmt.Sprintf("daily_plans[%d]", i), i+1); err != nil {
			return err
		}
	}
	if p.EstimatedTotalBudget == "" {
		return &ValidationError{Field: "estimated_total_budget", Reason: "empty"}
	}
	return nil
}

func (d Destination) validate(path string) error {
	if d.City == "" {
		return &ValidationError{Field: path + ".city", Reason: "empty"}
	}
	if d.Country == "" {
		return &ValidationError{Field: path + ".country", Reason: "empty"}
	}
	if d.Timezone == "" {
		return &ValidationError{Field: path + ".timezone", Reason: "empty"}
	}
	if d.LocalCurrency == "" {
		return &ValidationError{Field: path + ".local_currency", Reason: "empty"}
	}
	if len(d.BestAreasToStay) == 0 {
		return &ValidationError{Field: path + ".best_areas_to_stay", Reason: "empty"}
	}
	for i, area := range d.BestAreasToStay {
		if area == "" {
			return &ValidationError{Field: fmt.Sprintf("%s.best_areas_to_stay[%d]", path, i), Reason: "empty"}
		}
	}
	return nil
}

func (d TravelDates) validate(path string) error {
	departure, err := time.Parse(dateLayout, d.DepartureDate)
	if err != nil {
		return &ValidationError{Field: path + ".departure_date", Reason: "not a YYYY-MM-DD date"}
	}
	ret, err := time.Parse(dateLayout, d.ReturnDate)
	if err != nil {
		return &ValidationError{Field: path + ".return_date", Reason: "not a YYYY-MM-DD date"}
	}
	if !ret.After(departure) {
		return &ValidationError{Field: path + ".return_date", Reason: "not after departure_date"}
	}
	if d.DurationDays <= 0 {
		return &ValidationError{Field: path + ".duration_days", Reason: "not positive"}
	}
	// duration_days vs the actual date span is advisory and not rejected here.
	return nil
}

func (t TravelParty) validate(path string) error {
	if t.Adults < 0 {
		return &ValidationError{Field: path + ".adults", Reason: "negative"}
	}
	if t.Children < 0 {
		return &ValidationError{Field: path + ".children", Reason: "negative"}
	}
	for i, age := range t.ChildrenAges {
		if age < 0 {
			return &ValidationError{Field: fmt.Sprintf("%s.children_ages[%d]", path, i), Reason: "negative"}
		}
	}
	return nil
}

func (d DailyPlan) validate(path string, wantDay int) error {
	if d.Day != wantDay {
		return &ValidationError{Field: path + ".day", Reason: fmt.Sprintf("expected day %d, got %d", wantDay, d.Day)}
	}
	if _, err := time.Parse(dateLayout, d.Date); err != nil {
		return &ValidationError{Field: path + ".date", Reason: "not a YYYY-MM-DD date"}
	}
	for i, a := range d.Activities {
		if err := a.validate(fmt.Sprintf("%s.activities[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (a Activity) validate(path string) error {
	if a.Name == "" {
		return &ValidationError{Field: path + ".name", Reason: "empty"}
	}
	if a.DurationHours <= 0 {
		return &ValidationError{Field: path + ".duration_hours", Reason: "not positive"}
	}
	return nil
}
