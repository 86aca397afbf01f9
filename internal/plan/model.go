// README: Travel plan aggregate returned by the AI planner.
package plan

// Destination describes one end of the trip.
type Destination struct {
	City            string   `json:"city"`
	Country         string   `json:"country"`
	Timezone        string   `json:"timezone"`
	LocalCurrency   string   `json:"local_currency"`
	BestAreasToStay []string `json:"best_areas_to_stay"`
}

// TravelDates holds the trip window as ISO dates (YYYY-MM-DD).
type TravelDates struct {
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
	DurationDays  int    `json:"duration_days"`
}

// TravelParty describes who is travelling.
// ChildrenAges is advisory: its length is not cross-checked against Children.
type TravelParty struct {
	Adults       int   `json:"adults"`
	Children     int   `json:"children"`
	ChildrenAges []int `json:"children_ages,omitempty"`
}

// Activity is a single planned activity. EstimatedCost is free text
// (the model quotes costs in local currency, e.g. "€20 per person").
type Activity struct {
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	SuitableForChildren bool    `json:"suitable_for_children"`
	DurationHours       float64 `json:"duration_hours"`
	EstimatedCost       string  `json:"estimated_cost"`
}

// DailyPlan is one day of the itinerary. Day numbers run 1..n in order.
type DailyPlan struct {
	Day            int        `json:"day"`
	Date           string     `json:"date"`
	Activities     []Activity `json:"activities"`
	Accommodation  string     `json:"accommodation"`
	Transportation string     `json:"transportation"`
}

// TravelPlan is the root aggregate. Instances are built only by Decode and
// are never mutated afterwards.
type TravelPlan struct {
	FromDestination      Destination `json:"from_destination"`
	ToDestination        Destination `json:"to_destination"`
	TravelDates          TravelDates `json:"travel_dates"`
	TravelParty          TravelParty `json:"travel_party"`
	DailyPlans           []DailyPlan `json:"daily_plans"`
	EstimatedTotalBudget string      `json:"estimated_total_budget"`
	PackingSuggestions   []string    `json:"packing_suggestions"`
	TravelTips           []string    `json:"travel_tips"`
}
