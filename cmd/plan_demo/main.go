// README: CLI demo; runs one travel-plan query end-to-end and prints the result.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"tripsmith/internal/ai"
	"tripsmith/internal/plan"
	"tripsmith/internal/planner"
)

func main() {
	_ = godotenv.Load()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "GEMINI_API_KEY environment variable not set")
		os.Exit(1)
	}

	ctx := context.Background()
	client, err := ai.NewGeminiClient(ctx, apiKey, ai.DefaultOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize AI client: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	svc := planner.NewService(client)

	// No departure date: the trip defaults to two weeks out.
	dates, err := plan.ComputeTravelDates("", 5, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to compute travel dates: %v\n", err)
		os.Exit(1)
	}

	query := fmt.Sprintf(
		"Plan a %d-day trip from Amsterdam to Lisbon departing %s and returning %s, for 2 adults and a 6-year-old. We enjoy food markets, museums, and short walks.",
		dates.DurationDays, dates.DepartureDate, dates.ReturnDate,
	)
	fmt.Printf("Query: %s\n\n", query)

	result, err := svc.GetTravelPlan(ctx, query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not generate travel plan: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render plan: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
