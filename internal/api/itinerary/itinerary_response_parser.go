package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/FACorreiaa/go-travel-itinerary-ai/internal/types"
)

// cleanJSON drops Markdown code fences some models wrap around JSON even in
// JSON response mode.
func cleanJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func decode[T any](kind Kind, raw string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(cleanJSON(raw)), &out); err != nil {
		return out, newMalformedResponse(kind, raw, fmt.Errorf("failed to parse %s JSON: %w", kind, err))
	}
	return out, nil
}

// ParseItinerary decodes and validates an itinerary payload. Every violated
// invariant is reported, not only the first one.
func ParseItinerary(raw string) (*types.ItineraryResult, error) {
	result, err := decode[types.ItineraryResult](KindItinerary, raw)
	if err != nil {
		return nil, err
	}
	if violations := validateItinerary(&result); len(violations) > 0 {
		return nil, newMalformedResponse(KindItinerary, raw, nil, violations...)
	}
	return &result, nil
}

func ParseSubSpots(raw string) ([]types.SubSpot, error) {
	spots, err := decode[[]types.SubSpot](KindSpotDetail, raw)
	if err != nil {
		return nil, err
	}
	if spots == nil {
		spots = []types.SubSpot{}
	}
	var violations []string
	for i, s := range spots {
		violations = requireText(violations, fmt.Sprintf("[%d].name", i), s.Name)
		violations = requireText(violations, fmt.Sprintf("[%d].description", i), s.Description)
	}
	if len(violations) > 0 {
		return nil, newMalformedResponse(KindSpotDetail, raw, nil, violations...)
	}
	return spots, nil
}

func ParseCreativeSolution(raw string) (types.CreativeSolution, error) {
	solution, err := decode[types.CreativeSolution](KindCreativeQuery, raw)
	if err != nil {
		return types.CreativeSolution{}, err
	}
	var violations []string
	violations = requireText(violations, "title", solution.Title)
	violations = requireText(violations, "content", solution.Content)
	if len(violations) > 0 {
		return types.CreativeSolution{}, newMalformedResponse(KindCreativeQuery, raw, nil, violations...)
	}
	return solution, nil
}

func requireText(violations []string, field, value string) []string {
	if strings.TrimSpace(value) == "" {
		return append(violations, field+" is required")
	}
	return violations
}

// validateItinerary checks the invariants the schema alone cannot enforce.
// A transport leg on the last activity of a day has no next activity to
// point to and is dropped.
func validateItinerary(r *types.ItineraryResult) []string {
	var violations []string
	violations = requireText(violations, "tripTitle", r.TripTitle)
	if len(r.Days) == 0 {
		violations = append(violations, "days must contain at least one day")
	}

	seenIDs := make(map[string]string)
	for i := range r.Days {
		day := &r.Days[i]
		prefix := fmt.Sprintf("days[%d]", i)

		if day.DayNumber != i+1 {
			violations = append(violations, fmt.Sprintf("%s.dayNumber is %d, want %d", prefix, day.DayNumber, i+1))
		}
		violations = requireText(violations, prefix+".weatherForecast", day.WeatherForecast)
		if day.Activities == nil {
			violations = append(violations, prefix+".activities is required")
		}

		for j := range day.Activities {
			a := &day.Activities[j]
			ap := fmt.Sprintf("%s.activities[%d]", prefix, j)
			violations = requireText(violations, ap+".id", a.ID)
			violations = requireText(violations, ap+".name", a.Name)
			violations = requireText(violations, ap+".description", a.Description)
			violations = requireText(violations, ap+".cost", a.Cost)
			if !a.Category.Valid() {
				violations = append(violations, fmt.Sprintf("%s.category %q is not one of %v", ap, a.Category, types.Categories()))
			}
			if a.ID != "" {
				if first, dup := seenIDs[a.ID]; dup {
					violations = append(violations, fmt.Sprintf("%s.id %q duplicates %s.id", ap, a.ID, first))
				} else {
					seenIDs[a.ID] = ap
				}
			}
			if j == len(day.Activities)-1 {
				a.TransportToNext = nil
			}
		}

		violations = requireText(violations, prefix+".accommodation.name", day.Accommodation.Name)
		violations = requireText(violations, prefix+".accommodation.cost", day.Accommodation.Cost)
		violations = requireText(violations, prefix+".accommodation.description", day.Accommodation.Description)
	}
	return violations
}
