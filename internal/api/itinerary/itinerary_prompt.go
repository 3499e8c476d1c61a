package itinerary

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/FACorreiaa/go-travel-itinerary-ai/internal/types"
)

const (
	directiveChinese = "Output strictly in Simplified Chinese."
	directiveEnglish = "Output strictly in English."

	directivePaceBusy     = "Pace: Busy (Special Forces Style). Start day at 6:00 AM. Maximize attractions. End late."
	directivePaceModerate = "Pace: Moderate. Start day at 9:00 AM. Balanced walking and resting."
	directivePaceLazy     = "Pace: Lazy/Relaxed. Start day at 10:00 AM. Minimal walking. Leisurely meals."

	// MustEatListName is the curated guide meal recommendations are drawn from
	// when the food interest is selected.
	MustEatListName = "Must-Eat List"
	directiveFood   = "CRITICAL: For meals, you MUST recommend restaurants from the 'Dianping " + MustEatListName +
		"' (大众点评必吃榜) or famous local snack streets. Mention '" + MustEatListName + "' in the description if applicable."
)

var itineraryRequirements = []string{
	"Weather: Consider historical/forecast weather. Give clothing advice.",
	"Route: Connect locations logically.",
	"Cost: You MUST estimate the specific cost for EACH activity (ticket price) and meal (avg per person). Also estimate transport costs.",
	"Accommodation: You MUST recommend a specific hotel/hostel for EACH night based on the budget. Include the estimated cost per night.",
	"Transport: Provide 'transportToNext' detailing how to get to the *next* activity (Mode, Duration, Cost). Leave it empty for the last activity of the day.",
}

// Request is a composed instruction together with the schema its answer
// must follow.
type Request struct {
	Kind        Kind
	Instruction string
	Schema      *genai.Schema
}

// BuildRequest composes the instruction for payload. It performs no I/O and
// returns identical output for identical input.
func BuildRequest(payload Payload) (Request, error) {
	lang, err := languageDirective(payload.language())
	if err != nil {
		return Request{}, err
	}

	var instruction string
	switch p := payload.(type) {
	case ItineraryPayload:
		instruction = itineraryPrompt(p.Input, lang)
	case SpotDetailPayload:
		instruction = spotDetailPrompt(p.LocationName, p.Destination, lang)
	case CreativeQueryPayload:
		instruction = creativeQueryPrompt(p.Query, p.Destination, lang)
	default:
		return Request{}, fmt.Errorf("unknown payload type %T", payload)
	}

	return Request{
		Kind:        payload.Kind(),
		Instruction: instruction,
		Schema:      SchemaFor(payload.Kind()),
	}, nil
}

func languageDirective(lang types.Language) (string, error) {
	switch lang {
	case types.LanguageChinese:
		return directiveChinese, nil
	case types.LanguageEnglish:
		return directiveEnglish, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
}

func paceDirective(pace types.Pace) string {
	switch types.ParsePace(string(pace)) {
	case types.PaceBusy:
		return directivePaceBusy
	case types.PaceLazy:
		return directivePaceLazy
	case types.PaceModerate:
		return directivePaceModerate
	default:
		return directivePaceModerate
	}
}

func interestDirective(interests []string) string {
	if len(interests) == 0 {
		return ""
	}
	return fmt.Sprintf("Prioritize these interests: %s.", strings.Join(interests, ", "))
}

func foodDirective(in types.TravelInput) string {
	if !in.HasInterest(types.FoodInterest) {
		return ""
	}
	return directiveFood
}

func itineraryPrompt(in types.TravelInput, lang string) string {
	var contextLines []string
	for _, line := range []string{lang, paceDirective(in.Pace), interestDirective(in.Interests), foodDirective(in)} {
		if line != "" {
			contextLines = append(contextLines, "    "+line)
		}
	}

	requirements := make([]string, 0, len(itineraryRequirements))
	for i, r := range itineraryRequirements {
		requirements = append(requirements, fmt.Sprintf("    %d. %s", i+1, r))
	}

	return fmt.Sprintf(`
    Plan a detailed travel itinerary for %s from %s to %s with a budget of %s (excluding arrival tickets).

    Context:
%s

    Requirements:
%s

    Return a JSON object following the schema.
`, in.Destination, in.StartDate, in.EndDate, in.Budget,
		strings.Join(contextLines, "\n"), strings.Join(requirements, "\n"))
}

func spotDetailPrompt(locationName, destination, lang string) string {
	return fmt.Sprintf(`
    The user is currently at "%s" in "%s".
    Act as a professional, engaging tour guide.
    Break this location down into %d-%d specific "Sub-spots" or key views.
    %s

    For each sub-spot:
    1. Provide a name.
    2. Write an immersive, emotionally resonant narration script (like an audio guide) explaining the history, culture, or beauty.
    3. Suggest a best photo angle.

    Return valid JSON.
`, locationName, destination, MinSubSpots, MaxSubSpots, lang)
}

func creativeQueryPrompt(query, destination, lang string) string {
	return fmt.Sprintf(`
    Context: A user is traveling to %s.
    User Request: %s
    %s

    Provide a creative, practical solution.
    Return JSON.
`, destination, query, lang)
}
