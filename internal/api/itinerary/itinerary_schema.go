package itinerary

import (
	"fmt"

	"google.golang.org/genai"

	"github.com/FACorreiaa/go-travel-itinerary-ai/internal/types"
)

const (
	MinSubSpots = 3
	MaxSubSpots = 6
)

// SchemaFor returns the response schema the backend must conform to for kind.
// Every call builds a fresh tree, so callers may not corrupt the registry.
func SchemaFor(kind Kind) *genai.Schema {
	switch kind {
	case KindItinerary:
		return itineraryResponseSchema()
	case KindSpotDetail:
		return subSpotListSchema()
	case KindCreativeQuery:
		return creativeSolutionSchema()
	default:
		panic(fmt.Sprintf("itinerary: no schema for kind %q", kind))
	}
}

func stringField(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

func transportLegSchema() *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: "How to get from this activity to the next one of the same day",
		Nullable:    genai.Ptr(true),
		Properties: map[string]*genai.Schema{
			"mode":        stringField("Transport mode (Taxi, Walk, Metro)"),
			"duration":    stringField("Estimated duration (e.g. 15 mins)"),
			"cost":        stringField("Estimated cost (e.g. 20 CNY)"),
			"description": stringField("Brief details (e.g. Line 1 to X Station)"),
		},
		PropertyOrdering: []string{"mode", "duration", "cost", "description"},
	}
}

func activitySchema() *genai.Schema {
	categories := make([]string, 0, len(types.Categories()))
	for _, c := range types.Categories() {
		categories = append(categories, string(c))
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":                  stringField("Unique UUID"),
			"name":                stringField(""),
			"category":            {Type: genai.TypeString, Format: "enum", Enum: categories},
			"description":         stringField("Brief overview"),
			"recommendedDuration": stringField(""),
			"cost":                stringField("Estimated cost (e.g. 150 CNY Ticket or 80 CNY Meal)"),
			"transportToNext":     transportLegSchema(),
		},
		PropertyOrdering: []string{"id", "name", "category", "description", "recommendedDuration", "cost", "transportToNext"},
		Required:         []string{"id", "name", "category", "description", "cost"},
	}
}

func accommodationSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":            stringField(""),
			"description":     stringField(""),
			"cost":            stringField("Cost per night (e.g. 600 CNY)"),
			"locationContext": stringField("Area (e.g. Near West Lake)"),
		},
		PropertyOrdering: []string{"name", "description", "cost", "locationContext"},
		Required:         []string{"name", "cost", "description"},
	}
}

func dayPlanSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"dayNumber":       {Type: genai.TypeInteger},
			"date":            stringField(""),
			"weatherForecast": stringField(""),
			"weatherAdvice":   stringField("Clothing advice for the forecast"),
			"activities":      {Type: genai.TypeArray, Items: activitySchema()},
			"accommodation":   accommodationSchema(),
		},
		PropertyOrdering: []string{"dayNumber", "date", "weatherForecast", "weatherAdvice", "activities", "accommodation"},
		Required:         []string{"dayNumber", "activities", "weatherForecast", "accommodation"},
	}
}

func itineraryResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"tripTitle": stringField(""),
			"summary":   stringField(""),
			"days":      {Type: genai.TypeArray, Items: dayPlanSchema()},
		},
		PropertyOrdering: []string{"tripTitle", "summary", "days"},
		Required:         []string{"tripTitle", "days"},
	}
}

func subSpotListSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeArray,
		MinItems: genai.Ptr[int64](MinSubSpots),
		MaxItems: genai.Ptr[int64](MaxSubSpots),
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":          stringField(""),
				"description":   stringField("Immersive narration text"),
				"bestPhotoSpot": stringField(""),
			},
			PropertyOrdering: []string{"name", "description", "bestPhotoSpot"},
			Required:         []string{"name", "description"},
		},
	}
}

func creativeSolutionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":   stringField(""),
			"content": stringField("Detailed Markdown-formatted answer"),
		},
		PropertyOrdering: []string{"title", "content"},
		Required:         []string{"title", "content"},
	}
}
