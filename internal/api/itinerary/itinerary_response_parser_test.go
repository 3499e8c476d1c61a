package itinerary

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-travel-itinerary-ai/internal/types"
)

const validItineraryJSON = `{
  "tripTitle": "Hangzhou in Three Days",
  "summary": "Lakes, tea and food.",
  "days": [
    {
      "dayNumber": 1,
      "date": "2024-05-01",
      "weatherForecast": "Sunny, 25°C",
      "weatherAdvice": "Light clothes and sunscreen",
      "activities": [
        {"id": "a1", "name": "West Lake", "category": "Attraction", "description": "Walk the Su Causeway", "recommendedDuration": "3h", "cost": "Free",
         "transportToNext": {"mode": "Walk", "duration": "15 mins", "cost": "0 CNY", "description": "Along the lake"}},
        {"id": "a2", "name": "Lou Wai Lou", "category": "Restaurant", "description": "Must-Eat List classic", "cost": "150 CNY",
         "transportToNext": {"mode": "Taxi", "duration": "10 mins", "cost": "20 CNY", "description": "To the hotel"}}
      ],
      "accommodation": {"name": "Lakeview Inn", "description": "Quiet hotel", "cost": "600 CNY", "locationContext": "Near West Lake"}
    },
    {
      "dayNumber": 2,
      "date": "2024-05-02",
      "weatherForecast": "Rain",
      "activities": [
        {"id": "b1", "name": "Lingyin Temple", "category": "Attraction", "description": "Buddhist temple", "cost": "75 CNY",
         "transportToNext": {"mode": "Bus", "duration": "20 mins", "cost": "2 CNY", "description": "Line 7"}},
        {"id": "b2", "name": "Longjing Village", "category": "Shopping", "description": "Tea fields", "cost": "100 CNY"},
        {"id": "b3", "name": "Song Dynasty Show", "category": "Entertainment", "description": "Evening show", "cost": "300 CNY"}
      ],
      "accommodation": {"name": "Lakeview Inn", "description": "Quiet hotel", "cost": "600 CNY"}
    },
    {
      "dayNumber": 3,
      "date": "2024-05-03",
      "weatherForecast": "Cloudy",
      "activities": [],
      "accommodation": {"name": "Airport Hotel", "description": "Close to departures", "cost": "400 CNY"}
    }
  ]
}`

func TestParseItinerary_PreservesLengthsAndOrder(t *testing.T) {
	result, err := ParseItinerary(validItineraryJSON)
	require.NoError(t, err)

	assert.Equal(t, "Hangzhou in Three Days", result.TripTitle)
	require.Len(t, result.Days, 3)
	assert.Len(t, result.Days[0].Activities, 2)
	assert.Len(t, result.Days[1].Activities, 3)
	assert.Len(t, result.Days[2].Activities, 0)

	for i, day := range result.Days {
		assert.Equal(t, i+1, day.DayNumber)
	}
	assert.Equal(t, []string{"b1", "b2", "b3"}, []string{
		result.Days[1].Activities[0].ID, result.Days[1].Activities[1].ID, result.Days[1].Activities[2].ID,
	})
	assert.Equal(t, types.CategoryRestaurant, result.Days[0].Activities[1].Category)
	assert.Equal(t, "Near West Lake", result.Days[0].Accommodation.LocationContext)
}

func TestParseItinerary_TransportLegs(t *testing.T) {
	result, err := ParseItinerary(validItineraryJSON)
	require.NoError(t, err)

	first := result.Days[0].Activities[0]
	require.NotNil(t, first.TransportToNext)
	assert.Equal(t, "Walk", first.TransportToNext.Mode)

	// a leg on the last activity of a day would lead to the lodging
	assert.Nil(t, result.Days[0].Activities[1].TransportToNext)
	assert.Nil(t, result.Days[1].Activities[1].TransportToNext)
}

func TestParseItinerary_StripsCodeFences(t *testing.T) {
	result, err := ParseItinerary("```json\n" + validItineraryJSON + "\n```")
	require.NoError(t, err)
	assert.Len(t, result.Days, 3)
}

func TestParseItinerary_InvalidJSON(t *testing.T) {
	raw := `{"tripTitle": "broken", "days": [` + strings.Repeat("x", 2000)
	result, err := ParseItinerary(raw)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedResponse))

	var malformed *MalformedResponseError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, KindItinerary, malformed.Kind)
	assert.LessOrEqual(t, len(malformed.Raw), maxRawExcerpt+len("...(truncated)"))
	assert.Empty(t, malformed.Violations)
}

func TestParseItinerary_ReportsEveryViolation(t *testing.T) {
	raw := `{
	  "tripTitle": "",
	  "days": [
	    {"dayNumber": 2, "weatherForecast": "Sunny",
	     "activities": [
	       {"id": "x", "name": "A", "category": "Attraction", "description": "d", "cost": "1"},
	       {"id": "x", "name": "", "category": "Hotel", "description": "d", "cost": ""}
	     ]},
	    {"dayNumber": 2, "weatherForecast": "",
	     "accommodation": {"name": "Inn", "description": "ok", "cost": "100"}}
	  ]
	}`

	_, err := ParseItinerary(raw)
	var malformed *MalformedResponseError
	require.True(t, errors.As(err, &malformed))

	assert.ElementsMatch(t, []string{
		"tripTitle is required",
		"days[0].dayNumber is 2, want 1",
		"days[0].activities[1].name is required",
		"days[0].activities[1].cost is required",
		`days[0].activities[1].category "Hotel" is not one of [Attraction Restaurant Shopping Entertainment]`,
		`days[0].activities[1].id "x" duplicates days[0].activities[0].id`,
		"days[0].accommodation.name is required",
		"days[0].accommodation.cost is required",
		"days[0].accommodation.description is required",
		"days[1].weatherForecast is required",
		"days[1].activities is required",
	}, malformed.Violations)
	assert.Contains(t, err.Error(), "11 violation(s)")
}

func TestParseItinerary_DuplicateIDsAcrossDays(t *testing.T) {
	raw := `{"tripTitle": "t", "days": [
	  {"dayNumber": 1, "weatherForecast": "w", "activities": [{"id": "same", "name": "A", "category": "Attraction", "description": "d", "cost": "1"}],
	   "accommodation": {"name": "n", "description": "d", "cost": "1"}},
	  {"dayNumber": 2, "weatherForecast": "w", "activities": [{"id": "same", "name": "B", "category": "Shopping", "description": "d", "cost": "1"}],
	   "accommodation": {"name": "n", "description": "d", "cost": "1"}}
	]}`

	_, err := ParseItinerary(raw)
	var malformed *MalformedResponseError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, []string{`days[1].activities[0].id "same" duplicates days[0].activities[0].id`}, malformed.Violations)
}

func TestParseItinerary_EmptyDays(t *testing.T) {
	_, err := ParseItinerary(`{"tripTitle": "t", "days": []}`)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestParseSubSpots(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		spots, err := ParseSubSpots(`[
		  {"name": "Broken Bridge", "description": "Legend of the White Snake", "bestPhotoSpot": "From the north bank"},
		  {"name": "Su Causeway", "description": "Willows and peach trees"},
		  {"name": "Three Pools", "description": "Stone lanterns"},
		  {"name": "Leifeng Pagoda", "description": "Sunset views", "bestPhotoSpot": "Top floor"}
		]`)
		require.NoError(t, err)
		require.Len(t, spots, 4)
		assert.Equal(t, "Broken Bridge", spots[0].Name)
		assert.Equal(t, "Leifeng Pagoda", spots[3].Name)
		assert.Empty(t, spots[1].BestPhotoSpot)
	})

	t.Run("null is an empty list", func(t *testing.T) {
		spots, err := ParseSubSpots("null")
		require.NoError(t, err)
		assert.NotNil(t, spots)
		assert.Empty(t, spots)
	})

	t.Run("object instead of array", func(t *testing.T) {
		_, err := ParseSubSpots(`{"name": "x"}`)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("missing narration", func(t *testing.T) {
		_, err := ParseSubSpots(`[{"name": "x"}]`)
		var malformed *MalformedResponseError
		require.True(t, errors.As(err, &malformed))
		assert.Equal(t, []string{"[0].description is required"}, malformed.Violations)
	})
}

func TestParseCreativeSolution(t *testing.T) {
	solution, err := ParseCreativeSolution(`{"title": "Rainy day plan", "content": "## Museums\n- China Tea Museum"}`)
	require.NoError(t, err)
	assert.Equal(t, "Rainy day plan", solution.Title)
	assert.Contains(t, solution.Content, "China Tea Museum")

	_, err = ParseCreativeSolution(`not json`)
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = ParseCreativeSolution(`{"title": "only a title"}`)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestTruncateKeepsRuneBoundary(t *testing.T) {
	s := strings.Repeat("杭", 10) // 3 bytes each
	out := truncate(s, 4)
	assert.Equal(t, "杭...(truncated)", out)
	assert.Equal(t, "short", truncate("short", 10))
}
