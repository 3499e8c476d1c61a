package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// walkObjects visits every object node of a schema tree.
func walkObjects(s *genai.Schema, path string, visit func(path string, s *genai.Schema)) {
	if s == nil {
		return
	}
	if s.Type == genai.TypeObject {
		visit(path, s)
		for name, child := range s.Properties {
			walkObjects(child, path+"."+name, visit)
		}
	}
	if s.Type == genai.TypeArray {
		walkObjects(s.Items, path+"[]", visit)
	}
}

func TestSchemaFor_EveryKindHasSchema(t *testing.T) {
	for _, kind := range Kinds() {
		assert.NotNil(t, SchemaFor(kind), "kind %s", kind)
	}
	assert.Panics(t, func() { SchemaFor("unknown") })
}

func TestSchemaFor_RequiredFieldsAreDeclared(t *testing.T) {
	for _, kind := range Kinds() {
		walkObjects(SchemaFor(kind), string(kind), func(path string, s *genai.Schema) {
			for _, req := range s.Required {
				assert.Contains(t, s.Properties, req, "%s requires undeclared field %q", path, req)
			}
			assert.ElementsMatch(t, keys(s.Properties), s.PropertyOrdering, "%s property ordering", path)
		})
	}
}

func keys(m map[string]*genai.Schema) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestSchemaFor_ItineraryRequiredFields(t *testing.T) {
	root := SchemaFor(KindItinerary)
	assert.Equal(t, genai.TypeObject, root.Type)
	assert.Subset(t, root.Required, []string{"tripTitle", "days"})

	days := root.Properties["days"]
	require.NotNil(t, days)
	require.Equal(t, genai.TypeArray, days.Type)
	day := days.Items
	assert.Subset(t, day.Required, []string{"dayNumber", "activities", "weatherForecast", "accommodation"})
	assert.Equal(t, genai.TypeInteger, day.Properties["dayNumber"].Type)

	activity := day.Properties["activities"].Items
	require.NotNil(t, activity)
	assert.Subset(t, activity.Required, []string{"id", "name", "category", "description", "cost"})
	assert.NotContains(t, activity.Required, "transportToNext")
	assert.ElementsMatch(t, []string{"Attraction", "Restaurant", "Shopping", "Entertainment"}, activity.Properties["category"].Enum)

	leg := activity.Properties["transportToNext"]
	require.NotNil(t, leg)
	require.NotNil(t, leg.Nullable)
	assert.True(t, *leg.Nullable)
	assert.Subset(t, keys(leg.Properties), []string{"mode", "duration", "cost", "description"})

	accommodation := day.Properties["accommodation"]
	assert.Subset(t, accommodation.Required, []string{"name", "cost", "description"})
	assert.NotContains(t, accommodation.Required, "locationContext")
}

func TestSchemaFor_SubSpotsAndCreative(t *testing.T) {
	spots := SchemaFor(KindSpotDetail)
	require.Equal(t, genai.TypeArray, spots.Type)
	require.NotNil(t, spots.MinItems)
	require.NotNil(t, spots.MaxItems)
	assert.Equal(t, int64(MinSubSpots), *spots.MinItems)
	assert.Equal(t, int64(MaxSubSpots), *spots.MaxItems)
	assert.ElementsMatch(t, []string{"name", "description"}, spots.Items.Required)

	creative := SchemaFor(KindCreativeQuery)
	assert.ElementsMatch(t, []string{"title", "content"}, creative.Required)
}

func TestSchemaFor_ReturnsIndependentTrees(t *testing.T) {
	a := SchemaFor(KindItinerary)
	a.Required = append(a.Required, "mutated")
	b := SchemaFor(KindItinerary)
	assert.NotContains(t, b.Required, "mutated")
}
