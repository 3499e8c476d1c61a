package types

import (
	"fmt"
	"strings"
)

// Language selects the output language of every generated text field.
type Language string

const (
	LanguageChinese Language = "zh"
	LanguageEnglish Language = "en"
)

// ParseLanguage accepts only the two supported language codes.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.TrimSpace(s)) {
	case LanguageChinese:
		return LanguageChinese, nil
	case LanguageEnglish:
		return LanguageEnglish, nil
	default:
		return "", fmt.Errorf("unsupported language %q (want zh or en)", s)
	}
}

func (l Language) Valid() bool {
	return l == LanguageChinese || l == LanguageEnglish
}

// Pace is the trip tempo. Unknown values are treated as PaceModerate.
type Pace string

const (
	PaceBusy     Pace = "busy"
	PaceModerate Pace = "moderate"
	PaceLazy     Pace = "lazy"
)

// ParsePace never fails: anything outside busy|lazy maps to moderate.
func ParsePace(s string) Pace {
	switch Pace(strings.TrimSpace(s)) {
	case PaceBusy:
		return PaceBusy
	case PaceLazy:
		return PaceLazy
	default:
		return PaceModerate
	}
}

// FoodInterest is the interest tag that switches on the must-eat clause.
const FoodInterest = "food"

// DefaultInterests is the named vocabulary offered to users. Free-text tags
// are accepted alongside it.
func DefaultInterests() []string {
	return []string{FoodInterest, "history", "nature", "shopping", "art", "nightlife", "photography", "culture"}
}

// TravelInput is what a caller submits to plan a trip.
type TravelInput struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Budget      string   `json:"budget"`
	Language    Language `json:"language"`
	Pace        Pace     `json:"pace"`
	Interests   []string `json:"interests"`
}

// HasInterest reports whether tag is selected, by exact string match.
func (in TravelInput) HasInterest(tag string) bool {
	for _, i := range in.Interests {
		if i == tag {
			return true
		}
	}
	return false
}

// Category of an itinerary activity.
type Category string

const (
	CategoryAttraction    Category = "Attraction"
	CategoryRestaurant    Category = "Restaurant"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
)

func Categories() []Category {
	return []Category{CategoryAttraction, CategoryRestaurant, CategoryShopping, CategoryEntertainment}
}

func (c Category) Valid() bool {
	for _, v := range Categories() {
		if c == v {
			return true
		}
	}
	return false
}

type TransportLeg struct {
	Mode        string `json:"mode"`
	Duration    string `json:"duration"`
	Cost        string `json:"cost"`
	Description string `json:"description"`
}

type Activity struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Category            Category      `json:"category"`
	Description         string        `json:"description"`
	RecommendedDuration string        `json:"recommendedDuration,omitempty"`
	Cost                string        `json:"cost"`
	TransportToNext     *TransportLeg `json:"transportToNext,omitempty"` // travel to the next activity, never to the lodging
}

type Accommodation struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Cost            string `json:"cost"` // per night
	LocationContext string `json:"locationContext,omitempty"`
}

type DayPlan struct {
	DayNumber       int           `json:"dayNumber"`
	Date            string        `json:"date,omitempty"`
	WeatherForecast string        `json:"weatherForecast"`
	WeatherAdvice   string        `json:"weatherAdvice,omitempty"`
	Activities      []Activity    `json:"activities"`
	Accommodation   Accommodation `json:"accommodation"`
}

type ItineraryResult struct {
	TripTitle string    `json:"tripTitle"`
	Summary   string    `json:"summary,omitempty"`
	Days      []DayPlan `json:"days"`
}

// SubSpot is a narrower point of interest inside a larger location, used by
// the tour guide flow.
type SubSpot struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	BestPhotoSpot string `json:"bestPhotoSpot,omitempty"`
}

// CreativeSolution answers a free-form travel question. Content is Markdown.
type CreativeSolution struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
