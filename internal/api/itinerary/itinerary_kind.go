package itinerary

import "github.com/FACorreiaa/go-travel-itinerary-ai/internal/types"

// Kind identifies one of the three generation flows.
type Kind string

const (
	KindItinerary     Kind = "itinerary"
	KindSpotDetail    Kind = "spot_detail"
	KindCreativeQuery Kind = "creative_query"
)

func Kinds() []Kind {
	return []Kind{KindItinerary, KindSpotDetail, KindCreativeQuery}
}

// Payload is the input of one generation flow. The set of implementations is
// closed: ItineraryPayload, SpotDetailPayload and CreativeQueryPayload.
type Payload interface {
	Kind() Kind
	language() types.Language
}

type ItineraryPayload struct {
	Input types.TravelInput
}

func (ItineraryPayload) Kind() Kind                 { return KindItinerary }
func (p ItineraryPayload) language() types.Language { return p.Input.Language }

type SpotDetailPayload struct {
	LocationName string
	Destination  string
	Language     types.Language
}

func (SpotDetailPayload) Kind() Kind                 { return KindSpotDetail }
func (p SpotDetailPayload) language() types.Language { return p.Language }

type CreativeQueryPayload struct {
	Query       string
	Destination string
	Language    types.Language
}

func (CreativeQueryPayload) Kind() Kind                 { return KindCreativeQuery }
func (p CreativeQueryPayload) language() types.Language { return p.Language }
