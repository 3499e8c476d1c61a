package types

// SpotDetailRequest is the body of a tour guide request.
type SpotDetailRequest struct {
	LocationName string   `json:"locationName"`
	Destination  string   `json:"destination"`
	Language     Language `json:"language"`
}

// CreativeQueryRequest is the body of a free-form travel question.
type CreativeQueryRequest struct {
	Query       string   `json:"query"`
	Destination string   `json:"destination"`
	Language    Language `json:"language"`
}

// SubSpotsResponse reports sub-spots together with whether they are a
// degraded substitute.
type SubSpotsResponse struct {
	Status   OutcomeStatus `json:"status"`
	SubSpots []SubSpot     `json:"subSpots"`
	Error    string        `json:"error,omitempty"`
}

type CreativeSolutionResponse struct {
	Status   OutcomeStatus    `json:"status"`
	Solution CreativeSolution `json:"solution"`
	Error    string           `json:"error,omitempty"`
}
