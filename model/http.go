package model

// Note numbers travel as []int on the wire because encoding/json turns
// []uint8 into a base64 string.

type DetectRequestBody struct {
	Notes []int `json:"notes"`
}

type DetectResponse struct {
	Chord *string `json:"chord"`
}

type MatchRequestBody struct {
	Notes  []int  `json:"notes"`
	Target string `json:"target"`
}

type MatchResponse struct {
	Matches bool `json:"matches"`
}

// Base is a pointer so a request can ask for base note 0.
type VoicingRequestBody struct {
	Chord string `json:"chord"`
	Base  *int   `json:"base"`
}

type VoicingResponse struct {
	Notes []int `json:"notes"`
}

type SessionRequestBody struct {
	ChordCount        int      `json:"chord_count"`
	Mode              string   `json:"mode"`
	ChordTypeIds      []string `json:"chord_type_ids"`
	ScaleRoots        []string `json:"scale_roots"`
	IncludeInversions bool     `json:"include_inversions"`
}

type SessionResponse struct {
	Id     string   `json:"id"`
	Chords []string `json:"chords"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
