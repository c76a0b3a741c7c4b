package venue

// Recommendation is a concrete venue proposal for an event. Either
// copied from a curated venue record (Metro Manila, Bulacan) or
// synthesized for the other served provinces.
type Recommendation struct {
	VenueName     string `json:"venue_name"`
	Barangay      string `json:"barangay"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	Province      string `json:"province"`
	PostalCode    string `json:"postal_code"`
	Reasoning     string `json:"reasoning"`

	// Synthesized is true when the venue was generated rather than
	// copied from the curated corpus.
	Synthesized bool `json:"synthesized"`
}

// Resolution is the resolver's answer: the location constraints it
// settled on, guidance text for the generative-model prompt, and a
// concrete venue usable directly on the fallback path.
type Resolution struct {
	Province string `json:"province"`
	City     string `json:"city,omitempty"`
	Barangay string `json:"barangay,omitempty"`

	Guidance string          `json:"guidance"`
	Venue    *Recommendation `json:"venue"`
}
