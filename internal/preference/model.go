package preference

import "joacms/internal/catalog"

// Profile is the structured reading of a customer's free-text
// dietary/style preferences. Built once per request, never mutated.
type Profile struct {
	Restrictions  map[catalog.Category]bool `json:"restrictions"`
	Emphasis      map[catalog.Category]bool `json:"emphasis"`
	OnlyRequests  map[catalog.Category]bool `json:"only_requests"`
	CookingStyles map[string]bool           `json:"cooking_styles"`
	PortionHints  map[string]bool           `json:"portion_hints"`

	// MatchedPhrases records which rule phrases fired, in rule-table
	// order. Used to build the customer-facing justification.
	MatchedPhrases []string `json:"matched_phrases"`
}

func newProfile() *Profile {
	return &Profile{
		Restrictions:  make(map[catalog.Category]bool),
		Emphasis:      make(map[catalog.Category]bool),
		OnlyRequests:  make(map[catalog.Category]bool),
		CookingStyles: make(map[string]bool),
		PortionHints:  make(map[string]bool),
	}
}

// IsEmpty reports whether no signal at all was extracted.
func (p *Profile) IsEmpty() bool {
	return len(p.Restrictions) == 0 &&
		len(p.Emphasis) == 0 &&
		len(p.OnlyRequests) == 0 &&
		len(p.CookingStyles) == 0 &&
		len(p.PortionHints) == 0
}
