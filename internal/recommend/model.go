package recommend

import (
	"fmt"
	"strings"

	"joacms/internal/catalog"
	"joacms/internal/venue"
)

// Selection assigns at most one dish to each of the six menu slots.
// Built fresh per request and never mutated after return; callers
// rebuild rather than patch.
type Selection struct {
	Menu1    *catalog.MenuItem `json:"menu1,omitempty"`
	Menu2    *catalog.MenuItem `json:"menu2,omitempty"`
	Menu3    *catalog.MenuItem `json:"menu3,omitempty"`
	Pasta    *catalog.MenuItem `json:"pasta,omitempty"`
	Dessert  *catalog.MenuItem `json:"dessert,omitempty"`
	Beverage *catalog.MenuItem `json:"beverage,omitempty"`

	// Unfilled lists slots that could not be populated because every
	// eligible category was restricted or empty. Surfaced, never
	// silently defaulted.
	Unfilled []catalog.Slot `json:"unfilled,omitempty"`
}

func (s *Selection) Get(slot catalog.Slot) *catalog.MenuItem {
	switch slot {
	case catalog.SlotMenu1:
		return s.Menu1
	case catalog.SlotMenu2:
		return s.Menu2
	case catalog.SlotMenu3:
		return s.Menu3
	case catalog.SlotPasta:
		return s.Pasta
	case catalog.SlotDessert:
		return s.Dessert
	case catalog.SlotBeverage:
		return s.Beverage
	}
	return nil
}

func (s *Selection) set(slot catalog.Slot, item *catalog.MenuItem) {
	switch slot {
	case catalog.SlotMenu1:
		s.Menu1 = item
	case catalog.SlotMenu2:
		s.Menu2 = item
	case catalog.SlotMenu3:
		s.Menu3 = item
	case catalog.SlotPasta:
		s.Pasta = item
	case catalog.SlotDessert:
		s.Dessert = item
	case catalog.SlotBeverage:
		s.Beverage = item
	}
}

// Validate checks a caller-supplied selection before it is priced or
// persisted: every occupied slot must hold a named dish whose category
// belongs to that slot. Selections built by this package always pass;
// the check guards hand-assembled request bodies.
func (s *Selection) Validate() error {
	for _, slot := range catalog.AllSlots {
		item := s.Get(slot)
		if item == nil {
			continue
		}
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("%s: dish name is required", slot)
		}
		allowed := false
		for _, category := range catalog.SlotCategories[slot] {
			if item.Category == category {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("%s: category %q is not allowed in this slot", slot, item.Category)
		}
	}
	return nil
}

// Items returns the occupied slots in serving order.
func (s *Selection) Items() []*catalog.MenuItem {
	var items []*catalog.MenuItem
	for _, slot := range catalog.AllSlots {
		if item := s.Get(slot); item != nil {
			items = append(items, item)
		}
	}
	return items
}

// Request is one recommendation run for the booking wizard's AI-assist
// screen or a walk-in booking.
type Request struct {
	EventType      string `json:"event_type"`
	GuestCount     int    `json:"guest_count"`
	PreferenceText string `json:"preference_text"`
	Province       string `json:"province,omitempty"`
	City           string `json:"city,omitempty"`
	Barangay       string `json:"barangay,omitempty"`

	// Variation counts the wizard's regenerate clicks. It only varies
	// the prompt phrasing; passing it explicitly keeps the prompt
	// builder free of ambient state.
	Variation int `json:"variation,omitempty"`
}

// Response always carries a structurally valid selection, whether the
// generative model contributed or the local fallback ran.
type Response struct {
	Success       bool                  `json:"success"`
	Selection     *Selection            `json:"menu_selection"`
	Venue         *venue.Recommendation `json:"venue"`
	Justification string                `json:"justification"`
	Fallback      bool                  `json:"fallback"`
	Warnings      []string              `json:"warnings,omitempty"`
}
