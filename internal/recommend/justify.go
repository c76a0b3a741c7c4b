package recommend

import (
	"fmt"
	"strings"

	"joacms/internal/catalog"
	"joacms/internal/preference"
	"joacms/internal/venue"
)

var slotLabels = map[catalog.Slot]string{
	catalog.SlotMenu1:    "main course 1",
	catalog.SlotMenu2:    "main course 2",
	catalog.SlotMenu3:    "main course 3",
	catalog.SlotPasta:    "pasta",
	catalog.SlotDessert:  "dessert",
	catalog.SlotBeverage: "beverage",
}

// BuildJustification stitches the customer-facing explanation from the
// verified selection, the matched preference phrases and the venue.
// Model prose is never used here: it may reference dishes that were
// rejected during validation.
func BuildJustification(
	eventType string,
	guestCount int,
	sel *Selection,
	profile *preference.Profile,
	v *venue.Recommendation,
) string {

	var b strings.Builder

	fmt.Fprintf(&b, "For your %s with %d guests we prepared: ", eventType, guestCount)

	var parts []string
	for _, slot := range catalog.AllSlots {
		if item := sel.Get(slot); item != nil {
			parts = append(parts, fmt.Sprintf("%s (%s)", item.Name, slotLabels[slot]))
		}
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(".")

	if len(profile.MatchedPhrases) > 0 {
		fmt.Fprintf(&b, " We took into account: %s.",
			strings.Join(profile.MatchedPhrases, ", "))
	}

	if v != nil {
		fmt.Fprintf(&b, " Suggested venue: %s, %s, %s, %s.",
			v.VenueName, v.Barangay, v.City, v.Province)
		if v.Reasoning != "" {
			b.WriteString(" " + v.Reasoning)
		}
	}

	return b.String()
}

// unfilledWarnings names each empty slot so the caller can warn the
// customer instead of silently serving a short menu.
func unfilledWarnings(sel *Selection) []string {
	var warnings []string
	for _, slot := range sel.Unfilled {
		cats := catalog.SlotCategories[slot]
		names := make([]string, len(cats))
		for i, c := range cats {
			names[i] = string(c)
		}
		warnings = append(warnings, fmt.Sprintf(
			"no %s dishes are available for %s",
			strings.Join(names, " or "), slotLabels[slot],
		))
	}
	return warnings
}
