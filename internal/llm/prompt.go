package llm

import (
	"fmt"
	"sort"
	"strings"

	"joacms/internal/catalog"
	"joacms/internal/preference"
)

// openings vary the prompt phrasing between regenerations. The caller
// passes an explicit variation counter; there is no ambient state here.
var openings = []string{
	"You are the menu planner of a Filipino catering business.",
	"Act as the head caterer planning an event menu.",
	"You plan catering menus for events in and around Metro Manila.",
}

// BuildRecommendationPrompt embeds the structural contract, the
// filtered catalog, the preference summary and the venue guidance into
// one JSON-only instruction block.
func BuildRecommendationPrompt(
	eventType string,
	guestCount int,
	pools catalog.Catalog,
	profile *preference.Profile,
	venueGuidance string,
	variation int,
) string {

	var b strings.Builder

	// Go's % keeps the sign of the dividend; normalize so a negative
	// counter from the request body cannot index out of range.
	idx := variation % len(openings)
	if idx < 0 {
		idx += len(openings)
	}
	b.WriteString(openings[idx])
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Event: %s for %d guests.\n\n", eventType, guestCount)

	b.WriteString("Pick EXACTLY ONE dish for each slot below, using ONLY dish names from the available dishes list:\n")
	b.WriteString("- menu1: one beef or pork dish\n")
	b.WriteString("- menu2: one chicken dish\n")
	b.WriteString("- menu3: one seafood or vegetable dish\n")
	b.WriteString("- pasta: one pasta dish\n")
	b.WriteString("- dessert: one dessert\n")
	b.WriteString("- beverage: one beverage\n")
	b.WriteString("If the list has no dish for a slot, set that slot to null.\n\n")

	b.WriteString("Available dishes:\n")
	for _, category := range catalog.AllCategories {
		pool := pools[category]
		if len(pool) == 0 {
			continue
		}
		names := make([]string, len(pool))
		for i, item := range pool {
			names[i] = item.Name
		}
		fmt.Fprintf(&b, "- %s: %s\n", category, strings.Join(names, ", "))
	}
	b.WriteString("\n")

	if summary := summarizeProfile(profile); summary != "" {
		b.WriteString("Customer preferences: ")
		b.WriteString(summary)
		b.WriteString("\n\n")
	}

	if venueGuidance != "" {
		b.WriteString("Venue: ")
		b.WriteString(venueGuidance)
		b.WriteString("\n\n")
	}

	b.WriteString(`Respond with STRICT JSON only.
- Output MUST start with { and end with }.
- NO explanations outside the JSON.
- NO markdown.

Required JSON schema:
{
  "menu": {
    "menu1": "dish name or null",
    "menu2": "dish name or null",
    "menu3": "dish name or null",
    "pasta": "dish name or null",
    "dessert": "dish name or null",
    "beverage": "dish name or null"
  },
  "reasoning": "one short paragraph"
}`)

	return b.String()
}

func summarizeProfile(profile *preference.Profile) string {
	if profile == nil || profile.IsEmpty() {
		return ""
	}

	var parts []string
	if len(profile.Restrictions) > 0 {
		parts = append(parts, "avoid "+joinCategories(profile.Restrictions))
	}
	if len(profile.OnlyRequests) > 0 {
		parts = append(parts, "main courses only from "+joinCategories(profile.OnlyRequests))
	}
	if len(profile.Emphasis) > 0 {
		parts = append(parts, "favor "+joinCategories(profile.Emphasis))
	}
	if len(profile.CookingStyles) > 0 {
		parts = append(parts, "cooking style: "+joinSet(profile.CookingStyles))
	}
	if len(profile.PortionHints) > 0 {
		parts = append(parts, "portions: "+joinSet(profile.PortionHints))
	}
	return strings.Join(parts, "; ")
}

// joinCategories renders a category set in taxonomy order, so the
// prompt is stable for a given profile.
func joinCategories(set map[catalog.Category]bool) string {
	var names []string
	for _, category := range catalog.AllCategories {
		if set[category] {
			names = append(names, string(category))
		}
	}
	return strings.Join(names, ", ")
}

func joinSet(set map[string]bool) string {
	var keys []string
	for k := range set {
		keys = append(keys, k)
	}
	// Map order is random; sort for a reproducible prompt.
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
