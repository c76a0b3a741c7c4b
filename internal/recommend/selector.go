package recommend

import (
	"math/rand"
	"strings"

	"joacms/internal/catalog"
	"joacms/internal/preference"
)

// BuildSelection fills every slot it can from the filtered pools. This
// is both the orchestrator's constraint frame and the deterministic
// fallback when the generative model is unavailable.
func BuildSelection(
	pools catalog.Catalog,
	profile *preference.Profile,
	rng *rand.Rand,
) *Selection {
	return BuildSelectionPreferring(pools, profile, rng, nil)
}

// BuildSelectionPreferring runs the same slot-assignment rules but takes
// dish names (per slot) as a first preference. A preferred name that is
// not in the slot's candidate pool is ignored and the slot falls back to
// a uniform random pick, so the result satisfies the same invariants as
// the pure-local path.
func BuildSelectionPreferring(
	pools catalog.Catalog,
	profile *preference.Profile,
	rng *rand.Rand,
	preferred map[catalog.Slot]string,
) *Selection {

	sel := &Selection{}
	for _, slot := range catalog.AllSlots {
		candidates := slotCandidates(slot, pools, profile)
		if len(candidates) == 0 {
			// The one legitimate "fewer than required items" case:
			// every category in the slot restricted or catalog-empty.
			sel.Unfilled = append(sel.Unfilled, slot)
			continue
		}

		if name, ok := preferred[slot]; ok {
			if item := findByName(candidates, name); item != nil {
				sel.set(slot, item)
				continue
			}
		}

		sel.set(slot, pickOne(candidates, emphasisBias(slot, profile), rng))
	}
	return sel
}

// slotCandidates unions the slot's eligible category pools. A non-empty
// only-request set narrows the eligible categories of restrictable slots
// to exactly the requested ones.
func slotCandidates(
	slot catalog.Slot,
	pools catalog.Catalog,
	profile *preference.Profile,
) []catalog.MenuItem {

	var candidates []catalog.MenuItem
	for _, category := range catalog.SlotCategories[slot] {
		if restrictable(category) && profile.Restrictions[category] {
			continue
		}
		if restrictable(category) &&
			len(profile.OnlyRequests) > 0 &&
			!profile.OnlyRequests[category] {
			continue
		}
		candidates = append(candidates, pools[category]...)
	}
	return candidates
}

// emphasisBias returns the soft-bias predicate for a slot: prefer an
// emphasized category, but never at the cost of an empty pool.
func emphasisBias(
	slot catalog.Slot,
	profile *preference.Profile,
) func(catalog.MenuItem) bool {

	if len(profile.Emphasis) == 0 {
		return nil
	}
	emphasized := false
	for _, category := range catalog.SlotCategories[slot] {
		if profile.Emphasis[category] {
			emphasized = true
			break
		}
	}
	if !emphasized {
		return nil
	}
	return func(item catalog.MenuItem) bool {
		return profile.Emphasis[item.Category]
	}
}

// pickOne is the consolidated random-choice primitive: narrow the pool
// by the bias predicate when that keeps it non-empty, then pick
// uniformly. Tie-break is uniformly random by design.
func pickOne(
	pool []catalog.MenuItem,
	bias func(catalog.MenuItem) bool,
	rng *rand.Rand,
) *catalog.MenuItem {

	if len(pool) == 0 {
		return nil
	}
	if bias != nil {
		var narrowed []catalog.MenuItem
		for _, item := range pool {
			if bias(item) {
				narrowed = append(narrowed, item)
			}
		}
		if len(narrowed) > 0 {
			pool = narrowed
		}
	}
	item := pool[rng.Intn(len(pool))]
	return &item
}

func findByName(pool []catalog.MenuItem, name string) *catalog.MenuItem {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return nil
	}
	for _, item := range pool {
		if strings.ToLower(strings.TrimSpace(item.Name)) == want {
			found := item
			return &found
		}
	}
	return nil
}
