package recommend

import (
	"math/rand"

	"joacms/internal/catalog"
	"joacms/internal/preference"
)

// FilterCatalog applies the profile's restrictions to every category
// pool and shuffles the survivors. Dessert and beverage are never
// emptied by a restriction: every event gets a sweet and a drink.
//
// The shuffle is a fresh permutation per invocation from the
// request-scoped rng, so repeated calls with identical inputs yield
// varied pools. This is the regenerate feature, deliberately separate
// from the deterministic parse step.
func FilterCatalog(
	cat catalog.Catalog,
	profile *preference.Profile,
	rng *rand.Rand,
) catalog.Catalog {

	pools := make(catalog.Catalog, len(cat))
	for _, category := range catalog.AllCategories {
		if restrictable(category) && profile.Restrictions[category] {
			continue
		}
		pool := append([]catalog.MenuItem(nil), cat[category]...)
		rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		pools[category] = pool
	}
	return pools
}

func restrictable(category catalog.Category) bool {
	return category != catalog.CategoryDessert &&
		category != catalog.CategoryBeverage
}
