package core

import (
	"context"

	"joacms/internal/catalog"
)

// ItemVerifier is the authoritative dish check the recommendation
// pipeline runs against the persisted catalog. Both catalog repositories
// satisfy it; recommend depends ONLY on this interface.
type ItemVerifier interface {
	VerifyItem(
		ctx context.Context,
		name string,
		category catalog.Category,
	) (bool, error)
}
