package catalog

import "context"

// Repository is the data-access contract for the dish catalog.
// Services and the recommendation pipeline depend ONLY on this interface.
type Repository interface {
	// FetchCatalog returns every orderable dish grouped by category.
	FetchCatalog(ctx context.Context) (Catalog, error)

	// VerifyItem is the authoritative membership check: true when a dish
	// with this name (case-insensitive, trimmed) exists in the category.
	VerifyItem(ctx context.Context, name string, category Category) (bool, error)

	// AddItem inserts a dish and returns it with its assigned ID.
	AddItem(ctx context.Context, name string, category Category) (*MenuItem, error)

	// RemoveItem deletes a dish by ID.
	RemoveItem(ctx context.Context, id int) error
}
