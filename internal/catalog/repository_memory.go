package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// MemoryRepository keeps the catalog in memory. Used by tests and as the
// runtime store when no DATABASE_URL is configured.
type MemoryRepository struct {
	mu     sync.RWMutex
	items  Catalog
	nextID int
}

func NewMemoryRepository() *MemoryRepository {
	return NewMemoryRepositoryWith(DefaultCatalog())
}

func NewMemoryRepositoryWith(items Catalog) *MemoryRepository {
	maxID := 0
	for _, pool := range items {
		for _, item := range pool {
			if item.ID > maxID {
				maxID = item.ID
			}
		}
	}
	return &MemoryRepository{
		items:  items,
		nextID: maxID + 1,
	}
}

func (r *MemoryRepository) FetchCatalog(ctx context.Context) (Catalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Copy so callers can shuffle pools freely.
	out := make(Catalog, len(r.items))
	for category, pool := range r.items {
		out[category] = append([]MenuItem(nil), pool...)
	}
	return out, nil
}

func (r *MemoryRepository) VerifyItem(
	ctx context.Context,
	name string,
	category Category,
) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := strings.ToLower(strings.TrimSpace(name))
	for _, item := range r.items[category] {
		if strings.ToLower(strings.TrimSpace(item.Name)) == want {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) AddItem(
	ctx context.Context,
	name string,
	category Category,
) (*MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := MenuItem{
		ID:        r.nextID,
		Name:      name,
		Category:  category,
		UnitPrice: UnitPrices[category],
	}
	r.nextID++
	r.items[category] = append(r.items[category], item)
	return &item, nil
}

func (r *MemoryRepository) RemoveItem(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for category, pool := range r.items {
		for i, item := range pool {
			if item.ID == id {
				r.items[category] = append(pool[:i], pool[i+1:]...)
				return nil
			}
		}
	}
	return errors.New("menu item not found")
}
