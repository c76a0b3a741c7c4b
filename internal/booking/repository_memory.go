package booking

import (
	"context"
	"errors"
	"sync"
)

type MemoryRepository struct {
	mu           sync.RWMutex
	appointments map[string]*Appointment
	nextID       int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		appointments: make(map[string]*Appointment),
		nextID:       1,
	}
}

func (r *MemoryRepository) Save(ctx context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextID
	r.nextID++
	copied := *a
	r.appointments[a.Reference] = &copied
	return nil
}

func (r *MemoryRepository) FindByReference(
	ctx context.Context,
	reference string,
) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.appointments[reference]
	if !ok {
		return nil, errors.New("booking not found")
	}
	copied := *a
	return &copied, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		out = append(out, *a)
	}
	return out, nil
}
