package booking

import "context"

// Repository is the appointment data-access contract.
type Repository interface {
	Save(ctx context.Context, a *Appointment) error
	FindByReference(ctx context.Context, reference string) (*Appointment, error)
	List(ctx context.Context) ([]Appointment, error)
}
