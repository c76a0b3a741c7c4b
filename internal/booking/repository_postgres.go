package booking

import (
	"context"
	"encoding/json"
	"errors"

	"joacms/internal/pricing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, a *Appointment) error {
	selection, err := json.Marshal(a.Selection)
	if err != nil {
		return err
	}
	venueDoc, err := json.Marshal(a.Venue)
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO appointments (
			reference,
			customer_name,
			contact_number,
			event_type,
			event_date,
			guest_count,
			menu_selection,
			venue,
			subtotal,
			service_fee,
			add_on_fee,
			total,
			down_payment,
			status,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now())
		RETURNING id
	`,
		a.Reference,
		a.CustomerName,
		a.ContactNumber,
		a.EventType,
		a.EventDate,
		a.GuestCount,
		selection,
		venueDoc,
		a.Pricing.Subtotal,
		a.Pricing.ServiceFee,
		a.Pricing.AddOnFee,
		a.Pricing.Total,
		a.Pricing.DownPayment,
		a.Status,
	).Scan(&a.ID)
}

func (r *PostgresRepository) FindByReference(
	ctx context.Context,
	reference string,
) (*Appointment, error) {

	a := &Appointment{Pricing: &pricing.Breakdown{}}
	var selection, venueDoc []byte

	err := r.db.QueryRow(ctx, `
		SELECT
			id,
			reference,
			customer_name,
			contact_number,
			event_type,
			event_date,
			guest_count,
			menu_selection,
			venue,
			subtotal,
			service_fee,
			add_on_fee,
			total,
			down_payment,
			status,
			created_at
		FROM appointments
		WHERE reference = $1
	`, reference).Scan(
		&a.ID,
		&a.Reference,
		&a.CustomerName,
		&a.ContactNumber,
		&a.EventType,
		&a.EventDate,
		&a.GuestCount,
		&selection,
		&venueDoc,
		&a.Pricing.Subtotal,
		&a.Pricing.ServiceFee,
		&a.Pricing.AddOnFee,
		&a.Pricing.Total,
		&a.Pricing.DownPayment,
		&a.Status,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("booking not found")
		}
		return nil, err
	}

	if err := json.Unmarshal(selection, &a.Selection); err != nil {
		return nil, err
	}
	if len(venueDoc) > 0 {
		if err := json.Unmarshal(venueDoc, &a.Venue); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Appointment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			reference,
			customer_name,
			contact_number,
			event_type,
			event_date,
			guest_count,
			subtotal,
			service_fee,
			add_on_fee,
			total,
			down_payment,
			status,
			created_at
		FROM appointments
		ORDER BY event_date ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Appointment
	for rows.Next() {
		a := Appointment{Pricing: &pricing.Breakdown{}}
		if err := rows.Scan(
			&a.ID,
			&a.Reference,
			&a.CustomerName,
			&a.ContactNumber,
			&a.EventType,
			&a.EventDate,
			&a.GuestCount,
			&a.Pricing.Subtotal,
			&a.Pricing.ServiceFee,
			&a.Pricing.AddOnFee,
			&a.Pricing.Total,
			&a.Pricing.DownPayment,
			&a.Status,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
