package booking

import (
	"time"

	"joacms/internal/pricing"
	"joacms/internal/recommend"
	"joacms/internal/venue"
)

// Appointment is one catering booking. The menu and pricing are frozen
// at creation time; the deposit shown to the customer is the persisted
// one, not a recomputation.
type Appointment struct {
	ID            int                   `json:"id"`
	Reference     string                `json:"reference"`
	CustomerName  string                `json:"customer_name"`
	ContactNumber string                `json:"contact_number"`
	EventType     string                `json:"event_type"`
	EventDate     time.Time             `json:"event_date"`
	GuestCount    int                   `json:"guest_count"`
	Selection     *recommend.Selection  `json:"menu_selection"`
	Venue         *venue.Recommendation `json:"venue,omitempty"`
	Pricing       *pricing.Breakdown    `json:"pricing"`
	Status        string                `json:"status"` // PENDING_DEPOSIT | CONFIRMED | CANCELLED
	CreatedAt     time.Time             `json:"created_at"`
}

// CreateRequest is a walk-in or wizard booking submission. A nil
// MenuSelection asks the recommendation pipeline to build one.
type CreateRequest struct {
	CustomerName   string               `json:"customer_name"`
	ContactNumber  string               `json:"contact_number"`
	EventType      string               `json:"event_type"`
	EventDate      string               `json:"event_date"` // YYYY-MM-DD
	GuestCount     int                  `json:"guest_count"`
	PreferenceText string               `json:"preference_text,omitempty"`
	Province       string               `json:"province,omitempty"`
	City           string               `json:"city,omitempty"`
	Barangay       string               `json:"barangay,omitempty"`
	AddOnFee       float64              `json:"add_on_fee,omitempty"`
	MenuSelection  *recommend.Selection `json:"menu_selection,omitempty"`
}
