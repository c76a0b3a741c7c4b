package pricing

import (
	"math"

	"joacms/internal/catalog"
)

// Breakdown is the customer-facing price sheet. Computed fresh per
// request; the booking collaborator persists its deposit, not us.
type Breakdown struct {
	Subtotal    float64 `json:"subtotal"`
	ServiceFee  float64 `json:"service_fee"`
	AddOnFee    float64 `json:"add_on_fee"`
	Total       float64 `json:"total"`
	DownPayment float64 `json:"down_payment"`
}

// Compute prices a finalized menu. Every occupied slot contributes its
// category's fixed per-guest price times the guest count; the service
// fee comes from the (tier, guest count) table; the deposit is half the
// total, rounded half up. The arithmetic must be exactly reproducible:
// it is shown to paying customers and seeds the persisted deposit.
func Compute(
	items []*catalog.MenuItem,
	guestCount int,
	eventType string,
	addOnFee float64,
) *Breakdown {

	var subtotal float64
	for _, item := range items {
		if item == nil {
			continue
		}
		subtotal += catalog.UnitPrices[item.Category] * float64(guestCount)
	}

	fee := serviceFee(TierFor(eventType), guestCount)
	total := subtotal + fee + addOnFee

	return &Breakdown{
		Subtotal:    subtotal,
		ServiceFee:  fee,
		AddOnFee:    addOnFee,
		Total:       total,
		DownPayment: math.Floor(total*0.5 + 0.5),
	}
}
