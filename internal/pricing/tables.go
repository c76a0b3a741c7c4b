package pricing

import "strings"

// ValidGuestCounts are the package sizes the business sells.
var ValidGuestCounts = []int{50, 80, 100, 150, 200, 300}

// IsValidGuestCount reports whether the caller passed one of the
// enumerated package sizes.
func IsValidGuestCount(n int) bool {
	for _, v := range ValidGuestCounts {
		if v == n {
			return true
		}
	}
	return false
}

// Event-type fee tiers. Wedding and debut carry their own tables;
// everything else prices as "other".
const (
	TierWedding = "wedding"
	TierDebut   = "debut"
	TierOther   = "other"
)

// TierFor maps an event type to its fee tier. Event types arrive from
// request bodies in whatever casing the client sent.
func TierFor(eventType string) string {
	switch strings.ToLower(strings.TrimSpace(eventType)) {
	case TierWedding:
		return TierWedding
	case TierDebut:
		return TierDebut
	default:
		return TierOther
	}
}

// serviceFees is static configuration: the package/service fee per
// (tier, guest count). A guest count absent from a tier's table falls
// back to that tier's smallest-guest-count fee; weddings and debuts
// deliberately skip the 80-guest size.
var serviceFees = map[string]map[int]float64{
	TierWedding: {
		50:  15000,
		100: 20000,
		150: 25000,
		200: 30000,
		300: 40000,
	},
	TierDebut: {
		50:  12000,
		100: 16000,
		150: 20000,
		200: 24000,
		300: 32000,
	},
	TierOther: {
		50:  7000,
		80:  9000,
		100: 11000,
		150: 14000,
		200: 17000,
		300: 22000,
	},
}

// serviceFee looks up the tier fee, resolving table gaps to the tier's
// smallest defined guest count instead of failing the booking.
func serviceFee(tier string, guestCount int) float64 {
	table := serviceFees[tier]
	if table == nil {
		table = serviceFees[TierOther]
	}
	if fee, ok := table[guestCount]; ok {
		return fee
	}

	smallest := 0
	for count := range table {
		if smallest == 0 || count < smallest {
			smallest = count
		}
	}
	return table[smallest]
}
