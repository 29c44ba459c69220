package pricing

import (
	"math"
	"time"
)

// ResolveRentalDays derives the inclusive whole-day rental period from the
// pickup and delivery dates. Missing or misordered dates degrade to 1 so a
// bad date pair can never make a price negative or undefined; ordering is
// validated at the form layer before submission.
func ResolveRentalDays(pickup, delivery *time.Time) int {
	if pickup == nil || delivery == nil {
		return 1
	}
	if delivery.Before(*pickup) {
		return 1
	}
	delta := delivery.Sub(*pickup)
	return int(math.Ceil(delta.Hours()/24)) + 1
}
