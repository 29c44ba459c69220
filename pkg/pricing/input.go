package pricing

import (
	"time"

	"github.com/google/uuid"

	"github.com/hyrpunkten/hyrpunkten-backend/pkg/enums"
)

// LineItem is one rented product line. Amounts are öre; quantities are whole
// units. A line is a value type, copied per booking and never shared.
type LineItem struct {
	ProductID         uuid.UUID
	Name              string
	Quantity          int
	PricePerPeriodOre int64
	WrappingSelected  bool
	WrappingCostOre   int64
}

// AddonSelection is a catalog add-on the customer toggled. Add-ons are
// one-time charges and never scale with rental days.
type AddonSelection struct {
	AddonID  uuid.UUID
	Name     string
	PriceOre int64
	Quantity int
	Selected bool
}

// Schedule captures the pickup/delivery window. Dates are calendar dates;
// times are optional 24h "HH:MM" strings from the booking form.
type Schedule struct {
	PickupDate   *time.Time
	PickupTime   string
	DeliveryDate *time.Time
	DeliveryTime string
}

// Input is the full snapshot one computation runs over. It is treated as
// immutable for the duration of a Compute call.
type Input struct {
	Lines               []LineItem
	Addons              []AddonSelection
	Delivery            enums.DeliveryMethod
	ShippingBaseCostOre int64
	Schedule            Schedule
}

// Result is the sole persisted pricing artifact. Callers overwrite the prior
// snapshot wholesale on every recompute; it is never patched field by field.
type Result struct {
	RentalDays int

	ProductSubtotal  int64
	ProductDiscount  int64
	WrappingTotal    int64
	AddonsTotal      int64
	ShippingCost     int64
	ShippingDiscount int64
	OBSurcharge      int64

	TaxableSubtotal int64
	Tax             int64
	GrandTotal      int64
	DepositAmount   int64
	BalanceAmount   int64

	OBTriggerReasons []string
}
