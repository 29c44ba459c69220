package pricing

import (
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/enums"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/money"
)

// ShippingTotals is the output of the shipping adjustment step. The discount
// stays its own line so invoices can show both reductions separately.
type ShippingTotals struct {
	ShippingCost     int64
	ShippingDiscount int64
}

// AdjustShipping charges the base shipping cost for external carrier
// deliveries only. The volume discount uses the same threshold and rate as
// the product discount but is computed independently on the shipping cost.
func AdjustShipping(method enums.DeliveryMethod, baseCostOre int64, lineCount int) ShippingTotals {
	if method != enums.DeliveryMethodExternal {
		return ShippingTotals{}
	}

	cost := money.Clamp(baseCostOre)
	var discount int64
	if lineCount >= VolumeDiscountMinLines {
		discount = money.ApplyRate(cost, VolumeDiscountRate)
	}
	return ShippingTotals{ShippingCost: cost, ShippingDiscount: discount}
}
