// Package pricing is the rental pricing and surcharge engine. Every surface
// that shows a customer a number routes through Compute with a fresh snapshot
// of the booking's raw inputs; client-submitted totals are never trusted.
//
// The composition order in Compute is the contract. Reordering the steps
// changes the taxable base and must be treated as a breaking change.
package pricing

import (
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/holidays"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/money"
)

// Engine computes prices against a fixed holiday calendar. It holds no other
// state: every Compute call is a closed function of its Input, so concurrent
// calls from unrelated contexts need no coordination.
type Engine struct {
	holidays *holidays.Calendar
}

// New builds an engine over the given holiday calendar. A nil calendar is
// allowed; the holiday condition then never matches.
func New(cal *holidays.Calendar) *Engine {
	return &Engine{holidays: cal}
}

// Compute turns a booking snapshot into a full pricing result:
//
//	rental days -> line totals -> shipping -> OB surcharge
//	-> taxable subtotal -> VAT -> grand total -> deposit split
//
// It never returns an error and never panics on malformed input; bad dates,
// times and amounts degrade toward zero per component so a live form always
// renders a consistent number.
func (e *Engine) Compute(input Input) Result {
	days := ResolveRentalDays(input.Schedule.PickupDate, input.Schedule.DeliveryDate)

	lines := AggregateLines(input.Lines, input.Addons, days)
	preShipping := (lines.ProductSubtotal - lines.ProductDiscount) + lines.WrappingTotal + lines.AddonsTotal

	shipping := AdjustShipping(input.Delivery, input.ShippingBaseCostOre, lines.LineCount)

	ob := e.ClassifyOB(input.Schedule)
	var surcharge int64
	if ob.Applies {
		surcharge = OBSurchargeOre
	}

	taxable := preShipping + (shipping.ShippingCost - shipping.ShippingDiscount) + surcharge
	tax := money.ApplyRate(taxable, VATRate)
	grand := taxable + tax

	// The deposit is rounded once; the balance takes the remainder so the
	// two always sum back to the grand total exactly.
	deposit := money.ApplyRate(grand, DepositRate)
	balance := grand - deposit

	return Result{
		RentalDays:       days,
		ProductSubtotal:  lines.ProductSubtotal,
		ProductDiscount:  lines.ProductDiscount,
		WrappingTotal:    lines.WrappingTotal,
		AddonsTotal:      lines.AddonsTotal,
		ShippingCost:     shipping.ShippingCost,
		ShippingDiscount: shipping.ShippingDiscount,
		OBSurcharge:      surcharge,
		TaxableSubtotal:  taxable,
		Tax:              tax,
		GrandTotal:       grand,
		DepositAmount:    deposit,
		BalanceAmount:    balance,
		OBTriggerReasons: ob.Reasons,
	}
}
