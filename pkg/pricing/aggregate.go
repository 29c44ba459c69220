package pricing

import "github.com/hyrpunkten/hyrpunkten-backend/pkg/money"

// LineTotals is the output of the line-item aggregation step.
type LineTotals struct {
	ProductSubtotal int64
	ProductDiscount int64
	WrappingTotal   int64
	AddonsTotal     int64
	LineCount       int
}

// AggregateLines sums product, wrapping and add-on charges for one booking.
// Product lines scale with rental days; wrapping is a flat per-line service
// charge and add-ons are one-time charges. LineCount counts distinct lines
// with a positive quantity, which is what the volume discount thresholds on.
func AggregateLines(lines []LineItem, addons []AddonSelection, rentalDays int) LineTotals {
	if rentalDays < 1 {
		rentalDays = 1
	}

	var totals LineTotals
	for _, line := range lines {
		qty := line.Quantity
		if qty < 0 {
			qty = 0
		}
		price := money.Clamp(line.PricePerPeriodOre)

		if qty > 0 {
			totals.LineCount++
			totals.ProductSubtotal += int64(qty) * price * int64(rentalDays)
		}
		if line.WrappingSelected {
			totals.WrappingTotal += money.Clamp(line.WrappingCostOre)
		}
	}

	for _, addon := range addons {
		if !addon.Selected {
			continue
		}
		qty := addon.Quantity
		if qty == 0 {
			qty = 1
		}
		if qty < 0 {
			continue
		}
		totals.AddonsTotal += money.Clamp(addon.PriceOre) * int64(qty)
	}

	if totals.LineCount >= VolumeDiscountMinLines {
		totals.ProductDiscount = money.ApplyRate(totals.ProductSubtotal, VolumeDiscountRate)
	}

	return totals
}
