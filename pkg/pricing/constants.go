package pricing

import "github.com/shopspring/decimal"

// OBSurchargeOre is the flat unsociable-hours fee, 1 500 kr. One fee per
// booking no matter how many conditions match.
const OBSurchargeOre int64 = 150_000

// VolumeDiscountMinLines is the number of distinct product lines at which the
// volume discount starts. Distinct lines, not total units.
const VolumeDiscountMinLines = 3

var (
	// VATRate is Swedish standard VAT.
	VATRate = decimal.NewFromFloat(0.25)

	// VolumeDiscountRate applies to the product subtotal and, independently,
	// to external shipping once the line threshold is met.
	VolumeDiscountRate = decimal.NewFromFloat(0.10)

	// DepositRate splits the grand total into deposit and balance. The
	// balance absorbs the rounding remainder.
	DepositRate = decimal.NewFromFloat(0.50)
)
