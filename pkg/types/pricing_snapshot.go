package types

import (
	"github.com/lib/pq"

	"github.com/hyrpunkten/hyrpunkten-backend/pkg/money"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/pricing"
)

// PricingSnapshot is the persisted shape of a pricing result, embedded in the
// booking and quotation rows. It is always written as a whole: a recompute
// overwrites the previous snapshot, it never patches single fields.
type PricingSnapshot struct {
	RentalDays          int            `gorm:"column:rental_days;not null;default:1" json:"rental_days"`
	ProductSubtotalOre  int64          `gorm:"column:product_subtotal_ore;not null;default:0" json:"product_subtotal_ore"`
	ProductDiscountOre  int64          `gorm:"column:product_discount_ore;not null;default:0" json:"product_discount_ore"`
	WrappingTotalOre    int64          `gorm:"column:wrapping_total_ore;not null;default:0" json:"wrapping_total_ore"`
	AddonsTotalOre      int64          `gorm:"column:addons_total_ore;not null;default:0" json:"addons_total_ore"`
	ShippingCostOre     int64          `gorm:"column:shipping_cost_ore;not null;default:0" json:"shipping_cost_ore"`
	ShippingDiscountOre int64          `gorm:"column:shipping_discount_ore;not null;default:0" json:"shipping_discount_ore"`
	OBSurchargeOre      int64          `gorm:"column:ob_surcharge_ore;not null;default:0" json:"ob_surcharge_ore"`
	TaxableSubtotalOre  int64          `gorm:"column:taxable_subtotal_ore;not null;default:0" json:"taxable_subtotal_ore"`
	TaxOre              int64          `gorm:"column:tax_ore;not null;default:0" json:"tax_ore"`
	GrandTotalOre       int64          `gorm:"column:grand_total_ore;not null;default:0" json:"grand_total_ore"`
	DepositOre          int64          `gorm:"column:deposit_ore;not null;default:0" json:"deposit_ore"`
	BalanceOre          int64          `gorm:"column:balance_ore;not null;default:0" json:"balance_ore"`
	OBTriggerReasons    pq.StringArray `gorm:"column:ob_trigger_reasons;type:text[]" json:"ob_trigger_reasons"`
}

// SnapshotFromResult maps an engine result onto the persisted columns.
func SnapshotFromResult(result pricing.Result) PricingSnapshot {
	return PricingSnapshot{
		RentalDays:          result.RentalDays,
		ProductSubtotalOre:  result.ProductSubtotal,
		ProductDiscountOre:  result.ProductDiscount,
		WrappingTotalOre:    result.WrappingTotal,
		AddonsTotalOre:      result.AddonsTotal,
		ShippingCostOre:     result.ShippingCost,
		ShippingDiscountOre: result.ShippingDiscount,
		OBSurchargeOre:      result.OBSurcharge,
		TaxableSubtotalOre:  result.TaxableSubtotal,
		TaxOre:              result.Tax,
		GrandTotalOre:       result.GrandTotal,
		DepositOre:          result.DepositAmount,
		BalanceOre:          result.BalanceAmount,
		OBTriggerReasons:    pq.StringArray(result.OBTriggerReasons),
	}
}

// GrandTotalSEK renders the grand total for contract documents and emails.
func (s PricingSnapshot) GrandTotalSEK() string {
	return money.FormatSEK(s.GrandTotalOre)
}

// DepositSEK renders the deposit for contract documents and emails.
func (s PricingSnapshot) DepositSEK() string {
	return money.FormatSEK(s.DepositOre)
}

// BalanceSEK renders the remaining balance due at pickup.
func (s PricingSnapshot) BalanceSEK() string {
	return money.FormatSEK(s.BalanceOre)
}
