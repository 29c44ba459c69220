package bookings

import (
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/db/models"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/pricing"
)

// BuildPricingInput maps a booking aggregate onto an engine input. Every
// surface that reprices a booking goes through this mapping so the engine
// always sees the same shape of data.
func BuildPricingInput(booking *models.Booking, lines []models.BookingLine, addons []models.BookingAddon) pricing.Input {
	input := pricing.Input{
		Delivery:            booking.Delivery,
		ShippingBaseCostOre: booking.ShippingBaseCostOre,
		Schedule: pricing.Schedule{
			PickupDate:   booking.PickupDate,
			PickupTime:   booking.PickupTime,
			DeliveryDate: booking.DeliveryDate,
			DeliveryTime: booking.DeliveryTime,
		},
	}

	input.Lines = make([]pricing.LineItem, 0, len(lines))
	for _, line := range lines {
		input.Lines = append(input.Lines, pricing.LineItem{
			ProductID:         line.ProductID,
			Name:              line.ProductName,
			Quantity:          line.Quantity,
			PricePerPeriodOre: line.PricePerPeriodOre,
			WrappingSelected:  line.WrappingSelected,
			WrappingCostOre:   line.WrappingCostOre,
		})
	}

	input.Addons = make([]pricing.AddonSelection, 0, len(addons))
	for _, addon := range addons {
		input.Addons = append(input.Addons, pricing.AddonSelection{
			AddonID:  addon.AddonID,
			Name:     addon.AddonName,
			PriceOre: addon.PriceOre,
			Quantity: addon.Quantity,
			Selected: addon.Selected,
		})
	}

	return input
}
