package bookings

import (
	"time"

	"github.com/google/uuid"

	"github.com/hyrpunkten/hyrpunkten-backend/pkg/enums"
)

// LineInput is one product pick on the booking form. Prices are never
// accepted from the caller; they are copied from the catalog at save time.
type LineInput struct {
	ProductID        uuid.UUID
	Quantity         int
	WrappingSelected bool
}

// CreateBookingInput captures the staff-entered payload for a new booking.
type CreateBookingInput struct {
	CustomerName        string
	Delivery            enums.DeliveryMethod
	PickupDate          *time.Time
	PickupTime          string
	DeliveryDate        *time.Time
	DeliveryTime        string
	ShippingBaseCostOre int64
	Lines               []LineInput
}

// UpdateBookingInput carries a full replacement of the editable booking
// fields. Lines are replaced wholesale; add-on selections made on the
// quotation page survive the update and are repriced against the new
// schedule.
type UpdateBookingInput struct {
	CustomerName        string
	Delivery            enums.DeliveryMethod
	PickupDate          *time.Time
	PickupTime          string
	DeliveryDate        *time.Time
	DeliveryTime        string
	ShippingBaseCostOre int64
	Lines               []LineInput
}
