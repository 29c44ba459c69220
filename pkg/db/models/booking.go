package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/hyrpunkten/hyrpunkten-backend/pkg/enums"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/types"
)

// Booking is the staff-created rental record. The embedded pricing snapshot
// is overwritten wholesale on every recompute; last write wins at this
// boundary, so readers re-fetch before showing a customer a total.
type Booking struct {
	ID           uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerName string               `gorm:"column:customer_name;not null"`
	Status       enums.BookingStatus  `gorm:"column:status;not null;default:'draft'"`
	Delivery     enums.DeliveryMethod `gorm:"column:delivery_method;not null;default:'internal'"`

	PickupDate          *time.Time `gorm:"column:pickup_date;type:date"`
	PickupTime          string     `gorm:"column:pickup_time"`
	DeliveryDate        *time.Time `gorm:"column:delivery_date;type:date"`
	DeliveryTime        string     `gorm:"column:delivery_time"`
	ShippingBaseCostOre int64      `gorm:"column:shipping_base_cost_ore;not null;default:0"`

	Pricing types.PricingSnapshot `gorm:"embedded"`

	Lines  []BookingLine  `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	Addons []BookingAddon `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
