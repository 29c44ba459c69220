package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingLine is one rented product line frozen onto a booking. Prices are
// copied from the catalog at selection time; a line belongs to exactly one
// booking and is never shared.
type BookingLine struct {
	ID                uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	BookingID         uuid.UUID `gorm:"column:booking_id;type:uuid;not null;index"`
	ProductID         uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	ProductName       string    `gorm:"column:product_name;not null"`
	Quantity          int       `gorm:"column:quantity;not null;default:0"`
	PricePerPeriodOre int64     `gorm:"column:price_per_period_ore;not null;default:0"`
	WrappingSelected  bool      `gorm:"column:wrapping_selected;not null;default:false"`
	WrappingCostOre   int64     `gorm:"column:wrapping_cost_ore;not null;default:0"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
}
