package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingAddon is an add-on selection frozen onto a booking.
type BookingAddon struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	BookingID uuid.UUID `gorm:"column:booking_id;type:uuid;not null;index"`
	AddonID   uuid.UUID `gorm:"column:addon_id;type:uuid;not null"`
	AddonName string    `gorm:"column:addon_name;not null"`
	PriceOre  int64     `gorm:"column:price_ore;not null;default:0"`
	Quantity  int       `gorm:"column:quantity;not null;default:1"`
	Selected  bool      `gorm:"column:selected;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
