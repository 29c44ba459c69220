package models

import (
	"time"

	"github.com/google/uuid"
)

// Addon is a one-time extra offered on the quotation page, priced in öre.
type Addon struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	PriceOre  int64     `gorm:"column:price_ore;not null;default:0"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
