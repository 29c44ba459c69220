package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a rentable catalog entry. Per-period prices and wrapping costs
// are öre; the pricing engine reads them verbatim.
type Product struct {
	ID                uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name              string    `gorm:"column:name;not null"`
	SKU               string    `gorm:"column:sku;uniqueIndex;not null"`
	PricePerPeriodOre int64     `gorm:"column:price_per_period_ore;not null;default:0"`
	WrappingCostOre   int64     `gorm:"column:wrapping_cost_ore;not null;default:0"`
	CanBeWrapped      bool      `gorm:"column:can_be_wrapped;not null;default:false"`
	IsActive          bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
