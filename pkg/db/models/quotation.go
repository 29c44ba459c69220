package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/hyrpunkten/hyrpunkten-backend/pkg/enums"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/types"
)

// Quotation is the customer-facing configuration surface linked to a booking.
// It carries its own pricing snapshot so the quotation page and the booking
// list can render totals without joining each other.
type Quotation struct {
	ID        uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	BookingID uuid.UUID             `gorm:"column:booking_id;type:uuid;not null;uniqueIndex"`
	Status    enums.QuotationStatus `gorm:"column:status;not null;default:'open'"`

	Pricing types.PricingSnapshot `gorm:"embedded"`

	FinalizedAt *time.Time `gorm:"column:finalized_at"`
	SignedBy    string     `gorm:"column:signed_by"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
