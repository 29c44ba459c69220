package bookings

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hyrpunkten/hyrpunkten-backend/pkg/db/models"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/enums"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/types"
)

// BookingRepository defines the persistence surface the booking service needs.
// The booking row, its lines and add-on selections, and the linked quotation
// snapshot form one aggregate and are written together.
type BookingRepository interface {
	WithTx(tx *gorm.DB) BookingRepository
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	Save(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ReplaceLines(ctx context.Context, bookingID uuid.UUID, lines []models.BookingLine) error
	ReplaceAddons(ctx context.Context, bookingID uuid.UUID, addons []models.BookingAddon) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.BookingStatus) error
	CreateQuotation(ctx context.Context, quotation *models.Quotation) error
	SyncOpenQuotationSnapshot(ctx context.Context, bookingID uuid.UUID, snap types.PricingSnapshot) error
}
