package quotations

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hyrpunkten/hyrpunkten-backend/pkg/db/models"
)

// QuotationRepository defines the persistence surface required by the
// quotation and signing services.
type QuotationRepository interface {
	WithTx(tx *gorm.DB) QuotationRepository
	FindByID(ctx context.Context, id uuid.UUID) (*models.Quotation, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Quotation, error)
	Save(ctx context.Context, quotation *models.Quotation) (*models.Quotation, error)
}

// Repository exposes persistence operations for quotations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a quotation repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) QuotationRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// FindByID loads a quotation by its public id.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Quotation, error) {
	var row models.Quotation
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByBookingID loads the quotation linked to a booking.
func (r *Repository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Quotation, error) {
	var row models.Quotation
	if err := r.db.WithContext(ctx).First(&row, "booking_id = ?", bookingID).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Save persists the quotation including its embedded pricing snapshot.
func (r *Repository) Save(ctx context.Context, quotation *models.Quotation) (*models.Quotation, error) {
	if err := r.db.WithContext(ctx).Save(quotation).Error; err != nil {
		return nil, err
	}
	return quotation, nil
}
