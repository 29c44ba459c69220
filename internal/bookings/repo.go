package bookings

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hyrpunkten/hyrpunkten-backend/pkg/db/models"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/enums"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/types"
)

// Repository exposes persistence operations for the booking aggregate.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a booking repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) BookingRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// Create inserts a new booking row. The id is assigned here so lines and the
// linked quotation can reference it within the same transaction.
func (r *Repository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if booking.Status == "" {
		booking.Status = enums.BookingStatusDraft
	}
	if err := r.db.WithContext(ctx).Omit("Lines", "Addons").Create(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

// Save persists the booking row including its embedded pricing snapshot.
// Lines and add-ons are replaced explicitly, never through association saves.
func (r *Repository) Save(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if err := r.db.WithContext(ctx).Omit("Lines", "Addons").Save(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

// FindByID loads a booking with its lines and add-on selections.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var row models.Booking
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Addons").
		First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ReplaceLines atomically replaces the product lines of a booking.
func (r *Repository) ReplaceLines(ctx context.Context, bookingID uuid.UUID, lines []models.BookingLine) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("booking_id = ?", bookingID).Delete(&models.BookingLine{}).Error; err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	for i := range lines {
		if lines[i].ID == uuid.Nil {
			lines[i].ID = uuid.New()
		}
		lines[i].BookingID = bookingID
	}
	return tx.Create(&lines).Error
}

// ReplaceAddons atomically replaces the add-on selections of a booking.
func (r *Repository) ReplaceAddons(ctx context.Context, bookingID uuid.UUID, addons []models.BookingAddon) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("booking_id = ?", bookingID).Delete(&models.BookingAddon{}).Error; err != nil {
		return err
	}
	if len(addons) == 0 {
		return nil
	}
	for i := range addons {
		if addons[i].ID == uuid.Nil {
			addons[i].ID = uuid.New()
		}
		addons[i].BookingID = bookingID
	}
	return tx.Create(&addons).Error
}

// UpdateStatus moves a booking to the given status.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// CreateQuotation inserts the quotation linked to a freshly created booking.
func (r *Repository) CreateQuotation(ctx context.Context, quotation *models.Quotation) error {
	if quotation.ID == uuid.Nil {
		quotation.ID = uuid.New()
	}
	if quotation.Status == "" {
		quotation.Status = enums.QuotationStatusOpen
	}
	return r.db.WithContext(ctx).Create(quotation).Error
}

// SyncOpenQuotationSnapshot copies a recomputed snapshot onto the linked
// quotation. Finalized quotations keep the totals the customer signed.
func (r *Repository) SyncOpenQuotationSnapshot(ctx context.Context, bookingID uuid.UUID, snap types.PricingSnapshot) error {
	return r.db.WithContext(ctx).
		Model(&models.Quotation{}).
		Where("booking_id = ? AND status = ?", bookingID, enums.QuotationStatusOpen).
		Updates(map[string]any{
			"rental_days":           snap.RentalDays,
			"product_subtotal_ore":  snap.ProductSubtotalOre,
			"product_discount_ore":  snap.ProductDiscountOre,
			"wrapping_total_ore":    snap.WrappingTotalOre,
			"addons_total_ore":      snap.AddonsTotalOre,
			"shipping_cost_ore":     snap.ShippingCostOre,
			"shipping_discount_ore": snap.ShippingDiscountOre,
			"ob_surcharge_ore":      snap.OBSurchargeOre,
			"taxable_subtotal_ore":  snap.TaxableSubtotalOre,
			"tax_ore":               snap.TaxOre,
			"grand_total_ore":       snap.GrandTotalOre,
			"deposit_ore":           snap.DepositOre,
			"balance_ore":           snap.BalanceOre,
			"ob_trigger_reasons":    snap.OBTriggerReasons,
		}).Error
}
