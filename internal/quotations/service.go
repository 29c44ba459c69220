package quotations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hyrpunkten/hyrpunkten-backend/internal/bookings"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/db/models"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/enums"
	pkgerrors "github.com/hyrpunkten/hyrpunkten-backend/pkg/errors"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/metrics"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/pricing"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/types"
)

// MetricSurface labels customer-driven recomputes in the pricing metrics.
const MetricSurface = "quotation"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type catalogLoader interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetAddon(ctx context.Context, id uuid.UUID) (*models.Addon, error)
}

// Service exposes the customer-facing quotation operations. Configure is the
// only write path; it reprices server-side on every call.
type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*QuotationView, error)
	GetByBooking(ctx context.Context, bookingID uuid.UUID) (*QuotationView, error)
	Configure(ctx context.Context, id uuid.UUID, input ConfigureInput) (*QuotationView, error)
}

type service struct {
	repo     QuotationRepository
	bookings bookings.BookingRepository
	tx       txRunner
	catalog  catalogLoader
	engine   *pricing.Engine
	metrics  *metrics.PricingMetrics
}

// NewService builds a quotation service backed by the provided stack.
func NewService(repo QuotationRepository, bookingRepo bookings.BookingRepository, tx txRunner, catalog catalogLoader, engine *pricing.Engine, m *metrics.PricingMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("quotation repository required")
	}
	if bookingRepo == nil {
		return nil, fmt.Errorf("booking repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog loader required")
	}
	if engine == nil {
		return nil, fmt.Errorf("pricing engine required")
	}
	return &service{repo: repo, bookings: bookingRepo, tx: tx, catalog: catalog, engine: engine, metrics: m}, nil
}

// Get loads the quotation and its booking for rendering.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*QuotationView, error) {
	quotation, err := s.loadQuotation(ctx, id)
	if err != nil {
		return nil, err
	}
	booking, err := s.loadBooking(ctx, quotation.BookingID)
	if err != nil {
		return nil, err
	}
	return &QuotationView{Quotation: quotation, Booking: booking}, nil
}

// GetByBooking resolves the quotation from the staff side, where only the
// booking id is at hand.
func (s *service) GetByBooking(ctx context.Context, bookingID uuid.UUID) (*QuotationView, error) {
	if bookingID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "booking id is required")
	}
	quotation, err := s.repo.FindByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "quotation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quotation")
	}
	booking, err := s.loadBooking(ctx, quotation.BookingID)
	if err != nil {
		return nil, err
	}
	return &QuotationView{Quotation: quotation, Booking: booking}, nil
}

// Configure applies add-on, wrapping, and delivery choices, reprices, and
// persists the new snapshot onto both the quotation and its booking in one
// transaction. Add-on selections are replaced wholesale, so the page always
// submits its full set. Finalized quotations reject further changes.
func (s *service) Configure(ctx context.Context, id uuid.UUID, input ConfigureInput) (*QuotationView, error) {
	quotation, err := s.loadQuotation(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation.Status != enums.QuotationStatusOpen {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "quotation is no longer open for changes")
	}

	booking, err := s.loadBooking(ctx, quotation.BookingID)
	if err != nil {
		return nil, err
	}

	if input.Delivery != nil {
		if !input.Delivery.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid delivery method")
		}
		booking.Delivery = *input.Delivery
	}

	lines, err := s.applyWrapping(ctx, booking.Lines, input.Wrapping)
	if err != nil {
		return nil, err
	}

	addons, err := s.buildAddons(ctx, input.Addons)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	result := s.engine.Compute(bookings.BuildPricingInput(booking, lines, addons))
	s.metrics.ObserveComputation(MetricSurface, result.OBSurcharge > 0, time.Since(started))

	snap := types.SnapshotFromResult(result)
	booking.Pricing = snap
	quotation.Pricing = snap

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		bookingRepo := s.bookings.WithTx(tx)
		if _, err := bookingRepo.Save(ctx, booking); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save booking")
		}
		if err := bookingRepo.ReplaceLines(ctx, booking.ID, lines); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist wrapping choices")
		}
		if err := bookingRepo.ReplaceAddons(ctx, booking.ID, addons); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist addon choices")
		}
		if _, err := s.repo.WithTx(tx).Save(ctx, quotation); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save quotation")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *service) loadQuotation(ctx context.Context, id uuid.UUID) (*models.Quotation, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quotation id is required")
	}
	quotation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "quotation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quotation")
	}
	return quotation, nil
}

func (s *service) loadBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load booking")
	}
	return booking, nil
}

// applyWrapping flips wrapping flags on the booking lines. Selecting wrapping
// re-checks the catalog so a product made unwrappable after booking cannot
// gain the charge, and refreshes the wrapping cost in the same step.
func (s *service) applyWrapping(ctx context.Context, current []models.BookingLine, toggles []WrappingToggle) ([]models.BookingLine, error) {
	lines := make([]models.BookingLine, len(current))
	copy(lines, current)

	byID := map[uuid.UUID]int{}
	for i, line := range lines {
		byID[line.ID] = i
	}

	for _, toggle := range toggles {
		idx, ok := byID[toggle.LineID]
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking line not found").
				WithDetails(map[string]any{"line_id": toggle.LineID})
		}
		if !toggle.Selected {
			lines[idx].WrappingSelected = false
			continue
		}

		product, err := s.catalog.GetProduct(ctx, lines[idx].ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
		}
		if !product.CanBeWrapped {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product cannot be wrapped").
				WithDetails(map[string]any{"line_id": toggle.LineID})
		}
		lines[idx].WrappingSelected = true
		lines[idx].WrappingCostOre = product.WrappingCostOre
	}

	return lines, nil
}

// buildAddons resolves selected add-ons against the catalog. Unselected
// toggles simply drop the add-on; quantity zero means one.
func (s *service) buildAddons(ctx context.Context, toggles []AddonToggle) ([]models.BookingAddon, error) {
	addons := make([]models.BookingAddon, 0, len(toggles))
	for _, toggle := range toggles {
		if !toggle.Selected {
			continue
		}
		if toggle.AddonID == uuid.Nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "addon id is required")
		}
		if toggle.Quantity < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "addon quantity must be non-negative")
		}

		addon, err := s.catalog.GetAddon(ctx, toggle.AddonID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "addon not found").
					WithDetails(map[string]any{"addon_id": toggle.AddonID})
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load addon")
		}
		if !addon.IsActive {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "addon is not offered").
				WithDetails(map[string]any{"addon_id": toggle.AddonID})
		}

		quantity := toggle.Quantity
		if quantity == 0 {
			quantity = 1
		}
		addons = append(addons, models.BookingAddon{
			AddonID:   addon.ID,
			AddonName: addon.Name,
			PriceOre:  addon.PriceOre,
			Quantity:  quantity,
			Selected:  true,
		})
	}
	return addons, nil
}
