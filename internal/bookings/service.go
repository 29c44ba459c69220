package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hyrpunkten/hyrpunkten-backend/pkg/db/models"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/enums"
	pkgerrors "github.com/hyrpunkten/hyrpunkten-backend/pkg/errors"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/metrics"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/pricing"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/types"
)

// MetricSurface labels booking-driven recomputes in the pricing metrics.
const MetricSurface = "booking"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type catalogLoader interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// Service exposes booking lifecycle operations. Every write path recomputes
// the pricing snapshot server-side; totals submitted by callers are ignored.
type Service interface {
	Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateBookingInput) (*models.Booking, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	Reprice(ctx context.Context, id uuid.UUID) (*models.Booking, error)
}

type service struct {
	repo    BookingRepository
	tx      txRunner
	catalog catalogLoader
	engine  *pricing.Engine
	metrics *metrics.PricingMetrics
}

// NewService builds a booking service backed by the provided stack.
func NewService(repo BookingRepository, tx txRunner, catalog catalogLoader, engine *pricing.Engine, m *metrics.PricingMetrics) (Service, error) {
	if repo == nil {
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
	return &service{repo: repo, tx: tx, catalog: catalog, engine: engine, metrics: m}, nil
}

// Create validates the payload, prices it, and persists the booking together
// with its open quotation in one transaction.
func (s *service) Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
	}
	if !input.Delivery.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid delivery method")
	}
	if input.ShippingBaseCostOre < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipping base cost must be non-negative")
	}

	lines, err := s.buildLines(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		CustomerName:        strings.TrimSpace(input.CustomerName),
		Status:              enums.BookingStatusDraft,
		Delivery:            input.Delivery,
		PickupDate:          input.PickupDate,
		PickupTime:          input.PickupTime,
		DeliveryDate:        input.DeliveryDate,
		DeliveryTime:        input.DeliveryTime,
		ShippingBaseCostOre: input.ShippingBaseCostOre,
	}

	result := s.compute(booking, lines, nil)
	booking.Pricing = types.SnapshotFromResult(result)

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.Create(ctx, booking); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create booking")
		}
		if err := repo.ReplaceLines(ctx, booking.ID, lines); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist booking lines")
		}
		quotation := &models.Quotation{
			BookingID: booking.ID,
			Status:    enums.QuotationStatusOpen,
			Pricing:   booking.Pricing,
		}
		if err := repo.CreateQuotation(ctx, quotation); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create quotation")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, booking.ID)
}

// Update replaces the editable fields, reprices, and syncs the open
// quotation. Signed bookings are immutable.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateBookingInput) (*models.Booking, error) {
	booking, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == enums.BookingStatusSigned {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "booking is signed and can no longer be edited")
	}
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
	}
	if !input.Delivery.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid delivery method")
	}
	if input.ShippingBaseCostOre < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipping base cost must be non-negative")
	}

	lines, err := s.buildLines(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	booking.CustomerName = strings.TrimSpace(input.CustomerName)
	booking.Delivery = input.Delivery
	booking.PickupDate = input.PickupDate
	booking.PickupTime = input.PickupTime
	booking.DeliveryDate = input.DeliveryDate
	booking.DeliveryTime = input.DeliveryTime
	booking.ShippingBaseCostOre = input.ShippingBaseCostOre

	result := s.compute(booking, lines, booking.Addons)
	booking.Pricing = types.SnapshotFromResult(result)

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.Save(ctx, booking); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save booking")
		}
		if err := repo.ReplaceLines(ctx, booking.ID, lines); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist booking lines")
		}
		if err := repo.SyncOpenQuotationSnapshot(ctx, booking.ID, booking.Pricing); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sync quotation snapshot")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, booking.ID)
}

// Get loads a booking with its lines, add-ons, and last pricing snapshot.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return s.load(ctx, id)
}

// Reprice recomputes the snapshot from the persisted aggregate as it stands.
// Staff use it after catalog corrections or calendar updates.
func (s *service) Reprice(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == enums.BookingStatusSigned {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "booking is signed and keeps its contracted totals")
	}

	result := s.compute(booking, booking.Lines, booking.Addons)
	booking.Pricing = types.SnapshotFromResult(result)

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.Save(ctx, booking); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save booking")
		}
		if err := repo.SyncOpenQuotationSnapshot(ctx, booking.ID, booking.Pricing); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sync quotation snapshot")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "booking id is required")
	}
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load booking")
	}
	return booking, nil
}

// buildLines resolves catalog prices for the submitted picks. Quantities may
// be zero (a drafted line) but never negative, and wrapping is only accepted
// on products flagged wrappable.
func (s *service) buildLines(ctx context.Context, inputs []LineInput) ([]models.BookingLine, error) {
	lines := make([]models.BookingLine, 0, len(inputs))
	for _, in := range inputs {
		if in.ProductID == uuid.Nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "line product id is required")
		}
		if in.Quantity < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "line quantity must be non-negative")
		}

		product, err := s.catalog.GetProduct(ctx, in.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
					WithDetails(map[string]any{"product_id": in.ProductID})
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
		}
		if !product.IsActive {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product is not rentable").
				WithDetails(map[string]any{"product_id": in.ProductID})
		}
		if in.WrappingSelected && !product.CanBeWrapped {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product cannot be wrapped").
				WithDetails(map[string]any{"product_id": in.ProductID})
		}

		lines = append(lines, models.BookingLine{
			ProductID:         product.ID,
			ProductName:       product.Name,
			Quantity:          in.Quantity,
			PricePerPeriodOre: product.PricePerPeriodOre,
			WrappingSelected:  in.WrappingSelected,
			WrappingCostOre:   product.WrappingCostOre,
		})
	}
	return lines, nil
}

func (s *service) compute(booking *models.Booking, lines []models.BookingLine, addons []models.BookingAddon) pricing.Result {
	started := time.Now()
	result := s.engine.Compute(BuildPricingInput(booking, lines, addons))
	s.metrics.ObserveComputation(MetricSurface, result.OBSurcharge > 0, time.Since(started))
	return result
}
