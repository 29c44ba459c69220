package signing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hyrpunkten/hyrpunkten-backend/internal/bookings"
	"github.com/hyrpunkten/hyrpunkten-backend/internal/quotations"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/db/models"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/enums"
	pkgerrors "github.com/hyrpunkten/hyrpunkten-backend/pkg/errors"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// SignInput carries the customer's signature from the quotation page.
type SignInput struct {
	SignedBy string
}

// Contract is the customer-facing summary returned once a quotation is
// signed. Amounts come from the last persisted snapshot verbatim; signing
// never reprices.
type Contract struct {
	QuotationID   uuid.UUID
	BookingID     uuid.UUID
	CustomerName  string
	SignedBy      string
	FinalizedAt   time.Time
	Pricing       types.PricingSnapshot
	GrandTotalSEK string
	DepositSEK    string
	BalanceSEK    string
}

// Service finalizes quotations into signed contracts.
type Service interface {
	Finalize(ctx context.Context, quotationID uuid.UUID, input SignInput) (*Contract, error)
}

type service struct {
	quotes   quotations.QuotationRepository
	bookings bookings.BookingRepository
	tx       txRunner
}

// NewService builds a signing service backed by the provided repositories.
func NewService(quotes quotations.QuotationRepository, bookingRepo bookings.BookingRepository, tx txRunner) (Service, error) {
	if quotes == nil {
		return nil, fmt.Errorf("quotation repository required")
	}
	if bookingRepo == nil {
		return nil, fmt.Errorf("booking repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{quotes: quotes, bookings: bookingRepo, tx: tx}, nil
}

// Finalize locks the quotation at its current totals and marks the booking
// signed. The snapshot the customer saw is the snapshot the contract keeps.
func (s *service) Finalize(ctx context.Context, quotationID uuid.UUID, input SignInput) (*Contract, error) {
	if quotationID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quotation id is required")
	}
	signedBy := strings.TrimSpace(input.SignedBy)
	if signedBy == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "signer name is required")
	}

	quotation, err := s.quotes.FindByID(ctx, quotationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "quotation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quotation")
	}
	if quotation.Status != enums.QuotationStatusOpen {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "quotation is already finalized")
	}

	booking, err := s.bookings.FindByID(ctx, quotation.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load booking")
	}

	now := time.Now().UTC()
	quotation.Status = enums.QuotationStatusFinalized
	quotation.FinalizedAt = &now
	quotation.SignedBy = signedBy

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if _, err := s.quotes.WithTx(tx).Save(ctx, quotation); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save quotation")
		}
		if err := s.bookings.WithTx(tx).UpdateStatus(ctx, booking.ID, enums.BookingStatusSigned); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark booking signed")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return buildContract(quotation, booking), nil
}

func buildContract(quotation *models.Quotation, booking *models.Booking) *Contract {
	return &Contract{
		QuotationID:   quotation.ID,
		BookingID:     booking.ID,
		CustomerName:  booking.CustomerName,
		SignedBy:      quotation.SignedBy,
		FinalizedAt:   *quotation.FinalizedAt,
		Pricing:       quotation.Pricing,
		GrandTotalSEK: quotation.Pricing.GrandTotalSEK(),
		DepositSEK:    quotation.Pricing.DepositSEK(),
		BalanceSEK:    quotation.Pricing.BalanceSEK(),
	}
}
