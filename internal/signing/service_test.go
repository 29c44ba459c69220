package signing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	bookingspkg "github.com/hyrpunkten/hyrpunkten-backend/internal/bookings"
	"github.com/hyrpunkten/hyrpunkten-backend/internal/quotations"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/db/models"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/enums"
	pkgerrors "github.com/hyrpunkten/hyrpunkten-backend/pkg/errors"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/types"
)

func TestFinalizeRequiresSigner(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubQuotationRepo{}, &stubBookingRepo{})

	_, err := svc.Finalize(context.Background(), uuid.New(), SignInput{SignedBy: "  "})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFinalizeRefusesAlreadyFinalized(t *testing.T) {
	t.Parallel()

	quotation := &models.Quotation{ID: uuid.New(), BookingID: uuid.New(), Status: enums.QuotationStatusFinalized}
	svc := newTestService(t, &stubQuotationRepo{quotation: quotation}, &stubBookingRepo{})

	_, err := svc.Finalize(context.Background(), quotation.ID, SignInput{SignedBy: "Eva Lind"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestFinalizeLocksSnapshotAndSignsBooking(t *testing.T) {
	t.Parallel()

	booking := &models.Booking{ID: uuid.New(), CustomerName: "Eva Lind", Status: enums.BookingStatusDraft}
	quotation := &models.Quotation{
		ID:        uuid.New(),
		BookingID: booking.ID,
		Status:    enums.QuotationStatusOpen,
		Pricing: types.PricingSnapshot{
			RentalDays:    3,
			GrandTotalOre: 1_234_50,
			DepositOre:    617_25,
			BalanceOre:    617_25,
		},
	}
	quoteRepo := &stubQuotationRepo{quotation: quotation}
	bookingRepo := &stubBookingRepo{booking: booking}
	svc := newTestService(t, quoteRepo, bookingRepo)

	contract, err := svc.Finalize(context.Background(), quotation.ID, SignInput{SignedBy: "Eva Lind"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if contract.GrandTotalSEK != "1 234,50 kr" {
		t.Fatalf("grand total = %q, want \"1 234,50 kr\"", contract.GrandTotalSEK)
	}
	if contract.Pricing.GrandTotalOre != 1_234_50 {
		t.Fatalf("contract must carry the persisted snapshot verbatim")
	}
	if quoteRepo.quotation.Status != enums.QuotationStatusFinalized {
		t.Fatalf("quotation status = %s, want finalized", quoteRepo.quotation.Status)
	}
	if quoteRepo.quotation.FinalizedAt == nil {
		t.Fatal("expected finalized timestamp")
	}
	if bookingRepo.booking.Status != enums.BookingStatusSigned {
		t.Fatalf("booking status = %s, want signed", bookingRepo.booking.Status)
	}
}

func newTestService(t *testing.T, quotes quotations.QuotationRepository, bookingRepo bookingspkg.BookingRepository) Service {
	t.Helper()
	svc, err := NewService(quotes, bookingRepo, stubTxRunner{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type stubQuotationRepo struct {
	quotation *models.Quotation
}

func (s *stubQuotationRepo) WithTx(tx *gorm.DB) quotations.QuotationRepository { return s }

func (s *stubQuotationRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Quotation, error) {
	if s.quotation == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.quotation, nil
}

func (s *stubQuotationRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Quotation, error) {
	if s.quotation == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.quotation, nil
}

func (s *stubQuotationRepo) Save(ctx context.Context, quotation *models.Quotation) (*models.Quotation, error) {
	s.quotation = quotation
	return quotation, nil
}

type stubBookingRepo struct {
	booking *models.Booking
}

func (s *stubBookingRepo) WithTx(tx *gorm.DB) bookingspkg.BookingRepository { return s }

func (s *stubBookingRepo) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	s.booking = booking
	return booking, nil
}

func (s *stubBookingRepo) Save(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	s.booking = booking
	return booking, nil
}

func (s *stubBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	if s.booking == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.booking, nil
}

func (s *stubBookingRepo) ReplaceLines(ctx context.Context, bookingID uuid.UUID, lines []models.BookingLine) error {
	return nil
}

func (s *stubBookingRepo) ReplaceAddons(ctx context.Context, bookingID uuid.UUID, addons []models.BookingAddon) error {
	return nil
}

func (s *stubBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.BookingStatus) error {
	if s.booking != nil {
		s.booking.Status = status
	}
	return nil
}

func (s *stubBookingRepo) CreateQuotation(ctx context.Context, quotation *models.Quotation) error {
	return nil
}

func (s *stubBookingRepo) SyncOpenQuotationSnapshot(ctx context.Context, bookingID uuid.UUID, snap types.PricingSnapshot) error {
	return nil
}
