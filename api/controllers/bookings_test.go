package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	bookingsvc "github.com/hyrpunkten/hyrpunkten-backend/internal/bookings"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/db/models"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/enums"
	pkgerrors "github.com/hyrpunkten/hyrpunkten-backend/pkg/errors"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/types"
)

type stubBookingService struct {
	booking   *models.Booking
	err       error
	lastInput bookingsvc.CreateBookingInput
}

func (s *stubBookingService) Create(ctx context.Context, input bookingsvc.CreateBookingInput) (*models.Booking, error) {
	s.lastInput = input
	return s.booking, s.err
}

func (s *stubBookingService) Update(ctx context.Context, id uuid.UUID, input bookingsvc.UpdateBookingInput) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) Get(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) Reprice(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return s.booking, s.err
}

func TestBookingCreateSuccess(t *testing.T) {
	booking := &models.Booking{
		ID:           uuid.New(),
		CustomerName: "Eva Lind",
		Status:       enums.BookingStatusDraft,
		Delivery:     enums.DeliveryMethodInternal,
		Pricing:      types.PricingSnapshot{RentalDays: 1, GrandTotalOre: 250_000, DepositOre: 125_000, BalanceOre: 125_000},
	}
	svc := &stubBookingService{booking: booking}
	handler := BookingCreate(svc, nil)

	body := `{"customer_name":"Eva Lind","delivery_method":"internal","pickup_date":"2026-03-10","pickup_time":"10:00","delivery_date":"2026-03-12","delivery_time":"14:00","shipping_base_cost_ore":0,"lines":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.lastInput.Delivery != enums.DeliveryMethodInternal {
		t.Fatalf("unexpected delivery method: %s", svc.lastInput.Delivery)
	}
	if svc.lastInput.PickupDate == nil || svc.lastInput.PickupDate.Day() != 10 {
		t.Fatalf("pickup date not parsed: %+v", svc.lastInput.PickupDate)
	}

	var envelope struct {
		Data bookingView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.GrandTotalSEK != "2 500,00 kr" {
		t.Fatalf("grand total = %q", envelope.Data.GrandTotalSEK)
	}
}

func TestBookingCreateRejectsMissingCustomerName(t *testing.T) {
	handler := BookingCreate(&stubBookingService{}, nil)

	body := `{"delivery_method":"internal"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestBookingCreateRejectsUnknownDelivery(t *testing.T) {
	handler := BookingCreate(&stubBookingService{}, nil)

	body := `{"customer_name":"Eva Lind","delivery_method":"teleport"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestBookingFetchInvalidID(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/bookings/{id}", BookingFetch(&stubBookingService{}, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/not-a-uuid", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestBookingFetchNotFound(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/bookings/{id}", BookingFetch(&stubBookingService{err: pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")}, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+uuid.NewString(), nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestBookingRepriceSignedConflict(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/v1/bookings/{id}/reprice", BookingReprice(&stubBookingService{err: pkgerrors.New(pkgerrors.CodeStateConflict, "booking is signed and keeps its contracted totals")}, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/"+uuid.NewString()+"/reprice", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}
}
