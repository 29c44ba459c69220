package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hyrpunkten/hyrpunkten-backend/api/responses"
	"github.com/hyrpunkten/hyrpunkten-backend/api/validators"
	bookingsvc "github.com/hyrpunkten/hyrpunkten-backend/internal/bookings"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/db/models"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/enums"
	pkgerrors "github.com/hyrpunkten/hyrpunkten-backend/pkg/errors"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/logger"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/types"
)

const dateLayout = "2006-01-02"

type bookingLinePayload struct {
	ProductID        uuid.UUID `json:"product_id" validate:"required"`
	Quantity         int       `json:"quantity" validate:"min=0"`
	WrappingSelected bool      `json:"wrapping_selected"`
}

// bookingRequest is the staff payload for create and update. Times are kept
// as raw strings; an unparseable time means the surcharge rule sees no time.
type bookingRequest struct {
	CustomerName        string               `json:"customer_name" validate:"required"`
	DeliveryMethod      string               `json:"delivery_method" validate:"required"`
	PickupDate          *string              `json:"pickup_date" validate:"omitempty,datetime=2006-01-02"`
	PickupTime          string               `json:"pickup_time"`
	DeliveryDate        *string              `json:"delivery_date" validate:"omitempty,datetime=2006-01-02"`
	DeliveryTime        string               `json:"delivery_time"`
	ShippingBaseCostOre int64                `json:"shipping_base_cost_ore" validate:"min=0"`
	Lines               []bookingLinePayload `json:"lines" validate:"dive"`
}

func BookingCreate(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		var payload bookingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := toCreateBookingInput(payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		booking, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newBookingView(booking))
	}
}

func BookingFetch(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		id, err := idFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		booking, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newBookingView(booking))
	}
}

func BookingUpdate(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		id, err := idFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload bookingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := toCreateBookingInput(payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		booking, err := svc.Update(r.Context(), id, bookingsvc.UpdateBookingInput(input))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newBookingView(booking))
	}
}

func BookingReprice(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		id, err := idFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		booking, err := svc.Reprice(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newBookingView(booking))
	}
}

func idFromURL(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid id")
	}
	return id, nil
}

func toCreateBookingInput(payload bookingRequest) (bookingsvc.CreateBookingInput, error) {
	delivery, err := enums.ParseDeliveryMethod(payload.DeliveryMethod)
	if err != nil {
		return bookingsvc.CreateBookingInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid delivery method")
	}

	pickupDate, err := parseDate(payload.PickupDate)
	if err != nil {
		return bookingsvc.CreateBookingInput{}, err
	}
	deliveryDate, err := parseDate(payload.DeliveryDate)
	if err != nil {
		return bookingsvc.CreateBookingInput{}, err
	}

	lines := make([]bookingsvc.LineInput, 0, len(payload.Lines))
	for _, line := range payload.Lines {
		lines = append(lines, bookingsvc.LineInput{
			ProductID:        line.ProductID,
			Quantity:         line.Quantity,
			WrappingSelected: line.WrappingSelected,
		})
	}

	return bookingsvc.CreateBookingInput{
		CustomerName:        payload.CustomerName,
		Delivery:            delivery,
		PickupDate:          pickupDate,
		PickupTime:          payload.PickupTime,
		DeliveryDate:        deliveryDate,
		DeliveryTime:        payload.DeliveryTime,
		ShippingBaseCostOre: payload.ShippingBaseCostOre,
		Lines:               lines,
	}, nil
}

func parseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid date")
	}
	return &parsed, nil
}

type bookingLineView struct {
	ID                uuid.UUID `json:"id"`
	ProductID         uuid.UUID `json:"product_id"`
	ProductName       string    `json:"product_name"`
	Quantity          int       `json:"quantity"`
	PricePerPeriodOre int64     `json:"price_per_period_ore"`
	WrappingSelected  bool      `json:"wrapping_selected"`
	WrappingCostOre   int64     `json:"wrapping_cost_ore"`
}

type bookingAddonView struct {
	ID       uuid.UUID `json:"id"`
	AddonID  uuid.UUID `json:"addon_id"`
	Name     string    `json:"name"`
	PriceOre int64     `json:"price_ore"`
	Quantity int       `json:"quantity"`
}

type bookingView struct {
	ID                  uuid.UUID             `json:"id"`
	CustomerName        string                `json:"customer_name"`
	Status              string                `json:"status"`
	DeliveryMethod      string                `json:"delivery_method"`
	PickupDate          *string               `json:"pickup_date"`
	PickupTime          string                `json:"pickup_time,omitempty"`
	DeliveryDate        *string               `json:"delivery_date"`
	DeliveryTime        string                `json:"delivery_time,omitempty"`
	ShippingBaseCostOre int64                 `json:"shipping_base_cost_ore"`
	Lines               []bookingLineView     `json:"lines"`
	Addons              []bookingAddonView    `json:"addons"`
	Pricing             types.PricingSnapshot `json:"pricing"`
	GrandTotalSEK       string                `json:"grand_total_sek"`
	DepositSEK          string                `json:"deposit_sek"`
	BalanceSEK          string                `json:"balance_sek"`
}

func newBookingView(b *models.Booking) bookingView {
	lines := make([]bookingLineView, 0, len(b.Lines))
	for _, line := range b.Lines {
		lines = append(lines, bookingLineView{
			ID:                line.ID,
			ProductID:         line.ProductID,
			ProductName:       line.ProductName,
			Quantity:          line.Quantity,
			PricePerPeriodOre: line.PricePerPeriodOre,
			WrappingSelected:  line.WrappingSelected,
			WrappingCostOre:   line.WrappingCostOre,
		})
	}

	addons := make([]bookingAddonView, 0, len(b.Addons))
	for _, addon := range b.Addons {
		addons = append(addons, bookingAddonView{
			ID:       addon.ID,
			AddonID:  addon.AddonID,
			Name:     addon.AddonName,
			PriceOre: addon.PriceOre,
			Quantity: addon.Quantity,
		})
	}

	return bookingView{
		ID:                  b.ID,
		CustomerName:        b.CustomerName,
		Status:              b.Status.String(),
		DeliveryMethod:      b.Delivery.String(),
		PickupDate:          formatDate(b.PickupDate),
		PickupTime:          b.PickupTime,
		DeliveryDate:        formatDate(b.DeliveryDate),
		DeliveryTime:        b.DeliveryTime,
		ShippingBaseCostOre: b.ShippingBaseCostOre,
		Lines:               lines,
		Addons:              addons,
		Pricing:             b.Pricing,
		GrandTotalSEK:       b.Pricing.GrandTotalSEK(),
		DepositSEK:          b.Pricing.DepositSEK(),
		BalanceSEK:          b.Pricing.BalanceSEK(),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
