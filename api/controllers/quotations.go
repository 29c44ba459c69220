package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hyrpunkten/hyrpunkten-backend/api/responses"
	"github.com/hyrpunkten/hyrpunkten-backend/api/validators"
	"github.com/hyrpunkten/hyrpunkten-backend/internal/quotations"
	"github.com/hyrpunkten/hyrpunkten-backend/internal/signing"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/enums"
	pkgerrors "github.com/hyrpunkten/hyrpunkten-backend/pkg/errors"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/logger"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/types"
)

type addonTogglePayload struct {
	AddonID  uuid.UUID `json:"addon_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"min=0"`
	Selected bool      `json:"selected"`
}

type wrappingTogglePayload struct {
	LineID   uuid.UUID `json:"line_id" validate:"required"`
	Selected bool      `json:"selected"`
}

type configureRequest struct {
	DeliveryMethod *string                 `json:"delivery_method"`
	Addons         []addonTogglePayload    `json:"addons" validate:"dive"`
	Wrapping       []wrappingTogglePayload `json:"wrapping" validate:"dive"`
}

type signRequest struct {
	SignedBy string `json:"signed_by" validate:"required"`
}

func QuotationFetch(svc quotations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quotation service unavailable"))
			return
		}

		id, err := idFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newQuotationView(view))
	}
}

// BookingQuotation resolves a booking's quotation for staff screens that
// only hold the booking id.
func BookingQuotation(svc quotations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quotation service unavailable"))
			return
		}

		bookingID, err := idFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.GetByBooking(r.Context(), bookingID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newQuotationView(view))
	}
}

func QuotationConfigure(svc quotations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quotation service unavailable"))
			return
		}

		id, err := idFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload configureRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := toConfigureInput(payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.Configure(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newQuotationView(view))
	}
}

func QuotationSign(svc signing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "signing service unavailable"))
			return
		}

		id, err := idFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload signRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		contract, err := svc.Finalize(r.Context(), id, signing.SignInput{SignedBy: payload.SignedBy})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newContractView(contract))
	}
}

func toConfigureInput(payload configureRequest) (quotations.ConfigureInput, error) {
	input := quotations.ConfigureInput{}

	if payload.DeliveryMethod != nil {
		delivery, err := enums.ParseDeliveryMethod(*payload.DeliveryMethod)
		if err != nil {
			return quotations.ConfigureInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid delivery method")
		}
		input.Delivery = &delivery
	}

	for _, addon := range payload.Addons {
		input.Addons = append(input.Addons, quotations.AddonToggle{
			AddonID:  addon.AddonID,
			Quantity: addon.Quantity,
			Selected: addon.Selected,
		})
	}
	for _, wrap := range payload.Wrapping {
		input.Wrapping = append(input.Wrapping, quotations.WrappingToggle{
			LineID:   wrap.LineID,
			Selected: wrap.Selected,
		})
	}

	return input, nil
}

type quotationView struct {
	ID          uuid.UUID             `json:"id"`
	BookingID   uuid.UUID             `json:"booking_id"`
	Status      string                `json:"status"`
	Pricing     types.PricingSnapshot `json:"pricing"`
	FinalizedAt *time.Time            `json:"finalized_at,omitempty"`
	SignedBy    string                `json:"signed_by,omitempty"`
	Booking     bookingView           `json:"booking"`
}

func newQuotationView(view *quotations.QuotationView) quotationView {
	return quotationView{
		ID:          view.Quotation.ID,
		BookingID:   view.Quotation.BookingID,
		Status:      view.Quotation.Status.String(),
		Pricing:     view.Quotation.Pricing,
		FinalizedAt: view.Quotation.FinalizedAt,
		SignedBy:    view.Quotation.SignedBy,
		Booking:     newBookingView(view.Booking),
	}
}

type contractView struct {
	QuotationID   uuid.UUID             `json:"quotation_id"`
	BookingID     uuid.UUID             `json:"booking_id"`
	CustomerName  string                `json:"customer_name"`
	SignedBy      string                `json:"signed_by"`
	FinalizedAt   time.Time             `json:"finalized_at"`
	Pricing       types.PricingSnapshot `json:"pricing"`
	GrandTotalSEK string                `json:"grand_total_sek"`
	DepositSEK    string                `json:"deposit_sek"`
	BalanceSEK    string                `json:"balance_sek"`
}

func newContractView(contract *signing.Contract) contractView {
	return contractView{
		QuotationID:   contract.QuotationID,
		BookingID:     contract.BookingID,
		CustomerName:  contract.CustomerName,
		SignedBy:      contract.SignedBy,
		FinalizedAt:   contract.FinalizedAt,
		Pricing:       contract.Pricing,
		GrandTotalSEK: contract.GrandTotalSEK,
		DepositSEK:    contract.DepositSEK,
		BalanceSEK:    contract.BalanceSEK,
	}
}
