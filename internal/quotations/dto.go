package quotations

import (
	"github.com/google/uuid"

	"github.com/hyrpunkten/hyrpunkten-backend/pkg/db/models"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/enums"
)

// AddonToggle is one add-on choice from the quotation page. Selected false
// removes a previously chosen add-on.
type AddonToggle struct {
	AddonID  uuid.UUID
	Quantity int
	Selected bool
}

// WrappingToggle flips wrapping on a single booking line.
type WrappingToggle struct {
	LineID   uuid.UUID
	Selected bool
}

// ConfigureInput carries everything the customer may adjust on the quotation
// page. Nil Delivery leaves the staff-chosen method untouched.
type ConfigureInput struct {
	Delivery *enums.DeliveryMethod
	Addons   []AddonToggle
	Wrapping []WrappingToggle
}

// QuotationView joins the quotation with its booking so the page renders
// lines, add-ons, and totals from one response.
type QuotationView struct {
	Quotation *models.Quotation
	Booking   *models.Booking
}
