package enums

import "fmt"

// QuotationStatus tracks the customer-facing quotation lifecycle. A finalized
// quotation is frozen; its pricing snapshot is re-displayed, never recomputed.
type QuotationStatus string

const (
	QuotationStatusOpen      QuotationStatus = "open"
	QuotationStatusFinalized QuotationStatus = "finalized"
	QuotationStatusExpired   QuotationStatus = "expired"
)

var validQuotationStatuses = []QuotationStatus{
	QuotationStatusOpen,
	QuotationStatusFinalized,
	QuotationStatusExpired,
}

// String implements fmt.Stringer.
func (q QuotationStatus) String() string {
	return string(q)
}

// IsValid reports whether the value is a known QuotationStatus.
func (q QuotationStatus) IsValid() bool {
	for _, candidate := range validQuotationStatuses {
		if candidate == q {
			return true
		}
	}
	return false
}

// ParseQuotationStatus converts raw input into a QuotationStatus.
func ParseQuotationStatus(value string) (QuotationStatus, error) {
	for _, candidate := range validQuotationStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid quotation status %q", value)
}
