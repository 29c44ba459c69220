package enums

import "fmt"

// DeliveryMethod selects who moves the equipment; only external carrier
// deliveries carry a shipping charge.
type DeliveryMethod string

const (
	DeliveryMethodInternal       DeliveryMethod = "internal"
	DeliveryMethodExternal       DeliveryMethod = "external"
	DeliveryMethodCustomerPickup DeliveryMethod = "customer_pickup"
)

var validDeliveryMethods = []DeliveryMethod{
	DeliveryMethodInternal,
	DeliveryMethodExternal,
	DeliveryMethodCustomerPickup,
}

// String implements fmt.Stringer.
func (d DeliveryMethod) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DeliveryMethod.
func (d DeliveryMethod) IsValid() bool {
	for _, candidate := range validDeliveryMethods {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDeliveryMethod converts raw input into a DeliveryMethod.
func ParseDeliveryMethod(value string) (DeliveryMethod, error) {
	for _, candidate := range validDeliveryMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid delivery method %q", value)
}
