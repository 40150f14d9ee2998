package enums

import "fmt"

// PickupMode controls whether an order is prepared immediately or at a
// requested time.
type PickupMode string

const (
	PickupASAP      PickupMode = "asap"
	PickupScheduled PickupMode = "scheduled"
)

var validPickupModes = []PickupMode{PickupASAP, PickupScheduled}

// String implements fmt.Stringer.
func (p PickupMode) String() string {
	return string(p)
}

// IsValid reports whether the pickup mode is recognized.
func (p PickupMode) IsValid() bool {
	for _, candidate := range validPickupModes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePickupMode converts a raw string into a PickupMode.
func ParsePickupMode(value string) (PickupMode, error) {
	for _, candidate := range validPickupModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid pickup mode: %q", value)
}
