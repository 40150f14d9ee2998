package enums

import "fmt"

// MilkVariant is the fixed set of milk choices offered across the menu.
type MilkVariant string

const (
	MilkRegular     MilkVariant = "regular"
	MilkLactoseFree MilkVariant = "lactose_free"
	MilkCoconut     MilkVariant = "coconut"
	MilkAlmond      MilkVariant = "almond"
	MilkBanana      MilkVariant = "banana"
)

var validMilkVariants = []MilkVariant{
	MilkRegular,
	MilkLactoseFree,
	MilkCoconut,
	MilkAlmond,
	MilkBanana,
}

// String implements fmt.Stringer.
func (m MilkVariant) String() string {
	return string(m)
}

// IsValid reports whether the milk variant is recognized.
func (m MilkVariant) IsValid() bool {
	for _, candidate := range validMilkVariants {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMilkVariant converts a raw string into a MilkVariant.
func ParseMilkVariant(value string) (MilkVariant, error) {
	for _, candidate := range validMilkVariants {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid milk variant: %q", value)
}
