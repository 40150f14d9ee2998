package enums

import "fmt"

// SyrupFlavor is the fixed set of syrups offered across the menu.
type SyrupFlavor string

const (
	SyrupCaramel       SyrupFlavor = "caramel"
	SyrupVanilla       SyrupFlavor = "vanilla"
	SyrupSaltedCaramel SyrupFlavor = "salted_caramel"
	SyrupCoconut       SyrupFlavor = "coconut"
	SyrupLavender      SyrupFlavor = "lavender"
	SyrupRaspberry     SyrupFlavor = "raspberry"
)

var validSyrupFlavors = []SyrupFlavor{
	SyrupCaramel,
	SyrupVanilla,
	SyrupSaltedCaramel,
	SyrupCoconut,
	SyrupLavender,
	SyrupRaspberry,
}

// String implements fmt.Stringer.
func (s SyrupFlavor) String() string {
	return string(s)
}

// IsValid reports whether the syrup flavor is recognized.
func (s SyrupFlavor) IsValid() bool {
	for _, candidate := range validSyrupFlavors {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSyrupFlavor converts a raw string into a SyrupFlavor.
func ParseSyrupFlavor(value string) (SyrupFlavor, error) {
	for _, candidate := range validSyrupFlavors {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid syrup flavor: %q", value)
}
