package enums

import "fmt"

// Temperature is the serving temperature choice for drinks that support it.
type Temperature string

const (
	TemperatureWarm Temperature = "warm"
	TemperatureCold Temperature = "cold"
)

var validTemperatures = []Temperature{TemperatureWarm, TemperatureCold}

// String implements fmt.Stringer.
func (t Temperature) String() string {
	return string(t)
}

// IsValid reports whether the temperature is recognized.
func (t Temperature) IsValid() bool {
	for _, candidate := range validTemperatures {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTemperature converts a raw string into a Temperature.
func ParseTemperature(value string) (Temperature, error) {
	for _, candidate := range validTemperatures {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid temperature: %q", value)
}
