package enums

// HeatingType describes how a food product can be warmed up.
type HeatingType string

const (
	HeatingNone     HeatingType = "none"
	HeatingSimple   HeatingType = "simple"
	HeatingAdvanced HeatingType = "advanced"
)

// String implements fmt.Stringer.
func (h HeatingType) String() string {
	return string(h)
}

// IsValid reports whether the heating type is recognized.
func (h HeatingType) IsValid() bool {
	return h == HeatingNone || h == HeatingSimple || h == HeatingAdvanced
}
