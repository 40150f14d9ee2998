package options

import (
	"fmt"

	"github.com/dmtumanov/beanline-backend/internal/catalog"
	"github.com/dmtumanov/beanline-backend/pkg/enums"
	pkgerrors "github.com/dmtumanov/beanline-backend/pkg/errors"
)

const (
	// AlternativeMilkSurcharge is added for any non-regular milk.
	AlternativeMilkSurcharge = 70
	// SyrupSurcharge is added for any syrup flavor.
	SyrupSurcharge = 40

	maxSugarGrams = 10
)

// Selection is a customer's option choices for one product. Pointer fields
// distinguish "not chosen" from a chosen zero value.
type Selection struct {
	Temperature *enums.Temperature `json:"temperature,omitempty"`
	Gas         *bool              `json:"gas,omitempty"`
	Milk        *enums.MilkVariant `json:"milk,omitempty"`
	Syrup       *enums.SyrupFlavor `json:"syrup,omitempty"`
	Honey       bool               `json:"honey,omitempty"`
	Filtered    bool               `json:"filtered,omitempty"`
	Heated      bool               `json:"heated,omitempty"`
	Cutlery     bool               `json:"cutlery,omitempty"`
	SugarGrams  int                `json:"sugar_grams,omitempty"`
	Cinnamon    bool               `json:"cinnamon,omitempty"`
}

// Resolve validates a selection against the product's capabilities and
// returns it together with the per-unit price surcharge. Any choice the
// product does not support is rejected outright.
func Resolve(p catalog.Product, sel Selection) (Selection, int, error) {
	caps := p.Capabilities

	if sel.Temperature != nil {
		if !caps.HasTemperature {
			return Selection{}, 0, invalidOption(p.ID, "temperature")
		}
		if !sel.Temperature.IsValid() {
			return Selection{}, 0, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("unknown temperature %q", *sel.Temperature))
		}
	}
	if sel.Gas != nil && !caps.HasGas {
		return Selection{}, 0, invalidOption(p.ID, "gas")
	}
	if sel.Milk != nil {
		if !caps.HasMilk {
			return Selection{}, 0, invalidOption(p.ID, "milk")
		}
		if !sel.Milk.IsValid() {
			return Selection{}, 0, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("unknown milk variant %q", *sel.Milk))
		}
	}
	if sel.Syrup != nil {
		if !caps.HasSyrup {
			return Selection{}, 0, invalidOption(p.ID, "syrup")
		}
		if !sel.Syrup.IsValid() {
			return Selection{}, 0, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("unknown syrup flavor %q", *sel.Syrup))
		}
	}
	if sel.Honey && !caps.HasHoney {
		return Selection{}, 0, invalidOption(p.ID, "honey")
	}
	if sel.Filtered && !caps.HasFiltered {
		return Selection{}, 0, invalidOption(p.ID, "filtered")
	}
	if sel.Heated && caps.Heating == enums.HeatingNone {
		return Selection{}, 0, invalidOption(p.ID, "heating")
	}
	if sel.Cutlery && !caps.NeedsCutlery {
		return Selection{}, 0, invalidOption(p.ID, "cutlery")
	}
	if sel.SugarGrams < 0 || sel.SugarGrams > maxSugarGrams {
		return Selection{}, 0, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("sugar must be between 0 and %d grams", maxSugarGrams))
	}
	if sel.SugarGrams > 0 && !caps.HasSugar {
		return Selection{}, 0, invalidOption(p.ID, "sugar")
	}
	if sel.Cinnamon && !caps.HasCinnamon {
		return Selection{}, 0, invalidOption(p.ID, "cinnamon")
	}

	return sel, Surcharge(sel), nil
}

// Surcharge returns the per-unit price increase implied by the selection.
// Only alternative milks and syrups carry a surcharge.
func Surcharge(sel Selection) int {
	total := 0
	if sel.Milk != nil && *sel.Milk != enums.MilkRegular {
		total += AlternativeMilkSurcharge
	}
	if sel.Syrup != nil {
		total += SyrupSurcharge
	}
	return total
}

func invalidOption(productID, option string) error {
	return pkgerrors.New(pkgerrors.CodeValidation,
		fmt.Sprintf("product %q does not support the %s option", productID, option))
}
