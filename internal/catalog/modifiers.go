package catalog

import (
	"strings"

	"github.com/dmtumanov/beanline-backend/pkg/enums"
)

// Capabilities is the typed record of configurable options a product
// supports. The option resolver refuses any selection outside of it.
type Capabilities struct {
	HasTemperature bool              `json:"has_temperature"`
	HasMilk        bool              `json:"has_milk"`
	HasSyrup       bool              `json:"has_syrup"`
	HasSugar       bool              `json:"has_sugar"`
	HasCinnamon    bool              `json:"has_cinnamon"`
	HasGas         bool              `json:"has_gas"`
	HasHoney       bool              `json:"has_honey"`
	HasFiltered    bool              `json:"has_filtered"`
	Heating        enums.HeatingType `json:"heating"`
	NeedsCutlery   bool              `json:"needs_cutlery"`
	IsBumble       bool              `json:"is_bumble"`
	IsMatcha       bool              `json:"is_matcha"`
	IsBuckthorn    bool              `json:"is_buckthorn"`
}

// DeriveCapabilities computes the capability record for a product. Pure and
// deterministic over (id, category, isDrink); called exactly once per entry
// at catalog load.
func DeriveCapabilities(id string, category enums.ProductCategory, isDrink bool) Capabilities {
	caps := Capabilities{Heating: enums.HeatingNone}
	id = strings.ToLower(id)

	switch category {
	case enums.CategoryCoffee:
		caps.HasSugar = true
		caps.IsBumble = strings.Contains(id, "bumble")
		caps.IsMatcha = strings.Contains(id, "matcha")
		switch {
		case caps.IsBumble:
			// Espresso over juice: nothing dairy fits it.
		case strings.Contains(id, "espresso"):
			caps.HasCinnamon = true
		default:
			caps.HasMilk = true
			caps.HasSyrup = true
			caps.HasCinnamon = true
		}
		if caps.IsMatcha {
			caps.HasTemperature = true
			caps.HasCinnamon = false
		}

	case enums.CategoryTea:
		caps.HasSugar = true
		caps.HasHoney = true
		caps.IsBuckthorn = strings.Contains(id, "buckthorn")
		if caps.IsBuckthorn {
			caps.HasFiltered = true
		}

	case enums.CategoryDrinks:
		if isDrink {
			caps.HasTemperature = true
		}
		if strings.Contains(id, "lemonade") || strings.Contains(id, "soda") {
			caps.HasGas = true
		}

	case enums.CategoryDesserts:
		caps.NeedsCutlery = true
		if strings.Contains(id, "croissant") {
			caps.Heating = enums.HeatingSimple
		}

	case enums.CategoryFood:
		caps.NeedsCutlery = true
		if strings.Contains(id, "soup") {
			caps.Heating = enums.HeatingAdvanced
		} else {
			caps.Heating = enums.HeatingSimple
		}
	}

	return caps
}
