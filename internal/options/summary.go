package options

import (
	"fmt"
	"strings"

	"github.com/dmtumanov/beanline-backend/pkg/enums"
)

var milkLabels = map[enums.MilkVariant]string{
	enums.MilkRegular:     "regular milk",
	enums.MilkLactoseFree: "lactose-free milk",
	enums.MilkCoconut:     "coconut milk",
	enums.MilkAlmond:      "almond milk",
	enums.MilkBanana:      "banana milk",
}

var syrupLabels = map[enums.SyrupFlavor]string{
	enums.SyrupCaramel:       "caramel syrup",
	enums.SyrupVanilla:       "vanilla syrup",
	enums.SyrupSaltedCaramel: "salted caramel syrup",
	enums.SyrupCoconut:       "coconut syrup",
	enums.SyrupLavender:      "lavender syrup",
	enums.SyrupRaspberry:     "raspberry syrup",
}

// Summary renders the human-readable details line for a configured item.
// Fragment order is fixed: size, temperature, gas, milk, syrup, honey,
// filtered, heating, cutlery, sugar, cinnamon. Two identical configurations
// always render the same line.
func Summary(sizeLabel string, sel Selection) string {
	parts := make([]string, 0, 8)
	if sizeLabel != "" {
		parts = append(parts, sizeLabel)
	}
	if sel.Temperature != nil {
		parts = append(parts, sel.Temperature.String())
	}
	if sel.Gas != nil {
		if *sel.Gas {
			parts = append(parts, "with gas")
		} else {
			parts = append(parts, "still")
		}
	}
	if sel.Milk != nil {
		parts = append(parts, milkLabels[*sel.Milk])
	}
	if sel.Syrup != nil {
		parts = append(parts, syrupLabels[*sel.Syrup])
	}
	if sel.Honey {
		parts = append(parts, "with honey")
	}
	if sel.Filtered {
		parts = append(parts, "strained")
	}
	if sel.Heated {
		parts = append(parts, "heated")
	}
	if sel.Cutlery {
		parts = append(parts, "with cutlery")
	}
	if sel.SugarGrams > 0 {
		parts = append(parts, fmt.Sprintf("sugar %dg", sel.SugarGrams))
	}
	if sel.Cinnamon {
		parts = append(parts, "cinnamon")
	}
	return strings.Join(parts, ", ")
}
