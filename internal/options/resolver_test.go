package options

import (
	"testing"

	"github.com/dmtumanov/beanline-backend/internal/catalog"
	"github.com/dmtumanov/beanline-backend/pkg/enums"
	pkgerrors "github.com/dmtumanov/beanline-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func milkPtr(m enums.MilkVariant) *enums.MilkVariant  { return &m }
func syrupPtr(s enums.SyrupFlavor) *enums.SyrupFlavor { return &s }
func tempPtr(tp enums.Temperature) *enums.Temperature { return &tp }
func boolPtr(b bool) *bool                            { return &b }

func product(id string, category enums.ProductCategory, isDrink bool) catalog.Product {
	return catalog.Product{
		ID:           id,
		Category:     category,
		IsDrink:      isDrink,
		Capabilities: catalog.DeriveCapabilities(id, category, isDrink),
	}
}

func TestResolve_SurchargesStack(t *testing.T) {
	cappuccino := product("cappuccino", enums.CategoryCoffee, true)

	sel, surcharge, err := Resolve(cappuccino, Selection{
		Milk:  milkPtr(enums.MilkCoconut),
		Syrup: syrupPtr(enums.SyrupCaramel),
	})
	require.NoError(t, err)
	assert.Equal(t, AlternativeMilkSurcharge+SyrupSurcharge, surcharge)
	assert.Equal(t, enums.MilkCoconut, *sel.Milk)
}

func TestResolve_RegularMilkIsFree(t *testing.T) {
	cappuccino := product("cappuccino", enums.CategoryCoffee, true)

	_, surcharge, err := Resolve(cappuccino, Selection{Milk: milkPtr(enums.MilkRegular)})
	require.NoError(t, err)
	assert.Zero(t, surcharge)
}

func TestResolve_RejectsUnsupportedOptions(t *testing.T) {
	tests := []struct {
		name    string
		product catalog.Product
		sel     Selection
	}{
		{"milk on bumble", product("bumble-coffee", enums.CategoryCoffee, true), Selection{Milk: milkPtr(enums.MilkAlmond)}},
		{"syrup on espresso", product("espresso", enums.CategoryCoffee, true), Selection{Syrup: syrupPtr(enums.SyrupVanilla)}},
		{"gas on cappuccino", product("cappuccino", enums.CategoryCoffee, true), Selection{Gas: boolPtr(true)}},
		{"temperature on black tea", product("black-tea", enums.CategoryTea, true), Selection{Temperature: tempPtr(enums.TemperatureCold)}},
		{"honey on lemonade", product("house-lemonade", enums.CategoryDrinks, true), Selection{Honey: true}},
		{"filtered on green tea", product("green-tea", enums.CategoryTea, true), Selection{Filtered: true}},
		{"heating on cheesecake", product("cheesecake", enums.CategoryDesserts, false), Selection{Heated: true}},
		{"cutlery on latte", product("latte", enums.CategoryCoffee, true), Selection{Cutlery: true}},
		{"cinnamon on soup", product("mushroom-soup", enums.CategoryFood, false), Selection{Cinnamon: true}},
		{"sugar on sandwich", product("ham-sandwich", enums.CategoryFood, false), Selection{SugarGrams: 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Resolve(tc.product, tc.sel)
			require.Error(t, err)

			domainErr := pkgerrors.As(err)
			require.NotNil(t, domainErr)
			assert.Equal(t, pkgerrors.CodeValidation, domainErr.Code())
		})
	}
}

func TestResolve_RejectsUnknownEnumValues(t *testing.T) {
	cappuccino := product("cappuccino", enums.CategoryCoffee, true)

	badMilk := enums.MilkVariant("oat")
	_, _, err := Resolve(cappuccino, Selection{Milk: &badMilk})
	require.Error(t, err)

	badSyrup := enums.SyrupFlavor("pistachio")
	_, _, err = Resolve(cappuccino, Selection{Syrup: &badSyrup})
	require.Error(t, err)
}

func TestResolve_SugarRange(t *testing.T) {
	cappuccino := product("cappuccino", enums.CategoryCoffee, true)

	_, _, err := Resolve(cappuccino, Selection{SugarGrams: 11})
	require.Error(t, err)

	_, _, err = Resolve(cappuccino, Selection{SugarGrams: -1})
	require.Error(t, err)

	_, surcharge, err := Resolve(cappuccino, Selection{SugarGrams: 10})
	require.NoError(t, err)
	assert.Zero(t, surcharge)
}

func TestSummary_CanonicalOrder(t *testing.T) {
	got := Summary("330ml", Selection{
		Temperature: tempPtr(enums.TemperatureCold),
		Gas:         boolPtr(true),
		SugarGrams:  5,
	})
	assert.Equal(t, "330ml, cold, with gas, sugar 5g", got)
}

func TestSummary_FullDrink(t *testing.T) {
	got := Summary("250ml", Selection{
		Milk:       milkPtr(enums.MilkAlmond),
		Syrup:      syrupPtr(enums.SyrupSaltedCaramel),
		SugarGrams: 2,
		Cinnamon:   true,
	})
	assert.Equal(t, "250ml, almond milk, salted caramel syrup, sugar 2g, cinnamon", got)
}

func TestSummary_Deterministic(t *testing.T) {
	sel := Selection{Milk: milkPtr(enums.MilkBanana), Honey: false, SugarGrams: 1}
	assert.Equal(t, Summary("300ml", sel), Summary("300ml", sel))
}
