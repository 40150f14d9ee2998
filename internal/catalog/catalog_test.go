package catalog

import (
	"testing"

	"github.com/dmtumanov/beanline-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ValidatesAllEntriesAtOnce(t *testing.T) {
	_, err := New([]Product{
		{ID: "", Name: "Nameless", Category: enums.CategoryCoffee},
		{ID: "latte", Name: "Latte", Category: enums.CategoryCoffee, Variants: []Variant{{Size: "300ml", Price: 210}}},
		{ID: "latte", Name: "Latte Again", Category: enums.CategoryCoffee, Variants: []Variant{{Size: "300ml", Price: 210}}},
		{ID: "mystery", Name: "Mystery", Category: enums.ProductCategory("snacks"), Variants: []Variant{{Size: "piece", Price: -5}}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "product id is required")
	assert.Contains(t, err.Error(), "duplicate id")
	assert.Contains(t, err.Error(), "invalid category")
	assert.Contains(t, err.Error(), "price cannot be negative")
}

func TestNew_DerivesCapabilities(t *testing.T) {
	cat, err := New([]Product{
		{ID: "cappuccino", Name: "Cappuccino", Category: enums.CategoryCoffee, IsDrink: true, Variants: []Variant{{Size: "250ml", Price: 190}}},
	})
	require.NoError(t, err)

	p, ok := cat.Product("cappuccino")
	require.True(t, ok)
	assert.True(t, p.Capabilities.HasMilk)
	assert.True(t, p.Capabilities.HasSyrup)
	assert.True(t, p.Capabilities.HasSugar)
	assert.True(t, p.Capabilities.HasCinnamon)
	assert.False(t, p.Capabilities.NeedsCutlery)
}

func TestVariant_OutOfRange(t *testing.T) {
	cat := Default()

	_, ok := cat.Variant("cappuccino", 99)
	assert.False(t, ok)

	_, ok = cat.Variant("cappuccino", -1)
	assert.False(t, ok)

	_, ok = cat.Variant("no-such-product", 0)
	assert.False(t, ok)

	v, ok := cat.Variant("cappuccino", 0)
	require.True(t, ok)
	assert.Equal(t, "250ml", v.Size)
	assert.Equal(t, 190, v.Price)
}

func TestProducts_ReturnsCopy(t *testing.T) {
	cat := Default()

	first := cat.Products()
	first[0].Name = "mutated"

	second := cat.Products()
	assert.NotEqual(t, "mutated", second[0].Name)
}

func TestDeriveCapabilities(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		category enums.ProductCategory
		isDrink  bool
		check    func(t *testing.T, caps Capabilities)
	}{
		{
			name: "espresso keeps cinnamon but no milk", id: "espresso", category: enums.CategoryCoffee, isDrink: true,
			check: func(t *testing.T, caps Capabilities) {
				assert.False(t, caps.HasMilk)
				assert.False(t, caps.HasSyrup)
				assert.True(t, caps.HasSugar)
				assert.True(t, caps.HasCinnamon)
			},
		},
		{
			name: "bumble blocks dairy entirely", id: "bumble-coffee", category: enums.CategoryCoffee, isDrink: true,
			check: func(t *testing.T, caps Capabilities) {
				assert.True(t, caps.IsBumble)
				assert.False(t, caps.HasMilk)
				assert.False(t, caps.HasSyrup)
				assert.False(t, caps.HasCinnamon)
			},
		},
		{
			name: "matcha offers temperature", id: "matcha-latte", category: enums.CategoryCoffee, isDrink: true,
			check: func(t *testing.T, caps Capabilities) {
				assert.True(t, caps.IsMatcha)
				assert.True(t, caps.HasTemperature)
				assert.True(t, caps.HasMilk)
				assert.False(t, caps.HasCinnamon)
			},
		},
		{
			name: "buckthorn tea is filterable", id: "sea-buckthorn-tea", category: enums.CategoryTea, isDrink: true,
			check: func(t *testing.T, caps Capabilities) {
				assert.True(t, caps.IsBuckthorn)
				assert.True(t, caps.HasFiltered)
				assert.True(t, caps.HasHoney)
				assert.True(t, caps.HasSugar)
			},
		},
		{
			name: "lemonade carries gas choice", id: "house-lemonade", category: enums.CategoryDrinks, isDrink: true,
			check: func(t *testing.T, caps Capabilities) {
				assert.True(t, caps.HasGas)
				assert.True(t, caps.HasTemperature)
			},
		},
		{
			name: "juice has temperature only", id: "orange-juice", category: enums.CategoryDrinks, isDrink: true,
			check: func(t *testing.T, caps Capabilities) {
				assert.False(t, caps.HasGas)
				assert.True(t, caps.HasTemperature)
			},
		},
		{
			name: "croissant warms up", id: "almond-croissant", category: enums.CategoryDesserts,
			check: func(t *testing.T, caps Capabilities) {
				assert.Equal(t, enums.HeatingSimple, caps.Heating)
				assert.True(t, caps.NeedsCutlery)
			},
		},
		{
			name: "cheesecake stays cold", id: "cheesecake", category: enums.CategoryDesserts,
			check: func(t *testing.T, caps Capabilities) {
				assert.Equal(t, enums.HeatingNone, caps.Heating)
				assert.True(t, caps.NeedsCutlery)
			},
		},
		{
			name: "soup needs advanced heating", id: "mushroom-soup", category: enums.CategoryFood,
			check: func(t *testing.T, caps Capabilities) {
				assert.Equal(t, enums.HeatingAdvanced, caps.Heating)
				assert.True(t, caps.NeedsCutlery)
			},
		},
		{
			name: "sandwich gets simple heating", id: "ham-sandwich", category: enums.CategoryFood,
			check: func(t *testing.T, caps Capabilities) {
				assert.Equal(t, enums.HeatingSimple, caps.Heating)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, DeriveCapabilities(tc.id, tc.category, tc.isDrink))
		})
	}
}

func TestDefault_LoadsSeedMenu(t *testing.T) {
	cat := Default()
	require.NotZero(t, cat.Len())

	for _, category := range enums.ProductCategories() {
		found := false
		for _, p := range cat.Products() {
			if p.Category == category {
				found = true
				break
			}
		}
		assert.True(t, found, "no products in category %s", category)
	}
}
