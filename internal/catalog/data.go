package catalog

import "github.com/dmtumanov/beanline-backend/pkg/enums"

// seedProducts is the storefront menu. Order here is menu order.
var seedProducts = []Product{
	{
		ID:       "espresso",
		Name:     "Espresso",
		Category: enums.CategoryCoffee,
		IsDrink:  true,
		Variants: []Variant{{Size: "40ml", Price: 120}, {Size: "80ml", Price: 150}},
	},
	{
		ID:       "americano",
		Name:     "Americano",
		Category: enums.CategoryCoffee,
		IsDrink:  true,
		Variants: []Variant{{Size: "250ml", Price: 150}, {Size: "350ml", Price: 180}},
	},
	{
		ID:       "cappuccino",
		Name:     "Cappuccino",
		Category: enums.CategoryCoffee,
		IsDrink:  true,
		Variants: []Variant{{Size: "250ml", Price: 190}, {Size: "350ml", Price: 230}, {Size: "450ml", Price: 260}},
	},
	{
		ID:       "latte",
		Name:     "Latte",
		Category: enums.CategoryCoffee,
		IsDrink:  true,
		Variants: []Variant{{Size: "300ml", Price: 210}, {Size: "400ml", Price: 250}},
	},
	{
		ID:       "raf",
		Name:     "Raf",
		Category: enums.CategoryCoffee,
		IsDrink:  true,
		Variants: []Variant{{Size: "300ml", Price: 240}, {Size: "400ml", Price: 280}},
	},
	{
		ID:          "bumble-coffee",
		Name:        "Bumble Coffee",
		Category:    enums.CategoryCoffee,
		IsDrink:     true,
		Description: "Espresso poured over orange juice",
		Variants:    []Variant{{Size: "300ml", Price: 260}},
	},
	{
		ID:       "matcha-latte",
		Name:     "Matcha Latte",
		Category: enums.CategoryCoffee,
		IsDrink:  true,
		Variants: []Variant{{Size: "300ml", Price: 240}, {Size: "400ml", Price: 280}},
	},
	{
		ID:       "black-tea",
		Name:     "Black Tea",
		Category: enums.CategoryTea,
		IsDrink:  true,
		Variants: []Variant{{Size: "400ml", Price: 120}},
	},
	{
		ID:       "green-tea",
		Name:     "Green Tea",
		Category: enums.CategoryTea,
		IsDrink:  true,
		Variants: []Variant{{Size: "400ml", Price: 120}},
	},
	{
		ID:          "sea-buckthorn-tea",
		Name:        "Sea Buckthorn Tea",
		Category:    enums.CategoryTea,
		IsDrink:     true,
		Description: "Served with berries; can be strained on request",
		Variants:    []Variant{{Size: "400ml", Price: 180}},
	},
	{
		ID:       "house-lemonade",
		Name:     "House Lemonade",
		Category: enums.CategoryDrinks,
		IsDrink:  true,
		Variants: []Variant{{Size: "400ml", Price: 160}, {Size: "500ml", Price: 190}},
	},
	{
		ID:       "cherry-soda",
		Name:     "Cherry Soda",
		Category: enums.CategoryDrinks,
		IsDrink:  true,
		Variants: []Variant{{Size: "330ml", Price: 140}},
	},
	{
		ID:       "orange-juice",
		Name:     "Orange Juice",
		Category: enums.CategoryDrinks,
		IsDrink:  true,
		Variants: []Variant{{Size: "250ml", Price: 150}},
	},
	{
		ID:       "cheesecake",
		Name:     "Cheesecake",
		Category: enums.CategoryDesserts,
		Variants: []Variant{{Size: "slice", Price: 220}},
	},
	{
		ID:       "almond-croissant",
		Name:     "Almond Croissant",
		Category: enums.CategoryDesserts,
		Variants: []Variant{{Size: "piece", Price: 170}},
	},
	{
		ID:       "carrot-cake",
		Name:     "Carrot Cake",
		Category: enums.CategoryDesserts,
		Variants: []Variant{{Size: "slice", Price: 200}},
	},
	{
		ID:       "mushroom-soup",
		Name:     "Mushroom Cream Soup",
		Category: enums.CategoryFood,
		Variants: []Variant{{Size: "300ml", Price: 260}},
	},
	{
		ID:       "ham-sandwich",
		Name:     "Ham & Cheese Sandwich",
		Category: enums.CategoryFood,
		Variants: []Variant{{Size: "piece", Price: 230}},
	},
	{
		ID:       "caesar-wrap",
		Name:     "Caesar Wrap",
		Category: enums.CategoryFood,
		Variants: []Variant{{Size: "piece", Price: 250}},
	},
}

// Default builds the catalog from the built-in menu. The seed data is
// maintained by hand, so a load failure here is a programming error.
func Default() *Catalog {
	cat, err := New(seedProducts)
	if err != nil {
		panic(err)
	}
	return cat
}
