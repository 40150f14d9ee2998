package enums

import "fmt"

// ProductCategory groups menu products for display and capability rules.
type ProductCategory string

const (
	CategoryCoffee   ProductCategory = "coffee"
	CategoryTea      ProductCategory = "tea"
	CategoryDrinks   ProductCategory = "drinks"
	CategoryDesserts ProductCategory = "desserts"
	CategoryFood     ProductCategory = "food"
)

var validProductCategories = []ProductCategory{
	CategoryCoffee,
	CategoryTea,
	CategoryDrinks,
	CategoryDesserts,
	CategoryFood,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the category is recognized.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts a raw string into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category: %q", value)
}

// ProductCategories returns every category in canonical menu order.
func ProductCategories() []ProductCategory {
	out := make([]ProductCategory, len(validProductCategories))
	copy(out, validProductCategories)
	return out
}
