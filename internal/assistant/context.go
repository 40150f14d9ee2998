package assistant

import (
	"fmt"
	"strings"

	"github.com/dmtumanov/beanline-backend/internal/catalog"
	"github.com/dmtumanov/beanline-backend/pkg/enums"
)

// BuildMenuContext renders the visible menu as model context. Each product
// is one line of "Name (price) {{id}}" grouped under its category; the
// {{id}} token is what lets replies reference concrete products.
func BuildMenuContext(products []catalog.Product) string {
	byCategory := make(map[enums.ProductCategory][]catalog.Product, len(products))
	for _, p := range products {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	var b strings.Builder
	for _, category := range enums.ProductCategories() {
		group := byCategory[category]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n", category)
		for _, p := range group {
			fmt.Fprintf(&b, "- %s (%d) {{%s}}\n", p.Name, menuPrice(p), p.ID)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// menuPrice is the price shown in menu context, the cheapest variant.
func menuPrice(p catalog.Product) int {
	if len(p.Variants) == 0 {
		return 0
	}
	price := p.Variants[0].Price
	for _, v := range p.Variants[1:] {
		if v.Price < price {
			price = v.Price
		}
	}
	return price
}
