package catalog

import (
	"fmt"
	"strings"

	"github.com/dmtumanov/beanline-backend/pkg/enums"
	"go.uber.org/multierr"
)

// Variant is one purchasable size of a product.
type Variant struct {
	Size  string `json:"size"`
	Price int    `json:"price"`
}

// Product is a single menu entry. Capabilities are derived once at load and
// never mutated afterwards; the registry hands out copies only.
type Product struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Category     enums.ProductCategory `json:"category"`
	Variants     []Variant             `json:"variants"`
	IsDrink      bool                  `json:"is_drink"`
	Description  string                `json:"description,omitempty"`
	Capabilities Capabilities          `json:"capabilities"`
}

// Catalog is an immutable product registry.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

// New builds a catalog from raw entries, deriving each product's
// capabilities and validating the registry as a whole. All problems are
// reported together rather than one at a time.
func New(entries []Product) (*Catalog, error) {
	var problems error

	byID := make(map[string]Product, len(entries))
	products := make([]Product, 0, len(entries))

	for i, entry := range entries {
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			problems = multierr.Append(problems, fmt.Errorf("entry %d: product id is required", i))
			continue
		}
		if _, dup := byID[id]; dup {
			problems = multierr.Append(problems, fmt.Errorf("product %q: duplicate id", id))
			continue
		}
		if strings.TrimSpace(entry.Name) == "" {
			problems = multierr.Append(problems, fmt.Errorf("product %q: name is required", id))
		}
		if !entry.Category.IsValid() {
			problems = multierr.Append(problems, fmt.Errorf("product %q: invalid category %q", id, entry.Category))
		}
		if len(entry.Variants) == 0 {
			problems = multierr.Append(problems, fmt.Errorf("product %q: at least one variant is required", id))
		}
		for vi, variant := range entry.Variants {
			if strings.TrimSpace(variant.Size) == "" {
				problems = multierr.Append(problems, fmt.Errorf("product %q: variant %d: size label is required", id, vi))
			}
			if variant.Price < 0 {
				problems = multierr.Append(problems, fmt.Errorf("product %q: variant %d: price cannot be negative", id, vi))
			}
		}

		product := entry
		product.ID = id
		product.Variants = append([]Variant(nil), entry.Variants...)
		product.Capabilities = DeriveCapabilities(product.ID, product.Category, product.IsDrink)

		byID[id] = product
		products = append(products, product)
	}

	if problems != nil {
		return nil, fmt.Errorf("invalid catalog: %w", problems)
	}

	return &Catalog{products: products, byID: byID}, nil
}

// Product returns the entry for the given id.
func (c *Catalog) Product(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns every entry in menu order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of registered products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Variant returns the variant of the product at the given index.
func (c *Catalog) Variant(productID string, variantIndex int) (Variant, bool) {
	p, ok := c.byID[productID]
	if !ok {
		return Variant{}, false
	}
	if variantIndex < 0 || variantIndex >= len(p.Variants) {
		return Variant{}, false
	}
	return p.Variants[variantIndex], true
}
