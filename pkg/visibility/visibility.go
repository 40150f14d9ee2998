// Package visibility decides which catalog entries a viewer may see.
// Admin viewers always see everything; everyone else never sees a product
// that has been hidden.
package visibility

import "github.com/dmtumanov/beanline-backend/internal/catalog"

// IsVisible reports whether a single product id is visible to the viewer.
func IsVisible(productID string, hidden map[string]struct{}, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	_, hiddenForViewer := hidden[productID]
	return !hiddenForViewer
}

// HiddenSet converts a list of hidden product ids into a lookup set.
func HiddenSet(hiddenIDs []string) map[string]struct{} {
	set := make(map[string]struct{}, len(hiddenIDs))
	for _, id := range hiddenIDs {
		set[id] = struct{}{}
	}
	return set
}

// FilterProducts returns the products the viewer is allowed to see,
// preserving menu order.
func FilterProducts(products []catalog.Product, hiddenIDs []string, isAdmin bool) []catalog.Product {
	if isAdmin || len(hiddenIDs) == 0 {
		return products
	}

	hidden := HiddenSet(hiddenIDs)
	visible := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if IsVisible(p.ID, hidden, isAdmin) {
			visible = append(visible, p)
		}
	}
	return visible
}
