package cart

import (
	"fmt"

	"github.com/dmtumanov/beanline-backend/internal/catalog"
	"github.com/dmtumanov/beanline-backend/internal/options"
	pkgerrors "github.com/dmtumanov/beanline-backend/pkg/errors"
)

// Line is one merged cart entry. Lines with the same configuration never
// coexist; adding a matching item folds into the existing line.
type Line struct {
	Key          string            `json:"key"`
	ProductID    string            `json:"product_id"`
	ProductName  string            `json:"product_name"`
	VariantIndex int               `json:"variant_index"`
	Size         string            `json:"size"`
	Quantity     int               `json:"quantity"`
	Selection    options.Selection `json:"selection"`
	UnitPrice    int               `json:"unit_price"`
	TotalPrice   int               `json:"total_price"`
}

// Engine holds one customer's cart. It is not safe for concurrent use;
// the session manager serializes access.
type Engine struct {
	catalog *catalog.Catalog
	lines   []Line
	byKey   map[string]int
}

// NewEngine builds an empty cart over the given catalog.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat, byKey: make(map[string]int)}
}

// AddItem merges a caller-priced item into the cart. The price is carried
// from the caller and never recomputed here: merging into an existing line
// sums quantities and carried totals. The selection must already be
// resolved so matching configurations produce the same key.
func (e *Engine) AddItem(productID string, variantIndex, quantity int, sel options.Selection, computedTotalPrice int) (Line, error) {
	if quantity <= 0 {
		return Line{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}
	if computedTotalPrice < 0 {
		return Line{}, pkgerrors.New(pkgerrors.CodeValidation, "total price must not be negative")
	}

	product, ok := e.catalog.Product(productID)
	if !ok {
		return Line{}, pkgerrors.New(pkgerrors.CodeInvalidProductReference,
			fmt.Sprintf("unknown product %q", productID))
	}
	if variantIndex < 0 || variantIndex >= len(product.Variants) {
		return Line{}, pkgerrors.New(pkgerrors.CodeInvalidVariantIndex,
			fmt.Sprintf("product %q has no variant %d", productID, variantIndex))
	}

	key := LineKey(productID, variantIndex, sel)

	if idx, exists := e.byKey[key]; exists {
		e.lines[idx].Quantity += quantity
		e.lines[idx].TotalPrice += computedTotalPrice
		return e.lines[idx], nil
	}

	line := Line{
		Key:          key,
		ProductID:    productID,
		ProductName:  product.Name,
		VariantIndex: variantIndex,
		Size:         product.Variants[variantIndex].Size,
		Quantity:     quantity,
		Selection:    sel,
		UnitPrice:    computedTotalPrice / quantity,
		TotalPrice:   computedTotalPrice,
	}
	e.byKey[key] = len(e.lines)
	e.lines = append(e.lines, line)
	return line, nil
}

// RemoveItem drops the whole line for the given key. It reports whether a
// line was present.
func (e *Engine) RemoveItem(key string) bool {
	idx, ok := e.byKey[key]
	if !ok {
		return false
	}
	e.lines = append(e.lines[:idx], e.lines[idx+1:]...)
	delete(e.byKey, key)
	for i := idx; i < len(e.lines); i++ {
		e.byKey[e.lines[i].Key] = i
	}
	return true
}

// Total is the sum of all line totals.
func (e *Engine) Total() int {
	total := 0
	for _, line := range e.lines {
		total += line.TotalPrice
	}
	return total
}

// ItemCount is the sum of all line quantities.
func (e *Engine) ItemCount() int {
	count := 0
	for _, line := range e.lines {
		count += line.Quantity
	}
	return count
}

// Lines returns a copy of the cart contents in insertion order.
func (e *Engine) Lines() []Line {
	out := make([]Line, len(e.lines))
	copy(out, e.lines)
	return out
}

// Empty reports whether the cart has no lines.
func (e *Engine) Empty() bool {
	return len(e.lines) == 0
}

// Clear drops every line.
func (e *Engine) Clear() {
	e.lines = nil
	e.byKey = make(map[string]int)
}
