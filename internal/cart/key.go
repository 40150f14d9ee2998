package cart

import (
	"fmt"
	"strings"

	"github.com/dmtumanov/beanline-backend/internal/options"
)

// LineKey builds the canonical identity of a cart line from the product,
// variant and resolved option selection. Every field is serialized in a
// fixed order, unset fields included, so two identical configurations
// always produce the same key and differing ones never collide.
func LineKey(productID string, variantIndex int, sel options.Selection) string {
	var b strings.Builder
	b.WriteString(productID)
	fmt.Fprintf(&b, "|v=%d", variantIndex)

	writeField(&b, "temp", stringOrEmpty(sel.Temperature))
	writeField(&b, "gas", boolPtrField(sel.Gas))
	writeField(&b, "milk", stringOrEmpty(sel.Milk))
	writeField(&b, "syrup", stringOrEmpty(sel.Syrup))
	writeField(&b, "honey", boolField(sel.Honey))
	writeField(&b, "filtered", boolField(sel.Filtered))
	writeField(&b, "heated", boolField(sel.Heated))
	writeField(&b, "cutlery", boolField(sel.Cutlery))
	writeField(&b, "sugar", fmt.Sprintf("%d", sel.SugarGrams))
	writeField(&b, "cinnamon", boolField(sel.Cinnamon))

	return b.String()
}

func writeField(b *strings.Builder, name, value string) {
	b.WriteString("|")
	b.WriteString(name)
	b.WriteString("=")
	b.WriteString(value)
}

func stringOrEmpty[T ~string](v *T) string {
	if v == nil {
		return ""
	}
	return string(*v)
}

func boolField(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func boolPtrField(v *bool) string {
	if v == nil {
		return ""
	}
	return boolField(*v)
}
