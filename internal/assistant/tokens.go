package assistant

import (
	"regexp"
	"strings"

	"github.com/dmtumanov/beanline-backend/internal/catalog"
)

var tokenPattern = regexp.MustCompile(`\{\{([a-zA-Z0-9_-]+)\}\}`)

// ExtractProductRefs pulls product references out of an assistant reply and
// returns the text with tokens stripped plus the referenced products in
// first-mention order. Tokens that do not match a known product are dropped
// silently; duplicates collapse to one reference.
func ExtractProductRefs(text string, cat *catalog.Catalog) (string, []catalog.Product) {
	seen := make(map[string]struct{})
	var refs []catalog.Product

	for _, match := range tokenPattern.FindAllStringSubmatch(text, -1) {
		id := match[1]
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if product, ok := cat.Product(id); ok {
			refs = append(refs, product)
		}
	}

	cleaned := tokenPattern.ReplaceAllString(text, "")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return cleaned, refs
}
