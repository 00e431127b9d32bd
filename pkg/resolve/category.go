package resolve

import (
	"strings"

	"github.com/Diavel78/product-trainer/pkg/inventory"
)

// CategoryResolver maps raw type hints and unit titles to one of the
// configured categories or CategoryOther. Resolution is total: every
// input maps to exactly one category and no input raises.
type CategoryResolver struct {
	config CategoryConfig
}

// NewCategoryResolver creates a resolver over the given category tables.
func NewCategoryResolver(config CategoryConfig) *CategoryResolver {
	return &CategoryResolver{config: config}
}

// Resolve applies the ordered classification policy:
//
//  1. Trailer override: a stock number containing "t" and longer than
//     four characters, combined with a raw type containing "trailer",
//     classifies as Trailer immediately. The length guard keeps short
//     stock numbers that incidentally contain "t" from triggering it.
//  2. Explicit mapping: the raw type/category string is substring-matched
//     against the alias table; the first entry whose alias appears wins.
//  3. Title-keyword fallback: the title is scanned against the ordered
//     keyword lists; the first list with any keyword present wins.
//
// Anything else resolves to CategoryOther.
func (r *CategoryResolver) Resolve(rawType, stock, title string) inventory.Category {
	stockLower := strings.ToLower(stock)
	typeLower := strings.ToLower(rawType)

	if strings.Contains(stockLower, "t") && len(stockLower) > 4 &&
		strings.Contains(typeLower, "trailer") {
		return inventory.CategoryTrailer
	}

	if rawType != "" {
		for _, rule := range r.config.Rules {
			for _, alias := range rule.Aliases {
				if strings.Contains(typeLower, strings.ToLower(alias)) {
					return rule.Category
				}
			}
		}
	}

	titleLower := strings.ToLower(title)
	for _, rule := range r.config.Keywords {
		for _, keyword := range rule.Keywords {
			if strings.Contains(titleLower, keyword) {
				return rule.Category
			}
		}
	}

	return inventory.CategoryOther
}
