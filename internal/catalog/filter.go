package catalog

import (
	"sort"
	"strings"
)

// Filter returns the listings matching a free-text search term and an
// optional category. A listing matches the term when its name or
// description contains it case-insensitively; an empty term matches
// everything. A non-empty category must match the listing's category
// exactly. The scan is linear; catalogs here are tiny.
func Filter(products []Product, term, category string) []Product {
	term = strings.ToLower(strings.TrimSpace(term))

	var out []Product
	for _, p := range products {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories returns the distinct categories present in the catalog,
// sorted ascending. Callers prepend their own "all categories" sentinel.
func Categories(products []Product) []string {
	seen := make(map[string]bool, len(products))
	var out []string
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}
