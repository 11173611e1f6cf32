package product

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Sort modes cho product listing
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortFeatured  = "featured" // default
)

// FilterOptions là options bag cho Filter/Sort.
// Zero value của mỗi field = không áp dụng filter đó.
type FilterOptions struct {
	CategorySlug string
	MinPrice     *decimal.Decimal // inclusive, nil = unbounded
	MaxPrice     *decimal.Decimal // inclusive, nil = unbounded
	SearchQuery  string
	Sort         string
}

// Filter trả về subset của products match mọi criteria, sau đó sorted.
// Pure function: không mutate input slice, full scan (catalog nhỏ, không
// pagination).
func Filter(products []Product, opts FilterOptions) []Product {
	result := make([]Product, 0, len(products))

	query := strings.ToLower(strings.TrimSpace(opts.SearchQuery))

	for _, p := range products {
		if opts.CategorySlug != "" && p.CategorySlug != opts.CategorySlug {
			continue
		}
		if opts.MinPrice != nil && p.Price.LessThan(*opts.MinPrice) {
			continue
		}
		if opts.MaxPrice != nil && p.Price.GreaterThan(*opts.MaxPrice) {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		result = append(result, p)
	}

	Sort(result, opts.Sort)
	return result
}

// matchesQuery: case-insensitive substring trên name HOẶC description
func matchesQuery(p Product, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(p.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(p.Description), lowerQuery)
}

// Sort sắp xếp in place theo mode. Unknown mode rơi về featured (default).
// Stable: products bằng nhau theo sort key giữ nguyên thứ tự input.
func Sort(products []Product, mode string) {
	switch mode {
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	default: // SortFeatured
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsFeatured && !products[j].IsFeatured
		})
	}
}
