package product

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func testProducts() []Product {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return []Product{
		{
			Name:         "Linen Shirt",
			Description:  "A breathable summer shirt",
			Price:        dec(50),
			CategorySlug: "shirts",
			IsFeatured:   false,
			CreatedAt:    base,
		},
		{
			Name:         "Silk Evening Dress",
			Description:  "Elegant dress for formal occasions",
			Price:        dec(200),
			CategorySlug: "dresses",
			IsFeatured:   true,
			CreatedAt:    base.Add(24 * time.Hour),
		},
	}
}

func TestFilter_MinPrice(t *testing.T) {
	result := Filter(testProducts(), FilterOptions{MinPrice: decPtr(100)})

	require.Len(t, result, 1)
	require.Equal(t, "Silk Evening Dress", result[0].Name)
}

func TestFilter_PriceBoundsInclusive(t *testing.T) {
	products := testProducts()

	// Bound đúng bằng price phải match (inclusive)
	result := Filter(products, FilterOptions{MinPrice: decPtr(50), MaxPrice: decPtr(50)})
	require.Len(t, result, 1)
	require.Equal(t, "Linen Shirt", result[0].Name)

	// Không bound nào → tất cả
	result = Filter(products, FilterOptions{})
	require.Len(t, result, 2)
}

func TestFilter_CategorySlug(t *testing.T) {
	result := Filter(testProducts(), FilterOptions{CategorySlug: "dresses"})

	require.Len(t, result, 1)
	require.Equal(t, "Silk Evening Dress", result[0].Name)

	require.Empty(t, Filter(testProducts(), FilterOptions{CategorySlug: "shoes"}))
}

func TestFilter_Search(t *testing.T) {
	// Match trên name, case-insensitive
	result := Filter(testProducts(), FilterOptions{SearchQuery: "LINEN"})
	require.Len(t, result, 1)
	require.Equal(t, "Linen Shirt", result[0].Name)

	// Match trên description (OR semantics)
	result = Filter(testProducts(), FilterOptions{SearchQuery: "formal"})
	require.Len(t, result, 1)
	require.Equal(t, "Silk Evening Dress", result[0].Name)

	// Substring match cả hai
	result = Filter(testProducts(), FilterOptions{SearchQuery: "s"})
	require.Len(t, result, 2)

	require.Empty(t, Filter(testProducts(), FilterOptions{SearchQuery: "denim"}))
}

func TestFilter_CombinedCriteria(t *testing.T) {
	result := Filter(testProducts(), FilterOptions{
		CategorySlug: "dresses",
		MinPrice:     decPtr(100),
		SearchQuery:  "elegant",
	})

	require.Len(t, result, 1)
	require.Equal(t, "Silk Evening Dress", result[0].Name)
}

func TestSort_PriceLow(t *testing.T) {
	result := Filter(testProducts(), FilterOptions{Sort: SortPriceLow})

	require.True(t, result[0].Price.Equal(dec(50)))
	require.True(t, result[1].Price.Equal(dec(200)))
}

func TestSort_PriceHigh(t *testing.T) {
	result := Filter(testProducts(), FilterOptions{Sort: SortPriceHigh})

	require.True(t, result[0].Price.Equal(dec(200)))
	require.True(t, result[1].Price.Equal(dec(50)))
}

func TestSort_FeaturedDefault(t *testing.T) {
	// Featured lên đầu, cả với mode rỗng lẫn mode không hợp lệ
	for _, mode := range []string{"", SortFeatured, "bogus"} {
		result := Filter(testProducts(), FilterOptions{Sort: mode})
		require.True(t, result[0].IsFeatured, "mode %q", mode)
		require.False(t, result[1].IsFeatured, "mode %q", mode)
	}
}

func TestSort_Newest(t *testing.T) {
	result := Filter(testProducts(), FilterOptions{Sort: SortNewest})

	require.Equal(t, "Silk Evening Dress", result[0].Name)
	require.Equal(t, "Linen Shirt", result[1].Name)
}

func TestSort_Stable(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	products := []Product{
		{Name: "A", Price: dec(10), CreatedAt: base},
		{Name: "B", Price: dec(10), CreatedAt: base},
		{Name: "C", Price: dec(10), CreatedAt: base},
	}

	// Equal keys giữ nguyên input order
	result := Filter(products, FilterOptions{Sort: SortPriceLow})
	require.Equal(t, "A", result[0].Name)
	require.Equal(t, "B", result[1].Name)
	require.Equal(t, "C", result[2].Name)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	products := testProducts()
	Filter(products, FilterOptions{Sort: SortPriceHigh})

	require.Equal(t, "Linen Shirt", products[0].Name)
	require.Equal(t, "Silk Evening Dress", products[1].Name)
}
