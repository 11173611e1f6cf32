package event

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"fashionstore-backend/internal/domains/product"
)

func TestRunningAt(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)

	e := Event{StartDate: start, EndDate: end, IsActive: true}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"before start", start.Add(-time.Second), false},
		{"exactly at start", start, true},
		{"mid window", start.Add(15 * 24 * time.Hour), true},
		{"exactly at end", end, true},
		{"after end", end.Add(time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, e.RunningAt(tt.now))
		})
	}
}

func TestRunningAt_Inactive(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	e := Event{StartDate: start, EndDate: start.Add(30 * 24 * time.Hour), IsActive: false}

	// Trong window nhưng inactive → không chạy
	require.False(t, e.RunningAt(start.Add(time.Hour)))
}

func TestAppliesTo(t *testing.T) {
	categoryID := uuid.New()
	otherCategory := uuid.New()
	min := decimal.NewFromInt(100)
	max := decimal.NewFromInt(300)

	inCategory := &product.Product{CategoryID: categoryID, Price: decimal.NewFromInt(50)}
	outCategory := &product.Product{CategoryID: otherCategory, Price: decimal.NewFromInt(50)}
	cheap := &product.Product{Price: decimal.NewFromInt(99)}
	mid := &product.Product{Price: decimal.NewFromInt(200)}
	atMin := &product.Product{Price: decimal.NewFromInt(100)}
	expensive := &product.Product{Price: decimal.NewFromInt(301)}

	t.Run("scope all", func(t *testing.T) {
		e := Event{Scope: ScopeAll}
		require.True(t, e.AppliesTo(inCategory))
		require.True(t, e.AppliesTo(expensive))
	})

	t.Run("scope category", func(t *testing.T) {
		e := Event{Scope: ScopeCategory, CategoryID: &categoryID}
		require.True(t, e.AppliesTo(inCategory))
		require.False(t, e.AppliesTo(outCategory))
	})

	t.Run("scope price range", func(t *testing.T) {
		e := Event{Scope: ScopePriceRange, MinPrice: &min, MaxPrice: &max}
		require.False(t, e.AppliesTo(cheap))
		require.True(t, e.AppliesTo(atMin)) // inclusive bound
		require.True(t, e.AppliesTo(mid))
		require.False(t, e.AppliesTo(expensive))
	})

	t.Run("price range one-sided", func(t *testing.T) {
		e := Event{Scope: ScopePriceRange, MinPrice: &min}
		require.True(t, e.AppliesTo(expensive))
		require.False(t, e.AppliesTo(cheap))
	})
}

func TestDiscountedPrice(t *testing.T) {
	e := Event{DiscountPercentage: decimal.NewFromInt(20)}

	got := e.DiscountedPrice(decimal.NewFromInt(150))
	require.True(t, got.Equal(decimal.NewFromInt(120)), "got %s", got)

	// Làm tròn 2 chữ số
	e = Event{DiscountPercentage: decimal.NewFromInt(33)}
	got = e.DiscountedPrice(decimal.NewFromInt(100))
	require.Equal(t, "67.00", got.StringFixed(2))
}

func TestCreateEventRequestValidate(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	categoryID := uuid.New()

	valid := CreateEventRequest{
		Name:               "Summer Sale",
		DiscountPercentage: decimal.NewFromInt(20),
		StartDate:          start,
		EndDate:            start.Add(30 * 24 * time.Hour),
		Scope:              ScopeAll,
	}
	require.NoError(t, valid.Validate())

	t.Run("start after end", func(t *testing.T) {
		req := valid
		req.EndDate = start.Add(-time.Hour)
		require.ErrorIs(t, req.Validate(), ErrInvalidDateRange)
	})

	t.Run("discount over 100", func(t *testing.T) {
		req := valid
		req.DiscountPercentage = decimal.NewFromInt(101)
		require.ErrorIs(t, req.Validate(), ErrInvalidDiscount)
	})

	t.Run("category scope without category", func(t *testing.T) {
		req := valid
		req.Scope = ScopeCategory
		require.ErrorIs(t, req.Validate(), ErrMissingCategory)

		req.CategoryID = &categoryID
		require.NoError(t, req.Validate())
	})

	t.Run("price range scope without bounds", func(t *testing.T) {
		req := valid
		req.Scope = ScopePriceRange
		require.ErrorIs(t, req.Validate(), ErrMissingPriceRange)
	})

	t.Run("unknown scope", func(t *testing.T) {
		req := valid
		req.Scope = "FLASH"
		require.ErrorIs(t, req.Validate(), ErrInvalidScope)
	})
}
