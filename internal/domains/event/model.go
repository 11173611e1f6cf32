package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fashionstore-backend/internal/domains/product"
)

// Scope xác định tập products mà event áp dụng
type Scope string

const (
	ScopeAll        Scope = "ALL"
	ScopeCategory   Scope = "CATEGORY"
	ScopePriceRange Scope = "PRICE_RANGE"
)

func (s Scope) Valid() bool {
	switch s {
	case ScopeAll, ScopeCategory, ScopePriceRange:
		return true
	}
	return false
}

// Event là một đợt giảm giá time-boxed.
// Invariant: StartDate <= EndDate.
type Event struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Slug               string          `json:"slug"`
	Description        string          `json:"description"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"` // 0-100
	StartDate          time.Time       `json:"startDate"`
	EndDate            time.Time       `json:"endDate"`
	IsActive           bool            `json:"isActive"`
	IsFeatured         bool            `json:"isFeatured"`

	Scope Scope `json:"scope"`
	// CategoryID set khi Scope = CATEGORY
	CategoryID *uuid.UUID `json:"categoryId,omitempty"`
	// MinPrice/MaxPrice set khi Scope = PRICE_RANGE (inclusive)
	MinPrice *decimal.Decimal `json:"minPrice,omitempty"`
	MaxPrice *decimal.Decimal `json:"maxPrice,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RunningAt: event đang chạy khi active VÀ now nằm trong [start, end]
func (e *Event) RunningAt(now time.Time) bool {
	if !e.IsActive {
		return false
	}
	return !now.Before(e.StartDate) && !now.After(e.EndDate)
}

// AppliesTo kiểm tra product có thuộc scope của event không
func (e *Event) AppliesTo(p *product.Product) bool {
	switch e.Scope {
	case ScopeAll:
		return true
	case ScopeCategory:
		return e.CategoryID != nil && p.CategoryID == *e.CategoryID
	case ScopePriceRange:
		if e.MinPrice != nil && p.Price.LessThan(*e.MinPrice) {
			return false
		}
		if e.MaxPrice != nil && p.Price.GreaterThan(*e.MaxPrice) {
			return false
		}
		return true
	}
	return false
}

// DiscountedPrice tính giá sau discount, làm tròn 2 chữ số
func (e *Event) DiscountedPrice(price decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(100).Sub(e.DiscountPercentage).Div(decimal.NewFromInt(100))
	return price.Mul(factor).Round(2)
}
