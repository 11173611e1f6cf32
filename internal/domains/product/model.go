package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Product là một sellable item trong catalog.
//
// DATABASE MAPPING:
// ┌──────────────────────────────┐
// │        products table         │
// ├──────────────────────────────┤
// │ id (UUID) - PRIMARY KEY      │
// │ name (TEXT)                  │
// │ slug (TEXT) - UNIQUE         │
// │ description (TEXT)           │
// │ price (NUMERIC) - >= 0       │
// │ original_price (NUMERIC)     │
// │ images (TEXT[])              │
// │ category_id (UUID) - FK      │
// │ is_featured (BOOLEAN)        │
// │ rating (NUMERIC)             │
// │ sizes (TEXT[])               │
// │ fabric / color / care (TEXT) │
// │ created_at / updated_at      │
// └──────────────────────────────┘
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`

	// OriginalPrice: giá trước discount, nil nếu không giảm giá.
	// UI dùng để render strikethrough price.
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`

	Images     pq.StringArray `json:"images"`
	CategoryID uuid.UUID      `json:"categoryId"`

	// CategorySlug/CategoryName join từ categories, không persist trên products
	CategorySlug string `json:"categorySlug"`
	CategoryName string `json:"categoryName"`

	IsFeatured bool           `json:"isFeatured"`
	Rating     float64        `json:"rating"`
	Sizes      pq.StringArray `json:"sizes"`

	Fabric           *string `json:"fabric,omitempty"`
	Color            *string `json:"color,omitempty"`
	CareInstructions *string `json:"careInstructions,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
