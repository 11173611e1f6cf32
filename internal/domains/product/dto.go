package product

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Price            decimal.Decimal  `json:"price"`
	OriginalPrice    *decimal.Decimal `json:"originalPrice"`
	Images           []string         `json:"images"`
	CategoryID       uuid.UUID        `json:"categoryId"`
	IsFeatured       bool             `json:"isFeatured"`
	Sizes            []string         `json:"sizes"`
	Fabric           *string          `json:"fabric"`
	Color            *string          `json:"color"`
	CareInstructions *string          `json:"careInstructions"`
}

func (r CreateProductRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 200)),
		validation.Field(&r.Description, validation.Length(0, 5000)),
		validation.Field(&r.CategoryID, validation.Required),
	); err != nil {
		return err
	}
	if r.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if r.OriginalPrice != nil && r.OriginalPrice.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}

type UpdateProductRequest struct {
	Name             *string          `json:"name"`
	Description      *string          `json:"description"`
	Price            *decimal.Decimal `json:"price"`
	OriginalPrice    *decimal.Decimal `json:"originalPrice"`
	Images           []string         `json:"images"`
	CategoryID       *uuid.UUID       `json:"categoryId"`
	IsFeatured       *bool            `json:"isFeatured"`
	Sizes            []string         `json:"sizes"`
	Fabric           *string          `json:"fabric"`
	Color            *string          `json:"color"`
	CareInstructions *string          `json:"careInstructions"`
}

func (r UpdateProductRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(2, 200)),
	); err != nil {
		return err
	}
	if r.Price != nil && r.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if r.OriginalPrice != nil && r.OriginalPrice.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}

// ListProductsRequest bind từ query string của GET /products
type ListProductsRequest struct {
	Category string `form:"category"`
	MinPrice string `form:"minPrice"`
	MaxPrice string `form:"maxPrice"`
	Search   string `form:"search"`
	Sort     string `form:"sort"`
	Featured bool   `form:"featured"`
}

// ToFilterOptions parse price bounds; giá trị không parse được bị bỏ qua
// (unbounded) thay vì error, khớp hành vi lenient của storefront query params.
func (r ListProductsRequest) ToFilterOptions() FilterOptions {
	opts := FilterOptions{
		CategorySlug: r.Category,
		SearchQuery:  r.Search,
		Sort:         r.Sort,
	}
	if d, err := decimal.NewFromString(r.MinPrice); err == nil {
		opts.MinPrice = &d
	}
	if d, err := decimal.NewFromString(r.MaxPrice); err == nil {
		opts.MaxPrice = &d
	}
	return opts
}
