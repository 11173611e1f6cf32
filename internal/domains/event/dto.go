package event

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateEventRequest struct {
	Name               string           `json:"name"`
	Description        string           `json:"description"`
	DiscountPercentage decimal.Decimal  `json:"discountPercentage"`
	StartDate          time.Time        `json:"startDate"`
	EndDate            time.Time        `json:"endDate"`
	IsActive           bool             `json:"isActive"`
	IsFeatured         bool             `json:"isFeatured"`
	Scope              Scope            `json:"scope"`
	CategoryID         *uuid.UUID       `json:"categoryId"`
	MinPrice           *decimal.Decimal `json:"minPrice"`
	MaxPrice           *decimal.Decimal `json:"maxPrice"`
}

func (r CreateEventRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 200)),
		validation.Field(&r.StartDate, validation.Required),
		validation.Field(&r.EndDate, validation.Required),
	); err != nil {
		return err
	}

	if r.StartDate.After(r.EndDate) {
		return ErrInvalidDateRange
	}
	if r.DiscountPercentage.IsNegative() || r.DiscountPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidDiscount
	}
	if !r.Scope.Valid() {
		return ErrInvalidScope
	}
	if r.Scope == ScopeCategory && r.CategoryID == nil {
		return ErrMissingCategory
	}
	if r.Scope == ScopePriceRange && r.MinPrice == nil && r.MaxPrice == nil {
		return ErrMissingPriceRange
	}
	return nil
}

type UpdateEventRequest struct {
	Name               *string          `json:"name"`
	Description        *string          `json:"description"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage"`
	StartDate          *time.Time       `json:"startDate"`
	EndDate            *time.Time       `json:"endDate"`
	IsActive           *bool            `json:"isActive"`
	IsFeatured         *bool            `json:"isFeatured"`
	Scope              *Scope           `json:"scope"`
	CategoryID         *uuid.UUID       `json:"categoryId"`
	MinPrice           *decimal.Decimal `json:"minPrice"`
	MaxPrice           *decimal.Decimal `json:"maxPrice"`
}

func (r UpdateEventRequest) Validate() error {
	if r.DiscountPercentage != nil &&
		(r.DiscountPercentage.IsNegative() || r.DiscountPercentage.GreaterThan(decimal.NewFromInt(100))) {
		return ErrInvalidDiscount
	}
	if r.Scope != nil && !r.Scope.Valid() {
		return ErrInvalidScope
	}
	return nil
}
