package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	ImageURL     *string    `json:"imageUrl"`
	ParentID     *uuid.UUID `json:"parentId"`
	IsOccasion   bool       `json:"isOccasion"`
	DisplayOrder int        `json:"displayOrder"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.DisplayOrder, validation.Min(0), validation.Max(999)),
	)
}

// UpdateCategoryRequest: pointer fields, nil = giữ nguyên
type UpdateCategoryRequest struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	ImageURL     *string    `json:"imageUrl"`
	ParentID     *uuid.UUID `json:"parentId"`
	IsOccasion   *bool      `json:"isOccasion"`
	DisplayOrder *int       `json:"displayOrder"`
}

func (r UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(2, 100)),
		validation.Field(&r.DisplayOrder, validation.Min(0), validation.Max(999)),
	)
}

type ListCategoriesRequest struct {
	OccasionOnly bool `form:"occasion"`
}
