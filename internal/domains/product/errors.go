package product

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrSlugAlreadyExists = errors.New("product slug already exists")
	ErrCategoryNotFound  = errors.New("product category not found")
	ErrInvalidPrice      = errors.New("price must be non-negative")
)
