package category

import "errors"

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrSlugAlreadyExists = errors.New("category slug already exists")
	ErrParentNotFound    = errors.New("parent category not found")
	ErrSelfParent        = errors.New("category cannot be its own parent")
	ErrHasChildren       = errors.New("category still has subcategories")
	ErrHasProducts       = errors.New("category still has products")
)
