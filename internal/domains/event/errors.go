package event

import "errors"

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrSlugAlreadyExists = errors.New("event slug already exists")
	ErrInvalidDateRange  = errors.New("start date must not be after end date")
	ErrInvalidScope      = errors.New("invalid event scope")
	ErrInvalidDiscount   = errors.New("discount percentage must be between 0 and 100")
	ErrMissingCategory   = errors.New("category scope requires a category")
	ErrMissingPriceRange = errors.New("price range scope requires at least one bound")
)
