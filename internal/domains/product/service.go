package product

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	// ListProducts áp dụng filter/sort lên toàn bộ catalog
	ListProducts(ctx context.Context, req ListProductsRequest) ([]Product, error)

	GetBySlug(ctx context.Context, slug string) (*Product, error)

	GetFeatured(ctx context.Context, limit int) ([]Product, error)

	// Admin operations
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
