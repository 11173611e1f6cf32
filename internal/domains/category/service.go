package category

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	// ListCategories trả về flat list, sorted theo display_order
	ListCategories(ctx context.Context, req ListCategoriesRequest) ([]Category, error)

	// GetTree trả về top-level categories với children lồng bên trong
	GetTree(ctx context.Context) ([]CategoryTree, error)

	GetBySlug(ctx context.Context, slug string) (*Category, error)

	// Admin operations
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
