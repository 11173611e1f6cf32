package category

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Category) error

	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)

	GetBySlug(ctx context.Context, slug string) (*Category, error)

	// GetAll trả về toàn bộ categories, sorted theo display_order rồi name
	GetAll(ctx context.Context) ([]Category, error)

	// GetOccasions trả về các occasion categories, cùng sort order với GetAll
	GetOccasions(ctx context.Context) ([]Category, error)

	Update(ctx context.Context, c *Category) error

	Delete(ctx context.Context, id uuid.UUID) error

	// CountChildren đếm direct subcategories, dùng cho delete guard
	CountChildren(ctx context.Context, id uuid.UUID) (int, error)

	// CountProducts đếm products đang reference category này
	CountProducts(ctx context.Context, id uuid.UUID) (int, error)
}
