package product

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Product) error

	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)

	GetBySlug(ctx context.Context, slug string) (*Product, error)

	// GetAll trả về toàn bộ catalog (joined với category slug/name).
	// Filtering/sorting làm in memory qua Filter - catalog đủ nhỏ.
	GetAll(ctx context.Context) ([]Product, error)

	GetFeatured(ctx context.Context, limit int) ([]Product, error)

	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	Update(ctx context.Context, p *Product) error

	Delete(ctx context.Context, id uuid.UUID) error
}
