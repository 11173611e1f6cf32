package event

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, e *Event) error

	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)

	GetBySlug(ctx context.Context, slug string) (*Event, error)

	// GetAll trả về mọi events, mới nhất trước (admin listing)
	GetAll(ctx context.Context) ([]Event, error)

	// GetActive trả về events với is_active = true; caller lọc tiếp
	// theo RunningAt để lấy events đang thực sự chạy
	GetActive(ctx context.Context) ([]Event, error)

	Update(ctx context.Context, e *Event) error

	Delete(ctx context.Context, id uuid.UUID) error
}
