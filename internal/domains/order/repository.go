package order

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create persist order và toàn bộ items trong MỘT transaction.
	// Crash giữa chừng không được để lại order thiếu items.
	Create(ctx context.Context, o *Order) error

	// GetByID trả về order kèm items
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// ListByUser trả về orders của một user, mới nhất trước
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)

	// List cho admin: optional status filter + pagination
	List(ctx context.Context, req ListOrdersRequest) ([]Order, int, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error

	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error
}
