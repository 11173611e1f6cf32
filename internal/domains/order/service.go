package order

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	// Checkout tạo order từ cart: snapshot giá hiện tại của từng product,
	// tính total server side, persist atomically, gửi confirmation email
	Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*Order, error)

	// GetOrder trả về order nếu caller là owner (hoặc admin)
	GetOrder(ctx context.Context, userID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*Order, error)

	ListMyOrders(ctx context.Context, userID uuid.UUID) ([]Order, error)

	// CancelOrder: owner hủy order khi còn ở PENDING/CONFIRMED
	CancelOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) error

	// Admin operations
	ListOrders(ctx context.Context, req ListOrdersRequest) (*ListOrdersResponse, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, req UpdateStatusRequest) error
}
