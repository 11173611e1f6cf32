package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status là trạng thái lifecycle của order.
// Forward path: PENDING → CONFIRMED → PROCESSING → SHIPPED → DELIVERED.
// CANCELLED đi từ PENDING hoặc CONFIRMED, là terminal state.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing,
		StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// nextStatus: forward transition duy nhất từ mỗi state
var nextStatus = map[Status]Status{
	StatusPending:    StatusConfirmed,
	StatusConfirmed:  StatusProcessing,
	StatusProcessing: StatusShipped,
	StatusShipped:    StatusDelivered,
}

// CanTransitionTo kiểm tra chuyển state có hợp lệ không.
// Chỉ cho phép forward một bước, hoặc cancel từ PENDING/CONFIRMED.
func (s Status) CanTransitionTo(target Status) bool {
	if target == StatusCancelled {
		return s == StatusPending || s == StatusConfirmed
	}
	return nextStatus[s] == target
}

// Cancellable: customer chỉ hủy được trước khi order vào processing
func (s Status) Cancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "UNPAID"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

type Order struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	Total         decimal.Decimal `json:"total"`
	Status        Status          `json:"status"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`

	// Shipping address snapshot tại thời điểm checkout
	ShippingName       string  `json:"shippingName"`
	ShippingPhone      string  `json:"shippingPhone"`
	ShippingAddress    string  `json:"shippingAddress"`
	ShippingCity       string  `json:"shippingCity"`
	ShippingPostalCode *string `json:"shippingPostalCode,omitempty"`
	ShippingCountry    string  `json:"shippingCountry"`

	Items []OrderItem `json:"items"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderItem snapshot một line tại thời điểm mua.
// UnitPrice là giá lúc checkout, KHÔNG recompute từ product hiện tại.
type OrderItem struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"orderId"`
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"` // snapshot, giữ được khi product đổi tên
	Quantity    int             `json:"quantity"`
	Size        string          `json:"size"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// LineTotal = UnitPrice * Quantity
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ComputeTotal tính order total từ line items.
// Total luôn được tính server side từ snapshotted prices, không bao giờ
// trust giá trị client gửi lên.
func ComputeTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
