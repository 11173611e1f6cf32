package event

import (
	"context"

	"github.com/google/uuid"

	"fashionstore-backend/internal/domains/product"
)

type Service interface {
	// ListRunning trả về events đang chạy tại thời điểm gọi
	ListRunning(ctx context.Context) ([]Event, error)

	// ListFeatured trả về subset của ListRunning có is_featured, cho homepage
	ListFeatured(ctx context.Context) ([]Event, error)

	GetBySlug(ctx context.Context, slug string) (*Event, error)

	// GetEventProducts trả về products thuộc scope của event,
	// kèm giá đã discount
	GetEventProducts(ctx context.Context, slug string) (*EventProducts, error)

	// Admin operations
	ListEvents(ctx context.Context) ([]Event, error)
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req UpdateEventRequest) (*Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

// EventProducts là event detail kèm products trong scope
type EventProducts struct {
	Event    Event               `json:"event"`
	Products []DiscountedProduct `json:"products"`
}

type DiscountedProduct struct {
	product.Product
	EventPrice string `json:"eventPrice"` // giá sau discount, formatted
}
