package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fashionstore-backend/internal/domains/order"
	"fashionstore-backend/internal/domains/product"
	"fashionstore-backend/internal/domains/user"
	"fashionstore-backend/internal/infrastructure/email"
	"fashionstore-backend/pkg/logger"
)

// Mailer gửi order confirmation, best effort
type Mailer interface {
	Send(ctx context.Context, msg email.Message) bool
}

type orderService struct {
	repo     order.Repository
	products product.Repository
	users    user.Repository
	mailer   Mailer
	now      func() time.Time
}

func NewOrderService(repo order.Repository, products product.Repository, users user.Repository, mailer Mailer) order.Service {
	return &orderService{
		repo:     repo,
		products: products,
		users:    users,
		mailer:   mailer,
		now:      time.Now,
	}
}

// Checkout build order từ cart client gửi lên.
// Từng line lookup product hiện tại và snapshot name + price; total được
// tính từ các snapshot đó, không bao giờ lấy từ request.
func (s *orderService) Checkout(ctx context.Context, userID uuid.UUID, req order.CheckoutRequest) (*order.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(req.Items))
	for i, item := range req.Items {
		ids[i] = item.ProductID
	}

	catalog, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*product.Product, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = &catalog[i]
	}

	now := s.now()
	orderID := uuid.New()

	items := make([]order.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		p, ok := byID[line.ProductID]
		if !ok {
			return nil, order.ErrProductNotFound
		}
		items = append(items, order.OrderItem{
			ID:          uuid.New(),
			OrderID:     orderID,
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			Size:        line.Size,
			UnitPrice:   p.Price, // snapshot tại thời điểm checkout
		})
	}

	o := &order.Order{
		ID:                 orderID,
		UserID:             userID,
		Total:              order.ComputeTotal(items),
		Status:             order.StatusPending,
		PaymentStatus:      order.PaymentUnpaid,
		ShippingName:       req.ShippingName,
		ShippingPhone:      req.ShippingPhone,
		ShippingAddress:    req.ShippingAddress,
		ShippingCity:       req.ShippingCity,
		ShippingPostalCode: req.ShippingPostalCode,
		ShippingCountry:    req.ShippingCountry,
		Items:              items,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.sendConfirmation(ctx, userID, o)
	return o, nil
}

func (s *orderService) GetOrder(ctx context.Context, userID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*order.Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.UserID != userID {
		// Trả not-found thay vì forbidden: không leak order tồn tại
		return nil, order.ErrOrderNotFound
	}
	return o, nil
}

func (s *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID) ([]order.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *orderService) CancelOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) error {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.UserID != userID {
		return order.ErrOrderNotFound
	}
	if !o.Status.Cancellable() {
		return order.ErrNotCancellable
	}

	return s.repo.UpdateStatus(ctx, orderID, order.StatusCancelled)
}

// ========================================
// ADMIN
// ========================================

func (s *orderService) ListOrders(ctx context.Context, req order.ListOrdersRequest) (*order.ListOrdersResponse, error) {
	req.Normalize()

	orders, total, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}

	return &order.ListOrdersResponse{
		Orders: orders,
		Total:  total,
		Page:   req.Page,
		Limit:  req.Limit,
	}, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, req order.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !o.Status.CanTransitionTo(req.Status) {
		return order.ErrInvalidTransition
	}

	return s.repo.UpdateStatus(ctx, orderID, req.Status)
}

func (s *orderService) sendConfirmation(ctx context.Context, userID uuid.UUID, o *order.Order) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		logger.Error("load user for order confirmation", err)
		return
	}

	subject, html := email.OrderConfirmationEmail(u.Name, o.ID.String(), o.Total.StringFixed(2))
	go s.mailer.Send(context.Background(), email.Message{
		To: u.Email, ToName: u.Name, Subject: subject, HTML: html,
	})
}
