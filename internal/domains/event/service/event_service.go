package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fashionstore-backend/internal/domains/event"
	"fashionstore-backend/internal/domains/product"
	"fashionstore-backend/internal/shared/utils"
)

type eventService struct {
	repo     event.Repository
	products product.Repository
	now      func() time.Time
}

func NewEventService(repo event.Repository, products product.Repository) event.Service {
	return &eventService{
		repo:     repo,
		products: products,
		now:      time.Now,
	}
}

// ========================================
// PUBLIC READS
// ========================================

func (s *eventService) ListRunning(ctx context.Context) ([]event.Event, error) {
	active, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	running := make([]event.Event, 0, len(active))
	for _, e := range active {
		if e.RunningAt(now) {
			running = append(running, e)
		}
	}
	return running, nil
}

func (s *eventService) ListFeatured(ctx context.Context) ([]event.Event, error) {
	running, err := s.ListRunning(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]event.Event, 0, len(running))
	for _, e := range running {
		if e.IsFeatured {
			featured = append(featured, e)
		}
	}
	return featured, nil
}

func (s *eventService) GetBySlug(ctx context.Context, slug string) (*event.Event, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// GetEventProducts: load event, scan catalog theo scope, đính kèm giá discount
func (s *eventService) GetEventProducts(ctx context.Context, slug string) (*event.EventProducts, error) {
	e, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	all, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var discounted []event.DiscountedProduct
	for i := range all {
		if !e.AppliesTo(&all[i]) {
			continue
		}
		discounted = append(discounted, event.DiscountedProduct{
			Product:    all[i],
			EventPrice: e.DiscountedPrice(all[i].Price).StringFixed(2),
		})
	}

	return &event.EventProducts{Event: *e, Products: discounted}, nil
}

// ========================================
// ADMIN
// ========================================

func (s *eventService) ListEvents(ctx context.Context) ([]event.Event, error) {
	return s.repo.GetAll(ctx)
}

func (s *eventService) CreateEvent(ctx context.Context, req event.CreateEventRequest) (*event.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	e := &event.Event{
		ID:                 uuid.New(),
		Name:               req.Name,
		Slug:               utils.GenerateSlug(req.Name),
		Description:        req.Description,
		DiscountPercentage: req.DiscountPercentage,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		IsActive:           req.IsActive,
		IsFeatured:         req.IsFeatured,
		Scope:              req.Scope,
		CategoryID:         req.CategoryID,
		MinPrice:           req.MinPrice,
		MaxPrice:           req.MaxPrice,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id uuid.UUID, req event.UpdateEventRequest) (*event.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		e.Name = *req.Name
		e.Slug = utils.GenerateSlug(*req.Name)
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.DiscountPercentage != nil {
		e.DiscountPercentage = *req.DiscountPercentage
	}
	if req.StartDate != nil {
		e.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		e.EndDate = *req.EndDate
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		e.IsFeatured = *req.IsFeatured
	}
	if req.Scope != nil {
		e.Scope = *req.Scope
	}
	if req.CategoryID != nil {
		e.CategoryID = req.CategoryID
	}
	if req.MinPrice != nil {
		e.MinPrice = req.MinPrice
	}
	if req.MaxPrice != nil {
		e.MaxPrice = req.MaxPrice
	}

	// Date range invariant phải giữ sau khi merge partial update
	if e.StartDate.After(e.EndDate) {
		return nil, event.ErrInvalidDateRange
	}
	if e.Scope == event.ScopeCategory && e.CategoryID == nil {
		return nil, event.ErrMissingCategory
	}

	e.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
