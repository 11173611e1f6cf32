package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fashionstore-backend/internal/domains/product"
	"fashionstore-backend/internal/shared/utils"
	"fashionstore-backend/pkg/cache"
	"fashionstore-backend/pkg/logger"
)

const (
	slugCachePrefix = "product:slug:"
	cacheTTL        = 15 * time.Minute
)

type productService struct {
	repo  product.Repository
	cache cache.Cache
	now   func() time.Time
}

func NewProductService(repo product.Repository, c cache.Cache) product.Service {
	return &productService{
		repo:  repo,
		cache: c,
		now:   time.Now,
	}
}

// ========================================
// PUBLIC READS
// ========================================

// ListProducts load toàn bộ catalog rồi filter/sort in memory.
// Full scan per request là hành vi chủ đích cho catalog cỡ này.
func (s *productService) ListProducts(ctx context.Context, req product.ListProductsRequest) ([]product.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	opts := req.ToFilterOptions()
	result := product.Filter(products, opts)

	if req.Featured {
		featured := result[:0:0]
		for _, p := range result {
			if p.IsFeatured {
				featured = append(featured, p)
			}
		}
		result = featured
	}

	return result, nil
}

// GetBySlug: cache-aside, product detail là hot path của storefront
func (s *productService) GetBySlug(ctx context.Context, slug string) (*product.Product, error) {
	key := slugCachePrefix + slug

	var cached product.Product
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, p, cacheTTL); err != nil {
		logger.Warn("cache product", map[string]interface{}{"slug": slug, "error": err.Error()})
	}

	return p, nil
}

func (s *productService) GetFeatured(ctx context.Context, limit int) ([]product.Product, error) {
	if limit < 1 || limit > 50 {
		limit = 8
	}
	return s.repo.GetFeatured(ctx, limit)
}

// ========================================
// ADMIN WRITES
// ========================================

func (s *productService) CreateProduct(ctx context.Context, req product.CreateProductRequest) (*product.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	p := &product.Product{
		ID:               uuid.New(),
		Name:             req.Name,
		Slug:             utils.GenerateSlug(req.Name),
		Description:      req.Description,
		Price:            req.Price,
		OriginalPrice:    req.OriginalPrice,
		Images:           req.Images,
		CategoryID:       req.CategoryID,
		IsFeatured:       req.IsFeatured,
		Sizes:            req.Sizes,
		Fabric:           req.Fabric,
		Color:            req.Color,
		CareInstructions: req.CareInstructions,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	// Re-read để lấy joined category slug/name
	return s.repo.GetByID(ctx, p.ID)
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req product.UpdateProductRequest) (*product.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldSlug := p.Slug

	if req.Name != nil {
		p.Name = *req.Name
		p.Slug = utils.GenerateSlug(*req.Name)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		p.OriginalPrice = req.OriginalPrice
	}
	if req.Images != nil {
		p.Images = req.Images
	}
	if req.CategoryID != nil {
		p.CategoryID = *req.CategoryID
	}
	if req.IsFeatured != nil {
		p.IsFeatured = *req.IsFeatured
	}
	if req.Sizes != nil {
		p.Sizes = req.Sizes
	}
	if req.Fabric != nil {
		p.Fabric = req.Fabric
	}
	if req.Color != nil {
		p.Color = req.Color
	}
	if req.CareInstructions != nil {
		p.CareInstructions = req.CareInstructions
	}
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.invalidate(ctx, oldSlug, p.Slug)
	return s.repo.GetByID(ctx, id)
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, p.Slug)
	return nil
}

func (s *productService) invalidate(ctx context.Context, slugs ...string) {
	keys := make([]string, 0, len(slugs))
	seen := make(map[string]bool)
	for _, slug := range slugs {
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		keys = append(keys, fmt.Sprintf("%s%s", slugCachePrefix, slug))
	}
	if len(keys) == 0 {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Warn("invalidate product cache", map[string]interface{}{"error": err.Error()})
	}
}
