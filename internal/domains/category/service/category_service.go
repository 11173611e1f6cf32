package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fashionstore-backend/internal/domains/category"
	"fashionstore-backend/internal/shared/utils"
	"fashionstore-backend/pkg/cache"
	"fashionstore-backend/pkg/logger"
)

const (
	cacheKeyAll       = "categories:all"
	cacheKeyOccasions = "categories:occasions"
	cacheTTL          = 15 * time.Minute
)

type categoryService struct {
	repo  category.Repository
	cache cache.Cache
	now   func() time.Time
}

func NewCategoryService(repo category.Repository, c cache.Cache) category.Service {
	return &categoryService{
		repo:  repo,
		cache: c,
		now:   time.Now,
	}
}

// ========================================
// PUBLIC READS (cache-aside)
// ========================================

func (s *categoryService) ListCategories(ctx context.Context, req category.ListCategoriesRequest) ([]category.Category, error) {
	key := cacheKeyAll
	fetch := s.repo.GetAll
	if req.OccasionOnly {
		key = cacheKeyOccasions
		fetch = s.repo.GetOccasions
	}

	var cached []category.Category
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	categories, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	// Cache failure không block response
	if err := s.cache.Set(ctx, key, categories, cacheTTL); err != nil {
		logger.Warn("cache categories", map[string]interface{}{"key": key, "error": err.Error()})
	}

	return categories, nil
}

func (s *categoryService) GetTree(ctx context.Context) ([]category.CategoryTree, error) {
	categories, err := s.ListCategories(ctx, category.ListCategoriesRequest{})
	if err != nil {
		return nil, err
	}
	return category.BuildTree(categories), nil
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// ========================================
// ADMIN WRITES (invalidate cache)
// ========================================

func (s *categoryService) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (*category.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		if _, err := s.repo.GetByID(ctx, *req.ParentID); err != nil {
			return nil, category.ErrParentNotFound
		}
	}

	now := s.now()
	c := &category.Category{
		ID:           uuid.New(),
		Name:         req.Name,
		Slug:         utils.GenerateSlug(req.Name),
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ParentID:     req.ParentID,
		IsOccasion:   req.IsOccasion,
		DisplayOrder: req.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return c, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req category.UpdateCategoryRequest) (*category.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
		c.Slug = utils.GenerateSlug(*req.Name) // Slug theo name mới
	}
	if req.Description != nil {
		c.Description = req.Description
	}
	if req.ImageURL != nil {
		c.ImageURL = req.ImageURL
	}
	if req.ParentID != nil {
		if *req.ParentID == id {
			return nil, category.ErrSelfParent
		}
		if _, err := s.repo.GetByID(ctx, *req.ParentID); err != nil {
			return nil, category.ErrParentNotFound
		}
		c.ParentID = req.ParentID
	}
	if req.IsOccasion != nil {
		c.IsOccasion = *req.IsOccasion
	}
	if req.DisplayOrder != nil {
		c.DisplayOrder = *req.DisplayOrder
	}
	c.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return c, nil
}

// DeleteCategory từ chối xóa nếu category còn subcategories hoặc products
func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	children, err := s.repo.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return category.ErrHasChildren
	}

	products, err := s.repo.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return category.ErrHasProducts
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *categoryService) invalidateCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, cacheKeyAll, cacheKeyOccasions); err != nil {
		logger.Warn("invalidate category cache", map[string]interface{}{"error": err.Error()})
	}
}
