package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"fashionstore-backend/internal/domains/category"
	"fashionstore-backend/internal/shared/response"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(service category.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// ListCategories handles GET /categories
// Query param occasion=true để chỉ lấy occasion categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var req category.ListCategoriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	categories, err := h.service.ListCategories(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// GetTree handles GET /categories/tree
func (h *CategoryHandler) GetTree(c *gin.Context) {
	tree, err := h.service.GetTree(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Category tree retrieved successfully", tree)
}

// GetBySlug handles GET /categories/:slug
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	result, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Category retrieved successfully", result)
}

// CreateCategory handles POST /admin/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req category.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Category created successfully", result)
}

// UpdateCategory handles PUT /admin/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var req category.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Category updated successfully", result)
}

// DeleteCategory handles DELETE /admin/categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Category deleted successfully", nil)
}

func (h *CategoryHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, category.ErrCategoryNotFound):
		response.NotFound(c, "Category not found")
	case errors.Is(err, category.ErrSlugAlreadyExists):
		response.Conflict(c, "A category with this name already exists")
	case errors.Is(err, category.ErrParentNotFound):
		response.BadRequest(c, "Parent category does not exist")
	case errors.Is(err, category.ErrSelfParent):
		response.BadRequest(c, "Category cannot be its own parent")
	case errors.Is(err, category.ErrHasChildren):
		response.Conflict(c, "Remove subcategories before deleting this category")
	case errors.Is(err, category.ErrHasProducts):
		response.Conflict(c, "Remove products from this category before deleting it")
	default:
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "Something went wrong")
	}
}
