package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"fashionstore-backend/internal/domains/product"
	"fashionstore-backend/internal/shared/response"
)

type ProductHandler struct {
	service product.Service
}

func NewProductHandler(service product.Service) *ProductHandler {
	return &ProductHandler{service: service}
}

// ListProducts handles GET /products
// Query params: category, minPrice, maxPrice, search, sort, featured
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var req product.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	products, err := h.service.ListProducts(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Products retrieved successfully", gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GetBySlug handles GET /products/:slug
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	result, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Product retrieved successfully", result)
}

// GetFeatured handles GET /products/featured?limit=8
func (h *ProductHandler) GetFeatured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))

	products, err := h.service.GetFeatured(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Featured products retrieved successfully", products)
}

// CreateProduct handles POST /admin/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req product.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Product created successfully", result)
}

// UpdateProduct handles PUT /admin/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req product.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Product updated successfully", result)
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Product deleted successfully", nil)
}

func (h *ProductHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		response.NotFound(c, "Product not found")
	case errors.Is(err, product.ErrSlugAlreadyExists):
		response.Conflict(c, "A product with this name already exists")
	case errors.Is(err, product.ErrCategoryNotFound):
		response.BadRequest(c, "Category does not exist")
	case errors.Is(err, product.ErrInvalidPrice):
		response.BadRequest(c, "Price must be non-negative")
	default:
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "Something went wrong")
	}
}
