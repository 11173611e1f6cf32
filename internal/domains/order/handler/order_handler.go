package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"fashionstore-backend/internal/domains/order"
	"fashionstore-backend/internal/shared/middleware"
	"fashionstore-backend/internal/shared/response"
)

type OrderHandler struct {
	service order.Service
}

func NewOrderHandler(service order.Service) *OrderHandler {
	return &OrderHandler{service: service}
}

// Checkout handles POST /orders
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req order.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Checkout(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Order placed successfully", result)
}

// ListMyOrders handles GET /orders
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	orders, err := h.service.ListMyOrders(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Orders retrieved successfully", orders)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	isAdmin := c.GetString(middleware.ContextRole) == "ADMIN"
	result, err := h.service.GetOrder(c.Request.Context(), userID, isAdmin, orderID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Order retrieved successfully", result)
}

// CancelOrder handles POST /orders/:id/cancel
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.service.CancelOrder(c.Request.Context(), userID, orderID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Order cancelled successfully", nil)
}

// ListOrders handles GET /admin/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var req order.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.service.ListOrders(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Orders retrieved successfully", result)
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req order.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := h.service.UpdateOrderStatus(c.Request.Context(), orderID, req); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Order status updated successfully", nil)
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	idStr, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (h *OrderHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		response.NotFound(c, "Order not found")
	case errors.Is(err, order.ErrEmptyCart):
		response.BadRequest(c, "Cart is empty")
	case errors.Is(err, order.ErrProductNotFound):
		response.BadRequest(c, "A product in your cart is no longer available")
	case errors.Is(err, order.ErrInvalidQuantity):
		response.BadRequest(c, "Quantity must be at least 1")
	case errors.Is(err, order.ErrInvalidStatus):
		response.BadRequest(c, "Invalid order status")
	case errors.Is(err, order.ErrInvalidTransition):
		response.Conflict(c, "Order cannot move to that status")
	case errors.Is(err, order.ErrNotCancellable):
		response.Conflict(c, "Order can no longer be cancelled")
	default:
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "Something went wrong")
	}
}
