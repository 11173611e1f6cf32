package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"fashionstore-backend/internal/domains/event"
	"fashionstore-backend/internal/shared/response"
)

type EventHandler struct {
	service event.Service
}

func NewEventHandler(service event.Service) *EventHandler {
	return &EventHandler{service: service}
}

// ListRunning handles GET /events
func (h *EventHandler) ListRunning(c *gin.Context) {
	events, err := h.service.ListRunning(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Events retrieved successfully", events)
}

// ListFeatured handles GET /events/featured
func (h *EventHandler) ListFeatured(c *gin.Context) {
	events, err := h.service.ListFeatured(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Featured events retrieved successfully", events)
}

// GetBySlug handles GET /events/:slug
func (h *EventHandler) GetBySlug(c *gin.Context) {
	result, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Event retrieved successfully", result)
}

// GetEventProducts handles GET /events/:slug/products
func (h *EventHandler) GetEventProducts(c *gin.Context) {
	result, err := h.service.GetEventProducts(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Event products retrieved successfully", result)
}

// ListEvents handles GET /admin/events
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.service.ListEvents(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Events retrieved successfully", events)
}

// CreateEvent handles POST /admin/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req event.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.CreateEvent(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Event created successfully", result)
}

// UpdateEvent handles PUT /admin/events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event ID")
		return
	}

	var req event.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.UpdateEvent(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Event updated successfully", result)
}

// DeleteEvent handles DELETE /admin/events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event ID")
		return
	}

	if err := h.service.DeleteEvent(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Event deleted successfully", nil)
}

func (h *EventHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		response.NotFound(c, "Event not found")
	case errors.Is(err, event.ErrSlugAlreadyExists):
		response.Conflict(c, "An event with this name already exists")
	case errors.Is(err, event.ErrInvalidDateRange),
		errors.Is(err, event.ErrInvalidScope),
		errors.Is(err, event.ErrInvalidDiscount),
		errors.Is(err, event.ErrMissingCategory),
		errors.Is(err, event.ErrMissingPriceRange):
		response.BadRequest(c, err.Error())
	default:
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "Something went wrong")
	}
}
