package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventfulhub/eventful-hub-api/internal/domain"
	"github.com/eventfulhub/eventful-hub-api/internal/dto"
	"github.com/eventfulhub/eventful-hub-api/internal/service"
	"github.com/eventfulhub/eventful-hub-api/pkg/response"
)

// EventHandler handles event-related HTTP requests. It maps service outcomes
// onto the response envelope; internal error detail stays in the request log.
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// List handles GET /api/events - lists all events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Error fetching events")
		return
	}

	response.OK(c, dto.FromEvents(events))
}

// Create handles POST /api/events - creates a new event
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Error saving event")
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Error saving event")
		return
	}

	response.Created(c, dto.FromEvent(event))
}

// GetByID handles GET /api/events/:id - retrieves a single event
func (h *EventHandler) GetByID(c *gin.Context) {
	event, err := h.eventService.GetEventByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			response.Fail(c, http.StatusNotFound, "Event not found")
			return
		}
		c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Invalid ID format or server error")
		return
	}

	response.OK(c, dto.FromEvent(event))
}

// Delete handles DELETE /api/events/:id - permanently removes an event
func (h *EventHandler) Delete(c *gin.Context) {
	_, err := h.eventService.DeleteEventByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			response.Fail(c, http.StatusNotFound, "Event not found")
			return
		}
		c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Server error during deletion")
		return
	}

	response.OKMsg(c, "Event deleted successfully")
}
