package handler

import (
	"errors"
	"net/http"

	"github.com/siddhityagi17/event-manager/internal/model"
	"github.com/siddhityagi17/event-manager/internal/service"
	"github.com/siddhityagi17/event-manager/pkg/apperrors"
	"github.com/siddhityagi17/event-manager/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/events")
	{
		router.GET("", h.List)
		router.POST("", h.Create)
		router.PUT(":id", h.Update)
		router.DELETE(":id", h.Delete)
		router.POST(":id/rsvp", h.RSVP)
	}
}

type CreateEventRequest struct {
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}

type UpdateEventRequest struct {
	Title *string `json:"title"`
	Date  *string `json:"date"`
}

type RSVPRequest struct {
	Attendee string `json:"attendee"`
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	input := model.CreateEventInput{
		Title:       req.Title,
		Date:        req.Date,
		Description: req.Description,
		Location:    req.Location,
	}
	created, err := h.service.Create(c, input)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}
	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	input := model.UpdateEventInput{
		Title: req.Title,
		Date:  req.Date,
	}
	updated, err := h.service.Update(c, id, input)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted", "id": id.String()})
}

func (h *EventHandler) RSVP(c *gin.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}
	var req RSVPRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	updated, err := h.service.AddAttendee(c, id, req.Attendee)
	if err != nil {
		h.handleError(c, err, "RSVP")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// eventID parses the :id path param. A malformed id cannot name any
// stored event, so it gets the same 404 as an unknown one.
func (h *EventHandler) eventID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": ve.Fields})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
