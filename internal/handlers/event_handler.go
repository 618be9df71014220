package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trunghoangnt2003/memory/internal/domain/event"
	"github.com/trunghoangnt2003/memory/internal/response"
	"github.com/trunghoangnt2003/memory/internal/services"
)

type EventHandler struct {
	eventService *services.EventService
	maxFileSize  int64
}

func NewEventHandler(eventService *services.EventService, maxFileSize int64) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		maxFileSize:  maxFileSize,
	}
}

// GetAllEvents handles GET /api/events
func (h *EventHandler) GetAllEvents(c *gin.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to fetch events")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", events)
}

// GetEvent handles GET /api/events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	e, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFoundError(c, "Event not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch event")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", e)
}

// CreateEvent handles POST /api/events (multipart form with optional image)
func (h *EventHandler) CreateEvent(c *gin.Context) {
	date, err := parseDate(c.PostForm("date"))
	if err != nil {
		response.BadRequestError(c, "Invalid date format, expected RFC 3339 or YYYY-MM-DD")
		return
	}

	latitude, longitude, ok := formCoordinates(c)
	if !ok {
		return
	}

	file, rawFile, err := formImage(c, "image", h.maxFileSize)
	if err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if rawFile != nil {
		defer rawFile.Close()
	}

	req := services.CreateEventRequest{
		Title:       c.PostForm("title"),
		Date:        date,
		Location:    c.PostForm("location"),
		Latitude:    latitude,
		Longitude:   longitude,
		Description: c.PostForm("description"),
		ImageURL:    c.PostForm("image_url"),
	}

	created, err := h.eventService.Create(c.Request.Context(), req, file)
	if err != nil {
		if errors.Is(err, services.ErrUploadFailed) {
			response.InternalServerError(c, "Failed to upload image")
			return
		}
		response.BadRequestError(c, err.Error())
		return
	}

	response.SuccessResponse(c, http.StatusCreated, "Event created", created)
}

// UpdateEvent handles PUT /api/events/:id (multipart partial update)
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	fields := map[string]interface{}{}
	for _, key := range []string{"title", "location", "description", "image_url"} {
		if value, present := c.GetPostForm(key); present {
			fields[key] = value
		}
	}

	if value, present := c.GetPostForm("date"); present {
		date, err := parseDate(value)
		if err != nil {
			response.BadRequestError(c, "Invalid date format, expected RFC 3339 or YYYY-MM-DD")
			return
		}
		fields["date"] = date
	}

	latValue, latPresent := c.GetPostForm("latitude")
	lonValue, lonPresent := c.GetPostForm("longitude")
	if latPresent != lonPresent {
		response.BadRequestError(c, "latitude and longitude must be updated together")
		return
	}
	if latPresent {
		latitude, longitude, ok := parseCoordinates(c, latValue, lonValue)
		if !ok {
			return
		}
		fields["latitude"] = latitude
		fields["longitude"] = longitude
	}

	file, rawFile, err := formImage(c, "image", h.maxFileSize)
	if err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if rawFile != nil {
		defer rawFile.Close()
	}

	if len(fields) == 0 && file == nil {
		response.BadRequestError(c, "No fields to update")
		return
	}

	updated, err := h.eventService.Update(c.Request.Context(), id, fields, file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			response.NotFoundError(c, "Event not found")
		case errors.Is(err, services.ErrUploadFailed):
			response.InternalServerError(c, "Failed to upload image")
		default:
			response.InternalServerError(c, "Failed to update event")
		}
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Event updated", updated)
}

// DeleteEvent handles DELETE /api/events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFoundError(c, "Event not found")
			return
		}
		response.InternalServerError(c, "Failed to delete event")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Event deleted", nil)
}

// pathID parses the :id path parameter, replying 400 on failure
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequestError(c, "id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// formCoordinates reads and validates the latitude/longitude form fields
func formCoordinates(c *gin.Context) (float64, float64, bool) {
	return parseCoordinates(c, c.PostForm("latitude"), c.PostForm("longitude"))
}

func parseCoordinates(c *gin.Context, latValue, lonValue string) (float64, float64, bool) {
	latitude, err := strconv.ParseFloat(latValue, 64)
	if err != nil {
		response.BadRequestError(c, "latitude must be a number")
		return 0, 0, false
	}

	longitude, err := strconv.ParseFloat(lonValue, 64)
	if err != nil {
		response.BadRequestError(c, "longitude must be a number")
		return 0, 0, false
	}

	if err := event.ValidateCoordinates(latitude, longitude); err != nil {
		response.BadRequestError(c, err.Error())
		return 0, 0, false
	}

	return latitude, longitude, true
}
