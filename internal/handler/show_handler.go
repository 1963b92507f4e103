package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davimarquesgiareta/casa-nova/internal/service"
)

// ShowHandler serves the show store endpoints.
type ShowHandler struct {
	service service.ShowService
}

// NewShowHandler creates a show handler.
func NewShowHandler(service service.ShowService) *ShowHandler {
	return &ShowHandler{service: service}
}

// showRequest is the request body for create and update. Empty optional
// fields are stored as absent, not as empty strings.
type showRequest struct {
	Name      string `json:"name"`
	Venue     string `json:"venue"`
	EventDate string `json:"event_date"`
	ShowTime  string `json:"show_time"`
}

func (r *showRequest) input() *service.ShowInput {
	return &service.ShowInput{
		Name:      r.Name,
		Venue:     r.Venue,
		EventDate: r.EventDate,
		ShowTime:  r.ShowTime,
	}
}

// ListShows returns all shows with their member counts, newest first.
func (h *ShowHandler) ListShows(c *gin.Context) {
	shows, err := h.service.ListShows(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, shows)
}

// CreateShow creates a show.
func (h *ShowHandler) CreateShow(c *gin.Context) {
	var req showRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	show, err := h.service.CreateShow(c.Request.Context(), req.input())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, show)
}

// GetShow returns one show by id.
func (h *ShowHandler) GetShow(c *gin.Context) {
	show, err := h.service.GetShow(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, show)
}

// UpdateShow replaces all mutable fields of a show.
func (h *ShowHandler) UpdateShow(c *gin.Context) {
	var req showRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	show, err := h.service.UpdateShow(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, show)
}

// DeleteShow removes a show and, by cascade, its setlist.
func (h *ShowHandler) DeleteShow(c *gin.Context) {
	if err := h.service.DeleteShow(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CloneShow duplicates a show and its entire setlist.
func (h *ShowHandler) CloneShow(c *gin.Context) {
	newID, err := h.service.CloneShow(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"newShowId": newID})
}
