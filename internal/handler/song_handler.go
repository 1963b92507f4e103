// Package handler translates HTTP requests into store operations and
// store results into status codes.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davimarquesgiareta/casa-nova/internal/service"
)

// SongHandler serves the song catalog endpoints.
type SongHandler struct {
	service service.SongService
}

// NewSongHandler creates a song handler.
func NewSongHandler(service service.SongService) *SongHandler {
	return &SongHandler{service: service}
}

// songRequest is the request body for create and update.
type songRequest struct {
	Title        string  `json:"title"`
	Artist       *string `json:"artist"`
	Tone         *string `json:"tone"`
	YouTubeURL   *string `json:"youtube_url"`
	BPM          *int    `json:"bpm"`
	DurationSecs *int    `json:"duration_secs"`
}

func (r *songRequest) input() *service.SongInput {
	return &service.SongInput{
		Title:        r.Title,
		Artist:       r.Artist,
		Tone:         r.Tone,
		YouTubeURL:   r.YouTubeURL,
		BPM:          r.BPM,
		DurationSecs: r.DurationSecs,
	}
}

// ListSongs returns all songs, newest first.
func (h *SongHandler) ListSongs(c *gin.Context) {
	songs, err := h.service.ListSongs(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, songs)
}

// CreateSong creates a song.
func (h *SongHandler) CreateSong(c *gin.Context) {
	var req songRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	song, err := h.service.CreateSong(c.Request.Context(), req.input())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, song)
}

// GetSong returns one song by id.
func (h *SongHandler) GetSong(c *gin.Context) {
	song, err := h.service.GetSong(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, song)
}

// UpdateSong replaces all mutable fields of a song.
func (h *SongHandler) UpdateSong(c *gin.Context) {
	var req songRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	song, err := h.service.UpdateSong(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, song)
}

// DeleteSong removes a song from the catalog.
func (h *SongHandler) DeleteSong(c *gin.Context) {
	if err := h.service.DeleteSong(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
