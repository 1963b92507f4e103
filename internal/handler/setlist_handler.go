package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davimarquesgiareta/casa-nova/internal/service"
)

// SetlistHandler serves the show-song membership endpoints.
type SetlistHandler struct {
	service service.SetlistService
}

// NewSetlistHandler creates a setlist handler.
func NewSetlistHandler(service service.SetlistService) *SetlistHandler {
	return &SetlistHandler{service: service}
}

// ListShowSongs returns a show's setlist in ascending song_order.
func (h *SetlistHandler) ListShowSongs(c *gin.Context) {
	entries, err := h.service.ListSetlist(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// AttachSong adds a song to a show's setlist. Without an explicit
// song_order the song is appended at the end.
func (h *SetlistHandler) AttachSong(c *gin.Context) {
	var req struct {
		SongID    string `json:"song_id" binding:"required"`
		SongOrder *int   `json:"song_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "song_id is required"})
		return
	}

	ss, err := h.service.AttachSong(c.Request.Context(), c.Param("id"), req.SongID, req.SongOrder)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ss)
}

// DetachSong removes a song from a show's setlist.
func (h *SetlistHandler) DetachSong(c *gin.Context) {
	if err := h.service.DetachSong(c.Request.Context(), c.Param("id"), c.Param("songId")); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ReorderSongs makes the supplied songIds list the authoritative
// ordering of the show's setlist. Pairs not yet attached are attached
// at their listed position (upsert by composite key).
func (h *SetlistHandler) ReorderSongs(c *gin.Context) {
	var req struct {
		SongIDs []string `json:"songIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.SongIDs == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must contain a songIds array"})
		return
	}

	if err := h.service.Reorder(c.Request.Context(), c.Param("id"), req.SongIDs); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "setlist reordered successfully"})
}
