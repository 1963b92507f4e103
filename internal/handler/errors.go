package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"github.com/davimarquesgiareta/casa-nova/internal/domain"
)

// handleError maps domain errors to HTTP status codes. Anything
// unclassified is a storage-layer failure and surfaces as 500 with the
// underlying message passed through.
func handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors

	switch {
	// 404 Not Found
	case errors.Is(err, domain.ErrSongNotFound),
		errors.Is(err, domain.ErrShowNotFound),
		errors.Is(err, domain.ErrSongNotInShow):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// 409 Conflict
	case errors.Is(err, domain.ErrSongAlreadyInShow):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// 400 Bad Request
	case errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// 500 Internal Server Error
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
