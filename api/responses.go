package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shawn910604/taipei-day-trip/internal/domain"
)

func errorJSON(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": true, "message": message})
}

// abortError maps domain errors to the client contract. Store and other
// unexpected failures collapse to a generic 500 so nothing leaks.
func abortError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		errorJSON(c, http.StatusBadRequest, "invalid request data")
	case errors.Is(err, domain.ErrDuplicateEmail):
		errorJSON(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, domain.ErrInvalidCredentials):
		errorJSON(c, http.StatusBadRequest, "Incorrect email or password")
	case errors.Is(err, domain.ErrInvalidToken):
		errorJSON(c, http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, domain.ErrNotFound):
		errorJSON(c, http.StatusNotFound, "not found")
	default:
		errorJSON(c, http.StatusInternalServerError, "internal server error")
	}
}
