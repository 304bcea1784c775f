package api

import (
	"errors"
	"net/http"

	"flight-booking/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Every response carries a success flag; error bodies add a category and a
// message suitable for direct display.
func respondError(c *gin.Context, status int, category, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   category,
		"message": message,
	})
}

// respondServiceError maps the error taxonomy onto HTTP statuses. Unknown
// errors become a generic 500 with internals only logged.
func respondServiceError(c *gin.Context, logger *zap.Logger, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondError(c, http.StatusBadRequest, "Validation error", err.Error())
	case errors.Is(err, domain.ErrFlightNotFound), errors.Is(err, domain.ErrBookingNotFound):
		respondError(c, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrNoSeats), errors.Is(err, domain.ErrPastDeparture):
		respondError(c, http.StatusBadRequest, "Bad Request", err.Error())
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Internal Server Error", "Something went wrong")
	}
}
