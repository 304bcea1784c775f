package api

import (
	"net/http"
	"strings"

	"flight-booking/internal/service/flights"
	"flight-booking/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FlightHandler struct {
	service flights.FlightUseCase
	logger  *zap.Logger
}

type searchFlightsRequest struct {
	Origin      string `form:"origin" validate:"required,len=3,alpha"`
	Destination string `form:"destination" validate:"required,len=3,alpha"`
	Date        string `form:"date" validate:"required"`
}

func NewFlightHandler(service flights.FlightUseCase, logger *zap.Logger) *FlightHandler {
	return &FlightHandler{service: service, logger: logger}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.search)
	router.GET("/all", h.list)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) search(c *gin.Context) {
	var req searchFlightsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation error", err.Error())
		return
	}
	if errs := validation.ValidateStruct(req); errs != nil {
		respondError(c, http.StatusBadRequest, "Validation error", validation.FormatErrors(errs))
		return
	}

	result, err := h.service.Search(c.Request.Context(), flights.SearchInput{
		Origin:      req.Origin,
		Destination: req.Destination,
		Date:        req.Date,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
		"count":   len(result),
		"filters": gin.H{
			"origin":      strings.ToUpper(req.Origin),
			"destination": strings.ToUpper(req.Destination),
			"date":        req.Date,
		},
	})
}

func (h *FlightHandler) list(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
		"count":   len(result),
	})
}

func (h *FlightHandler) get(c *gin.Context) {
	id := c.Param("id")
	if err := uuid.Validate(id); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid ID format", "ID must be a valid UUID")
		return
	}

	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    flight,
	})
}
