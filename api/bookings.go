package api

import (
	"net/http"

	"flight-booking/internal/domain"
	"flight-booking/internal/service/booking"
	"flight-booking/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service booking.BookingUseCase
	logger  *zap.Logger
}

type createBookingRequest struct {
	FlightID       string `json:"flight_id" validate:"required,uuid"`
	PassengerName  string `json:"passenger_name" validate:"required,min=2,max=100"`
	PassengerEmail string `json:"passenger_email" validate:"required,email"`
	PassengerPhone string `json:"passenger_phone" validate:"required,min=10,max=15"`
	SeatPreference string `json:"seat_preference" validate:"omitempty,oneof=window aisle middle"`
}

func NewBookingHandler(service booking.BookingUseCase, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{service: service, logger: logger}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("/:id", h.get)
	router.GET("/reference/:reference", h.getByReference)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation error", err.Error())
		return
	}
	if errs := validation.ValidateStruct(req); errs != nil {
		respondError(c, http.StatusBadRequest, "Validation error", validation.FormatErrors(errs))
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		FlightID:       req.FlightID,
		PassengerName:  req.PassengerName,
		PassengerEmail: req.PassengerEmail,
		PassengerPhone: req.PassengerPhone,
		SeatPreference: domain.SeatPreference(req.SeatPreference),
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    created,
		"message": "Booking created successfully",
	})
}

func (h *BookingHandler) get(c *gin.Context) {
	id := c.Param("id")
	if err := uuid.Validate(id); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid ID format", "ID must be a valid UUID")
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    found,
	})
}

func (h *BookingHandler) getByReference(c *gin.Context) {
	found, err := h.service.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    found,
	})
}
