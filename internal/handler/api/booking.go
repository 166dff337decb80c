package api

import (
	"net/http"

	"github.com/openairphotobooth/booking-api/internal/domain/booking"
	reqdto "github.com/openairphotobooth/booking-api/internal/handler/dto/request"
	resdto "github.com/openairphotobooth/booking-api/internal/handler/dto/response"
	"github.com/openairphotobooth/booking-api/internal/handler/httperr"
	"github.com/openairphotobooth/booking-api/internal/pkg/errs"
	"github.com/openairphotobooth/booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewBookingHandler(reservationUseCase usecase.ReservationUseCase) *BookingHandler {
	return &BookingHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary List time slots
// @Description List all time slots for a date, ordered by start time
// @Tags timeslots
// @Produce json
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {array} resdto.TimeSlotResponse
// @Failure 400 {object} httperr.Response
// @Router /timeslots [get]
func (h *BookingHandler) ListTimeSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Date parameter is required")
		return
	}

	slots, err := h.reservationUseCase.ListSlots(c.Request.Context(), date)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTimeSlots(slots))
}

// @Summary Create booking
// @Description Atomically reserve a time slot and create a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Missing required booking information")
		return
	}

	params := usecase.ReserveParams{
		Date:       req.Date,
		TimeSlotID: req.TimeSlotID,
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
	}

	created, err := h.reservationUseCase.Reserve(c.Request.Context(), params)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking information")
		case errs.Is(err, usecase.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Time slot is no longer available")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(created))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format")
		return
	}

	b, err := h.reservationUseCase.GetBooking(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Update booking status
// @Description Transition a booking from pending to completed
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status update"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format")
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Status is required")
		return
	}

	updated, err := h.reservationUseCase.UpdateBookingStatus(c.Request.Context(), id, booking.Status(req.Status))
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		case errs.Is(err, usecase.ErrInvalidStateTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid booking status transition")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(updated))
}
