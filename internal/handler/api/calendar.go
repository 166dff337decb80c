package api

import (
	"net/http"

	reqdto "github.com/openairphotobooth/booking-api/internal/handler/dto/request"
	resdto "github.com/openairphotobooth/booking-api/internal/handler/dto/response"
	"github.com/openairphotobooth/booking-api/internal/handler/httperr"
	"github.com/openairphotobooth/booking-api/internal/pkg/errs"
	"github.com/openairphotobooth/booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	calendarUseCase usecase.CalendarUseCase
}

func NewCalendarHandler(calendarUseCase usecase.CalendarUseCase) *CalendarHandler {
	return &CalendarHandler{
		calendarUseCase: calendarUseCase,
	}
}

// @Summary Check calendar availability
// @Description List busy windows on the external calendar for a date
// @Tags calendar
// @Produce json
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} resdto.CalendarCheckResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /calendar/check [get]
func (h *CalendarHandler) Check(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Date parameter is required")
		return
	}

	windows, err := h.calendarUseCase.CheckBlockedWindows(c.Request.Context(), date)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD")
		case errs.Is(err, usecase.ErrUpstreamService):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Calendar service is unavailable")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBlockedWindows(windows))
}

// @Summary Publish booking to calendar
// @Description Mirror a booking to the external calendar and stamp the event ID
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body reqdto.PublishEventRequest true "Publish request"
// @Success 200 {object} resdto.PublishEventResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /calendar/events [post]
func (h *CalendarHandler) Publish(c *gin.Context) {
	var req reqdto.PublishEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking ID is required")
		return
	}

	result, err := h.calendarUseCase.Publish(c.Request.Context(), req.BookingID)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		case errs.Is(err, usecase.ErrUpstreamService):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Calendar service is unavailable")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.PublishEventResponse{
		EventID:  result.EventID,
		Replayed: result.Replayed,
	})
}
