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

type AdminHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewAdminHandler(reservationUseCase usecase.ReservationUseCase) *AdminHandler {
	return &AdminHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary Seed time slots
// @Description Bulk-insert rental windows for a date, skipping ones that already exist
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Admin-Token header string true "Admin token"
// @Param request body reqdto.SeedTimeSlotsRequest true "Seed request"
// @Success 201 {object} resdto.SeedTimeSlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/timeslots [post]
func (h *AdminHandler) SeedTimeSlots(c *gin.Context) {
	var req reqdto.SeedTimeSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Date and at least one window are required")
		return
	}

	windows := make([]usecase.SeedWindow, len(req.Windows))
	for i, w := range req.Windows {
		windows[i] = usecase.SeedWindow{Start: w.Start, End: w.End}
	}

	inserted, err := h.reservationUseCase.SeedSlots(c.Request.Context(), req.Date, windows)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date or slot window")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.SeedTimeSlotsResponse{Inserted: inserted})
}
