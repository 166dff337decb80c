package api

import (
	"net/http"

	reqdto "github.com/openairphotobooth/booking-api/internal/handler/dto/request"
	"github.com/openairphotobooth/booking-api/internal/handler/httperr"
	"github.com/openairphotobooth/booking-api/internal/pkg/errs"
	"github.com/openairphotobooth/booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUseCase usecase.ContactUseCase
}

func NewContactHandler(contactUseCase usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
	}
}

// @Summary Upsert CRM contact
// @Description Create or update the customer contact in the CRM
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body reqdto.UpsertContactRequest true "Contact details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /contacts [post]
func (h *ContactHandler) Upsert(c *gin.Context) {
	var req reqdto.UpsertContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing required contact fields")
		return
	}

	params := usecase.ContactParams{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Location:  req.Location,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
	}

	if err := h.contactUseCase.UpsertContact(c.Request.Context(), params); err != nil {
		switch {
		case errs.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing required contact fields")
		case errs.Is(err, usecase.ErrUpstreamService):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "CRM service is unavailable")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
