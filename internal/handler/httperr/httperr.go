package httperr

import (
	"github.com/gin-gonic/gin"

	"github.com/openairphotobooth/booking-api/internal/pkg/errs"
)

// Response is the flat error body every endpoint returns.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// AbortWithError writes the public error body and keeps the original error on
// the context for the logging middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status, Error: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
