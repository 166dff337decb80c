package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/openairphotobooth/booking-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const adminTokenHeader = "X-Admin-Token"

type AdminMiddleware struct {
	token string
}

func NewAdminMiddleware(cfg config.Config) *AdminMiddleware {
	return &AdminMiddleware{token: cfg.Admin.Token}
}

// RequireAdminToken guards the seeding surface. The token comparison is
// constant time so the header cannot be probed byte by byte.
func (m *AdminMiddleware) RequireAdminToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader(adminTokenHeader)
		if supplied == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(m.token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			return
		}
		c.Next()
	}
}
