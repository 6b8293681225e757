package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizdesk/internal/auth"
	"github.com/lshigami/quizdesk/internal/dto"
	"github.com/rs/zerolog/log"
)

// AdminAuth verifies the bearer token and stores its claims on the request
// context for the handlers behind it.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || tokenString == "" || tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authorization header with bearer token required"})
			return
		}

		claims, err := auth.ParseToken(tokenString, secret, auth.PurposeAccess)
		if err != nil {
			log.Debug().Err(err).Str("request_id", RequestIDFromContext(c)).Msg("Rejected admin token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		auth.SetClaims(c, claims)
		c.Next()
	}
}
