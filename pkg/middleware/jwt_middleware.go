package middleware

import (
	"net/http"
	"strings"

	"bridges/pkg/session"
	"bridges/pkg/utils"
	"github.com/gin-gonic/gin"
)

// BearerAuth turns a valid HS256 bearer token into the request's session
// data, so API handlers and RequireRole see the same identity a cookie
// session would provide.
func BearerAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(secret, tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(sessionKey, session.Data{Username: claims.Subject, Role: claims.Role})
		c.Next()
	}
}

func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c).Role != role {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
