package middleware

import (
	"context"
	"net/http"

	"bridges/pkg/session"
	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

type SessionReader interface {
	Session(ctx context.Context, sessionID string) (session.Data, error)
}

// LoadSession resolves the session cookie into session.Data for later
// handlers. Unknown or missing cookies yield an anonymous session.
func LoadSession(cookieName string, reader SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(cookieName)

		data, err := reader.Session(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(sessionKey, data)
		c.Next()
	}
}

func CurrentSession(c *gin.Context) session.Data {
	if v, ok := c.Get(sessionKey); ok {
		if data, ok := v.(session.Data); ok {
			return data
		}
	}
	return session.Data{}
}

// RequireEditor sends anyone without the editor role to loginPath. The
// originally requested URL is not remembered.
func RequireEditor(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).IsEditor() {
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
