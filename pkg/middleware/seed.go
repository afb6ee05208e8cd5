package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Seeder interface {
	EnsureSeeded(ctx context.Context) error
}

// EnsureSeeded runs the seeder before every request; a failure ends the
// request with 500.
func EnsureSeeded(seeder Seeder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := seeder.EnsureSeeded(c.Request.Context()); err != nil {
			_ = c.Error(err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Next()
	}
}
