package controllers

import (
	"net/http"
	"strconv"

	"bridges/pkg/middleware"
	"bridges/pkg/utils"
	"github.com/gin-gonic/gin"
)

// renderPage fills the values every layout needs before rendering.
func renderPage(c *gin.Context, code int, name string, data gin.H) {
	sess := middleware.CurrentSession(c)

	page := gin.H{
		"Title":    "",
		"Query":    "",
		"Editor":   sess.IsEditor(),
		"Username": sess.Username,
	}
	for k, v := range data {
		page[k] = v
	}

	c.HTML(code, name, page)
}

func renderError(c *gin.Context, err error) {
	code := utils.StatusForError(err)
	message := http.StatusText(code)
	if code < http.StatusInternalServerError {
		message = err.Error()
	} else {
		_ = c.Error(err)
	}

	renderPage(c, code, "error.html", gin.H{
		"Title":   http.StatusText(code),
		"Status":  code,
		"Message": message,
	})
}

// parseID accepts positive base-10 ids only.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
