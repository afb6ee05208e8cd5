package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinel errors to a JSON error response.
// Store faults are logged by the service that hit them.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBridgeNotFound):
		RespondError(c, http.StatusNotFound, "Bridge not found")
	case errors.Is(err, ErrDistrictNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case IsValidationError(err):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid username or password")
	default:
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// StatusForError is the page-route counterpart of HandleServiceError.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, ErrBridgeNotFound), errors.Is(err, ErrDistrictNotFound):
		return http.StatusNotFound
	case IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
