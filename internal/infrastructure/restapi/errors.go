package restapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"object_explorer/internal/domain/entity"
)

// APIResponse is the envelope of every API response.
type APIResponse struct {
	Data          any    `json:"data,omitempty"`
	StatusMessage string `json:"status_message"`
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrPanelNotFound),
		errors.Is(err, entity.ErrUnknownNetwork),
		errors.Is(err, entity.ErrObjectNotFound),
		errors.Is(err, entity.ErrNotAPackage):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrStaleResult):
		return http.StatusConflict
	case errors.Is(err, entity.ErrFetchFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error, data any) {
	c.JSON(statusFor(err), APIResponse{Data: data, StatusMessage: err.Error()})
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, APIResponse{StatusMessage: msg})
}
