package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"goparts/internal/domain"
	"goparts/internal/http/middleware"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
	Redirect  string `json:"redirect,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Message:   message,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Unknown errors are logged by the
// access logger through c.Error and never leak to the client.
func RespondDomainError(c *gin.Context, err error) {
	var denied domain.AccessError
	switch {
	case asAccess(err, &denied):
		c.JSON(denied.Status, ErrorResponse{
			Error:     denied.Error(),
			Code:      http.StatusText(denied.Status),
			Message:   denied.Error(),
			Redirect:  denied.Redirect,
			RequestID: middleware.GetRequestID(c),
		})
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	case domain.IsInternal(err):
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "internal_error", err.Error())
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}
