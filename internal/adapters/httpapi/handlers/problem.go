package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yashshinde43/tinyurl/internal/domain"
)

// Problem is an RFC 7807 error payload. Errors carries per-field
// validation details when present.
type Problem struct {
	Type   string            `json:"type,omitempty"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

const (
	problemTypeValidation  = "validation_error"
	problemTypeInvalidJSON = "invalid_json"
	problemTypeNotFound    = "about:blank"
	problemTypeConflict    = "conflict"
	problemTypeTimeout     = "timeout"
	problemTypeInternal    = "internal_error"

	validationTitle = "Validation error"
)

func writeProblem(c *gin.Context, p Problem) {
	c.Header("Content-Type", "application/problem+json")
	c.JSON(p.Status, p)
}

func problemFromError(err error) Problem {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return Problem{Type: problemTypeNotFound, Title: "Not Found", Status: http.StatusNotFound}
	case errors.Is(err, domain.ErrInvalidURL):
		return Problem{
			Type:   problemTypeValidation,
			Title:  validationTitle,
			Status: http.StatusBadRequest,
			Detail: "invalid target_url",
		}
	case errors.Is(err, domain.ErrInvalidCode):
		return Problem{
			Type:   problemTypeValidation,
			Title:  validationTitle,
			Status: http.StatusBadRequest,
			Detail: "code must be 6-8 alphanumeric characters",
		}
	case errors.Is(err, domain.ErrCodeConflict):
		return Problem{
			Type:   problemTypeConflict,
			Title:  "Conflict",
			Status: http.StatusConflict,
			Detail: "code already exists",
		}
	case errors.Is(err, context.DeadlineExceeded):
		return Problem{
			Type:   problemTypeTimeout,
			Title:  "Gateway Timeout",
			Status: http.StatusGatewayTimeout,
		}
	case errors.Is(err, context.Canceled):
		return Problem{
			Type:   "client_cancelled",
			Title:  "Request Timeout",
			Status: http.StatusRequestTimeout,
			Detail: "request canceled",
		}
	default:
		// Retry exhaustion and store failures land here; no internal
		// detail leaks past the generic message.
		return Problem{Type: problemTypeInternal, Title: "Internal Server Error", Status: http.StatusInternalServerError}
	}
}

func badJSON(c *gin.Context) {
	writeProblem(c, Problem{
		Type:   problemTypeInvalidJSON,
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
		Detail: "invalid json",
	})
}
