// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelbuddy/internal/modules/plan"
	"travelbuddy/internal/modules/preference"
	"travelbuddy/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// isValidID accepts client preference ids: up to 64 chars of letters, digits, '-' and '_'.
func isValidID(v string) bool {
	if v == "" || len(v) > 64 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-' || c == '_' {
			continue
		}
		return false
	}
	return true
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeServiceError maps pipeline errors; anything unexpected gets the JSON error payload.
func writeServiceError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrBadRequest), errors.Is(err, preference.ErrMissingID):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		writeJSON(c, http.StatusInternalServerError, plan.InternalError("internal error"))
	}
}

// bindJSON decodes the body into v and writes the 400 itself on failure.
func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func withTimeout(c *gin.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = 90 * time.Second
	}
	return context.WithTimeout(c.Request.Context(), d)
}
