// Package response writes the JSON error envelope shared by the API handlers.
package response

import (
	"net/http"

	"kitchen-assistant/internal/api/middleware"
	"kitchen-assistant/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Status maps err onto an HTTP status
func Status(err error) int {
	if common.IsValidationError(err) {
		return http.StatusBadRequest
	}
	if ce, ok := common.AsCustomError(err); ok && ce.Status != 0 {
		return ce.Status
	}
	return http.StatusInternalServerError
}

// Body builds the error envelope in the caller's language
func Body(err error, lang common.Language) common.ErrorResponse {
	if common.IsValidationError(err) {
		return common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: common.Localize(common.ErrCodeInvalidRequest, lang),
			Details: err.Error(),
		}
	}
	if ce, ok := common.AsCustomError(err); ok {
		return common.ErrorResponse{
			Code:    ce.Code,
			Message: common.Localize(ce.Code, lang),
			Details: ce.Message,
		}
	}
	return common.ErrorResponse{
		Code:    common.ErrCodeInternalError,
		Message: common.Localize(common.ErrCodeInternalError, lang),
	}
}

// Error logs err and writes the envelope
func Error(c *gin.Context, err error) {
	status := Status(err)
	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status", status),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", requestid.Get(c)),
	}
	if status >= http.StatusInternalServerError {
		common.LogError("request failed", fields...)
	} else {
		common.LogDebug("request rejected", fields...)
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, Body(err, middleware.GetLanguage(c)))
}

// BadRequest rejects a body that failed to bind
func BadRequest(c *gin.Context, err error) {
	Error(c, common.NewValidationError("invalid request body: "+err.Error()))
}
