// internal/common/errors/handler.go
package errors

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ErrorHandler normalizes errors and writes the HTTP error response.
type ErrorHandler struct {
	logger *zap.Logger
}

func NewErrorHandler(logger *zap.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Respond handles any error from a request handler: normalize to a
// ServiceError, log it, and emit the {detail} body with the mapped status.
func (h *ErrorHandler) Respond(c *gin.Context, err error) {
	svcErr := h.normalizeError(err)
	status := HTTPStatus(svcErr.Code)

	h.logger.Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("errorCode", string(svcErr.Code)),
		zap.Int("status", status),
		zap.Error(err),
	)

	c.AbortWithStatusJSON(status, ErrorResponse{Detail: svcErr.Detail()})
}

// normalizeError ensures we always have a ServiceError.
func (h *ErrorHandler) normalizeError(err error) *ServiceError {
	if svcErr, ok := err.(*ServiceError); ok {
		return svcErr
	}
	return &ServiceError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
