package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/dexplorer/orderscan/internal/api/shared/errors"
	"github.com/dexplorer/orderscan/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    apierrors.ErrorCode `json:"code"`
	Message string              `json:"message"`
	Details string              `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code apierrors.ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}
	if len(details) > 0 {
		response.Error.Details = details[0]
	}
	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, apierrors.ErrCodeBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, apierrors.ErrCodeNotFound, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, apierrors.ErrCodeValidationFailed, "Validation failed", details)
}

// respondAPIError maps a typed executor error onto the right status code
func respondAPIError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		respondInternalError(c, err, "Internal server error")
		return
	}

	switch apiErr.Code {
	case apierrors.ErrCodeBadRequest, apierrors.ErrCodeValidationFailed:
		respondWithError(c, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
	case apierrors.ErrCodeNotFound:
		respondWithError(c, http.StatusNotFound, apiErr.Code, apiErr.Message, apiErr.Details)
	case apierrors.ErrCodeUnauthorized:
		respondWithError(c, http.StatusUnauthorized, apiErr.Code, apiErr.Message, apiErr.Details)
	case apierrors.ErrCodeUpstreamError:
		respondWithError(c, http.StatusBadGateway, apiErr.Code, apiErr.Message, apiErr.Details)
	default:
		respondWithError(c, http.StatusInternalServerError, apiErr.Code, apiErr.Message, apiErr.Details)
	}
}

// respondInternalError sends a 500 Internal Server Error response and logs
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, append(fields, zap.String("message", message))...)
	respondWithError(c, http.StatusInternalServerError, apierrors.ErrCodeInternalError, message)
}
