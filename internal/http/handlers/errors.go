package handlers

import (
	"log"
	"net/http"

	"backoffice/internal/domain"
	"backoffice/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	default:
		// Service-wrapped internal errors carry the storage detail; log it
		// here, the response body stays generic either way.
		if domain.IsInternal(err) {
			log.Printf("[HTTP] internal error request_id=%s: %v", middleware.GetRequestID(c), err)
		}
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}
