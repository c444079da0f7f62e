package handlers

import (
	"context"
	"errors"
	"net/http"

	"iris-serving-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func mapDomainError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError

	switch {
	// Field-level validation errors
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   domain.ErrValidation.Error(),
			"details": validationErr.Details(),
		})

	// Other client errors
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Artifact failures: details stay in the logs
	case errors.Is(err, domain.ErrModelInvocation):
		c.JSON(http.StatusInternalServerError, gin.H{"error": domain.ErrModelInvocation.Error()})

	// Caller went away or the server deadline passed
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request cancelled"})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// logFailure logs server-side faults with full detail. Client errors are
// already visible in the request log.
func logFailure(c *gin.Context, op string, err error) {
	if errors.Is(err, domain.ErrValidation) {
		return
	}
	log.WithError(err).WithFields(log.Fields{
		"op":         op,
		"request_id": c.GetString("request_id"),
	}).Error(op + " failed")
}
