package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nsplatform/backend/internal/errs"
)

// resendPath is the recovery flow offered whenever verification blocks a request.
const resendPath = "/api/auth/resend-verification"

// respondErr maps domain sentinels to HTTP statuses. Validation-class errors
// surface their own message; anything unknown collapses to a generic 500 so
// internals never leak.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrMissingField),
		errors.Is(err, errs.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrDuplicateLogin),
		errors.Is(err, errs.ErrDuplicateEmail),
		errors.Is(err, errs.ErrDuplicatePhone),
		errors.Is(err, errs.ErrDuplicateGoalName),
		errors.Is(err, errs.ErrDuplicateWeight),
		errors.Is(err, errs.ErrDuplicateParticipation),
		errors.Is(err, errs.ErrGoalAlreadyInSession),
		errors.Is(err, errs.ErrAlreadyVerified),
		errors.Is(err, errs.ErrInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "bad credentials"})
	case errors.Is(err, errs.ErrUnverified):
		c.JSON(http.StatusForbidden, gin.H{"error": errs.ErrUnverified.Error(), "resend": resendPath})
	case errors.Is(err, errs.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many attempts, try again later"})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
