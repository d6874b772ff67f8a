package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minerco/server/game/economy"
)

// statusFor maps engine errors to HTTP status codes. Anything the
// engine does not recognise is treated as an internal error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, economy.ErrUnknownOre),
		errors.Is(err, economy.ErrUnknownTier),
		errors.Is(err, economy.ErrUnknownSword),
		errors.Is(err, economy.ErrUnknownPowerup),
		errors.Is(err, economy.ErrInvalidCode),
		errors.Is(err, economy.ErrCodeRequired):
		return http.StatusBadRequest
	case errors.Is(err, economy.ErrInsufficientSilver),
		errors.Is(err, economy.ErrInsufficientResources):
		return http.StatusPaymentRequired
	case errors.Is(err, economy.ErrLockedOre),
		errors.Is(err, economy.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, economy.ErrCodeAlreadyUsed):
		return http.StatusConflict
	case errors.Is(err, economy.ErrCooldown):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func abortEngineErr(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	c.JSON(status, gin.H{"error": msg})
}
