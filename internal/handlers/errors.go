package handlers

import (
	"errors"

	"cricket-live-backend/internal/services"
)

// errorCode maps a service error onto its wire code.
func errorCode(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidToken):
		return "INVALID_TOKEN"
	case errors.Is(err, services.ErrInvalidUser):
		return "INVALID_USER"
	case errors.Is(err, services.ErrInvalidAmount):
		return "INVALID_AMOUNT"
	case errors.Is(err, services.ErrInsufficientCoins):
		return "INSUFFICIENT_COINS"
	case errors.Is(err, services.ErrUnknownAction):
		return "UNKNOWN_ACTION"
	case errors.Is(err, services.ErrMissingMatchID):
		return "MATCH_ID_REQUIRED"
	}
	return "INTERNAL_ERROR"
}
