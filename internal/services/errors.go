package services

import "errors"

// Caller input/state errors. None are retried and none are fatal; the
// HTTP layer maps them to wire codes.
var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrInvalidUser       = errors.New("invalid user")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientCoins = errors.New("insufficient coins")
	ErrUnknownAction     = errors.New("unknown action")
	ErrMissingMatchID    = errors.New("matchId required")
)
