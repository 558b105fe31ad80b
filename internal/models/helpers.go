package models

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

func GenerateUserID() string {
	return fmt.Sprintf("u_%d", uuid.New().ID())
}

// GenerateToken returns an 8-character hex join token. Uniqueness against
// live tokens is the registry's job, not this function's.
func GenerateToken() string {
	bytes := make([]byte, 4)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// uuid-derived value rather than panic.
		return fmt.Sprintf("%08x", uuid.New().ID())
	}
	return hex.EncodeToString(bytes)
}

func RoomForToken(token string) string {
	return "room_" + token
}
