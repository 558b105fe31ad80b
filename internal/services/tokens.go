package services

import (
	"sync"

	"cricket-live-backend/internal/models"
)

// TokenRegistry maps opaque join tokens to their room and owning match.
// Rooms are always registry-produced, never client-supplied.
type TokenRegistry struct {
	mu     sync.Mutex
	tokens map[string]*models.TokenRecord
}

func NewTokenRegistry() *TokenRegistry {
	return &TokenRegistry{
		tokens: make(map[string]*models.TokenRecord),
	}
}

// CreateToken generates a token unique among live tokens, regenerating on
// the rare collision, and registers its record.
func (r *TokenRegistry) CreateToken(matchID, createdBy string) *models.TokenRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	token := models.GenerateToken()
	for _, exists := r.tokens[token]; exists; _, exists = r.tokens[token] {
		token = models.GenerateToken()
	}

	record := &models.TokenRecord{
		Token:     token,
		Room:      models.RoomForToken(token),
		MatchID:   matchID,
		CreatedBy: createdBy,
	}
	r.tokens[token] = record

	copied := *record
	return &copied
}

func (r *TokenRegistry) Resolve(token string) (*models.TokenRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.tokens[token]
	if !ok {
		return nil, ErrInvalidToken
	}

	copied := *record
	return &copied, nil
}
