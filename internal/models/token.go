package models

// TokenRecord maps an opaque join token to its broadcast room. Immutable
// after creation.
type TokenRecord struct {
	Token     string `json:"token"`
	Room      string `json:"room"`
	MatchID   string `json:"matchId,omitempty"`
	CreatedBy string `json:"createdBy,omitempty"`
}
