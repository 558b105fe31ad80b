package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cricket-live-backend/internal/config"
	"cricket-live-backend/internal/services"
)

type TokenHandler struct {
	registry *services.TokenRegistry
	matches  *services.MatchIndex
	cfg      *config.Config
}

func NewTokenHandler(registry *services.TokenRegistry, matches *services.MatchIndex, cfg *config.Config) *TokenHandler {
	return &TokenHandler{
		registry: registry,
		matches:  matches,
		cfg:      cfg,
	}
}

// Create issues a fresh token and room for a match and returns the join
// link subscribers follow.
func (h *TokenHandler) Create(c *gin.Context) {
	var req struct {
		MatchID   string `json:"matchId"`
		CreatedBy string `json:"createdBy"`
	}
	// Body is optional; an empty request creates an unattached room.
	_ = c.ShouldBindJSON(&req)

	record := h.registry.CreateToken(req.MatchID, req.CreatedBy)
	h.matches.RegisterRoom(record.MatchID, record.Room)

	c.JSON(http.StatusOK, gin.H{
		"token": record.Token,
		"room":  record.Room,
		"link":  fmt.Sprintf("%s/?token=%s", h.cfg.FrontendURL, record.Token),
	})
}
