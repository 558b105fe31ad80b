package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cricket-live-backend/internal/models"
	"cricket-live-backend/internal/services"
)

type EventHandler struct {
	matches     *services.MatchIndex
	broadcaster services.Broadcaster
}

func NewEventHandler(matches *services.MatchIndex, broadcaster services.Broadcaster) *EventHandler {
	return &EventHandler{
		matches:     matches,
		broadcaster: broadcaster,
	}
}

// Simulate builds a game event and fans it out to every room of the
// match. The event is ephemeral; nothing stores it.
func (h *EventHandler) Simulate(c *gin.Context) {
	var req struct {
		MatchID string  `json:"matchId"`
		Over    *string `json:"over"`
		Runs    *int    `json:"runs"`
		Wicket  bool    `json:"wicket"`
		Message *string `json:"message"`
	}
	_ = c.ShouldBindJSON(&req)

	if req.MatchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorCode(services.ErrMissingMatchID)})
		return
	}

	event := models.NewGameEvent(req.MatchID, req.Over, req.Runs, req.Wicket, req.Message)
	rooms := h.matches.RoomsFor(req.MatchID)

	h.broadcaster.BroadcastToMatch(req.MatchID, "gameEvent", event)

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"event": event,
		"rooms": rooms,
	})
}
