package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cricket-live-backend/internal/config"
	"cricket-live-backend/internal/services"
)

type UserHandler struct {
	wallet      *services.WalletStore
	registry    *services.TokenRegistry
	ledger      *services.WithdrawLedger
	broadcaster services.Broadcaster
	cfg         *config.Config
}

func NewUserHandler(wallet *services.WalletStore, registry *services.TokenRegistry, ledger *services.WithdrawLedger, broadcaster services.Broadcaster, cfg *config.Config) *UserHandler {
	return &UserHandler{
		wallet:      wallet,
		registry:    registry,
		ledger:      ledger,
		broadcaster: broadcaster,
		cfg:         cfg,
	}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	_ = c.ShouldBindJSON(&req)

	user := h.wallet.CreateUser(req.Name)

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// PlayerAction spends coins on a game action and pushes the new balance
// to everyone in the token's room.
func (h *UserHandler) PlayerAction(c *gin.Context) {
	var req struct {
		Token  string `json:"token"`
		UserID string `json:"userId"`
		Action string `json:"action"`
	}
	_ = c.ShouldBindJSON(&req)

	record, err := h.registry.Resolve(req.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorCode(err)})
		return
	}

	if _, err := h.wallet.GetBalance(req.UserID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorCode(err)})
		return
	}

	if req.Action != "play" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorCode(services.ErrUnknownAction)})
		return
	}

	coins, err := h.wallet.Debit(req.UserID, h.cfg.CostPerPlay)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientCoins) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errorCode(err), "coins": coins})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errorCode(err)})
		return
	}

	h.broadcaster.BroadcastToRoom(record.Room, "balanceUpdate", gin.H{
		"userId": req.UserID,
		"coins":  coins,
	})

	c.JSON(http.StatusOK, gin.H{"ok": true, "coins": coins})
}

// Withdraw records a pending cash-out request and announces it to every
// connected client.
func (h *UserHandler) Withdraw(c *gin.Context) {
	var req struct {
		UserID string `json:"userId"`
		Amount int64  `json:"amount"`
	}
	_ = c.ShouldBindJSON(&req)

	request, coins, err := h.ledger.RequestWithdraw(req.UserID, req.Amount)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientCoins) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errorCode(err), "coins": coins})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errorCode(err)})
		return
	}

	h.broadcaster.BroadcastGlobal("withdrawRequest", request)

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"request": request,
		"coins":   coins,
	})
}
