package services

import (
	"sync"
	"time"

	"cricket-live-backend/internal/models"
)

// WithdrawLedger is an append-only log of withdrawal requests, derived
// from wallet debits. A failed debit never produces an entry.
type WithdrawLedger struct {
	mu       sync.Mutex
	wallet   *WalletStore
	requests []*models.WithdrawRequest
	nextID   int64
}

func NewWithdrawLedger(wallet *WalletStore) *WithdrawLedger {
	return &WithdrawLedger{
		wallet: wallet,
		nextID: 1,
	}
}

// RequestWithdraw debits the wallet and appends a PENDING request with the
// next sequential id. Returns the request and the remaining balance; on
// ErrInsufficientCoins the balance is the unchanged current one.
func (l *WithdrawLedger) RequestWithdraw(userID string, amount int64) (*models.WithdrawRequest, int64, error) {
	coins, err := l.wallet.Debit(userID, amount)
	if err != nil {
		return nil, coins, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	request := &models.WithdrawRequest{
		ID:        l.nextID,
		UserID:    userID,
		Amount:    amount,
		Status:    models.WithdrawStatusPending,
		CreatedAt: time.Now().UnixMilli(),
	}
	l.nextID++
	l.requests = append(l.requests, request)

	copied := *request
	return &copied, coins, nil
}

// Requests returns a snapshot of every recorded withdrawal request.
func (l *WithdrawLedger) Requests() []*models.WithdrawRequest {
	l.mu.Lock()
	defer l.mu.Unlock()

	copied := make([]*models.WithdrawRequest, len(l.requests))
	for i, r := range l.requests {
		req := *r
		copied[i] = &req
	}
	return copied
}
