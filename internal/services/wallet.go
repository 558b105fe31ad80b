package services

import (
	"fmt"
	"sync"

	"cricket-live-backend/internal/models"
)

// WalletStore owns every user balance. All access goes through the store's
// mutex, so a debit is a single indivisible step even under concurrent
// requests for the same user.
type WalletStore struct {
	mu           sync.Mutex
	users        map[string]*models.User
	initialCoins int64
	created      int64
}

func NewWalletStore(initialCoins int64) *WalletStore {
	return &WalletStore{
		users:        make(map[string]*models.User),
		initialCoins: initialCoins,
	}
}

// CreateUser registers a new user with the configured starting balance.
// An empty name gets a sequential player_<n> default.
func (s *WalletStore) CreateUser(name string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.created++
	if name == "" {
		name = fmt.Sprintf("player_%d", s.created)
	}

	user := &models.User{
		ID:    models.GenerateUserID(),
		Name:  name,
		Coins: s.initialCoins,
	}
	s.users[user.ID] = user

	copied := *user
	return &copied
}

// Debit decrements a user's balance and returns the new balance. On
// ErrInsufficientCoins the returned balance is the unchanged current one.
func (s *WalletStore) Debit(userID string, amount int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return 0, ErrInvalidUser
	}
	if amount <= 0 {
		return user.Coins, ErrInvalidAmount
	}
	if user.Coins < amount {
		return user.Coins, ErrInsufficientCoins
	}

	user.Coins -= amount
	return user.Coins, nil
}

// Credit increments a user's balance and returns the new balance.
func (s *WalletStore) Credit(userID string, amount int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return 0, ErrInvalidUser
	}
	if amount <= 0 {
		return user.Coins, ErrInvalidAmount
	}

	user.Coins += amount
	return user.Coins, nil
}

func (s *WalletStore) GetBalance(userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return 0, ErrInvalidUser
	}
	return user.Coins, nil
}
