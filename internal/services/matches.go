package services

import "sync"

// MatchIndex maps a match to the rooms created for it. A match may own
// several rooms (re-issued join links); the index only grows.
type MatchIndex struct {
	mu    sync.Mutex
	rooms map[string][]string
}

func NewMatchIndex() *MatchIndex {
	return &MatchIndex{
		rooms: make(map[string][]string),
	}
}

// RegisterRoom appends a room to a match's list. No-op when matchID is
// empty. The list is not deduplicated: registering the same room twice
// lists it twice. That mirrors the upstream behavior and is kept on
// purpose rather than silently fixed.
func (m *MatchIndex) RegisterRoom(matchID, room string) {
	if matchID == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[matchID] = append(m.rooms[matchID], room)
}

// RoomsFor returns the rooms registered for a match; empty for an unknown
// match, never an error.
func (m *MatchIndex) RoomsFor(matchID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	rooms := m.rooms[matchID]
	copied := make([]string, len(rooms))
	copy(copied, rooms)
	return copied
}
