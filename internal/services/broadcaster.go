package services

// Broadcaster is the notify side of every command: handlers compute a
// result through the stores, then hand the outcome to a Broadcaster.
// Delivery is best effort; a slow or unreachable subscriber is never
// reported back to the caller.
type Broadcaster interface {
	BroadcastToRoom(room, event string, payload any)
	BroadcastToMatch(matchID, event string, payload any)
	BroadcastGlobal(event string, payload any)
}
