package models

import "time"

// GameEvent is built per simulate call and discarded after broadcast;
// nothing stores it.
type GameEvent struct {
	TS      int64   `json:"ts"`
	MatchID string  `json:"matchId"`
	Over    *string `json:"over"`
	Runs    *int    `json:"runs"`
	Wicket  bool    `json:"wicket"`
	Message *string `json:"message"`
}

func NewGameEvent(matchID string, over *string, runs *int, wicket bool, message *string) *GameEvent {
	return &GameEvent{
		TS:      time.Now().UnixMilli(),
		MatchID: matchID,
		Over:    over,
		Runs:    runs,
		Wicket:  wicket,
		Message: message,
	}
}
