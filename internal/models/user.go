package models

// User is a process-lifetime entity; its balance only changes through
// wallet store operations.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Coins int64  `json:"coins"`
}
