package models

type WithdrawStatus string

const (
	WithdrawStatusPending WithdrawStatus = "PENDING"
)

// WithdrawRequest records an intent to cash out coins. The ledger only
// appends; status transitions beyond PENDING happen outside this system.
type WithdrawRequest struct {
	ID        int64          `json:"id"`
	UserID    string         `json:"userId"`
	Amount    int64          `json:"amount"`
	Status    WithdrawStatus `json:"status"`
	CreatedAt int64          `json:"createdAt"`
}
