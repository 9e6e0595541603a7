package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	// Payment records money received from a member. Payments are the only
	// transaction type reconciled against the member's cached balance.
	Payment TransactionType = "PAYMENT"
	// Charge records an amount owed (e.g. a plan renewal fee).
	Charge TransactionType = "CHARGE"
	// Adjustment records a manual correction entry.
	Adjustment TransactionType = "ADJUSTMENT"
)

// Transaction represents one entry in a member's ledger.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary key (UUID)
	MemberID      string          `json:"memberID"`      // FK -> Member (Not Null)
	OwnerID       string          `json:"ownerID"`       // Tenant scope
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"` // Always positive
	Date          time.Time       `json:"date"`
	Notes         string          `json:"notes"` // Nullable
	AuditFields
}
