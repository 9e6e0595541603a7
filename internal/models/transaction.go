package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the transactions table row. Rows cascade on member delete.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	MemberID      string          `db:"member_id"`
	OwnerID       string          `db:"owner_id"`
	Type          string          `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"date"`
	Notes         string          `db:"notes"`
	AuditFields
}
