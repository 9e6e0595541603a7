package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the expenses table row.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	OwnerID     string          `db:"owner_id"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
	Description string          `db:"description"`
	Date        time.Time       `db:"date"`
	AuditFields
}
