package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies an operating expense.
type ExpenseCategory string

const (
	CategoryGroceries ExpenseCategory = "GROCERIES"
	CategoryRent      ExpenseCategory = "RENT"
	CategoryUtilities ExpenseCategory = "UTILITIES"
	CategorySalaries  ExpenseCategory = "SALARIES"
	CategoryOther     ExpenseCategory = "OTHER"
)

// Expense is an operating cost row. Every salary payment creates exactly one
// Expense with CategorySalaries before the SalaryPayment row is written.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary key (UUID)
	OwnerID     string          `json:"ownerID"`   // Tenant scope
	Amount      decimal.Decimal `json:"amount"`
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	AuditFields
}
