package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryPayment records one month's salary disbursement for a staff member.
// At most one row exists per (owner, staff, monthYear); the store enforces
// this with a unique index, which is the idempotency anchor preventing
// double payment.
type SalaryPayment struct {
	PaymentID string          `json:"paymentID"` // Primary key (UUID)
	OwnerID   string          `json:"ownerID"`   // Tenant scope
	StaffID   string          `json:"staffID"`   // FK -> Staff
	Amount    decimal.Decimal `json:"amount"`
	MonthYear string          `json:"monthYear"` // "yyyy-MM" payroll period key
	ExpenseID string          `json:"expenseID"` // FK -> Expense (Not Null)
	PaidAt    time.Time       `json:"paidAt"`
}
