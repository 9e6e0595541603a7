package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceRecord is the attendance_records table row.
// Unique on (owner_id, staff_id, date); writes are upserts on that key.
type AttendanceRecord struct {
	AttendanceID string    `db:"attendance_id"`
	OwnerID      string    `db:"owner_id"`
	StaffID      string    `db:"staff_id"`
	Date         time.Time `db:"date"`
	Status       string    `db:"status"`
	AuditFields
}

// SalaryAdvance is the salary_advances table row.
type SalaryAdvance struct {
	AdvanceID string          `db:"advance_id"`
	OwnerID   string          `db:"owner_id"`
	StaffID   string          `db:"staff_id"`
	Amount    decimal.Decimal `db:"amount"`
	Date      time.Time       `db:"date"`
	Notes     string          `db:"notes"`
	AuditFields
}

// SalaryPayment is the salary_payments table row.
// Unique on (owner_id, staff_id, month_year).
type SalaryPayment struct {
	PaymentID string          `db:"payment_id"`
	OwnerID   string          `db:"owner_id"`
	StaffID   string          `db:"staff_id"`
	Amount    decimal.Decimal `db:"amount"`
	MonthYear string          `db:"month_year"`
	ExpenseID string          `db:"expense_id"`
	PaidAt    time.Time       `db:"paid_at"`
}
