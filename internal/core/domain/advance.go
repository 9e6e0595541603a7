package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryAdvance is a pre-payment against future salary. Advances accumulate
// during a month and are deleted in bulk when that month's salary is paid.
type SalaryAdvance struct {
	AdvanceID string          `json:"advanceID"` // Primary key (UUID)
	OwnerID   string          `json:"ownerID"`   // Tenant scope
	StaffID   string          `json:"staffID"`   // FK -> Staff
	Amount    decimal.Decimal `json:"amount"`    // Always positive
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes"` // Nullable
	AuditFields
}
