package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Member is the members table row.
type Member struct {
	MemberID       string          `db:"member_id"`
	OwnerID        string          `db:"owner_id"`
	Name           string          `db:"name"`
	Phone          string          `db:"phone"`
	PlanType       string          `db:"plan_type"`
	MonthlyFee     decimal.Decimal `db:"monthly_fee"`
	Balance        decimal.Decimal `db:"balance"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	Status         string          `db:"status"`
	JoiningDate    time.Time       `db:"joining_date"`
	PlanExpiryDate time.Time       `db:"plan_expiry_date"`
	AuditFields
}
