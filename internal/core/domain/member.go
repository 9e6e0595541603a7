package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MemberStatus is the lifecycle state of a mess member.
type MemberStatus string

const (
	MemberActive   MemberStatus = "ACTIVE"
	MemberInactive MemberStatus = "INACTIVE"
)

// PlanType identifies the meal plan a member is subscribed to.
type PlanType string

const (
	PlanFull    PlanType = "FULL"
	PlanLunch   PlanType = "LUNCH"
	PlanDinner  PlanType = "DINNER"
	PlanTrial   PlanType = "TRIAL"
)

// Member represents a mess member within the core domain.
//
// Balance is a cached running total of what the member owes, kept in sync
// incrementally by the ledger service; it is never recomputed from the
// transaction history on the read path. Only payment-type transactions move
// it (charges and adjustments are recorded in the ledger without touching
// the cached value).
type Member struct {
	MemberID       string          `json:"memberID"` // Primary key (UUID)
	OwnerID        string          `json:"ownerID"`  // Tenant scope (NON-NULL)
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	PlanType       PlanType        `json:"planType"`
	MonthlyFee     decimal.Decimal `json:"monthlyFee"`
	Balance        decimal.Decimal `json:"balance"`        // Cached outstanding balance
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Balance at signup; reconciliation base
	Status         MemberStatus    `json:"status"`
	JoiningDate    time.Time       `json:"joiningDate"`
	PlanExpiryDate time.Time       `json:"planExpiryDate"`
	AuditFields
}
