package dto

import (
	"time"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMemberRequest defines the data needed to register a new member.
type CreateMemberRequest struct {
	Name           string          `json:"name" binding:"required"`
	Phone          string          `json:"phone"`
	PlanType       domain.PlanType `json:"planType" binding:"required,oneof=FULL LUNCH DINNER TRIAL"`
	MonthlyFee     decimal.Decimal `json:"monthlyFee" binding:"required"`
	JoiningDate    *time.Time      `json:"joiningDate"`    // Defaults to now
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Optional, defaults to zero
}

// UpdateMemberRequest defines the data allowed for updating a member.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateMemberRequest struct {
	Name       *string              `json:"name"`
	Phone      *string              `json:"phone"`
	PlanType   *domain.PlanType     `json:"planType" binding:"omitempty,oneof=FULL LUNCH DINNER TRIAL"`
	MonthlyFee *decimal.Decimal     `json:"monthlyFee"`
	Status     *domain.MemberStatus `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// MemberResponse defines the data returned for a member.
type MemberResponse struct {
	MemberID       string          `json:"memberID"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	PlanType       domain.PlanType `json:"planType"`
	MonthlyFee     decimal.Decimal `json:"monthlyFee"`
	Balance        decimal.Decimal `json:"balance"`
	Status         domain.MemberStatus `json:"status"`
	JoiningDate    time.Time       `json:"joiningDate"`
	PlanExpiryDate time.Time       `json:"planExpiryDate"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ListMembersParams holds parameters for listing members.
type ListMembersParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListMembersResponse is a page of members plus the token for the next page.
type ListMembersResponse struct {
	Members   []MemberResponse `json:"members"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ReconcileBalanceResponse reports the outcome of a balance reconciliation.
type ReconcileBalanceResponse struct {
	MemberID        string          `json:"memberID"`
	PreviousBalance decimal.Decimal `json:"previousBalance"`
	Balance         decimal.Decimal `json:"balance"`
	Drift           decimal.Decimal `json:"drift"`
}

// ToMemberResponse converts a domain.Member to MemberResponse DTO
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:       m.MemberID,
		Name:           m.Name,
		Phone:          m.Phone,
		PlanType:       m.PlanType,
		MonthlyFee:     m.MonthlyFee,
		Balance:        m.Balance,
		Status:         m.Status,
		JoiningDate:    m.JoiningDate,
		PlanExpiryDate: m.PlanExpiryDate,
		CreatedAt:      m.CreatedAt,
		LastUpdatedAt:  m.LastUpdatedAt,
	}
}
