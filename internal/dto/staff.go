package dto

import (
	"time"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateStaffRequest defines the data needed to register a staff member.
type CreateStaffRequest struct {
	Name          string           `json:"name" binding:"required"`
	Role          domain.StaffRole `json:"role" binding:"required,oneof=COOK HELPER MANAGER CLEANER"`
	Phone         string           `json:"phone"`
	BaseSalary    decimal.Decimal  `json:"baseSalary" binding:"required"`
	BankName      string           `json:"bankName"`
	BankAccountNo string           `json:"bankAccountNo"`
}

// UpdateStaffRequest defines the data allowed for updating a staff member.
type UpdateStaffRequest struct {
	Name          *string           `json:"name"`
	Role          *domain.StaffRole `json:"role" binding:"omitempty,oneof=COOK HELPER MANAGER CLEANER"`
	Phone         *string           `json:"phone"`
	BaseSalary    *decimal.Decimal  `json:"baseSalary"`
	BankName      *string           `json:"bankName"`
	BankAccountNo *string           `json:"bankAccountNo"`
}

// StaffResponse defines the data returned for a staff member.
type StaffResponse struct {
	StaffID       string           `json:"staffID"`
	Name          string           `json:"name"`
	Role          domain.StaffRole `json:"role"`
	Phone         string           `json:"phone"`
	BaseSalary    decimal.Decimal  `json:"baseSalary"`
	IsActive      bool             `json:"isActive"`
	BankName      string           `json:"bankName"`
	BankAccountNo string           `json:"bankAccountNo"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ListStaffParams holds parameters for listing staff.
type ListStaffParams struct {
	IncludeInactive bool `form:"includeInactive"`
	Limit           int  `form:"limit"`
	Offset          int  `form:"offset"`
}

// ToStaffResponse converts a domain.Staff to StaffResponse DTO
func ToStaffResponse(s *domain.Staff) StaffResponse {
	return StaffResponse{
		StaffID:       s.StaffID,
		Name:          s.Name,
		Role:          s.Role,
		Phone:         s.Phone,
		BaseSalary:    s.BaseSalary,
		IsActive:      s.IsActive,
		BankName:      s.BankName,
		BankAccountNo: s.BankAccountNo,
		CreatedAt:     s.CreatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
	}
}
