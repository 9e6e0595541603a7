package domain

import "github.com/shopspring/decimal"

// StaffRole identifies the job of a staff member.
type StaffRole string

const (
	RoleCook    StaffRole = "COOK"
	RoleHelper  StaffRole = "HELPER"
	RoleManager StaffRole = "MANAGER"
	RoleCleaner StaffRole = "CLEANER"
)

// Staff represents an employee of the mess.
//
// IsActive=false is the soft-delete ("left company") state; history is
// preserved and the flag can be flipped back on rehire. Hard delete is a
// separate, rarely used path.
type Staff struct {
	StaffID       string          `json:"staffID"` // Primary key (UUID)
	OwnerID       string          `json:"ownerID"` // Tenant scope
	Name          string          `json:"name"`
	Role          StaffRole       `json:"role"`
	Phone         string          `json:"phone"`
	BaseSalary    decimal.Decimal `json:"baseSalary"` // Monthly base
	IsActive      bool            `json:"isActive"`
	BankName      string          `json:"bankName"`      // Nullable
	BankAccountNo string          `json:"bankAccountNo"` // Nullable
	AuditFields
}
