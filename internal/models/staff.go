package models

import "github.com/shopspring/decimal"

// Staff is the staff table row.
type Staff struct {
	StaffID       string          `db:"staff_id"`
	OwnerID       string          `db:"owner_id"`
	Name          string          `db:"name"`
	Role          string          `db:"role"`
	Phone         string          `db:"phone"`
	BaseSalary    decimal.Decimal `db:"base_salary"`
	IsActive      bool            `db:"is_active"`
	BankName      string          `db:"bank_name"`
	BankAccountNo string          `db:"bank_account_no"`
	AuditFields
}
