package domain

import "github.com/shopspring/decimal"

// PayrollBreakdown is the derived payroll statement for one staff member and
// one month. It is a pure computation result; nothing is persisted until the
// salary is actually paid.
type PayrollBreakdown struct {
	BaseSalary    decimal.Decimal `json:"baseSalary"`
	DailyRate     decimal.Decimal `json:"dailyRate"` // BaseSalary / 30
	PresentDays   int             `json:"presentDays"`
	AbsentDays    int             `json:"absentDays"`
	HalfDays      int             `json:"halfDays"`
	Deduction     decimal.Decimal `json:"deduction"`
	AdvancesTotal decimal.Decimal `json:"advancesTotal"`
	NetPayable    decimal.Decimal `json:"netPayable"` // Floored at zero
}
