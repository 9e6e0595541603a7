package dto

import (
	"time"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetAttendanceRequest marks a staff member's attendance for one day.
// Marking the same date twice overwrites the earlier status.
type SetAttendanceRequest struct {
	Date   time.Time               `json:"date" binding:"required"`
	Status domain.AttendanceStatus `json:"status" binding:"required,oneof=PRESENT ABSENT HALF_DAY"`
}

// AttendanceResponse defines the data returned for an attendance record.
type AttendanceResponse struct {
	AttendanceID string                  `json:"attendanceID"`
	StaffID      string                  `json:"staffID"`
	Date         time.Time               `json:"date"`
	Status       domain.AttendanceStatus `json:"status"`
}

// RecordAdvanceRequest defines the data needed to record a salary advance.
type RecordAdvanceRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Date   *time.Time      `json:"date"` // Defaults to now
	Notes  string          `json:"notes"`
}

// AdvanceResponse defines the data returned for a salary advance.
type AdvanceResponse struct {
	AdvanceID string          `json:"advanceID"`
	StaffID   string          `json:"staffID"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes"`
}

// PayrollBreakdownResponse is the derived payroll statement for the month.
type PayrollBreakdownResponse struct {
	StaffID       string          `json:"staffID"`
	MonthYear     string          `json:"monthYear"`
	BaseSalary    decimal.Decimal `json:"baseSalary"`
	DailyRate     decimal.Decimal `json:"dailyRate"`
	PresentDays   int             `json:"presentDays"`
	AbsentDays    int             `json:"absentDays"`
	HalfDays      int             `json:"halfDays"`
	Deduction     decimal.Decimal `json:"deduction"`
	AdvancesTotal decimal.Decimal `json:"advancesTotal"`
	NetPayable    decimal.Decimal `json:"netPayable"`
}

// PaySalaryRequest defines the data needed to disburse a month's salary.
// The payroll period is always the current month; it is not caller-supplied.
type PaySalaryRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// SalaryPaymentResponse defines the data returned for a salary payment.
type SalaryPaymentResponse struct {
	PaymentID string          `json:"paymentID"`
	StaffID   string          `json:"staffID"`
	Amount    decimal.Decimal `json:"amount"`
	MonthYear string          `json:"monthYear"`
	ExpenseID string          `json:"expenseID"`
	PaidAt    time.Time       `json:"paidAt"`
}

// SalaryStatusResponse reports whether the current month's salary is paid.
type SalaryStatusResponse struct {
	StaffID   string `json:"staffID"`
	MonthYear string `json:"monthYear"`
	Paid      bool   `json:"paid"`
}

// ToAttendanceResponse converts a domain.AttendanceRecord to its DTO.
func ToAttendanceResponse(r *domain.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID: r.AttendanceID,
		StaffID:      r.StaffID,
		Date:         r.Date,
		Status:       r.Status,
	}
}

// ToAdvanceResponse converts a domain.SalaryAdvance to its DTO.
func ToAdvanceResponse(a *domain.SalaryAdvance) AdvanceResponse {
	return AdvanceResponse{
		AdvanceID: a.AdvanceID,
		StaffID:   a.StaffID,
		Amount:    a.Amount,
		Date:      a.Date,
		Notes:     a.Notes,
	}
}

// ToSalaryPaymentResponse converts a domain.SalaryPayment to its DTO.
func ToSalaryPaymentResponse(p *domain.SalaryPayment) SalaryPaymentResponse {
	return SalaryPaymentResponse{
		PaymentID: p.PaymentID,
		StaffID:   p.StaffID,
		Amount:    p.Amount,
		MonthYear: p.MonthYear,
		ExpenseID: p.ExpenseID,
		PaidAt:    p.PaidAt,
	}
}

// ToPayrollBreakdownResponse converts a computed breakdown to its DTO.
func ToPayrollBreakdownResponse(staffID, monthYear string, b domain.PayrollBreakdown) PayrollBreakdownResponse {
	return PayrollBreakdownResponse{
		StaffID:       staffID,
		MonthYear:     monthYear,
		BaseSalary:    b.BaseSalary,
		DailyRate:     b.DailyRate,
		PresentDays:   b.PresentDays,
		AbsentDays:    b.AbsentDays,
		HalfDays:      b.HalfDays,
		Deduction:     b.Deduction,
		AdvancesTotal: b.AdvancesTotal,
		NetPayable:    b.NetPayable,
	}
}
