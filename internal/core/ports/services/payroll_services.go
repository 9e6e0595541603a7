package services

import (
	"context"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/dto"
)

// PayrollSvcFacade defines attendance, advance and salary disbursement
// operations. The payroll period of IsSalaryPaid and PaySalary is always the
// current calendar month, keyed by its "yyyy-MM" month_year string.
type PayrollSvcFacade interface {
	// SetAttendance upserts the attendance status for (staff, date).
	SetAttendance(ctx context.Context, ownerID, staffID string, req dto.SetAttendanceRequest) (*domain.AttendanceRecord, error)

	// ListMonthAttendance returns the staff member's attendance rows for the
	// given "yyyy-MM" period, oldest first.
	ListMonthAttendance(ctx context.Context, ownerID, staffID, monthYear string) ([]domain.AttendanceRecord, error)

	RecordAdvance(ctx context.Context, ownerID, staffID string, req dto.RecordAdvanceRequest) (*domain.SalaryAdvance, error)
	ListMonthAdvances(ctx context.Context, ownerID, staffID, monthYear string) ([]domain.SalaryAdvance, error)
	DeleteAdvance(ctx context.Context, ownerID, advanceID string) error

	// GetPayrollBreakdown computes the current month's payroll statement from
	// the staff record, attendance and advances. Nothing is persisted.
	GetPayrollBreakdown(ctx context.Context, ownerID, staffID string) (*dto.PayrollBreakdownResponse, error)

	// IsSalaryPaid reports whether a salary payment exists for the current month.
	IsSalaryPaid(ctx context.Context, ownerID, staffID string) (*dto.SalaryStatusResponse, error)

	// PaySalary disburses the current month's salary: one expense row, one
	// salary payment row and the clearing of the month's advances, atomically.
	// A second call for the same staff and month fails with ErrSalaryAlreadyPaid.
	PaySalary(ctx context.Context, ownerID, staffID string, req dto.PaySalaryRequest) (*domain.SalaryPayment, error)

	// ListSalaryPayments returns the staff member's payment history, newest first.
	ListSalaryPayments(ctx context.Context, ownerID, staffID string) ([]domain.SalaryPayment, error)
}
