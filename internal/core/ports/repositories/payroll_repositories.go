package repositories

import (
	"context"
	"time"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
)

// AttendanceRepository manages per-day attendance rows. Writes are upserts
// on (owner, staff, date): marking the same day twice overwrites the status
// instead of creating a duplicate row.
type AttendanceRepository interface {
	// UpsertAttendance inserts or overwrites the attendance row for the record's key.
	UpsertAttendance(ctx context.Context, record domain.AttendanceRecord) error

	// ListAttendanceByRange retrieves a staff member's attendance rows with
	// date in [from, to), ordered by date ascending.
	ListAttendanceByRange(ctx context.Context, ownerID, staffID string, from, to time.Time) ([]domain.AttendanceRecord, error)
}

// AdvanceRepository manages salary advance rows.
type AdvanceRepository interface {
	// SaveAdvance persists a new advance.
	SaveAdvance(ctx context.Context, advance domain.SalaryAdvance) error

	// FindAdvanceByID retrieves an advance by ID, scoped to the owner.
	FindAdvanceByID(ctx context.Context, ownerID, advanceID string) (*domain.SalaryAdvance, error)

	// ListAdvancesByRange retrieves a staff member's advances with date in
	// [from, to), ordered by date ascending.
	ListAdvancesByRange(ctx context.Context, ownerID, staffID string, from, to time.Time) ([]domain.SalaryAdvance, error)

	// DeleteAdvance removes a single advance.
	DeleteAdvance(ctx context.Context, ownerID, advanceID string) error
}

// SalaryPaymentReader defines read operations for salary payment rows.
type SalaryPaymentReader interface {
	// FindSalaryPayment retrieves the payment row for (staff, monthYear), if any.
	FindSalaryPayment(ctx context.Context, ownerID, staffID, monthYear string) (*domain.SalaryPayment, error)

	// ListSalaryPayments retrieves a staff member's payment history, newest first.
	ListSalaryPayments(ctx context.Context, ownerID, staffID string) ([]domain.SalaryPayment, error)
}

// SalaryPaymentWriter defines the disbursement write path.
type SalaryPaymentWriter interface {
	// SaveSalaryPayment persists the expense and the salary payment and clears
	// the staff member's advances dated in [clearFrom, clearTo), all within one
	// store transaction. The unique index on (owner, staff, month_year) makes
	// the write idempotent: a second attempt for the same period fails with
	// apperrors.ErrDuplicate and persists nothing.
	SaveSalaryPayment(ctx context.Context, payment domain.SalaryPayment, expense domain.Expense, clearFrom, clearTo time.Time) error
}

// PayrollRepositoryFacade combines the payroll-related repository interfaces
type PayrollRepositoryFacade interface {
	AttendanceRepository
	AdvanceRepository
	SalaryPaymentReader
	SalaryPaymentWriter
}

// PayrollRepositoryWithTx extends PayrollRepositoryFacade with transaction capabilities
type PayrollRepositoryWithTx interface {
	PayrollRepositoryFacade
	TransactionManager
}
