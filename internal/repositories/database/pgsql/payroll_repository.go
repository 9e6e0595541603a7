package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/apperrors"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	portsrepo "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/repositories"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPayrollRepository struct {
	BaseRepository
}

// newPgxPayrollRepository creates a new repository for attendance, advance
// and salary payment data.
func newPgxPayrollRepository(pool *pgxpool.Pool) portsrepo.PayrollRepositoryWithTx {
	return &PgxPayrollRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPayrollRepository implements portsrepo.PayrollRepositoryWithTx
var _ portsrepo.PayrollRepositoryWithTx = (*PgxPayrollRepository)(nil)

func toDomainAttendance(m models.AttendanceRecord) domain.AttendanceRecord {
	return domain.AttendanceRecord{
		AttendanceID: m.AttendanceID,
		OwnerID:      m.OwnerID,
		StaffID:      m.StaffID,
		Date:         m.Date,
		Status:       domain.AttendanceStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func toDomainAdvance(m models.SalaryAdvance) domain.SalaryAdvance {
	return domain.SalaryAdvance{
		AdvanceID: m.AdvanceID,
		OwnerID:   m.OwnerID,
		StaffID:   m.StaffID,
		Amount:    m.Amount,
		Date:      m.Date,
		Notes:     m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func toDomainSalaryPayment(m models.SalaryPayment) domain.SalaryPayment {
	return domain.SalaryPayment{
		PaymentID: m.PaymentID,
		OwnerID:   m.OwnerID,
		StaffID:   m.StaffID,
		Amount:    m.Amount,
		MonthYear: m.MonthYear,
		ExpenseID: m.ExpenseID,
		PaidAt:    m.PaidAt,
	}
}

// UpsertAttendance inserts the attendance row or, when one already exists
// for (owner, staff, date), overwrites its status. One row per staff per day.
func (r *PgxPayrollRepository) UpsertAttendance(ctx context.Context, record domain.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records (attendance_id, owner_id, staff_id, date, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (owner_id, staff_id, date)
		DO UPDATE SET status = EXCLUDED.status, last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		record.AttendanceID,
		record.OwnerID,
		record.StaffID,
		record.Date,
		string(record.Status),
		record.CreatedAt,
		record.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance for staff %s on %s: %w", record.StaffID, record.Date.Format("2006-01-02"), err)
	}
	return nil
}

// ListAttendanceByRange retrieves attendance rows with date in [from, to).
func (r *PgxPayrollRepository) ListAttendanceByRange(ctx context.Context, ownerID, staffID string, from, to time.Time) ([]domain.AttendanceRecord, error) {
	query := `
		SELECT attendance_id, owner_id, staff_id, date, status, created_at, last_updated_at
		FROM attendance_records
		WHERE owner_id = $1 AND staff_id = $2 AND date >= $3 AND date < $4
		ORDER BY date;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance for staff %s: %w", staffID, err)
	}
	defer rows.Close()

	records := []domain.AttendanceRecord{}
	for rows.Next() {
		var m models.AttendanceRecord
		if err := rows.Scan(&m.AttendanceID, &m.OwnerID, &m.StaffID, &m.Date, &m.Status, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, toDomainAttendance(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", rows.Err())
	}
	return records, nil
}

// SaveAdvance persists a new salary advance.
func (r *PgxPayrollRepository) SaveAdvance(ctx context.Context, advance domain.SalaryAdvance) error {
	query := `
		INSERT INTO salary_advances (advance_id, owner_id, staff_id, amount, date, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		advance.AdvanceID,
		advance.OwnerID,
		advance.StaffID,
		advance.Amount,
		advance.Date,
		advance.Notes,
		advance.CreatedAt,
		advance.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save advance %s: %w", advance.AdvanceID, err)
	}
	return nil
}

// FindAdvanceByID retrieves an advance by ID, scoped to the owner.
func (r *PgxPayrollRepository) FindAdvanceByID(ctx context.Context, ownerID, advanceID string) (*domain.SalaryAdvance, error) {
	query := `
		SELECT advance_id, owner_id, staff_id, amount, date, notes, created_at, last_updated_at
		FROM salary_advances
		WHERE advance_id = $1 AND owner_id = $2;
	`
	var m models.SalaryAdvance
	err := r.Pool.QueryRow(ctx, query, advanceID, ownerID).Scan(
		&m.AdvanceID, &m.OwnerID, &m.StaffID, &m.Amount, &m.Date, &m.Notes, &m.CreatedAt, &m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find advance by ID %s: %w", advanceID, err)
	}
	adv := toDomainAdvance(m)
	return &adv, nil
}

// ListAdvancesByRange retrieves advances with date in [from, to).
func (r *PgxPayrollRepository) ListAdvancesByRange(ctx context.Context, ownerID, staffID string, from, to time.Time) ([]domain.SalaryAdvance, error) {
	query := `
		SELECT advance_id, owner_id, staff_id, amount, date, notes, created_at, last_updated_at
		FROM salary_advances
		WHERE owner_id = $1 AND staff_id = $2 AND date >= $3 AND date < $4
		ORDER BY date;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query advances for staff %s: %w", staffID, err)
	}
	defer rows.Close()

	advances := []domain.SalaryAdvance{}
	for rows.Next() {
		var m models.SalaryAdvance
		if err := rows.Scan(&m.AdvanceID, &m.OwnerID, &m.StaffID, &m.Amount, &m.Date, &m.Notes, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan advance row: %w", err)
		}
		advances = append(advances, toDomainAdvance(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating advance rows: %w", rows.Err())
	}
	return advances, nil
}

// DeleteAdvance removes a single advance.
func (r *PgxPayrollRepository) DeleteAdvance(ctx context.Context, ownerID, advanceID string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`DELETE FROM salary_advances WHERE advance_id = $1 AND owner_id = $2;`,
		advanceID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete advance %s: %w", advanceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindSalaryPayment retrieves the payment row for (staff, monthYear), if any.
func (r *PgxPayrollRepository) FindSalaryPayment(ctx context.Context, ownerID, staffID, monthYear string) (*domain.SalaryPayment, error) {
	query := `
		SELECT payment_id, owner_id, staff_id, amount, month_year, expense_id, paid_at
		FROM salary_payments
		WHERE owner_id = $1 AND staff_id = $2 AND month_year = $3;
	`
	var m models.SalaryPayment
	err := r.Pool.QueryRow(ctx, query, ownerID, staffID, monthYear).Scan(
		&m.PaymentID, &m.OwnerID, &m.StaffID, &m.Amount, &m.MonthYear, &m.ExpenseID, &m.PaidAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find salary payment for staff %s in %s: %w", staffID, monthYear, err)
	}
	payment := toDomainSalaryPayment(m)
	return &payment, nil
}

// ListSalaryPayments retrieves a staff member's payment history, newest first.
func (r *PgxPayrollRepository) ListSalaryPayments(ctx context.Context, ownerID, staffID string) ([]domain.SalaryPayment, error) {
	query := `
		SELECT payment_id, owner_id, staff_id, amount, month_year, expense_id, paid_at
		FROM salary_payments
		WHERE owner_id = $1 AND staff_id = $2
		ORDER BY month_year DESC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary payments for staff %s: %w", staffID, err)
	}
	defer rows.Close()

	payments := []domain.SalaryPayment{}
	for rows.Next() {
		var m models.SalaryPayment
		if err := rows.Scan(&m.PaymentID, &m.OwnerID, &m.StaffID, &m.Amount, &m.MonthYear, &m.ExpenseID, &m.PaidAt); err != nil {
			return nil, fmt.Errorf("failed to scan salary payment row: %w", err)
		}
		payments = append(payments, toDomainSalaryPayment(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating salary payment rows: %w", rows.Err())
	}
	return payments, nil
}

// SaveSalaryPayment persists the expense, the salary payment and the advance
// clearing within one store transaction. The unique index on
// (owner_id, staff_id, month_year) turns a concurrent double submit into an
// ErrDuplicate on one side; nothing of the losing attempt is persisted.
func (r *PgxPayrollRepository) SaveSalaryPayment(ctx context.Context, payment domain.SalaryPayment, expense domain.Expense, clearFrom, clearTo time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	// 1. Insert the expense backing the payment.
	expenseQuery := `
		INSERT INTO expenses (expense_id, owner_id, amount, category, description, date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, expenseQuery,
		expense.ExpenseID,
		expense.OwnerID,
		expense.Amount,
		string(expense.Category),
		expense.Description,
		expense.Date,
		expense.CreatedAt,
		expense.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert expense "+expense.ExpenseID, err)
	}

	// 2. Insert the salary payment referencing the expense.
	paymentQuery := `
		INSERT INTO salary_payments (payment_id, owner_id, staff_id, amount, month_year, expense_id, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, paymentQuery,
		payment.PaymentID,
		payment.OwnerID,
		payment.StaffID,
		payment.Amount,
		payment.MonthYear,
		payment.ExpenseID,
		payment.PaidAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: salary for staff %s already paid for %s", apperrors.ErrDuplicate, payment.StaffID, payment.MonthYear)
		}
		return apperrors.NewAppError(500, "failed to insert salary payment "+payment.PaymentID, err)
	}

	// 3. Clear the period's advances.
	_, err = tx.Exec(ctx,
		`DELETE FROM salary_advances WHERE owner_id = $1 AND staff_id = $2 AND date >= $3 AND date < $4;`,
		payment.OwnerID, payment.StaffID, clearFrom, clearTo,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to clear advances for staff "+payment.StaffID, err)
	}

	return r.Commit(ctx, tx)
}
