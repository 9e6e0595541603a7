package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/apperrors"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	portsrepo "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/repositories"
	portssvc "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/services"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/dto"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/middleware"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/utils/payroll"
	"github.com/shopspring/decimal"
)

var (
	// ErrSalaryAlreadyPaid is returned when a salary payment already exists
	// for the staff member and the current payroll period.
	ErrSalaryAlreadyPaid = errors.New("salary already paid for this month")

	// ErrStaffInactive is returned when a disbursement is attempted for a
	// staff member who has left.
	ErrStaffInactive = errors.New("staff member is inactive")
)

// payrollService provides attendance, advance and salary disbursement
// operations. The payroll period is always the current calendar month.
type payrollService struct {
	payrollRepo portsrepo.PayrollRepositoryWithTx
	staffRepo   portsrepo.StaffRepositoryFacade
}

// NewPayrollService creates a new PayrollService.
func NewPayrollService(payrollRepo portsrepo.PayrollRepositoryWithTx, staffRepo portsrepo.StaffRepositoryFacade) portssvc.PayrollSvcFacade {
	return &payrollService{
		payrollRepo: payrollRepo,
		staffRepo:   staffRepo,
	}
}

// Ensure payrollService implements the portssvc.PayrollSvcFacade interface
var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

// monthBoundsFromKey parses a "yyyy-MM" period key into its [start, end)
// bounds in UTC.
func monthBoundsFromKey(monthYear string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01", monthYear, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: monthYear must be in yyyy-MM format", apperrors.ErrValidation)
	}
	from, to := payroll.MonthBounds(t)
	return from, to, nil
}

// SetAttendance upserts the attendance status for (staff, date). Marking the
// same day twice overwrites the earlier status.
func (s *payrollService) SetAttendance(ctx context.Context, ownerID, staffID string, req dto.SetAttendanceRequest) (*domain.AttendanceRecord, error) {
	if _, err := s.staffRepo.FindStaffByID(ctx, ownerID, staffID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	day := req.Date.UTC()
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	record := domain.AttendanceRecord{
		AttendanceID: uuid.NewString(),
		OwnerID:      ownerID,
		StaffID:      staffID,
		Date:         day,
		Status:       req.Status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.payrollRepo.UpsertAttendance(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to set attendance in service: %w", err)
	}

	return &record, nil
}

// ListMonthAttendance returns the staff member's attendance rows for the
// given "yyyy-MM" period, oldest first.
func (s *payrollService) ListMonthAttendance(ctx context.Context, ownerID, staffID, monthYear string) ([]domain.AttendanceRecord, error) {
	if _, err := s.staffRepo.FindStaffByID(ctx, ownerID, staffID); err != nil {
		return nil, err
	}

	from, to, err := monthBoundsFromKey(monthYear)
	if err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListAttendanceByRange(ctx, ownerID, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance in service: %w", err)
	}
	return records, nil
}

// RecordAdvance persists a new salary advance against the staff member.
func (s *payrollService) RecordAdvance(ctx context.Context, ownerID, staffID string, req dto.RecordAdvanceRequest) (*domain.SalaryAdvance, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: advance amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.staffRepo.FindStaffByID(ctx, ownerID, staffID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}

	advance := domain.SalaryAdvance{
		AdvanceID: uuid.NewString(),
		OwnerID:   ownerID,
		StaffID:   staffID,
		Amount:    req.Amount,
		Date:      date,
		Notes:     req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.payrollRepo.SaveAdvance(ctx, advance); err != nil {
		return nil, fmt.Errorf("failed to record advance in service: %w", err)
	}

	return &advance, nil
}

// ListMonthAdvances returns the staff member's advances for the given
// "yyyy-MM" period, oldest first.
func (s *payrollService) ListMonthAdvances(ctx context.Context, ownerID, staffID, monthYear string) ([]domain.SalaryAdvance, error) {
	if _, err := s.staffRepo.FindStaffByID(ctx, ownerID, staffID); err != nil {
		return nil, err
	}

	from, to, err := monthBoundsFromKey(monthYear)
	if err != nil {
		return nil, err
	}

	advances, err := s.payrollRepo.ListAdvancesByRange(ctx, ownerID, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances in service: %w", err)
	}
	return advances, nil
}

// DeleteAdvance removes a single advance.
func (s *payrollService) DeleteAdvance(ctx context.Context, ownerID, advanceID string) error {
	return s.payrollRepo.DeleteAdvance(ctx, ownerID, advanceID)
}

// GetPayrollBreakdown computes the current month's payroll statement from the
// staff record, attendance and advances. Nothing is persisted.
func (s *payrollService) GetPayrollBreakdown(ctx context.Context, ownerID, staffID string) (*dto.PayrollBreakdownResponse, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, ownerID, staffID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	from, to := payroll.MonthBounds(now)

	attendance, err := s.payrollRepo.ListAttendanceByRange(ctx, ownerID, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance for breakdown: %w", err)
	}
	advances, err := s.payrollRepo.ListAdvancesByRange(ctx, ownerID, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load advances for breakdown: %w", err)
	}

	breakdown := payroll.CalculatePayroll(*staff, attendance, advances)
	resp := dto.ToPayrollBreakdownResponse(staffID, payroll.MonthYear(now), breakdown)
	return &resp, nil
}

// IsSalaryPaid reports whether a salary payment exists for the current month.
func (s *payrollService) IsSalaryPaid(ctx context.Context, ownerID, staffID string) (*dto.SalaryStatusResponse, error) {
	if _, err := s.staffRepo.FindStaffByID(ctx, ownerID, staffID); err != nil {
		return nil, err
	}

	monthYear := payroll.MonthYear(time.Now().UTC())
	_, err := s.payrollRepo.FindSalaryPayment(ctx, ownerID, staffID, monthYear)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &dto.SalaryStatusResponse{StaffID: staffID, MonthYear: monthYear, Paid: false}, nil
		}
		return nil, fmt.Errorf("failed to check salary status in service: %w", err)
	}

	return &dto.SalaryStatusResponse{StaffID: staffID, MonthYear: monthYear, Paid: true}, nil
}

// PaySalary disburses the current month's salary. One expense row, one salary
// payment row and the clearing of the month's advances are written in a
// single store transaction; the unique index on (owner, staff, month_year)
// makes a concurrent double submit fail with ErrSalaryAlreadyPaid on one side
// without persisting anything.
func (s *payrollService) PaySalary(ctx context.Context, ownerID, staffID string, req dto.PaySalaryRequest) (*domain.SalaryPayment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	staff, err := s.staffRepo.FindStaffByID(ctx, ownerID, staffID)
	if err != nil {
		return nil, err
	}
	if !staff.IsActive {
		return nil, ErrStaffInactive
	}

	now := time.Now().UTC()
	monthYear := payroll.MonthYear(now)
	clearFrom, clearTo := payroll.MonthBounds(now)

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		OwnerID:     ownerID,
		Amount:      req.Amount,
		Category:    domain.CategorySalaries,
		Description: fmt.Sprintf("Salary payment - %s (%s)", staff.Name, monthYear),
		Date:        now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	payment := domain.SalaryPayment{
		PaymentID: uuid.NewString(),
		OwnerID:   ownerID,
		StaffID:   staffID,
		Amount:    req.Amount,
		MonthYear: monthYear,
		ExpenseID: expense.ExpenseID,
		PaidAt:    now,
	}

	if err := s.payrollRepo.SaveSalaryPayment(ctx, payment, expense, clearFrom, clearTo); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: staff %s, period %s", ErrSalaryAlreadyPaid, staffID, monthYear)
		}
		logger.Error("failed to pay salary",
			slog.String("staff_id", staffID),
			slog.String("month_year", monthYear),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to pay salary in service: %w", err)
	}

	logger.Info("salary paid",
		slog.String("staff_id", staffID),
		slog.String("month_year", monthYear),
		slog.String("amount", req.Amount.String()),
	)
	return &payment, nil
}

// ListSalaryPayments returns the staff member's payment history, newest first.
func (s *payrollService) ListSalaryPayments(ctx context.Context, ownerID, staffID string) ([]domain.SalaryPayment, error) {
	if _, err := s.staffRepo.FindStaffByID(ctx, ownerID, staffID); err != nil {
		return nil, err
	}

	payments, err := s.payrollRepo.ListSalaryPayments(ctx, ownerID, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary payments in service: %w", err)
	}
	return payments, nil
}
