package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/apperrors"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	portssvc "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/services"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/services"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StaffRepository ---
type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) SaveStaff(ctx context.Context, staff domain.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) FindStaffByID(ctx context.Context, ownerID, staffID string) (*domain.Staff, error) {
	args := m.Called(ctx, ownerID, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) ListStaff(ctx context.Context, ownerID string, includeInactive bool, limit, offset int) ([]domain.Staff, error) {
	args := m.Called(ctx, ownerID, includeInactive, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) UpdateStaff(ctx context.Context, staff domain.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) SetStaffActive(ctx context.Context, ownerID, staffID string, active bool, now time.Time) error {
	args := m.Called(ctx, ownerID, staffID, active, now)
	return args.Error(0)
}

func (m *MockStaffRepository) DeleteStaff(ctx context.Context, ownerID, staffID string) error {
	args := m.Called(ctx, ownerID, staffID)
	return args.Error(0)
}

// --- Mock PayrollRepository ---
type MockPayrollRepository struct {
	mock.Mock
}

func (m *MockPayrollRepository) UpsertAttendance(ctx context.Context, record domain.AttendanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPayrollRepository) ListAttendanceByRange(ctx context.Context, ownerID, staffID string, from, to time.Time) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, ownerID, staffID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

func (m *MockPayrollRepository) SaveAdvance(ctx context.Context, advance domain.SalaryAdvance) error {
	args := m.Called(ctx, advance)
	return args.Error(0)
}

func (m *MockPayrollRepository) FindAdvanceByID(ctx context.Context, ownerID, advanceID string) (*domain.SalaryAdvance, error) {
	args := m.Called(ctx, ownerID, advanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryAdvance), args.Error(1)
}

func (m *MockPayrollRepository) ListAdvancesByRange(ctx context.Context, ownerID, staffID string, from, to time.Time) ([]domain.SalaryAdvance, error) {
	args := m.Called(ctx, ownerID, staffID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryAdvance), args.Error(1)
}

func (m *MockPayrollRepository) DeleteAdvance(ctx context.Context, ownerID, advanceID string) error {
	args := m.Called(ctx, ownerID, advanceID)
	return args.Error(0)
}

func (m *MockPayrollRepository) FindSalaryPayment(ctx context.Context, ownerID, staffID, monthYear string) (*domain.SalaryPayment, error) {
	args := m.Called(ctx, ownerID, staffID, monthYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryPayment), args.Error(1)
}

func (m *MockPayrollRepository) ListSalaryPayments(ctx context.Context, ownerID, staffID string) ([]domain.SalaryPayment, error) {
	args := m.Called(ctx, ownerID, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryPayment), args.Error(1)
}

func (m *MockPayrollRepository) SaveSalaryPayment(ctx context.Context, payment domain.SalaryPayment, expense domain.Expense, clearFrom, clearTo time.Time) error {
	args := m.Called(ctx, payment, expense, clearFrom, clearTo)
	return args.Error(0)
}

func (m *MockPayrollRepository) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockPayrollRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return nil
}
func (m *MockPayrollRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return nil
}

// --- Test Suite ---
type PayrollServiceTestSuite struct {
	suite.Suite
	mockPayrollRepo *MockPayrollRepository
	mockStaffRepo   *MockStaffRepository
	service         portssvc.PayrollSvcFacade
	ownerID         string
	staffID         string
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.mockPayrollRepo = new(MockPayrollRepository)
	suite.mockStaffRepo = new(MockStaffRepository)
	suite.service = services.NewPayrollService(suite.mockPayrollRepo, suite.mockStaffRepo)
	suite.ownerID = uuid.NewString()
	suite.staffID = uuid.NewString()
}

func (suite *PayrollServiceTestSuite) staff(active bool) *domain.Staff {
	return &domain.Staff{
		StaffID:    suite.staffID,
		OwnerID:    suite.ownerID,
		Name:       "Ravi",
		Role:       domain.RoleCook,
		BaseSalary: decimal.NewFromInt(3000),
		IsActive:   active,
	}
}

// --- Test Cases ---

func (suite *PayrollServiceTestSuite) TestSetAttendance_NormalizesDateToDay() {
	ctx := context.Background()
	req := dto.SetAttendanceRequest{
		Date:   time.Date(2025, 6, 15, 14, 45, 30, 0, time.UTC),
		Status: domain.Absent,
	}

	suite.mockStaffRepo.On("FindStaffByID", ctx, suite.ownerID, suite.staffID).Return(suite.staff(true), nil).Once()
	suite.mockPayrollRepo.On("UpsertAttendance", ctx, mock.MatchedBy(func(r domain.AttendanceRecord) bool {
		return r.StaffID == suite.staffID &&
			r.Status == domain.Absent &&
			r.Date.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()

	record, err := suite.service.SetAttendance(ctx, suite.ownerID, suite.staffID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Absent, record.Status)
	suite.mockPayrollRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestSetAttendance_StaffNotFound() {
	ctx := context.Background()
	req := dto.SetAttendanceRequest{Date: time.Now(), Status: domain.Present}

	suite.mockStaffRepo.On("FindStaffByID", ctx, suite.ownerID, suite.staffID).Return(nil, apperrors.ErrNotFound).Once()

	record, err := suite.service.SetAttendance(ctx, suite.ownerID, suite.staffID, req)

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PayrollServiceTestSuite) TestRecordAdvance_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.RecordAdvanceRequest{Amount: decimal.NewFromInt(-50)}

	advance, err := suite.service.RecordAdvance(ctx, suite.ownerID, suite.staffID, req)

	suite.Require().Error(err)
	suite.Nil(advance)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPayrollRepo.AssertNotCalled(suite.T(), "SaveAdvance", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestListMonthAdvances_InvalidPeriod() {
	ctx := context.Background()

	suite.mockStaffRepo.On("FindStaffByID", ctx, suite.ownerID, suite.staffID).Return(suite.staff(true), nil).Once()

	advances, err := suite.service.ListMonthAdvances(ctx, suite.ownerID, suite.staffID, "June-2025")

	suite.Require().Error(err)
	suite.Nil(advances)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PayrollServiceTestSuite) TestGetPayrollBreakdown_ComputesFromRepoData() {
	ctx := context.Background()
	attendance := []domain.AttendanceRecord{
		{StaffID: suite.staffID, Status: domain.Absent},
		{StaffID: suite.staffID, Status: domain.Absent},
		{StaffID: suite.staffID, Status: domain.HalfDay},
	}
	advances := []domain.SalaryAdvance{
		{StaffID: suite.staffID, Amount: decimal.NewFromInt(200)},
	}

	suite.mockStaffRepo.On("FindStaffByID", ctx, suite.ownerID, suite.staffID).Return(suite.staff(true), nil).Once()
	suite.mockPayrollRepo.On("ListAttendanceByRange", ctx, suite.ownerID, suite.staffID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(attendance, nil).Once()
	suite.mockPayrollRepo.On("ListAdvancesByRange", ctx, suite.ownerID, suite.staffID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(advances, nil).Once()

	resp, err := suite.service.GetPayrollBreakdown(ctx, suite.ownerID, suite.staffID)

	suite.Require().NoError(err)
	suite.Equal(suite.staffID, resp.StaffID)
	suite.Equal(2, resp.AbsentDays)
	suite.Equal(1, resp.HalfDays)
	suite.True(resp.Deduction.Equal(decimal.NewFromInt(250)))
	suite.True(resp.NetPayable.Equal(decimal.NewFromInt(2550)))
}

func (suite *PayrollServiceTestSuite) TestIsSalaryPaid_NoPayment() {
	ctx := context.Background()

	suite.mockStaffRepo.On("FindStaffByID", ctx, suite.ownerID, suite.staffID).Return(suite.staff(true), nil).Once()
	suite.mockPayrollRepo.On("FindSalaryPayment", ctx, suite.ownerID, suite.staffID, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound).Once()

	status, err := suite.service.IsSalaryPaid(ctx, suite.ownerID, suite.staffID)

	suite.Require().NoError(err)
	suite.False(status.Paid)
	suite.Equal(suite.staffID, status.StaffID)
}

func (suite *PayrollServiceTestSuite) TestIsSalaryPaid_PaymentExists() {
	ctx := context.Background()
	payment := &domain.SalaryPayment{PaymentID: uuid.NewString(), StaffID: suite.staffID}

	suite.mockStaffRepo.On("FindStaffByID", ctx, suite.ownerID, suite.staffID).Return(suite.staff(true), nil).Once()
	suite.mockPayrollRepo.On("FindSalaryPayment", ctx, suite.ownerID, suite.staffID, mock.AnythingOfType("string")).Return(payment, nil).Once()

	status, err := suite.service.IsSalaryPaid(ctx, suite.ownerID, suite.staffID)

	suite.Require().NoError(err)
	suite.True(status.Paid)
}

func (suite *PayrollServiceTestSuite) TestPaySalary_WritesExpenseAndClearsAdvances() {
	ctx := context.Background()
	amount := decimal.NewFromInt(2550)
	req := dto.PaySalaryRequest{Amount: amount}

	suite.mockStaffRepo.On("FindStaffByID", ctx, suite.ownerID, suite.staffID).Return(suite.staff(true), nil).Once()
	suite.mockPayrollRepo.On("SaveSalaryPayment", ctx,
		mock.MatchedBy(func(p domain.SalaryPayment) bool {
			return p.StaffID == suite.staffID && p.Amount.Equal(amount) && p.ExpenseID != "" && p.MonthYear != ""
		}),
		mock.MatchedBy(func(e domain.Expense) bool {
			return e.Category == domain.CategorySalaries && e.Amount.Equal(amount)
		}),
		mock.AnythingOfType("time.Time"),
		mock.AnythingOfType("time.Time"),
	).Return(nil).Once()

	payment, err := suite.service.PaySalary(ctx, suite.ownerID, suite.staffID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.True(payment.Amount.Equal(amount))
	suite.NotEmpty(payment.ExpenseID)
	suite.mockPayrollRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestPaySalary_AlreadyPaid() {
	ctx := context.Background()
	req := dto.PaySalaryRequest{Amount: decimal.NewFromInt(2550)}

	suite.mockStaffRepo.On("FindStaffByID", ctx, suite.ownerID, suite.staffID).Return(suite.staff(true), nil).Once()
	duplicateErr := fmt.Errorf("%w: salary already exists", apperrors.ErrDuplicate)
	suite.mockPayrollRepo.On("SaveSalaryPayment", ctx, mock.AnythingOfType("domain.SalaryPayment"), mock.AnythingOfType("domain.Expense"), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(duplicateErr).Once()

	payment, err := suite.service.PaySalary(ctx, suite.ownerID, suite.staffID, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, services.ErrSalaryAlreadyPaid)
}

func (suite *PayrollServiceTestSuite) TestPaySalary_InactiveStaff() {
	ctx := context.Background()
	req := dto.PaySalaryRequest{Amount: decimal.NewFromInt(2550)}

	suite.mockStaffRepo.On("FindStaffByID", ctx, suite.ownerID, suite.staffID).Return(suite.staff(false), nil).Once()

	payment, err := suite.service.PaySalary(ctx, suite.ownerID, suite.staffID, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, services.ErrStaffInactive)
	suite.mockPayrollRepo.AssertNotCalled(suite.T(), "SaveSalaryPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestPaySalary_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.PaySalaryRequest{Amount: decimal.Zero}

	payment, err := suite.service.PaySalary(ctx, suite.ownerID, suite.staffID, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PayrollServiceTestSuite) TestListSalaryPayments_Success() {
	ctx := context.Background()
	payments := []domain.SalaryPayment{
		{PaymentID: uuid.NewString(), StaffID: suite.staffID, MonthYear: "2025-06"},
		{PaymentID: uuid.NewString(), StaffID: suite.staffID, MonthYear: "2025-05"},
	}

	suite.mockStaffRepo.On("FindStaffByID", ctx, suite.ownerID, suite.staffID).Return(suite.staff(true), nil).Once()
	suite.mockPayrollRepo.On("ListSalaryPayments", ctx, suite.ownerID, suite.staffID).Return(payments, nil).Once()

	got, err := suite.service.ListSalaryPayments(ctx, suite.ownerID, suite.staffID)

	suite.Require().NoError(err)
	suite.Len(got, 2)
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
