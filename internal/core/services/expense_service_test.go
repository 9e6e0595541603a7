package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/apperrors"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	portssvc "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/services"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/services"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, ownerID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, ownerID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, ownerID string, from, to *time.Time, category *domain.ExpenseCategory, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	args := m.Called(ctx, ownerID, from, to, category, limit, nextToken)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return expenses, token, args.Error(2)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, ownerID, expenseID string) error {
	args := m.Called(ctx, ownerID, expenseID)
	return args.Error(0)
}

// --- Test Suite ---
type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	service         portssvc.ExpenseSvcFacade
	ownerID         string
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo)
	suite.ownerID = uuid.NewString()
}

// --- Test Cases ---

func (suite *ExpenseServiceTestSuite) TestCreateExpense_DateDefaultsToNow() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Amount:   decimal.NewFromInt(1200),
		Category: domain.CategoryGroceries,
	}

	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.OwnerID == suite.ownerID &&
			e.Category == domain.CategoryGroceries &&
			!e.Date.IsZero()
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.WithinDuration(time.Now().UTC(), expense.Date, 5*time.Second)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Amount:   decimal.Zero,
		Category: domain.CategoryRent,
	}

	expense, err := suite.service.CreateExpense(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense")
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_PassesFiltersThrough() {
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	category := domain.CategoryUtilities
	params := dto.ListExpensesParams{From: &from, Category: &category, Limit: 10}
	rows := []domain.Expense{
		{ExpenseID: uuid.NewString(), OwnerID: suite.ownerID, Amount: decimal.NewFromInt(400), Category: category, Date: from},
	}
	token := "next"

	suite.mockExpenseRepo.On("ListExpenses", ctx, suite.ownerID, &from, (*time.Time)(nil), &category, 10, (*string)(nil)).Return(rows, &token, nil).Once()

	resp, err := suite.service.ListExpenses(ctx, suite.ownerID, params)

	suite.Require().NoError(err)
	suite.Len(resp.Expenses, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next", *resp.NextToken)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestGetExpenseByID_NotFound() {
	ctx := context.Background()
	expenseID := uuid.NewString()

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, suite.ownerID, expenseID).Return(nil, apperrors.ErrNotFound).Once()

	expense, err := suite.service.GetExpenseByID(ctx, suite.ownerID, expenseID)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_Success() {
	ctx := context.Background()
	expenseID := uuid.NewString()

	suite.mockExpenseRepo.On("DeleteExpense", ctx, suite.ownerID, expenseID).Return(nil).Once()

	err := suite.service.DeleteExpense(ctx, suite.ownerID, expenseID)

	suite.Require().NoError(err)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
