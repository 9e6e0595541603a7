package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/apperrors"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	portsrepo "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/repositories"
	portssvc "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/services"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/dto"
	"github.com/shopspring/decimal"
)

// expenseService provides expense tracking operations.
type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

// Ensure expenseService implements the portssvc.ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense records an operating expense.
func (s *expenseService) CreateExpense(ctx context.Context, ownerID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		OwnerID:     ownerID,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense in service: %w", err)
	}

	return &expense, nil
}

// GetExpenseByID retrieves a single expense.
func (s *expenseService) GetExpenseByID(ctx context.Context, ownerID, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, ownerID, expenseID)
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses retrieves a page of expenses, optionally filtered by date
// range and category.
func (s *expenseService) ListExpenses(ctx context.Context, ownerID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error) {
	expenses, nextToken, err := s.expenseRepo.ListExpenses(ctx, ownerID, params.From, params.To, params.Category, params.Limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses in service: %w", err)
	}

	resp := dto.ListExpensesResponse{
		Expenses:  make([]dto.ExpenseResponse, 0, len(expenses)),
		NextToken: nextToken,
	}
	for i := range expenses {
		resp.Expenses = append(resp.Expenses, dto.ToExpenseResponse(&expenses[i]))
	}
	return &resp, nil
}

// DeleteExpense removes an expense.
func (s *expenseService) DeleteExpense(ctx context.Context, ownerID, expenseID string) error {
	return s.expenseRepo.DeleteExpense(ctx, ownerID, expenseID)
}
