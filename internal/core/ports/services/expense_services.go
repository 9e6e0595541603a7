package services

import (
	"context"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/dto"
)

// ExpenseSvcFacade defines the expense tracking operations.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, ownerID string, req dto.CreateExpenseRequest) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, ownerID, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, ownerID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error)
	DeleteExpense(ctx context.Context, ownerID, expenseID string) error
}
