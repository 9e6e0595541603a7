package repositories

import (
	"context"
	"time"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense by ID, scoped to the owner.
	FindExpenseByID(ctx context.Context, ownerID, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves a paginated list of expenses ordered by date
	// descending, optionally filtered by date range and category.
	ListExpenses(ctx context.Context, ownerID string, from, to *time.Time, category *domain.ExpenseCategory, limit int, nextToken *string) ([]domain.Expense, *string, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, ownerID, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
