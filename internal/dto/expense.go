package dto

import (
	"time"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Category    domain.ExpenseCategory `json:"category" binding:"required,oneof=GROCERIES RENT UTILITIES SALARIES OTHER"`
	Description string                 `json:"description"`
	Date        *time.Time             `json:"date"` // Defaults to now
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string                 `json:"expenseID"`
	Amount      decimal.Decimal        `json:"amount"`
	Category    domain.ExpenseCategory `json:"category"`
	Description string                 `json:"description"`
	Date        time.Time              `json:"date"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// ListExpensesParams holds parameters for listing expenses.
type ListExpensesParams struct {
	From      *time.Time              `form:"from" time_format:"2006-01-02"`
	To        *time.Time              `form:"to" time_format:"2006-01-02"`
	Category  *domain.ExpenseCategory `form:"category"`
	Limit     int                     `form:"limit"`
	NextToken *string                 `form:"nextToken"`
}

// ListExpensesResponse is a page of expenses, newest date first.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}
