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
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	pool *pgxpool.Pool
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{pool: pool}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func toModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		OwnerID:     d.OwnerID,
		Amount:      d.Amount,
		Category:    string(d.Category),
		Description: d.Description,
		Date:        d.Date,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		OwnerID:     m.OwnerID,
		Amount:      m.Amount,
		Category:    domain.ExpenseCategory(m.Category),
		Description: m.Description,
		Date:        m.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const expenseColumns = `expense_id, owner_id, amount, category, description, date, created_at, last_updated_at`

func scanExpenseRow(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.OwnerID,
		&m.Amount,
		&m.Category,
		&m.Description,
		&m.Date,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveExpense persists a new expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := toModelExpense(expense)

	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ExpenseID,
		m.OwnerID,
		m.Amount,
		m.Category,
		m.Description,
		m.Date,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", m.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense by ID, scoped to the owner.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, ownerID, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE expense_id = $1 AND owner_id = $2;
	`
	m, err := scanExpenseRow(r.pool.QueryRow(ctx, query, expenseID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}

	domainExpense := toDomainExpense(m)
	return &domainExpense, nil
}

// ListExpenses retrieves a page of expenses ordered by date descending,
// optionally filtered by date range and category.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, ownerID string, from, to *time.Time, category *domain.ExpenseCategory, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []interface{}{ownerID}
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE owner_id = $1`

	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(` AND date >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(` AND date < $%d`, len(args))
	}
	if category != nil {
		args = append(args, string(*category))
		query += fmt.Sprintf(` AND category = $%d`, len(args))
	}

	if nextToken != nil && *nextToken != "" {
		date, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, date, createdAt)
		query += fmt.Sprintf(` AND (date, created_at) < ($%d, $%d)`, len(args)-1, len(args))
	}

	query += fmt.Sprintf(` ORDER BY date DESC, created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query expenses for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		m, err := scanExpenseRow(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, toDomainExpense(m))
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}

	var token *string
	if len(expenses) > limit {
		expenses = expenses[:limit]
		last := expenses[len(expenses)-1]
		t := pagination.EncodeToken(last.Date, last.CreatedAt)
		token = &t
	}

	return expenses, token, nil
}

// DeleteExpense removes an expense. Expenses referenced by a salary payment
// are protected by the store and cannot be deleted directly.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, ownerID, expenseID string) error {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM expenses WHERE expense_id = $1 AND owner_id = $2;`,
		expenseID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
