package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/apperrors"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	portsrepo "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/repositories"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/models"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for member ledger data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryWithTx {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryWithTx
var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		MemberID:      d.MemberID,
		OwnerID:       d.OwnerID,
		Type:          string(d.Type),
		Amount:        d.Amount,
		Date:          d.Date,
		Notes:         d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		MemberID:      m.MemberID,
		OwnerID:       m.OwnerID,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		Date:          m.Date,
		Notes:         m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const transactionColumns = `transaction_id, member_id, owner_id, type, amount, date, notes, created_at, last_updated_at`

func scanTransactionRow(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.MemberID,
		&m.OwnerID,
		&m.Type,
		&m.Amount,
		&m.Date,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// lockMemberBalance locks the member row and returns the current cached
// balance. The lock serializes concurrent ledger writes against the same
// member for the duration of the store transaction.
func lockMemberBalance(ctx context.Context, tx pgx.Tx, ownerID, memberID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := tx.QueryRow(ctx,
		`SELECT balance FROM members WHERE member_id = $1 AND owner_id = $2 FOR UPDATE;`,
		memberID, ownerID,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to lock member %s: %w", memberID, err)
	}
	return balance, nil
}

// applyBalanceDelta adds delta to the member's cached balance inside tx.
func applyBalanceDelta(ctx context.Context, tx pgx.Tx, ownerID, memberID string, delta decimal.Decimal) error {
	cmdTag, err := tx.Exec(ctx,
		`UPDATE members SET balance = balance + $3, last_updated_at = now() WHERE member_id = $1 AND owner_id = $2;`,
		memberID, ownerID, delta,
	)
	if err != nil {
		return fmt.Errorf("failed to update balance for member %s: %w", memberID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: member %s not found during balance update", apperrors.ErrNotFound, memberID)
	}
	return nil
}

// SaveTransaction inserts a ledger entry and applies balanceDelta to the
// member's cached balance within one store transaction.
func (r *PgxLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	if _, err := lockMemberBalance(ctx, tx, txn.OwnerID, txn.MemberID); err != nil {
		return err
	}

	m := toModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, query,
		m.TransactionID,
		m.MemberID,
		m.OwnerID,
		m.Type,
		m.Amount,
		m.Date,
		m.Notes,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}

	if !balanceDelta.IsZero() {
		if err := applyBalanceDelta(ctx, tx, txn.OwnerID, txn.MemberID, balanceDelta); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateTransaction updates amount/date/notes of a ledger entry and applies
// balanceDelta to the member within one store transaction.
func (r *PgxLedgerRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := lockMemberBalance(ctx, tx, txn.OwnerID, txn.MemberID); err != nil {
		return err
	}

	m := toModelTransaction(txn)
	query := `
		UPDATE transactions
		SET amount = $3, date = $4, notes = $5, last_updated_at = $6
		WHERE transaction_id = $1 AND owner_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.OwnerID,
		m.Amount,
		m.Date,
		m.Notes,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transaction "+m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if !balanceDelta.IsZero() {
		if err := applyBalanceDelta(ctx, tx, txn.OwnerID, txn.MemberID, balanceDelta); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes a ledger entry and applies balanceDelta to the
// member within one store transaction.
func (r *PgxLedgerRepository) DeleteTransaction(ctx context.Context, ownerID, memberID, transactionID string, balanceDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := lockMemberBalance(ctx, tx, ownerID, memberID); err != nil {
		return err
	}

	cmdTag, err := tx.Exec(ctx,
		`DELETE FROM transactions WHERE transaction_id = $1 AND owner_id = $2;`,
		transactionID, ownerID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if !balanceDelta.IsZero() {
		if err := applyBalanceDelta(ctx, tx, ownerID, memberID, balanceDelta); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a ledger entry by its ID, scoped to the owner.
func (r *PgxLedgerRepository) FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND owner_id = $2;
	`
	m, err := scanTransactionRow(r.Pool.QueryRow(ctx, query, transactionID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	domainTxn := toDomainTransaction(m)
	return &domainTxn, nil
}

// ListTransactionsByMember retrieves a page of the member's ledger entries
// ordered by date descending, using token-based pagination.
func (r *PgxLedgerRepository) ListTransactionsByMember(ctx context.Context, ownerID, memberID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []interface{}{memberID, ownerID}
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE member_id = $1 AND owner_id = $2`

	if nextToken != nil && *nextToken != "" {
		date, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (date, created_at) < ($3, $4)`
		args = append(args, date, createdAt)
	}

	query += fmt.Sprintf(` ORDER BY date DESC, created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for member %s: %w", memberID, err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransactionRow(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, toDomainTransaction(m))
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	var token *string
	if len(transactions) > limit {
		transactions = transactions[:limit]
		last := transactions[len(transactions)-1]
		t := pagination.EncodeToken(last.Date, last.CreatedAt)
		token = &t
	}

	return transactions, token, nil
}

// SumPaymentsByMember totals the amounts of the member's payment-type entries.
func (r *PgxLedgerRepository) SumPaymentsByMember(ctx context.Context, ownerID, memberID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE member_id = $1 AND owner_id = $2 AND type = $3;
	`
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, memberID, ownerID, string(domain.Payment)).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments for member %s: %w", memberID, err)
	}
	return total, nil
}
