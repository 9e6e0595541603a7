package repositories

import (
	"context"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader defines read operations for ledger transaction data
type LedgerReader interface {
	// FindTransactionByID retrieves a specific ledger entry, scoped to the owner.
	FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByMember retrieves a paginated list of a member's ledger
	// entries ordered by date descending, using token-based pagination.
	ListTransactionsByMember(ctx context.Context, ownerID, memberID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// SumPaymentsByMember totals the amounts of all payment-type entries for a
	// member; used by balance reconciliation.
	SumPaymentsByMember(ctx context.Context, ownerID, memberID string) (decimal.Decimal, error)
}

// LedgerWriter defines write operations for ledger transaction data.
//
// Each write takes the signed balance delta the entry implies for the
// member's cached balance. The repository applies the entry and the delta in
// one store transaction with the member row locked, so the ledger and the
// cached balance cannot diverge on a partial failure. A zero delta leaves
// the balance untouched (charge/adjustment entries).
type LedgerWriter interface {
	// SaveTransaction inserts a ledger entry and applies balanceDelta to the member.
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error

	// UpdateTransaction updates amount/date/notes of an entry and applies balanceDelta.
	UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error

	// DeleteTransaction removes an entry and applies balanceDelta to the member.
	DeleteTransaction(ctx context.Context, ownerID, memberID, transactionID string, balanceDelta decimal.Decimal) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction capabilities
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
