package services

import (
	"context"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/dto"
)

// LedgerSvcFacade defines the member ledger operations.
//
// Payment-type entries move the member's cached balance (recording a payment
// subtracts, amending applies old-new, deleting adds back); charge and
// adjustment entries are recorded without touching it.
type LedgerSvcFacade interface {
	RecordTransaction(ctx context.Context, ownerID, memberID string, req dto.RecordTransactionRequest) (*domain.Transaction, error)
	EditTransaction(ctx context.Context, ownerID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, ownerID, transactionID string) error

	// ListMemberTransactions returns one page of the member's ledger ordered by
	// date descending; the returned token restarts the sequence where it ended.
	ListMemberTransactions(ctx context.Context, ownerID, memberID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// ReconcileMemberBalance recomputes the cached balance from the payment
	// history and overwrites the stored value, reporting any drift.
	ReconcileMemberBalance(ctx context.Context, ownerID, memberID string) (*dto.ReconcileBalanceResponse, error)
}
