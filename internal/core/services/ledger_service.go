package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/apperrors"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	portsrepo "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/repositories"
	portssvc "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/services"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/dto"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/middleware"
	"github.com/shopspring/decimal"
)

// ledgerService provides member ledger operations.
//
// The cached balance convention: a positive balance is what the member owes.
// Recording a payment subtracts the amount from it, amending a payment applies
// oldAmount minus newAmount, deleting a payment adds the amount back. Charge
// and adjustment entries never move the cached balance; they exist for the
// statement view and manual corrections.
type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepositoryWithTx
	memberRepo portsrepo.MemberRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryWithTx, memberRepo portsrepo.MemberRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo: ledgerRepo,
		memberRepo: memberRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// balanceDeltaForCreate returns how the cached balance moves when the entry
// is recorded.
func balanceDeltaForCreate(txnType domain.TransactionType, amount decimal.Decimal) decimal.Decimal {
	if txnType == domain.Payment {
		return amount.Neg()
	}
	return decimal.Zero
}

// RecordTransaction validates and persists a new ledger entry. The entry and
// any balance movement are written in one store transaction.
func (s *ledgerService) RecordTransaction(ctx context.Context, ownerID, memberID string, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
	}

	// The member must exist before any ledger row is written for it.
	if _, err := s.memberRepo.FindMemberByID(ctx, ownerID, memberID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		MemberID:      memberID,
		OwnerID:       ownerID,
		Type:          req.Type,
		Amount:        req.Amount,
		Date:          date,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	delta := balanceDeltaForCreate(txn.Type, txn.Amount)
	if err := s.ledgerRepo.SaveTransaction(ctx, txn, delta); err != nil {
		logger.Error("failed to record transaction",
			slog.String("member_id", memberID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to record transaction in service: %w", err)
	}

	return &txn, nil
}

// EditTransaction amends the amount, date or notes of an existing entry. The
// type is immutable. For payment entries a changed amount moves the cached
// balance by oldAmount minus newAmount, in the same store transaction as the
// row update.
func (s *ledgerService) EditTransaction(ctx context.Context, ownerID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.ledgerRepo.FindTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		return nil, err
	}

	oldAmount := txn.Amount
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		txn.Date = req.Date.UTC()
	}
	if req.Notes != nil {
		txn.Notes = *req.Notes
	}
	txn.LastUpdatedAt = time.Now().UTC()

	delta := decimal.Zero
	if txn.Type == domain.Payment {
		delta = oldAmount.Sub(txn.Amount)
	}

	if err := s.ledgerRepo.UpdateTransaction(ctx, *txn, delta); err != nil {
		return nil, fmt.Errorf("failed to edit transaction in service: %w", err)
	}

	return txn, nil
}

// DeleteTransaction removes a ledger entry. Deleting a payment adds its
// amount back to the cached balance; deleting a charge or adjustment leaves
// the balance untouched.
func (s *ledgerService) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.ledgerRepo.FindTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		return err
	}

	delta := decimal.Zero
	if txn.Type == domain.Payment {
		delta = txn.Amount
	}

	if err := s.ledgerRepo.DeleteTransaction(ctx, ownerID, txn.MemberID, transactionID, delta); err != nil {
		return err
	}

	logger.Info("transaction deleted",
		slog.String("transaction_id", transactionID),
		slog.String("member_id", txn.MemberID),
		slog.String("type", string(txn.Type)),
	)
	return nil
}

// ListMemberTransactions returns one page of the member's ledger, newest date
// first.
func (s *ledgerService) ListMemberTransactions(ctx context.Context, ownerID, memberID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if _, err := s.memberRepo.FindMemberByID(ctx, ownerID, memberID); err != nil {
		return nil, err
	}

	transactions, nextToken, err := s.ledgerRepo.ListTransactionsByMember(ctx, ownerID, memberID, params.Limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}

	resp := dto.ListTransactionsResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(transactions)),
		NextToken:    nextToken,
	}
	for i := range transactions {
		resp.Transactions = append(resp.Transactions, dto.ToTransactionResponse(&transactions[i]))
	}
	return &resp, nil
}

// ReconcileMemberBalance recomputes the cached balance from the payment
// history and overwrites the stored value. Since only payments move the
// cache, the reconciled value is the opening balance minus the sum of all
// payment amounts.
func (s *ledgerService) ReconcileMemberBalance(ctx context.Context, ownerID, memberID string) (*dto.ReconcileBalanceResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	member, err := s.memberRepo.FindMemberByID(ctx, ownerID, memberID)
	if err != nil {
		return nil, err
	}

	paymentsTotal, err := s.ledgerRepo.SumPaymentsByMember(ctx, ownerID, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments during reconciliation: %w", err)
	}

	reconciled := member.OpeningBalance.Sub(paymentsTotal)
	drift := reconciled.Sub(member.Balance)

	if err := s.memberRepo.SetMemberBalance(ctx, ownerID, memberID, reconciled, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("failed to store reconciled balance: %w", err)
	}

	if !drift.IsZero() {
		logger.Warn("balance drift corrected during reconciliation",
			slog.String("member_id", memberID),
			slog.String("drift", drift.String()),
		)
	}

	return &dto.ReconcileBalanceResponse{
		MemberID:        memberID,
		PreviousBalance: member.Balance,
		Balance:         reconciled,
		Drift:           drift,
	}, nil
}
