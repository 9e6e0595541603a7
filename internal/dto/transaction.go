package dto

import (
	"time"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest defines the data needed to record a ledger entry.
type RecordTransactionRequest struct {
	Type   domain.TransactionType `json:"type" binding:"required,oneof=PAYMENT CHARGE ADJUSTMENT"`
	Amount decimal.Decimal        `json:"amount" binding:"required"`
	Date   *time.Time             `json:"date"` // Defaults to now
	Notes  string                 `json:"notes"`
}

// UpdateTransactionRequest defines the fields of a ledger entry that may be
// amended. Pointers distinguish "not provided" from zero values.
type UpdateTransactionRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Date   *time.Time       `json:"date"`
	Notes  *string          `json:"notes"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	MemberID      string                 `json:"memberID"`
	Type          domain.TransactionType `json:"type"`
	Amount        decimal.Decimal        `json:"amount"`
	Date          time.Time              `json:"date"`
	Notes         string                 `json:"notes"`
	CreatedAt     time.Time              `json:"createdAt"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
}

// ListTransactionsParams holds parameters for listing a member's ledger entries.
type ListTransactionsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is a page of ledger entries, newest date first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		MemberID:      t.MemberID,
		Type:          t.Type,
		Amount:        t.Amount,
		Date:          t.Date,
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}
