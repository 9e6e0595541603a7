package repositories

import (
	"context"
	"time"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MemberReader defines read operations for member data
type MemberReader interface {
	// FindMemberByID retrieves a member by its unique identifier, scoped to the owner.
	FindMemberByID(ctx context.Context, ownerID, memberID string) (*domain.Member, error)

	// ListMembers retrieves a paginated list of members for an owner using token-based pagination.
	// It returns the members, a token for the next page, and an error.
	ListMembers(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Member, *string, error)
}

// MemberWriter defines write operations for member data
type MemberWriter interface {
	// SaveMember persists a new member.
	SaveMember(ctx context.Context, member domain.Member) error

	// UpdateMember updates an existing member's details (not the cached balance).
	UpdateMember(ctx context.Context, member domain.Member) error

	// SetMemberBalance overwrites the cached balance; used by reconciliation only.
	SetMemberBalance(ctx context.Context, ownerID, memberID string, balance decimal.Decimal, now time.Time) error

	// DeleteMember removes a member; the store cascades the member's transactions.
	DeleteMember(ctx context.Context, ownerID, memberID string) error
}

// MemberRepositoryFacade combines all member-related repository interfaces
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}
