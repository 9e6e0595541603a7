package services

import (
	"context"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/dto"
)

// MemberSvcFacade defines the member management operations.
// Every call is scoped to the owner supplied by the tenant context.
type MemberSvcFacade interface {
	CreateMember(ctx context.Context, ownerID string, req dto.CreateMemberRequest) (*domain.Member, error)
	GetMemberByID(ctx context.Context, ownerID, memberID string) (*domain.Member, error)
	ListMembers(ctx context.Context, ownerID string, params dto.ListMembersParams) (*dto.ListMembersResponse, error)
	UpdateMember(ctx context.Context, ownerID, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error)

	// DeleteMember hard-deletes the member; the store cascades the ledger rows.
	DeleteMember(ctx context.Context, ownerID, memberID string) error

	// RenewPlan extends the member's plan expiry by one month and records a
	// charge-type ledger entry for the monthly fee.
	RenewPlan(ctx context.Context, ownerID, memberID string) (*domain.Member, error)
}
