package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	portsrepo "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/repositories"
	portssvc "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/services"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/dto"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/middleware"
	"github.com/shopspring/decimal"
)

// memberService provides member lifecycle operations.
type memberService struct {
	memberRepo portsrepo.MemberRepositoryFacade
	ledgerRepo portsrepo.LedgerRepositoryWithTx
}

// NewMemberService creates a new MemberService.
func NewMemberService(memberRepo portsrepo.MemberRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryWithTx) portssvc.MemberSvcFacade {
	return &memberService{
		memberRepo: memberRepo,
		ledgerRepo: ledgerRepo,
	}
}

// Ensure memberService implements the portssvc.MemberSvcFacade interface
var _ portssvc.MemberSvcFacade = (*memberService)(nil)

// CreateMember registers a new member. The cached balance starts at the
// opening balance; the plan expires one month after joining.
func (s *memberService) CreateMember(ctx context.Context, ownerID string, req dto.CreateMemberRequest) (*domain.Member, error) {
	now := time.Now().UTC()

	joiningDate := now
	if req.JoiningDate != nil {
		joiningDate = req.JoiningDate.UTC()
	}

	member := domain.Member{
		MemberID:       uuid.NewString(),
		OwnerID:        ownerID,
		Name:           req.Name,
		Phone:          req.Phone,
		PlanType:       req.PlanType,
		MonthlyFee:     req.MonthlyFee,
		Balance:        req.OpeningBalance,
		OpeningBalance: req.OpeningBalance,
		Status:         domain.MemberActive,
		JoiningDate:    joiningDate,
		PlanExpiryDate: joiningDate.AddDate(0, 1, 0),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member in service: %w", err)
	}

	return &member, nil
}

// GetMemberByID retrieves a single member.
func (s *memberService) GetMemberByID(ctx context.Context, ownerID, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, ownerID, memberID)
	if err != nil {
		return nil, err
	}
	return member, nil
}

// ListMembers retrieves a page of members for the owner.
func (s *memberService) ListMembers(ctx context.Context, ownerID string, params dto.ListMembersParams) (*dto.ListMembersResponse, error) {
	members, nextToken, err := s.memberRepo.ListMembers(ctx, ownerID, params.Limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list members in service: %w", err)
	}

	resp := dto.ListMembersResponse{
		Members:   make([]dto.MemberResponse, 0, len(members)),
		NextToken: nextToken,
	}
	for i := range members {
		resp.Members = append(resp.Members, dto.ToMemberResponse(&members[i]))
	}
	return &resp, nil
}

// UpdateMember applies the provided fields to an existing member. The cached
// balance is not updatable here; only the ledger moves it.
func (s *memberService) UpdateMember(ctx context.Context, ownerID, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, ownerID, memberID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.PlanType != nil {
		member.PlanType = *req.PlanType
	}
	if req.MonthlyFee != nil {
		member.MonthlyFee = *req.MonthlyFee
	}
	if req.Status != nil {
		member.Status = *req.Status
	}
	member.LastUpdatedAt = time.Now().UTC()

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		return nil, fmt.Errorf("failed to update member in service: %w", err)
	}

	return member, nil
}

// DeleteMember hard-deletes the member; the ledger rows cascade in the store.
func (s *memberService) DeleteMember(ctx context.Context, ownerID, memberID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.memberRepo.DeleteMember(ctx, ownerID, memberID); err != nil {
		return err
	}

	logger.Info("member deleted", slog.String("member_id", memberID))
	return nil
}

// RenewPlan extends the plan by one month and records a charge-type ledger
// entry for the monthly fee. An expired plan restarts from now; an active one
// extends from its current expiry. The charge does not move the cached
// balance.
func (s *memberService) RenewPlan(ctx context.Context, ownerID, memberID string) (*domain.Member, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	member, err := s.memberRepo.FindMemberByID(ctx, ownerID, memberID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	renewFrom := member.PlanExpiryDate
	if renewFrom.Before(now) {
		renewFrom = now
	}
	member.PlanExpiryDate = renewFrom.AddDate(0, 1, 0)
	member.LastUpdatedAt = now

	charge := domain.Transaction{
		TransactionID: uuid.NewString(),
		MemberID:      member.MemberID,
		OwnerID:       ownerID,
		Type:          domain.Charge,
		Amount:        member.MonthlyFee,
		Date:          now,
		Notes:         fmt.Sprintf("Plan renewal (%s)", member.PlanType),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.ledgerRepo.SaveTransaction(ctx, charge, decimal.Zero); err != nil {
		return nil, fmt.Errorf("failed to record renewal charge: %w", err)
	}

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		return nil, fmt.Errorf("failed to update member expiry after renewal: %w", err)
	}

	logger.Info("plan renewed",
		slog.String("member_id", member.MemberID),
		slog.Time("plan_expiry_date", member.PlanExpiryDate),
	)
	return member, nil
}
