package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/apperrors"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	portssvc "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/services"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/services"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type MemberServiceTestSuite struct {
	suite.Suite
	mockMemberRepo *MockMemberRepository
	mockLedgerRepo *MockLedgerRepository
	service        portssvc.MemberSvcFacade
	ownerID        string
}

func (suite *MemberServiceTestSuite) SetupTest() {
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewMemberService(suite.mockMemberRepo, suite.mockLedgerRepo)
	suite.ownerID = uuid.NewString()
}

// --- Test Cases ---

func (suite *MemberServiceTestSuite) TestCreateMember_BalanceStartsAtOpeningBalance() {
	ctx := context.Background()
	req := dto.CreateMemberRequest{
		Name:           "Asha",
		PlanType:       domain.PlanFull,
		MonthlyFee:     decimal.NewFromInt(3000),
		OpeningBalance: decimal.NewFromInt(500),
	}

	suite.mockMemberRepo.On("SaveMember", ctx, mock.MatchedBy(func(m domain.Member) bool {
		return m.OwnerID == suite.ownerID &&
			m.Balance.Equal(decimal.NewFromInt(500)) &&
			m.OpeningBalance.Equal(decimal.NewFromInt(500)) &&
			m.Status == domain.MemberActive
	})).Return(nil).Once()

	member, err := suite.service.CreateMember(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(member)
	suite.True(member.Balance.Equal(decimal.NewFromInt(500)))
	suite.Equal(member.JoiningDate.AddDate(0, 1, 0), member.PlanExpiryDate)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestCreateMember_ExplicitJoiningDate() {
	ctx := context.Background()
	joining := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateMemberRequest{
		Name:        "Asha",
		PlanType:    domain.PlanLunch,
		MonthlyFee:  decimal.NewFromInt(1500),
		JoiningDate: &joining,
	}

	suite.mockMemberRepo.On("SaveMember", ctx, mock.AnythingOfType("domain.Member")).Return(nil).Once()

	member, err := suite.service.CreateMember(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.True(member.JoiningDate.Equal(joining))
	suite.True(member.PlanExpiryDate.Equal(joining.AddDate(0, 1, 0)))
}

func (suite *MemberServiceTestSuite) TestUpdateMember_AppliesOnlyProvidedFields() {
	ctx := context.Background()
	memberID := uuid.NewString()
	existing := &domain.Member{
		MemberID:   memberID,
		OwnerID:    suite.ownerID,
		Name:       "Asha",
		Phone:      "12345",
		PlanType:   domain.PlanFull,
		MonthlyFee: decimal.NewFromInt(3000),
		Status:     domain.MemberActive,
	}
	newName := "Asha K"
	req := dto.UpdateMemberRequest{Name: &newName}

	suite.mockMemberRepo.On("FindMemberByID", ctx, suite.ownerID, memberID).Return(existing, nil).Once()
	suite.mockMemberRepo.On("UpdateMember", ctx, mock.MatchedBy(func(m domain.Member) bool {
		return m.Name == newName && m.Phone == "12345" && m.PlanType == domain.PlanFull
	})).Return(nil).Once()

	member, err := suite.service.UpdateMember(ctx, suite.ownerID, memberID, req)

	suite.Require().NoError(err)
	suite.Equal(newName, member.Name)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestUpdateMember_NotFound() {
	ctx := context.Background()
	memberID := uuid.NewString()

	suite.mockMemberRepo.On("FindMemberByID", ctx, suite.ownerID, memberID).Return(nil, apperrors.ErrNotFound).Once()

	member, err := suite.service.UpdateMember(ctx, suite.ownerID, memberID, dto.UpdateMemberRequest{})

	suite.Require().Error(err)
	suite.Nil(member)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MemberServiceTestSuite) TestRenewPlan_RecordsChargeWithoutBalanceMove() {
	ctx := context.Background()
	memberID := uuid.NewString()
	expiry := time.Now().UTC().AddDate(0, 0, 10)
	existing := &domain.Member{
		MemberID:       memberID,
		OwnerID:        suite.ownerID,
		Name:           "Asha",
		PlanType:       domain.PlanFull,
		MonthlyFee:     decimal.NewFromInt(3000),
		PlanExpiryDate: expiry,
		Status:         domain.MemberActive,
	}

	suite.mockMemberRepo.On("FindMemberByID", ctx, suite.ownerID, memberID).Return(existing, nil).Once()
	suite.mockLedgerRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.Charge && txn.Amount.Equal(decimal.NewFromInt(3000)) && txn.MemberID == memberID
	}), mock.MatchedBy(func(delta decimal.Decimal) bool {
		return delta.IsZero()
	})).Return(nil).Once()
	suite.mockMemberRepo.On("UpdateMember", ctx, mock.MatchedBy(func(m domain.Member) bool {
		return m.PlanExpiryDate.Equal(expiry.AddDate(0, 1, 0))
	})).Return(nil).Once()

	member, err := suite.service.RenewPlan(ctx, suite.ownerID, memberID)

	suite.Require().NoError(err)
	suite.True(member.PlanExpiryDate.Equal(expiry.AddDate(0, 1, 0)))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestRenewPlan_ExpiredPlanRestartsFromNow() {
	ctx := context.Background()
	memberID := uuid.NewString()
	existing := &domain.Member{
		MemberID:       memberID,
		OwnerID:        suite.ownerID,
		MonthlyFee:     decimal.NewFromInt(3000),
		PlanExpiryDate: time.Now().UTC().AddDate(0, -2, 0),
		Status:         domain.MemberActive,
	}

	suite.mockMemberRepo.On("FindMemberByID", ctx, suite.ownerID, memberID).Return(existing, nil).Once()
	suite.mockLedgerRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("decimal.Decimal")).Return(nil).Once()
	suite.mockMemberRepo.On("UpdateMember", ctx, mock.AnythingOfType("domain.Member")).Return(nil).Once()

	member, err := suite.service.RenewPlan(ctx, suite.ownerID, memberID)

	suite.Require().NoError(err)
	// New expiry is roughly one month out, not three months in the past
	suite.True(member.PlanExpiryDate.After(time.Now().UTC().AddDate(0, 0, 27)))
}

func (suite *MemberServiceTestSuite) TestDeleteMember_Success() {
	ctx := context.Background()
	memberID := uuid.NewString()

	suite.mockMemberRepo.On("DeleteMember", ctx, suite.ownerID, memberID).Return(nil).Once()

	err := suite.service.DeleteMember(ctx, suite.ownerID, memberID)

	suite.Require().NoError(err)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
