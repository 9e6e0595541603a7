package services_test

import (
	"context"
	"testing"

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
type StaffServiceTestSuite struct {
	suite.Suite
	mockStaffRepo *MockStaffRepository
	service       portssvc.StaffSvcFacade
	ownerID       string
}

func (suite *StaffServiceTestSuite) SetupTest() {
	suite.mockStaffRepo = new(MockStaffRepository)
	suite.service = services.NewStaffService(suite.mockStaffRepo)
	suite.ownerID = uuid.NewString()
}

// --- Test Cases ---

func (suite *StaffServiceTestSuite) TestCreateStaff_ActiveByDefault() {
	ctx := context.Background()
	req := dto.CreateStaffRequest{
		Name:       "Ravi",
		Role:       domain.RoleCook,
		BaseSalary: decimal.NewFromInt(3000),
	}

	suite.mockStaffRepo.On("SaveStaff", ctx, mock.MatchedBy(func(s domain.Staff) bool {
		return s.OwnerID == suite.ownerID && s.IsActive && s.Role == domain.RoleCook
	})).Return(nil).Once()

	staff, err := suite.service.CreateStaff(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.True(staff.IsActive)
	suite.mockStaffRepo.AssertExpectations(suite.T())
}

func (suite *StaffServiceTestSuite) TestDeactivateStaff_FlipsFlag() {
	ctx := context.Background()
	staffID := uuid.NewString()

	suite.mockStaffRepo.On("SetStaffActive", ctx, suite.ownerID, staffID, false, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateStaff(ctx, suite.ownerID, staffID)

	suite.Require().NoError(err)
	suite.mockStaffRepo.AssertExpectations(suite.T())
}

func (suite *StaffServiceTestSuite) TestReactivateStaff_FlipsFlagBack() {
	ctx := context.Background()
	staffID := uuid.NewString()

	suite.mockStaffRepo.On("SetStaffActive", ctx, suite.ownerID, staffID, true, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ReactivateStaff(ctx, suite.ownerID, staffID)

	suite.Require().NoError(err)
	suite.mockStaffRepo.AssertExpectations(suite.T())
}

func (suite *StaffServiceTestSuite) TestUpdateStaff_NotFound() {
	ctx := context.Background()
	staffID := uuid.NewString()

	suite.mockStaffRepo.On("FindStaffByID", ctx, suite.ownerID, staffID).Return(nil, apperrors.ErrNotFound).Once()

	staff, err := suite.service.UpdateStaff(ctx, suite.ownerID, staffID, dto.UpdateStaffRequest{})

	suite.Require().Error(err)
	suite.Nil(staff)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StaffServiceTestSuite) TestListStaff_NilBecomesEmptySlice() {
	ctx := context.Background()

	suite.mockStaffRepo.On("ListStaff", ctx, suite.ownerID, false, 0, 0).Return([]domain.Staff{}, nil).Once()

	staff, err := suite.service.ListStaff(ctx, suite.ownerID, dto.ListStaffParams{})

	suite.Require().NoError(err)
	suite.NotNil(staff)
	suite.Empty(staff)
}

func TestStaffServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StaffServiceTestSuite))
}
