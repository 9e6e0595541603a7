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
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock MemberRepository ---
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) FindMemberByID(ctx context.Context, ownerID, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, ownerID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ListMembers(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Member, *string, error) {
	args := m.Called(ctx, ownerID, limit, nextToken)
	var members []domain.Member
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.Member)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return members, token, args.Error(2)
}

func (m *MockMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) SetMemberBalance(ctx context.Context, ownerID, memberID string, balance decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, ownerID, memberID, balance, now)
	return args.Error(0)
}

func (m *MockMemberRepository) DeleteMember(ctx context.Context, ownerID, memberID string) error {
	args := m.Called(ctx, ownerID, memberID)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	args := m.Called(ctx, txn, balanceDelta)
	return args.Error(0)
}

func (m *MockLedgerRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	args := m.Called(ctx, txn, balanceDelta)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteTransaction(ctx context.Context, ownerID, memberID, transactionID string, balanceDelta decimal.Decimal) error {
	args := m.Called(ctx, ownerID, memberID, transactionID, balanceDelta)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) ListTransactionsByMember(ctx context.Context, ownerID, memberID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, ownerID, memberID, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockLedgerRepository) SumPaymentsByMember(ctx context.Context, ownerID, memberID string) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, memberID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// TransactionManager methods; services drive atomicity through the composite
// write methods, so these are never exercised directly.
func (m *MockLedgerRepository) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockLedgerRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return nil
}
func (m *MockLedgerRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return nil
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	mockMemberRepo *MockMemberRepository
	service        portssvc.LedgerSvcFacade
	ownerID        string
	memberID       string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockMemberRepo)
	suite.ownerID = uuid.NewString()
	suite.memberID = uuid.NewString()
}

func (suite *LedgerServiceTestSuite) member(balance int64) *domain.Member {
	return &domain.Member{
		MemberID:       suite.memberID,
		OwnerID:        suite.ownerID,
		Name:           "Asha",
		Balance:        decimal.NewFromInt(balance),
		OpeningBalance: decimal.NewFromInt(1500),
		Status:         domain.MemberActive,
	}
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestRecordTransaction_PaymentSubtractsBalance() {
	ctx := context.Background()
	req := dto.RecordTransactionRequest{
		Type:   domain.Payment,
		Amount: decimal.NewFromInt(1500),
	}

	suite.mockMemberRepo.On("FindMemberByID", ctx, suite.ownerID, suite.memberID).Return(suite.member(1500), nil).Once()
	suite.mockLedgerRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.MemberID == suite.memberID && txn.Type == domain.Payment && txn.Amount.Equal(decimal.NewFromInt(1500))
	}), mock.MatchedBy(func(delta decimal.Decimal) bool {
		return delta.Equal(decimal.NewFromInt(-1500))
	})).Return(nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, suite.ownerID, suite.memberID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.Payment, txn.Type)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_ChargeLeavesBalanceUntouched() {
	ctx := context.Background()
	req := dto.RecordTransactionRequest{
		Type:   domain.Charge,
		Amount: decimal.NewFromInt(3000),
	}

	suite.mockMemberRepo.On("FindMemberByID", ctx, suite.ownerID, suite.memberID).Return(suite.member(0), nil).Once()
	suite.mockLedgerRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.MatchedBy(func(delta decimal.Decimal) bool {
		return delta.IsZero()
	})).Return(nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, suite.ownerID, suite.memberID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Charge, txn.Type)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.RecordTransactionRequest{
		Type:   domain.Payment,
		Amount: decimal.Zero,
	}

	txn, err := suite.service.RecordTransaction(ctx, suite.ownerID, suite.memberID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_MemberNotFound() {
	ctx := context.Background()
	req := dto.RecordTransactionRequest{
		Type:   domain.Payment,
		Amount: decimal.NewFromInt(100),
	}

	suite.mockMemberRepo.On("FindMemberByID", ctx, suite.ownerID, suite.memberID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.RecordTransaction(ctx, suite.ownerID, suite.memberID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestEditTransaction_PaymentAmountChangeMovesBalance() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID: transactionID,
		MemberID:      suite.memberID,
		OwnerID:       suite.ownerID,
		Type:          domain.Payment,
		Amount:        decimal.NewFromInt(1500),
		Date:          time.Now().UTC(),
	}
	newAmount := decimal.NewFromInt(1000)
	req := dto.UpdateTransactionRequest{Amount: &newAmount}

	suite.mockLedgerRepo.On("FindTransactionByID", ctx, suite.ownerID, transactionID).Return(existing, nil).Once()
	// Balance had -1500 applied; correcting to -1000 means +500
	suite.mockLedgerRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount.Equal(newAmount)
	}), mock.MatchedBy(func(delta decimal.Decimal) bool {
		return delta.Equal(decimal.NewFromInt(500))
	})).Return(nil).Once()

	txn, err := suite.service.EditTransaction(ctx, suite.ownerID, transactionID, req)

	suite.Require().NoError(err)
	suite.True(txn.Amount.Equal(newAmount))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestEditTransaction_ChargeAmountChangeNoBalanceMove() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID: transactionID,
		MemberID:      suite.memberID,
		OwnerID:       suite.ownerID,
		Type:          domain.Charge,
		Amount:        decimal.NewFromInt(3000),
	}
	newAmount := decimal.NewFromInt(2500)
	req := dto.UpdateTransactionRequest{Amount: &newAmount}

	suite.mockLedgerRepo.On("FindTransactionByID", ctx, suite.ownerID, transactionID).Return(existing, nil).Once()
	suite.mockLedgerRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.MatchedBy(func(delta decimal.Decimal) bool {
		return delta.IsZero()
	})).Return(nil).Once()

	_, err := suite.service.EditTransaction(ctx, suite.ownerID, transactionID, req)

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_PaymentRestoresBalance() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID: transactionID,
		MemberID:      suite.memberID,
		OwnerID:       suite.ownerID,
		Type:          domain.Payment,
		Amount:        decimal.NewFromInt(1000),
	}

	suite.mockLedgerRepo.On("FindTransactionByID", ctx, suite.ownerID, transactionID).Return(existing, nil).Once()
	suite.mockLedgerRepo.On("DeleteTransaction", ctx, suite.ownerID, suite.memberID, transactionID, mock.MatchedBy(func(delta decimal.Decimal) bool {
		return delta.Equal(decimal.NewFromInt(1000))
	})).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.ownerID, transactionID)

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_ChargeLeavesBalance() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID: transactionID,
		MemberID:      suite.memberID,
		OwnerID:       suite.ownerID,
		Type:          domain.Charge,
		Amount:        decimal.NewFromInt(3000),
	}

	suite.mockLedgerRepo.On("FindTransactionByID", ctx, suite.ownerID, transactionID).Return(existing, nil).Once()
	suite.mockLedgerRepo.On("DeleteTransaction", ctx, suite.ownerID, suite.memberID, transactionID, mock.MatchedBy(func(delta decimal.Decimal) bool {
		return delta.IsZero()
	})).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.ownerID, transactionID)

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestReconcileMemberBalance_CorrectsDrift() {
	ctx := context.Background()
	// Opening 1500, payments total 1000 -> reconciled 500; cached says 600
	member := suite.member(600)

	suite.mockMemberRepo.On("FindMemberByID", ctx, suite.ownerID, suite.memberID).Return(member, nil).Once()
	suite.mockLedgerRepo.On("SumPaymentsByMember", ctx, suite.ownerID, suite.memberID).Return(decimal.NewFromInt(1000), nil).Once()
	suite.mockMemberRepo.On("SetMemberBalance", ctx, suite.ownerID, suite.memberID, mock.MatchedBy(func(b decimal.Decimal) bool {
		return b.Equal(decimal.NewFromInt(500))
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()

	resp, err := suite.service.ReconcileMemberBalance(ctx, suite.ownerID, suite.memberID)

	suite.Require().NoError(err)
	suite.True(resp.PreviousBalance.Equal(decimal.NewFromInt(600)))
	suite.True(resp.Balance.Equal(decimal.NewFromInt(500)))
	suite.True(resp.Drift.Equal(decimal.NewFromInt(-100)))
	suite.mockMemberRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListMemberTransactions_Success() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), MemberID: suite.memberID, Type: domain.Payment, Amount: decimal.NewFromInt(500)},
		{TransactionID: uuid.NewString(), MemberID: suite.memberID, Type: domain.Charge, Amount: decimal.NewFromInt(3000)},
	}
	token := "next-token"

	suite.mockMemberRepo.On("FindMemberByID", ctx, suite.ownerID, suite.memberID).Return(suite.member(0), nil).Once()
	suite.mockLedgerRepo.On("ListTransactionsByMember", ctx, suite.ownerID, suite.memberID, 10, (*string)(nil)).Return(txns, &token, nil).Once()

	resp, err := suite.service.ListMemberTransactions(ctx, suite.ownerID, suite.memberID, dto.ListTransactionsParams{Limit: 10})

	suite.Require().NoError(err)
	suite.Len(resp.Transactions, 2)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(token, *resp.NextToken)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
