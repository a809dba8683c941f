package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/txnsuite/estate-reporting/internal/apperrors"
	"github.com/txnsuite/estate-reporting/internal/core/domain"
	"github.com/txnsuite/estate-reporting/internal/core/events"
	portssvc "github.com/txnsuite/estate-reporting/internal/core/ports/services"
	"github.com/txnsuite/estate-reporting/internal/core/services"
	"github.com/txnsuite/estate-reporting/internal/utils/identifiers"
)

// --- Mock EstateRepository ---
type MockEstateRepository struct {
	mock.Mock
}

func (m *MockEstateRepository) InsertEstate(ctx context.Context, estate domain.Estate) error {
	args := m.Called(ctx, estate)
	return args.Error(0)
}

func (m *MockEstateRepository) GetEstate(ctx context.Context, estateID uuid.UUID) (*domain.Estate, error) {
	args := m.Called(ctx, estateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Estate), args.Error(1)
}

func (m *MockEstateRepository) UpdateEstateReference(ctx context.Context, estateID uuid.UUID, reference string) error {
	args := m.Called(ctx, estateID, reference)
	return args.Error(0)
}

func (m *MockEstateRepository) InsertEstateOperator(ctx context.Context, operator domain.EstateOperator) error {
	args := m.Called(ctx, operator)
	return args.Error(0)
}

func (m *MockEstateRepository) InsertEstateSecurityUser(ctx context.Context, user domain.EstateSecurityUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) InsertTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetTransaction(ctx context.Context, estateID, merchantID, transactionID uuid.UUID) (*domain.Transaction, error) {
	args := m.Called(ctx, estateID, merchantID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransactionAmount(ctx context.Context, estateID, merchantID, transactionID uuid.UUID, amount decimal.Decimal) error {
	args := m.Called(ctx, estateID, merchantID, transactionID, amount)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionAuthorisation(ctx context.Context, estateID, merchantID, transactionID uuid.UUID, isAuthorised bool, responseCode, responseMessage, authorisationCode string) error {
	args := m.Called(ctx, estateID, merchantID, transactionID, isAuthorised, responseCode, responseMessage, authorisationCode)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionOperatorAuthorisation(ctx context.Context, estateID, merchantID, transactionID uuid.UUID, isAuthorised bool, responseCode, responseMessage, authorisationCode, operatorResponseCode, operatorResponseText, operatorAuthorisation string) error {
	args := m.Called(ctx, estateID, merchantID, transactionID, isAuthorised, responseCode, responseMessage, authorisationCode, operatorResponseCode, operatorResponseText, operatorAuthorisation)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionCompleted(ctx context.Context, estateID, merchantID, transactionID uuid.UUID, isAuthorised bool, responseCode string) error {
	args := m.Called(ctx, estateID, merchantID, transactionID, isAuthorised, responseCode)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionProductDetails(ctx context.Context, estateID, merchantID, transactionID, contractID, productID uuid.UUID) error {
	args := m.Called(ctx, estateID, merchantID, transactionID, contractID, productID)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpsertTransactionFee(ctx context.Context, fee domain.TransactionFee) error {
	args := m.Called(ctx, fee)
	return args.Error(0)
}

// --- Mock VoucherRepository ---
type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) InsertVoucher(ctx context.Context, voucher domain.Voucher) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

func (m *MockVoucherRepository) GetVoucher(ctx context.Context, voucherID uuid.UUID) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) MarkVoucherIssued(ctx context.Context, voucherID uuid.UUID, issuedAt time.Time, recipientEmail, recipientMobile string) error {
	args := m.Called(ctx, voucherID, issuedAt, recipientEmail, recipientMobile)
	return args.Error(0)
}

func (m *MockVoucherRepository) MarkVoucherRedeemed(ctx context.Context, voucherID uuid.UUID, redeemedAt time.Time) error {
	args := m.Called(ctx, voucherID, redeemedAt)
	return args.Error(0)
}

// --- Mock SettlementRepository ---
type MockSettlementRepository struct {
	mock.Mock
}

func (m *MockSettlementRepository) UpsertSettlement(ctx context.Context, settlement domain.Settlement) error {
	args := m.Called(ctx, settlement)
	return args.Error(0)
}

func (m *MockSettlementRepository) InsertMerchantSettlementFee(ctx context.Context, fee domain.MerchantSettlementFee) error {
	args := m.Called(ctx, fee)
	return args.Error(0)
}

func (m *MockSettlementRepository) MarkFeeSettled(ctx context.Context, estateID, settlementID, transactionID, feeID uuid.UUID) error {
	args := m.Called(ctx, estateID, settlementID, transactionID, feeID)
	return args.Error(0)
}

func (m *MockSettlementRepository) MarkSettlementCompleted(ctx context.Context, estateID, settlementID uuid.UUID) error {
	args := m.Called(ctx, estateID, settlementID)
	return args.Error(0)
}

// --- Test Suite ---
type ProjectionServiceTestSuite struct {
	suite.Suite
	mockEstateRepo      *MockEstateRepository
	mockTransactionRepo *MockTransactionRepository
	mockVoucherRepo     *MockVoucherRepository
	mockSettlementRepo  *MockSettlementRepository
	service             portssvc.ProjectionService
}

func (suite *ProjectionServiceTestSuite) SetupTest() {
	suite.mockEstateRepo = new(MockEstateRepository)
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockSettlementRepo = new(MockSettlementRepository)

	suite.service = services.NewProjectionService(
		services.NewEstateProjector(suite.mockEstateRepo),
		services.NewMerchantProjector(nil),
		services.NewContractProjector(nil),
		services.NewTransactionProjector(suite.mockTransactionRepo),
		services.NewReconciliationProjector(nil),
		services.NewVoucherProjector(suite.mockVoucherRepo),
		services.NewSettlementProjector(suite.mockSettlementRepo),
		services.NewFileProjector(nil),
	)
}

func (suite *ProjectionServiceTestSuite) envelope(ev events.DomainEvent) events.Envelope {
	payload, err := json.Marshal(ev)
	suite.Require().NoError(err)
	return events.Envelope{
		EventID:   uuid.New(),
		EventType: ev.EventType(),
		Payload:   payload,
	}
}

// --- Routing ---

func (suite *ProjectionServiceTestSuite) TestApply_UnknownEventType_Acknowledged() {
	ctx := context.Background()
	env := events.Envelope{
		EventID:   uuid.New(),
		EventType: "SomebodyElsesEvent",
		Payload:   json.RawMessage(`{}`),
	}

	err := suite.service.Apply(ctx, env)

	suite.Require().NoError(err)
	suite.mockEstateRepo.AssertExpectations(suite.T())
}

func (suite *ProjectionServiceTestSuite) TestApply_MalformedPayload_Surfaced() {
	ctx := context.Background()
	env := events.Envelope{
		EventID:   uuid.New(),
		EventType: (&events.EstateCreated{}).EventType(),
		Payload:   json.RawMessage(`{"estateId": 42}`),
	}

	err := suite.service.Apply(ctx, env)

	suite.Require().Error(err)
	suite.False(apperrors.IsRetryable(err))

	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
}

// --- Estate family ---

func (suite *ProjectionServiceTestSuite) TestApply_EstateCreated_InsertsRow() {
	ctx := context.Background()
	estateID := uuid.New()
	ev := &events.EstateCreated{
		EstateID:   estateID,
		EstateName: "Acme Holdings",
		CreatedAt:  time.Date(2021, 10, 6, 8, 0, 0, 0, time.UTC),
	}

	suite.mockEstateRepo.On("InsertEstate", ctx, mock.MatchedBy(func(e domain.Estate) bool {
		return e.EstateID == estateID && e.Name == "Acme Holdings"
	})).Return(nil).Once()

	err := suite.service.Apply(ctx, suite.envelope(ev))

	suite.Require().NoError(err)
	suite.mockEstateRepo.AssertExpectations(suite.T())
}

func (suite *ProjectionServiceTestSuite) TestApply_SecurityUserAdded_InsertsRowWithoutTimestamp() {
	ctx := context.Background()
	estateID := uuid.New()
	securityUserID := uuid.New()
	ev := &events.SecurityUserAddedToEstate{
		EstateID:       estateID,
		SecurityUserID: securityUserID,
		EmailAddress:   "ops@acme.example",
	}

	// The event carries no timestamp, so the persisted row is exactly the
	// event's fields; the store supplies created_at itself.
	suite.mockEstateRepo.On("InsertEstateSecurityUser", ctx, domain.EstateSecurityUser{
		SecurityUserID: securityUserID,
		EstateID:       estateID,
		EmailAddress:   "ops@acme.example",
	}).Return(nil).Once()

	err := suite.service.Apply(ctx, suite.envelope(ev))

	suite.Require().NoError(err)
	suite.mockEstateRepo.AssertExpectations(suite.T())
}

func (suite *ProjectionServiceTestSuite) TestApply_EstateCreated_RedeliveredIdentical_NoOp() {
	ctx := context.Background()
	estateID := uuid.New()
	ev := &events.EstateCreated{EstateID: estateID, EstateName: "Acme Holdings"}

	suite.mockEstateRepo.On("InsertEstate", ctx, mock.AnythingOfType("domain.Estate")).
		Return(apperrors.ErrDuplicateEvent).Once()
	suite.mockEstateRepo.On("GetEstate", ctx, estateID).
		Return(&domain.Estate{EstateID: estateID, Name: "Acme Holdings"}, nil).Once()

	err := suite.service.Apply(ctx, suite.envelope(ev))

	suite.Require().NoError(err)
	suite.mockEstateRepo.AssertExpectations(suite.T())
}

func (suite *ProjectionServiceTestSuite) TestApply_EstateCreated_RedeliveredConflicting_Discarded() {
	ctx := context.Background()
	estateID := uuid.New()
	ev := &events.EstateCreated{EstateID: estateID, EstateName: "Acme Holdings"}

	suite.mockEstateRepo.On("InsertEstate", ctx, mock.AnythingOfType("domain.Estate")).
		Return(apperrors.ErrDuplicateEvent).Once()
	suite.mockEstateRepo.On("GetEstate", ctx, estateID).
		Return(&domain.Estate{EstateID: estateID, Name: "Globex Corp"}, nil).Once()

	// Conflicting redelivery is logged and acknowledged, never retried.
	err := suite.service.Apply(ctx, suite.envelope(ev))

	suite.Require().NoError(err)
	suite.mockEstateRepo.AssertExpectations(suite.T())
}

func (suite *ProjectionServiceTestSuite) TestApply_EstateReference_OutOfOrder_Retryable() {
	ctx := context.Background()
	estateID := uuid.New()
	ev := &events.EstateReferenceAllocated{EstateID: estateID, Reference: "EST001"}

	suite.mockEstateRepo.On("UpdateEstateReference", ctx, estateID, "EST001").
		Return(apperrors.ErrOutOfOrderEvent).Once()

	err := suite.service.Apply(ctx, suite.envelope(ev))

	suite.Require().Error(err)
	suite.True(apperrors.IsRetryable(err))
	suite.mockEstateRepo.AssertExpectations(suite.T())
}

// --- Transaction family ---

func (suite *ProjectionServiceTestSuite) TestApply_TransactionStarted_InsertsRow() {
	ctx := context.Background()
	estateID, merchantID, txnID := uuid.New(), uuid.New(), uuid.New()
	ev := &events.TransactionHasStarted{
		EstateID:            estateID,
		MerchantID:          merchantID,
		TransactionID:       txnID,
		TransactionDateTime: time.Date(2021, 10, 6, 8, 30, 15, 0, time.UTC),
		TransactionType:     domain.TransactionTypeSale,
		DeviceIdentifier:    "term-0042",
		OperatorIdentifier:  "Safaricom",
		TransactionAmount:   decimal.RequireFromString("100.00"),
	}

	suite.mockTransactionRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.EstateID == estateID && t.MerchantID == merchantID && t.TransactionID == txnID &&
			t.TransactionType == domain.TransactionTypeSale && t.TransactionAmount.Equal(ev.TransactionAmount)
	})).Return(nil).Once()

	err := suite.service.Apply(ctx, suite.envelope(ev))

	suite.Require().NoError(err)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *ProjectionServiceTestSuite) TestApply_TransactionCompleted_BeforeStart_Retryable() {
	ctx := context.Background()
	estateID, merchantID, txnID := uuid.New(), uuid.New(), uuid.New()
	ev := &events.TransactionHasBeenCompleted{
		EstateID:      estateID,
		MerchantID:    merchantID,
		TransactionID: txnID,
		IsAuthorised:  true,
		ResponseCode:  "0000",
	}

	suite.mockTransactionRepo.On("UpdateTransactionCompleted", ctx, estateID, merchantID, txnID, true, "0000").
		Return(apperrors.ErrOutOfOrderEvent).Once()

	err := suite.service.Apply(ctx, suite.envelope(ev))

	suite.Require().Error(err)
	suite.True(apperrors.IsRetryable(err))
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *ProjectionServiceTestSuite) TestApply_StoreUnavailable_Retryable() {
	ctx := context.Background()
	ev := &events.TransactionHasBeenLocallyDeclined{
		EstateID:      uuid.New(),
		MerchantID:    uuid.New(),
		TransactionID: uuid.New(),
		ResponseCode:  "1009",
	}

	suite.mockTransactionRepo.On("UpdateTransactionAuthorisation",
		ctx, ev.EstateID, ev.MerchantID, ev.TransactionID, false, "1009", "", "").
		Return(apperrors.ErrPersistenceUnavailable).Once()

	err := suite.service.Apply(ctx, suite.envelope(ev))

	suite.Require().Error(err)
	suite.True(apperrors.IsRetryable(err))
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *ProjectionServiceTestSuite) TestApply_AdditionalRequestData_AmountApplied() {
	ctx := context.Background()
	ev := &events.AdditionalRequestDataRecorded{
		EstateID:      uuid.New(),
		MerchantID:    uuid.New(),
		TransactionID: uuid.New(),
		RequestData:   map[string]string{"Amount": "250.50", "CustomerAccountNumber": "07700900001"},
	}

	suite.mockTransactionRepo.On("UpdateTransactionAmount",
		ctx, ev.EstateID, ev.MerchantID, ev.TransactionID,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.RequireFromString("250.50")) })).
		Return(nil).Once()

	err := suite.service.Apply(ctx, suite.envelope(ev))

	suite.Require().NoError(err)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *ProjectionServiceTestSuite) TestApply_AdditionalRequestData_NoAmount_NoOp() {
	ctx := context.Background()
	ev := &events.AdditionalRequestDataRecorded{
		EstateID:      uuid.New(),
		MerchantID:    uuid.New(),
		TransactionID: uuid.New(),
		RequestData:   map[string]string{"CustomerAccountNumber": "07700900001"},
	}

	err := suite.service.Apply(ctx, suite.envelope(ev))

	suite.Require().NoError(err)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *ProjectionServiceTestSuite) TestApply_MerchantFee_DerivedEventID() {
	ctx := context.Background()
	fee := events.FeeDetails{
		EstateID:              uuid.New(),
		MerchantID:            uuid.New(),
		TransactionID:         uuid.New(),
		FeeID:                 uuid.New(),
		CalculatedValue:       decimal.RequireFromString("2.95"),
		FeeValue:              decimal.RequireFromString("0.0025"),
		FeeCalculationType:    0,
		FeeCalculatedDateTime: time.Date(2021, 10, 6, 8, 45, 30, 0, time.UTC),
	}
	wantEventID := identifiers.DeriveFeeEventID(fee.EstateID, fee.MerchantID, fee.TransactionID, fee.FeeID,
		fee.CalculatedValue, fee.FeeValue, fee.FeeCalculationType, fee.FeeCalculatedDateTime)

	suite.mockTransactionRepo.On("UpsertTransactionFee", ctx, mock.MatchedBy(func(f domain.TransactionFee) bool {
		return f.EventID == wantEventID && f.TransactionID == fee.TransactionID && f.FeeID == fee.FeeID && f.FeeType == 0
	})).Return(nil).Once()

	err := suite.service.Apply(ctx, suite.envelope(&events.MerchantFeeAddedToTransaction{FeeDetails: fee}))

	suite.Require().NoError(err)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *ProjectionServiceTestSuite) TestApply_MerchantFee_Redelivered_SameRow() {
	ctx := context.Background()
	fee := events.FeeDetails{
		EstateID:              uuid.New(),
		MerchantID:            uuid.New(),
		TransactionID:         uuid.New(),
		FeeID:                 uuid.New(),
		CalculatedValue:       decimal.RequireFromString("2.95"),
		FeeValue:              decimal.RequireFromString("0.0025"),
		FeeCalculatedDateTime: time.Date(2021, 10, 6, 8, 45, 30, 0, time.UTC),
	}

	wantEventID := identifiers.DeriveFeeEventID(fee.EstateID, fee.MerchantID, fee.TransactionID, fee.FeeID,
		fee.CalculatedValue, fee.FeeValue, fee.FeeCalculationType, fee.FeeCalculatedDateTime)
	suite.mockTransactionRepo.On("UpsertTransactionFee", ctx, mock.MatchedBy(func(f domain.TransactionFee) bool {
		return f.EventID == wantEventID
	})).Return(nil).Twice()

	env := suite.envelope(&events.MerchantFeeAddedToTransaction{FeeDetails: fee})
	suite.Require().NoError(suite.service.Apply(ctx, env))
	suite.Require().NoError(suite.service.Apply(ctx, env))

	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

// --- Voucher family ---

func (suite *ProjectionServiceTestSuite) TestApply_VoucherIssued_OnlyIssueFields() {
	ctx := context.Background()
	voucherID := uuid.New()
	issuedAt := time.Date(2021, 11, 1, 12, 0, 0, 0, time.UTC)
	ev := &events.VoucherIssued{
		VoucherID:       voucherID,
		EstateID:        uuid.New(),
		IssuedDateTime:  issuedAt,
		RecipientEmail:  "holder@example.com",
		RecipientMobile: "07700900001",
	}

	suite.mockVoucherRepo.On("MarkVoucherIssued", ctx, voucherID, issuedAt, "holder@example.com", "07700900001").
		Return(nil).Once()

	err := suite.service.Apply(ctx, suite.envelope(ev))

	suite.Require().NoError(err)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *ProjectionServiceTestSuite) TestApply_VoucherGenerated_RedeliveredIdentical_NoOp() {
	ctx := context.Background()
	voucherID := uuid.New()
	ev := &events.VoucherGenerated{
		VoucherID:   voucherID,
		EstateID:    uuid.New(),
		VoucherCode: "ABC123",
		Value:       decimal.RequireFromString("10.00"),
	}

	suite.mockVoucherRepo.On("InsertVoucher", ctx, mock.AnythingOfType("domain.Voucher")).
		Return(apperrors.ErrDuplicateEvent).Once()
	suite.mockVoucherRepo.On("GetVoucher", ctx, voucherID).
		Return(&domain.Voucher{VoucherID: voucherID, VoucherCode: "ABC123", Value: decimal.RequireFromString("10.00")}, nil).Once()

	err := suite.service.Apply(ctx, suite.envelope(ev))

	suite.Require().NoError(err)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

// --- Settlement family ---

func (suite *ProjectionServiceTestSuite) TestApply_SettlementCreated_DerivedID() {
	ctx := context.Background()
	estateID := uuid.New()
	settlementDate := time.Date(2021, 10, 6, 0, 0, 0, 0, time.UTC)
	wantID := identifiers.DeriveSettlementID(estateID, settlementDate)

	suite.mockSettlementRepo.On("UpsertSettlement", ctx, mock.MatchedBy(func(s domain.Settlement) bool {
		return s.EstateID == estateID && s.SettlementID == wantID
	})).Return(nil).Once()

	err := suite.service.Apply(ctx, suite.envelope(&events.SettlementCreatedForDate{
		EstateID:       estateID,
		SettlementDate: settlementDate,
	}))

	suite.Require().NoError(err)
	suite.mockSettlementRepo.AssertExpectations(suite.T())
}

func (suite *ProjectionServiceTestSuite) TestApply_PendingFee_QueuedUnderDerivedSettlement() {
	ctx := context.Background()
	settlementDate := time.Date(2021, 10, 7, 0, 0, 0, 0, time.UTC)
	fee := events.FeeDetails{
		EstateID:              uuid.New(),
		MerchantID:            uuid.New(),
		TransactionID:         uuid.New(),
		FeeID:                 uuid.New(),
		CalculatedValue:       decimal.RequireFromString("1.25"),
		FeeValue:              decimal.RequireFromString("0.0125"),
		FeeCalculatedDateTime: time.Date(2021, 10, 6, 23, 59, 0, 0, time.UTC),
	}
	wantSettlementID := identifiers.DeriveSettlementID(fee.EstateID, settlementDate)

	suite.mockSettlementRepo.On("InsertMerchantSettlementFee", ctx, mock.MatchedBy(func(f domain.MerchantSettlementFee) bool {
		return f.SettlementID == wantSettlementID && f.FeeID == fee.FeeID && f.MerchantID == fee.MerchantID
	})).Return(nil).Once()

	err := suite.service.Apply(ctx, suite.envelope(&events.MerchantFeeAddedPendingSettlement{
		FeeDetails:     fee,
		SettlementDate: settlementDate,
	}))

	suite.Require().NoError(err)
	suite.mockSettlementRepo.AssertExpectations(suite.T())
}

func (suite *ProjectionServiceTestSuite) TestApply_PendingFee_Redelivered_NoOp() {
	ctx := context.Background()
	fee := events.FeeDetails{
		EstateID:      uuid.New(),
		MerchantID:    uuid.New(),
		TransactionID: uuid.New(),
		FeeID:         uuid.New(),
	}

	suite.mockSettlementRepo.On("InsertMerchantSettlementFee", ctx, mock.AnythingOfType("domain.MerchantSettlementFee")).
		Return(apperrors.ErrDuplicateEvent).Once()

	err := suite.service.Apply(ctx, suite.envelope(&events.MerchantFeeAddedPendingSettlement{
		FeeDetails:     fee,
		SettlementDate: time.Date(2021, 10, 7, 0, 0, 0, 0, time.UTC),
	}))

	suite.Require().NoError(err)
	suite.mockSettlementRepo.AssertExpectations(suite.T())
}

func (suite *ProjectionServiceTestSuite) TestApply_FeeSettled_MarksQueuedFee() {
	ctx := context.Background()
	estateID, settlementID, txnID, feeID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	ev := &events.MerchantFeeSettled{
		FeeDetails: events.FeeDetails{
			EstateID:      estateID,
			TransactionID: txnID,
			FeeID:         feeID,
		},
		SettlementID: settlementID,
	}

	suite.mockSettlementRepo.On("MarkFeeSettled", ctx, estateID, settlementID, txnID, feeID).
		Return(nil).Once()

	err := suite.service.Apply(ctx, suite.envelope(ev))

	suite.Require().NoError(err)
	suite.mockSettlementRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestProjectionService(t *testing.T) {
	suite.Run(t, new(ProjectionServiceTestSuite))
}
