package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/txnsuite/estate-reporting/internal/apperrors"
	"github.com/txnsuite/estate-reporting/internal/core/domain"
	portsrepo "github.com/txnsuite/estate-reporting/internal/core/ports/repositories"
	portssvc "github.com/txnsuite/estate-reporting/internal/core/ports/services"
	"github.com/txnsuite/estate-reporting/internal/core/services"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetTransactionsByDate(ctx context.Context, estateID, merchantID uuid.UUID, start, end time.Time) ([]domain.DateBucket, error) {
	args := m.Called(ctx, estateID, merchantID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DateBucket), args.Error(1)
}

func (m *MockReportingRepository) GetTransactionsByWeek(ctx context.Context, estateID, merchantID uuid.UUID, start, end time.Time) ([]domain.WeekBucket, error) {
	args := m.Called(ctx, estateID, merchantID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeekBucket), args.Error(1)
}

func (m *MockReportingRepository) GetTransactionsByMonth(ctx context.Context, estateID, merchantID uuid.UUID, start, end time.Time) ([]domain.MonthBucket, error) {
	args := m.Called(ctx, estateID, merchantID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthBucket), args.Error(1)
}

func (m *MockReportingRepository) GetTransactionsByMerchant(ctx context.Context, estateID uuid.UUID, start, end time.Time, opts portsrepo.RankingOptions) ([]domain.MerchantBucket, error) {
	args := m.Called(ctx, estateID, start, end, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MerchantBucket), args.Error(1)
}

func (m *MockReportingRepository) GetTransactionsByOperator(ctx context.Context, estateID uuid.UUID, start, end time.Time, opts portsrepo.RankingOptions) ([]domain.OperatorBucket, error) {
	args := m.Called(ctx, estateID, start, end, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OperatorBucket), args.Error(1)
}

func (m *MockReportingRepository) GetSettlementByDate(ctx context.Context, estateID, merchantID uuid.UUID, start, end time.Time) ([]domain.DateBucket, error) {
	args := m.Called(ctx, estateID, merchantID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DateBucket), args.Error(1)
}

func (m *MockReportingRepository) GetSettlementByWeek(ctx context.Context, estateID, merchantID uuid.UUID, start, end time.Time) ([]domain.WeekBucket, error) {
	args := m.Called(ctx, estateID, merchantID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeekBucket), args.Error(1)
}

func (m *MockReportingRepository) GetSettlementByMonth(ctx context.Context, estateID, merchantID uuid.UUID, start, end time.Time) ([]domain.MonthBucket, error) {
	args := m.Called(ctx, estateID, merchantID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthBucket), args.Error(1)
}

func (m *MockReportingRepository) GetSettlementByMerchant(ctx context.Context, estateID uuid.UUID, start, end time.Time, opts portsrepo.RankingOptions) ([]domain.MerchantBucket, error) {
	args := m.Called(ctx, estateID, start, end, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MerchantBucket), args.Error(1)
}

func (m *MockReportingRepository) GetSettlementByOperator(ctx context.Context, estateID uuid.UUID, start, end time.Time, opts portsrepo.RankingOptions) ([]domain.OperatorBucket, error) {
	args := m.Called(ctx, estateID, start, end, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OperatorBucket), args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

// --- Date parsing ---

func (suite *ReportingServiceTestSuite) TestParseReportingDate_Valid() {
	parsed, err := services.ParseReportingDate("20210101")

	suite.Require().NoError(err)
	suite.Equal(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), parsed)
}

func (suite *ReportingServiceTestSuite) TestParseReportingDate_Rejected() {
	for _, value := range []string{
		"2021-01-01", // dashed
		"20210101T",  // trailing noise
		"2021011",    // too short
		"20211301",   // month 13
		"20210230",   // day out of range
		"2O210101",   // letter O
		"",
	} {
		_, err := services.ParseReportingDate(value)
		suite.Require().Error(err, value)
		suite.ErrorIs(err, apperrors.ErrInvalidDateFormat, value)
	}
}

func (suite *ReportingServiceTestSuite) TestGetTransactionsByDate_BadStartDate_NoRepoCall() {
	ctx := context.Background()

	buckets, err := suite.service.GetTransactionsForEstateByDate(ctx, uuid.New(), "2021-01-01", "20210131")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidDateFormat)
	suite.Nil(buckets)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetTransactionsByDate")
}

func (suite *ReportingServiceTestSuite) TestGetSettlementByMonth_BadEndDate_NoRepoCall() {
	ctx := context.Background()

	buckets, err := suite.service.GetSettlementForEstateByMonth(ctx, uuid.New(), "20210101", "20219999")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidDateFormat)
	suite.Nil(buckets)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetSettlementByMonth")
}

// --- Delegation ---

func (suite *ReportingServiceTestSuite) TestGetTransactionsForEstateByDate_Success() {
	ctx := context.Background()
	estateID := uuid.New()
	start := time.Date(2021, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 10, 31, 0, 0, 0, 0, time.UTC)
	expected := []domain.DateBucket{
		{Date: "2021-10-06", Count: 3, Value: decimal.RequireFromString("300.00"), CurrencyCode: "KES"},
	}

	suite.mockRepo.On("GetTransactionsByDate", ctx, estateID, uuid.Nil, start, end).
		Return(expected, nil).Once()

	buckets, err := suite.service.GetTransactionsForEstateByDate(ctx, estateID, "20211001", "20211031")

	suite.Require().NoError(err)
	suite.Equal(expected, buckets)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetTransactionsForMerchantByDate_PassesMerchantID() {
	ctx := context.Background()
	estateID, merchantID := uuid.New(), uuid.New()
	start := time.Date(2021, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 10, 2, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("GetTransactionsByDate", ctx, estateID, merchantID, start, end).
		Return([]domain.DateBucket{}, nil).Once()

	buckets, err := suite.service.GetTransactionsForMerchantByDate(ctx, estateID, merchantID, "20211001", "20211002")

	suite.Require().NoError(err)
	suite.NotNil(buckets)
	suite.Empty(buckets)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetTransactionsForEstateByWeek_Success() {
	ctx := context.Background()
	estateID := uuid.New()
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)
	expected := []domain.WeekBucket{
		{WeekNumber: 40, Year: 2021, Count: 12, Value: decimal.RequireFromString("1200.00"), CurrencyCode: "KES"},
		{WeekNumber: 41, Year: 2021, Count: 4, Value: decimal.RequireFromString("380.00"), CurrencyCode: "KES"},
	}

	suite.mockRepo.On("GetTransactionsByWeek", ctx, estateID, uuid.Nil, start, end).
		Return(expected, nil).Once()

	buckets, err := suite.service.GetTransactionsForEstateByWeek(ctx, estateID, "20210101", "20211231")

	suite.Require().NoError(err)
	suite.Equal(expected, buckets)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetTransactionsForEstateByMerchant_PassesRankingOptions() {
	ctx := context.Background()
	estateID := uuid.New()
	start := time.Date(2021, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 10, 31, 0, 0, 0, 0, time.UTC)
	opts := portsrepo.RankingOptions{
		SortField:     domain.SortFieldValue,
		SortDirection: domain.SortDirectionDescending,
		RecordCount:   3,
	}
	expected := []domain.MerchantBucket{
		{MerchantID: uuid.NewString(), MerchantName: "Top Shop", Count: 20, Value: decimal.RequireFromString("2000.00")},
		{MerchantID: uuid.NewString(), MerchantName: "Mid Shop", Count: 15, Value: decimal.RequireFromString("1500.00")},
		{MerchantID: uuid.NewString(), MerchantName: "Low Shop", Count: 10, Value: decimal.RequireFromString("1000.00")},
	}

	suite.mockRepo.On("GetTransactionsByMerchant", ctx, estateID, start, end, opts).
		Return(expected, nil).Once()

	buckets, err := suite.service.GetTransactionsForEstateByMerchant(ctx, estateID, "20211001", "20211031", opts)

	suite.Require().NoError(err)
	suite.Equal(expected, buckets)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetSettlementForEstateByOperator_Success() {
	ctx := context.Background()
	estateID := uuid.New()
	start := time.Date(2021, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 10, 31, 0, 0, 0, 0, time.UTC)
	opts := portsrepo.RankingOptions{RecordCount: 0}
	expected := []domain.OperatorBucket{
		{OperatorIdentifier: "Safaricom", Count: 9, Value: decimal.RequireFromString("45.75")},
	}

	suite.mockRepo.On("GetSettlementByOperator", ctx, estateID, start, end, opts).
		Return(expected, nil).Once()

	buckets, err := suite.service.GetSettlementForEstateByOperator(ctx, estateID, "20211001", "20211031", opts)

	suite.Require().NoError(err)
	suite.Equal(expected, buckets)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetSettlementForMerchantByMonth_RepoError() {
	ctx := context.Background()
	estateID, merchantID := uuid.New(), uuid.New()

	suite.mockRepo.On("GetSettlementByMonth", ctx, estateID, merchantID, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrPersistenceUnavailable).Once()

	buckets, err := suite.service.GetSettlementForMerchantByMonth(ctx, estateID, merchantID, "20210101", "20211231")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPersistenceUnavailable)
	suite.Nil(buckets)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
