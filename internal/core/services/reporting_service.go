package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/txnsuite/estate-reporting/internal/apperrors"
	"github.com/txnsuite/estate-reporting/internal/core/domain"
	portsrepo "github.com/txnsuite/estate-reporting/internal/core/ports/repositories"
	portssvc "github.com/txnsuite/estate-reporting/internal/core/ports/services"
)

// reportingDateLayout is the only accepted shape for report date parameters.
const reportingDateLayout = "20060102"

// reportingService implements the ReportingService interface over the
// aggregation repository.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: repo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// ParseReportingDate validates and parses an 8 character yyyyMMdd date.
// Anything else fails with ErrInvalidDateFormat; no guessing.
func ParseReportingDate(value string) (time.Time, error) {
	if len(value) != len(reportingDateLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDateFormat, value)
	}
	parsed, err := time.ParseInLocation(reportingDateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDateFormat, value)
	}
	return parsed, nil
}

func (s *reportingService) parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := ParseReportingDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseReportingDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func (s *reportingService) GetTransactionsForEstateByDate(ctx context.Context, estateID uuid.UUID, startDate, endDate string) ([]domain.DateBucket, error) {
	start, end, err := s.parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.GetTransactionsByDate(ctx, estateID, uuid.Nil, start, end)
}

func (s *reportingService) GetTransactionsForMerchantByDate(ctx context.Context, estateID, merchantID uuid.UUID, startDate, endDate string) ([]domain.DateBucket, error) {
	start, end, err := s.parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.GetTransactionsByDate(ctx, estateID, merchantID, start, end)
}

func (s *reportingService) GetTransactionsForEstateByWeek(ctx context.Context, estateID uuid.UUID, startDate, endDate string) ([]domain.WeekBucket, error) {
	start, end, err := s.parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.GetTransactionsByWeek(ctx, estateID, uuid.Nil, start, end)
}

func (s *reportingService) GetTransactionsForMerchantByWeek(ctx context.Context, estateID, merchantID uuid.UUID, startDate, endDate string) ([]domain.WeekBucket, error) {
	start, end, err := s.parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.GetTransactionsByWeek(ctx, estateID, merchantID, start, end)
}

func (s *reportingService) GetTransactionsForEstateByMonth(ctx context.Context, estateID uuid.UUID, startDate, endDate string) ([]domain.MonthBucket, error) {
	start, end, err := s.parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.GetTransactionsByMonth(ctx, estateID, uuid.Nil, start, end)
}

func (s *reportingService) GetTransactionsForMerchantByMonth(ctx context.Context, estateID, merchantID uuid.UUID, startDate, endDate string) ([]domain.MonthBucket, error) {
	start, end, err := s.parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.GetTransactionsByMonth(ctx, estateID, merchantID, start, end)
}

func (s *reportingService) GetTransactionsForEstateByMerchant(ctx context.Context, estateID uuid.UUID, startDate, endDate string, opts portsrepo.RankingOptions) ([]domain.MerchantBucket, error) {
	start, end, err := s.parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.GetTransactionsByMerchant(ctx, estateID, start, end, opts)
}

func (s *reportingService) GetTransactionsForEstateByOperator(ctx context.Context, estateID uuid.UUID, startDate, endDate string, opts portsrepo.RankingOptions) ([]domain.OperatorBucket, error) {
	start, end, err := s.parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.GetTransactionsByOperator(ctx, estateID, start, end, opts)
}

func (s *reportingService) GetSettlementForEstateByDate(ctx context.Context, estateID uuid.UUID, startDate, endDate string) ([]domain.DateBucket, error) {
	start, end, err := s.parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.GetSettlementByDate(ctx, estateID, uuid.Nil, start, end)
}

func (s *reportingService) GetSettlementForMerchantByDate(ctx context.Context, estateID, merchantID uuid.UUID, startDate, endDate string) ([]domain.DateBucket, error) {
	start, end, err := s.parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.GetSettlementByDate(ctx, estateID, merchantID, start, end)
}

func (s *reportingService) GetSettlementForEstateByWeek(ctx context.Context, estateID uuid.UUID, startDate, endDate string) ([]domain.WeekBucket, error) {
	start, end, err := s.parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.GetSettlementByWeek(ctx, estateID, uuid.Nil, start, end)
}

func (s *reportingService) GetSettlementForMerchantByWeek(ctx context.Context, estateID, merchantID uuid.UUID, startDate, endDate string) ([]domain.WeekBucket, error) {
	start, end, err := s.parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.GetSettlementByWeek(ctx, estateID, merchantID, start, end)
}

func (s *reportingService) GetSettlementForEstateByMonth(ctx context.Context, estateID uuid.UUID, startDate, endDate string) ([]domain.MonthBucket, error) {
	start, end, err := s.parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.GetSettlementByMonth(ctx, estateID, uuid.Nil, start, end)
}

func (s *reportingService) GetSettlementForMerchantByMonth(ctx context.Context, estateID, merchantID uuid.UUID, startDate, endDate string) ([]domain.MonthBucket, error) {
	start, end, err := s.parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.GetSettlementByMonth(ctx, estateID, merchantID, start, end)
}

func (s *reportingService) GetSettlementForEstateByMerchant(ctx context.Context, estateID uuid.UUID, startDate, endDate string, opts portsrepo.RankingOptions) ([]domain.MerchantBucket, error) {
	start, end, err := s.parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.GetSettlementByMerchant(ctx, estateID, start, end, opts)
}

func (s *reportingService) GetSettlementForEstateByOperator(ctx context.Context, estateID uuid.UUID, startDate, endDate string, opts portsrepo.RankingOptions) ([]domain.OperatorBucket, error) {
	start, end, err := s.parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.GetSettlementByOperator(ctx, estateID, start, end, opts)
}
