package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/txnsuite/estate-reporting/internal/core/domain"
	portsrepo "github.com/txnsuite/estate-reporting/internal/core/ports/repositories"
)

// ReportingService answers reporting requests. Dates arrive as yyyyMMdd
// strings and are validated here; malformed dates yield
// apperrors.ErrInvalidDateFormat. merchantID is uuid.Nil for estate-wide
// queries. Empty results are empty slices, never nil and never an error.
type ReportingService interface {
	GetTransactionsForEstateByDate(ctx context.Context, estateID uuid.UUID, startDate, endDate string) ([]domain.DateBucket, error)
	GetTransactionsForMerchantByDate(ctx context.Context, estateID, merchantID uuid.UUID, startDate, endDate string) ([]domain.DateBucket, error)
	GetTransactionsForEstateByWeek(ctx context.Context, estateID uuid.UUID, startDate, endDate string) ([]domain.WeekBucket, error)
	GetTransactionsForMerchantByWeek(ctx context.Context, estateID, merchantID uuid.UUID, startDate, endDate string) ([]domain.WeekBucket, error)
	GetTransactionsForEstateByMonth(ctx context.Context, estateID uuid.UUID, startDate, endDate string) ([]domain.MonthBucket, error)
	GetTransactionsForMerchantByMonth(ctx context.Context, estateID, merchantID uuid.UUID, startDate, endDate string) ([]domain.MonthBucket, error)
	GetTransactionsForEstateByMerchant(ctx context.Context, estateID uuid.UUID, startDate, endDate string, opts portsrepo.RankingOptions) ([]domain.MerchantBucket, error)
	GetTransactionsForEstateByOperator(ctx context.Context, estateID uuid.UUID, startDate, endDate string, opts portsrepo.RankingOptions) ([]domain.OperatorBucket, error)

	GetSettlementForEstateByDate(ctx context.Context, estateID uuid.UUID, startDate, endDate string) ([]domain.DateBucket, error)
	GetSettlementForMerchantByDate(ctx context.Context, estateID, merchantID uuid.UUID, startDate, endDate string) ([]domain.DateBucket, error)
	GetSettlementForEstateByWeek(ctx context.Context, estateID uuid.UUID, startDate, endDate string) ([]domain.WeekBucket, error)
	GetSettlementForMerchantByWeek(ctx context.Context, estateID, merchantID uuid.UUID, startDate, endDate string) ([]domain.WeekBucket, error)
	GetSettlementForEstateByMonth(ctx context.Context, estateID uuid.UUID, startDate, endDate string) ([]domain.MonthBucket, error)
	GetSettlementForMerchantByMonth(ctx context.Context, estateID, merchantID uuid.UUID, startDate, endDate string) ([]domain.MonthBucket, error)
	GetSettlementForEstateByMerchant(ctx context.Context, estateID uuid.UUID, startDate, endDate string, opts portsrepo.RankingOptions) ([]domain.MerchantBucket, error)
	GetSettlementForEstateByOperator(ctx context.Context, estateID uuid.UUID, startDate, endDate string, opts portsrepo.RankingOptions) ([]domain.OperatorBucket, error)
}
