package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/txnsuite/estate-reporting/internal/core/domain"
)

// RankingOptions carries the sort and truncation choices for ranked reports.
// A NotSet field or direction means the caller made no choice; the engine
// then orders by the bucket identifier ascending. RecordCount <= 0 means no
// truncation.
type RankingOptions struct {
	SortField     domain.SortField
	SortDirection domain.SortDirection
	RecordCount   int
}

// ReportingRepository answers the aggregation queries over the persisted
// facts. merchantID is uuid.Nil for estate-wide queries. Date ranges are
// inclusive on both ends. Transaction aggregates cover authorised, completed
// Sale transactions only; settlement aggregates cover every queued fee row.
type ReportingRepository interface {
	GetTransactionsByDate(ctx context.Context, estateID, merchantID uuid.UUID, start, end time.Time) ([]domain.DateBucket, error)
	GetTransactionsByWeek(ctx context.Context, estateID, merchantID uuid.UUID, start, end time.Time) ([]domain.WeekBucket, error)
	GetTransactionsByMonth(ctx context.Context, estateID, merchantID uuid.UUID, start, end time.Time) ([]domain.MonthBucket, error)
	GetTransactionsByMerchant(ctx context.Context, estateID uuid.UUID, start, end time.Time, opts RankingOptions) ([]domain.MerchantBucket, error)
	GetTransactionsByOperator(ctx context.Context, estateID uuid.UUID, start, end time.Time, opts RankingOptions) ([]domain.OperatorBucket, error)

	GetSettlementByDate(ctx context.Context, estateID, merchantID uuid.UUID, start, end time.Time) ([]domain.DateBucket, error)
	GetSettlementByWeek(ctx context.Context, estateID, merchantID uuid.UUID, start, end time.Time) ([]domain.WeekBucket, error)
	GetSettlementByMonth(ctx context.Context, estateID, merchantID uuid.UUID, start, end time.Time) ([]domain.MonthBucket, error)
	GetSettlementByMerchant(ctx context.Context, estateID uuid.UUID, start, end time.Time, opts RankingOptions) ([]domain.MerchantBucket, error)
	GetSettlementByOperator(ctx context.Context, estateID uuid.UUID, start, end time.Time, opts RankingOptions) ([]domain.OperatorBucket, error)
}
