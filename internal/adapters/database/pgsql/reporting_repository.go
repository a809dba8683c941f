package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/txnsuite/estate-reporting/internal/core/domain"
	portsrepo "github.com/txnsuite/estate-reporting/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// NewPgxReportingRepository creates a new repository for the aggregation queries.
func NewPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

// saleFilter restricts transaction aggregates to authorised, completed Sale
// transactions. Settlement aggregates carry no such filter.
const saleFilter = `t.is_authorised AND t.is_completed AND t.transaction_type = 'Sale'`

// merchantFilter makes the merchant parameter optional: the nil uuid matches
// every merchant in the estate.
const merchantFilter = `($2 = '00000000-0000-0000-0000-000000000000'::uuid OR t.merchant_id = $2)`

// rankingClauses builds the ORDER BY and LIMIT for a ranked query. Column
// names come from the fixed aliases in the queries below, never from input.
// When either sort choice is NotSet the ordering falls back to the bucket
// identifier ascending; the identifier is always the secondary sort so equal
// aggregates rank deterministically.
func rankingClauses(opts portsrepo.RankingOptions, identifierCol string) string {
	var col string
	switch opts.SortField {
	case domain.SortFieldCount:
		col = "bucket_count"
	case domain.SortFieldValue:
		col = "bucket_value"
	}
	var dir string
	switch opts.SortDirection {
	case domain.SortDirectionAscending:
		dir = "ASC"
	case domain.SortDirectionDescending:
		dir = "DESC"
	}

	clause := "ORDER BY " + identifierCol + " ASC"
	if col != "" && dir != "" {
		clause = "ORDER BY " + col + " " + dir + ", " + identifierCol + " ASC"
	}
	if opts.RecordCount > 0 {
		clause += fmt.Sprintf(" LIMIT %d", opts.RecordCount)
	}
	return clause
}

// dayAfter converts the inclusive end date into an exclusive upper bound.
func dayAfter(end time.Time) time.Time {
	return end.AddDate(0, 0, 1)
}

func collectBuckets[T any](rows pgx.Rows, scan func(pgx.CollectableRow) (T, error)) ([]T, error) {
	buckets, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, translateErr(err)
	}
	if buckets == nil {
		buckets = []T{}
	}
	return buckets, nil
}

func (r *PgxReportingRepository) GetTransactionsByDate(ctx context.Context, estateID, merchantID uuid.UUID, start, end time.Time) ([]domain.DateBucket, error) {
	query := `
		SELECT to_char(t.transaction_date_time::date, 'YYYY-MM-DD') AS bucket_date,
			COUNT(*)::int AS bucket_count,
			COALESCE(SUM(t.transaction_amount), 0) AS bucket_value
		FROM txn t
		WHERE t.estate_id = $1 AND ` + merchantFilter + `
			AND t.transaction_date_time >= $3 AND t.transaction_date_time < $4
			AND ` + saleFilter + `
		GROUP BY t.transaction_date_time::date
		ORDER BY bucket_date;
	`
	rows, err := r.pool.Query(ctx, query, estateID, merchantID, start, dayAfter(end))
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	return collectBuckets(rows, func(row pgx.CollectableRow) (domain.DateBucket, error) {
		var bucket domain.DateBucket
		err := row.Scan(&bucket.Date, &bucket.Count, &bucket.Value)
		return bucket, err
	})
}

func (r *PgxReportingRepository) GetTransactionsByWeek(ctx context.Context, estateID, merchantID uuid.UUID, start, end time.Time) ([]domain.WeekBucket, error) {
	query := `
		SELECT EXTRACT(week FROM t.transaction_date_time)::int AS bucket_week,
			EXTRACT(isoyear FROM t.transaction_date_time)::int AS bucket_year,
			COUNT(*)::int AS bucket_count,
			COALESCE(SUM(t.transaction_amount), 0) AS bucket_value
		FROM txn t
		WHERE t.estate_id = $1 AND ` + merchantFilter + `
			AND t.transaction_date_time >= $3 AND t.transaction_date_time < $4
			AND ` + saleFilter + `
		GROUP BY bucket_week, bucket_year
		ORDER BY bucket_year, bucket_week;
	`
	rows, err := r.pool.Query(ctx, query, estateID, merchantID, start, dayAfter(end))
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	return collectBuckets(rows, func(row pgx.CollectableRow) (domain.WeekBucket, error) {
		var bucket domain.WeekBucket
		err := row.Scan(&bucket.WeekNumber, &bucket.Year, &bucket.Count, &bucket.Value)
		return bucket, err
	})
}

func (r *PgxReportingRepository) GetTransactionsByMonth(ctx context.Context, estateID, merchantID uuid.UUID, start, end time.Time) ([]domain.MonthBucket, error) {
	query := `
		SELECT EXTRACT(month FROM t.transaction_date_time)::int AS bucket_month,
			EXTRACT(year FROM t.transaction_date_time)::int AS bucket_year,
			COUNT(*)::int AS bucket_count,
			COALESCE(SUM(t.transaction_amount), 0) AS bucket_value
		FROM txn t
		WHERE t.estate_id = $1 AND ` + merchantFilter + `
			AND t.transaction_date_time >= $3 AND t.transaction_date_time < $4
			AND ` + saleFilter + `
		GROUP BY bucket_month, bucket_year
		ORDER BY bucket_year, bucket_month;
	`
	rows, err := r.pool.Query(ctx, query, estateID, merchantID, start, dayAfter(end))
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	return collectBuckets(rows, func(row pgx.CollectableRow) (domain.MonthBucket, error) {
		var bucket domain.MonthBucket
		err := row.Scan(&bucket.MonthNumber, &bucket.Year, &bucket.Count, &bucket.Value)
		return bucket, err
	})
}

func (r *PgxReportingRepository) GetTransactionsByMerchant(ctx context.Context, estateID uuid.UUID, start, end time.Time, opts portsrepo.RankingOptions) ([]domain.MerchantBucket, error) {
	query := `
		SELECT t.merchant_id::text AS bucket_merchant,
			m.name,
			COUNT(*)::int AS bucket_count,
			COALESCE(SUM(t.transaction_amount), 0) AS bucket_value
		FROM txn t
		JOIN merchant m ON m.estate_id = t.estate_id AND m.merchant_id = t.merchant_id
		WHERE t.estate_id = $1
			AND t.transaction_date_time >= $2 AND t.transaction_date_time < $3
			AND ` + saleFilter + `
		GROUP BY t.merchant_id, m.name
		` + rankingClauses(opts, "bucket_merchant") + `;
	`
	rows, err := r.pool.Query(ctx, query, estateID, start, dayAfter(end))
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	return collectBuckets(rows, func(row pgx.CollectableRow) (domain.MerchantBucket, error) {
		var bucket domain.MerchantBucket
		err := row.Scan(&bucket.MerchantID, &bucket.MerchantName, &bucket.Count, &bucket.Value)
		return bucket, err
	})
}

func (r *PgxReportingRepository) GetTransactionsByOperator(ctx context.Context, estateID uuid.UUID, start, end time.Time, opts portsrepo.RankingOptions) ([]domain.OperatorBucket, error) {
	query := `
		SELECT t.operator_identifier AS bucket_operator,
			COUNT(*)::int AS bucket_count,
			COALESCE(SUM(t.transaction_amount), 0) AS bucket_value
		FROM txn t
		WHERE t.estate_id = $1
			AND t.transaction_date_time >= $2 AND t.transaction_date_time < $3
			AND ` + saleFilter + `
		GROUP BY t.operator_identifier
		` + rankingClauses(opts, "bucket_operator") + `;
	`
	rows, err := r.pool.Query(ctx, query, estateID, start, dayAfter(end))
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	return collectBuckets(rows, func(row pgx.CollectableRow) (domain.OperatorBucket, error) {
		var bucket domain.OperatorBucket
		err := row.Scan(&bucket.OperatorIdentifier, &bucket.Count, &bucket.Value)
		return bucket, err
	})
}

func (r *PgxReportingRepository) GetSettlementByDate(ctx context.Context, estateID, merchantID uuid.UUID, start, end time.Time) ([]domain.DateBucket, error) {
	query := `
		SELECT to_char(s.settlement_date::date, 'YYYY-MM-DD') AS bucket_date,
			COUNT(*)::int AS bucket_count,
			COALESCE(SUM(t.calculated_value), 0) AS bucket_value
		FROM merchant_settlement_fee t
		JOIN settlement s ON s.estate_id = t.estate_id AND s.settlement_id = t.settlement_id
		WHERE t.estate_id = $1 AND ` + merchantFilter + `
			AND s.settlement_date >= $3 AND s.settlement_date < $4
		GROUP BY s.settlement_date::date
		ORDER BY bucket_date;
	`
	rows, err := r.pool.Query(ctx, query, estateID, merchantID, start, dayAfter(end))
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	return collectBuckets(rows, func(row pgx.CollectableRow) (domain.DateBucket, error) {
		var bucket domain.DateBucket
		err := row.Scan(&bucket.Date, &bucket.Count, &bucket.Value)
		return bucket, err
	})
}

func (r *PgxReportingRepository) GetSettlementByWeek(ctx context.Context, estateID, merchantID uuid.UUID, start, end time.Time) ([]domain.WeekBucket, error) {
	query := `
		SELECT EXTRACT(week FROM s.settlement_date)::int AS bucket_week,
			EXTRACT(isoyear FROM s.settlement_date)::int AS bucket_year,
			COUNT(*)::int AS bucket_count,
			COALESCE(SUM(t.calculated_value), 0) AS bucket_value
		FROM merchant_settlement_fee t
		JOIN settlement s ON s.estate_id = t.estate_id AND s.settlement_id = t.settlement_id
		WHERE t.estate_id = $1 AND ` + merchantFilter + `
			AND s.settlement_date >= $3 AND s.settlement_date < $4
		GROUP BY bucket_week, bucket_year
		ORDER BY bucket_year, bucket_week;
	`
	rows, err := r.pool.Query(ctx, query, estateID, merchantID, start, dayAfter(end))
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	return collectBuckets(rows, func(row pgx.CollectableRow) (domain.WeekBucket, error) {
		var bucket domain.WeekBucket
		err := row.Scan(&bucket.WeekNumber, &bucket.Year, &bucket.Count, &bucket.Value)
		return bucket, err
	})
}

func (r *PgxReportingRepository) GetSettlementByMonth(ctx context.Context, estateID, merchantID uuid.UUID, start, end time.Time) ([]domain.MonthBucket, error) {
	query := `
		SELECT EXTRACT(month FROM s.settlement_date)::int AS bucket_month,
			EXTRACT(year FROM s.settlement_date)::int AS bucket_year,
			COUNT(*)::int AS bucket_count,
			COALESCE(SUM(t.calculated_value), 0) AS bucket_value
		FROM merchant_settlement_fee t
		JOIN settlement s ON s.estate_id = t.estate_id AND s.settlement_id = t.settlement_id
		WHERE t.estate_id = $1 AND ` + merchantFilter + `
			AND s.settlement_date >= $3 AND s.settlement_date < $4
		GROUP BY bucket_month, bucket_year
		ORDER BY bucket_year, bucket_month;
	`
	rows, err := r.pool.Query(ctx, query, estateID, merchantID, start, dayAfter(end))
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	return collectBuckets(rows, func(row pgx.CollectableRow) (domain.MonthBucket, error) {
		var bucket domain.MonthBucket
		err := row.Scan(&bucket.MonthNumber, &bucket.Year, &bucket.Count, &bucket.Value)
		return bucket, err
	})
}

func (r *PgxReportingRepository) GetSettlementByMerchant(ctx context.Context, estateID uuid.UUID, start, end time.Time, opts portsrepo.RankingOptions) ([]domain.MerchantBucket, error) {
	query := `
		SELECT t.merchant_id::text AS bucket_merchant,
			m.name,
			COUNT(*)::int AS bucket_count,
			COALESCE(SUM(t.calculated_value), 0) AS bucket_value
		FROM merchant_settlement_fee t
		JOIN settlement s ON s.estate_id = t.estate_id AND s.settlement_id = t.settlement_id
		JOIN merchant m ON m.estate_id = t.estate_id AND m.merchant_id = t.merchant_id
		WHERE t.estate_id = $1
			AND s.settlement_date >= $2 AND s.settlement_date < $3
		GROUP BY t.merchant_id, m.name
		` + rankingClauses(opts, "bucket_merchant") + `;
	`
	rows, err := r.pool.Query(ctx, query, estateID, start, dayAfter(end))
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	return collectBuckets(rows, func(row pgx.CollectableRow) (domain.MerchantBucket, error) {
		var bucket domain.MerchantBucket
		err := row.Scan(&bucket.MerchantID, &bucket.MerchantName, &bucket.Count, &bucket.Value)
		return bucket, err
	})
}

func (r *PgxReportingRepository) GetSettlementByOperator(ctx context.Context, estateID uuid.UUID, start, end time.Time, opts portsrepo.RankingOptions) ([]domain.OperatorBucket, error) {
	query := `
		SELECT x.operator_identifier AS bucket_operator,
			COUNT(*)::int AS bucket_count,
			COALESCE(SUM(t.calculated_value), 0) AS bucket_value
		FROM merchant_settlement_fee t
		JOIN settlement s ON s.estate_id = t.estate_id AND s.settlement_id = t.settlement_id
		JOIN txn x ON x.estate_id = t.estate_id AND x.merchant_id = t.merchant_id AND x.transaction_id = t.transaction_id
		WHERE t.estate_id = $1
			AND s.settlement_date >= $2 AND s.settlement_date < $3
		GROUP BY x.operator_identifier
		` + rankingClauses(opts, "bucket_operator") + `;
	`
	rows, err := r.pool.Query(ctx, query, estateID, start, dayAfter(end))
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	return collectBuckets(rows, func(row pgx.CollectableRow) (domain.OperatorBucket, error) {
		var bucket domain.OperatorBucket
		err := row.Scan(&bucket.OperatorIdentifier, &bucket.Count, &bucket.Value)
		return bucket, err
	})
}
