package pgsql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/txnsuite/estate-reporting/internal/core/domain"
	portsrepo "github.com/txnsuite/estate-reporting/internal/core/ports/repositories"
)

type PgxSettlementRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSettlementRepository creates a new repository for settlement days and
// queued merchant fees.
func NewPgxSettlementRepository(pool *pgxpool.Pool) portsrepo.SettlementRepository {
	return &PgxSettlementRepository{pool: pool}
}

func (r *PgxSettlementRepository) UpsertSettlement(ctx context.Context, settlement domain.Settlement) error {
	// The derived id makes repeated creation events land on the same row;
	// is_completed is deliberately left alone so a late duplicate of the
	// creation event cannot reopen a completed day.
	query := `
		INSERT INTO settlement (estate_id, settlement_id, settlement_date, is_completed)
		VALUES ($1, $2, $3, FALSE)
		ON CONFLICT (estate_id, settlement_id) DO NOTHING;
	`
	_, err := r.pool.Exec(ctx, query,
		settlement.EstateID,
		settlement.SettlementID,
		settlement.SettlementDate,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxSettlementRepository) InsertMerchantSettlementFee(ctx context.Context, fee domain.MerchantSettlementFee) error {
	query := `
		INSERT INTO merchant_settlement_fee (estate_id, settlement_id, transaction_id, fee_id, merchant_id,
			calculated_value, fee_value, fee_calculated_date_time, is_settled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE);
	`
	_, err := r.pool.Exec(ctx, query,
		fee.EstateID,
		fee.SettlementID,
		fee.TransactionID,
		fee.FeeID,
		fee.MerchantID,
		fee.CalculatedValue,
		fee.FeeValue,
		fee.FeeCalculatedDateTime,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxSettlementRepository) MarkFeeSettled(ctx context.Context, estateID, settlementID, transactionID, feeID uuid.UUID) error {
	query := `
		UPDATE merchant_settlement_fee SET is_settled = TRUE
		WHERE estate_id = $1 AND settlement_id = $2 AND transaction_id = $3 AND fee_id = $4;
	`
	tag, err := r.pool.Exec(ctx, query, estateID, settlementID, transactionID, feeID)
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("settlement fee %s", feeID))
}

func (r *PgxSettlementRepository) MarkSettlementCompleted(ctx context.Context, estateID, settlementID uuid.UUID) error {
	query := `
		UPDATE settlement SET is_completed = TRUE
		WHERE estate_id = $1 AND settlement_id = $2;
	`
	tag, err := r.pool.Exec(ctx, query, estateID, settlementID)
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("settlement %s", settlementID))
}
