package pgsql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/txnsuite/estate-reporting/internal/core/domain"
	portsrepo "github.com/txnsuite/estate-reporting/internal/core/ports/repositories"
)

type PgxReconciliationRepository struct {
	pool *pgxpool.Pool
}

// NewPgxReconciliationRepository creates a new repository for reconciliation rows.
func NewPgxReconciliationRepository(pool *pgxpool.Pool) portsrepo.ReconciliationRepository {
	return &PgxReconciliationRepository{pool: pool}
}

func (r *PgxReconciliationRepository) InsertReconciliation(ctx context.Context, recon domain.Reconciliation) error {
	query := `
		INSERT INTO reconciliation (transaction_id, estate_id, merchant_id, transaction_date_time)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.pool.Exec(ctx, query,
		recon.TransactionID,
		recon.EstateID,
		recon.MerchantID,
		recon.TransactionDateTime,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxReconciliationRepository) UpdateReconciliationOverallTotals(ctx context.Context, transactionID uuid.UUID, count int, value decimal.Decimal) error {
	query := `
		UPDATE reconciliation SET transaction_count = $2, transaction_value = $3
		WHERE transaction_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, transactionID, count, value)
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("reconciliation %s", transactionID))
}

func (r *PgxReconciliationRepository) UpdateReconciliationAuthorisation(ctx context.Context, transactionID uuid.UUID, isAuthorised bool, responseCode string) error {
	query := `
		UPDATE reconciliation SET is_authorised = $2, response_code = $3
		WHERE transaction_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, transactionID, isAuthorised, responseCode)
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("reconciliation %s", transactionID))
}

func (r *PgxReconciliationRepository) UpdateReconciliationCompleted(ctx context.Context, transactionID uuid.UUID) error {
	query := `
		UPDATE reconciliation SET is_completed = TRUE
		WHERE transaction_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, transactionID)
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("reconciliation %s", transactionID))
}
