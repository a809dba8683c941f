package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/txnsuite/estate-reporting/internal/apperrors"
	"github.com/txnsuite/estate-reporting/internal/core/domain"
	portsrepo "github.com/txnsuite/estate-reporting/internal/core/ports/repositories"
)

type PgxVoucherRepository struct {
	pool *pgxpool.Pool
}

// NewPgxVoucherRepository creates a new repository for voucher rows.
func NewPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepository {
	return &PgxVoucherRepository{pool: pool}
}

func (r *PgxVoucherRepository) InsertVoucher(ctx context.Context, voucher domain.Voucher) error {
	query := `
		INSERT INTO voucher (voucher_id, estate_id, transaction_id, voucher_code, operator_identifier, value,
			is_generated, generate_date_time, expiry_date_time)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		voucher.VoucherID,
		voucher.EstateID,
		voucher.TransactionID,
		voucher.VoucherCode,
		voucher.OperatorIdentifier,
		voucher.Value,
		voucher.GenerateDateTime,
		voucher.ExpiryDateTime,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxVoucherRepository) GetVoucher(ctx context.Context, voucherID uuid.UUID) (*domain.Voucher, error) {
	query := `
		SELECT voucher_id, estate_id, transaction_id, voucher_code, operator_identifier, value,
			is_generated, is_issued, is_redeemed,
			generate_date_time, issued_date_time, redeemed_date_time, expiry_date_time,
			recipient_email, recipient_mobile
		FROM voucher
		WHERE voucher_id = $1;
	`
	var voucher domain.Voucher
	err := r.pool.QueryRow(ctx, query, voucherID).Scan(
		&voucher.VoucherID,
		&voucher.EstateID,
		&voucher.TransactionID,
		&voucher.VoucherCode,
		&voucher.OperatorIdentifier,
		&voucher.Value,
		&voucher.IsGenerated,
		&voucher.IsIssued,
		&voucher.IsRedeemed,
		&voucher.GenerateDateTime,
		&voucher.IssuedDateTime,
		&voucher.RedeemedDateTime,
		&voucher.ExpiryDateTime,
		&voucher.RecipientEmail,
		&voucher.RecipientMobile,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateErr(err)
	}
	return &voucher, nil
}

func (r *PgxVoucherRepository) MarkVoucherIssued(ctx context.Context, voucherID uuid.UUID, issuedAt time.Time, recipientEmail, recipientMobile string) error {
	query := `
		UPDATE voucher SET is_issued = TRUE, issued_date_time = $2, recipient_email = $3, recipient_mobile = $4
		WHERE voucher_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, voucherID, issuedAt, recipientEmail, recipientMobile)
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("voucher %s", voucherID))
}

func (r *PgxVoucherRepository) MarkVoucherRedeemed(ctx context.Context, voucherID uuid.UUID, redeemedAt time.Time) error {
	query := `
		UPDATE voucher SET is_redeemed = TRUE, redeemed_date_time = $2
		WHERE voucher_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, voucherID, redeemedAt)
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("voucher %s", voucherID))
}
