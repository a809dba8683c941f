package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/txnsuite/estate-reporting/internal/core/domain"
)

// VoucherRepository persists voucher rows. The three lifecycle updates each
// touch only their own flag and timestamp pair.
type VoucherRepository interface {
	// InsertVoucher creates the row on the generated event. A key collision
	// yields apperrors.ErrDuplicateEvent.
	InsertVoucher(ctx context.Context, voucher domain.Voucher) error

	// GetVoucher fetches a voucher by id; apperrors.ErrNotFound when missing.
	GetVoucher(ctx context.Context, voucherID uuid.UUID) (*domain.Voucher, error)

	// MarkVoucherIssued sets the issued flag, timestamp and recipient without
	// touching the generated or redeemed fields.
	MarkVoucherIssued(ctx context.Context, voucherID uuid.UUID, issuedAt time.Time, recipientEmail, recipientMobile string) error

	// MarkVoucherRedeemed sets the redeemed flag and timestamp only.
	MarkVoucherRedeemed(ctx context.Context, voucherID uuid.UUID, redeemedAt time.Time) error
}
