package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/txnsuite/estate-reporting/internal/core/domain"
)

// SettlementRepository persists settlement days and the merchant fees queued
// into them.
type SettlementRepository interface {
	// UpsertSettlement writes the settlement row keyed by its derived id, so
	// repeated creation events for the same date converge on one row.
	UpsertSettlement(ctx context.Context, settlement domain.Settlement) error

	// InsertMerchantSettlementFee queues a fee for settlement. A key collision
	// yields apperrors.ErrDuplicateEvent.
	InsertMerchantSettlementFee(ctx context.Context, fee domain.MerchantSettlementFee) error

	// MarkFeeSettled flips is_settled to true for one queued fee. The flag
	// never reverts. Zero rows matched yields apperrors.ErrOutOfOrderEvent.
	MarkFeeSettled(ctx context.Context, estateID, settlementID, transactionID, feeID uuid.UUID) error

	// MarkSettlementCompleted closes the settlement day.
	MarkSettlementCompleted(ctx context.Context, estateID, settlementID uuid.UUID) error
}
