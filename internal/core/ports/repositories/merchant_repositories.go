package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/txnsuite/estate-reporting/internal/core/domain"
)

// MerchantRepository persists the merchant-level read model, including the
// append-only balance ledger.
type MerchantRepository interface {
	// InsertMerchant creates the merchant row. A key collision yields
	// apperrors.ErrDuplicateEvent.
	InsertMerchant(ctx context.Context, merchant domain.Merchant) error

	// GetMerchant fetches a merchant by key; apperrors.ErrNotFound when missing.
	GetMerchant(ctx context.Context, estateID, merchantID uuid.UUID) (*domain.Merchant, error)

	// UpdateMerchantReference backfills the merchant's external reference.
	UpdateMerchantReference(ctx context.Context, estateID, merchantID uuid.UUID, reference string) error

	// UpdateSettlementSchedule changes the merchant's settlement schedule.
	UpdateSettlementSchedule(ctx context.Context, estateID, merchantID uuid.UUID, schedule domain.SettlementSchedule) error

	// UpdateLastStatementGenerated records when a statement was last produced.
	UpdateLastStatementGenerated(ctx context.Context, estateID, merchantID uuid.UUID, generated time.Time) error

	// InsertMerchantAddress records a merchant address.
	InsertMerchantAddress(ctx context.Context, address domain.MerchantAddress) error

	// InsertMerchantContact records a merchant contact.
	InsertMerchantContact(ctx context.Context, contact domain.MerchantContact) error

	// InsertMerchantDevice registers a payment device.
	InsertMerchantDevice(ctx context.Context, device domain.MerchantDevice) error

	// InsertMerchantOperator assigns an operator to the merchant.
	InsertMerchantOperator(ctx context.Context, operator domain.MerchantOperator) error

	// InsertMerchantSecurityUser records a login associated with the merchant.
	InsertMerchantSecurityUser(ctx context.Context, user domain.MerchantSecurityUser) error

	// InsertBalanceHistory appends one ledger entry keyed by event id.
	// Redelivery of the same event yields apperrors.ErrDuplicateEvent.
	InsertBalanceHistory(ctx context.Context, entry domain.MerchantBalanceHistory) error
}
