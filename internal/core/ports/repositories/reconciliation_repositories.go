package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/txnsuite/estate-reporting/internal/core/domain"
)

// ReconciliationRepository persists batch reconciliation lifecycle rows.
type ReconciliationRepository interface {
	// InsertReconciliation creates the row on the started event. A key
	// collision yields apperrors.ErrDuplicateEvent.
	InsertReconciliation(ctx context.Context, recon domain.Reconciliation) error

	// UpdateReconciliationOverallTotals records the batch count and value.
	// Zero rows matched yields apperrors.ErrOutOfOrderEvent.
	UpdateReconciliationOverallTotals(ctx context.Context, transactionID uuid.UUID, count int, value decimal.Decimal) error

	// UpdateReconciliationAuthorisation applies the verification outcome.
	UpdateReconciliationAuthorisation(ctx context.Context, transactionID uuid.UUID, isAuthorised bool, responseCode string) error

	// UpdateReconciliationCompleted closes the lifecycle.
	UpdateReconciliationCompleted(ctx context.Context, transactionID uuid.UUID) error
}
