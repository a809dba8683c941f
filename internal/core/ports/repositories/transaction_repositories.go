package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/txnsuite/estate-reporting/internal/core/domain"
)

// TransactionRepository persists transaction lifecycle rows and their fees.
// Lifecycle update methods address an existing row by its composite key and
// yield apperrors.ErrOutOfOrderEvent when the row does not exist yet.
type TransactionRepository interface {
	// InsertTransaction creates the row on the started event. A key collision
	// yields apperrors.ErrDuplicateEvent.
	InsertTransaction(ctx context.Context, txn domain.Transaction) error

	// GetTransaction fetches a transaction by key; apperrors.ErrNotFound when missing.
	GetTransaction(ctx context.Context, estateID, merchantID, transactionID uuid.UUID) (*domain.Transaction, error)

	// UpdateTransactionAmount overwrites the amount recorded at start, used
	// when the amount only arrives in the additional-request-data event.
	UpdateTransactionAmount(ctx context.Context, estateID, merchantID, transactionID uuid.UUID, amount decimal.Decimal) error

	// UpdateTransactionAuthorisation applies a local authorisation or decline.
	UpdateTransactionAuthorisation(ctx context.Context, estateID, merchantID, transactionID uuid.UUID, isAuthorised bool, responseCode, responseMessage, authorisationCode string) error

	// UpdateTransactionOperatorAuthorisation applies an operator authorisation
	// or decline, including the operator's own response fields.
	UpdateTransactionOperatorAuthorisation(ctx context.Context, estateID, merchantID, transactionID uuid.UUID, isAuthorised bool, responseCode, responseMessage, authorisationCode, operatorResponseCode, operatorResponseText, operatorAuthorisation string) error

	// UpdateTransactionCompleted closes the lifecycle.
	UpdateTransactionCompleted(ctx context.Context, estateID, merchantID, transactionID uuid.UUID, isAuthorised bool, responseCode string) error

	// UpdateTransactionProductDetails links the contract product used.
	UpdateTransactionProductDetails(ctx context.Context, estateID, merchantID, transactionID, contractID, productID uuid.UUID) error

	// UpsertTransactionFee writes a fee row keyed by (transaction, fee).
	// Re-applying the same derived fee id replaces the row with identical
	// content, making duplicate delivery a no-op.
	UpsertTransactionFee(ctx context.Context, fee domain.TransactionFee) error
}
