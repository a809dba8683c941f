package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/txnsuite/estate-reporting/internal/core/domain"
)

// ContractRepository persists contract, product and fee-rule rows.
// Contract data is append-and-flag: nothing is ever deleted.
type ContractRepository interface {
	// InsertContract creates the contract row.
	InsertContract(ctx context.Context, contract domain.Contract) error

	// InsertContractProduct adds a product under a contract.
	InsertContractProduct(ctx context.Context, product domain.ContractProduct) error

	// InsertContractProductFee attaches a fee rule to a product.
	InsertContractProductFee(ctx context.Context, fee domain.ContractProductTransactionFee) error

	// DisableContractProductFee flags a fee rule as disabled.
	// Zero rows matched yields apperrors.ErrOutOfOrderEvent.
	DisableContractProductFee(ctx context.Context, contractID, productID, feeID uuid.UUID) error
}
