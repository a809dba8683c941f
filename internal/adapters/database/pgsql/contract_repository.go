package pgsql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/txnsuite/estate-reporting/internal/core/domain"
	portsrepo "github.com/txnsuite/estate-reporting/internal/core/ports/repositories"
)

type PgxContractRepository struct {
	pool *pgxpool.Pool
}

// NewPgxContractRepository creates a new repository for contract rows.
func NewPgxContractRepository(pool *pgxpool.Pool) portsrepo.ContractRepository {
	return &PgxContractRepository{pool: pool}
}

func (r *PgxContractRepository) InsertContract(ctx context.Context, contract domain.Contract) error {
	query := `
		INSERT INTO contract (estate_id, contract_id, operator_id, description)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.pool.Exec(ctx, query,
		contract.EstateID,
		contract.ContractID,
		contract.OperatorID,
		contract.Description,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxContractRepository) InsertContractProduct(ctx context.Context, product domain.ContractProduct) error {
	query := `
		INSERT INTO contract_product (contract_id, product_id, product_name, display_text, value, product_type)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		product.ContractID,
		product.ProductID,
		product.ProductName,
		product.DisplayText,
		product.Value,
		int(product.ProductType),
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxContractRepository) InsertContractProductFee(ctx context.Context, fee domain.ContractProductTransactionFee) error {
	query := `
		INSERT INTO contract_product_transaction_fee (contract_id, product_id, fee_id, description, calculation_type, fee_type, value, is_enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		fee.ContractID,
		fee.ProductID,
		fee.FeeID,
		fee.Description,
		fee.CalculationType,
		fee.FeeType,
		fee.Value,
		fee.IsEnabled,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxContractRepository) DisableContractProductFee(ctx context.Context, contractID, productID, feeID uuid.UUID) error {
	query := `
		UPDATE contract_product_transaction_fee SET is_enabled = FALSE
		WHERE contract_id = $1 AND product_id = $2 AND fee_id = $3;
	`
	tag, err := r.pool.Exec(ctx, query, contractID, productID, feeID)
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("contract product fee %s", feeID))
}
