package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/txnsuite/estate-reporting/internal/apperrors"
	"github.com/txnsuite/estate-reporting/internal/core/domain"
	portsrepo "github.com/txnsuite/estate-reporting/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTransactionRepository creates a new repository for transaction
// lifecycle rows and their fees.
func NewPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{pool: pool}
}

func (r *PgxTransactionRepository) InsertTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO txn (estate_id, merchant_id, transaction_id, device_identifier, transaction_date_time,
			transaction_type, transaction_reference, transaction_amount, operator_identifier)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		txn.EstateID,
		txn.MerchantID,
		txn.TransactionID,
		txn.DeviceIdentifier,
		txn.TransactionDateTime,
		txn.TransactionType,
		txn.TransactionReference,
		txn.TransactionAmount,
		txn.OperatorIdentifier,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxTransactionRepository) GetTransaction(ctx context.Context, estateID, merchantID, transactionID uuid.UUID) (*domain.Transaction, error) {
	query := `
		SELECT estate_id, merchant_id, transaction_id, device_identifier, transaction_date_time,
			transaction_type, transaction_reference, transaction_amount, operator_identifier,
			is_authorised, is_completed, response_code, response_message, authorisation_code,
			operator_response_code, operator_response_text, operator_authorisation, contract_id, product_id
		FROM txn
		WHERE estate_id = $1 AND merchant_id = $2 AND transaction_id = $3;
	`
	var txn domain.Transaction
	err := r.pool.QueryRow(ctx, query, estateID, merchantID, transactionID).Scan(
		&txn.EstateID,
		&txn.MerchantID,
		&txn.TransactionID,
		&txn.DeviceIdentifier,
		&txn.TransactionDateTime,
		&txn.TransactionType,
		&txn.TransactionReference,
		&txn.TransactionAmount,
		&txn.OperatorIdentifier,
		&txn.IsAuthorised,
		&txn.IsCompleted,
		&txn.ResponseCode,
		&txn.ResponseMessage,
		&txn.AuthorisationCode,
		&txn.OperatorResponseCode,
		&txn.OperatorResponseText,
		&txn.OperatorAuthorisation,
		&txn.ContractID,
		&txn.ProductID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateErr(err)
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) UpdateTransactionAmount(ctx context.Context, estateID, merchantID, transactionID uuid.UUID, amount decimal.Decimal) error {
	query := `
		UPDATE txn SET transaction_amount = $4
		WHERE estate_id = $1 AND merchant_id = $2 AND transaction_id = $3;
	`
	tag, err := r.pool.Exec(ctx, query, estateID, merchantID, transactionID, amount)
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("transaction %s", transactionID))
}

func (r *PgxTransactionRepository) UpdateTransactionAuthorisation(ctx context.Context, estateID, merchantID, transactionID uuid.UUID, isAuthorised bool, responseCode, responseMessage, authorisationCode string) error {
	query := `
		UPDATE txn SET is_authorised = $4, response_code = $5, response_message = $6, authorisation_code = $7
		WHERE estate_id = $1 AND merchant_id = $2 AND transaction_id = $3;
	`
	tag, err := r.pool.Exec(ctx, query, estateID, merchantID, transactionID,
		isAuthorised, responseCode, responseMessage, authorisationCode)
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("transaction %s", transactionID))
}

func (r *PgxTransactionRepository) UpdateTransactionOperatorAuthorisation(ctx context.Context, estateID, merchantID, transactionID uuid.UUID, isAuthorised bool, responseCode, responseMessage, authorisationCode, operatorResponseCode, operatorResponseText, operatorAuthorisation string) error {
	query := `
		UPDATE txn SET is_authorised = $4, response_code = $5, response_message = $6, authorisation_code = $7,
			operator_response_code = $8, operator_response_text = $9, operator_authorisation = $10
		WHERE estate_id = $1 AND merchant_id = $2 AND transaction_id = $3;
	`
	tag, err := r.pool.Exec(ctx, query, estateID, merchantID, transactionID,
		isAuthorised, responseCode, responseMessage, authorisationCode,
		operatorResponseCode, operatorResponseText, operatorAuthorisation)
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("transaction %s", transactionID))
}

func (r *PgxTransactionRepository) UpdateTransactionCompleted(ctx context.Context, estateID, merchantID, transactionID uuid.UUID, isAuthorised bool, responseCode string) error {
	query := `
		UPDATE txn SET is_completed = TRUE, is_authorised = $4, response_code = $5
		WHERE estate_id = $1 AND merchant_id = $2 AND transaction_id = $3;
	`
	tag, err := r.pool.Exec(ctx, query, estateID, merchantID, transactionID, isAuthorised, responseCode)
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("transaction %s", transactionID))
}

func (r *PgxTransactionRepository) UpdateTransactionProductDetails(ctx context.Context, estateID, merchantID, transactionID, contractID, productID uuid.UUID) error {
	query := `
		UPDATE txn SET contract_id = $4, product_id = $5
		WHERE estate_id = $1 AND merchant_id = $2 AND transaction_id = $3;
	`
	tag, err := r.pool.Exec(ctx, query, estateID, merchantID, transactionID, contractID, productID)
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("transaction %s", transactionID))
}

func (r *PgxTransactionRepository) UpsertTransactionFee(ctx context.Context, fee domain.TransactionFee) error {
	query := `
		INSERT INTO transaction_fee (transaction_id, fee_id, event_id, calculated_value, calculation_type, fee_type, fee_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (transaction_id, fee_id) DO UPDATE SET
			event_id = EXCLUDED.event_id,
			calculated_value = EXCLUDED.calculated_value,
			calculation_type = EXCLUDED.calculation_type,
			fee_type = EXCLUDED.fee_type,
			fee_value = EXCLUDED.fee_value;
	`
	_, err := r.pool.Exec(ctx, query,
		fee.TransactionID,
		fee.FeeID,
		fee.EventID,
		fee.CalculatedValue,
		fee.CalculationType,
		fee.FeeType,
		fee.FeeValue,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}
