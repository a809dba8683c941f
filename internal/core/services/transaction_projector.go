package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/txnsuite/estate-reporting/internal/apperrors"
	"github.com/txnsuite/estate-reporting/internal/core/domain"
	"github.com/txnsuite/estate-reporting/internal/core/events"
	portsrepo "github.com/txnsuite/estate-reporting/internal/core/ports/repositories"
	portssvc "github.com/txnsuite/estate-reporting/internal/core/ports/services"
	"github.com/txnsuite/estate-reporting/internal/utils/identifiers"
)

// Fee types as persisted on transaction_fee rows.
const (
	feeTypeMerchant        = 0
	feeTypeServiceProvider = 1
)

// amountMetadataKey is where the operator request metadata carries the
// transaction amount when the started event did not include one.
const amountMetadataKey = "Amount"

// TransactionProjector projects transaction-family events onto the read
// model. The started event creates the row; every later lifecycle event
// updates it in place and fails with ErrOutOfOrderEvent when the row is not
// there yet.
type TransactionProjector struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
}

// NewTransactionProjector creates a projector over the transaction repository.
func NewTransactionProjector(transactionRepo portsrepo.TransactionRepository) *TransactionProjector {
	return &TransactionProjector{transactionRepo: transactionRepo}
}

var _ portssvc.EventProjector = (*TransactionProjector)(nil)

// Apply dispatches on the event's concrete type.
func (p *TransactionProjector) Apply(ctx context.Context, ev events.DomainEvent) error {
	switch e := ev.(type) {
	case *events.TransactionHasStarted:
		return p.handleStarted(ctx, e)
	case *events.AdditionalRequestDataRecorded:
		return p.handleAdditionalRequestData(ctx, e)
	case *events.TransactionHasBeenLocallyAuthorised:
		return p.transactionRepo.UpdateTransactionAuthorisation(ctx, e.EstateID, e.MerchantID, e.TransactionID, true, e.ResponseCode, e.ResponseMessage, e.AuthorisationCode)
	case *events.TransactionHasBeenLocallyDeclined:
		return p.transactionRepo.UpdateTransactionAuthorisation(ctx, e.EstateID, e.MerchantID, e.TransactionID, false, e.ResponseCode, e.ResponseMessage, "")
	case *events.TransactionAuthorisedByOperator:
		return p.transactionRepo.UpdateTransactionOperatorAuthorisation(ctx, e.EstateID, e.MerchantID, e.TransactionID, true, e.ResponseCode, e.ResponseMessage, e.AuthorisationCode, e.OperatorResponseCode, e.OperatorResponseMessage, e.OperatorTransactionID)
	case *events.TransactionDeclinedByOperator:
		return p.transactionRepo.UpdateTransactionOperatorAuthorisation(ctx, e.EstateID, e.MerchantID, e.TransactionID, false, e.ResponseCode, e.ResponseMessage, "", e.OperatorResponseCode, e.OperatorResponseMessage, "")
	case *events.TransactionHasBeenCompleted:
		return p.transactionRepo.UpdateTransactionCompleted(ctx, e.EstateID, e.MerchantID, e.TransactionID, e.IsAuthorised, e.ResponseCode)
	case *events.ProductDetailsAddedToTransaction:
		return p.transactionRepo.UpdateTransactionProductDetails(ctx, e.EstateID, e.MerchantID, e.TransactionID, e.ContractID, e.ProductID)
	case *events.MerchantFeeAddedToTransaction:
		return p.upsertFee(ctx, e.FeeDetails, feeTypeMerchant)
	case *events.ServiceProviderFeeAddedToTransaction:
		return p.upsertFee(ctx, e.FeeDetails, feeTypeServiceProvider)
	default:
		return fmt.Errorf("%w: %s", apperrors.ErrUnhandledEventType, ev.EventType())
	}
}

func (p *TransactionProjector) handleStarted(ctx context.Context, e *events.TransactionHasStarted) error {
	err := p.transactionRepo.InsertTransaction(ctx, domain.Transaction{
		EstateID:             e.EstateID,
		MerchantID:           e.MerchantID,
		TransactionID:        e.TransactionID,
		DeviceIdentifier:     e.DeviceIdentifier,
		TransactionDateTime:  e.TransactionDateTime,
		TransactionType:      e.TransactionType,
		TransactionReference: e.TransactionReference,
		TransactionAmount:    e.TransactionAmount,
		OperatorIdentifier:   e.OperatorIdentifier,
	})
	if !errors.Is(err, apperrors.ErrDuplicateEvent) {
		return err
	}

	existing, getErr := p.transactionRepo.GetTransaction(ctx, e.EstateID, e.MerchantID, e.TransactionID)
	if getErr != nil {
		return getErr
	}
	if existing.DeviceIdentifier == e.DeviceIdentifier &&
		existing.TransactionType == e.TransactionType &&
		existing.TransactionDateTime.Equal(e.TransactionDateTime) {
		p.LogDebug(ctx, "Transaction started event redelivered, skipping", slog.String("transaction_id", e.TransactionID.String()))
		return nil
	}
	return fmt.Errorf("%w: transaction %s already exists with different start data",
		apperrors.ErrDataIntegrity, e.TransactionID)
}

// handleAdditionalRequestData picks the amount out of the operator request
// metadata. Transactions whose started event carried the amount already are
// left untouched, as is metadata without an amount at all.
func (p *TransactionProjector) handleAdditionalRequestData(ctx context.Context, e *events.AdditionalRequestDataRecorded) error {
	raw, ok := e.RequestData[amountMetadataKey]
	if !ok {
		return nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("%w: transaction %s request metadata amount %q is not numeric",
			apperrors.ErrDataIntegrity, e.TransactionID, raw)
	}
	return p.transactionRepo.UpdateTransactionAmount(ctx, e.EstateID, e.MerchantID, e.TransactionID, amount)
}

// upsertFee derives the fee event id from the fee content and writes the fee
// keyed by (transaction, fee). Redelivery derives the same id and lands on
// the same row.
func (p *TransactionProjector) upsertFee(ctx context.Context, fee events.FeeDetails, feeType int) error {
	eventID := identifiers.DeriveFeeEventID(fee.EstateID, fee.MerchantID, fee.TransactionID, fee.FeeID,
		fee.CalculatedValue, fee.FeeValue, fee.FeeCalculationType, fee.FeeCalculatedDateTime)

	return p.transactionRepo.UpsertTransactionFee(ctx, domain.TransactionFee{
		TransactionID:   fee.TransactionID,
		FeeID:           fee.FeeID,
		EventID:         eventID,
		CalculatedValue: fee.CalculatedValue,
		CalculationType: fee.FeeCalculationType,
		FeeType:         feeType,
		FeeValue:        fee.FeeValue,
	})
}
