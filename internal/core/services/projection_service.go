package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/txnsuite/estate-reporting/internal/apperrors"
	"github.com/txnsuite/estate-reporting/internal/core/events"
	portssvc "github.com/txnsuite/estate-reporting/internal/core/ports/services"
)

// projectionService routes decoded events to their family projector and
// applies the acknowledgement policy: duplicates and data conflicts are
// absorbed here, retryable failures are surfaced to the transport.
type projectionService struct {
	BaseService
	routes map[string]portssvc.EventProjector
}

// NewProjectionService builds the event-type routing table. The table is
// static: every known event type is listed here, so a type name the table
// does not contain is an unhandled event by definition, not a configuration
// failure.
func NewProjectionService(
	estate *EstateProjector,
	merchant *MerchantProjector,
	contract *ContractProjector,
	transaction *TransactionProjector,
	reconciliation *ReconciliationProjector,
	voucher *VoucherProjector,
	settlement *SettlementProjector,
	file *FileProjector,
) portssvc.ProjectionService {
	routes := map[string]portssvc.EventProjector{}
	add := func(projector portssvc.EventProjector, evs ...events.DomainEvent) {
		for _, ev := range evs {
			routes[ev.EventType()] = projector
		}
	}

	add(estate,
		&events.EstateCreated{},
		&events.EstateReferenceAllocated{},
		&events.OperatorAddedToEstate{},
		&events.SecurityUserAddedToEstate{},
	)
	add(merchant,
		&events.MerchantCreated{},
		&events.MerchantReferenceAllocated{},
		&events.AddressAddedToMerchant{},
		&events.ContactAddedToMerchant{},
		&events.DeviceAddedToMerchant{},
		&events.OperatorAssignedToMerchant{},
		&events.SecurityUserAddedToMerchant{},
		&events.SettlementScheduleChanged{},
		&events.StatementGenerated{},
		&events.MerchantBalanceChanged{},
	)
	add(contract,
		&events.ContractCreated{},
		&events.FixedValueProductAddedToContract{},
		&events.VariableValueProductAddedToContract{},
		&events.TransactionFeeForProductAddedToContract{},
		&events.TransactionFeeForProductDisabled{},
	)
	add(transaction,
		&events.TransactionHasStarted{},
		&events.AdditionalRequestDataRecorded{},
		&events.TransactionHasBeenLocallyAuthorised{},
		&events.TransactionHasBeenLocallyDeclined{},
		&events.TransactionAuthorisedByOperator{},
		&events.TransactionDeclinedByOperator{},
		&events.TransactionHasBeenCompleted{},
		&events.ProductDetailsAddedToTransaction{},
		&events.MerchantFeeAddedToTransaction{},
		&events.ServiceProviderFeeAddedToTransaction{},
	)
	add(reconciliation,
		&events.ReconciliationHasStarted{},
		&events.OverallTotalsRecorded{},
		&events.ReconciliationHasBeenLocallyAuthorised{},
		&events.ReconciliationHasBeenLocallyDeclined{},
		&events.ReconciliationHasCompleted{},
	)
	add(voucher,
		&events.VoucherGenerated{},
		&events.VoucherIssued{},
		&events.VoucherFullyRedeemed{},
	)
	add(settlement,
		&events.SettlementCreatedForDate{},
		&events.MerchantFeeAddedPendingSettlement{},
		&events.MerchantFeeSettled{},
		&events.SettlementCompleted{},
	)
	add(file,
		&events.ImportLogCreated{},
		&events.FileAddedToImportLog{},
		&events.FileCreated{},
		&events.FileLineAdded{},
		&events.FileLineProcessingSuccessful{},
		&events.FileLineProcessingFailed{},
		&events.FileLineProcessingIgnored{},
		&events.FileProcessingCompleted{},
	)

	return &projectionService{routes: routes}
}

var _ portssvc.ProjectionService = (*projectionService)(nil)

// Apply decodes and projects one delivered envelope.
//
// Returned errors are the transport's signal to redeliver: out-of-order
// events and store outages come back as errors, everything the projector can
// safely absorb (duplicates, unknown types, conflicting payloads) is logged
// and acknowledged.
func (s *projectionService) Apply(ctx context.Context, env events.Envelope) error {
	projector, ok := s.routes[env.EventType]
	if !ok {
		s.LogWarn(ctx, "Unhandled event type, skipping",
			slog.String("event_type", env.EventType),
			slog.String("event_id", env.EventID.String()))
		return nil
	}

	ev, err := events.Decode(env)
	if err != nil {
		// Malformed payload for a known type: a data error the transport
		// must not redeliver.
		s.LogError(ctx, err, "Failed to decode event payload",
			slog.String("event_type", env.EventType),
			slog.String("event_id", env.EventID.String()))
		return err
	}

	err = projector.Apply(ctx, ev)
	switch {
	case err == nil:
		s.LogDebug(ctx, "Event projected",
			slog.String("event_type", env.EventType),
			slog.String("event_id", env.EventID.String()))
		return nil
	case errors.Is(err, apperrors.ErrDataIntegrity):
		s.LogError(ctx, err, "Event conflicts with projected data, discarding",
			slog.String("event_type", env.EventType),
			slog.String("event_id", env.EventID.String()))
		return nil
	case errors.Is(err, apperrors.ErrUnhandledEventType):
		s.LogWarn(ctx, "Event type not handled by its family projector, skipping",
			slog.String("event_type", env.EventType))
		return nil
	default:
		return err
	}
}
