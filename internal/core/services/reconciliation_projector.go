package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/txnsuite/estate-reporting/internal/apperrors"
	"github.com/txnsuite/estate-reporting/internal/core/domain"
	"github.com/txnsuite/estate-reporting/internal/core/events"
	portsrepo "github.com/txnsuite/estate-reporting/internal/core/ports/repositories"
	portssvc "github.com/txnsuite/estate-reporting/internal/core/ports/services"
)

// ReconciliationProjector projects reconciliation-family events onto the read
// model. The lifecycle mirrors transactions but rows are keyed by the
// reconciliation's transaction id alone.
type ReconciliationProjector struct {
	BaseService
	reconciliationRepo portsrepo.ReconciliationRepository
}

// NewReconciliationProjector creates a projector over the reconciliation repository.
func NewReconciliationProjector(reconciliationRepo portsrepo.ReconciliationRepository) *ReconciliationProjector {
	return &ReconciliationProjector{reconciliationRepo: reconciliationRepo}
}

var _ portssvc.EventProjector = (*ReconciliationProjector)(nil)

// Apply dispatches on the event's concrete type.
func (p *ReconciliationProjector) Apply(ctx context.Context, ev events.DomainEvent) error {
	switch e := ev.(type) {
	case *events.ReconciliationHasStarted:
		return p.handleStarted(ctx, e)
	case *events.OverallTotalsRecorded:
		return p.reconciliationRepo.UpdateReconciliationOverallTotals(ctx, e.TransactionID, e.TransactionCount, e.TransactionValue)
	case *events.ReconciliationHasBeenLocallyAuthorised:
		return p.reconciliationRepo.UpdateReconciliationAuthorisation(ctx, e.TransactionID, true, e.ResponseCode)
	case *events.ReconciliationHasBeenLocallyDeclined:
		return p.reconciliationRepo.UpdateReconciliationAuthorisation(ctx, e.TransactionID, false, e.ResponseCode)
	case *events.ReconciliationHasCompleted:
		return p.reconciliationRepo.UpdateReconciliationCompleted(ctx, e.TransactionID)
	default:
		return fmt.Errorf("%w: %s", apperrors.ErrUnhandledEventType, ev.EventType())
	}
}

func (p *ReconciliationProjector) handleStarted(ctx context.Context, e *events.ReconciliationHasStarted) error {
	err := p.reconciliationRepo.InsertReconciliation(ctx, domain.Reconciliation{
		TransactionID:       e.TransactionID,
		EstateID:            e.EstateID,
		MerchantID:          e.MerchantID,
		TransactionDateTime: e.TransactionDateTime,
	})
	if errors.Is(err, apperrors.ErrDuplicateEvent) {
		p.LogDebug(ctx, "Reconciliation started event redelivered, skipping", slog.String("transaction_id", e.TransactionID.String()))
		return nil
	}
	return err
}
