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
	"github.com/txnsuite/estate-reporting/internal/utils/identifiers"
)

// SettlementProjector projects settlement-family events onto the read model.
// Settlement ids are derived from (estate, date), which is what makes
// repeated settlement creation idempotent.
type SettlementProjector struct {
	BaseService
	settlementRepo portsrepo.SettlementRepository
}

// NewSettlementProjector creates a projector over the settlement repository.
func NewSettlementProjector(settlementRepo portsrepo.SettlementRepository) *SettlementProjector {
	return &SettlementProjector{settlementRepo: settlementRepo}
}

var _ portssvc.EventProjector = (*SettlementProjector)(nil)

// Apply dispatches on the event's concrete type.
func (p *SettlementProjector) Apply(ctx context.Context, ev events.DomainEvent) error {
	switch e := ev.(type) {
	case *events.SettlementCreatedForDate:
		return p.settlementRepo.UpsertSettlement(ctx, domain.Settlement{
			EstateID:       e.EstateID,
			SettlementID:   identifiers.DeriveSettlementID(e.EstateID, e.SettlementDate),
			SettlementDate: e.SettlementDate,
		})
	case *events.MerchantFeeAddedPendingSettlement:
		return p.handleFeePending(ctx, e)
	case *events.MerchantFeeSettled:
		return p.settlementRepo.MarkFeeSettled(ctx, e.EstateID, e.SettlementID, e.TransactionID, e.FeeID)
	case *events.SettlementCompleted:
		return p.settlementRepo.MarkSettlementCompleted(ctx, e.EstateID, e.SettlementID)
	default:
		return fmt.Errorf("%w: %s", apperrors.ErrUnhandledEventType, ev.EventType())
	}
}

func (p *SettlementProjector) handleFeePending(ctx context.Context, e *events.MerchantFeeAddedPendingSettlement) error {
	settlementID := identifiers.DeriveSettlementID(e.EstateID, e.SettlementDate)

	err := p.settlementRepo.InsertMerchantSettlementFee(ctx, domain.MerchantSettlementFee{
		EstateID:              e.EstateID,
		SettlementID:          settlementID,
		TransactionID:         e.TransactionID,
		FeeID:                 e.FeeID,
		MerchantID:            e.MerchantID,
		CalculatedValue:       e.CalculatedValue,
		FeeValue:              e.FeeValue,
		FeeCalculatedDateTime: e.FeeCalculatedDateTime,
	})
	if errors.Is(err, apperrors.ErrDuplicateEvent) {
		p.LogDebug(ctx, "Pending settlement fee event redelivered, skipping",
			slog.String("settlement_id", settlementID.String()),
			slog.String("fee_id", e.FeeID.String()))
		return nil
	}
	return err
}
