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

// EstateProjector projects estate-family events onto the read model.
type EstateProjector struct {
	BaseService
	estateRepo portsrepo.EstateRepository
}

// NewEstateProjector creates a projector over the estate repository.
func NewEstateProjector(estateRepo portsrepo.EstateRepository) *EstateProjector {
	return &EstateProjector{estateRepo: estateRepo}
}

var _ portssvc.EventProjector = (*EstateProjector)(nil)

// Apply dispatches on the event's concrete type.
func (p *EstateProjector) Apply(ctx context.Context, ev events.DomainEvent) error {
	switch e := ev.(type) {
	case *events.EstateCreated:
		return p.handleEstateCreated(ctx, e)
	case *events.EstateReferenceAllocated:
		return p.estateRepo.UpdateEstateReference(ctx, e.EstateID, e.Reference)
	case *events.OperatorAddedToEstate:
		return p.handleOperatorAdded(ctx, e)
	case *events.SecurityUserAddedToEstate:
		return p.handleSecurityUserAdded(ctx, e)
	default:
		return fmt.Errorf("%w: %s", apperrors.ErrUnhandledEventType, ev.EventType())
	}
}

func (p *EstateProjector) handleEstateCreated(ctx context.Context, e *events.EstateCreated) error {
	err := p.estateRepo.InsertEstate(ctx, domain.Estate{
		EstateID:  e.EstateID,
		Name:      e.EstateName,
		CreatedAt: e.CreatedAt,
	})
	if !errors.Is(err, apperrors.ErrDuplicateEvent) {
		return err
	}

	// Redelivery: a row already exists. Identical payload is a no-op,
	// anything else is a conflict to surface.
	existing, getErr := p.estateRepo.GetEstate(ctx, e.EstateID)
	if getErr != nil {
		return getErr
	}
	if existing.Name == e.EstateName {
		p.LogDebug(ctx, "Estate created event redelivered, skipping", slog.String("estate_id", e.EstateID.String()))
		return nil
	}
	return fmt.Errorf("%w: estate %s exists with name %q, event carries %q",
		apperrors.ErrDataIntegrity, e.EstateID, existing.Name, e.EstateName)
}

func (p *EstateProjector) handleOperatorAdded(ctx context.Context, e *events.OperatorAddedToEstate) error {
	err := p.estateRepo.InsertEstateOperator(ctx, domain.EstateOperator{
		EstateID:                    e.EstateID,
		OperatorID:                  e.OperatorID,
		Name:                        e.Name,
		RequireCustomMerchantNumber: e.RequireCustomMerchantNumber,
		RequireCustomTerminalNumber: e.RequireCustomTerminalNumber,
	})
	if errors.Is(err, apperrors.ErrDuplicateEvent) {
		p.LogDebug(ctx, "Estate operator event redelivered, skipping", slog.String("operator_id", e.OperatorID.String()))
		return nil
	}
	return err
}

func (p *EstateProjector) handleSecurityUserAdded(ctx context.Context, e *events.SecurityUserAddedToEstate) error {
	err := p.estateRepo.InsertEstateSecurityUser(ctx, domain.EstateSecurityUser{
		SecurityUserID: e.SecurityUserID,
		EstateID:       e.EstateID,
		EmailAddress:   e.EmailAddress,
	})
	if errors.Is(err, apperrors.ErrDuplicateEvent) {
		p.LogDebug(ctx, "Estate security user event redelivered, skipping", slog.String("security_user_id", e.SecurityUserID.String()))
		return nil
	}
	return err
}
