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

// MerchantProjector projects merchant-family events onto the read model,
// including the append-only balance ledger.
type MerchantProjector struct {
	BaseService
	merchantRepo portsrepo.MerchantRepository
}

// NewMerchantProjector creates a projector over the merchant repository.
func NewMerchantProjector(merchantRepo portsrepo.MerchantRepository) *MerchantProjector {
	return &MerchantProjector{merchantRepo: merchantRepo}
}

var _ portssvc.EventProjector = (*MerchantProjector)(nil)

// Apply dispatches on the event's concrete type.
func (p *MerchantProjector) Apply(ctx context.Context, ev events.DomainEvent) error {
	switch e := ev.(type) {
	case *events.MerchantCreated:
		return p.handleMerchantCreated(ctx, e)
	case *events.MerchantReferenceAllocated:
		return p.merchantRepo.UpdateMerchantReference(ctx, e.EstateID, e.MerchantID, e.Reference)
	case *events.AddressAddedToMerchant:
		return p.skipDuplicate(ctx, "merchant address", p.merchantRepo.InsertMerchantAddress(ctx, domain.MerchantAddress{
			MerchantID:   e.MerchantID,
			AddressID:    e.AddressID,
			EstateID:     e.EstateID,
			AddressLine1: e.AddressLine1,
			AddressLine2: e.AddressLine2,
			Town:         e.Town,
			Region:       e.Region,
			PostalCode:   e.PostalCode,
			Country:      e.Country,
		}))
	case *events.ContactAddedToMerchant:
		return p.skipDuplicate(ctx, "merchant contact", p.merchantRepo.InsertMerchantContact(ctx, domain.MerchantContact{
			MerchantID:   e.MerchantID,
			ContactID:    e.ContactID,
			EstateID:     e.EstateID,
			Name:         e.ContactName,
			EmailAddress: e.EmailAddress,
			PhoneNumber:  e.PhoneNumber,
		}))
	case *events.DeviceAddedToMerchant:
		return p.skipDuplicate(ctx, "merchant device", p.merchantRepo.InsertMerchantDevice(ctx, domain.MerchantDevice{
			MerchantID:       e.MerchantID,
			DeviceID:         e.DeviceID,
			EstateID:         e.EstateID,
			DeviceIdentifier: e.DeviceIdentifier,
		}))
	case *events.OperatorAssignedToMerchant:
		return p.skipDuplicate(ctx, "merchant operator", p.merchantRepo.InsertMerchantOperator(ctx, domain.MerchantOperator{
			MerchantID:     e.MerchantID,
			OperatorID:     e.OperatorID,
			EstateID:       e.EstateID,
			Name:           e.Name,
			MerchantNumber: e.MerchantNumber,
			TerminalNumber: e.TerminalNumber,
		}))
	case *events.SecurityUserAddedToMerchant:
		return p.skipDuplicate(ctx, "merchant security user", p.merchantRepo.InsertMerchantSecurityUser(ctx, domain.MerchantSecurityUser{
			SecurityUserID: e.SecurityUserID,
			MerchantID:     e.MerchantID,
			EstateID:       e.EstateID,
			EmailAddress:   e.EmailAddress,
		}))
	case *events.SettlementScheduleChanged:
		return p.merchantRepo.UpdateSettlementSchedule(ctx, e.EstateID, e.MerchantID, domain.SettlementSchedule(e.SettlementSchedule))
	case *events.StatementGenerated:
		return p.merchantRepo.UpdateLastStatementGenerated(ctx, e.EstateID, e.MerchantID, e.GeneratedDate)
	case *events.MerchantBalanceChanged:
		return p.handleBalanceChanged(ctx, e)
	default:
		return fmt.Errorf("%w: %s", apperrors.ErrUnhandledEventType, ev.EventType())
	}
}

func (p *MerchantProjector) handleMerchantCreated(ctx context.Context, e *events.MerchantCreated) error {
	err := p.merchantRepo.InsertMerchant(ctx, domain.Merchant{
		EstateID:   e.EstateID,
		MerchantID: e.MerchantID,
		Name:       e.MerchantName,
		CreatedAt:  e.CreatedAt,
	})
	if !errors.Is(err, apperrors.ErrDuplicateEvent) {
		return err
	}

	existing, getErr := p.merchantRepo.GetMerchant(ctx, e.EstateID, e.MerchantID)
	if getErr != nil {
		return getErr
	}
	if existing.Name == e.MerchantName {
		p.LogDebug(ctx, "Merchant created event redelivered, skipping", slog.String("merchant_id", e.MerchantID.String()))
		return nil
	}
	return fmt.Errorf("%w: merchant %s exists with name %q, event carries %q",
		apperrors.ErrDataIntegrity, e.MerchantID, existing.Name, e.MerchantName)
}

// handleBalanceChanged appends to the ledger. The event id is the row key, so
// a redelivered event collides and is dropped without comparison: a ledger
// row is immutable by construction.
func (p *MerchantProjector) handleBalanceChanged(ctx context.Context, e *events.MerchantBalanceChanged) error {
	err := p.merchantRepo.InsertBalanceHistory(ctx, domain.MerchantBalanceHistory{
		EventID:          e.EventID,
		EstateID:         e.EstateID,
		MerchantID:       e.MerchantID,
		TransactionID:    e.TransactionID,
		AvailableBalance: e.AvailableBalance,
		Balance:          e.Balance,
		ChangeAmount:     e.ChangeAmount,
		Reference:        e.Reference,
		EntryDateTime:    e.EntryDateTime,
	})
	if errors.Is(err, apperrors.ErrDuplicateEvent) {
		p.LogDebug(ctx, "Balance changed event redelivered, skipping", slog.String("event_id", e.EventID.String()))
		return nil
	}
	return err
}

func (p *MerchantProjector) skipDuplicate(ctx context.Context, what string, err error) error {
	if errors.Is(err, apperrors.ErrDuplicateEvent) {
		p.LogDebug(ctx, "Event redelivered, skipping", slog.String("entity", what))
		return nil
	}
	return err
}
