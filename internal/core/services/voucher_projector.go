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

// VoucherProjector projects voucher-family events onto the read model. The
// generated, issued and redeemed events each own one flag and timestamp pair
// on the same row and never touch the other two.
type VoucherProjector struct {
	BaseService
	voucherRepo portsrepo.VoucherRepository
}

// NewVoucherProjector creates a projector over the voucher repository.
func NewVoucherProjector(voucherRepo portsrepo.VoucherRepository) *VoucherProjector {
	return &VoucherProjector{voucherRepo: voucherRepo}
}

var _ portssvc.EventProjector = (*VoucherProjector)(nil)

// Apply dispatches on the event's concrete type.
func (p *VoucherProjector) Apply(ctx context.Context, ev events.DomainEvent) error {
	switch e := ev.(type) {
	case *events.VoucherGenerated:
		return p.handleGenerated(ctx, e)
	case *events.VoucherIssued:
		return p.voucherRepo.MarkVoucherIssued(ctx, e.VoucherID, e.IssuedDateTime, e.RecipientEmail, e.RecipientMobile)
	case *events.VoucherFullyRedeemed:
		return p.voucherRepo.MarkVoucherRedeemed(ctx, e.VoucherID, e.RedeemedDateTime)
	default:
		return fmt.Errorf("%w: %s", apperrors.ErrUnhandledEventType, ev.EventType())
	}
}

func (p *VoucherProjector) handleGenerated(ctx context.Context, e *events.VoucherGenerated) error {
	err := p.voucherRepo.InsertVoucher(ctx, domain.Voucher{
		VoucherID:          e.VoucherID,
		EstateID:           e.EstateID,
		TransactionID:      e.TransactionID,
		VoucherCode:        e.VoucherCode,
		OperatorIdentifier: e.OperatorIdentifier,
		Value:              e.Value,
		IsGenerated:        true,
		GenerateDateTime:   e.GeneratedDateTime,
		ExpiryDateTime:     e.ExpiryDateTime,
	})
	if !errors.Is(err, apperrors.ErrDuplicateEvent) {
		return err
	}

	existing, getErr := p.voucherRepo.GetVoucher(ctx, e.VoucherID)
	if getErr != nil {
		return getErr
	}
	if existing.VoucherCode == e.VoucherCode && existing.Value.Equal(e.Value) {
		p.LogDebug(ctx, "Voucher generated event redelivered, skipping", slog.String("voucher_id", e.VoucherID.String()))
		return nil
	}
	return fmt.Errorf("%w: voucher %s already exists with different code or value",
		apperrors.ErrDataIntegrity, e.VoucherID)
}
