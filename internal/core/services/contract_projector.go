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
)

// ContractProjector projects contract-family events onto the read model.
// Contract data only ever grows; disabled fees are flagged, not removed.
type ContractProjector struct {
	BaseService
	contractRepo portsrepo.ContractRepository
}

// NewContractProjector creates a projector over the contract repository.
func NewContractProjector(contractRepo portsrepo.ContractRepository) *ContractProjector {
	return &ContractProjector{contractRepo: contractRepo}
}

var _ portssvc.EventProjector = (*ContractProjector)(nil)

// Apply dispatches on the event's concrete type.
func (p *ContractProjector) Apply(ctx context.Context, ev events.DomainEvent) error {
	switch e := ev.(type) {
	case *events.ContractCreated:
		return p.skipDuplicate(ctx, "contract", p.contractRepo.InsertContract(ctx, domain.Contract{
			EstateID:    e.EstateID,
			ContractID:  e.ContractID,
			OperatorID:  e.OperatorID,
			Description: e.Description,
		}))
	case *events.FixedValueProductAddedToContract:
		return p.skipDuplicate(ctx, "contract product", p.contractRepo.InsertContractProduct(ctx, domain.ContractProduct{
			ContractID:  e.ContractID,
			ProductID:   e.ProductID,
			ProductName: e.ProductName,
			DisplayText: e.DisplayText,
			Value:       e.Value,
			ProductType: domain.ProductTypeFixedValue,
		}))
	case *events.VariableValueProductAddedToContract:
		return p.skipDuplicate(ctx, "contract product", p.contractRepo.InsertContractProduct(ctx, domain.ContractProduct{
			ContractID:  e.ContractID,
			ProductID:   e.ProductID,
			ProductName: e.ProductName,
			DisplayText: e.DisplayText,
			Value:       decimal.Zero,
			ProductType: domain.ProductTypeVariableValue,
		}))
	case *events.TransactionFeeForProductAddedToContract:
		return p.skipDuplicate(ctx, "contract product fee", p.contractRepo.InsertContractProductFee(ctx, domain.ContractProductTransactionFee{
			ContractID:      e.ContractID,
			ProductID:       e.ProductID,
			FeeID:           e.TransactionFeeID,
			Description:     e.Description,
			CalculationType: e.CalculationType,
			FeeType:         e.FeeType,
			Value:           e.Value,
			IsEnabled:       true,
		}))
	case *events.TransactionFeeForProductDisabled:
		return p.contractRepo.DisableContractProductFee(ctx, e.ContractID, e.ProductID, e.TransactionFeeID)
	default:
		return fmt.Errorf("%w: %s", apperrors.ErrUnhandledEventType, ev.EventType())
	}
}

func (p *ContractProjector) skipDuplicate(ctx context.Context, what string, err error) error {
	if errors.Is(err, apperrors.ErrDuplicateEvent) {
		p.LogDebug(ctx, "Event redelivered, skipping", slog.String("entity", what))
		return nil
	}
	return err
}
