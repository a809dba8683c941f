package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/txnsuite/estate-reporting/internal/core/domain"
)

// EstateRepository persists the estate-level read model.
type EstateRepository interface {
	// InsertEstate creates the estate row. A key collision yields
	// apperrors.ErrDuplicateEvent.
	InsertEstate(ctx context.Context, estate domain.Estate) error

	// GetEstate fetches an estate by id; apperrors.ErrNotFound when missing.
	GetEstate(ctx context.Context, estateID uuid.UUID) (*domain.Estate, error)

	// UpdateEstateReference backfills the estate's external reference.
	// Zero rows matched yields apperrors.ErrOutOfOrderEvent.
	UpdateEstateReference(ctx context.Context, estateID uuid.UUID, reference string) error

	// InsertEstateOperator records an operator enabled for the estate.
	InsertEstateOperator(ctx context.Context, operator domain.EstateOperator) error

	// InsertEstateSecurityUser records a login associated with the estate.
	InsertEstateSecurityUser(ctx context.Context, user domain.EstateSecurityUser) error
}
