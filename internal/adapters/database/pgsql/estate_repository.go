package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/txnsuite/estate-reporting/internal/apperrors"
	"github.com/txnsuite/estate-reporting/internal/core/domain"
	portsrepo "github.com/txnsuite/estate-reporting/internal/core/ports/repositories"
)

type PgxEstateRepository struct {
	pool *pgxpool.Pool
}

// NewPgxEstateRepository creates a new repository for estate rows.
func NewPgxEstateRepository(pool *pgxpool.Pool) portsrepo.EstateRepository {
	return &PgxEstateRepository{pool: pool}
}

func (r *PgxEstateRepository) InsertEstate(ctx context.Context, estate domain.Estate) error {
	query := `
		INSERT INTO estate (estate_id, name, reference, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.pool.Exec(ctx, query,
		estate.EstateID,
		estate.Name,
		estate.Reference,
		estate.CreatedAt,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxEstateRepository) GetEstate(ctx context.Context, estateID uuid.UUID) (*domain.Estate, error) {
	query := `
		SELECT estate_id, name, reference, created_at
		FROM estate
		WHERE estate_id = $1;
	`
	var estate domain.Estate
	err := r.pool.QueryRow(ctx, query, estateID).Scan(
		&estate.EstateID,
		&estate.Name,
		&estate.Reference,
		&estate.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateErr(err)
	}
	return &estate, nil
}

func (r *PgxEstateRepository) UpdateEstateReference(ctx context.Context, estateID uuid.UUID, reference string) error {
	query := `
		UPDATE estate SET reference = $2
		WHERE estate_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, estateID, reference)
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("estate %s", estateID))
}

func (r *PgxEstateRepository) InsertEstateOperator(ctx context.Context, operator domain.EstateOperator) error {
	query := `
		INSERT INTO estate_operator (estate_id, operator_id, name, require_custom_merchant_number, require_custom_terminal_number)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.pool.Exec(ctx, query,
		operator.EstateID,
		operator.OperatorID,
		operator.Name,
		operator.RequireCustomMerchantNumber,
		operator.RequireCustomTerminalNumber,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxEstateRepository) InsertEstateSecurityUser(ctx context.Context, user domain.EstateSecurityUser) error {
	query := `
		INSERT INTO estate_security_user (security_user_id, estate_id, email_address)
		VALUES ($1, $2, $3);
	`
	_, err := r.pool.Exec(ctx, query,
		user.SecurityUserID,
		user.EstateID,
		user.EmailAddress,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}
