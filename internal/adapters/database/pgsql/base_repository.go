// Package pgsql holds the PostgreSQL implementations of the repository ports.
// All repositories share one pgxpool and the error translation below.
package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/txnsuite/estate-reporting/internal/apperrors"
)

// translateErr maps driver errors onto the projection error taxonomy.
// Unique violations mean the event was already applied; foreign key
// violations mean a parent row has not been projected yet; connection-level
// failures are transient and retryable.
func translateErr(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateEvent, pgErr.ConstraintName)
		case pgErr.Code == pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrOutOfOrderEvent, pgErr.ConstraintName)
		case pgerrcode.IsConnectionException(pgErr.Code):
			return fmt.Errorf("%w: %v", apperrors.ErrPersistenceUnavailable, err)
		}
		return err
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistenceUnavailable, err)
	}
	return err
}

// requireRowAffected converts a zero-rows-affected UPDATE into the
// out-of-order signal: the row the event addresses has not been created yet.
func requireRowAffected(tag pgconn.CommandTag, what string) error {
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrOutOfOrderEvent, what)
	}
	return nil
}
