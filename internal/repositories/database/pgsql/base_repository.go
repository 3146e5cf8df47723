package pgsql

import (
	"errors"
	"fmt"

	"github.com/biztrack/biztrack_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// SQLSTATE codes for the constraint classes surfaced as client errors.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// translateConstraintError reinterprets a store-level constraint violation as
// a domain error carrying the violated constraint category. Any other error
// is returned nil so the caller propagates the original unchanged.
func translateConstraintError(err error, entity string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case uniqueViolationCode:
		return fmt.Errorf("%s violates a uniqueness constraint: %w", entity, apperrors.ErrDuplicate)
	case foreignKeyViolationCode:
		return fmt.Errorf("%s violates referential integrity: %w", entity, apperrors.ErrInvalidReference)
	}
	return nil
}
