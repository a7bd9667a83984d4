package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned by repositories when a lookup matches no row, or an
// update/delete affects no row. It is an expected outcome, distinct from a
// store failure.
var ErrNotFound = errors.New("not found")

// NotFound reports whether err is (or wraps) ErrNotFound, including the
// driver's own no-rows sentinel.
func NotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, pgx.ErrNoRows)
}

// pgError extracts the Postgres error, if any.
func pgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}

// IsForeignKeyViolation reports whether err is a foreign-key constraint
// violation (SQLSTATE 23503), e.g. deleting a patient that still has
// appointments or medical records.
func IsForeignKeyViolation(err error) bool {
	pgErr := pgError(err)
	return pgErr != nil && pgErr.Code == "23503"
}

// IsUniqueViolation reports whether err is a unique constraint violation
// (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	pgErr := pgError(err)
	return pgErr != nil && pgErr.Code == "23505"
}
