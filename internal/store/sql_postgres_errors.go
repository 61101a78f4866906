package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Names of the unique constraints created by the users migration.
const (
	usersEmailConstraint    = "users_email_key"
	usersUsernameConstraint = "users_username_key"
)

// postgresError returns the SQLSTATE code of err, or "" when err is not a
// PostgreSQL error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// classifyUserInsertError maps a failed users INSERT to a domain error.
// It returns nil when err is not a unique violation.
func classifyUserInsertError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}

	switch pgErr.ConstraintName {
	case usersEmailConstraint:
		return ErrEmailAlreadyExists
	case usersUsernameConstraint:
		return ErrUsernameAlreadyExists
	default:
		return ErrEmailAlreadyExists
	}
}

// isMalformedID reports whether err was raised because an identifier could
// not be parsed as a uuid. Such ids cannot match any row.
func isMalformedID(err error) bool {
	return postgresError(err) == pgerrcode.InvalidTextRepresentation
}
