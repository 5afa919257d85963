package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation checks if the error is a PostgreSQL unique violation
// error for a specific constraint.
func IsUniqueViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	// 23505 is the unique_violation error code.
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
}
