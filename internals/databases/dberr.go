package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// DescribeError returns driver-level detail for logging: the SQLSTATE for
// Postgres and the extended result code for SQLite. Empty for other errors.
func DescribeError(err error) string {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.ConstraintName != "" {
			return fmt.Sprintf("postgres %s (%s) constraint=%s", pgErr.Code, pgErr.Severity, pgErr.ConstraintName)
		}
		return fmt.Sprintf("postgres %s (%s)", pgErr.Code, pgErr.Severity)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return fmt.Sprintf("sqlite %d/%d", int(liteErr.Code), int(liteErr.ExtendedCode))
	}
	return ""
}

// IsConstraintViolation reports unique/foreign-key violations from either driver.
func IsConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 23: integrity constraint violation
		return len(pgErr.Code) == 5 && pgErr.Code[:2] == "23"
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
