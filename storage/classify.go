// Package storage maps persistence-driver errors onto the error taxonomy.
//
// Constraint violations reported by PostgreSQL (SQLSTATE class 23) or SQLite
// (SQLITE_CONSTRAINT) become *errors.IntegrityError, which the API layer
// reports as a server-side defect. Other driver errors pass through unchanged.
package storage

import (
	stderrors "errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/decompme/toolerr/errors"
)

// ClassifyError converts a driver constraint violation into an IntegrityError.
// It returns err unchanged when it is nil, already classified, or not a
// constraint violation, to preserve original information.
func ClassifyError(err error) error {
	if err == nil || errors.IsIntegrityViolation(err) {
		return err
	}

	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return errors.NewIntegrityError(postgresMessage(pgErr), err)
	}

	var liteErr sqlite3.Error
	if stderrors.As(err, &liteErr) && liteErr.Code == sqlite3.ErrConstraint {
		return errors.NewIntegrityError(liteErr.Error(), err)
	}

	return err
}

// IsIntegrityViolation reports whether err is, or would classify as, a
// constraint violation.
func IsIntegrityViolation(err error) bool {
	return errors.IsIntegrityViolation(ClassifyError(err))
}

func postgresMessage(pgErr *pgconn.PgError) string {
	if pgErr.ConstraintName != "" {
		return fmt.Sprintf("%s (constraint %q)", pgErr.Message, pgErr.ConstraintName)
	}
	return pgErr.Message
}
