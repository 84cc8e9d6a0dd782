package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// PostgreSQL SQLSTATE codes the service cares about.
const (
	CodeStringTooLong       = "22001"
	CodeNotNullViolation    = "23502"
	CodeForeignKeyViolation = "23503"
	CodeUniqueViolation     = "23505"
)

// Kind is a coarse classification of a store error, used for log fields.
type Kind string

const (
	KindNone       Kind = ""
	KindNotNull    Kind = "not_null_violation"
	KindForeignKey Kind = "foreign_key_violation"
	KindUnique     Kind = "unique_violation"
	KindTooLong    Kind = "string_too_long"
	KindOther      Kind = "database_error"
)

// AsPgError extracts the underlying *pgconn.PgError, if any.
func AsPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// Classify maps err to a Kind. Non-PostgreSQL errors return KindNone.
func Classify(err error) Kind {
	pgErr, ok := AsPgError(err)
	if !ok {
		return KindNone
	}
	switch pgErr.Code {
	case CodeNotNullViolation:
		return KindNotNull
	case CodeForeignKeyViolation:
		return KindForeignKey
	case CodeUniqueViolation:
		return KindUnique
	case CodeStringTooLong:
		return KindTooLong
	default:
		return KindOther
	}
}

// IsForeignKeyViolation reports whether err is a foreign_key_violation (23503).
func IsForeignKeyViolation(err error) bool {
	return Classify(err) == KindForeignKey
}

// IsNotNullViolation reports whether err is a not_null_violation (23502).
func IsNotNullViolation(err error) bool {
	return Classify(err) == KindNotNull
}
