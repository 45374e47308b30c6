package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrCommit wraps failures returned by tx.Commit.
var ErrCommit = errors.New("commit failed")

// PostgreSQL SQLSTATE codes the repositories branch on.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
	CodeNumericOutOfRange   = "22003"
	CodeQueryCanceled       = "57014"
	CodeLockNotAvailable    = "55P03"
	CodeAdminShutdown       = "57P01"
	CodeCannotConnectNow    = "57P03"
)

// PgCode returns the SQLSTATE of err, or "" when err is not a server error.
func PgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation reports a unique constraint failure.
func IsUniqueViolation(err error) bool {
	return PgCode(err) == CodeUniqueViolation
}

// IsForeignKeyViolation reports a foreign key failure, e.g. deleting a row
// that is still referenced.
func IsForeignKeyViolation(err error) bool {
	return PgCode(err) == CodeForeignKeyViolation
}

// IsCheckViolation reports a CHECK constraint failure.
func IsCheckViolation(err error) bool {
	return PgCode(err) == CodeCheckViolation
}

// IsNumericOutOfRange reports a value that does not fit its numeric column.
func IsNumericOutOfRange(err error) bool {
	return PgCode(err) == CodeNumericOutOfRange
}

// IsUnavailable reports errors caused by the store being unreachable, slow or
// shutting down rather than by the statement itself: deadline expiry,
// statement/lock timeouts, broken connections and connection-class SQLSTATEs.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		pgconn.Timeout(err) {
		return true
	}

	switch code := PgCode(err); {
	case code == CodeQueryCanceled, code == CodeLockNotAvailable,
		code == CodeAdminShutdown, code == CodeCannotConnectNow:
		return true
	case len(code) == 5 && code[:2] == "08": // connection exception class
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
