package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgErr(code string) error {
	return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code, Message: "test"})
}

func TestPgCode(t *testing.T) {
	if got := PgCode(pgErr(CodeUniqueViolation)); got != CodeUniqueViolation {
		t.Fatalf("expected %s, got %q", CodeUniqueViolation, got)
	}
	if got := PgCode(errors.New("plain")); got != "" {
		t.Fatalf("expected empty code, got %q", got)
	}
}

func TestConstraintClassifiers(t *testing.T) {
	if !IsUniqueViolation(pgErr(CodeUniqueViolation)) {
		t.Error("expected unique violation")
	}
	if !IsForeignKeyViolation(pgErr(CodeForeignKeyViolation)) {
		t.Error("expected foreign key violation")
	}
	if !IsCheckViolation(pgErr(CodeCheckViolation)) {
		t.Error("expected check violation")
	}
	if !IsNumericOutOfRange(pgErr(CodeNumericOutOfRange)) {
		t.Error("expected numeric out of range")
	}
	if IsForeignKeyViolation(pgErr(CodeUniqueViolation)) {
		t.Error("unique violation must not classify as foreign key violation")
	}
}

func TestIsUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"deadline", fmt.Errorf("lock stock: %w", context.DeadlineExceeded), true},
		{"bad conn", driver.ErrBadConn, true},
		{"statement timeout", pgErr(CodeQueryCanceled), true},
		{"lock timeout", pgErr(CodeLockNotAvailable), true},
		{"connection failure class", pgErr("08006"), true},
		{"admin shutdown", pgErr(CodeAdminShutdown), true},
		{"net error", &net.OpError{Op: "dial", Err: errors.New("refused")}, true},
		{"check violation", pgErr(CodeCheckViolation), false},
		{"plain", errors.New("syntax"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUnavailable(tt.err); got != tt.want {
				t.Fatalf("IsUnavailable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
