package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/stockroom/pkg/database"
	itemdomain "github.com/ghuser/stockroom/services/item/domain"
)

func TestMapWriteError(t *testing.T) {
	pg := func(code string) error {
		return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code})
	}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"referenced item", pg(database.CodeForeignKeyViolation), itemdomain.ErrItemInUse},
		{"check constraint", pg(database.CodeCheckViolation), itemdomain.ErrInvalidItem},
		{"numeric overflow", pg(database.CodeNumericOutOfRange), itemdomain.ErrInvalidItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapWriteError("insert item", tt.err); !errors.Is(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}

	plain := errors.New("boom")
	got := mapWriteError("insert item", plain)
	if !errors.Is(got, plain) || errors.Is(got, itemdomain.ErrInvalidItem) {
		t.Fatalf("unexpected mapping for plain error: %v", got)
	}
}
