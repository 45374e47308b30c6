package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestUnknownItemError(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	err := fmt.Errorf("lock stock: %w", &UnknownItemError{ItemID: id})

	if !errors.Is(err, ErrUnknownItem) {
		t.Fatal("UnknownItemError must match ErrUnknownItem")
	}
	if errors.Is(err, ErrInsufficientStock) {
		t.Fatal("UnknownItemError must not match ErrInsufficientStock")
	}

	var target *UnknownItemError
	if !errors.As(err, &target) || target.ItemID != id {
		t.Fatalf("errors.As failed: %v", err)
	}
	if want := "Invalid item ID: 550e8400-e29b-41d4-a716-446655440000"; target.Error() != want {
		t.Errorf("message: got %q, want %q", target.Error(), want)
	}
}

func TestInsufficientStockError(t *testing.T) {
	err := &InsufficientStockError{ItemID: uuid.New(), Name: "Mug", Available: 10, Requested: 15}

	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatal("InsufficientStockError must match ErrInsufficientStock")
	}
	if want := `Not enough stock for item "Mug". Available: 10, Requested: 15`; err.Error() != want {
		t.Errorf("message: got %q, want %q", err.Error(), want)
	}
}
