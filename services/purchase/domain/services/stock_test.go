package services

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/purchase/domain"
	"github.com/ghuser/stockroom/services/purchase/domain/models"
)

func TestCheckStock(t *testing.T) {
	mug, pen := uuid.New(), uuid.New()
	levels := map[uuid.UUID]models.StockLevel{
		mug: {ItemID: mug, Name: "Mug", Stock: 10},
		pen: {ItemID: pen, Name: "Pen", Stock: 1},
	}

	t.Run("sufficient", func(t *testing.T) {
		o := models.Order{Lines: []models.OrderLine{{ItemID: mug, Quantity: 10}, {ItemID: pen, Quantity: 1}}}
		if err := CheckStock(o, levels); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("insufficient", func(t *testing.T) {
		o := models.Order{Lines: []models.OrderLine{{ItemID: mug, Quantity: 15}}}
		var target *domain.InsufficientStockError
		if err := CheckStock(o, levels); !errors.As(err, &target) {
			t.Fatalf("expected InsufficientStockError, got %v", err)
		}
		if target.Available != 10 || target.Requested != 15 || target.Name != "Mug" {
			t.Errorf("unexpected details: %+v", target)
		}
	})

	t.Run("duplicate lines are summed", func(t *testing.T) {
		o := models.Order{Lines: []models.OrderLine{{ItemID: mug, Quantity: 6}, {ItemID: mug, Quantity: 6}}}
		var target *domain.InsufficientStockError
		if err := CheckStock(o, levels); !errors.As(err, &target) {
			t.Fatalf("expected InsufficientStockError, got %v", err)
		}
		if target.Requested != 12 {
			t.Errorf("expected summed request 12, got %d", target.Requested)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		ghost := uuid.New()
		o := models.Order{Lines: []models.OrderLine{{ItemID: ghost, Quantity: 1}, {ItemID: mug, Quantity: 99}}}
		var target *domain.UnknownItemError
		if err := CheckStock(o, levels); !errors.As(err, &target) {
			t.Fatalf("expected UnknownItemError, got %v", err)
		}
		if target.ItemID != ghost {
			t.Errorf("unexpected item id %v", target.ItemID)
		}
	})

	t.Run("first violation in line order wins", func(t *testing.T) {
		o := models.Order{Lines: []models.OrderLine{{ItemID: pen, Quantity: 2}, {ItemID: uuid.New(), Quantity: 1}}}
		if err := CheckStock(o, levels); !errors.Is(err, domain.ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock first, got %v", err)
		}
	})
}

func TestCheckStock_WrappingLinesAreInsufficient(t *testing.T) {
	mug := uuid.New()
	levels := map[uuid.UUID]models.StockLevel{mug: {ItemID: mug, Name: "Mug", Stock: 10}}

	tests := []struct {
		name  string
		lines []models.OrderLine
	}{
		{"sum past MaxInt", []models.OrderLine{{ItemID: mug, Quantity: math.MaxInt}, {ItemID: mug, Quantity: 2}}},
		{"negative line offsets a large one", []models.OrderLine{{ItemID: mug, Quantity: 15}, {ItemID: mug, Quantity: -10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target *domain.InsufficientStockError
			if err := CheckStock(models.Order{Lines: tt.lines}, levels); !errors.As(err, &target) {
				t.Fatalf("expected InsufficientStockError, got %v", err)
			}
		})
	}
}
