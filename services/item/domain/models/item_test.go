package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func validAttrs() ItemAttrs {
	return ItemAttrs{
		Name:        "Pencil",
		Description: "HB",
		Price:       decimal.RequireFromString("0.755"),
		Stock:       40,
		Type:        ItemTypeStationery,
	}
}

func TestNewItem(t *testing.T) {
	t.Run("assigns id and timestamps", func(t *testing.T) {
		before := time.Now().UTC()
		item, err := NewItem(validAttrs())
		after := time.Now().UTC()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID == uuid.Nil {
			t.Fatal("expected non-zero UUID for ID")
		}
		if item.CreatedAt.Before(before) || item.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v not between %v and %v", item.CreatedAt, before, after)
		}
		if !item.UpdatedAt.Equal(item.CreatedAt) {
			t.Fatalf("expected UpdatedAt == CreatedAt on creation")
		}
	})

	t.Run("rounds price to cents", func(t *testing.T) {
		item, err := NewItem(validAttrs())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !item.Price.Equal(decimal.RequireFromString("0.76")) {
			t.Fatalf("expected 0.76, got %s", item.Price)
		}
	})

	t.Run("zero price and stock are allowed", func(t *testing.T) {
		a := validAttrs()
		a.Price = decimal.Zero
		a.Stock = 0
		if _, err := NewItem(a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("values past column range rejected", func(t *testing.T) {
		a := validAttrs()
		a.Stock = MaxStock + 1
		if _, err := NewItem(a); err == nil {
			t.Fatal("expected error for stock above MaxStock")
		}

		a = validAttrs()
		a.Price = decimal.RequireFromString("9999999999.995")
		if _, err := NewItem(a); err == nil {
			t.Fatal("expected error for price that rounds past MaxPrice")
		}

		a = validAttrs()
		a.Stock = MaxStock
		a.Price = MaxPrice
		if _, err := NewItem(a); err != nil {
			t.Fatalf("limits themselves are valid: %v", err)
		}
	})

	t.Run("negative price rejected", func(t *testing.T) {
		a := validAttrs()
		a.Price = decimal.RequireFromString("-1")
		if _, err := NewItem(a); err == nil {
			t.Fatal("expected error for negative price")
		}
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		a := validAttrs()
		a.Stock = -1
		if _, err := NewItem(a); err == nil {
			t.Fatal("expected error for negative stock")
		}
	})

	t.Run("generates unique IDs on each call", func(t *testing.T) {
		item1, _ := NewItem(validAttrs())
		item2, _ := NewItem(validAttrs())
		if item1.ID == item2.ID {
			t.Fatal("expected unique IDs, got identical")
		}
	})
}

func TestItem_Apply(t *testing.T) {
	item, err := NewItem(validAttrs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	created := item.CreatedAt

	a := validAttrs()
	a.Name = "Pen"
	a.Stock = 5
	if err := item.Apply(a); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if item.Name != "Pen" || item.Stock != 5 {
		t.Fatalf("fields not applied: %+v", item)
	}
	if !item.CreatedAt.Equal(created) {
		t.Fatal("Apply must not touch CreatedAt")
	}

	a.Stock = -3
	if err := item.Apply(a); err == nil {
		t.Fatal("expected error for negative stock")
	}
	if item.Stock != 5 {
		t.Fatal("rejected Apply must leave item unchanged")
	}
}

func TestParseItemType(t *testing.T) {
	tests := []struct {
		in      string
		want    ItemType
		wantErr bool
	}{
		{"", ItemTypeGeneral, false},
		{"General", ItemTypeGeneral, false},
		{"Electronics", ItemTypeElectronics, false},
		{"Grocery", ItemTypeGrocery, false},
		{"Clothing", ItemTypeClothing, false},
		{"Stationery", ItemTypeStationery, false},
		{"electronics", "", true},
		{"Furniture", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseItemType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseItemType(%q) error = %v, wantErr = %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseItemType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
