package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnknownItemType labels lines whose item has no type.
const UnknownItemType = "Unknown"

// Purchase is an immutable customer order.
type Purchase struct {
	ID              uuid.UUID
	CustomerName    string
	ShippingAddress string
	CreatedAt       time.Time
	Lines           []PurchaseLine
}

// PurchaseLine is one line of a Purchase. Name, Price and Type are read-time
// snapshots of the item and are not stored with the line.
type PurchaseLine struct {
	ItemID   uuid.UUID
	Name     string
	Price    decimal.Decimal
	Quantity int
	Type     string
}

// NewPurchase builds the Purchase recorded for an accepted order. Line names
// come from the locked stock levels.
func NewPurchase(order Order, levels map[uuid.UUID]StockLevel) *Purchase {
	lines := make([]PurchaseLine, len(order.Lines))
	for i, l := range order.Lines {
		lines[i] = PurchaseLine{
			ItemID:   l.ItemID,
			Name:     levels[l.ItemID].Name,
			Quantity: l.Quantity,
		}
	}
	return &Purchase{
		ID:              uuid.New(),
		CustomerName:    order.CustomerName,
		ShippingAddress: order.ShippingAddress,
		CreatedAt:       time.Now().UTC(),
		Lines:           lines,
	}
}

// Total is the sum of price times quantity over all lines.
func (p *Purchase) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range p.Lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}
