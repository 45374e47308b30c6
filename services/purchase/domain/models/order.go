package models

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// OrderLine is one requested line of a purchase.
type OrderLine struct {
	ItemID   uuid.UUID
	Quantity int
}

// Order is a validated purchase request. Build it with NewOrder.
type Order struct {
	CustomerName    string
	ShippingAddress string
	Lines           []OrderLine
}

// MaxQuantity is the largest quantity one line may request. It matches the
// INTEGER columns that store quantities and stock.
const MaxQuantity = math.MaxInt32

var (
	errMissingCustomer = errors.New("customer name is required")
	errMissingAddress  = errors.New("shipping address is required")
	errNoLines         = errors.New("at least one item is required")
)

// NewOrder trims the customer fields and checks every line. The returned
// error describes the first violation found.
func NewOrder(customerName, shippingAddress string, lines []OrderLine) (Order, error) {
	o := Order{
		CustomerName:    strings.TrimSpace(customerName),
		ShippingAddress: strings.TrimSpace(shippingAddress),
		Lines:           lines,
	}
	if o.CustomerName == "" {
		return Order{}, errMissingCustomer
	}
	if o.ShippingAddress == "" {
		return Order{}, errMissingAddress
	}
	if len(lines) == 0 {
		return Order{}, errNoLines
	}
	for i, l := range lines {
		if l.ItemID == uuid.Nil {
			return Order{}, fmt.Errorf("items[%d]: item id is required", i)
		}
		if l.Quantity <= 0 {
			return Order{}, fmt.Errorf("items[%d]: quantity must be a positive integer", i)
		}
		if l.Quantity > MaxQuantity {
			return Order{}, fmt.Errorf("items[%d]: quantity must not exceed %d", i, MaxQuantity)
		}
	}
	return o, nil
}

// ItemIDs returns the distinct item ids in first-seen line order.
func (o Order) ItemIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(o.Lines))
	ids := make([]uuid.UUID, 0, len(o.Lines))
	for _, l := range o.Lines {
		if _, ok := seen[l.ItemID]; ok {
			continue
		}
		seen[l.ItemID] = struct{}{}
		ids = append(ids, l.ItemID)
	}
	return ids
}

// Demand sums the requested quantity per item. Sums saturate at
// math.MaxInt instead of wrapping.
func (o Order) Demand() map[uuid.UUID]int {
	d := make(map[uuid.UUID]int, len(o.Lines))
	for _, l := range o.Lines {
		d[l.ItemID] = addSaturating(d[l.ItemID], l.Quantity)
	}
	return d
}

// Units is the total quantity across all lines.
func (o Order) Units() int {
	n := 0
	for _, l := range o.Lines {
		n = addSaturating(n, l.Quantity)
	}
	return n
}

func addSaturating(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// StockLevel is the locked stock of one item during a purchase transaction.
type StockLevel struct {
	ItemID uuid.UUID
	Name   string
	Stock  int
}
