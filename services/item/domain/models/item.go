package models

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a stock-keeping unit that purchases draw down.
type Item struct {
	ID          uuid.UUID
	Name        ItemName
	Description string
	Price       decimal.Decimal
	Stock       int
	Type        ItemType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemAttrs carries the client-editable fields of an Item.
type ItemAttrs struct {
	Name        ItemName
	Description string
	Price       decimal.Decimal
	Stock       int
	Type        ItemType
}

// Column limits: price is NUMERIC(12,2), stock is INTEGER.
const MaxStock = math.MaxInt32

// MaxPrice is the largest price the items table can hold.
var MaxPrice = decimal.RequireFromString("9999999999.99")

var (
	errNegativePrice = errors.New("price must not be negative")
	errNegativeStock = errors.New("stock must not be negative")
	errPriceTooLarge = fmt.Errorf("price must not exceed %s", MaxPrice.StringFixed(2))
	errStockTooLarge = fmt.Errorf("stock must not exceed %d", MaxStock)
)

// Check enforces the numeric invariants shared by create and update.
func (a ItemAttrs) Check() error {
	if a.Price.IsNegative() {
		return errNegativePrice
	}
	if a.Price.Round(2).GreaterThan(MaxPrice) {
		return errPriceTooLarge
	}
	if a.Stock < 0 {
		return errNegativeStock
	}
	if a.Stock > MaxStock {
		return errStockTooLarge
	}
	return nil
}

// NewItem constructs an Item with a generated ID and current timestamps.
func NewItem(attrs ItemAttrs) (*Item, error) {
	if err := attrs.Check(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Item{
		ID:          uuid.New(),
		Name:        attrs.Name,
		Description: attrs.Description,
		Price:       attrs.Price.Round(2),
		Stock:       attrs.Stock,
		Type:        attrs.Type,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Apply overwrites the editable fields and bumps UpdatedAt.
func (i *Item) Apply(attrs ItemAttrs) error {
	if err := attrs.Check(); err != nil {
		return err
	}
	i.Name = attrs.Name
	i.Description = attrs.Description
	i.Price = attrs.Price.Round(2)
	i.Stock = attrs.Stock
	i.Type = attrs.Type
	i.UpdatedAt = time.Now().UTC()
	return nil
}
