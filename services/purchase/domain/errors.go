package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors for the purchase domain. Use errors.Is() to check these.
var (
	// ErrInvalidRequest indicates malformed purchase input, detected before
	// any store access.
	ErrInvalidRequest = errors.New("invalid purchase request")

	// ErrUnknownItem indicates a line references an item that does not exist.
	ErrUnknownItem = errors.New("unknown item")

	// ErrInsufficientStock indicates a requested quantity exceeds the stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrStoreUnavailable indicates the store could not be reached or the
	// transaction deadline expired.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrTransactionFailed indicates a statement or the commit failed after
	// the transaction began.
	ErrTransactionFailed = errors.New("purchase transaction failed")

	// ErrPurchaseNotFound indicates the requested purchase does not exist.
	ErrPurchaseNotFound = errors.New("purchase not found")
)

// UnknownItemError names the missing item. It matches ErrUnknownItem.
type UnknownItemError struct {
	ItemID uuid.UUID
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("Invalid item ID: %s", e.ItemID)
}

func (e *UnknownItemError) Is(target error) bool {
	return target == ErrUnknownItem
}

// InsufficientStockError reports the stock shortfall for one item. It
// matches ErrInsufficientStock.
type InsufficientStockError struct {
	ItemID    uuid.UUID
	Name      string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Not enough stock for item %q. Available: %d, Requested: %d",
		e.Name, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
