package domain

import "errors"

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidItem indicates the item violates domain constraints
	// (name rules, negative price or stock, unknown type).
	ErrInvalidItem = errors.New("invalid item")

	// ErrItemInUse indicates the item is referenced by a purchase line and
	// cannot be deleted.
	ErrItemInUse = errors.New("item is referenced by existing purchases")
)
