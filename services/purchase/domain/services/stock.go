// Package services holds the stateless stock rules applied inside the
// purchase transaction.
package services

import (
	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/purchase/domain"
	"github.com/ghuser/stockroom/services/purchase/domain/models"
)

// CheckStock verifies that every item in order exists in levels and has
// enough stock for the summed quantity of its lines. Items are checked in
// first-seen line order; the first violation is returned as
// *domain.UnknownItemError or *domain.InsufficientStockError. Negative or
// oversized quantities never pass, even if the order was built by hand.
func CheckStock(order models.Order, levels map[uuid.UUID]models.StockLevel) error {
	demand := order.Demand()
	for _, id := range order.ItemIDs() {
		level, ok := levels[id]
		if !ok {
			return &domain.UnknownItemError{ItemID: id}
		}
		if want := demand[id]; want > level.Stock || exceedsLine(order, id, level.Stock) {
			return &domain.InsufficientStockError{
				ItemID:    id,
				Name:      level.Name,
				Available: level.Stock,
				Requested: want,
			}
		}
	}
	return nil
}

// exceedsLine reports whether any single line for id asks for more than
// stock or for a non-positive amount.
func exceedsLine(order models.Order, id uuid.UUID, stock int) bool {
	for _, l := range order.Lines {
		if l.ItemID == id && (l.Quantity <= 0 || l.Quantity > stock) {
			return true
		}
	}
	return false
}
