package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseRow is one row of purchases LEFT JOIN purchase_items LEFT JOIN items.
// HasLine is false for purchases without lines.
type PurchaseRow struct {
	PurchaseID      uuid.UUID
	CustomerName    string
	ShippingAddress string
	CreatedAt       time.Time

	HasLine  bool
	ItemID   uuid.UUID
	ItemName string
	Price    decimal.Decimal
	Quantity int
	ItemType string
}

// FoldRows groups joined rows into purchases, keeping the first-seen order of
// purchases and the row order of lines within each purchase.
func FoldRows(rows []PurchaseRow) []*Purchase {
	index := make(map[uuid.UUID]*Purchase)
	out := make([]*Purchase, 0)
	for _, r := range rows {
		p, ok := index[r.PurchaseID]
		if !ok {
			p = &Purchase{
				ID:              r.PurchaseID,
				CustomerName:    r.CustomerName,
				ShippingAddress: r.ShippingAddress,
				CreatedAt:       r.CreatedAt,
				Lines:           []PurchaseLine{},
			}
			index[r.PurchaseID] = p
			out = append(out, p)
		}
		if !r.HasLine {
			continue
		}
		typ := r.ItemType
		if typ == "" {
			typ = UnknownItemType
		}
		p.Lines = append(p.Lines, PurchaseLine{
			ItemID:   r.ItemID,
			Name:     r.ItemName,
			Price:    r.Price,
			Quantity: r.Quantity,
			Type:     typ,
		})
	}
	return out
}

// ListFilter narrows a purchase listing. The zero value keeps everything.
type ListFilter struct {
	// Query matches customer names and line item names, case-insensitively.
	Query string
	// Date keeps purchases created on this UTC calendar day. Zero means any day.
	Date time.Time
	// Limit caps the page size. Zero means no cap.
	Limit  int
	Offset int
}

// Apply returns the page of purchases matching f and the number of matches
// before pagination.
func (f ListFilter) Apply(purchases []*Purchase) ([]*Purchase, int) {
	matched := make([]*Purchase, 0, len(purchases))
	for _, p := range purchases {
		if f.matches(p) {
			matched = append(matched, p)
		}
	}
	total := len(matched)

	if f.Offset >= total {
		return []*Purchase{}, total
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, total
}

func (f ListFilter) matches(p *Purchase) bool {
	if !f.Date.IsZero() {
		y1, m1, d1 := p.CreatedAt.UTC().Date()
		y2, m2, d2 := f.Date.Date()
		if y1 != y2 || m1 != m2 || d1 != d2 {
			return false
		}
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.CustomerName), q) {
		return true
	}
	for _, l := range p.Lines {
		if strings.Contains(strings.ToLower(l.Name), q) {
			return true
		}
	}
	return false
}
