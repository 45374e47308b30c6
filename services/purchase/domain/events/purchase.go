package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicPurchaseCreated is published in the purchase transaction, so
// consumers only ever see committed purchases.
const TopicPurchaseCreated = "purchase.created"

// PurchaseCreatedVersion is the schema version of PurchaseCreatedEvent.
const PurchaseCreatedVersion = 1

// PurchaseCreatedEvent is published after a purchase and its stock
// decrements are written.
type PurchaseCreatedEvent struct {
	EventID      uuid.UUID       `json:"event_id"`
	Version      int             `json:"version"`
	PurchaseID   uuid.UUID       `json:"purchase_id"`
	CustomerName string          `json:"customer_name"`
	Lines        []PurchasedLine `json:"lines"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

// PurchasedLine is one line of a created purchase.
type PurchasedLine struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

// ItemIDs returns the item ids touched by the purchase.
func (e PurchaseCreatedEvent) ItemIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(e.Lines))
	for _, l := range e.Lines {
		ids = append(ids, l.ItemID)
	}
	return ids
}
