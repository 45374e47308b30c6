package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// TopicItemUpserted is published when an Item is created or updated.
	TopicItemUpserted = "item.upserted"
	// TopicItemDeleted is published when an Item is removed.
	TopicItemDeleted = "item.deleted"

	// ItemEventVersion is the schema version of both item events.
	ItemEventVersion = 1
)

// ItemUpsertedEvent carries the full item state after a create or update,
// so consumers can refresh read models without querying Postgres.
type ItemUpsertedEvent struct {
	EventID     uuid.UUID       `json:"event_id"`
	Version     int             `json:"version"`
	ItemID      uuid.UUID       `json:"item_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Type        string          `json:"type"`
	CreatedAt   time.Time       `json:"created_at"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// ItemDeletedEvent is published after an Item row is removed.
type ItemDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     uuid.UUID `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
