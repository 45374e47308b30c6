package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/purchase/domain/events"
)

func TestPurchaseCreatedEvent_JSON(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	evt := events.PurchaseCreatedEvent{
		EventID:      uuid.New(),
		Version:      events.PurchaseCreatedVersion,
		PurchaseID:   uuid.New(),
		CustomerName: "Ada",
		Lines:        []events.PurchasedLine{{ItemID: a, Quantity: 2}, {ItemID: b, Quantity: 1}},
		OccurredAt:   time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}
	for _, field := range []string{"event_id", "version", "purchase_id", "customer_name", "lines", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}

	ids := evt.ItemIDs()
	if len(ids) != 2 || ids[0] != a || ids[1] != b {
		t.Errorf("ItemIDs: got %v", ids)
	}
}

func TestTopicPurchaseCreated_Value(t *testing.T) {
	if events.TopicPurchaseCreated != "purchase.created" {
		t.Errorf("expected %q, got %q", "purchase.created", events.TopicPurchaseCreated)
	}
}
