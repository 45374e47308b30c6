package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/database"
	"github.com/ghuser/stockroom/pkg/events"
	itemdomain "github.com/ghuser/stockroom/services/item/domain"
	domainevents "github.com/ghuser/stockroom/services/item/domain/events"
	"github.com/ghuser/stockroom/services/item/domain/models"
	"github.com/ghuser/stockroom/services/item/infrastructure/persistence/postgres/db"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection pool
// and event bus. Writes publish item events in the same transaction; a nil bus
// disables publishing.
func NewItemRepository(database *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: database, bus: bus}
}

// Save inserts a new Item and publishes ItemUpsertedEvent within the same transaction.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := db.New(tx).InsertItem(ctx, db.InsertItemParams{
			ID:          item.ID,
			Name:        item.Name.String(),
			Description: item.Description,
			Price:       item.Price,
			Stock:       int32(item.Stock),
			Type:        item.Type.String(),
			CreatedAt:   item.CreatedAt,
			UpdatedAt:   item.UpdatedAt,
		}); err != nil {
			return mapWriteError("insert item", err)
		}
		return r.publishUpserted(ctx, tx, item)
	})
}

// GetByID retrieves an Item by ID. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	row, err := db.New(r.db.DB()).GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return rowToItem(row), nil
}

// List returns every item ordered by name.
func (r *ItemRepository) List(ctx context.Context) ([]*models.Item, error) {
	rows, err := db.New(r.db.DB()).ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(row)
	}
	return items, nil
}

// Update persists the editable fields of an existing Item.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).UpdateItem(ctx, db.UpdateItemParams{
			ID:          item.ID,
			Name:        item.Name.String(),
			Description: item.Description,
			Price:       item.Price,
			Stock:       int32(item.Stock),
			Type:        item.Type.String(),
			UpdatedAt:   item.UpdatedAt,
		})
		if err != nil {
			return mapWriteError("update item", err)
		}
		if n == 0 {
			return itemdomain.ErrItemNotFound
		}
		return r.publishUpserted(ctx, tx, item)
	})
}

// Delete removes an item by ID. Items referenced by purchase lines are
// protected by the foreign key and yield ErrItemInUse.
func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).DeleteItem(ctx, id)
		if err != nil {
			return mapWriteError("delete item", err)
		}
		if n == 0 {
			return itemdomain.ErrItemNotFound
		}
		if r.bus == nil {
			return nil
		}
		eventID := uuid.New()
		msg, err := events.NewEventMessage(eventID, domainevents.ItemEventVersion, domainevents.ItemDeletedEvent{
			EventID:    eventID,
			Version:    domainevents.ItemEventVersion,
			ItemID:     id,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		return r.bus.PublishTx(ctx, tx, domainevents.TopicItemDeleted, msg)
	})
}

func (r *ItemRepository) publishUpserted(ctx context.Context, tx *sql.Tx, item *models.Item) error {
	if r.bus == nil {
		return nil
	}
	eventID := uuid.New()
	msg, err := events.NewEventMessage(eventID, domainevents.ItemEventVersion, domainevents.ItemUpsertedEvent{
		EventID:     eventID,
		Version:     domainevents.ItemEventVersion,
		ItemID:      item.ID,
		Name:        item.Name.String(),
		Description: item.Description,
		Price:       item.Price,
		Stock:       item.Stock,
		Type:        item.Type.String(),
		CreatedAt:   item.CreatedAt,
		OccurredAt:  item.UpdatedAt,
	})
	if err != nil {
		return err
	}
	if err := r.bus.PublishTx(ctx, tx, domainevents.TopicItemUpserted, msg); err != nil {
		return fmt.Errorf("publish item upserted: %w", err)
	}
	return nil
}

func mapWriteError(op string, err error) error {
	switch {
	case database.IsForeignKeyViolation(err):
		return itemdomain.ErrItemInUse
	case database.IsCheckViolation(err), database.IsNumericOutOfRange(err):
		return fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// rowToItem maps a db.Item to a domain models.Item.
func rowToItem(row db.Item) *models.Item {
	return &models.Item{
		ID:          row.ID,
		Name:        models.ItemName(row.Name),
		Description: row.Description,
		Price:       row.Price,
		Stock:       int(row.Stock),
		Type:        models.ItemType(row.Type),
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}
