package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/item/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ItemRepository interface {
	// Save inserts a new Item.
	Save(ctx context.Context, item *models.Item) error
	// GetByID returns ErrItemNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	// List returns every item ordered by name.
	List(ctx context.Context) ([]*models.Item, error)
	// Update persists the editable fields. Returns ErrItemNotFound when no row matches.
	Update(ctx context.Context, item *models.Item) error
	// Delete removes an item. Returns ErrItemNotFound when no row matches and
	// ErrItemInUse when purchase lines reference it.
	Delete(ctx context.Context, id uuid.UUID) error
}
