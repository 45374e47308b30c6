package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	pkgcache "github.com/ghuser/stockroom/pkg/cache"
	"github.com/ghuser/stockroom/pkg/logger"
	itemdomain "github.com/ghuser/stockroom/services/item/domain"
	"github.com/ghuser/stockroom/services/item/domain/models"
	"github.com/ghuser/stockroom/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/stockroom/services/item/domain/services"
)

// ItemCache is the read model consulted by GetByID.
type ItemCache interface {
	Get(ctx context.Context, itemID uuid.UUID) (*pkgcache.CachedItem, error)
	Set(ctx context.Context, item *pkgcache.CachedItem) error
	Delete(ctx context.Context, itemIDs ...uuid.UUID) error
}

// ItemInput is the client-supplied state of an item on create and update.
type ItemInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Type        string
}

// ItemService orchestrates item CRUD. Event publishing is handled by the
// repository layer (outbox pattern); single-item reads go through the cache.
type ItemService struct {
	repo  repositories.ItemRepository
	cache ItemCache
	log   logger.Logger
}

// NewItemService returns an ItemService. itemCache may be nil.
func NewItemService(repo repositories.ItemRepository, itemCache ItemCache, log logger.Logger) *ItemService {
	return &ItemService{repo: repo, cache: itemCache, log: log}
}

// Create validates and persists a new Item.
func (s *ItemService) Create(ctx context.Context, in ItemInput) (*models.Item, error) {
	attrs, err := toAttrs(in)
	if err != nil {
		return nil, err
	}

	item, err := models.NewItem(attrs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}
	if err := domainsvcs.ValidateItem(item); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	s.log.InfoContext(ctx, "item created", "item_id", item.ID, "stock", item.Stock)
	return item, nil
}

// Update overwrites the editable fields of an existing Item.
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, in ItemInput) (*models.Item, error) {
	attrs, err := toAttrs(in)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if err := item.Apply(attrs); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}
	if err := domainsvcs.ValidateItem(item); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	s.evict(ctx, id)

	s.log.InfoContext(ctx, "item updated", "item_id", id)
	return item, nil
}

// GetByID retrieves an Item using a read-through cache:
//  1. Check Redis first.
//  2. On a miss (or cache error), query Postgres.
//  3. Warm the cache asynchronously with the Postgres result.
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err == nil {
			return fromCache(cached), nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "item cache read failed", "item_id", id, "error", err)
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		entry := ToCache(item)
		go func() {
			if err := s.cache.Set(context.WithoutCancel(ctx), entry); err != nil {
				s.log.WarnContext(ctx, "item cache warm failed", "item_id", entry.ID, "error", err)
			}
		}()
	}

	return item, nil
}

// List returns all items ordered by name.
func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Delete removes an item. Returns ErrItemNotFound if absent and ErrItemInUse
// if purchases reference it.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	s.evict(ctx, id)

	s.log.InfoContext(ctx, "item deleted", "item_id", id)
	return nil
}

func (s *ItemService) evict(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "item cache evict failed", "item_id", id, "error", err)
	}
}

func toAttrs(in ItemInput) (models.ItemAttrs, error) {
	name, err := models.NewItemName(in.Name)
	if err != nil {
		return models.ItemAttrs{}, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}
	typ, err := models.ParseItemType(in.Type)
	if err != nil {
		return models.ItemAttrs{}, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}
	return models.ItemAttrs{
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Type:        typ,
	}, nil
}

// ToCache converts an Item to its cached representation.
func ToCache(item *models.Item) *pkgcache.CachedItem {
	return &pkgcache.CachedItem{
		ID:          item.ID,
		Name:        item.Name.String(),
		Description: item.Description,
		Price:       item.Price,
		Stock:       item.Stock,
		Type:        item.Type.String(),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func fromCache(c *pkgcache.CachedItem) *models.Item {
	return &models.Item{
		ID:          c.ID,
		Name:        models.ItemName(c.Name),
		Description: c.Description,
		Price:       c.Price,
		Stock:       c.Stock,
		Type:        models.ItemType(c.Type),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
