package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/database"
	"github.com/ghuser/stockroom/pkg/events"
	purchasedomain "github.com/ghuser/stockroom/services/purchase/domain"
	domainevents "github.com/ghuser/stockroom/services/purchase/domain/events"
	"github.com/ghuser/stockroom/services/purchase/domain/models"
	"github.com/ghuser/stockroom/services/purchase/domain/repositories"
	"github.com/ghuser/stockroom/services/purchase/infrastructure/persistence/postgres/db"
)

// PurchaseRepository implements repositories.PurchaseRepository against PostgreSQL.
type PurchaseRepository struct {
	db  *database.Database
	bus *events.EventBus
}

var _ repositories.PurchaseRepository = (*PurchaseRepository)(nil)

// NewPurchaseRepository returns a PurchaseRepository. A nil bus disables
// event publishing.
func NewPurchaseRepository(database *database.Database, bus *events.EventBus) *PurchaseRepository {
	return &PurchaseRepository{db: database, bus: bus}
}

// WithinTx runs fn in a single *sql.Tx. Domain errors returned by fn pass
// through unchanged; store errors are classified as ErrStoreUnavailable or
// ErrTransactionFailed.
func (r *PurchaseRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx repositories.PurchaseTx) error) error {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		return fn(ctx, &purchaseTx{q: db.New(tx), tx: tx, bus: r.bus})
	})
	return classify(err)
}

// List returns every purchase with its lines, newest first.
func (r *PurchaseRepository) List(ctx context.Context) ([]*models.Purchase, error) {
	rows, err := db.New(r.db.DB()).ListPurchaseRows(ctx)
	if err != nil {
		return nil, classifyRead("list purchases", err)
	}
	return models.FoldRows(toRows(rows)), nil
}

// GetByID returns one purchase with its lines.
func (r *PurchaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Purchase, error) {
	rows, err := db.New(r.db.DB()).GetPurchaseRows(ctx, id)
	if err != nil {
		return nil, classifyRead("get purchase", err)
	}
	folded := models.FoldRows(toRows(rows))
	if len(folded) == 0 {
		return nil, purchasedomain.ErrPurchaseNotFound
	}
	return folded[0], nil
}

type purchaseTx struct {
	q   *db.Queries
	tx  *sql.Tx
	bus *events.EventBus
}

func (t *purchaseTx) LockStock(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]models.StockLevel, error) {
	rows, err := t.q.LockItemStock(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("lock stock: %w", err)
	}
	levels := make(map[uuid.UUID]models.StockLevel, len(rows))
	for _, row := range rows {
		levels[row.ID] = models.StockLevel{ItemID: row.ID, Name: row.Name, Stock: int(row.Stock)}
	}
	return levels, nil
}

func (t *purchaseTx) InsertPurchase(ctx context.Context, p *models.Purchase) error {
	if err := t.q.InsertPurchase(ctx, db.InsertPurchaseParams{
		ID:              p.ID,
		CustomerName:    p.CustomerName,
		ShippingAddress: p.ShippingAddress,
		CreatedAt:       p.CreatedAt,
	}); err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

func (t *purchaseTx) InsertLines(ctx context.Context, purchaseID uuid.UUID, lines []models.PurchaseLine) error {
	for i, l := range lines {
		if l.Quantity <= 0 || l.Quantity > models.MaxQuantity {
			return fmt.Errorf("insert purchase line %d: quantity %d out of range", i, l.Quantity)
		}
		if err := t.q.InsertPurchaseItem(ctx, db.InsertPurchaseItemParams{
			PurchaseID: purchaseID,
			Position:   int32(i),
			ItemID:     l.ItemID,
			Quantity:   int32(l.Quantity),
		}); err != nil {
			return fmt.Errorf("insert purchase line %d: %w", i, err)
		}
	}
	return nil
}

func (t *purchaseTx) DecrementStock(ctx context.Context, itemID uuid.UUID, qty int) error {
	if qty <= 0 || qty > models.MaxQuantity {
		return fmt.Errorf("decrement stock of %s: quantity %d out of range", itemID, qty)
	}
	n, err := t.q.DecrementStock(ctx, db.DecrementStockParams{Quantity: int32(qty), ID: itemID})
	if err != nil {
		return fmt.Errorf("decrement stock of %s: %w", itemID, err)
	}
	if n == 0 {
		return fmt.Errorf("decrement stock of %s: no row updated", itemID)
	}
	return nil
}

func (t *purchaseTx) PublishCreated(ctx context.Context, p *models.Purchase) error {
	if t.bus == nil {
		return nil
	}
	evt := domainevents.PurchaseCreatedEvent{
		EventID:      uuid.New(),
		Version:      domainevents.PurchaseCreatedVersion,
		PurchaseID:   p.ID,
		CustomerName: p.CustomerName,
		Lines:        make([]domainevents.PurchasedLine, len(p.Lines)),
		OccurredAt:   p.CreatedAt,
	}
	for i, l := range p.Lines {
		evt.Lines[i] = domainevents.PurchasedLine{ItemID: l.ItemID, Quantity: l.Quantity}
	}
	msg, err := events.NewEventMessage(evt.EventID, evt.Version, evt)
	if err != nil {
		return fmt.Errorf("encode purchase created: %w", err)
	}
	if err := t.bus.PublishTx(ctx, t.tx, domainevents.TopicPurchaseCreated, msg); err != nil {
		return fmt.Errorf("publish purchase created: %w", err)
	}
	return nil
}

func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, purchasedomain.ErrInvalidRequest),
		errors.Is(err, purchasedomain.ErrUnknownItem),
		errors.Is(err, purchasedomain.ErrInsufficientStock),
		errors.Is(err, purchasedomain.ErrStoreUnavailable),
		errors.Is(err, purchasedomain.ErrTransactionFailed):
		return err
	case database.IsUnavailable(err):
		return fmt.Errorf("%w: %w", purchasedomain.ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", purchasedomain.ErrTransactionFailed, err)
	}
}

func classifyRead(op string, err error) error {
	if database.IsUnavailable(err) {
		return fmt.Errorf("%s: %w: %w", op, purchasedomain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func toRows(in []db.ListPurchaseRowsRow) []models.PurchaseRow {
	out := make([]models.PurchaseRow, len(in))
	for i, r := range in {
		out[i] = models.PurchaseRow{
			PurchaseID:      r.ID,
			CustomerName:    r.CustomerName,
			ShippingAddress: r.ShippingAddress,
			CreatedAt:       r.CreatedAt.UTC(),
			HasLine:         r.ItemID.Valid,
			ItemID:          r.ItemID.UUID,
			ItemName:        r.ItemName.String,
			Price:           r.Price.Decimal,
			Quantity:        int(r.Quantity.Int32),
			ItemType:        r.ItemType.String,
		}
	}
	return out
}
