package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/purchase/domain/models"
)

// PurchaseRepository is the persistence interface for purchases.
type PurchaseRepository interface {
	// WithinTx runs fn in one unit of work. If fn returns an error every
	// write made through tx is rolled back; otherwise all of them commit.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx PurchaseTx) error) error

	// List returns every purchase with its lines, newest first.
	List(ctx context.Context) ([]*models.Purchase, error)

	// GetByID returns ErrPurchaseNotFound when no purchase matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Purchase, error)
}

// PurchaseTx is the set of writes available inside a purchase transaction.
type PurchaseTx interface {
	// LockStock reads the stock of the given items and holds their row locks
	// until the transaction ends. Missing ids are absent from the result.
	LockStock(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]models.StockLevel, error)

	InsertPurchase(ctx context.Context, p *models.Purchase) error

	// InsertLines stores the lines in slice order.
	InsertLines(ctx context.Context, purchaseID uuid.UUID, lines []models.PurchaseLine) error

	// DecrementStock subtracts qty from the item's stock. Affecting no row is
	// an error.
	DecrementStock(ctx context.Context, itemID uuid.UUID, qty int) error

	// PublishCreated enqueues the purchase.created event in the transaction.
	PublishCreated(ctx context.Context, p *models.Purchase) error
}
