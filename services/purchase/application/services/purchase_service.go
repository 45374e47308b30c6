package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/pkg/telemetry"
	purchasedomain "github.com/ghuser/stockroom/services/purchase/domain"
	"github.com/ghuser/stockroom/services/purchase/domain/models"
	"github.com/ghuser/stockroom/services/purchase/domain/repositories"
	domainsvcs "github.com/ghuser/stockroom/services/purchase/domain/services"
)

// DefaultTxTimeout bounds a purchase transaction when no timeout is configured.
const DefaultTxTimeout = 10 * time.Second

// LineInput is one requested line as received from the client.
type LineInput struct {
	ItemID   uuid.UUID
	Quantity int
}

// PlaceInput is a purchase request as received from the client.
type PlaceInput struct {
	CustomerName    string
	ShippingAddress string
	Lines           []LineInput
}

// PurchaseService creates and reads purchases.
type PurchaseService struct {
	repo      repositories.PurchaseRepository
	log       logger.Logger
	metrics   *telemetry.PurchaseMetrics
	txTimeout time.Duration
}

// NewPurchaseService returns a PurchaseService. metrics may be nil; a
// non-positive txTimeout selects DefaultTxTimeout.
func NewPurchaseService(
	repo repositories.PurchaseRepository,
	log logger.Logger,
	metrics *telemetry.PurchaseMetrics,
	txTimeout time.Duration,
) *PurchaseService {
	if txTimeout <= 0 {
		txTimeout = DefaultTxTimeout
	}
	return &PurchaseService{repo: repo, log: log, metrics: metrics, txTimeout: txTimeout}
}

// Place records a purchase and decrements stock for every line, or changes
// nothing. Input is validated before the transaction begins. Inside it, the
// referenced stock rows are locked, checked against the summed demand per
// item, the purchase and its lines are inserted, stock is decremented and
// purchase.created is enqueued; any failure rolls all of it back.
func (s *PurchaseService) Place(ctx context.Context, in PlaceInput) (*models.Purchase, error) {
	start := time.Now()

	lines := make([]models.OrderLine, len(in.Lines))
	for i, l := range in.Lines {
		lines[i] = models.OrderLine{ItemID: l.ItemID, Quantity: l.Quantity}
	}
	order, err := models.NewOrder(in.CustomerName, in.ShippingAddress, lines)
	if err != nil {
		err = fmt.Errorf("%w: %w", purchasedomain.ErrInvalidRequest, err)
		s.reject(ctx, err, start)
		return nil, err
	}

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	var created *models.Purchase
	err = s.repo.WithinTx(txCtx, func(ctx context.Context, tx repositories.PurchaseTx) error {
		levels, err := tx.LockStock(ctx, order.ItemIDs())
		if err != nil {
			return err
		}
		if err := domainsvcs.CheckStock(order, levels); err != nil {
			return err
		}

		p := models.NewPurchase(order, levels)
		if err := tx.InsertPurchase(ctx, p); err != nil {
			return err
		}
		if err := tx.InsertLines(ctx, p.ID, p.Lines); err != nil {
			return err
		}
		for _, l := range p.Lines {
			if err := tx.DecrementStock(ctx, l.ItemID, l.Quantity); err != nil {
				return err
			}
		}
		if err := tx.PublishCreated(ctx, p); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		err = classify(txCtx, err)
		s.reject(ctx, err, start)
		return nil, err
	}

	s.metrics.RecordCreated(ctx, order.Units(), time.Since(start))
	s.log.InfoContext(ctx, "purchase created",
		"purchase_id", created.ID,
		"lines", len(created.Lines),
		"units", order.Units(),
	)
	return created, nil
}

// List returns the purchases matching f, newest first, plus the number of
// matches before pagination.
func (s *PurchaseService) List(ctx context.Context, f models.ListFilter) ([]*models.Purchase, int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list purchases: %w", err)
	}
	page, total := f.Apply(all)
	return page, total, nil
}

// Get returns one purchase.
func (s *PurchaseService) Get(ctx context.Context, id uuid.UUID) (*models.Purchase, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return p, nil
}

func (s *PurchaseService) reject(ctx context.Context, err error, start time.Time) {
	reason := rejectReason(err)
	s.metrics.RecordRejected(ctx, reason, time.Since(start))

	switch reason {
	case "store_unavailable", "transaction_failed":
		s.log.ErrorContext(ctx, "purchase transaction rolled back", "reason", reason, "error", err)
	default:
		s.log.InfoContext(ctx, "purchase rejected", "reason", reason, "error", err)
	}
}

// classify maps errors that escaped the repository onto the domain taxonomy.
func classify(txCtx context.Context, err error) error {
	switch {
	case errors.Is(err, purchasedomain.ErrInvalidRequest),
		errors.Is(err, purchasedomain.ErrUnknownItem),
		errors.Is(err, purchasedomain.ErrInsufficientStock),
		errors.Is(err, purchasedomain.ErrStoreUnavailable),
		errors.Is(err, purchasedomain.ErrTransactionFailed):
		return err
	case errors.Is(err, context.DeadlineExceeded), errors.Is(txCtx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", purchasedomain.ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", purchasedomain.ErrTransactionFailed, err)
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, purchasedomain.ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, purchasedomain.ErrUnknownItem):
		return "unknown_item"
	case errors.Is(err, purchasedomain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, purchasedomain.ErrStoreUnavailable):
		return "store_unavailable"
	default:
		return "transaction_failed"
	}
}
