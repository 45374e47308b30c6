package services

import (
	"context"
	"errors"
	"maps"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/stockroom/pkg/logger"
	purchasedomain "github.com/ghuser/stockroom/services/purchase/domain"
	"github.com/ghuser/stockroom/services/purchase/domain/models"
	"github.com/ghuser/stockroom/services/purchase/domain/repositories"
)

type memItem struct {
	Name  string
	Price decimal.Decimal
	Stock int
	Type  string
}

// memStore is an in-memory unit of work. A transaction holds mu for its whole
// duration, standing in for row locks, and rolls back by restoring a snapshot.
type memStore struct {
	mu        sync.Mutex
	items     map[uuid.UUID]memItem
	purchases []*models.Purchase
	published []uuid.UUID

	failOn    string
	failAfter int
	blockLock bool
}

func newMemStore() *memStore {
	return &memStore{items: map[uuid.UUID]memItem{}}
}

func (s *memStore) addItem(name string, price string, stock int) uuid.UUID {
	id := uuid.New()
	s.items[id] = memItem{Name: name, Price: decimal.RequireFromString(price), Stock: stock, Type: "General"}
	return id
}

func (s *memStore) stock(id uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[id].Stock
}

func (s *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx repositories.PurchaseTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := maps.Clone(s.items)
	purchases := len(s.purchases)
	published := len(s.published)

	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.items = items
		s.purchases = s.purchases[:purchases]
		s.published = s.published[:published]
		return err
	}
	return nil
}

func (s *memStore) List(_ context.Context) ([]*models.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []models.PurchaseRow
	for i := len(s.purchases) - 1; i >= 0; i-- {
		p := s.purchases[i]
		if len(p.Lines) == 0 {
			rows = append(rows, models.PurchaseRow{PurchaseID: p.ID, CustomerName: p.CustomerName, CreatedAt: p.CreatedAt})
		}
		for _, l := range p.Lines {
			it := s.items[l.ItemID]
			rows = append(rows, models.PurchaseRow{
				PurchaseID: p.ID, CustomerName: p.CustomerName, ShippingAddress: p.ShippingAddress, CreatedAt: p.CreatedAt,
				HasLine: true, ItemID: l.ItemID, ItemName: it.Name, Price: it.Price, Quantity: l.Quantity, ItemType: it.Type,
			})
		}
	}
	return models.FoldRows(rows), nil
}

func (s *memStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Purchase, error) {
	all, _ := s.List(ctx)
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, purchasedomain.ErrPurchaseNotFound
}

type memTx struct {
	s          *memStore
	decrements int
}

var errInjected = errors.New("injected write failure")

func (t *memTx) LockStock(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.StockLevel, error) {
	if t.s.blockLock {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	out := make(map[uuid.UUID]models.StockLevel)
	for _, id := range ids {
		if it, ok := t.s.items[id]; ok {
			out[id] = models.StockLevel{ItemID: id, Name: it.Name, Stock: it.Stock}
		}
	}
	return out, nil
}

func (t *memTx) InsertPurchase(_ context.Context, p *models.Purchase) error {
	if t.s.failOn == "purchase" {
		return errInjected
	}
	cp := *p
	cp.Lines = nil
	t.s.purchases = append(t.s.purchases, &cp)
	return nil
}

func (t *memTx) InsertLines(_ context.Context, purchaseID uuid.UUID, lines []models.PurchaseLine) error {
	if t.s.failOn == "lines" {
		return errInjected
	}
	for _, p := range t.s.purchases {
		if p.ID == purchaseID {
			p.Lines = append([]models.PurchaseLine(nil), lines...)
		}
	}
	return nil
}

func (t *memTx) DecrementStock(_ context.Context, id uuid.UUID, qty int) error {
	if t.s.failOn == "decrement" && t.decrements == t.s.failAfter {
		return errInjected
	}
	t.decrements++
	it, ok := t.s.items[id]
	if !ok {
		return errors.New("no row updated")
	}
	it.Stock -= qty
	t.s.items[id] = it
	return nil
}

func (t *memTx) PublishCreated(_ context.Context, p *models.Purchase) error {
	if t.s.failOn == "publish" {
		return errInjected
	}
	t.s.published = append(t.s.published, p.ID)
	return nil
}

func newService(store *memStore) *PurchaseService {
	return NewPurchaseService(store, logger.Discard(), nil, time.Second)
}

func order(lines ...LineInput) PlaceInput {
	return PlaceInput{CustomerName: "Ada", ShippingAddress: "1 Loop Rd", Lines: lines}
}

func TestPlace_Success(t *testing.T) {
	store := newMemStore()
	mug := store.addItem("Mug", "5.00", 10)
	pen := store.addItem("Pen", "1.25", 4)
	svc := newService(store)

	p, err := svc.Place(context.Background(), order(LineInput{mug, 3}, LineInput{pen, 4}))
	require.NoError(t, err)

	assert.Equal(t, 7, store.stock(mug))
	assert.Equal(t, 0, store.stock(pen))
	require.Len(t, store.purchases, 1)
	assert.Equal(t, p.ID, store.purchases[0].ID)
	require.Len(t, store.purchases[0].Lines, 2)
	assert.Equal(t, mug, store.purchases[0].Lines[0].ItemID)
	assert.Equal(t, []uuid.UUID{p.ID}, store.published)
}

func TestPlace_ExactStockDrainsToZero(t *testing.T) {
	store := newMemStore()
	mug := store.addItem("Mug", "5.00", 10)

	_, err := newService(store).Place(context.Background(), order(LineInput{mug, 10}))
	require.NoError(t, err)
	assert.Equal(t, 0, store.stock(mug))
}

func TestPlace_InsufficientStockChangesNothing(t *testing.T) {
	store := newMemStore()
	mug := store.addItem("Mug", "5.00", 10)

	_, err := newService(store).Place(context.Background(), order(LineInput{mug, 15}))
	require.ErrorIs(t, err, purchasedomain.ErrInsufficientStock)

	var detail *purchasedomain.InsufficientStockError
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, mug, detail.ItemID)
	assert.Equal(t, 10, detail.Available)
	assert.Equal(t, 15, detail.Requested)

	assert.Equal(t, 10, store.stock(mug))
	assert.Empty(t, store.purchases)
	assert.Empty(t, store.published)
}

func TestPlace_DuplicateLinesSummed(t *testing.T) {
	store := newMemStore()
	mug := store.addItem("Mug", "5.00", 10)

	_, err := newService(store).Place(context.Background(), order(LineInput{mug, 6}, LineInput{mug, 6}))
	require.ErrorIs(t, err, purchasedomain.ErrInsufficientStock)
	assert.Equal(t, 10, store.stock(mug))
}

func TestPlace_QuantityOverflowNeverBypassesStock(t *testing.T) {
	store := newMemStore()
	mug := store.addItem("Mug", "5.00", 10)
	svc := newService(store)
	ctx := context.Background()

	_, err := svc.Place(ctx, order(LineInput{mug, math.MaxInt64}, LineInput{mug, 2}))
	require.ErrorIs(t, err, purchasedomain.ErrInvalidRequest)

	_, err = svc.Place(ctx, order(LineInput{mug, math.MaxInt64 - (1 << 32) + 6}, LineInput{mug, (1 << 32) + 5}))
	require.ErrorIs(t, err, purchasedomain.ErrInvalidRequest)

	_, err = svc.Place(ctx, order(LineInput{mug, models.MaxQuantity}, LineInput{mug, models.MaxQuantity}))
	require.ErrorIs(t, err, purchasedomain.ErrInsufficientStock)

	assert.Equal(t, 10, store.stock(mug))
	assert.Empty(t, store.purchases)
}

func TestPlace_UnknownItemChangesNothing(t *testing.T) {
	store := newMemStore()
	mug := store.addItem("Mug", "5.00", 10)
	ghost := uuid.New()

	_, err := newService(store).Place(context.Background(), order(LineInput{mug, 1}, LineInput{ghost, 1}))
	require.ErrorIs(t, err, purchasedomain.ErrUnknownItem)

	var detail *purchasedomain.UnknownItemError
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, ghost, detail.ItemID)
	assert.Equal(t, 10, store.stock(mug))
	assert.Empty(t, store.purchases)
}

func TestPlace_InvalidRequestNeverOpensTx(t *testing.T) {
	store := newMemStore()
	mug := store.addItem("Mug", "5.00", 10)
	svc := newService(store)

	tests := []struct {
		name string
		in   PlaceInput
	}{
		{"blank customer", PlaceInput{CustomerName: " ", ShippingAddress: "x", Lines: []LineInput{{mug, 1}}}},
		{"blank address", PlaceInput{CustomerName: "Ada", Lines: []LineInput{{mug, 1}}}},
		{"no lines", PlaceInput{CustomerName: "Ada", ShippingAddress: "x"}},
		{"zero quantity", order(LineInput{mug, 0})},
		{"nil item", order(LineInput{uuid.Nil, 1})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store.blockLock = true // a transaction would hang until the timeout
			defer func() { store.blockLock = false }()

			_, err := svc.Place(context.Background(), tt.in)
			require.ErrorIs(t, err, purchasedomain.ErrInvalidRequest)
		})
	}
	assert.Equal(t, 10, store.stock(mug))
}

func TestPlace_WriteFailureRollsBack(t *testing.T) {
	for _, stage := range []string{"purchase", "lines", "decrement", "publish"} {
		t.Run(stage, func(t *testing.T) {
			store := newMemStore()
			mug := store.addItem("Mug", "5.00", 10)
			pen := store.addItem("Pen", "1.00", 10)
			store.failOn = stage
			store.failAfter = 1 // second decrement fails after the first applied

			_, err := newService(store).Place(context.Background(), order(LineInput{mug, 2}, LineInput{pen, 3}))
			require.ErrorIs(t, err, purchasedomain.ErrTransactionFailed)
			require.ErrorIs(t, err, errInjected)

			assert.Equal(t, 10, store.stock(mug))
			assert.Equal(t, 10, store.stock(pen))
			assert.Empty(t, store.purchases)
			assert.Empty(t, store.published)
		})
	}
}

func TestPlace_TimeoutIsStoreUnavailable(t *testing.T) {
	store := newMemStore()
	mug := store.addItem("Mug", "5.00", 10)
	store.blockLock = true
	svc := NewPurchaseService(store, logger.Discard(), nil, 20*time.Millisecond)

	_, err := svc.Place(context.Background(), order(LineInput{mug, 1}))
	require.ErrorIs(t, err, purchasedomain.ErrStoreUnavailable)
	assert.Equal(t, 10, store.stock(mug))
}

func TestPlace_ConcurrentPurchasesSerialize(t *testing.T) {
	store := newMemStore()
	mug := store.addItem("Mug", "5.00", 100)
	svc := newService(store)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Place(context.Background(), order(LineInput{mug, 60}))
		}(i)
	}
	wg.Wait()

	var ok, short int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, purchasedomain.ErrInsufficientStock):
			short++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, short)
	assert.Equal(t, 40, store.stock(mug))
	assert.Len(t, store.purchases, 1)
}

func TestList_FiltersAndTotals(t *testing.T) {
	store := newMemStore()
	mug := store.addItem("Mug", "5.00", 10)
	pen := store.addItem("Pen", "1.00", 10)
	svc := newService(store)
	ctx := context.Background()

	first, err := svc.Place(ctx, order(LineInput{mug, 3}))
	require.NoError(t, err)
	second, err := svc.Place(ctx, PlaceInput{CustomerName: "Bob", ShippingAddress: "2 Main St", Lines: []LineInput{{pen, 2}}})
	require.NoError(t, err)

	all, total, err := svc.List(ctx, models.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest first")
	assert.True(t, all[1].Total().Equal(decimal.RequireFromString("15")), "total = %s", all[1].Total())

	byItem, total, err := svc.List(ctx, models.ListFilter{Query: "mug"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, first.ID, byItem[0].ID)

	again, _, err := svc.List(ctx, models.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, all, again)
}

func TestGet(t *testing.T) {
	store := newMemStore()
	mug := store.addItem("Mug", "5.00", 10)
	svc := newService(store)

	p, err := svc.Place(context.Background(), order(LineInput{mug, 1}))
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mug", got.Lines[0].Name)

	_, err = svc.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, purchasedomain.ErrPurchaseNotFound)
}

func TestClassify(t *testing.T) {
	ctx := context.Background()
	assert.ErrorIs(t, classify(ctx, errors.New("boom")), purchasedomain.ErrTransactionFailed)
	assert.ErrorIs(t, classify(ctx, context.DeadlineExceeded), purchasedomain.ErrStoreUnavailable)

	unknown := &purchasedomain.UnknownItemError{ItemID: uuid.New()}
	assert.Same(t, unknown, classify(ctx, unknown))
}
