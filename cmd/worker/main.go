package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/pkg/cache"
	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/pkg/telemetry"
	itemEvents "github.com/ghuser/stockroom/services/item/domain/events"
	purchaseEvents "github.com/ghuser/stockroom/services/purchase/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	itemCache := cache.NewItemCache(a.Redis)
	handlers := map[string]events.Handler{
		purchaseEvents.TopicPurchaseCreated: handlePurchaseCreated(a, itemCache),
		itemEvents.TopicItemUpserted:        handleItemUpserted(a, itemCache),
		itemEvents.TopicItemDeleted:         handleItemDeleted(a, itemCache),
	}

	topics := make([]string, 0, len(handlers))
	for topic, h := range handlers {
		errCh, err := a.EventBus.Subscribe(ctx, topic, h)
		if err != nil {
			return err
		}
		go drain(ctx, a, topic, errCh)
		topics = append(topics, topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// drain logs subscriber errors so the channel never blocks.
func drain(ctx context.Context, a *app.Application, topic string, errCh <-chan error) {
	for err := range errCh {
		a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
	}
}

// handlePurchaseCreated evicts the cached entries of every purchased item,
// since their stock just changed. Handlers must be idempotent: EventBus
// retries up to 3x on failure.
func handlePurchaseCreated(a *app.Application, c *cache.ItemCache) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.DecodeEvent[purchaseEvents.PurchaseCreatedEvent](msg)
		if err != nil {
			// Redelivery cannot fix a malformed payload.
			a.Logger.ErrorContext(ctx, "dropping undecodable event", "topic", purchaseEvents.TopicPurchaseCreated, "error", err)
			return nil
		}

		if err := c.Delete(ctx, evt.ItemIDs()...); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "item cache evicted after purchase",
			"purchase_id", evt.PurchaseID, "items", len(evt.Lines))
		return nil
	}
}

// handleItemUpserted evicts rather than writes the new state: events from
// different topics may arrive out of order, and the API repopulates the
// entry on its next read.
func handleItemUpserted(a *app.Application, c *cache.ItemCache) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.DecodeEvent[itemEvents.ItemUpsertedEvent](msg)
		if err != nil {
			a.Logger.ErrorContext(ctx, "dropping undecodable event", "topic", itemEvents.TopicItemUpserted, "error", err)
			return nil
		}
		return evict(ctx, a, c, evt.ItemID)
	}
}

func handleItemDeleted(a *app.Application, c *cache.ItemCache) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.DecodeEvent[itemEvents.ItemDeletedEvent](msg)
		if err != nil {
			a.Logger.ErrorContext(ctx, "dropping undecodable event", "topic", itemEvents.TopicItemDeleted, "error", err)
			return nil
		}
		return evict(ctx, a, c, evt.ItemID)
	}
}

func evict(ctx context.Context, a *app.Application, c *cache.ItemCache, id uuid.UUID) error {
	if err := c.Delete(ctx, id); err != nil {
		return err
	}
	a.Logger.DebugContext(ctx, "item cache evicted", "item_id", id)
	return nil
}
