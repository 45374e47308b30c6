package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ghuser/stockroom/purchase"

// PurchaseMetrics records the outcome of purchase transactions.
// A nil *PurchaseMetrics is valid and records nothing.
type PurchaseMetrics struct {
	created  metric.Int64Counter
	rejected metric.Int64Counter
	units    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewPurchaseMetrics registers the purchase instruments on mp.
func NewPurchaseMetrics(mp metric.MeterProvider) (*PurchaseMetrics, error) {
	meter := mp.Meter(meterName)

	created, err := meter.Int64Counter("purchases_created_total",
		metric.WithDescription("Purchases committed"))
	if err != nil {
		return nil, fmt.Errorf("purchases_created_total: %w", err)
	}
	rejected, err := meter.Int64Counter("purchases_rejected_total",
		metric.WithDescription("Purchases rolled back or refused, by reason"))
	if err != nil {
		return nil, fmt.Errorf("purchases_rejected_total: %w", err)
	}
	units, err := meter.Int64Counter("purchase_units_sold_total",
		metric.WithDescription("Stock units decremented by committed purchases"))
	if err != nil {
		return nil, fmt.Errorf("purchase_units_sold_total: %w", err)
	}
	duration, err := meter.Float64Histogram("purchase_transaction_duration_seconds",
		metric.WithDescription("Wall time of the purchase transaction"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("purchase_transaction_duration_seconds: %w", err)
	}

	return &PurchaseMetrics{
		created:  created,
		rejected: rejected,
		units:    units,
		duration: duration,
	}, nil
}

// RecordCreated counts a committed purchase of units stock units.
func (m *PurchaseMetrics) RecordCreated(ctx context.Context, units int, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := metric.WithAttributes(attribute.String("outcome", "created"))
	m.created.Add(ctx, 1)
	m.units.Add(ctx, int64(units))
	m.duration.Record(ctx, elapsed.Seconds(), outcome)
}

// RecordRejected counts a purchase that did not commit.
func (m *PurchaseMetrics) RecordRejected(ctx context.Context, reason string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	m.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attribute.String("outcome", "rejected")))
}
