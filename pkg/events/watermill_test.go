package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/stockroom/pkg/logger"
)

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp
}

func TestRetryWithBackoff_SuccessOnFirstAttempt(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return nil
	}
	msg := message.NewMessage("id", nil)
	if err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, logger.Discard()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryWithBackoff_SuccessAfterRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		if calls < 3 {
			return errors.New("transient error")
		}
		return nil
	}
	msg := message.NewMessage("id", nil)
	if err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, logger.Discard()); err != nil {
		t.Fatalf("expected nil after eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	calls := 0
	permanent := errors.New("permanent error")
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return permanent
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, logger.Discard())
	if !errors.Is(err, permanent) {
		t.Fatalf("expected wrapped handler error, got %v", err)
	}
	if calls != maxRetries {
		t.Errorf("expected %d calls, got %d", maxRetries, calls)
	}
}

func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("error")
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(ctx, msg, handler, maxRetries, time.Second, logger.Discard())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call before context cancel, got %d", calls)
	}
}

func TestStartForwarder_NonForwarderMode(t *testing.T) {
	bus := &EventBus{useForwarder: false}
	if err := bus.StartForwarder(context.Background()); err == nil {
		t.Fatal("expected error for non-forwarder EventBus")
	}
}

type sampleEvent struct {
	PurchaseID string `json:"purchase_id"`
	Quantity   int    `json:"quantity"`
}

func TestNewEventMessage_MetadataAndPayload(t *testing.T) {
	eventID := uuid.New()
	msg, err := NewEventMessage(eventID, 2, sampleEvent{PurchaseID: "p-1", Quantity: 4})
	if err != nil {
		t.Fatalf("NewEventMessage: %v", err)
	}
	if got := msg.Metadata.Get(MetaEventID); got != eventID.String() {
		t.Errorf("event_id: got %q, want %q", got, eventID)
	}
	if got := msg.Metadata.Get(MetaEventVersion); got != "2" {
		t.Errorf("event_version: got %q, want 2", got)
	}
	if msg.UUID == "" {
		t.Error("expected a message UUID")
	}

	decoded, err := DecodeEvent[sampleEvent](msg)
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	if decoded.PurchaseID != "p-1" || decoded.Quantity != 4 {
		t.Errorf("unexpected decoded event: %+v", decoded)
	}
}

func TestNewEventMessage_Unmarshalable(t *testing.T) {
	if _, err := NewEventMessage(uuid.New(), 1, make(chan int)); err == nil {
		t.Fatal("expected marshal error for channel payload")
	}
}

func TestDecodeEvent_BadPayload(t *testing.T) {
	msg := message.NewMessage("id", []byte("{not json"))
	if _, err := DecodeEvent[sampleEvent](msg); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestInjectTrace_RoundTrip(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	ctx, span := otel.Tracer("test").Start(context.Background(), "publish-span")
	defer span.End()
	wantTraceID := span.SpanContext().TraceID()

	msgs := []*message.Message{message.NewMessage("a", nil), message.NewMessage("b", nil)}
	injectTrace(ctx, msgs)

	for _, msg := range msgs {
		carrier := propagation.MapCarrier{}
		for k, v := range msg.Metadata {
			carrier[k] = v
		}
		msgCtx := otel.GetTextMapPropagator().Extract(context.Background(), carrier)

		got := trace.SpanFromContext(msgCtx).SpanContext()
		if !got.IsValid() {
			t.Fatalf("message %s: extracted span context is not valid", msg.UUID)
		}
		if got.TraceID() != wantTraceID {
			t.Errorf("message %s: trace ID mismatch: want %s, got %s", msg.UUID, wantTraceID, got.TraceID())
		}
	}
}

func TestFieldsToArgs(t *testing.T) {
	args := fieldsToArgs(map[string]any{"topic": "purchase.created"})
	if len(args) != 2 || args[0] != "topic" || args[1] != "purchase.created" {
		t.Errorf("unexpected args: %v", args)
	}
}
