package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"fundi/internal/notifications/events"
	"fundi/pkg/kafka"
	"fundi/pkg/logger"
)

type recordingNotifier struct {
	delivered []events.BookingStatusChanged
	err       error
}

func (n *recordingNotifier) Notify(_ context.Context, event events.BookingStatusChanged) error {
	if n.err != nil {
		return n.err
	}
	n.delivered = append(n.delivered, event)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.ERROR,
		Format: logger.JSON,
		Output: io.Discard,
	})
}

func statusChangedMessage(t *testing.T, event events.BookingStatusChanged) kafka.Message {
	t.Helper()
	value, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("failed to marshal event: %v", err)
	}
	return kafka.NewMessage().
		WithKey(event.BookingID).
		WithRawValue(value).
		WithEventType(events.EventTypeBookingStatusChanged).
		Build()
}

func TestHandle_DeliversNotification(t *testing.T) {
	n := &recordingNotifier{}
	h := NewHandler(n, testLogger())

	event := events.BookingStatusChanged{
		BookingID:      "b-1",
		Status:         "Accepted",
		RecipientEmail: "jane@example.com",
		Message:        "Your booking has been accepted!",
		OccurredAt:     time.Now().UTC(),
	}

	if err := h.Handle(context.Background(), statusChangedMessage(t, event)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(n.delivered) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(n.delivered))
	}
	if n.delivered[0].BookingID != "b-1" {
		t.Errorf("unexpected booking ID %q", n.delivered[0].BookingID)
	}
}

func TestHandle_SkipsUnknownEventType(t *testing.T) {
	n := &recordingNotifier{}
	h := NewHandler(n, testLogger())

	msg := kafka.NewMessage().
		WithKey("b-1").
		WithRawValue([]byte(`{}`)).
		WithEventType("booking.deleted").
		Build()

	if err := h.Handle(context.Background(), msg); err != nil {
		t.Fatalf("unknown event types should be skipped, got %v", err)
	}
	if len(n.delivered) != 0 {
		t.Errorf("expected no deliveries, got %d", len(n.delivered))
	}
}

func TestHandle_BadPayloadIsPermanent(t *testing.T) {
	h := NewHandler(&recordingNotifier{}, testLogger())

	msg := kafka.NewMessage().
		WithKey("b-1").
		WithRawValue([]byte("{not json")).
		WithEventType(events.EventTypeBookingStatusChanged).
		Build()

	err := h.Handle(context.Background(), msg)
	if err == nil {
		t.Fatal("expected an error for a bad payload")
	}
	if kafka.ClassifyError(err) != kafka.ErrorTypePermanent {
		t.Error("decode failures must be permanent so they go to the DLQ")
	}
}

func TestHandle_DeliveryFailurePropagates(t *testing.T) {
	n := &recordingNotifier{err: errors.New("smtp unreachable")}
	h := NewHandler(n, testLogger())

	event := events.BookingStatusChanged{BookingID: "b-2", Status: "Rejected"}
	if err := h.Handle(context.Background(), statusChangedMessage(t, event)); err == nil {
		t.Fatal("expected the delivery failure to propagate for retry")
	}
}
