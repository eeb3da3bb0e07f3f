package worker

import (
	"context"
	"fmt"

	"fundi/internal/notifications/events"
	"fundi/internal/notifications/notifier"
	"fundi/pkg/kafka"
	"fundi/pkg/logger"
)

// Handler consumes booking status events and hands them to a Notifier.
// Decode failures are permanent and go to the DLQ via the consumer's
// error classification; delivery failures are retried.
type Handler struct {
	notifier notifier.Notifier
	log      *logger.Logger
}

func NewHandler(n notifier.Notifier, log *logger.Logger) *Handler {
	return &Handler{notifier: n, log: log}
}

// Handle implements kafka.MessageHandler.
func (h *Handler) Handle(ctx context.Context, msg kafka.Message) error {
	if eventType := msg.GetEventType(); eventType != events.EventTypeBookingStatusChanged {
		h.log.Warn("skipping message with unexpected event type",
			"event_type", eventType,
			"event_id", msg.GetEventID(),
		)
		return nil
	}

	var event events.BookingStatusChanged
	if err := msg.DecodeValue(&event); err != nil {
		return kafka.NewPermanentError("decode status-changed event", err)
	}

	if err := h.notifier.Notify(ctx, event); err != nil {
		return fmt.Errorf("deliver notification for booking %s: %w", event.BookingID, err)
	}

	h.log.Debug("notification processed",
		"booking_id", event.BookingID,
		"status", event.Status,
		"event_id", msg.GetEventID(),
	)
	return nil
}
