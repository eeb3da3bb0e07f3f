package notifier

import (
	"context"

	"fundi/internal/notifications/events"
	"fundi/pkg/logger"
)

// Notifier delivers a booking notification to the customer over some
// channel. Implementations must be safe for concurrent use.
type Notifier interface {
	Notify(ctx context.Context, event events.BookingStatusChanged) error
}

// LogNotifier writes notifications to the structured log instead of an
// outbound channel. It is the default delivery backend until an email
// or SMS provider is wired in.
type LogNotifier struct {
	log *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, event events.BookingStatusChanged) error {
	n.log.Info("delivering booking notification",
		"booking_id", event.BookingID,
		"status", event.Status,
		"recipient", event.RecipientEmail,
		"message", event.Message,
	)
	return nil
}
