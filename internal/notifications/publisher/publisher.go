package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"fundi/internal/notifications/events"
	"fundi/pkg/kafka"
	"fundi/pkg/logger"
	"fundi/pkg/model"
)

// Publisher pushes booking notifications onto the notification topic.
// The booking service treats delivery as best effort: a failed publish
// is logged by the caller and never fails the transition.
type Publisher interface {
	PublishStatusChanged(ctx context.Context, booking *model.Booking, notification *model.Notification) error
	Close() error
}

type kafkaPublisher struct {
	producer *kafka.Producer
	topic    string
	log      *logger.Logger
}

func NewKafkaPublisher(producer *kafka.Producer, topic string, log *logger.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		log:      log,
	}
}

func (p *kafkaPublisher) PublishStatusChanged(ctx context.Context, booking *model.Booking, notification *model.Notification) error {
	event := events.BookingStatusChanged{
		BookingID:      booking.ID,
		Status:         string(booking.Status),
		RecipientName:  notification.RecipientName,
		RecipientEmail: notification.RecipientEmail,
		RecipientPhone: notification.RecipientPhone,
		Message:        notification.Message,
		OccurredAt:     notification.OccurredAt,
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status-changed event: %w", err)
	}

	// Key by booking ID so retries for the same booking stay ordered
	// within a partition.
	msg := kafka.NewMessage().
		WithKey(booking.ID).
		WithRawValue(value).
		WithEventType(events.EventTypeBookingStatusChanged).
		WithSchemaVersion(events.SchemaVersion).
		WithSource("bookings").
		Build()

	if err := p.producer.Publish(ctx, msg); err != nil {
		return fmt.Errorf("publish status-changed event: %w", err)
	}

	p.log.Debug("published booking status notification",
		"booking_id", booking.ID,
		"status", booking.Status,
		"topic", p.topic,
	)
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}
