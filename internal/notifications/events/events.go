package events

import "time"

// EventTypeBookingStatusChanged identifies the one event the booking
// state machine emits.
const EventTypeBookingStatusChanged = "booking.status-changed"

// SchemaVersion is bumped on any incompatible payload change.
const SchemaVersion = "1"

// BookingStatusChanged tells the notification worker that a customer
// should hear about a transition. Recipient contact comes from the
// booking's contact snapshot, not the live customer record.
type BookingStatusChanged struct {
	BookingID      string    `json:"booking_id"`
	Status         string    `json:"status"`
	RecipientName  string    `json:"recipient_name"`
	RecipientEmail string    `json:"recipient_email"`
	RecipientPhone string    `json:"recipient_phone"`
	Message        string    `json:"message"`
	OccurredAt     time.Time `json:"occurred_at"`
}
