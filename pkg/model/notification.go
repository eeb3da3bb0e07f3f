package model

import "time"

// Notification is the outcome of a state transition that the customer
// should hear about. The state machine computes it; delivery happens
// elsewhere, after the transaction commits.
type Notification struct {
	BookingID      string    `json:"booking_id"`
	RecipientName  string    `json:"recipient_name"`
	RecipientEmail string    `json:"recipient_email"`
	RecipientPhone string    `json:"recipient_phone"`
	Message        string    `json:"message"`
	OccurredAt     time.Time `json:"occurred_at"`
}
