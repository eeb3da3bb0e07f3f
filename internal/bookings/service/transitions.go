package service

import (
	"time"

	"fundi/pkg/model"
)

// allowedTransitions is the booking state machine. A status absent from
// the map is terminal. Requesting the current status again is treated as
// an idempotent no-op, not a transition.
var allowedTransitions = map[model.BookingStatus][]model.BookingStatus{
	model.StatusPending:    {model.StatusAccepted, model.StatusRejected},
	model.StatusAccepted:   {model.StatusInProgress, model.StatusCancelled},
	model.StatusInProgress: {model.StatusCompleted},
}

// CanTransition reports whether a booking may move from current to next.
// The self-transition is always allowed so that retried requests do not
// fail after the first one landed.
func CanTransition(current, next model.BookingStatus) bool {
	if current == next {
		return true
	}
	for _, allowed := range allowedTransitions[current] {
		if next == allowed {
			return true
		}
	}
	return false
}

const dateFormat = "Monday, January 2, 2006 at 3:04 PM"

// notificationFor returns the customer notification a transition
// produces, or nil when the new status is not customer-facing.
func notificationFor(booking *model.Booking, next model.BookingStatus) *model.Notification {
	var message string
	switch next {
	case model.StatusAccepted:
		message = "Your booking for " + booking.Date.Format(dateFormat) + " has been accepted!"
	case model.StatusRejected:
		message = "Your booking for " + booking.Date.Format(dateFormat) + " was unavailable."
	default:
		return nil
	}

	return &model.Notification{
		BookingID:      booking.ID,
		RecipientName:  booking.CustomerName,
		RecipientEmail: booking.CustomerEmail,
		RecipientPhone: booking.CustomerPhone,
		Message:        message,
		OccurredAt:     time.Now().UTC(),
	}
}
