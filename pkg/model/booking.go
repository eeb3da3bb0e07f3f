package model

import (
	"time"
)

// BookingStatus is the lifecycle state of an appointment.
type BookingStatus string

const (
	StatusPending    BookingStatus = "Pending"
	StatusAccepted   BookingStatus = "Accepted"
	StatusRejected   BookingStatus = "Rejected"
	StatusInProgress BookingStatus = "InProgress"
	StatusCompleted  BookingStatus = "Completed"
	StatusCancelled  BookingStatus = "Cancelled"
)

// ActiveStatuses returns the statuses that occupy a slot. A booking that is
// Cancelled or Rejected frees its slot for re-booking.
func ActiveStatuses() []BookingStatus {
	return []BookingStatus{StatusPending, StatusAccepted, StatusInProgress, StatusCompleted}
}

// IsValid reports whether s is one of the six known statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether s has no outgoing transitions.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Active reports whether a booking in status s occupies its slot.
func (s BookingStatus) Active() bool {
	return s != StatusCancelled && s != StatusRejected
}

// Booking is one appointment: a single exact timestamp for one provider.
// The customer contact fields are a snapshot taken at booking time and
// never track the live customer record.
type Booking struct {
	ID         string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,uuid4"`
	CustomerID string    `json:"customer_id" bson:"customer_id" validate:"required,uuid4"`
	ProviderID string    `json:"provider_id" bson:"provider_id" validate:"required,uuid4"`
	ServiceID  string    `json:"service_id" bson:"service_id" validate:"required,uuid4"`
	Date       time.Time `json:"date" bson:"date" validate:"required"`

	Status BookingStatus `json:"status" bson:"status"`

	CustomerName  string `json:"customer_name" bson:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail string `json:"customer_email" bson:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone" bson:"customer_phone" validate:"required,e164"`
	Address       string `json:"address" bson:"address" validate:"required,min=5,max=300"`
	Notes         string `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,max=1000"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// StatusUpdate is the payload for a state-machine transition request.
// ProviderID identifies the acting provider; the update only applies to
// bookings that provider owns.
type StatusUpdate struct {
	Status     BookingStatus `json:"status" validate:"required"`
	ProviderID string        `json:"provider_id" validate:"required,uuid4"`
}
