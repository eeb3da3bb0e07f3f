package model

import "time"

// ProviderStatus is the review state of a provider application.
type ProviderStatus string

const (
	ProviderPendingApproval ProviderStatus = "PENDING_APPROVAL"
	ProviderApproved        ProviderStatus = "APPROVED"
	ProviderRejected        ProviderStatus = "REJECTED"
	ProviderInactive        ProviderStatus = "INACTIVE"
)

// IsValid reports whether s is one of the known review states.
func (s ProviderStatus) IsValid() bool {
	switch s {
	case ProviderPendingApproval, ProviderApproved, ProviderRejected, ProviderInactive:
		return true
	}
	return false
}

// ProviderProfile is a service provider's public listing plus its review
// state. UserID references the provider's user account; bookings reference
// providers by UserID, not profile ID.
type ProviderProfile struct {
	ID           string         `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,uuid4"`
	UserID       string         `json:"user_id" bson:"user_id" validate:"required,uuid4"`
	CategoryID   string         `json:"category_id" bson:"category_id" validate:"required,uuid4"`
	BusinessName string         `json:"business_name" bson:"business_name" validate:"required,min=2,max=100"`
	Bio          string         `json:"bio,omitempty" bson:"bio,omitempty" validate:"omitempty,max=1000"`
	Address      string         `json:"address,omitempty" bson:"address,omitempty" validate:"omitempty,max=300"`
	Experience   int            `json:"experience" bson:"experience" validate:"min=0,max=80"`
	Rating       float64        `json:"rating" bson:"rating" validate:"min=0,max=5"`
	Services     []string       `json:"services,omitempty" bson:"services,omitempty" validate:"omitempty,dive,uuid4"`
	Status       ProviderStatus `json:"status" bson:"status"`
	IsVerified   bool           `json:"is_verified" bson:"is_verified"`

	RejectionReason string `json:"rejection_reason,omitempty" bson:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ProviderReview is an admin decision on a pending application.
type ProviderReview struct {
	Status          ProviderStatus `json:"status" validate:"required"`
	RejectionReason string         `json:"rejection_reason,omitempty" validate:"omitempty,min=5,max=500"`
}
