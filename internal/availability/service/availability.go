package service

import (
	"context"
	"time"

	apperrors "fundi/pkg/errors"
	"fundi/pkg/logger"
	"fundi/pkg/model"
)

// BookingFinder is the slice of the booking store the availability
// engine reads. Both queries see only active bookings; cancelled and
// rejected ones never block a slot.
type BookingFinder interface {
	FindActiveBookingsInRange(ctx context.Context, providerID string, start, end time.Time) ([]*model.Booking, error)
	FindActiveBookingsAt(ctx context.Context, date time.Time) ([]*model.Booking, error)
}

// ProviderLister supplies the candidate pool for provider matching.
type ProviderLister interface {
	ListApprovedByCategory(ctx context.Context, categoryID string) ([]*model.ProviderProfile, error)
}

// DayAvailability is one provider's booked slots for one calendar day.
type DayAvailability struct {
	ProviderID  string      `json:"provider_id"`
	Date        string      `json:"date"`
	BookedSlots []time.Time `json:"booked_slots"`
}

type AvailabilityService interface {
	ProviderAvailability(ctx context.Context, providerID string, day time.Time) (*DayAvailability, error)
	FindAvailableProviders(ctx context.Context, categoryID string, slot *time.Time) ([]*model.ProviderProfile, error)
}

type availabilityService struct {
	bookings  BookingFinder
	providers ProviderLister
	logger    *logger.Logger
}

func NewAvailabilityService(bookings BookingFinder, providers ProviderLister, log *logger.Logger) AvailabilityService {
	return &availabilityService{
		bookings:  bookings,
		providers: providers,
		logger:    log,
	}
}

// ProviderAvailability lists the occupied slots for one provider over
// one day. Callers subtract these from their own slot grid; the engine
// does not assume any particular appointment length or granularity.
func (s *availabilityService) ProviderAvailability(ctx context.Context, providerID string, day time.Time) (*DayAvailability, error) {
	start, end := DayRange(day)

	bookings, err := s.bookings.FindActiveBookingsInRange(ctx, providerID, start, end)
	if err != nil {
		return nil, apperrors.Internal("failed to load provider availability", err)
	}

	slots := make([]time.Time, 0, len(bookings))
	for _, b := range bookings {
		slots = append(slots, b.Date)
	}

	return &DayAvailability{
		ProviderID:  providerID,
		Date:        start.Format(dateLayout),
		BookedSlots: slots,
	}, nil
}

// FindAvailableProviders returns the approved providers in a category
// that have no active booking at the exact slot timestamp. A nil slot
// skips the time filter and lists the whole approved category.
func (s *availabilityService) FindAvailableProviders(ctx context.Context, categoryID string, slot *time.Time) ([]*model.ProviderProfile, error) {
	candidates, err := s.providers.ListApprovedByCategory(ctx, categoryID)
	if err != nil {
		return nil, apperrors.Internal("failed to load providers for category", err)
	}
	if len(candidates) == 0 {
		return []*model.ProviderProfile{}, nil
	}

	if slot == nil {
		return candidates, nil
	}

	busy, err := s.bookings.FindActiveBookingsAt(ctx, *slot)
	if err != nil {
		return nil, apperrors.Internal("failed to load bookings for slot", err)
	}

	busyProviders := make(map[string]struct{}, len(busy))
	for _, b := range busy {
		busyProviders[b.ProviderID] = struct{}{}
	}

	available := make([]*model.ProviderProfile, 0, len(candidates))
	for _, p := range candidates {
		// Bookings reference providers by user ID.
		if _, taken := busyProviders[p.UserID]; !taken {
			available = append(available, p)
		}
	}

	s.logger.Debug("provider matching complete",
		"category_id", categoryID,
		"slot", slot.Format(time.RFC3339),
		"candidates", len(candidates),
		"available", len(available),
	)
	return available, nil
}
