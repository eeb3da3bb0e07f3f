package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	bookingserrors "fundi/internal/bookings/errors"
	"fundi/internal/bookings/repository"
	"fundi/internal/bookings/validator"
	"fundi/pkg/config"
	apperrors "fundi/pkg/errors"
	"fundi/pkg/logger"
	"fundi/pkg/model"
	"fundi/pkg/sanitizer"
)

const slotUnavailableMessage = "This time slot is no longer available."

// NotificationPublisher delivers a customer notification after a
// transition commits. Delivery is best effort; the service logs
// failures and never rolls back a committed transition over one.
type NotificationPublisher interface {
	PublishStatusChanged(ctx context.Context, booking *model.Booking, notification *model.Notification) error
}

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	UpdateStatus(ctx context.Context, id string, update *model.StatusUpdate) (*model.Booking, error)
	ListByProvider(ctx context.Context, providerID string, limit int, offset int64) ([]*model.Booking, int64, error)
	ListByCustomer(ctx context.Context, customerID string, limit int, offset int64) ([]*model.Booking, int64, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	lockRepo  repository.SlotLockRepository
	validator *validator.BookingValidator
	publisher NotificationPublisher
	cfg       *config.Config
	logger    *logger.Logger
}

func NewBookingService(
	repo repository.BookingRepository,
	lockRepo repository.SlotLockRepository,
	bv *validator.BookingValidator,
	publisher NotificationPublisher,
	cfg *config.Config,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		repo:      repo,
		lockRepo:  lockRepo,
		validator: bv,
		publisher: publisher,
		cfg:       cfg,
		logger:    log,
	}
}

// slotLockID encodes one (provider, timestamp) slot. Two reservations
// for the same slot produce the same ID and collide on insert.
func slotLockID(providerID string, date time.Time) string {
	return fmt.Sprintf("slot:%s:%d", providerID, date.UnixMilli())
}

// Create reserves a slot and inserts the booking. The advisory lock
// serializes concurrent reservations for the same slot; the conflict
// check and the insert then run inside one transaction, so losing the
// race is impossible rather than unlikely.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	booking.CustomerName = sanitizer.NormalizeName(booking.CustomerName)
	booking.CustomerEmail = sanitizer.NormalizeEmail(booking.CustomerEmail)
	booking.CustomerPhone = sanitizer.NormalizePhone(booking.CustomerPhone)
	booking.Address = sanitizer.NormalizeAddress(booking.Address)
	booking.Notes = sanitizer.TrimAndNormalize(booking.Notes)

	// Every booking starts Pending regardless of what the client sent.
	booking.Status = model.StatusPending

	if err := s.validator.Validate(booking); err != nil {
		return nil, validationError(err)
	}

	// Slot identity is the exact millisecond timestamp in UTC.
	booking.Date = booking.Date.UTC().Truncate(time.Millisecond)

	lock := &model.SlotLock{
		ID:        slotLockID(booking.ProviderID, booking.Date),
		ExpiresAt: time.Now().UTC().Add(s.cfg.SlotLockTTL),
	}

	if err := s.lockRepo.Acquire(ctx, lock); err != nil {
		if errors.Is(err, bookingserrors.ErrLockHeld) {
			return nil, apperrors.SlotUnavailable(slotUnavailableMessage)
		}
		return nil, apperrors.Internal("failed to reserve slot", err)
	}

	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.lockRepo.Release(releaseCtx, lock.ID); err != nil {
			// The TTL index reclaims it; the slot stays blocked until then.
			s.logger.Warn("failed to release slot lock",
				"lock_id", lock.ID,
				"error", err.Error(),
			)
		}
	}()

	err := s.repo.ExecuteTransaction(ctx, func(sessCtx context.Context) error {
		existing, err := s.repo.FindActiveBooking(sessCtx, booking.ProviderID, booking.Date)
		if err != nil && !errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.Internal("failed to check slot availability", err)
		}
		if existing != nil {
			return apperrors.SlotUnavailable(slotUnavailableMessage)
		}

		if err := s.repo.Insert(sessCtx, booking); err != nil {
			return apperrors.Internal("failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		"booking_id", booking.ID,
		"provider_id", booking.ProviderID,
		"date", booking.Date.Format(time.RFC3339),
	)
	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("booking", id)
		}
		return nil, apperrors.Internal("failed to fetch booking", err)
	}
	return booking, nil
}

// UpdateStatus runs one state-machine transition. The booking is loaded
// with the ownership filter, so a provider asking about someone else's
// booking gets the same NotFound as a booking that does not exist.
func (s *bookingService) UpdateStatus(ctx context.Context, id string, update *model.StatusUpdate) (*model.Booking, error) {
	if err := s.validator.ValidateStatusUpdate(update); err != nil {
		return nil, validationError(err)
	}

	var updated *model.Booking
	var notification *model.Notification

	err := s.repo.ExecuteTransaction(ctx, func(sessCtx context.Context) error {
		current, err := s.repo.FindOwned(sessCtx, id, update.ProviderID)
		if err != nil {
			if errors.Is(err, bookingserrors.ErrNotFound) {
				return apperrors.NotFoundWithID("booking", id)
			}
			return apperrors.Internal("failed to fetch booking", err)
		}

		// Idempotent retry: the requested status already holds.
		if current.Status == update.Status {
			updated = current
			return nil
		}

		if !CanTransition(current.Status, update.Status) {
			return apperrors.InvalidTransition(string(current.Status), string(update.Status))
		}

		updated, err = s.repo.UpdateStatus(sessCtx, id, update.ProviderID, update.Status)
		if err != nil {
			if errors.Is(err, bookingserrors.ErrNotFound) {
				return apperrors.NotFoundWithID("booking", id)
			}
			return apperrors.Internal("failed to update booking status", err)
		}

		notification = notificationFor(updated, update.Status)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if notification != nil {
		if err := s.publisher.PublishStatusChanged(ctx, updated, notification); err != nil {
			s.logger.Error("failed to publish booking notification",
				"booking_id", updated.ID,
				"status", updated.Status,
				"error", err.Error(),
			)
		}
	}

	s.logger.Info("booking status updated",
		"booking_id", updated.ID,
		"status", updated.Status,
	)
	return updated, nil
}

func (s *bookingService) ListByProvider(ctx context.Context, providerID string, limit int, offset int64) ([]*model.Booking, int64, error) {
	return s.list(ctx,
		func(ctx context.Context) ([]*model.Booking, error) {
			return s.repo.FindByProvider(ctx, providerID, limit, offset)
		},
		func(ctx context.Context) (int64, error) {
			return s.repo.CountByProvider(ctx, providerID)
		},
	)
}

func (s *bookingService) ListByCustomer(ctx context.Context, customerID string, limit int, offset int64) ([]*model.Booking, int64, error) {
	return s.list(ctx,
		func(ctx context.Context) ([]*model.Booking, error) {
			return s.repo.FindByCustomer(ctx, customerID, limit, offset)
		},
		func(ctx context.Context) (int64, error) {
			return s.repo.CountByCustomer(ctx, customerID)
		},
	)
}

// list runs the page query and the total count concurrently.
func (s *bookingService) list(
	ctx context.Context,
	find func(context.Context) ([]*model.Booking, error),
	count func(context.Context) (int64, error),
) ([]*model.Booking, int64, error) {
	var (
		wg       sync.WaitGroup
		bookings []*model.Booking
		total    int64
		findErr  error
		countErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		bookings, findErr = find(ctx)
	}()
	go func() {
		defer wg.Done()
		total, countErr = count(ctx)
	}()
	wg.Wait()

	if findErr != nil {
		return nil, 0, apperrors.Internal("failed to list bookings", findErr)
	}
	if countErr != nil {
		return nil, 0, apperrors.Internal("failed to count bookings", countErr)
	}

	if bookings == nil {
		bookings = []*model.Booking{}
	}
	return bookings, total, nil
}

// validationError maps validator output onto the shared error taxonomy.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]any, len(verrs))
		for _, ve := range verrs {
			details[ve.Field] = ve.Message
		}
		return apperrors.Validation("booking validation failed", details)
	}
	return apperrors.Validation(err.Error(), nil)
}
