package service

import (
	"context"
	"io"
	"testing"
	"time"

	"fundi/pkg/logger"
	"fundi/pkg/model"
)

// ────────────────────────────────────────────────
// Mocks
// ────────────────────────────────────────────────

type mockBookingFinder struct {
	inRangeFunc func(ctx context.Context, providerID string, start, end time.Time) ([]*model.Booking, error)
	atFunc      func(ctx context.Context, date time.Time) ([]*model.Booking, error)
}

func (m *mockBookingFinder) FindActiveBookingsInRange(ctx context.Context, providerID string, start, end time.Time) ([]*model.Booking, error) {
	if m.inRangeFunc != nil {
		return m.inRangeFunc(ctx, providerID, start, end)
	}
	return nil, nil
}

func (m *mockBookingFinder) FindActiveBookingsAt(ctx context.Context, date time.Time) ([]*model.Booking, error) {
	if m.atFunc != nil {
		return m.atFunc(ctx, date)
	}
	return nil, nil
}

type mockProviderLister struct {
	profiles []*model.ProviderProfile
}

func (m *mockProviderLister) ListApprovedByCategory(ctx context.Context, categoryID string) ([]*model.ProviderProfile, error) {
	return m.profiles, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.ERROR,
		Format: logger.JSON,
		Output: io.Discard,
	})
}

// ────────────────────────────────────────────────
// Tests
// ────────────────────────────────────────────────

func TestProviderAvailability_OnlyActiveBookingsBlock(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	ten := day.Add(10 * time.Hour)

	// The store's range query already excludes cancelled and rejected
	// bookings; the engine reports what it returns, slot for slot.
	finder := &mockBookingFinder{
		inRangeFunc: func(ctx context.Context, providerID string, start, end time.Time) ([]*model.Booking, error) {
			if !start.Equal(day) || !end.Equal(day.Add(24*time.Hour)) {
				t.Errorf("expected day range [%v, %v), got [%v, %v)", day, day.Add(24*time.Hour), start, end)
			}
			return []*model.Booking{
				{ID: "t1", ProviderID: providerID, Date: ten, Status: model.StatusAccepted},
			}, nil
		},
	}

	svc := NewAvailabilityService(finder, &mockProviderLister{}, testLogger())

	availability, err := svc.ProviderAvailability(context.Background(), "prov-1", day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(availability.BookedSlots) != 1 {
		t.Fatalf("expected 1 booked slot, got %d", len(availability.BookedSlots))
	}
	if !availability.BookedSlots[0].Equal(ten) {
		t.Errorf("expected slot at %v, got %v", ten, availability.BookedSlots[0])
	}
	if availability.Date != "2026-09-14" {
		t.Errorf("unexpected date %q", availability.Date)
	}
}

func TestProviderAvailability_FreeDay(t *testing.T) {
	svc := NewAvailabilityService(&mockBookingFinder{}, &mockProviderLister{}, testLogger())

	availability, err := svc.ProviderAvailability(context.Background(), "prov-1", time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(availability.BookedSlots) != 0 {
		t.Errorf("expected no booked slots, got %d", len(availability.BookedSlots))
	}
}

func TestFindAvailableProviders_ExcludesBusy(t *testing.T) {
	slot := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	busyUser := "11111111-1111-4111-8111-111111111111"
	freeUser := "22222222-2222-4222-8222-222222222222"

	finder := &mockBookingFinder{
		atFunc: func(ctx context.Context, date time.Time) ([]*model.Booking, error) {
			return []*model.Booking{
				{ID: "b1", ProviderID: busyUser, Date: date, Status: model.StatusPending},
			}, nil
		},
	}
	lister := &mockProviderLister{
		profiles: []*model.ProviderProfile{
			{ID: "p1", UserID: busyUser, Status: model.ProviderApproved},
			{ID: "p2", UserID: freeUser, Status: model.ProviderApproved},
		},
	}

	svc := NewAvailabilityService(finder, lister, testLogger())

	available, err := svc.FindAvailableProviders(context.Background(), "cat-1", &slot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(available) != 1 {
		t.Fatalf("expected 1 available provider, got %d", len(available))
	}
	if available[0].UserID != freeUser {
		t.Errorf("expected the free provider, got %s", available[0].UserID)
	}
}

func TestFindAvailableProviders_NoSlotSkipsTimeFilter(t *testing.T) {
	finder := &mockBookingFinder{
		atFunc: func(ctx context.Context, date time.Time) ([]*model.Booking, error) {
			t.Error("category-only lookup must not query bookings")
			return nil, nil
		},
	}
	lister := &mockProviderLister{
		profiles: []*model.ProviderProfile{
			{ID: "p1", UserID: "u1", Status: model.ProviderApproved},
			{ID: "p2", UserID: "u2", Status: model.ProviderApproved},
		},
	}

	svc := NewAvailabilityService(finder, lister, testLogger())

	available, err := svc.FindAvailableProviders(context.Background(), "cat-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(available) != 2 {
		t.Errorf("expected the whole approved category, got %d providers", len(available))
	}
}

func TestFindAvailableProviders_EmptyCategory(t *testing.T) {
	called := false
	finder := &mockBookingFinder{
		atFunc: func(ctx context.Context, date time.Time) ([]*model.Booking, error) {
			called = true
			return nil, nil
		},
	}

	svc := NewAvailabilityService(finder, &mockProviderLister{}, testLogger())

	slot := time.Now()
	available, err := svc.FindAvailableProviders(context.Background(), "cat-1", &slot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(available) != 0 {
		t.Errorf("expected no providers, got %d", len(available))
	}
	if called {
		t.Error("empty category should not query bookings")
	}
}
