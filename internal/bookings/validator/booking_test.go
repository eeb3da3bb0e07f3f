package validator

import (
	"errors"
	"io"
	"testing"
	"time"

	"fundi/pkg/logger"
	"fundi/pkg/model"

	"github.com/google/uuid"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.ERROR,
		Format: logger.JSON,
		Output: io.Discard,
	})
}

func validBooking() *model.Booking {
	return &model.Booking{
		CustomerID:    uuid.NewString(),
		ProviderID:    uuid.NewString(),
		ServiceID:     uuid.NewString(),
		Date:          time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
		Status:        model.StatusPending,
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "+254712345678",
		Address:       "12 Riverside Drive, Nairobi",
	}
}

func TestValidate_ValidBooking(t *testing.T) {
	bv := NewBookingValidator(testLogger())
	if err := bv.Validate(validBooking()); err != nil {
		t.Errorf("expected valid booking to pass, got %v", err)
	}
}

func TestValidate_FieldFailures(t *testing.T) {
	bv := NewBookingValidator(testLogger())

	tests := []struct {
		name   string
		mutate func(b *model.Booking)
	}{
		{"missing customer ID", func(b *model.Booking) { b.CustomerID = "" }},
		{"non-uuid provider ID", func(b *model.Booking) { b.ProviderID = "prov-1" }},
		{"bad email", func(b *model.Booking) { b.CustomerEmail = "not-an-email" }},
		{"non-e164 phone", func(b *model.Booking) { b.CustomerPhone = "0712 345 678" }},
		{"short name", func(b *model.Booking) { b.CustomerName = "J" }},
		{"short address", func(b *model.Booking) { b.Address = "x" }},
		{"zero date", func(b *model.Booking) { b.Date = time.Time{} }},
		{"unknown status", func(b *model.Booking) { b.Status = "Archived" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := validBooking()
			tt.mutate(booking)

			err := bv.Validate(booking)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var verrs ValidationErrors
			if !errors.As(err, &verrs) || len(verrs) == 0 {
				t.Errorf("expected ValidationErrors with fields, got %v", err)
			}
		})
	}
}

func TestValidateStatusUpdate(t *testing.T) {
	bv := NewBookingValidator(testLogger())

	valid := &model.StatusUpdate{Status: model.StatusAccepted, ProviderID: uuid.NewString()}
	if err := bv.ValidateStatusUpdate(valid); err != nil {
		t.Errorf("expected valid update to pass, got %v", err)
	}

	missing := &model.StatusUpdate{Status: model.StatusAccepted}
	if err := bv.ValidateStatusUpdate(missing); err == nil {
		t.Error("expected missing provider ID to fail")
	}

	unknown := &model.StatusUpdate{Status: "Done", ProviderID: uuid.NewString()}
	if err := bv.ValidateStatusUpdate(unknown); err == nil {
		t.Error("expected unknown status to fail")
	}
}
