package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "fundi/pkg/errors"
	"fundi/pkg/logger"
	"fundi/pkg/model"

	"github.com/julienschmidt/httprouter"
)

// Mock service for testing
type mockBookingService struct {
	createFunc       func(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	updateStatusFunc func(ctx context.Context, id string, update *model.StatusUpdate) (*model.Booking, error)
	getByIDFunc      func(ctx context.Context, id string) (*model.Booking, error)
}

func (m *mockBookingService) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	return booking, nil
}

func (m *mockBookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, apperrors.NotFoundWithID("booking", id)
}

func (m *mockBookingService) UpdateStatus(ctx context.Context, id string, update *model.StatusUpdate) (*model.Booking, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, update)
	}
	return nil, apperrors.NotFoundWithID("booking", id)
}

func (m *mockBookingService) ListByProvider(ctx context.Context, providerID string, limit int, offset int64) ([]*model.Booking, int64, error) {
	return []*model.Booking{}, 0, nil
}

func (m *mockBookingService) ListByCustomer(ctx context.Context, customerID string, limit int, offset int64) ([]*model.Booking, int64, error) {
	return []*model.Booking{}, 0, nil
}

func testRouter(svc *mockBookingService) *httprouter.Router {
	log := logger.New(logger.Config{
		Level:  logger.ERROR,
		Format: logger.JSON,
		Output: io.Discard,
	})
	router := httprouter.New()
	NewBookingHandler(svc, log).RegisterRoutes(router)
	return router
}

func TestCreate_InvalidJSON(t *testing.T) {
	router := testRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestCreate_ReturnsCreated(t *testing.T) {
	svc := &mockBookingService{
		createFunc: func(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
			booking.ID = "11111111-1111-4111-8111-111111111111"
			booking.Status = model.StatusPending
			return booking, nil
		},
	}
	router := testRouter(svc)

	body := `{"customer_id":"22222222-2222-4222-8222-222222222222","provider_id":"33333333-3333-4333-8333-333333333333","service_id":"44444444-4444-4444-8444-444444444444","date":"2026-09-14T10:00:00Z","customer_name":"Jane Doe","customer_email":"jane@example.com","customer_phone":"+254712345678","address":"12 Riverside Drive, Nairobi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data model.Booking `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Status != model.StatusPending {
		t.Errorf("expected Pending, got %s", resp.Data.Status)
	}
}

func TestUpdateStatus_ConflictSurfacesAsConflict(t *testing.T) {
	svc := &mockBookingService{
		updateStatusFunc: func(ctx context.Context, id string, update *model.StatusUpdate) (*model.Booking, error) {
			return nil, apperrors.InvalidTransition(string(model.StatusCompleted), string(update.Status))
		},
	}
	router := testRouter(svc)

	body := `{"status":"Cancelled","provider_id":"33333333-3333-4333-8333-333333333333"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/id/b-1/status", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}

	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Code != apperrors.CodeInvalidTransition {
		t.Errorf("expected code %s, got %s", apperrors.CodeInvalidTransition, resp.Code)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	router := testRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/id/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestGetByID_Found(t *testing.T) {
	booking := &model.Booking{
		ID:     "11111111-1111-4111-8111-111111111111",
		Status: model.StatusAccepted,
		Date:   time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
	}
	svc := &mockBookingService{
		getByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return booking, nil
		},
	}
	router := testRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/id/"+booking.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
