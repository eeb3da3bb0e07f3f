package service

import (
	"context"
	"io"
	"testing"

	providerserrors "fundi/internal/providers/errors"
	"fundi/internal/providers/validator"
	apperrors "fundi/pkg/errors"
	"fundi/pkg/logger"
	"fundi/pkg/model"

	"github.com/google/uuid"
)

// ────────────────────────────────────────────────
// Mock repository
// ────────────────────────────────────────────────

type mockProviderRepository struct {
	insertFunc       func(ctx context.Context, profile *model.ProviderProfile) error
	updateReviewFunc func(ctx context.Context, id string, review *model.ProviderReview) (*model.ProviderProfile, error)
	inserted         []*model.ProviderProfile
}

func (m *mockProviderRepository) Insert(ctx context.Context, profile *model.ProviderProfile) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, profile)
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	m.inserted = append(m.inserted, profile)
	return nil
}

func (m *mockProviderRepository) FindByID(ctx context.Context, id string) (*model.ProviderProfile, error) {
	return nil, providerserrors.ErrNotFound
}

func (m *mockProviderRepository) FindByUserID(ctx context.Context, userID string) (*model.ProviderProfile, error) {
	return nil, providerserrors.ErrNotFound
}

func (m *mockProviderRepository) ListApprovedByCategory(ctx context.Context, categoryID string) ([]*model.ProviderProfile, error) {
	return nil, nil
}

func (m *mockProviderRepository) ListByStatus(ctx context.Context, status model.ProviderStatus, limit int, offset int64) ([]*model.ProviderProfile, error) {
	return nil, nil
}

func (m *mockProviderRepository) CountByStatus(ctx context.Context, status model.ProviderStatus) (int64, error) {
	return 0, nil
}

func (m *mockProviderRepository) UpdateReview(ctx context.Context, id string, review *model.ProviderReview) (*model.ProviderProfile, error) {
	if m.updateReviewFunc != nil {
		return m.updateReviewFunc(ctx, id, review)
	}
	return nil, providerserrors.ErrNotFound
}

func testService(repo *mockProviderRepository) ProviderService {
	log := logger.New(logger.Config{
		Level:  logger.ERROR,
		Format: logger.JSON,
		Output: io.Discard,
	})
	return NewProviderService(repo, validator.NewProviderValidator(log), log)
}

func validProfile() *model.ProviderProfile {
	return &model.ProviderProfile{
		UserID:       uuid.NewString(),
		CategoryID:   uuid.NewString(),
		BusinessName: "Mwangi Plumbing Works",
		Experience:   5,
	}
}

// ────────────────────────────────────────────────
// Tests
// ────────────────────────────────────────────────

func TestApply_StartsPendingAndUnverified(t *testing.T) {
	repo := &mockProviderRepository{}
	svc := testService(repo)

	profile := validProfile()
	profile.Status = model.ProviderApproved // applicant tries to self-approve
	profile.IsVerified = true

	created, err := svc.Apply(context.Background(), profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != model.ProviderPendingApproval {
		t.Errorf("expected PENDING_APPROVAL, got %s", created.Status)
	}
	if created.IsVerified {
		t.Error("new applications must not be verified")
	}
}

func TestApply_DuplicateProfile(t *testing.T) {
	repo := &mockProviderRepository{
		insertFunc: func(ctx context.Context, profile *model.ProviderProfile) error {
			return providerserrors.ErrDuplicateProfile
		},
	}
	svc := testService(repo)

	_, err := svc.Apply(context.Background(), validProfile())
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Errorf("expected %s, got %s", apperrors.CodeValidation, appErr.Code)
	}
}

func TestApply_InvalidProfile(t *testing.T) {
	repo := &mockProviderRepository{}
	svc := testService(repo)

	profile := validProfile()
	profile.BusinessName = ""

	_, err := svc.Apply(context.Background(), profile)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if len(repo.inserted) != 0 {
		t.Error("invalid profiles must not be stored")
	}
}

func TestReview_Approve(t *testing.T) {
	var gotReview *model.ProviderReview
	repo := &mockProviderRepository{
		updateReviewFunc: func(ctx context.Context, id string, review *model.ProviderReview) (*model.ProviderProfile, error) {
			gotReview = review
			return &model.ProviderProfile{ID: id, Status: review.Status, IsVerified: true}, nil
		},
	}
	svc := testService(repo)

	profile, err := svc.Review(context.Background(), uuid.NewString(), &model.ProviderReview{
		Status: model.ProviderApproved,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Status != model.ProviderApproved {
		t.Errorf("expected APPROVED, got %s", profile.Status)
	}
	if gotReview == nil {
		t.Fatal("expected the repository to receive the review")
	}
}

func TestReview_RejectRequiresReason(t *testing.T) {
	svc := testService(&mockProviderRepository{})

	_, err := svc.Review(context.Background(), uuid.NewString(), &model.ProviderReview{
		Status: model.ProviderRejected,
	})
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Errorf("expected %s, got %s", apperrors.CodeValidation, appErr.Code)
	}
}

func TestReview_CannotResetToPending(t *testing.T) {
	svc := testService(&mockProviderRepository{})

	_, err := svc.Review(context.Background(), uuid.NewString(), &model.ProviderReview{
		Status: model.ProviderPendingApproval,
	})
	if err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestReview_NotPendingIsNotFound(t *testing.T) {
	svc := testService(&mockProviderRepository{})

	_, err := svc.Review(context.Background(), uuid.NewString(), &model.ProviderReview{
		Status: model.ProviderApproved,
	})
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("expected %s, got %s", apperrors.CodeNotFound, appErr.Code)
	}
}
