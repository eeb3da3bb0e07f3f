package service

import (
	"context"
	"errors"

	providerserrors "fundi/internal/providers/errors"
	"fundi/internal/providers/repository"
	"fundi/internal/providers/validator"
	apperrors "fundi/pkg/errors"
	"fundi/pkg/logger"
	"fundi/pkg/model"
	"fundi/pkg/sanitizer"
)

type ProviderService interface {
	Apply(ctx context.Context, profile *model.ProviderProfile) (*model.ProviderProfile, error)
	GetByID(ctx context.Context, id string) (*model.ProviderProfile, error)
	GetByUserID(ctx context.Context, userID string) (*model.ProviderProfile, error)
	ListPending(ctx context.Context, limit int, offset int64) ([]*model.ProviderProfile, int64, error)
	Review(ctx context.Context, id string, review *model.ProviderReview) (*model.ProviderProfile, error)
}

type providerService struct {
	repo      repository.ProviderRepository
	validator *validator.ProviderValidator
	logger    *logger.Logger
}

func NewProviderService(repo repository.ProviderRepository, pv *validator.ProviderValidator, log *logger.Logger) ProviderService {
	return &providerService{
		repo:      repo,
		validator: pv,
		logger:    log,
	}
}

// Apply registers a new provider application. Every application starts
// pending and unverified; admin review moves it on.
func (s *providerService) Apply(ctx context.Context, profile *model.ProviderProfile) (*model.ProviderProfile, error) {
	profile.BusinessName = sanitizer.NormalizeName(profile.BusinessName)
	profile.Bio = sanitizer.TrimAndNormalize(profile.Bio)
	profile.Address = sanitizer.NormalizeAddress(profile.Address)

	profile.Status = model.ProviderPendingApproval
	profile.IsVerified = false
	profile.RejectionReason = ""

	if err := s.validator.Validate(profile); err != nil {
		return nil, validationError(err)
	}

	if err := s.repo.Insert(ctx, profile); err != nil {
		if errors.Is(err, providerserrors.ErrDuplicateProfile) {
			return nil, apperrors.Validation("a provider profile already exists for this user", nil)
		}
		return nil, apperrors.Internal("failed to create provider profile", err)
	}

	s.logger.Info("provider application received",
		"provider_id", profile.ID,
		"user_id", profile.UserID,
		"category_id", profile.CategoryID,
	)
	return profile, nil
}

func (s *providerService) GetByID(ctx context.Context, id string) (*model.ProviderProfile, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, providerserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("provider profile", id)
		}
		return nil, apperrors.Internal("failed to fetch provider profile", err)
	}
	return profile, nil
}

func (s *providerService) GetByUserID(ctx context.Context, userID string) (*model.ProviderProfile, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, providerserrors.ErrNotFound) {
			return nil, apperrors.NotFound("provider profile")
		}
		return nil, apperrors.Internal("failed to fetch provider profile", err)
	}
	return profile, nil
}

func (s *providerService) ListPending(ctx context.Context, limit int, offset int64) ([]*model.ProviderProfile, int64, error) {
	profiles, err := s.repo.ListByStatus(ctx, model.ProviderPendingApproval, limit, offset)
	if err != nil {
		return nil, 0, apperrors.Internal("failed to list pending applications", err)
	}

	total, err := s.repo.CountByStatus(ctx, model.ProviderPendingApproval)
	if err != nil {
		return nil, 0, apperrors.Internal("failed to count pending applications", err)
	}

	if profiles == nil {
		profiles = []*model.ProviderProfile{}
	}
	return profiles, total, nil
}

// Review applies an admin decision to a pending application. A profile
// that is not pending yields NotFound, which also covers double reviews.
func (s *providerService) Review(ctx context.Context, id string, review *model.ProviderReview) (*model.ProviderProfile, error) {
	if err := s.validator.ValidateReview(review); err != nil {
		return nil, validationError(err)
	}

	profile, err := s.repo.UpdateReview(ctx, id, review)
	if err != nil {
		if errors.Is(err, providerserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("pending provider application", id)
		}
		return nil, apperrors.Internal("failed to review provider application", err)
	}

	s.logger.Info("provider application reviewed",
		"provider_id", profile.ID,
		"status", profile.Status,
	)
	return profile, nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]any, len(verrs))
		for _, ve := range verrs {
			details[ve.Field] = ve.Message
		}
		return apperrors.Validation("provider validation failed", details)
	}
	return apperrors.Validation(err.Error(), nil)
}
