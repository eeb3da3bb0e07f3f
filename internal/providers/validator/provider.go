package validator

import (
	"fmt"

	"fundi/pkg/logger"
	"fundi/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	return fmt.Sprintf("validation failed: %d error(s)", len(v))
}

type ProviderValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewProviderValidator(log *logger.Logger) *ProviderValidator {
	return &ProviderValidator{
		validate: validator.New(),
		logger:   log,
	}
}

func (pv *ProviderValidator) Validate(profile *model.ProviderProfile) error {
	if err := pv.validate.Struct(profile); err != nil {
		return pv.convert(err)
	}
	return nil
}

// ValidateReview checks an admin decision. Only terminal review outcomes
// are acceptable; a review can never put an application back to pending.
func (pv *ProviderValidator) ValidateReview(review *model.ProviderReview) error {
	if err := pv.validate.Struct(review); err != nil {
		return pv.convert(err)
	}

	switch review.Status {
	case model.ProviderApproved:
		return nil
	case model.ProviderRejected:
		if review.RejectionReason == "" {
			return ValidationErrors{{Field: "RejectionReason", Message: "rejection requires a reason"}}
		}
		return nil
	default:
		return ValidationErrors{{Field: "Status", Message: fmt.Sprintf("review status must be APPROVED or REJECTED, got %q", review.Status)}}
	}
}

func (pv *ProviderValidator) convert(err error) error {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "", Message: err.Error()}}
	}

	var errs ValidationErrors
	for _, fe := range fieldErrors {
		errs = append(errs, ValidationError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
		})
	}
	return errs
}
