package validator

import (
	"fmt"
	"fundi/pkg/logger"
	"fundi/pkg/model"
	"strings"

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
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
		logger:   log,
	}
}

// Validate checks a booking before it reaches the reservation engine.
func (bv *BookingValidator) Validate(booking *model.Booking) error {
	if err := bv.validate.Struct(booking); err != nil {
		return bv.convert(err)
	}
	if !booking.Status.IsValid() {
		return ValidationErrors{{Field: "Status", Message: fmt.Sprintf("unknown status %q", booking.Status)}}
	}
	if booking.Date.IsZero() {
		return ValidationErrors{{Field: "Date", Message: "appointment date is required"}}
	}
	return nil
}

// ValidateStatusUpdate checks a transition request before the state
// machine sees it. Transition legality is the state machine's concern,
// not the validator's; only shape is checked here.
func (bv *BookingValidator) ValidateStatusUpdate(update *model.StatusUpdate) error {
	if err := bv.validate.Struct(update); err != nil {
		return bv.convert(err)
	}
	if !update.Status.IsValid() {
		return ValidationErrors{{Field: "Status", Message: fmt.Sprintf("unknown status %q", update.Status)}}
	}
	return nil
}

func (bv *BookingValidator) convert(err error) error {
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
