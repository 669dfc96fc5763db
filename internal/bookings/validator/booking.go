package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"staylist/pkg/logger"
	"staylist/pkg/model"
	"staylist/pkg/validation"
)

type BookingValidator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
		log:      log,
	}
}

// Validate checks a creation request: listing reference, status
// membership, and the date-range ordering invariant. Date fields are
// checked by hand because the calendar Date type carries no validate
// tags.
func (v *BookingValidator) Validate(req *model.BookingRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return validation.Translate(validationErrs)
		}
		return err
	}

	var errs validation.ValidationErrors
	if req.StartDate.IsZero() {
		errs = append(errs, validation.ValidationError{
			Field:   "StartDate",
			Message: "start_date is required",
		})
	}
	if req.EndDate.IsZero() {
		errs = append(errs, validation.ValidationError{
			Field:   "EndDate",
			Message: "end_date is required",
		})
	}
	if len(errs) > 0 {
		return errs
	}

	return ValidateDateRange(req.StartDate, req.EndDate)
}

func (v *BookingValidator) ValidateUpdate(update *model.BookingUpdate) error {
	if err := v.validate.Struct(update); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return validation.Translate(validationErrs)
		}
		return err
	}

	if update.StartDate != nil && update.EndDate != nil {
		return ValidateDateRange(*update.StartDate, *update.EndDate)
	}

	return nil
}

// ValidateDateRange enforces the core invariant: a booking spans at
// least one whole night.
func ValidateDateRange(start, end model.Date) error {
	if start.DaysUntil(end) < 1 {
		return validation.ValidationErrors{
			{Field: "EndDate", Message: "end_date must be after start_date"},
		}
	}
	return nil
}
