package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"staylist/pkg/logger"
	"staylist/pkg/model"
	"staylist/pkg/validation"
)

type ReviewValidator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func NewReviewValidator(log *logger.Logger) *ReviewValidator {
	return &ReviewValidator{
		validate: validator.New(),
		log:      log,
	}
}

func (v *ReviewValidator) Validate(review *model.Review) error {
	if err := v.validate.Struct(review); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return validation.Translate(validationErrs)
		}
		return err
	}

	if _, ok := model.RatingLabels[review.Rating]; !ok {
		return validation.ValidationErrors{
			{Field: "Rating", Message: "rating must be between 1 and 5"},
		}
	}

	return nil
}

func (v *ReviewValidator) ValidateUpdate(update *model.ReviewUpdate) error {
	if err := v.validate.Struct(update); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return validation.Translate(validationErrs)
		}
		return err
	}
	return nil
}
