package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"staylist/pkg/logger"
	"staylist/pkg/model"
	"staylist/pkg/validation"
)

type ListingValidator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func NewListingValidator(log *logger.Logger) *ListingValidator {
	return &ListingValidator{
		validate: validator.New(),
		log:      log,
	}
}

func (v *ListingValidator) Validate(listing *model.Listing) error {
	if err := v.validate.Struct(listing); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return validation.Translate(validationErrs)
		}
		return err
	}

	if listing.PricePerNight < 0 {
		return validation.ValidationErrors{
			{Field: "PricePerNight", Message: "pricepernight cannot be negative"},
		}
	}

	return nil
}

func (v *ListingValidator) ValidateUpdate(update *model.ListingUpdate) error {
	if err := v.validate.Struct(update); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return validation.Translate(validationErrs)
		}
		return err
	}
	return nil
}
