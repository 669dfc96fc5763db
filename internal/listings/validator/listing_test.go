package validator

import (
	"errors"
	"strings"
	"testing"

	"staylist/pkg/logger"
	"staylist/pkg/model"
	"staylist/pkg/validation"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
}

func validListing() *model.Listing {
	return &model.Listing{
		Name:          "Sunset Villa",
		Description:   "Bright two-bedroom with an ocean view.",
		Location:      "Diani",
		PricePerNight: 8500,
	}
}

func ptr[T any](v T) *T { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(l *model.Listing)
		wantErr bool
	}{
		{
			name:    "valid listing",
			mutate:  func(*model.Listing) {},
			wantErr: false,
		},
		{
			name:    "zero price is allowed",
			mutate:  func(l *model.Listing) { l.PricePerNight = 0 },
			wantErr: false,
		},
		{
			name:    "name at the 50 character limit",
			mutate:  func(l *model.Listing) { l.Name = strings.Repeat("a", 50) },
			wantErr: false,
		},
		{
			name:    "missing name",
			mutate:  func(l *model.Listing) { l.Name = "" },
			wantErr: true,
		},
		{
			name:    "name over 50 characters",
			mutate:  func(l *model.Listing) { l.Name = strings.Repeat("a", 51) },
			wantErr: true,
		},
		{
			name:    "missing description",
			mutate:  func(l *model.Listing) { l.Description = "" },
			wantErr: true,
		},
		{
			name:    "description over 50 characters",
			mutate:  func(l *model.Listing) { l.Description = strings.Repeat("d", 51) },
			wantErr: true,
		},
		{
			name:    "missing location",
			mutate:  func(l *model.Listing) { l.Location = "" },
			wantErr: true,
		},
		{
			name:    "location over 30 characters",
			mutate:  func(l *model.Listing) { l.Location = strings.Repeat("x", 31) },
			wantErr: true,
		},
		{
			name:    "negative price",
			mutate:  func(l *model.Listing) { l.PricePerNight = -1 },
			wantErr: true,
		},
	}

	v := NewListingValidator(testLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing := validListing()
			tt.mutate(listing)

			err := v.Validate(listing)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				var validationErrs validation.ValidationErrors
				if !errors.As(err, &validationErrs) {
					t.Errorf("expected validation.ValidationErrors, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	tests := []struct {
		name    string
		update  *model.ListingUpdate
		wantErr bool
	}{
		{
			name:    "empty update is valid",
			update:  &model.ListingUpdate{},
			wantErr: false,
		},
		{
			name:    "partial update",
			update:  &model.ListingUpdate{Location: ptr("Watamu"), PricePerNight: ptr(9000)},
			wantErr: false,
		},
		{
			name:    "blank name",
			update:  &model.ListingUpdate{Name: ptr("")},
			wantErr: true,
		},
		{
			name:    "location over 30 characters",
			update:  &model.ListingUpdate{Location: ptr(strings.Repeat("x", 31))},
			wantErr: true,
		},
		{
			name:    "negative price",
			update:  &model.ListingUpdate{PricePerNight: ptr(-100)},
			wantErr: true,
		},
	}

	v := NewListingValidator(testLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateUpdate(tt.update)
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
