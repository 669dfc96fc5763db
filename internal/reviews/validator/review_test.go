package validator

import (
	"testing"

	"github.com/google/uuid"

	"staylist/pkg/logger"
	"staylist/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
}

func validReview() *model.Review {
	return &model.Review{
		ListingRef: uuid.New(),
		Rating:     4,
		Comment:    "Spotless and quiet, would stay again.",
	}
}

func ptr[T any](v T) *T { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *model.Review)
		wantErr bool
	}{
		{name: "rating 1", mutate: func(r *model.Review) { r.Rating = 1 }, wantErr: false},
		{name: "rating 2", mutate: func(r *model.Review) { r.Rating = 2 }, wantErr: false},
		{name: "rating 3", mutate: func(r *model.Review) { r.Rating = 3 }, wantErr: false},
		{name: "rating 4", mutate: func(r *model.Review) { r.Rating = 4 }, wantErr: false},
		{name: "rating 5", mutate: func(r *model.Review) { r.Rating = 5 }, wantErr: false},
		{name: "rating 0", mutate: func(r *model.Review) { r.Rating = 0 }, wantErr: true},
		{name: "rating 6", mutate: func(r *model.Review) { r.Rating = 6 }, wantErr: true},
		{name: "negative rating", mutate: func(r *model.Review) { r.Rating = -3 }, wantErr: true},
		{name: "missing listing", mutate: func(r *model.Review) { r.ListingRef = uuid.Nil }, wantErr: true},
		{name: "missing comment", mutate: func(r *model.Review) { r.Comment = "" }, wantErr: true},
	}

	v := NewReviewValidator(testLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review := validReview()
			tt.mutate(review)

			err := v.Validate(review)
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	tests := []struct {
		name    string
		update  *model.ReviewUpdate
		wantErr bool
	}{
		{name: "empty update", update: &model.ReviewUpdate{}, wantErr: false},
		{name: "rating only", update: &model.ReviewUpdate{Rating: ptr(5)}, wantErr: false},
		{name: "comment only", update: &model.ReviewUpdate{Comment: ptr("Still great.")}, wantErr: false},
		{name: "rating too high", update: &model.ReviewUpdate{Rating: ptr(6)}, wantErr: true},
		{name: "rating too low", update: &model.ReviewUpdate{Rating: ptr(0)}, wantErr: true},
		{name: "blank comment", update: &model.ReviewUpdate{Comment: ptr("")}, wantErr: true},
	}

	v := NewReviewValidator(testLogger())
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

func TestRatingLabels(t *testing.T) {
	review := validReview()
	review.Rating = 5
	if got := review.RatingLabel(); got != "Excellent" {
		t.Errorf("RatingLabel() = %q, want %q", got, "Excellent")
	}
	review.Rating = 0
	if got := review.RatingLabel(); got != "" {
		t.Errorf("RatingLabel() = %q, want empty", got)
	}
}
