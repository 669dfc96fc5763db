package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RatingLabels maps each allowed rating to its display label.
var RatingLabels = map[int]string{
	1: "Poor",
	2: "Fair",
	3: "Good",
	4: "Very Good",
	5: "Excellent",
}

// Review is feedback attached to a Listing. The rating range is
// enforced both here and as a schema check constraint.
type Review struct {
	ReviewID   uuid.UUID `json:"review_id" gorm:"type:uuid;primaryKey"`
	ListingRef uuid.UUID `json:"listing_id" gorm:"column:listing_id;type:uuid;not null;index" validate:"required"`
	Listing    *Listing  `json:"-" gorm:"foreignKey:ListingRef;references:ListingID"`
	Rating     int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5" validate:"required,min=1,max=5"`
	Comment    string    `json:"comment" gorm:"type:text;not null" validate:"required"`
	CreatedAt  Date      `json:"created_at" gorm:"type:date"`
}

type ReviewUpdate struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,min=1"`
}

func (r *Review) BeforeCreate(_ *gorm.DB) error {
	if r.ReviewID == uuid.Nil {
		r.ReviewID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = Today()
	}
	return nil
}

// RatingLabel returns the display label for the review's rating, or ""
// for an out-of-range value.
func (r *Review) RatingLabel() string {
	return RatingLabels[r.Rating]
}
