package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Listing is a rentable property. The identifier and both timestamps
// are assigned by the persistence hooks and are read-only to callers.
type Listing struct {
	ListingID     uuid.UUID `json:"listing_id" gorm:"type:uuid;primaryKey"`
	Name          string    `json:"name" gorm:"size:50;not null" validate:"required,max=50"`
	Description   string    `json:"description" gorm:"size:50;not null" validate:"required,max=50"`
	Location      string    `json:"location" gorm:"size:30;not null" validate:"required,max=30"`
	PricePerNight int       `json:"pricepernight" gorm:"not null" validate:"min=0"`
	CreatedAt     Date      `json:"created_at" gorm:"type:date"`
	UpdatedAt     Date      `json:"updated_at" gorm:"type:date"`

	// Declared from the parent side so migration emits the FKs on the
	// child tables with the delete cascade. Never serialized or preloaded.
	Bookings []Booking `json:"-" gorm:"foreignKey:ListingRef;references:ListingID;constraint:OnDelete:CASCADE"`
	Reviews  []Review  `json:"-" gorm:"foreignKey:ListingRef;references:ListingID;constraint:OnDelete:CASCADE"`
}

type ListingUpdate struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	Description   *string `json:"description,omitempty" validate:"omitempty,min=1,max=50"`
	Location      *string `json:"location,omitempty" validate:"omitempty,min=1,max=30"`
	PricePerNight *int    `json:"pricepernight,omitempty" validate:"omitempty,min=0"`
}

func (l *Listing) BeforeCreate(_ *gorm.DB) error {
	if l.ListingID == uuid.Nil {
		l.ListingID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = Today()
	}
	l.UpdatedAt = l.CreatedAt
	return nil
}

// BeforeUpdate refreshes UpdatedAt on every persisted mutation.
func (l *Listing) BeforeUpdate(_ *gorm.DB) error {
	l.UpdatedAt = Today()
	return nil
}
