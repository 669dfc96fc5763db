package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking reserves a Listing for a date range. TotalPrice is always
// computed as nights x the listing's nightly rate, never supplied by a
// caller. Status membership is validated but transitions are not
// constrained: any of the three values may be written at any time.
type Booking struct {
	BookingID  uuid.UUID     `json:"booking_id" gorm:"type:uuid;primaryKey"`
	ListingRef uuid.UUID     `json:"-" gorm:"column:listing_id;type:uuid;not null;index"`
	Listing    *Listing      `json:"listing_detail,omitempty" gorm:"foreignKey:ListingRef;references:ListingID"`
	StartDate  Date          `json:"start_date" gorm:"type:date;not null"`
	EndDate    Date          `json:"end_date" gorm:"type:date;not null"`
	TotalPrice int           `json:"total_price" gorm:"not null"`
	Status     BookingStatus `json:"status" gorm:"size:10;not null;default:pending"`
	CreatedAt  Date          `json:"created_at" gorm:"type:date"`
}

// BookingRequest is the external write shape: the listing reference is
// accepted as a UUID and echoed back only as the nested listing_detail.
type BookingRequest struct {
	Listing   string        `json:"listing" validate:"required,uuid"`
	StartDate Date          `json:"start_date"`
	EndDate   Date          `json:"end_date"`
	Status    BookingStatus `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}

// BookingUpdate carries a partial update. The listing reference is not
// reassignable, so it has no field here.
type BookingUpdate struct {
	StartDate *Date         `json:"start_date,omitempty"`
	EndDate   *Date         `json:"end_date,omitempty"`
	Status    BookingStatus `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled"`
}

func (b *Booking) BeforeCreate(_ *gorm.DB) error {
	if b.BookingID == uuid.Nil {
		b.BookingID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = Today()
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}

// Nights is the whole-day duration of the booking.
func (b *Booking) Nights() int {
	return b.StartDate.DaysUntil(b.EndDate)
}
