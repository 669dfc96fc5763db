package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	bookingserrors "staylist/internal/bookings/errors"
	"staylist/pkg/model"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]*model.Booking, error)
	FindByListing(ctx context.Context, listingID uuid.UUID) ([]*model.Booking, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, booking *model.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

type gormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) BookingRepository {
	return &gormBookingRepository{db: db}
}

func (r *gormBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	err := r.db.WithContext(ctx).Create(booking).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return bookingserrors.ErrListingGone
	}
	return err
}

func (r *gormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.WithContext(ctx).
		Preload("Listing").
		First(&booking, "booking_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *gormBookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*model.Booking, error) {
	var bookings []*model.Booking
	err := r.db.WithContext(ctx).
		Preload("Listing").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *gormBookingRepository) FindByListing(ctx context.Context, listingID uuid.UUID) ([]*model.Booking, error) {
	var bookings []*model.Booking
	err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *gormBookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Booking{}).Count(&count).Error
	return count, err
}

func (r *gormBookingRepository) Update(ctx context.Context, booking *model.Booking) error {
	// Save by struct would also write the preloaded Listing; restrict
	// the write to the booking's own columns.
	return r.db.WithContext(ctx).
		Omit("Listing").
		Save(booking).Error
}

func (r *gormBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Booking{}, "booking_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return bookingserrors.ErrNotFound
	}
	return nil
}

func (r *gormBookingRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Booking{}).Error
}
