package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	listingserrors "staylist/internal/listings/errors"
	"staylist/pkg/model"
)

const batchSize = 200

type ListingRepository interface {
	Create(ctx context.Context, listing *model.Listing) error
	CreateBatch(ctx context.Context, listings []*model.Listing) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Listing, error)
	FindAll(ctx context.Context, limit, offset int) ([]*model.Listing, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, listing *model.Listing) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

type gormListingRepository struct {
	db *gorm.DB
}

func NewGormListingRepository(db *gorm.DB) ListingRepository {
	return &gormListingRepository{db: db}
}

func (r *gormListingRepository) Create(ctx context.Context, listing *model.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

// CreateBatch is the explicit batch-insert path used by the seeder.
func (r *gormListingRepository) CreateBatch(ctx context.Context, listings []*model.Listing) error {
	if len(listings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(listings, batchSize).Error
}

func (r *gormListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	var listing model.Listing
	err := r.db.WithContext(ctx).First(&listing, "listing_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, listingserrors.ErrNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *gormListingRepository) FindAll(ctx context.Context, limit, offset int) ([]*model.Listing, error) {
	var listings []*model.Listing
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *gormListingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Listing{}).Count(&count).Error
	return count, err
}

func (r *gormListingRepository) Update(ctx context.Context, listing *model.Listing) error {
	return r.db.WithContext(ctx).Save(listing).Error
}

// Delete removes the listing; dependent bookings and reviews go with it
// via the schema's ON DELETE CASCADE.
func (r *gormListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Listing{}, "listing_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return listingserrors.ErrNotFound
	}
	return nil
}

func (r *gormListingRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Listing{}).Error
}
