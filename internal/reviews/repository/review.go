package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	reviewserrors "staylist/internal/reviews/errors"
	"staylist/pkg/model"
)

const batchSize = 200

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	CreateBatch(ctx context.Context, reviews []*model.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Review, error)
	FindAll(ctx context.Context, listingID *uuid.UUID, limit, offset int) ([]*model.Review, error)
	Count(ctx context.Context, listingID *uuid.UUID) (int64, error)
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

type gormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) ReviewRepository {
	return &gormReviewRepository{db: db}
}

func (r *gormReviewRepository) Create(ctx context.Context, review *model.Review) error {
	err := r.db.WithContext(ctx).Create(review).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return reviewserrors.ErrListingGone
	}
	return err
}

func (r *gormReviewRepository) CreateBatch(ctx context.Context, reviews []*model.Review) error {
	if len(reviews) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).CreateInBatches(reviews, batchSize).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return reviewserrors.ErrListingGone
	}
	return err
}

func (r *gormReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).First(&review, "review_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reviewserrors.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *gormReviewRepository) FindAll(ctx context.Context, listingID *uuid.UUID, limit, offset int) ([]*model.Review, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Offset(offset)
	if listingID != nil {
		query = query.Where("listing_id = ?", *listingID)
	}

	var reviews []*model.Review
	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *gormReviewRepository) Count(ctx context.Context, listingID *uuid.UUID) (int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Review{})
	if listingID != nil {
		query = query.Where("listing_id = ?", *listingID)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *gormReviewRepository) Update(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).
		Omit("Listing").
		Save(review).Error
}

func (r *gormReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Review{}, "review_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return reviewserrors.ErrNotFound
	}
	return nil
}

func (r *gormReviewRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Review{}).Error
}
