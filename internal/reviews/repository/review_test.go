package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	reviewserrors "staylist/internal/reviews/errors"
	"staylist/pkg/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Listing{}, &model.Booking{}, &model.Review{}))
	return db
}

func seedListing(t *testing.T, db *gorm.DB) *model.Listing {
	t.Helper()
	listing := &model.Listing{
		Name:          "City Loft",
		Description:   "Top floor, plenty of light.",
		Location:      "Nairobi",
		PricePerNight: 5500,
	}
	require.NoError(t, db.Create(listing).Error)
	return listing
}

func newReview(listingID uuid.UUID, rating int) *model.Review {
	return &model.Review{
		ListingRef: listingID,
		Rating:     rating,
		Comment:    "Comfortable and clean.",
	}
}

func TestCreate_ValidListing(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormReviewRepository(db)
	ctx := context.Background()

	listing := seedListing(t, db)
	review := newReview(listing.ListingID, 4)
	require.NoError(t, repo.Create(ctx, review))

	assert.NotEqual(t, uuid.Nil, review.ReviewID)
	assert.False(t, review.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, review.ReviewID)
	require.NoError(t, err)
	assert.Equal(t, listing.ListingID, found.ListingRef)
	assert.Equal(t, 4, found.Rating)
}

func TestCreate_UnknownListingIsRejected(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormReviewRepository(db)

	err := repo.Create(context.Background(), newReview(uuid.New(), 3))
	assert.ErrorIs(t, err, reviewserrors.ErrListingGone)
}

func TestCreateBatch_UnknownListingIsRejected(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormReviewRepository(db)
	ctx := context.Background()

	listing := seedListing(t, db)
	reviews := []*model.Review{
		newReview(listing.ListingID, 5),
		newReview(uuid.New(), 5),
	}
	err := repo.CreateBatch(ctx, reviews)
	assert.ErrorIs(t, err, reviewserrors.ErrListingGone)
}

func TestCreate_OutOfRangeRatingIsRejectedBySchema(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	listing := seedListing(t, db)

	// Straight through gorm, no validator in the path: the check
	// constraint is the last line of defense.
	for _, rating := range []int{0, 6, -1} {
		review := newReview(listing.ListingID, rating)
		err := db.WithContext(ctx).Create(review).Error
		assert.Error(t, err, "rating %d must violate the check constraint", rating)
	}

	var count int64
	require.NoError(t, db.Model(&model.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFindByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormReviewRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, reviewserrors.ErrNotFound)
}

func TestFindAllAndCount_FilterByListing(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormReviewRepository(db)
	ctx := context.Background()

	first := seedListing(t, db)
	second := seedListing(t, db)

	require.NoError(t, repo.Create(ctx, newReview(first.ListingID, 5)))
	require.NoError(t, repo.Create(ctx, newReview(first.ListingID, 3)))
	require.NoError(t, repo.Create(ctx, newReview(second.ListingID, 4)))

	all, err := repo.FindAll(ctx, nil, 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := repo.FindAll(ctx, &first.ListingID, 10, 0)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	for _, r := range filtered {
		assert.Equal(t, first.ListingID, r.ListingRef)
	}

	count, err := repo.Count(ctx, &first.ListingID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	total, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestUpdate_PersistsChanges(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormReviewRepository(db)
	ctx := context.Background()

	listing := seedListing(t, db)
	review := newReview(listing.ListingID, 2)
	require.NoError(t, repo.Create(ctx, review))

	review.Rating = 5
	review.Comment = "Much better on a second visit."
	require.NoError(t, repo.Update(ctx, review))

	found, err := repo.FindByID(ctx, review.ReviewID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.Rating)
	assert.Equal(t, "Much better on a second visit.", found.Comment)
}

func TestDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormReviewRepository(db)
	ctx := context.Background()

	listing := seedListing(t, db)
	review := newReview(listing.ListingID, 4)
	require.NoError(t, repo.Create(ctx, review))
	require.NoError(t, repo.Delete(ctx, review.ReviewID))

	_, err := repo.FindByID(ctx, review.ReviewID)
	assert.ErrorIs(t, err, reviewserrors.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, review.ReviewID), reviewserrors.ErrNotFound)
}

func TestDeleteAll(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormReviewRepository(db)
	ctx := context.Background()

	listing := seedListing(t, db)
	require.NoError(t, repo.Create(ctx, newReview(listing.ListingID, 1)))
	require.NoError(t, repo.Create(ctx, newReview(listing.ListingID, 2)))
	require.NoError(t, repo.DeleteAll(ctx))

	count, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}
