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

	listingserrors "staylist/internal/listings/errors"
	"staylist/pkg/model"
)

// openTestDB gives each test its own in-memory database with foreign
// keys enforced on every pooled connection.
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

func newListing(name string) *model.Listing {
	return &model.Listing{
		Name:          name,
		Description:   "A place to stay.",
		Location:      "Mombasa",
		PricePerNight: 4500,
	}
}

func TestCreateAndFindByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormListingRepository(db)
	ctx := context.Background()

	listing := newListing("Beach House")
	require.NoError(t, repo.Create(ctx, listing))

	assert.NotEqual(t, uuid.Nil, listing.ListingID)
	assert.False(t, listing.CreatedAt.IsZero())
	assert.Equal(t, listing.CreatedAt, listing.UpdatedAt)

	found, err := repo.FindByID(ctx, listing.ListingID)
	require.NoError(t, err)
	assert.Equal(t, listing.ListingID, found.ListingID)
	assert.Equal(t, "Beach House", found.Name)
	assert.Equal(t, 4500, found.PricePerNight)
}

func TestFindByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormListingRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, listingserrors.ErrNotFound)
}

func TestCreateBatchAndCount(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormListingRepository(db)
	ctx := context.Background()

	listings := []*model.Listing{
		newListing("One"),
		newListing("Two"),
		newListing("Three"),
	}
	require.NoError(t, repo.CreateBatch(ctx, listings))

	for _, l := range listings {
		assert.NotEqual(t, uuid.Nil, l.ListingID)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	all, err := repo.FindAll(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestFindAll_Pagination(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormListingRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, newListing(fmt.Sprintf("Listing %d", i))))
	}

	page, err := repo.FindAll(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := repo.FindAll(ctx, 10, 4)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}

func TestUpdate_PersistsChanges(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormListingRepository(db)
	ctx := context.Background()

	listing := newListing("Old Name")
	require.NoError(t, repo.Create(ctx, listing))

	listing.Name = "New Name"
	listing.PricePerNight = 9900
	require.NoError(t, repo.Update(ctx, listing))

	found, err := repo.FindByID(ctx, listing.ListingID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", found.Name)
	assert.Equal(t, 9900, found.PricePerNight)
}

func TestDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormListingRepository(db)
	ctx := context.Background()

	listing := newListing("Short Lived")
	require.NoError(t, repo.Create(ctx, listing))
	require.NoError(t, repo.Delete(ctx, listing.ListingID))

	_, err := repo.FindByID(ctx, listing.ListingID)
	assert.ErrorIs(t, err, listingserrors.ErrNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormListingRepository(db)

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, listingserrors.ErrNotFound)
}

func TestDelete_CascadesToDependents(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormListingRepository(db)
	ctx := context.Background()

	listing := newListing("With Dependents")
	require.NoError(t, repo.Create(ctx, listing))

	booking := &model.Booking{
		ListingRef: listing.ListingID,
		StartDate:  model.NewDate(2026, 9, 1),
		EndDate:    model.NewDate(2026, 9, 4),
		TotalPrice: 13500,
		Status:     model.StatusPending,
	}
	require.NoError(t, db.WithContext(ctx).Create(booking).Error)

	review := &model.Review{
		ListingRef: listing.ListingID,
		Rating:     5,
		Comment:    "Great stay.",
	}
	require.NoError(t, db.WithContext(ctx).Create(review).Error)

	require.NoError(t, repo.Delete(ctx, listing.ListingID))

	var bookings, reviews int64
	require.NoError(t, db.Model(&model.Booking{}).Where("listing_id = ?", listing.ListingID).Count(&bookings).Error)
	require.NoError(t, db.Model(&model.Review{}).Where("listing_id = ?", listing.ListingID).Count(&reviews).Error)
	assert.Zero(t, bookings)
	assert.Zero(t, reviews)
}

func TestDeleteAll(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormListingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newListing("A")))
	require.NoError(t, repo.Create(ctx, newListing("B")))
	require.NoError(t, repo.DeleteAll(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
