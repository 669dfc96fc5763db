package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	bookingrepo "staylist/internal/bookings/repository"
	bookingservice "staylist/internal/bookings/service"
	bookingvalidator "staylist/internal/bookings/validator"
	listingrepo "staylist/internal/listings/repository"
	listingservice "staylist/internal/listings/service"
	listingvalidator "staylist/internal/listings/validator"
	reviewrepo "staylist/internal/reviews/repository"
	reviewservice "staylist/internal/reviews/service"
	reviewvalidator "staylist/internal/reviews/validator"
	"staylist/pkg/events"
	"staylist/pkg/logger"
	"staylist/pkg/model"
)

var listingNames = []string{
	"Cozy Studio Westlands",
	"Garden View Apartment",
	"CBD Compact Room",
	"Lakeside Cottage",
	"Hilltop Bungalow",
	"Modern Loft Kilimani",
	"Beachside Getaway",
	"Safari Retreat",
	"Urban Chic Suite",
	"Riverside Nook",
	"Sunset Villa",
	"Parkview Condo",
}

var listingLocations = []string{
	"Nairobi",
	"Mombasa",
	"Nakuru",
	"Kisumu",
	"Nanyuki",
	"Diani",
	"Naivasha",
}

var listingDescriptions = []string{
	"Great location, fast Wi-Fi, self check-in.",
	"Quiet street, close to everything.",
	"Freshly renovated, sleeps four.",
	"Sunny rooms with a garden view.",
	"Minutes from the beach, secure parking.",
}

var reviewComments = []string{
	"Clean and comfortable stay.",
	"Great host and excellent location.",
	"Would definitely book again.",
	"Wi-Fi was fast, perfect for work.",
	"Place matched the photos.",
	"Super convenient check-in.",
	"Quiet neighborhood, slept well.",
	"Spacious and well equipped.",
}

type Options struct {
	Listings int
	Bookings int
	Reviews  int
	Flush    bool
}

type Result struct {
	Listings int
	Bookings int
	Reviews  int
}

// Seeder populates the three tables with plausible sample data. All
// inserts go through the same service-layer validation and pricing
// path as API callers; the seeder never computes or bypasses anything
// itself. Randomness is confined to the Seeder's own source.
type Seeder struct {
	db  *gorm.DB
	log *logger.Logger
	rng *rand.Rand
}

func NewSeeder(db *gorm.DB, log *logger.Logger, rng *rand.Rand) *Seeder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Seeder{
		db:  db,
		log: log,
		rng: rng,
	}
}

// Run executes the whole seed in one transaction: on any failure
// nothing is left behind, including the flush.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	result := &Result{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		listingRepo := listingrepo.NewGormListingRepository(tx)
		listings := listingservice.NewListingService(listingRepo, listingvalidator.NewListingValidator(s.log), s.log)
		bookings := bookingservice.NewBookingService(
			bookingrepo.NewGormBookingRepository(tx),
			listingRepo,
			bookingvalidator.NewBookingValidator(s.log),
			events.NoopPublisher{},
			s.log,
		)
		reviews := reviewservice.NewReviewService(
			reviewrepo.NewGormReviewRepository(tx),
			listingRepo,
			reviewvalidator.NewReviewValidator(s.log),
			s.log,
		)

		if opts.Flush {
			s.log.Warn("Flushing listings data...")
			if err := s.flush(ctx, tx); err != nil {
				return err
			}
		}

		s.log.Info("Seeding data...")

		created, err := s.seedListings(ctx, listings, opts.Listings)
		if err != nil {
			return err
		}
		result.Listings = len(created)

		result.Bookings, err = s.seedBookings(ctx, bookings, created, opts.Bookings)
		if err != nil {
			return err
		}

		result.Reviews, err = s.seedReviews(ctx, reviews, created, opts.Reviews)
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seeding aborted, nothing was written: %w", err)
	}

	s.log.Info("Seeding complete",
		"listings", result.Listings,
		"bookings", result.Bookings,
		"reviews", result.Reviews,
	)
	return result, nil
}

// flush clears dependents before parents.
func (s *Seeder) flush(ctx context.Context, tx *gorm.DB) error {
	if err := bookingrepo.NewGormBookingRepository(tx).DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to flush bookings: %w", err)
	}
	if err := reviewrepo.NewGormReviewRepository(tx).DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to flush reviews: %w", err)
	}
	if err := listingrepo.NewGormListingRepository(tx).DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to flush listings: %w", err)
	}
	return nil
}

func (s *Seeder) seedListings(ctx context.Context, svc listingservice.ListingService, count int) ([]*model.Listing, error) {
	if count <= 0 {
		return nil, nil
	}

	listings := make([]*model.Listing, 0, count)
	for i := 0; i < count; i++ {
		listings = append(listings, &model.Listing{
			Name:          listingNames[s.rng.Intn(len(listingNames))],
			Description:   listingDescriptions[s.rng.Intn(len(listingDescriptions))],
			Location:      listingLocations[s.rng.Intn(len(listingLocations))],
			PricePerNight: 3000 + s.rng.Intn(12001),
		})
	}

	if err := svc.CreateBatch(ctx, listings); err != nil {
		return nil, fmt.Errorf("failed to seed listings: %w", err)
	}
	return listings, nil
}

func (s *Seeder) seedBookings(ctx context.Context, svc bookingservice.BookingService, listings []*model.Listing, count int) (int, error) {
	if count <= 0 || len(listings) == 0 {
		return 0, nil
	}

	statuses := []model.BookingStatus{model.StatusPending, model.StatusConfirmed, model.StatusCancelled}

	created := 0
	for i := 0; i < count; i++ {
		listing := listings[s.rng.Intn(len(listings))]
		nights := 1 + s.rng.Intn(10)
		start := model.Today().AddDays(s.rng.Intn(51) - 20)

		req := &model.BookingRequest{
			Listing:   listing.ListingID.String(),
			StartDate: start,
			EndDate:   start.AddDays(nights),
			Status:    statuses[s.rng.Intn(len(statuses))],
		}
		if _, err := svc.Create(ctx, req); err != nil {
			return created, fmt.Errorf("failed to seed booking %d: %w", i+1, err)
		}
		created++
	}

	return created, nil
}

func (s *Seeder) seedReviews(ctx context.Context, svc reviewservice.ReviewService, listings []*model.Listing, count int) (int, error) {
	if count <= 0 || len(listings) == 0 {
		return 0, nil
	}

	reviews := make([]*model.Review, 0, count)
	for i := 0; i < count; i++ {
		listing := listings[s.rng.Intn(len(listings))]
		reviews = append(reviews, &model.Review{
			ListingRef: listing.ListingID,
			Rating:     1 + s.rng.Intn(5),
			Comment:    reviewComments[s.rng.Intn(len(reviewComments))],
		})
	}

	if err := svc.CreateBatch(ctx, reviews); err != nil {
		return 0, fmt.Errorf("failed to seed reviews: %w", err)
	}
	return len(reviews), nil
}
