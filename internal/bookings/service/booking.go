package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	bookingserrors "staylist/internal/bookings/errors"
	"staylist/internal/bookings/repository"
	"staylist/internal/bookings/validator"
	listingserrors "staylist/internal/listings/errors"
	listingrepo "staylist/internal/listings/repository"
	apperrors "staylist/pkg/errors"
	"staylist/pkg/events"
	"staylist/pkg/logger"
	"staylist/pkg/model"
	"staylist/pkg/validation"
)

type BookingService interface {
	Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context, limit, offset int) ([]*model.Booking, int64, error)
	Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error)
	Delete(ctx context.Context, id string) error
}

type bookingService struct {
	repo      repository.BookingRepository
	listings  listingrepo.ListingRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	log       *logger.Logger
}

func NewBookingService(
	repo repository.BookingRepository,
	listings listingrepo.ListingRepository,
	v *validator.BookingValidator,
	publisher events.Publisher,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		repo:      repo,
		listings:  listings,
		validator: v,
		publisher: publisher,
		log:       log,
	}
}

// Create validates the date range, prices the booking from the
// referenced listing's current nightly rate, and persists it. The
// total price is never taken from the caller.
func (s *bookingService) Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asValidationError(err)
	}

	listingID, err := uuid.Parse(req.Listing)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid listing ID format")
	}

	listing, err := s.listings.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, listingserrors.ErrNotFound) {
			return nil, apperrors.Conflict("Booking references a missing listing", bookingserrors.ErrListingGone)
		}
		return nil, apperrors.Internal("Failed to resolve listing", err)
	}

	status := req.Status
	if status == "" {
		status = model.StatusPending
	}

	booking := &model.Booking{
		ListingRef: listing.ListingID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TotalPrice: priceFor(req.StartDate, req.EndDate, listing.PricePerNight),
		Status:     status,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingserrors.ErrListingGone) {
			return nil, apperrors.Conflict("Booking references a missing listing", err)
		}
		s.log.Error("Failed to create booking", "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}
	booking.Listing = listing

	s.publish(ctx, events.TypeBookingCreated, booking)
	s.log.Info("Booking created successfully",
		"id", booking.BookingID,
		"listing_id", booking.ListingRef,
		"nights", booking.Nights(),
		"total_price", booking.TotalPrice,
	)
	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	bookingID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context, limit, offset int) ([]*model.Booking, int64, error) {
	var (
		count    int64
		bookings []*model.Booking
		errCount error
		errFind  error
		wg       sync.WaitGroup
	)
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.log.Error("Failed to count bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.log.Error("Failed to list bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

// Update merges the patch into the stored booking, re-validates the
// resulting date range, and recomputes the total price against the
// listing's current rate. The listing reference is not reassignable.
func (s *bookingService) Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error) {
	bookingID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		return nil, apperrors.Internal("Failed to check booking existence", err)
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.log.Warn("Booking update validation failed", "id", id, "error", err)
		return nil, asValidationError(err)
	}

	merged := mergeBookingUpdates(existing, updates)
	if err := validator.ValidateDateRange(merged.StartDate, merged.EndDate); err != nil {
		return nil, asValidationError(err)
	}

	rate, err := s.currentRate(ctx, merged)
	if err != nil {
		return nil, err
	}
	merged.TotalPrice = priceFor(merged.StartDate, merged.EndDate, rate)

	if err := s.repo.Update(ctx, merged); err != nil {
		s.log.Error("Failed to update booking", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update booking", err)
	}

	s.publish(ctx, events.TypeBookingUpdated, merged)
	s.log.Info("Booking updated successfully", "id", id, "total_price", merged.TotalPrice)
	return merged, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	bookingID, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		s.log.Error("Failed to delete booking", "id", id, "error", err)
		return apperrors.Internal("Failed to delete booking", err)
	}

	s.publish(ctx, events.TypeBookingDeleted, &model.Booking{BookingID: bookingID})
	s.log.Info("Booking deleted successfully", "id", id)
	return nil
}

// priceFor is the pricing rule: whole nights times the nightly rate.
func priceFor(start, end model.Date, pricePerNight int) int {
	return start.DaysUntil(end) * pricePerNight
}

// currentRate prefers the listing row loaded with the booking; it is
// read within this request, which is as current as this design gets.
func (s *bookingService) currentRate(ctx context.Context, booking *model.Booking) (int, error) {
	if booking.Listing != nil {
		return booking.Listing.PricePerNight, nil
	}
	listing, err := s.listings.FindByID(ctx, booking.ListingRef)
	if err != nil {
		if errors.Is(err, listingserrors.ErrNotFound) {
			return 0, apperrors.Conflict("Booking references a missing listing", bookingserrors.ErrListingGone)
		}
		return 0, apperrors.Internal("Failed to resolve listing", err)
	}
	booking.Listing = listing
	return listing.PricePerNight, nil
}

func (s *bookingService) publish(ctx context.Context, eventType string, booking *model.Booking) {
	err := s.publisher.Publish(ctx, events.Event{
		Type:       eventType,
		Key:        booking.BookingID.String(),
		OccurredAt: time.Now().UTC(),
		Payload:    booking,
	})
	if err != nil {
		// Notifications are best-effort; the request already succeeded.
		s.log.Warn("Failed to publish booking event", "type", eventType, "id", booking.BookingID, "error", err)
	}
}

func mergeBookingUpdates(existing *model.Booking, updates *model.BookingUpdate) *model.Booking {
	merged := *existing
	if updates.StartDate != nil {
		merged.StartDate = *updates.StartDate
	}
	if updates.EndDate != nil {
		merged.EndDate = *updates.EndDate
	}
	if updates.Status != "" {
		merged.Status = updates.Status
	}
	return &merged
}

func parseID(id string) (uuid.UUID, error) {
	if id == "" {
		return uuid.Nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperrors.InvalidInput("Invalid booking ID format")
	}
	return bookingID, nil
}

func asValidationError(err error) error {
	var validationErrs validation.ValidationErrors
	if errors.As(err, &validationErrs) {
		return apperrors.Validation("Invalid booking input", validationErrs.Details())
	}
	return apperrors.Internal("Booking validation failed", err)
}
