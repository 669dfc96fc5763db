package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	listingserrors "staylist/internal/listings/errors"
	"staylist/internal/listings/repository"
	"staylist/internal/listings/validator"
	apperrors "staylist/pkg/errors"
	"staylist/pkg/logger"
	"staylist/pkg/model"
	"staylist/pkg/validation"
)

type ListingService interface {
	Create(ctx context.Context, listing *model.Listing) error
	CreateBatch(ctx context.Context, listings []*model.Listing) error
	GetByID(ctx context.Context, id string) (*model.Listing, error)
	GetAll(ctx context.Context, limit, offset int) ([]*model.Listing, int64, error)
	Update(ctx context.Context, id string, updates *model.ListingUpdate) (*model.Listing, error)
	Delete(ctx context.Context, id string) error
}

type listingService struct {
	repo      repository.ListingRepository
	validator *validator.ListingValidator
	log       *logger.Logger
}

func NewListingService(repo repository.ListingRepository, v *validator.ListingValidator, log *logger.Logger) ListingService {
	return &listingService{
		repo:      repo,
		validator: v,
		log:       log,
	}
}

func (s *listingService) Create(ctx context.Context, listing *model.Listing) error {
	// Identifier and timestamps are read-only; whatever the caller sent
	// is discarded and reassigned by the persistence hooks.
	listing.ListingID = uuid.Nil
	listing.CreatedAt = model.Date{}
	listing.UpdatedAt = model.Date{}

	if err := s.validate(listing); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		s.log.Error("Failed to create listing", "error", err)
		return apperrors.Internal("Failed to create listing", err)
	}

	s.log.Info("Listing created successfully", "id", listing.ListingID, "name", listing.Name)
	return nil
}

func (s *listingService) CreateBatch(ctx context.Context, listings []*model.Listing) error {
	for _, listing := range listings {
		listing.ListingID = uuid.Nil
		listing.CreatedAt = model.Date{}
		listing.UpdatedAt = model.Date{}
		if err := s.validate(listing); err != nil {
			return err
		}
	}

	if err := s.repo.CreateBatch(ctx, listings); err != nil {
		s.log.Error("Failed to batch-create listings", "count", len(listings), "error", err)
		return apperrors.Internal("Failed to create listings", err)
	}

	s.log.Info("Listings created successfully", "count", len(listings))
	return nil
}

func (s *listingService) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	listingID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	listing, err := s.repo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, listingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Listing", id)
		}
		return nil, apperrors.Internal("Failed to retrieve listing", err)
	}

	return listing, nil
}

func (s *listingService) GetAll(ctx context.Context, limit, offset int) ([]*model.Listing, int64, error) {
	var (
		count    int64
		listings []*model.Listing
		errCount error
		errFind  error
		wg       sync.WaitGroup
	)
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.log.Error("Failed to count listings", "error", errCount)
			errCount = apperrors.Internal("Failed to count listings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		listings, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.log.Error("Failed to list listings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve listings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return listings, count, nil
}

func (s *listingService) Update(ctx context.Context, id string, updates *model.ListingUpdate) (*model.Listing, error) {
	listingID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, listingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Listing", id)
		}
		return nil, apperrors.Internal("Failed to check listing existence", err)
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		return nil, asValidationError(err)
	}

	merged := mergeListingUpdates(existing, updates)
	if err := s.validate(merged); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, merged); err != nil {
		s.log.Error("Failed to update listing", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update listing", err)
	}

	s.log.Info("Listing updated successfully", "id", id)
	return merged, nil
}

func (s *listingService) Delete(ctx context.Context, id string) error {
	listingID, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, listingID); err != nil {
		if errors.Is(err, listingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Listing", id)
		}
		s.log.Error("Failed to delete listing", "id", id, "error", err)
		return apperrors.Internal("Failed to delete listing", err)
	}

	s.log.Info("Listing deleted successfully", "id", id)
	return nil
}

func (s *listingService) validate(listing *model.Listing) error {
	if err := s.validator.Validate(listing); err != nil {
		return asValidationError(err)
	}
	return nil
}

func mergeListingUpdates(existing *model.Listing, updates *model.ListingUpdate) *model.Listing {
	merged := *existing
	if updates.Name != nil {
		merged.Name = *updates.Name
	}
	if updates.Description != nil {
		merged.Description = *updates.Description
	}
	if updates.Location != nil {
		merged.Location = *updates.Location
	}
	if updates.PricePerNight != nil {
		merged.PricePerNight = *updates.PricePerNight
	}
	return &merged
}

func parseID(id string) (uuid.UUID, error) {
	if id == "" {
		return uuid.Nil, apperrors.InvalidInput("Listing ID cannot be empty")
	}
	listingID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperrors.InvalidInput("Invalid listing ID format")
	}
	return listingID, nil
}

func asValidationError(err error) error {
	var validationErrs validation.ValidationErrors
	if errors.As(err, &validationErrs) {
		return apperrors.Validation("Invalid listing input", validationErrs.Details())
	}
	return apperrors.Internal("Listing validation failed", err)
}
