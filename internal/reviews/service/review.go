package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	listingserrors "staylist/internal/listings/errors"
	listingrepo "staylist/internal/listings/repository"
	reviewserrors "staylist/internal/reviews/errors"
	"staylist/internal/reviews/repository"
	"staylist/internal/reviews/validator"
	apperrors "staylist/pkg/errors"
	"staylist/pkg/logger"
	"staylist/pkg/model"
	"staylist/pkg/validation"
)

type ReviewService interface {
	Create(ctx context.Context, review *model.Review) error
	CreateBatch(ctx context.Context, reviews []*model.Review) error
	GetByID(ctx context.Context, id string) (*model.Review, error)
	GetAll(ctx context.Context, listingID string, limit, offset int) ([]*model.Review, int64, error)
	Update(ctx context.Context, id string, updates *model.ReviewUpdate) (*model.Review, error)
	Delete(ctx context.Context, id string) error
}

type reviewService struct {
	repo      repository.ReviewRepository
	listings  listingrepo.ListingRepository
	validator *validator.ReviewValidator
	log       *logger.Logger
}

func NewReviewService(
	repo repository.ReviewRepository,
	listings listingrepo.ListingRepository,
	v *validator.ReviewValidator,
	log *logger.Logger,
) ReviewService {
	return &reviewService{
		repo:      repo,
		listings:  listings,
		validator: v,
		log:       log,
	}
}

func (s *reviewService) Create(ctx context.Context, review *model.Review) error {
	review.ReviewID = uuid.Nil
	review.CreatedAt = model.Date{}

	if err := s.validator.Validate(review); err != nil {
		return asValidationError(err)
	}

	if _, err := s.listings.FindByID(ctx, review.ListingRef); err != nil {
		if errors.Is(err, listingserrors.ErrNotFound) {
			return apperrors.Conflict("Review references a missing listing", reviewserrors.ErrListingGone)
		}
		return apperrors.Internal("Failed to resolve listing", err)
	}

	if err := s.repo.Create(ctx, review); err != nil {
		if errors.Is(err, reviewserrors.ErrListingGone) {
			return apperrors.Conflict("Review references a missing listing", err)
		}
		s.log.Error("Failed to create review", "error", err)
		return apperrors.Internal("Failed to create review", err)
	}

	s.log.Info("Review created successfully",
		"id", review.ReviewID,
		"listing_id", review.ListingRef,
		"rating", review.Rating,
	)
	return nil
}

func (s *reviewService) CreateBatch(ctx context.Context, reviews []*model.Review) error {
	for _, review := range reviews {
		review.ReviewID = uuid.Nil
		review.CreatedAt = model.Date{}
		if err := s.validator.Validate(review); err != nil {
			return asValidationError(err)
		}
	}

	if err := s.repo.CreateBatch(ctx, reviews); err != nil {
		if errors.Is(err, reviewserrors.ErrListingGone) {
			return apperrors.Conflict("Review references a missing listing", err)
		}
		s.log.Error("Failed to batch-create reviews", "count", len(reviews), "error", err)
		return apperrors.Internal("Failed to create reviews", err)
	}

	s.log.Info("Reviews created successfully", "count", len(reviews))
	return nil
}

func (s *reviewService) GetByID(ctx context.Context, id string) (*model.Review, error) {
	reviewID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	review, err := s.repo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, reviewserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Review", id)
		}
		return nil, apperrors.Internal("Failed to retrieve review", err)
	}

	return review, nil
}

func (s *reviewService) GetAll(ctx context.Context, listingID string, limit, offset int) ([]*model.Review, int64, error) {
	var filter *uuid.UUID
	if listingID != "" {
		parsed, err := uuid.Parse(listingID)
		if err != nil {
			return nil, 0, apperrors.InvalidInput("Invalid listing ID format")
		}
		filter = &parsed
	}

	count, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count reviews", "error", err)
		return nil, 0, apperrors.Internal("Failed to count reviews", err)
	}

	reviews, err := s.repo.FindAll(ctx, filter, limit, offset)
	if err != nil {
		s.log.Error("Failed to list reviews", "error", err)
		return nil, 0, apperrors.Internal("Failed to retrieve reviews", err)
	}

	return reviews, count, nil
}

func (s *reviewService) Update(ctx context.Context, id string, updates *model.ReviewUpdate) (*model.Review, error) {
	reviewID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, reviewserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Review", id)
		}
		return nil, apperrors.Internal("Failed to check review existence", err)
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		return nil, asValidationError(err)
	}

	merged := *existing
	if updates.Rating != nil {
		merged.Rating = *updates.Rating
	}
	if updates.Comment != nil {
		merged.Comment = *updates.Comment
	}
	if err := s.validator.Validate(&merged); err != nil {
		return nil, asValidationError(err)
	}

	if err := s.repo.Update(ctx, &merged); err != nil {
		s.log.Error("Failed to update review", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update review", err)
	}

	s.log.Info("Review updated successfully", "id", id)
	return &merged, nil
}

func (s *reviewService) Delete(ctx context.Context, id string) error {
	reviewID, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, reviewserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Review", id)
		}
		s.log.Error("Failed to delete review", "id", id, "error", err)
		return apperrors.Internal("Failed to delete review", err)
	}

	s.log.Info("Review deleted successfully", "id", id)
	return nil
}

func parseID(id string) (uuid.UUID, error) {
	if id == "" {
		return uuid.Nil, apperrors.InvalidInput("Review ID cannot be empty")
	}
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperrors.InvalidInput("Invalid review ID format")
	}
	return reviewID, nil
}

func asValidationError(err error) error {
	var validationErrs validation.ValidationErrors
	if errors.As(err, &validationErrs) {
		return apperrors.Validation("Invalid review input", validationErrs.Details())
	}
	return apperrors.Internal("Review validation failed", err)
}
