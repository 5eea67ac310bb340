package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"tweederent-backend/internal/apperr"
	"tweederent-backend/internal/domain"
	"tweederent-backend/internal/logger"
	"tweederent-backend/internal/repository"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	rentalRepo repository.RentalRepository
	userRepo   repository.UserRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	rentalRepo repository.RentalRepository,
	userRepo repository.UserRepository,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		rentalRepo: rentalRepo,
		userRepo:   userRepo,
	}
}

// SubmitReview files the renter's one review for a completed rental.
// The review write and the isReviewed flag are two separate document
// writes; two racing submissions can both pass the duplicate check.
// That window is inherited from the store's lack of transactions.
func (s *reviewService) SubmitReview(ctx context.Context, reviewerID, rentalID string, rating int, comment string) (string, error) {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return "", apperr.Validation("rating must be between %d and %d", domain.MinRating, domain.MaxRating)
	}

	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return "", err
	}
	if rental.RenterID != reviewerID {
		return "", apperr.Unauthorized("only the renter may review rental %s", rentalID)
	}
	if rental.Status != domain.RentalStatusCompleted {
		return "", apperr.Validation("rental %s is not completed", rentalID)
	}
	if rental.IsReviewed {
		return "", apperr.Validation("rental %s has already been reviewed", rentalID)
	}

	review := &domain.Review{
		ID:         uuid.New().String(),
		RentalID:   rentalID,
		ReviewerID: reviewerID,
		ReviewedID: rental.OwnerID,
		DeviceID:   rental.DeviceID,
		Rating:     rating,
		Comment:    comment,
		CreateDate: time.Now().UTC(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return "", err
	}
	if err := s.rentalRepo.MarkReviewed(ctx, rentalID); err != nil {
		return "", err
	}

	s.updateRatingAggregate(ctx, rental.OwnerID, rating)

	logger.Info("Review submitted", "review_id", review.ID, "rental_id", rentalID, "rating", rating)
	return review.ID, nil
}

// updateRatingAggregate folds the new rating into the reviewed user's
// running average. Maintained by convention, not atomically; the
// nightly reconcile job corrects any drift.
func (s *reviewService) updateRatingAggregate(ctx context.Context, userID string, rating int) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn("Failed to load user for rating aggregate", "user_id", userID, "error", err)
		return
	}

	total := user.Rating*float64(user.ReviewCount) + float64(rating)
	user.ReviewCount++
	user.Rating = total / float64(user.ReviewCount)

	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.Warn("Failed to update rating aggregate", "user_id", userID, "error", err)
	}
}

func (s *reviewService) GetUserReviews(ctx context.Context, userID string) ([]domain.Review, error) {
	reviews, err := s.reviewRepo.ListByReviewed(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortReviewsByCreateDate(reviews)
	return reviews, nil
}

func (s *reviewService) GetDeviceReviews(ctx context.Context, deviceID string) ([]domain.Review, error) {
	reviews, err := s.reviewRepo.ListByDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	sortReviewsByCreateDate(reviews)
	return reviews, nil
}

func sortReviewsByCreateDate(reviews []domain.Review) {
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreateDate.After(reviews[j].CreateDate)
	})
}
