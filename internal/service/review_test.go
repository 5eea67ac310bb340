package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tweederent-backend/internal/apperr"
	"tweederent-backend/internal/domain"
	"tweederent-backend/internal/service"
)

func newReviewService() (*MockReviewRepo, *MockRentalRepo, *MockUserRepo, service.ReviewService) {
	reviewRepo := new(MockReviewRepo)
	rentalRepo := new(MockRentalRepo)
	userRepo := new(MockUserRepo)
	return reviewRepo, rentalRepo, userRepo,
		service.NewReviewService(reviewRepo, rentalRepo, userRepo)
}

func completedRental() *domain.Rental {
	return &domain.Rental{
		ID:       "r-1",
		DeviceID: "dev-1",
		RenterID: "renter-1",
		OwnerID:  "owner-1",
		Status:   domain.RentalStatusCompleted,
	}
}

func TestReviewService_SubmitReview(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		reviewRepo, rentalRepo, userRepo, svc := newReviewService()
		rentalRepo.On("GetByID", ctx, "r-1").Return(completedRental(), nil)
		reviewRepo.On("Create", ctx, mock.AnythingOfType("*domain.Review")).Return(nil)
		rentalRepo.On("MarkReviewed", ctx, "r-1").Return(nil)
		userRepo.On("GetByID", ctx, "owner-1").Return(&domain.User{ID: "owner-1", Rating: 4.0, ReviewCount: 1}, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		id, err := svc.SubmitReview(ctx, "renter-1", "r-1", 5, "great owner")
		assert.NoError(t, err)
		assert.NotEmpty(t, id)

		review := reviewRepo.Calls[0].Arguments.Get(1).(*domain.Review)
		assert.Equal(t, "owner-1", review.ReviewedID, "the review targets the owner")
		assert.Equal(t, "dev-1", review.DeviceID)
		assert.Equal(t, 5, review.Rating)

		updated := userRepo.Calls[1].Arguments.Get(1).(*domain.User)
		assert.Equal(t, 2, updated.ReviewCount)
		assert.InDelta(t, 4.5, updated.Rating, 1e-9, "running average folds in the new rating")
	})

	t.Run("Rating Out Of Bounds", func(t *testing.T) {
		_, rentalRepo, _, svc := newReviewService()

		for _, rating := range []int{0, 6, -1} {
			_, err := svc.SubmitReview(ctx, "renter-1", "r-1", rating, "")
			assert.Error(t, err, "rating %d", rating)
			assert.True(t, apperr.Is(err, apperr.KindValidation))
		}
		rentalRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Only Renter May Review", func(t *testing.T) {
		reviewRepo, rentalRepo, _, svc := newReviewService()
		rentalRepo.On("GetByID", ctx, "r-1").Return(completedRental(), nil)

		_, err := svc.SubmitReview(ctx, "owner-1", "r-1", 4, "")
		assert.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
		reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Rental Not Completed", func(t *testing.T) {
		for _, status := range []domain.RentalStatus{
			domain.RentalStatusPending, domain.RentalStatusApproved,
			domain.RentalStatusActive, domain.RentalStatusCancelled,
		} {
			_, rentalRepo, _, svc := newReviewService()
			rental := completedRental()
			rental.Status = status
			rentalRepo.On("GetByID", ctx, "r-1").Return(rental, nil)

			_, err := svc.SubmitReview(ctx, "renter-1", "r-1", 4, "")
			assert.Error(t, err, "status %s", status)
			assert.True(t, apperr.Is(err, apperr.KindValidation))
		}
	})

	t.Run("Duplicate Review", func(t *testing.T) {
		reviewRepo, rentalRepo, _, svc := newReviewService()
		rental := completedRental()
		rental.IsReviewed = true
		rentalRepo.On("GetByID", ctx, "r-1").Return(rental, nil)

		_, err := svc.SubmitReview(ctx, "renter-1", "r-1", 4, "")
		assert.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindValidation))
		reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Aggregate Failure Does Not Fail Submission", func(t *testing.T) {
		reviewRepo, rentalRepo, userRepo, svc := newReviewService()
		rentalRepo.On("GetByID", ctx, "r-1").Return(completedRental(), nil)
		reviewRepo.On("Create", ctx, mock.AnythingOfType("*domain.Review")).Return(nil)
		rentalRepo.On("MarkReviewed", ctx, "r-1").Return(nil)
		userRepo.On("GetByID", ctx, "owner-1").Return(nil, assert.AnError)

		id, err := svc.SubmitReview(ctx, "renter-1", "r-1", 3, "")
		assert.NoError(t, err, "the reconcile job repairs the aggregate later")
		assert.NotEmpty(t, id)
	})
}

func TestReviewService_Listings(t *testing.T) {
	ctx := context.Background()

	t.Run("User Reviews Newest First", func(t *testing.T) {
		reviewRepo, _, _, svc := newReviewService()
		reviewRepo.On("ListByReviewed", ctx, "owner-1").Return([]domain.Review{
			{ID: "v-1", CreateDate: day(1)},
			{ID: "v-2", CreateDate: day(3)},
			{ID: "v-3", CreateDate: day(2)},
		}, nil)

		reviews, err := svc.GetUserReviews(ctx, "owner-1")
		assert.NoError(t, err)
		assert.Equal(t, []string{"v-2", "v-3", "v-1"},
			[]string{reviews[0].ID, reviews[1].ID, reviews[2].ID})
	})

	t.Run("Device Reviews", func(t *testing.T) {
		reviewRepo, _, _, svc := newReviewService()
		reviewRepo.On("ListByDevice", ctx, "dev-1").Return([]domain.Review{
			{ID: "v-1", DeviceID: "dev-1", CreateDate: day(1)},
		}, nil)

		reviews, err := svc.GetDeviceReviews(ctx, "dev-1")
		assert.NoError(t, err)
		assert.Len(t, reviews, 1)
	})
}
