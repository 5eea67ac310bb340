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

func newRentalService() (*MockRentalRepo, *MockDeviceRepo, *MockUserRepo, *MockEmailService, service.RentalService) {
	rentalRepo := new(MockRentalRepo)
	deviceRepo := new(MockDeviceRepo)
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	return rentalRepo, deviceRepo, userRepo, emailSvc,
		service.NewRentalService(rentalRepo, deviceRepo, userRepo, emailSvc)
}

func pendingRental() *domain.Rental {
	return &domain.Rental{
		ID:       "r-1",
		DeviceID: "dev-1",
		RenterID: "renter-1",
		OwnerID:  "owner-1",
		Status:   domain.RentalStatusPending,
	}
}

func TestRentalService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rentalRepo, deviceRepo, userRepo, emailSvc, svc := newRentalService()
		rentalRepo.On("GetByID", ctx, "r-1").Return(pendingRental(), nil)
		rentalRepo.On("UpdateStatus", ctx, "r-1", domain.RentalStatusApproved).Return(nil)
		userRepo.On("GetByID", ctx, "renter-1").Return(&domain.User{ID: "renter-1", Email: "renter@example.com"}, nil)
		deviceRepo.On("GetByID", ctx, "dev-1").Return(&domain.Device{ID: "dev-1", Name: "Drill"}, nil)
		emailSvc.On("SendRentalApprovalNotification", ctx, "renter@example.com", "Drill").Return(nil)

		rental, err := svc.ApproveRental(ctx, "owner-1", "r-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusApproved, rental.Status)
		rentalRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("Not Owner", func(t *testing.T) {
		rentalRepo, _, _, _, svc := newRentalService()
		rentalRepo.On("GetByID", ctx, "r-1").Return(pendingRental(), nil)

		_, err := svc.ApproveRental(ctx, "renter-1", "r-1")
		assert.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindUnauthorized),
			"the renter cannot approve their own request")
		rentalRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Already Approved", func(t *testing.T) {
		rentalRepo, _, _, _, svc := newRentalService()
		rental := pendingRental()
		rental.Status = domain.RentalStatusApproved
		rentalRepo.On("GetByID", ctx, "r-1").Return(rental, nil)

		_, err := svc.ApproveRental(ctx, "owner-1", "r-1")
		assert.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindInvalidTransition))
	})
}

func TestRentalService_Deny(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending Can Be Denied", func(t *testing.T) {
		rentalRepo, deviceRepo, userRepo, emailSvc, svc := newRentalService()
		rentalRepo.On("GetByID", ctx, "r-1").Return(pendingRental(), nil)
		rentalRepo.On("UpdateStatus", ctx, "r-1", domain.RentalStatusCancelled).Return(nil)
		userRepo.On("GetByID", ctx, "renter-1").Return(&domain.User{ID: "renter-1", Email: "renter@example.com"}, nil)
		deviceRepo.On("GetByID", ctx, "dev-1").Return(&domain.Device{ID: "dev-1", Name: "Drill"}, nil)
		emailSvc.On("SendRentalDenialNotification", ctx, "renter@example.com", "Drill").Return(nil)

		rental, err := svc.DenyRental(ctx, "owner-1", "r-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusCancelled, rental.Status)
	})

	t.Run("Approved Can Be Cancelled", func(t *testing.T) {
		rentalRepo, deviceRepo, userRepo, emailSvc, svc := newRentalService()
		rental := pendingRental()
		rental.Status = domain.RentalStatusApproved
		rentalRepo.On("GetByID", ctx, "r-1").Return(rental, nil)
		rentalRepo.On("UpdateStatus", ctx, "r-1", domain.RentalStatusCancelled).Return(nil)
		userRepo.On("GetByID", ctx, "renter-1").Return(&domain.User{ID: "renter-1", Email: "renter@example.com"}, nil)
		deviceRepo.On("GetByID", ctx, "dev-1").Return(&domain.Device{ID: "dev-1", Name: "Drill"}, nil)
		emailSvc.On("SendRentalDenialNotification", ctx, mock.Anything, mock.Anything).Return(nil)

		got, err := svc.DenyRental(ctx, "owner-1", "r-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusCancelled, got.Status)
	})

	t.Run("Active Cannot Be Cancelled", func(t *testing.T) {
		rentalRepo, _, _, _, svc := newRentalService()
		rental := pendingRental()
		rental.Status = domain.RentalStatusActive
		rentalRepo.On("GetByID", ctx, "r-1").Return(rental, nil)

		_, err := svc.DenyRental(ctx, "owner-1", "r-1")
		assert.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindInvalidTransition),
			"an active rental can only complete")
	})
}

func TestRentalService_StartAndComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("Start From Approved", func(t *testing.T) {
		rentalRepo, _, _, _, svc := newRentalService()
		rental := pendingRental()
		rental.Status = domain.RentalStatusApproved
		rentalRepo.On("GetByID", ctx, "r-1").Return(rental, nil)
		rentalRepo.On("UpdateStatus", ctx, "r-1", domain.RentalStatusActive).Return(nil)

		got, err := svc.StartRental(ctx, "owner-1", "r-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusActive, got.Status)
	})

	t.Run("Start From Pending Rejected", func(t *testing.T) {
		rentalRepo, _, _, _, svc := newRentalService()
		rentalRepo.On("GetByID", ctx, "r-1").Return(pendingRental(), nil)

		_, err := svc.StartRental(ctx, "owner-1", "r-1")
		assert.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindInvalidTransition),
			"a request must be approved before pickup")
	})

	t.Run("Complete From Terminal Rejected", func(t *testing.T) {
		for _, status := range []domain.RentalStatus{domain.RentalStatusCompleted, domain.RentalStatusCancelled} {
			rentalRepo, _, _, _, svc := newRentalService()
			rental := pendingRental()
			rental.Status = status
			rentalRepo.On("GetByID", ctx, "r-1").Return(rental, nil)

			_, err := svc.CompleteRental(ctx, "owner-1", "r-1")
			assert.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.KindInvalidTransition), "from %s", status)
		}
	})
}

func TestRentalService_GetRental(t *testing.T) {
	ctx := context.Background()

	t.Run("Renter May Read", func(t *testing.T) {
		rentalRepo, _, _, _, svc := newRentalService()
		rentalRepo.On("GetByID", ctx, "r-1").Return(pendingRental(), nil)

		rental, err := svc.GetRental(ctx, "renter-1", "r-1")
		assert.NoError(t, err)
		assert.Equal(t, "r-1", rental.ID)
	})

	t.Run("Third Party May Not", func(t *testing.T) {
		rentalRepo, _, _, _, svc := newRentalService()
		rentalRepo.On("GetByID", ctx, "r-1").Return(pendingRental(), nil)

		_, err := svc.GetRental(ctx, "stranger", "r-1")
		assert.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
	})
}

func TestRentalService_Listings(t *testing.T) {
	ctx := context.Background()

	t.Run("Received Requests Filters Pending", func(t *testing.T) {
		rentalRepo, _, _, _, svc := newRentalService()
		rentalRepo.On("ListByOwner", ctx, "owner-1").Return([]domain.Rental{
			{ID: "r-1", Status: domain.RentalStatusPending, CreateDate: day(1)},
			{ID: "r-2", Status: domain.RentalStatusApproved, CreateDate: day(2)},
			{ID: "r-3", Status: domain.RentalStatusPending, CreateDate: day(3)},
		}, nil)

		rentals, err := svc.GetReceivedRentalRequests(ctx, "owner-1")
		assert.NoError(t, err)
		assert.Len(t, rentals, 2)
		assert.Equal(t, "r-3", rentals[0].ID, "newest first")
		assert.Equal(t, "r-1", rentals[1].ID)
	})

	t.Run("Active Rentals Include Approved", func(t *testing.T) {
		rentalRepo, _, _, _, svc := newRentalService()
		rentalRepo.On("ListByOwner", ctx, "owner-1").Return([]domain.Rental{
			{ID: "r-1", Status: domain.RentalStatusApproved, CreateDate: day(1)},
			{ID: "r-2", Status: domain.RentalStatusActive, CreateDate: day(2)},
			{ID: "r-3", Status: domain.RentalStatusCompleted, CreateDate: day(3)},
		}, nil)

		rentals, err := svc.GetActiveRentals(ctx, "owner-1")
		assert.NoError(t, err)
		assert.Len(t, rentals, 2)
		assert.Equal(t, "r-2", rentals[0].ID)
	})
}
