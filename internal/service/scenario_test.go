package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweederent-backend/internal/apperr"
	"tweederent-backend/internal/domain"
	"tweederent-backend/internal/repository/memory"
	"tweederent-backend/internal/service"
)

// TestRentalLifecycle walks one rental from request to review against
// the in-memory store, the same wiring the dev config runs.
func TestRentalLifecycle(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	bookingSvc := service.NewBookingService(store.Rentals(), store.Devices(), store.Users(), service.NewNoopEmailService())
	rentalSvc := service.NewRentalService(store.Rentals(), store.Devices(), store.Users(), service.NewNoopEmailService())
	reviewSvc := service.NewReviewService(store.Reviews(), store.Rentals(), store.Users())
	deviceSvc := service.NewDeviceService(store.Devices(), nil)
	userSvc := service.NewUserService(store.Users())

	owner := &domain.User{ID: "owner-1", Email: "owner@example.com", Name: "Owner", CreateDate: time.Now().UTC()}
	renter := &domain.User{ID: "renter-1", Email: "renter@example.com", Name: "Renter", CreateDate: time.Now().UTC()}
	require.NoError(t, store.Users().Create(ctx, owner))
	require.NoError(t, store.Users().Create(ctx, renter))

	deviceID, err := deviceSvc.AddDevice(ctx, "owner-1", &domain.Device{
		Name:            "Pressure Washer",
		Category:        "tools",
		DailyPrice:      15.0,
		SecurityDeposit: 50.0,
	})
	require.NoError(t, err)

	start := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)
	end := time.Date(2026, 10, 3, 18, 0, 0, 0, time.UTC)

	// Request: three inclusive days, price and deposit snapshotted.
	rental, err := bookingSvc.CreateBooking(ctx, "renter-1", deviceID, start, end)
	require.NoError(t, err)
	assert.Equal(t, domain.RentalStatusPending, rental.Status)
	assert.Equal(t, 45.0, rental.TotalPrice)
	assert.Equal(t, 50.0, rental.SecurityDeposit)

	// The pending request already blocks the calendar.
	available, err := bookingSvc.CheckAvailability(ctx, deviceID, start, end)
	require.NoError(t, err)
	assert.False(t, available)

	_, err = bookingSvc.CreateBooking(ctx, "renter-2", deviceID,
		time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC))
	assert.True(t, apperr.Is(err, apperr.KindUnavailable), "shared endpoint conflicts")

	// A later device price change must not touch the booked rental.
	device, err := deviceSvc.GetDevice(ctx, deviceID)
	require.NoError(t, err)
	device.DailyPrice = 99.0
	require.NoError(t, deviceSvc.UpdateDevice(ctx, "owner-1", device))

	// Owner walks the status machine.
	_, err = rentalSvc.ApproveRental(ctx, "owner-1", rental.ID)
	require.NoError(t, err)
	_, err = rentalSvc.StartRental(ctx, "owner-1", rental.ID)
	require.NoError(t, err)
	completed, err := rentalSvc.CompleteRental(ctx, "owner-1", rental.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RentalStatusCompleted, completed.Status)
	assert.Equal(t, 45.0, completed.TotalPrice, "price snapshot survives the device edit")

	// Dates free up once nothing blocks them... but COMPLETED still blocks.
	available, err = bookingSvc.CheckAvailability(ctx, deviceID, start, end)
	require.NoError(t, err)
	assert.False(t, available, "completed rentals keep their dates")

	// Renter reviews once.
	reviewID, err := reviewSvc.SubmitReview(ctx, "renter-1", rental.ID, 5, "spotless")
	require.NoError(t, err)
	assert.NotEmpty(t, reviewID)

	_, err = reviewSvc.SubmitReview(ctx, "renter-1", rental.ID, 4, "again")
	assert.True(t, apperr.Is(err, apperr.KindValidation), "one review per rental")

	profile, err := userSvc.GetProfile(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 1, profile.ReviewCount)
	assert.Equal(t, 5.0, profile.Rating)

	reviews, err := reviewSvc.GetDeviceReviews(ctx, deviceID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

// TestDeniedRequestFreesDates covers the cancel path: a denied request
// stops blocking the calendar.
func TestDeniedRequestFreesDates(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	bookingSvc := service.NewBookingService(store.Rentals(), store.Devices(), store.Users(), service.NewNoopEmailService())
	rentalSvc := service.NewRentalService(store.Rentals(), store.Devices(), store.Users(), service.NewNoopEmailService())
	deviceSvc := service.NewDeviceService(store.Devices(), nil)

	deviceID, err := deviceSvc.AddDevice(ctx, "owner-1", &domain.Device{
		Name: "Projector", Category: "electronics", DailyPrice: 10.0,
	})
	require.NoError(t, err)

	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

	rental, err := bookingSvc.CreateBooking(ctx, "renter-1", deviceID, start, end)
	require.NoError(t, err)

	_, err = rentalSvc.DenyRental(ctx, "owner-1", rental.ID)
	require.NoError(t, err)

	available, err := bookingSvc.CheckAvailability(ctx, deviceID, start, end)
	require.NoError(t, err)
	assert.True(t, available)

	// The same renter can re-request the freed dates.
	again, err := bookingSvc.CreateBooking(ctx, "renter-1", deviceID, start, end)
	require.NoError(t, err)
	assert.Equal(t, domain.RentalStatusPending, again.Status)
}
