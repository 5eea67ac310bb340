package service

import (
	"context"
	"io"
	"time"

	"tweederent-backend/internal/domain"
)

// BookingService creates rental requests: availability check, price
// computation and the initial PENDING write.
type BookingService interface {
	// CheckAvailability reports whether the device has no blocking
	// rental overlapping the inclusive [start, end] range.
	CheckAvailability(ctx context.Context, deviceID string, start, end time.Time) (bool, error)

	// CreateBooking creates a PENDING rental for the renter after the
	// availability check passes. Price and deposit are snapshotted
	// from the device.
	CreateBooking(ctx context.Context, renterID, deviceID string, start, end time.Time) (*domain.Rental, error)
}

// RentalService drives the rental status machine and the read-side
// rental listings.
type RentalService interface {
	ApproveRental(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error)
	DenyRental(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error)
	StartRental(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error)
	CompleteRental(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error)

	GetRental(ctx context.Context, userID, rentalID string) (*domain.Rental, error)
	// GetUserRentals lists the rentals the user requested as renter.
	GetUserRentals(ctx context.Context, userID string) ([]domain.Rental, error)
	// GetReceivedRentalRequests lists PENDING requests on the owner's devices.
	GetReceivedRentalRequests(ctx context.Context, ownerID string) ([]domain.Rental, error)
	// GetActiveRentals lists APPROVED and ACTIVE rentals on the owner's devices.
	GetActiveRentals(ctx context.Context, ownerID string) ([]domain.Rental, error)
}

// ReviewService gates review creation on completed rentals.
type ReviewService interface {
	SubmitReview(ctx context.Context, reviewerID, rentalID string, rating int, comment string) (string, error)
	GetUserReviews(ctx context.Context, userID string) ([]domain.Review, error)
	GetDeviceReviews(ctx context.Context, deviceID string) ([]domain.Review, error)
}

// DeviceService covers device CRUD, photo uploads and search.
type DeviceService interface {
	AddDevice(ctx context.Context, ownerID string, device *domain.Device) (string, error)
	GetDevice(ctx context.Context, id string) (*domain.Device, error)
	UpdateDevice(ctx context.Context, ownerID string, device *domain.Device) error
	DeleteDevice(ctx context.Context, ownerID, deviceID string) error
	GetDevicesByOwner(ctx context.Context, ownerID string) ([]domain.Device, error)
	// SearchDevices matches query as a case-insensitive substring of
	// name, description or city; center and radiusKM add an optional
	// haversine distance filter.
	SearchDevices(ctx context.Context, query, category string, center *domain.Location, radiusKM float64) ([]domain.Device, error)
	UploadDeviceImage(ctx context.Context, ownerID, deviceID, filename, contentType string, r io.Reader) (string, error)
	ListCategories() []domain.Category
}

// UserService reads and updates user profiles.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, name, phoneNumber string, location domain.Location) error
}

// EmailService sends rental lifecycle notifications. Implementations
// are best-effort; the booking flow never fails on a mail error.
type EmailService interface {
	SendRentalRequestNotification(ctx context.Context, ownerEmail, renterName, deviceName string) error
	SendRentalApprovalNotification(ctx context.Context, renterEmail, deviceName string) error
	SendRentalDenialNotification(ctx context.Context, renterEmail, deviceName string) error
	SendRentalCompletionNotification(ctx context.Context, renterEmail, deviceName string) error
}
