package repository

import (
	"context"

	"tweederent-backend/internal/domain"
)

// The document store exposes per-collection CRUD plus simple equality
// queries. There are no compound range queries and no cross-document
// transactions; availability and search filter client-side after the
// fetch.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}

type DeviceRepository interface {
	Create(ctx context.Context, device *domain.Device) error
	GetByID(ctx context.Context, id string) (*domain.Device, error)
	Update(ctx context.Context, device *domain.Device) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Device, error)
	// ListAvailable returns devices whose availability toggle is on,
	// optionally narrowed to one category. Text and radius filtering
	// happen in the service layer.
	ListAvailable(ctx context.Context, category string) ([]domain.Device, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	// UpdateStatus is a targeted write of status and update timestamp;
	// it never touches dates or money fields.
	UpdateStatus(ctx context.Context, id string, status domain.RentalStatus) error
	MarkReviewed(ctx context.Context, id string) error
	ListByDevice(ctx context.Context, deviceID string) ([]domain.Rental, error)
	ListByRenter(ctx context.Context, renterID string) ([]domain.Rental, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Rental, error)
	ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListByReviewed(ctx context.Context, reviewedID string) ([]domain.Review, error)
	ListByDevice(ctx context.Context, deviceID string) ([]domain.Review, error)
}
