// Package memory implements the repositories on in-process maps. It
// backs local development and tests the same way the mock object store
// stands in for the cloud bucket: selected by config, no emulator
// required.
package memory

import (
	"context"
	"sync"
	"time"

	"tweederent-backend/internal/apperr"
	"tweederent-backend/internal/domain"
	"tweederent-backend/internal/repository"
)

// Store keeps every collection in memory behind one mutex. Documents
// are copied on the way in and out so callers never share state with
// the store.
type Store struct {
	mu      sync.RWMutex
	users   map[string]domain.User
	devices map[string]domain.Device
	rentals map[string]domain.Rental
	reviews map[string]domain.Review
}

func NewStore() *Store {
	return &Store{
		users:   make(map[string]domain.User),
		devices: make(map[string]domain.Device),
		rentals: make(map[string]domain.Rental),
		reviews: make(map[string]domain.Review),
	}
}

func (s *Store) Users() repository.UserRepository     { return (*userRepo)(s) }
func (s *Store) Devices() repository.DeviceRepository { return (*deviceRepo)(s) }
func (s *Store) Rentals() repository.RentalRepository { return (*rentalRepo)(s) }
func (s *Store) Reviews() repository.ReviewRepository { return (*reviewRepo)(s) }

type userRepo Store

func (r *userRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, apperr.NotFound("user %s", id)
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, apperr.NotFound("user with email %s", email)
}

func (r *userRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *userRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

type deviceRepo Store

func (r *deviceRepo) Create(_ context.Context, device *domain.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devices[device.ID] = *device
	return nil
}

func (r *deviceRepo) GetByID(_ context.Context, id string) (*domain.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	device, ok := r.devices[id]
	if !ok {
		return nil, apperr.NotFound("device %s", id)
	}
	return &device, nil
}

func (r *deviceRepo) Update(_ context.Context, device *domain.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.devices[device.ID]; !ok {
		return apperr.NotFound("device %s", device.ID)
	}
	r.devices[device.ID] = *device
	return nil
}

func (r *deviceRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.devices, id)
	return nil
}

func (r *deviceRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var devices []domain.Device
	for _, device := range r.devices {
		if device.OwnerID == ownerID {
			devices = append(devices, device)
		}
	}
	return devices, nil
}

func (r *deviceRepo) ListAvailable(_ context.Context, category string) ([]domain.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var devices []domain.Device
	for _, device := range r.devices {
		if !device.IsAvailable {
			continue
		}
		if category != "" && device.Category != category {
			continue
		}
		devices = append(devices, device)
	}
	return devices, nil
}

type rentalRepo Store

func (r *rentalRepo) Create(_ context.Context, rental *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rentals[rental.ID] = *rental
	return nil
}

func (r *rentalRepo) GetByID(_ context.Context, id string) (*domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rental, ok := r.rentals[id]
	if !ok {
		return nil, apperr.NotFound("rental %s", id)
	}
	return &rental, nil
}

func (r *rentalRepo) UpdateStatus(_ context.Context, id string, status domain.RentalStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rental, ok := r.rentals[id]
	if !ok {
		return apperr.NotFound("rental %s", id)
	}
	rental.Status = status
	rental.UpdateDate = time.Now().UTC()
	r.rentals[id] = rental
	return nil
}

func (r *rentalRepo) MarkReviewed(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rental, ok := r.rentals[id]
	if !ok {
		return apperr.NotFound("rental %s", id)
	}
	rental.IsReviewed = true
	rental.UpdateDate = time.Now().UTC()
	r.rentals[id] = rental
	return nil
}

func (r *rentalRepo) ListByDevice(_ context.Context, deviceID string) ([]domain.Rental, error) {
	return r.filter(func(rt *domain.Rental) bool { return rt.DeviceID == deviceID })
}

func (r *rentalRepo) ListByRenter(_ context.Context, renterID string) ([]domain.Rental, error) {
	return r.filter(func(rt *domain.Rental) bool { return rt.RenterID == renterID })
}

func (r *rentalRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Rental, error) {
	return r.filter(func(rt *domain.Rental) bool { return rt.OwnerID == ownerID })
}

func (r *rentalRepo) ListByStatus(_ context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	return r.filter(func(rt *domain.Rental) bool { return rt.Status == status })
}

func (r *rentalRepo) filter(keep func(*domain.Rental) bool) ([]domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var rentals []domain.Rental
	for _, rental := range r.rentals {
		if keep(&rental) {
			rentals = append(rentals, rental)
		}
	}
	return rentals, nil
}

type reviewRepo Store

func (r *reviewRepo) Create(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews[review.ID] = *review
	return nil
}

func (r *reviewRepo) ListByReviewed(_ context.Context, reviewedID string) ([]domain.Review, error) {
	return r.filter(func(rv *domain.Review) bool { return rv.ReviewedID == reviewedID })
}

func (r *reviewRepo) ListByDevice(_ context.Context, deviceID string) ([]domain.Review, error) {
	return r.filter(func(rv *domain.Review) bool { return rv.DeviceID == deviceID })
}

func (r *reviewRepo) filter(keep func(*domain.Review) bool) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var reviews []domain.Review
	for _, review := range r.reviews {
		if keep(&review) {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}
