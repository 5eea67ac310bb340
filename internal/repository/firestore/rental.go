package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"tweederent-backend/internal/apperr"
	"tweederent-backend/internal/domain"
	"tweederent-backend/internal/logger"
	"tweederent-backend/internal/repository"
)

type rentalRepository struct {
	client *firestore.Client
}

func NewRentalRepository(client *firestore.Client) repository.RentalRepository {
	return &rentalRepository{client: client}
}

func (r *rentalRepository) col() *firestore.CollectionRef {
	return r.client.Collection(rentalsCollection)
}

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	logger.DatabaseCall("set", rentalsCollection, "id", rental.ID)
	if _, err := r.col().Doc(rental.ID).Set(ctx, rental); err != nil {
		return apperr.Storage("failed to create rental", err)
	}
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("rental %s", id)
		}
		return nil, apperr.Storage("failed to fetch rental", err)
	}

	var rental domain.Rental
	if err := snap.DataTo(&rental); err != nil {
		return nil, apperr.Storage("failed to decode rental", err)
	}
	return &rental, nil
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, id string, status domain.RentalStatus) error {
	logger.DatabaseCall("update", rentalsCollection, "id", id, "status", status)
	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updateDate", Value: time.Now().UTC()},
	})
	if err != nil {
		if isNotFound(err) {
			return apperr.NotFound("rental %s", id)
		}
		return apperr.Storage("failed to update rental status", err)
	}
	return nil
}

func (r *rentalRepository) MarkReviewed(ctx context.Context, id string) error {
	logger.DatabaseCall("update", rentalsCollection, "id", id, "field", "isReviewed")
	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "isReviewed", Value: true},
		{Path: "updateDate", Value: time.Now().UTC()},
	})
	if err != nil {
		if isNotFound(err) {
			return apperr.NotFound("rental %s", id)
		}
		return apperr.Storage("failed to mark rental reviewed", err)
	}
	return nil
}

func (r *rentalRepository) ListByDevice(ctx context.Context, deviceID string) ([]domain.Rental, error) {
	return r.queryRentals(ctx, r.col().Where("deviceId", "==", deviceID))
}

func (r *rentalRepository) ListByRenter(ctx context.Context, renterID string) ([]domain.Rental, error) {
	return r.queryRentals(ctx, r.col().Where("renterId", "==", renterID))
}

func (r *rentalRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Rental, error) {
	return r.queryRentals(ctx, r.col().Where("ownerId", "==", ownerID))
}

func (r *rentalRepository) ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	return r.queryRentals(ctx, r.col().Where("status", "==", status))
}

func (r *rentalRepository) queryRentals(ctx context.Context, q firestore.Query) ([]domain.Rental, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var rentals []domain.Rental
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperr.Storage("failed to query rentals", err)
		}
		var rental domain.Rental
		if err := snap.DataTo(&rental); err != nil {
			return nil, apperr.Storage("failed to decode rental", err)
		}
		rentals = append(rentals, rental)
	}
	return rentals, nil
}
