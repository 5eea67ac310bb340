package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"tweederent-backend/internal/apperr"
	"tweederent-backend/internal/domain"
	"tweederent-backend/internal/logger"
	"tweederent-backend/internal/repository"
)

type deviceRepository struct {
	client *firestore.Client
}

func NewDeviceRepository(client *firestore.Client) repository.DeviceRepository {
	return &deviceRepository{client: client}
}

func (r *deviceRepository) col() *firestore.CollectionRef {
	return r.client.Collection(devicesCollection)
}

func (r *deviceRepository) Create(ctx context.Context, device *domain.Device) error {
	logger.DatabaseCall("set", devicesCollection, "id", device.ID)
	if _, err := r.col().Doc(device.ID).Set(ctx, device); err != nil {
		return apperr.Storage("failed to create device", err)
	}
	return nil
}

func (r *deviceRepository) GetByID(ctx context.Context, id string) (*domain.Device, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("device %s", id)
		}
		return nil, apperr.Storage("failed to fetch device", err)
	}

	var device domain.Device
	if err := snap.DataTo(&device); err != nil {
		return nil, apperr.Storage("failed to decode device", err)
	}
	return &device, nil
}

func (r *deviceRepository) Update(ctx context.Context, device *domain.Device) error {
	logger.DatabaseCall("set", devicesCollection, "id", device.ID)
	if _, err := r.col().Doc(device.ID).Set(ctx, device); err != nil {
		return apperr.Storage("failed to update device", err)
	}
	return nil
}

func (r *deviceRepository) Delete(ctx context.Context, id string) error {
	logger.DatabaseCall("delete", devicesCollection, "id", id)
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return apperr.Storage("failed to delete device", err)
	}
	return nil
}

func (r *deviceRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Device, error) {
	return r.queryDevices(ctx, r.col().Where("ownerId", "==", ownerID))
}

func (r *deviceRepository) ListAvailable(ctx context.Context, category string) ([]domain.Device, error) {
	q := r.col().Where("isAvailable", "==", true)
	if category != "" {
		q = q.Where("category", "==", category)
	}
	return r.queryDevices(ctx, q)
}

func (r *deviceRepository) queryDevices(ctx context.Context, q firestore.Query) ([]domain.Device, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var devices []domain.Device
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperr.Storage("failed to query devices", err)
		}
		var device domain.Device
		if err := snap.DataTo(&device); err != nil {
			return nil, apperr.Storage("failed to decode device", err)
		}
		devices = append(devices, device)
	}
	return devices, nil
}
