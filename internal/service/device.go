package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"tweederent-backend/internal/apperr"
	"tweederent-backend/internal/domain"
	"tweederent-backend/internal/logger"
	"tweederent-backend/internal/repository"
	"tweederent-backend/internal/storage"
	"tweederent-backend/internal/utils"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	objects    storage.ObjectStorage
}

func NewDeviceService(deviceRepo repository.DeviceRepository, objects storage.ObjectStorage) DeviceService {
	return &deviceService{deviceRepo: deviceRepo, objects: objects}
}

func (s *deviceService) AddDevice(ctx context.Context, ownerID string, device *domain.Device) (string, error) {
	if device.Name == "" {
		return "", apperr.Validation("device name is required")
	}
	if device.DailyPrice <= 0 {
		return "", apperr.Validation("daily price must be positive")
	}
	if device.SecurityDeposit < 0 {
		return "", apperr.Validation("security deposit cannot be negative")
	}
	if device.Category != "" && !domain.ValidCategory(device.Category) {
		return "", apperr.Validation("unknown category %s", device.Category)
	}

	device.ID = uuid.New().String()
	device.OwnerID = ownerID
	device.IsAvailable = true
	device.CreateDate = time.Now().UTC()

	if err := s.deviceRepo.Create(ctx, device); err != nil {
		return "", err
	}
	logger.Info("Device listed", "device_id", device.ID, "owner_id", ownerID, "name", device.Name)
	return device.ID, nil
}

func (s *deviceService) GetDevice(ctx context.Context, id string) (*domain.Device, error) {
	return s.deviceRepo.GetByID(ctx, id)
}

func (s *deviceService) UpdateDevice(ctx context.Context, ownerID string, device *domain.Device) error {
	existing, err := s.deviceRepo.GetByID(ctx, device.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return apperr.Unauthorized("user %s does not own device %s", ownerID, device.ID)
	}
	if device.DailyPrice <= 0 {
		return apperr.Validation("daily price must be positive")
	}

	// Identity and provenance fields are immutable.
	device.OwnerID = existing.OwnerID
	device.CreateDate = existing.CreateDate

	return s.deviceRepo.Update(ctx, device)
}

// DeleteDevice removes the listing from future searches. Existing
// rentals keep their device reference; they carry their own price and
// deposit snapshots.
func (s *deviceService) DeleteDevice(ctx context.Context, ownerID, deviceID string) error {
	existing, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return apperr.Unauthorized("user %s does not own device %s", ownerID, deviceID)
	}
	return s.deviceRepo.Delete(ctx, deviceID)
}

func (s *deviceService) GetDevicesByOwner(ctx context.Context, ownerID string) ([]domain.Device, error) {
	devices, err := s.deviceRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	sortDevicesByCreateDate(devices)
	return devices, nil
}

// SearchDevices fetches the available devices for the category and
// filters in memory: substring match on name, description and city,
// then the optional radius cut.
func (s *deviceService) SearchDevices(ctx context.Context, query, category string, center *domain.Location, radiusKM float64) ([]domain.Device, error) {
	devices, err := s.deviceRepo.ListAvailable(ctx, category)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	matched := devices[:0]
	for _, device := range devices {
		if query != "" && !matchesQuery(&device, query) {
			continue
		}
		if center != nil && radiusKM > 0 {
			dist := utils.HaversineKM(center.Latitude, center.Longitude,
				device.Location.Latitude, device.Location.Longitude)
			if dist > radiusKM {
				continue
			}
		}
		matched = append(matched, device)
	}
	sortDevicesByCreateDate(matched)
	return matched, nil
}

func matchesQuery(device *domain.Device, query string) bool {
	return strings.Contains(strings.ToLower(device.Name), query) ||
		strings.Contains(strings.ToLower(device.Description), query) ||
		strings.Contains(strings.ToLower(device.Location.City), query)
}

func (s *deviceService) UploadDeviceImage(ctx context.Context, ownerID, deviceID, filename, contentType string, r io.Reader) (string, error) {
	device, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return "", err
	}
	if device.OwnerID != ownerID {
		return "", apperr.Unauthorized("user %s does not own device %s", ownerID, deviceID)
	}

	key := fmt.Sprintf("devices/%s/%s%s", deviceID, uuid.New().String(), path.Ext(filename))
	url, err := s.objects.Upload(ctx, key, contentType, r)
	if err != nil {
		return "", apperr.Storage("failed to upload device image", err)
	}

	device.ImageURLs = append(device.ImageURLs, url)
	if err := s.deviceRepo.Update(ctx, device); err != nil {
		return "", err
	}
	return url, nil
}

func (s *deviceService) ListCategories() []domain.Category {
	return domain.Categories
}

func sortDevicesByCreateDate(devices []domain.Device) {
	sort.Slice(devices, func(i, j int) bool {
		return devices[i].CreateDate.After(devices[j].CreateDate)
	})
}
