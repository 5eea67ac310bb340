package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tweederent-backend/internal/apperr"
	"tweederent-backend/internal/domain"
	"tweederent-backend/internal/logger"
	"tweederent-backend/internal/repository"
	"tweederent-backend/internal/utils"
)

type bookingService struct {
	rentalRepo repository.RentalRepository
	deviceRepo repository.DeviceRepository
	userRepo   repository.UserRepository
	emailSvc   EmailService
}

func NewBookingService(
	rentalRepo repository.RentalRepository,
	deviceRepo repository.DeviceRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		rentalRepo: rentalRepo,
		deviceRepo: deviceRepo,
		userRepo:   userRepo,
		emailSvc:   emailSvc,
	}
}

// CheckAvailability fetches every rental of the device and filters in
// memory; the document store has no compound range queries. A device
// with no rentals at all, including one that does not exist, reports
// available.
func (s *bookingService) CheckAvailability(ctx context.Context, deviceID string, start, end time.Time) (bool, error) {
	start = utils.TruncateToDay(start)
	end = utils.TruncateToDay(end)
	if end.Before(start) {
		return false, apperr.Validation("end date is before start date")
	}

	rentals, err := s.rentalRepo.ListByDevice(ctx, deviceID)
	if err != nil {
		return false, err
	}

	for i := range rentals {
		r := &rentals[i]
		if r.Status.IsBlocking() && r.Overlaps(start, end) {
			return false, nil
		}
	}
	return true, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, renterID, deviceID string, start, end time.Time) (*domain.Rental, error) {
	device, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if device.OwnerID == renterID {
		return nil, apperr.Validation("you cannot rent your own device")
	}

	start = utils.TruncateToDay(start)
	end = utils.TruncateToDay(end)

	available, err := s.CheckAvailability(ctx, deviceID, start, end)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, apperr.Unavailable("device %s is not available from %s to %s",
			deviceID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	totalPrice, err := utils.ComputePrice(device.DailyPrice, start, end)
	if err != nil {
		return nil, apperr.Validation("%v", err)
	}

	now := time.Now().UTC()
	rental := &domain.Rental{
		ID:        uuid.New().String(),
		DeviceID:  deviceID,
		RenterID:  renterID,
		OwnerID:   device.OwnerID,
		StartDate: start,
		EndDate:   end,
		Status:    domain.RentalStatusPending,
		// Price and deposit are frozen here; later device edits must
		// not change an existing rental's obligations.
		TotalPrice:      totalPrice,
		SecurityDeposit: device.SecurityDeposit,
		CreateDate:      now,
		UpdateDate:      now,
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental request created",
		"rental_id", rental.ID, "device_id", deviceID, "renter_id", renterID,
		"total_price", totalPrice)

	// Notify owner, best-effort.
	owner, e1 := s.userRepo.GetByID(ctx, device.OwnerID)
	renter, e2 := s.userRepo.GetByID(ctx, renterID)
	if e1 == nil && e2 == nil {
		_ = s.emailSvc.SendRentalRequestNotification(ctx, owner.Email, renter.Name, device.Name)
	}

	return rental, nil
}
