package service

import (
	"context"
	"sort"

	"tweederent-backend/internal/apperr"
	"tweederent-backend/internal/domain"
	"tweederent-backend/internal/logger"
	"tweederent-backend/internal/repository"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	deviceRepo repository.DeviceRepository
	userRepo   repository.UserRepository
	emailSvc   EmailService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	deviceRepo repository.DeviceRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		deviceRepo: deviceRepo,
		userRepo:   userRepo,
		emailSvc:   emailSvc,
	}
}

// transition performs one owner-triggered status change. The write is
// targeted at status and update timestamp only; dates and money fields
// stay untouched once a rental exists.
func (s *rentalService) transition(ctx context.Context, ownerID, rentalID string, to domain.RentalStatus) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.OwnerID != ownerID {
		return nil, apperr.Unauthorized("user %s is not the owner of rental %s", ownerID, rentalID)
	}
	if !rental.Status.CanTransitionTo(to) {
		return nil, apperr.InvalidTransition("rental %s cannot move from %s to %s", rentalID, rental.Status, to)
	}

	if err := s.rentalRepo.UpdateStatus(ctx, rentalID, to); err != nil {
		return nil, err
	}
	logger.Info("Rental status changed", "rental_id", rentalID, "from", rental.Status, "to", to)
	rental.Status = to
	return rental, nil
}

func (s *rentalService) ApproveRental(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error) {
	rental, err := s.transition(ctx, ownerID, rentalID, domain.RentalStatusApproved)
	if err != nil {
		return nil, err
	}
	s.notifyRenter(ctx, rental, s.emailSvc.SendRentalApprovalNotification)
	return rental, nil
}

func (s *rentalService) DenyRental(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error) {
	rental, err := s.transition(ctx, ownerID, rentalID, domain.RentalStatusCancelled)
	if err != nil {
		return nil, err
	}
	s.notifyRenter(ctx, rental, s.emailSvc.SendRentalDenialNotification)
	return rental, nil
}

func (s *rentalService) StartRental(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error) {
	return s.transition(ctx, ownerID, rentalID, domain.RentalStatusActive)
}

func (s *rentalService) CompleteRental(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error) {
	rental, err := s.transition(ctx, ownerID, rentalID, domain.RentalStatusCompleted)
	if err != nil {
		return nil, err
	}
	s.notifyRenter(ctx, rental, s.emailSvc.SendRentalCompletionNotification)
	return rental, nil
}

// notifyRenter emails the renter about a status change, best-effort.
func (s *rentalService) notifyRenter(ctx context.Context, rental *domain.Rental, send func(context.Context, string, string) error) {
	renter, err := s.userRepo.GetByID(ctx, rental.RenterID)
	if err != nil {
		return
	}
	deviceName := rental.DeviceID
	if device, err := s.deviceRepo.GetByID(ctx, rental.DeviceID); err == nil {
		deviceName = device.Name
	}
	_ = send(ctx, renter.Email, deviceName)
}

func (s *rentalService) GetRental(ctx context.Context, userID, rentalID string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.RenterID != userID && rental.OwnerID != userID {
		return nil, apperr.Unauthorized("user %s is not a party to rental %s", userID, rentalID)
	}
	return rental, nil
}

func (s *rentalService) GetUserRentals(ctx context.Context, userID string) ([]domain.Rental, error) {
	rentals, err := s.rentalRepo.ListByRenter(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortRentalsByCreateDate(rentals)
	return rentals, nil
}

func (s *rentalService) GetReceivedRentalRequests(ctx context.Context, ownerID string) ([]domain.Rental, error) {
	return s.listOwned(ctx, ownerID, domain.RentalStatusPending)
}

func (s *rentalService) GetActiveRentals(ctx context.Context, ownerID string) ([]domain.Rental, error) {
	return s.listOwned(ctx, ownerID, domain.RentalStatusApproved, domain.RentalStatusActive)
}

func (s *rentalService) listOwned(ctx context.Context, ownerID string, statuses ...domain.RentalStatus) ([]domain.Rental, error) {
	rentals, err := s.rentalRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	filtered := rentals[:0]
	for _, rental := range rentals {
		for _, status := range statuses {
			if rental.Status == status {
				filtered = append(filtered, rental)
				break
			}
		}
	}
	sortRentalsByCreateDate(filtered)
	return filtered, nil
}

func sortRentalsByCreateDate(rentals []domain.Rental) {
	sort.Slice(rentals, func(i, j int) bool {
		return rentals[i].CreateDate.After(rentals[j].CreateDate)
	})
}
