package service

import (
	"context"
	"time"

	"tweederent-backend/internal/domain"
	"tweederent-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID, name, phoneNumber string, location domain.Location) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if name != "" {
		user.Name = name
	}
	if phoneNumber != "" {
		user.PhoneNumber = phoneNumber
	}
	if location.City != "" || location.Latitude != 0 || location.Longitude != 0 {
		user.Location = location
	}
	user.UpdateDate = time.Now().UTC()
	return s.userRepo.Update(ctx, user)
}
