package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/codedprincesharma/Marketplace-Microservices/internal/domain"
	"github.com/codedprincesharma/Marketplace-Microservices/internal/repository"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrAddressNotFound = errors.New("address not found")
)

type UserService struct {
	userRepo repository.UserRepository
}

type AddressRequest struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Country string `json:"country" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required,zipcode"`
	Phone   string `json:"phone" validate:"omitempty,phone"`
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetProfile returns the public profile for a verified identity. The record
// can be gone even though the token still verifies.
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	addresses, err := s.userRepo.ListAddresses(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user.Profile(addresses), nil
}

func (s *UserService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]domain.Address, error) {
	return s.userRepo.ListAddresses(ctx, userID)
}

func (s *UserService) AddAddress(ctx context.Context, userID uuid.UUID, req AddressRequest) (*domain.Address, error) {
	address := &domain.Address{
		ID:        uuid.New(),
		UserID:    userID,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Country:   req.Country,
		ZipCode:   req.ZipCode,
		CreatedAt: time.Now(),
	}
	if req.Phone != "" {
		address.Phone = &req.Phone
	}

	if err := s.userRepo.AddAddress(ctx, address); err != nil {
		return nil, err
	}

	return address, nil
}

func (s *UserService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	err := s.userRepo.DeleteAddress(ctx, userID, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAddressNotFound
		}
		return err
	}

	return nil
}
