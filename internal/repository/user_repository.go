package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/codedprincesharma/Marketplace-Microservices/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// UsernameOrEmailExists reports whether either identifier is already
	// taken. Email comparison is case-insensitive.
	UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error)

	ListAddresses(ctx context.Context, userID uuid.UUID) ([]domain.Address, error)
	AddAddress(ctx context.Context, address *domain.Address) error
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
}
