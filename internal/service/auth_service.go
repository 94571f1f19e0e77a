package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codedprincesharma/Marketplace-Microservices/internal/domain"
	"github.com/codedprincesharma/Marketplace-Microservices/internal/repository"
	"github.com/codedprincesharma/Marketplace-Microservices/pkg/email"
	"github.com/codedprincesharma/Marketplace-Microservices/pkg/hash"
	"github.com/codedprincesharma/Marketplace-Microservices/pkg/jwt"
)

// Custom errors
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// TokenBlacklist is the revocation store contract. Satisfied by
// pkg/blacklist.TokenBlacklist.
type TokenBlacklist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type AuthService struct {
	userRepo       repository.UserRepository
	tokenService   *jwt.TokenService
	tokenBlacklist TokenBlacklist
	emailService   email.EmailService // nil when email is disabled
}

type FullNameRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

type RegisterRequest struct {
	Username string          `json:"username" validate:"required,min=3,max=30"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8,password"`
	FullName FullNameRequest `json:"fullName" validate:"required"`
	Role     string          `json:"role" validate:"omitempty,oneof=user seller"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Username string `json:"username" validate:"omitempty,min=3,max=30"`
	Password string `json:"password" validate:"required,min=8"`
}

// AuthResult carries the issued session token alongside the profile so the
// handler can set the cookie.
type AuthResult struct {
	Profile   *domain.Profile
	Token     string
	ExpiresAt time.Time
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokenService *jwt.TokenService,
	tokenBlacklist TokenBlacklist,
	emailService email.EmailService,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		tokenService:   tokenService,
		tokenBlacklist: tokenBlacklist,
		emailService:   emailService,
	}
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	// Email is case-folded at the boundary; every later lookup relies on it.
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.UsernameOrEmailExists(ctx, req.Username, emailAddr)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := domain.RoleUser
	if req.Role != "" {
		role = domain.Role(req.Role)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        emailAddr,
		PasswordHash: passwordHash,
		FirstName:    req.FullName.FirstName,
		LastName:     req.FullName.LastName,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokenService.Issue(user)
	if err != nil {
		return nil, err
	}

	if s.emailService != nil {
		// Non-fatal: the account exists whether or not the email lands.
		if err := s.emailService.SendWelcomeEmail(ctx, user.Email, user.FirstName); err != nil {
			log.Printf("Failed to send welcome email: %v", err)
		}
	}

	return &AuthResult{
		Profile:   user.Profile(nil),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Login authenticates by email or username. Unknown identifier and wrong
// password fail identically so callers cannot probe for accounts.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	var (
		user *domain.User
		err  error
	)

	switch {
	case req.Email != "":
		user, err = s.userRepo.GetByEmail(ctx, req.Email)
	case req.Username != "":
		user, err = s.userRepo.GetByUsername(ctx, req.Username)
	default:
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	valid, err := hash.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenService.Issue(user)
	if err != nil {
		return nil, err
	}

	addresses, err := s.userRepo.ListAddresses(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Profile:   user.Profile(addresses),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout revokes the given token. A missing token is not an error: logging
// out without a session is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	// TTL matches the maximum token lifetime, so the entry cannot expire
	// before the token it revokes does.
	return s.tokenBlacklist.Revoke(ctx, token, s.tokenService.Expiry())
}
