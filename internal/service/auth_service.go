package service

import (
	"context"
	"errors"
	"fmt"

	"recipe-auth/internal/logging"
	"recipe-auth/internal/models"
	"recipe-auth/internal/repository"
)

var (
	ErrEmailInUse         = errors.New("email is already in use")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const msgRegistered = "User registered successfully!"

// AuthService defines the interface for signup and signin business logic
type AuthService interface {
	Register(ctx context.Context, req *models.SignupRequest) (*models.MessageResponse, error)
	Authenticate(ctx context.Context, req *models.SigninRequest) (*models.UserInfoResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	log      logging.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, hasher PasswordHasher, log logging.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		log:      log.With("component", "auth_service"),
	}
}

// Register creates a new user account
func (s *authService) Register(ctx context.Context, req *models.SignupRequest) (*models.MessageResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailInUse
	}

	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, req.Name, req.Email, hashedPassword)
	if errors.Is(err, repository.ErrEmailTaken) {
		// lost the race against a concurrent signup for the same email
		return nil, ErrEmailInUse
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)

	return &models.MessageResponse{Message: msgRegistered}, nil
}

// Authenticate verifies credentials and returns the user's public profile.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *authService) Authenticate(ctx context.Context, req *models.SigninRequest) (*models.UserInfoResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			s.log.Warn(ctx, "stored password hash is unusable", "user_id", user.ID, "error", err)
		}
		return nil, ErrInvalidCredentials
	}

	return &models.UserInfoResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
