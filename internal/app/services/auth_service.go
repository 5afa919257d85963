package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cohorttools/cohort-api/internal/app/models"
	"github.com/cohorttools/cohort-api/internal/app/repositories"
	"github.com/cohorttools/cohort-api/internal/pkg/apperrors"
	"github.com/cohorttools/cohort-api/internal/pkg/auth"
)

// AuthService handles signup, login and token issuance
type AuthService interface {
	Signup(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Signup hashes the password and stores a new user. The plaintext is
// never persisted.
func (s *authService) Signup(ctx context.Context, email, password string) (*models.User, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("password hashing error: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Int64("userID", user.ID).Msg("User created")
	return user, nil
}

// Login authenticates a user and returns a signed token. An unknown
// email and a wrong password produce the same error so callers cannot
// tell them apart.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", fmt.Errorf("token generation error: %w", err)
	}

	return token, nil
}
