package services

import (
	"context"

	"github.com/cohorttools/cohort-api/internal/app/models"
	"github.com/cohorttools/cohort-api/internal/app/repositories"
)

// UserService handles user lookups for the protected user route
type UserService interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

type userService struct {
	userRepo repositories.IUserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repositories.IUserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
