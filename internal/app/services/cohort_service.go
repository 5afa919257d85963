package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/cohorttools/cohort-api/internal/app/models"
	"github.com/cohorttools/cohort-api/internal/pkg/apperrors"
)

// CohortStore defines the repository operations the cohort service needs
type CohortStore interface {
	Create(ctx context.Context, cohort *models.Cohort) error
	GetAll(ctx context.Context) ([]*models.Cohort, error)
	GetByID(ctx context.Context, id int64) (*models.Cohort, error)
	Update(ctx context.Context, id int64, patch *models.CohortPatch) (*models.Cohort, error)
	Delete(ctx context.Context, id int64) error
}

// CohortService handles cohort-related operations
type CohortService interface {
	CreateCohort(ctx context.Context, cohort *models.Cohort) error
	GetAllCohorts(ctx context.Context) ([]*models.Cohort, error)
	GetCohortByID(ctx context.Context, id int64) (*models.Cohort, error)
	UpdateCohort(ctx context.Context, id int64, patch *models.CohortPatch) (*models.Cohort, error)
	DeleteCohort(ctx context.Context, id int64) error
}

type cohortService struct {
	cohortRepo CohortStore
}

// NewCohortService creates a new cohort service instance
func NewCohortService(cohortRepo CohortStore) CohortService {
	return &cohortService{
		cohortRepo: cohortRepo,
	}
}

// validateCohort checks the closed enum fields and required strings
// before any database operation.
func (s *cohortService) validateCohort(cohort *models.Cohort) error {
	if strings.TrimSpace(cohort.CohortSlug) == "" {
		return fmt.Errorf("%w: cohortSlug cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(cohort.CohortName) == "" {
		return fmt.Errorf("%w: cohortName cannot be empty", apperrors.ErrValidationFailed)
	}
	if !cohort.Program.IsValid() {
		return fmt.Errorf("%w: unknown program %q", apperrors.ErrValidationFailed, cohort.Program)
	}
	if !cohort.Format.IsValid() {
		return fmt.Errorf("%w: unknown format %q", apperrors.ErrValidationFailed, cohort.Format)
	}
	if !cohort.Campus.IsValid() {
		return fmt.Errorf("%w: unknown campus %q", apperrors.ErrValidationFailed, cohort.Campus)
	}
	return nil
}

// validateCohortPatch checks only the fields present in the patch
func (s *cohortService) validateCohortPatch(patch *models.CohortPatch) error {
	if patch.CohortSlug != nil && strings.TrimSpace(*patch.CohortSlug) == "" {
		return fmt.Errorf("%w: cohortSlug cannot be empty", apperrors.ErrValidationFailed)
	}
	if patch.CohortName != nil && strings.TrimSpace(*patch.CohortName) == "" {
		return fmt.Errorf("%w: cohortName cannot be empty", apperrors.ErrValidationFailed)
	}
	if patch.Program != nil && !patch.Program.IsValid() {
		return fmt.Errorf("%w: unknown program %q", apperrors.ErrValidationFailed, *patch.Program)
	}
	if patch.Format != nil && !patch.Format.IsValid() {
		return fmt.Errorf("%w: unknown format %q", apperrors.ErrValidationFailed, *patch.Format)
	}
	if patch.Campus != nil && !patch.Campus.IsValid() {
		return fmt.Errorf("%w: unknown campus %q", apperrors.ErrValidationFailed, *patch.Campus)
	}
	return nil
}

// CreateCohort creates a new cohort
func (s *cohortService) CreateCohort(ctx context.Context, cohort *models.Cohort) error {
	if err := s.validateCohort(cohort); err != nil {
		return err
	}
	return s.cohortRepo.Create(ctx, cohort)
}

// GetAllCohorts retrieves all cohorts
func (s *cohortService) GetAllCohorts(ctx context.Context) ([]*models.Cohort, error) {
	return s.cohortRepo.GetAll(ctx)
}

// GetCohortByID retrieves a cohort by ID
func (s *cohortService) GetCohortByID(ctx context.Context, id int64) (*models.Cohort, error) {
	return s.cohortRepo.GetByID(ctx, id)
}

// UpdateCohort merge-patches an existing cohort and returns the result
func (s *cohortService) UpdateCohort(ctx context.Context, id int64, patch *models.CohortPatch) (*models.Cohort, error) {
	if err := s.validateCohortPatch(patch); err != nil {
		return nil, err
	}
	return s.cohortRepo.Update(ctx, id, patch)
}

// DeleteCohort deletes a cohort by ID, succeeding even if it is absent
func (s *cohortService) DeleteCohort(ctx context.Context, id int64) error {
	return s.cohortRepo.Delete(ctx, id)
}
