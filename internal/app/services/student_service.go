package services

import (
	"context"
	"fmt"

	"github.com/cohorttools/cohort-api/internal/app/models"
	"github.com/cohorttools/cohort-api/internal/pkg/apperrors"
)

// StudentStore defines the repository operations the student service needs
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByCohortID(ctx context.Context, cohortID int64) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Update(ctx context.Context, id int64, patch *models.StudentPatch) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

// StudentService handles student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentsByCohortID(ctx context.Context, cohortID int64) ([]*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, patch *models.StudentPatch) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

type studentService struct {
	studentRepo StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore) StudentService {
	return &studentService{
		studentRepo: studentRepo,
	}
}

func validateLanguages(languages []models.Language) error {
	for _, language := range languages {
		if !language.IsValid() {
			return fmt.Errorf("%w: unknown language %q", apperrors.ErrValidationFailed, language)
		}
	}
	return nil
}

// validateStudent checks the closed enum fields and the cohort reference
// before any database operation. The reference is only checked for shape;
// whether the cohort exists is advisory and not enforced.
func (s *studentService) validateStudent(student *models.Student) error {
	if !student.Program.IsValid() {
		return fmt.Errorf("%w: unknown program %q", apperrors.ErrValidationFailed, student.Program)
	}
	if err := validateLanguages(student.Languages); err != nil {
		return err
	}
	if student.CohortID <= 0 {
		return fmt.Errorf("%w: cohortId must be positive", apperrors.ErrValidationFailed)
	}
	return nil
}

// validateStudentPatch checks only the fields present in the patch
func (s *studentService) validateStudentPatch(patch *models.StudentPatch) error {
	if patch.Program != nil && !patch.Program.IsValid() {
		return fmt.Errorf("%w: unknown program %q", apperrors.ErrValidationFailed, *patch.Program)
	}
	if patch.Languages != nil {
		if err := validateLanguages(*patch.Languages); err != nil {
			return err
		}
	}
	if patch.CohortID != nil && *patch.CohortID <= 0 {
		return fmt.Errorf("%w: cohortId must be positive", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateStudent creates a new student
func (s *studentService) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}
	return s.studentRepo.Create(ctx, student)
}

// GetAllStudents retrieves all students with their cohort expanded
func (s *studentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// GetStudentsByCohortID retrieves all students referencing the given cohort
func (s *studentService) GetStudentsByCohortID(ctx context.Context, cohortID int64) ([]*models.Student, error) {
	return s.studentRepo.GetByCohortID(ctx, cohortID)
}

// GetStudentByID retrieves a student by ID with its cohort expanded
func (s *studentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// UpdateStudent merge-patches an existing student and returns the result
func (s *studentService) UpdateStudent(ctx context.Context, id int64, patch *models.StudentPatch) (*models.Student, error) {
	if err := s.validateStudentPatch(patch); err != nil {
		return nil, err
	}
	return s.studentRepo.Update(ctx, id, patch)
}

// DeleteStudent deletes a student by ID, succeeding even if it is absent
func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
