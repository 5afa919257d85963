package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cohorttools/cohort-api/internal/app/models"
	"github.com/cohorttools/cohort-api/internal/pkg/apperrors"
	"github.com/cohorttools/cohort-api/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students.
//
// Every read joins the referenced cohort row and attaches it to the
// student (LEFT JOIN, so a dangling reference still returns the student
// with a nil Cohort). The reference itself is advisory: no foreign key
// backs students.cohort_id.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentSelect = `
	SELECT s.id, s.first_name, s.last_name, s.email, s.phone, s.linkedin_url,
		s.languages, s.program, s.background, s.image, s.cohort_id,
		s.created_at, s.updated_at,
		c.id, c.cohort_slug, c.cohort_name, c.program, c.format, c.campus,
		c.start_date, c.end_date, c.in_progress, c.program_manager,
		c.lead_teacher, c.total_hours, c.created_at, c.updated_at
	FROM students s
	LEFT JOIN cohorts c ON c.id = s.cohort_id`

// scanStudentJoin scans one row of studentSelect, building the embedded
// cohort only when the join matched.
func scanStudentJoin(row pgx.Row) (*models.Student, error) {
	var (
		student   models.Student
		languages []string

		cohortID      *int64
		cohortSlug    *string
		cohortName    *string
		program       *string
		format        *string
		campus        *string
		startDate     *time.Time
		endDate       *time.Time
		inProgress    *bool
		programMgr    *string
		leadTeacher   *string
		totalHours    *int
		cohortCreated *time.Time
		cohortUpdated *time.Time
	)

	err := row.Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.Phone,
		&student.LinkedinURL,
		&languages,
		&student.Program,
		&student.Background,
		&student.Image,
		&student.CohortID,
		&student.CreatedAt,
		&student.UpdatedAt,
		&cohortID,
		&cohortSlug,
		&cohortName,
		&program,
		&format,
		&campus,
		&startDate,
		&endDate,
		&inProgress,
		&programMgr,
		&leadTeacher,
		&totalHours,
		&cohortCreated,
		&cohortUpdated,
	)
	if err != nil {
		return nil, err
	}

	student.Languages = toLanguages(languages)

	if cohortID != nil {
		student.Cohort = &models.Cohort{
			ID:             *cohortID,
			CohortSlug:     *cohortSlug,
			CohortName:     *cohortName,
			Program:        models.Program(*program),
			Format:         models.Format(*format),
			Campus:         models.Campus(*campus),
			StartDate:      *startDate,
			EndDate:        endDate,
			InProgress:     *inProgress,
			ProgramManager: *programMgr,
			LeadTeacher:    *leadTeacher,
			TotalHours:     *totalHours,
			CreatedAt:      *cohortCreated,
			UpdatedAt:      *cohortUpdated,
		}
	}

	return &student, nil
}

func toLanguages(values []string) []models.Language {
	languages := make([]models.Language, 0, len(values))
	for _, v := range values {
		languages = append(languages, models.Language(v))
	}
	return languages
}

func fromLanguages(languages []models.Language) []string {
	values := make([]string, 0, len(languages))
	for _, l := range languages {
		values = append(values, string(l))
	}
	return values
}

// Create inserts a new student and fills in its generated identifier.
// The cohort reference is stored as given; it is not resolved here.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (first_name, last_name, email, phone, linkedin_url,
			languages, program, background, image, cohort_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.FirstName,
		student.LastName,
		student.Email,
		student.Phone,
		student.LinkedinURL,
		fromLanguages(student.Languages),
		student.Program,
		student.Background,
		student.Image,
		student.CohortID,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err, "students_email_key") {
			return apperrors.ErrStudentEmailExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

func (r *StudentRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		student, err := scanStudentJoin(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetAll retrieves all students with their cohort expanded
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	return r.queryMany(ctx, studentSelect+` ORDER BY s.id`)
}

// GetByCohortID retrieves all students referencing the given cohort
func (r *StudentRepository) GetByCohortID(ctx context.Context, cohortID int64) ([]*models.Student, error) {
	return r.queryMany(ctx, studentSelect+` WHERE s.cohort_id = $1 ORDER BY s.id`, cohortID)
}

// GetByID retrieves a student by ID with its cohort expanded
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := scanStudentJoin(r.db.QueryRow(ctx, studentSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// Update applies a merge-patch to a student: only non-nil patch fields
// overwrite stored values. Returns the post-update student with its
// cohort expanded.
func (r *StudentRepository) Update(ctx context.Context, id int64, patch *models.StudentPatch) (*models.Student, error) {
	var languages *[]string
	if patch.Languages != nil {
		converted := fromLanguages(*patch.Languages)
		languages = &converted
	}

	query := `
		UPDATE students SET
			first_name   = COALESCE($2, first_name),
			last_name    = COALESCE($3, last_name),
			email        = COALESCE($4, email),
			phone        = COALESCE($5, phone),
			linkedin_url = COALESCE($6, linkedin_url),
			languages    = COALESCE($7, languages),
			program      = COALESCE($8, program),
			background   = COALESCE($9, background),
			image        = COALESCE($10, image),
			cohort_id    = COALESCE($11, cohort_id),
			updated_at   = now()
		WHERE id = $1
		RETURNING id
	`

	var updatedID int64
	err := r.db.QueryRow(ctx, query, id,
		patch.FirstName,
		patch.LastName,
		patch.Email,
		patch.Phone,
		patch.LinkedinURL,
		languages,
		patch.Program,
		patch.Background,
		patch.Image,
		patch.CohortID,
	).Scan(&updatedID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		if dberrors.IsUniqueViolation(err, "students_email_key") {
			return nil, apperrors.ErrStudentEmailExists
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

// Delete removes a student by ID. Deleting an absent id is not an error.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
