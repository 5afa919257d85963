package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cohorttools/cohort-api/internal/app/models"
	"github.com/cohorttools/cohort-api/internal/pkg/apperrors"
	"github.com/cohorttools/cohort-api/internal/pkg/dberrors"
)

// CohortRepository handles database operations for cohorts
type CohortRepository struct {
	db *pgxpool.Pool
}

// NewCohortRepository creates a new cohort repository
func NewCohortRepository(db *pgxpool.Pool) *CohortRepository {
	return &CohortRepository{
		db: db,
	}
}

const cohortColumns = `id, cohort_slug, cohort_name, program, format, campus,
		start_date, end_date, in_progress, program_manager, lead_teacher,
		total_hours, created_at, updated_at`

func scanCohort(row pgx.Row) (*models.Cohort, error) {
	var cohort models.Cohort
	err := row.Scan(
		&cohort.ID,
		&cohort.CohortSlug,
		&cohort.CohortName,
		&cohort.Program,
		&cohort.Format,
		&cohort.Campus,
		&cohort.StartDate,
		&cohort.EndDate,
		&cohort.InProgress,
		&cohort.ProgramManager,
		&cohort.LeadTeacher,
		&cohort.TotalHours,
		&cohort.CreatedAt,
		&cohort.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cohort, nil
}

// Create inserts a new cohort and fills in its generated identifier.
func (r *CohortRepository) Create(ctx context.Context, cohort *models.Cohort) error {
	query := `
		INSERT INTO cohorts (cohort_slug, cohort_name, program, format, campus,
			start_date, end_date, in_progress, program_manager, lead_teacher, total_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		cohort.CohortSlug,
		cohort.CohortName,
		cohort.Program,
		cohort.Format,
		cohort.Campus,
		cohort.StartDate,
		cohort.EndDate,
		cohort.InProgress,
		cohort.ProgramManager,
		cohort.LeadTeacher,
		cohort.TotalHours,
	).Scan(&cohort.ID, &cohort.CreatedAt, &cohort.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err, "cohorts_cohort_slug_key") {
			return apperrors.ErrCohortSlugExists
		}
		return fmt.Errorf("error creating cohort: %w", err)
	}

	return nil
}

// GetAll retrieves all cohorts
func (r *CohortRepository) GetAll(ctx context.Context) ([]*models.Cohort, error) {
	query := `SELECT ` + cohortColumns + ` FROM cohorts ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cohorts := make([]*models.Cohort, 0)
	for rows.Next() {
		cohort, err := scanCohort(rows)
		if err != nil {
			return nil, err
		}
		cohorts = append(cohorts, cohort)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cohorts, nil
}

// GetByID retrieves a cohort by ID
func (r *CohortRepository) GetByID(ctx context.Context, id int64) (*models.Cohort, error) {
	query := `SELECT ` + cohortColumns + ` FROM cohorts WHERE id = $1`

	cohort, err := scanCohort(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCohortNotFound
		}
		return nil, fmt.Errorf("error retrieving cohort: %w", err)
	}

	return cohort, nil
}

// Update applies a merge-patch to a cohort: only non-nil patch fields
// overwrite stored values. Returns the post-update cohort.
func (r *CohortRepository) Update(ctx context.Context, id int64, patch *models.CohortPatch) (*models.Cohort, error) {
	query := `
		UPDATE cohorts SET
			cohort_slug     = COALESCE($2, cohort_slug),
			cohort_name     = COALESCE($3, cohort_name),
			program         = COALESCE($4, program),
			format          = COALESCE($5, format),
			campus          = COALESCE($6, campus),
			start_date      = COALESCE($7, start_date),
			end_date        = COALESCE($8, end_date),
			in_progress     = COALESCE($9, in_progress),
			program_manager = COALESCE($10, program_manager),
			lead_teacher    = COALESCE($11, lead_teacher),
			total_hours     = COALESCE($12, total_hours),
			updated_at      = now()
		WHERE id = $1
		RETURNING ` + cohortColumns

	cohort, err := scanCohort(r.db.QueryRow(ctx, query, id,
		patch.CohortSlug,
		patch.CohortName,
		patch.Program,
		patch.Format,
		patch.Campus,
		patch.StartDate,
		patch.EndDate,
		patch.InProgress,
		patch.ProgramManager,
		patch.LeadTeacher,
		patch.TotalHours,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCohortNotFound
		}
		if dberrors.IsUniqueViolation(err, "cohorts_cohort_slug_key") {
			return nil, apperrors.ErrCohortSlugExists
		}
		return nil, fmt.Errorf("error updating cohort: %w", err)
	}

	return cohort, nil
}

// Delete removes a cohort by ID. Deleting an absent id is not an error.
func (r *CohortRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cohorts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting cohort: %w", err)
	}
	return nil
}
