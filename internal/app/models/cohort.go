package models

import (
	"time"
)

// DefaultTotalHours is the course length applied when none is given
const DefaultTotalHours = 360

// Cohort defines the cohort model based on the 'cohorts' table
type Cohort struct {
	ID             int64      `json:"id" db:"id"`
	CohortSlug     string     `json:"cohortSlug" db:"cohort_slug"` // Unique across all cohorts
	CohortName     string     `json:"cohortName" db:"cohort_name"`
	Program        Program    `json:"program" db:"program"`
	Format         Format     `json:"format" db:"format"`
	Campus         Campus     `json:"campus" db:"campus"`
	StartDate      time.Time  `json:"startDate" db:"start_date"`
	EndDate        *time.Time `json:"endDate,omitempty" db:"end_date"` // Nullable
	InProgress     bool       `json:"inProgress" db:"in_progress"`
	ProgramManager string     `json:"programManager" db:"program_manager"`
	LeadTeacher    string     `json:"leadTeacher" db:"lead_teacher"`
	TotalHours     int        `json:"totalHours" db:"total_hours"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

// CohortPatch carries a merge-patch update for a cohort. Nil fields are
// left untouched by the update.
type CohortPatch struct {
	CohortSlug     *string    `json:"cohortSlug"`
	CohortName     *string    `json:"cohortName"`
	Program        *Program   `json:"program"`
	Format         *Format    `json:"format"`
	Campus         *Campus    `json:"campus"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	InProgress     *bool      `json:"inProgress"`
	ProgramManager *string    `json:"programManager"`
	LeadTeacher    *string    `json:"leadTeacher"`
	TotalHours     *int       `json:"totalHours"`
}
