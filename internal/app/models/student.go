package models

import (
	"time"
)

// DefaultStudentImage is the placeholder picture applied when none is given
const DefaultStudentImage = "https://i.imgur.com/r8bo8u7.png"

// Student defines the student model based on the 'students' table.
// CohortID is an advisory reference: it is not backed by a foreign key,
// so deleting a cohort neither cascades nor blocks.
type Student struct {
	ID          int64      `json:"id" db:"id"`
	FirstName   string     `json:"firstName" db:"first_name"`
	LastName    string     `json:"lastName" db:"last_name"`
	Email       string     `json:"email" db:"email"` // Unique across all students
	Phone       string     `json:"phone" db:"phone"`
	LinkedinURL string     `json:"linkedinUrl" db:"linkedin_url"`
	Languages   []Language `json:"languages" db:"languages"`
	Program     Program    `json:"program" db:"program"`
	Background  string     `json:"background" db:"background"`
	Image       string     `json:"image" db:"image"`
	CohortID    int64      `json:"cohortId" db:"cohort_id"`
	Cohort      *Cohort    `json:"cohort,omitempty"` // Relation, filled by repository reads
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// StudentPatch carries a merge-patch update for a student. Nil fields are
// left untouched by the update.
type StudentPatch struct {
	FirstName   *string     `json:"firstName"`
	LastName    *string     `json:"lastName"`
	Email       *string     `json:"email"`
	Phone       *string     `json:"phone"`
	LinkedinURL *string     `json:"linkedinUrl"`
	Languages   *[]Language `json:"languages"`
	Program     *Program    `json:"program"`
	Background  *string     `json:"background"`
	Image       *string     `json:"image"`
	CohortID    *int64      `json:"cohortId"`
}
