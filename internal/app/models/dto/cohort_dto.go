package dto

import (
	"time"

	"github.com/cohorttools/cohort-api/internal/app/models"
)

// CreateCohortRequest represents the payload for creating a cohort
type CreateCohortRequest struct {
	CohortSlug     string         `json:"cohortSlug" binding:"required"`
	CohortName     string         `json:"cohortName" binding:"required"`
	Program        models.Program `json:"program" binding:"required"`
	Format         models.Format  `json:"format" binding:"required"`
	Campus         models.Campus  `json:"campus" binding:"required"`
	StartDate      *time.Time     `json:"startDate"`
	EndDate        *time.Time     `json:"endDate"`
	InProgress     bool           `json:"inProgress"`
	ProgramManager string         `json:"programManager"`
	LeadTeacher    string         `json:"leadTeacher"`
	TotalHours     *int           `json:"totalHours"`
}

// ToModel converts the request into a Cohort, applying defaults for
// omitted startDate and totalHours.
func (r *CreateCohortRequest) ToModel() *models.Cohort {
	cohort := &models.Cohort{
		CohortSlug:     r.CohortSlug,
		CohortName:     r.CohortName,
		Program:        r.Program,
		Format:         r.Format,
		Campus:         r.Campus,
		EndDate:        r.EndDate,
		InProgress:     r.InProgress,
		ProgramManager: r.ProgramManager,
		LeadTeacher:    r.LeadTeacher,
		TotalHours:     models.DefaultTotalHours,
	}
	if r.StartDate != nil {
		cohort.StartDate = *r.StartDate
	} else {
		cohort.StartDate = time.Now()
	}
	if r.TotalHours != nil {
		cohort.TotalHours = *r.TotalHours
	}
	return cohort
}
