package dto

import (
	"github.com/cohorttools/cohort-api/internal/app/models"
)

// CreateStudentRequest represents the payload for creating a student
type CreateStudentRequest struct {
	FirstName   string            `json:"firstName" binding:"required"`
	LastName    string            `json:"lastName" binding:"required"`
	Email       string            `json:"email" binding:"required,email"`
	Phone       string            `json:"phone" binding:"required"`
	LinkedinURL string            `json:"linkedinUrl" binding:"omitempty,url"`
	Languages   []models.Language `json:"languages"`
	Program     models.Program    `json:"program" binding:"required"`
	Background  string            `json:"background"`
	Image       string            `json:"image" binding:"omitempty,url"`
	CohortID    int64             `json:"cohortId" binding:"required,min=1"`
}

// ToModel converts the request into a Student, applying the placeholder
// image when none is given.
func (r *CreateStudentRequest) ToModel() *models.Student {
	student := &models.Student{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		LinkedinURL: r.LinkedinURL,
		Languages:   r.Languages,
		Program:     r.Program,
		Background:  r.Background,
		Image:       r.Image,
		CohortID:    r.CohortID,
	}
	if student.Image == "" {
		student.Image = models.DefaultStudentImage
	}
	if student.Languages == nil {
		student.Languages = []models.Language{}
	}
	return student
}
