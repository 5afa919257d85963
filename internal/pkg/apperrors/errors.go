package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Cohort errors
var (
	ErrCohortNotFound   = errors.New("cohort not found")
	ErrCohortSlugExists = errors.New("cohort with this slug already exists")
)

// Student errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrStudentEmailExists = errors.New("student with this email already exists")
)
