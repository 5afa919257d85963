package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cohorttools/cohort-api/internal/app/models/dto"
	"github.com/cohorttools/cohort-api/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses: 404 for missing
// records, 409 for uniqueness violations, 400 for validation failures and
// 401 for bad credentials. Anything else becomes a 500 carrying the
// route's fallback message.
func HandleAPIError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrCohortNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Cohort not found"))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Student not found"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("User not found"))
	case errors.Is(err, apperrors.ErrCohortSlugExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Cohort slug already in use"))
	case errors.Is(err, apperrors.ErrStudentEmailExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Email already in use"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Email already in use"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid email or password"))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(fallback))
	}
}

// NotFoundHandler answers unmatched routes with a uniform JSON body
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Route not found"))
	}
}

// RecoveryHandler converts handler panics into a uniform JSON 500
func RecoveryHandler() gin.RecoveryFunc {
	return func(c *gin.Context, recovered interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
