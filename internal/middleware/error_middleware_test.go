package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/cohorttools/cohort-api/internal/pkg/apperrors"
)

func runErrorHandler(err error, fallback string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleAPIError(c, err, fallback)
	return w
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"cohort not found", apperrors.ErrCohortNotFound, http.StatusNotFound, `{"error":"Cohort not found"}`},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, `{"error":"Student not found"}`},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, `{"error":"User not found"}`},
		{"slug conflict", apperrors.ErrCohortSlugExists, http.StatusConflict, `{"error":"Cohort slug already in use"}`},
		{"student email conflict", apperrors.ErrStudentEmailExists, http.StatusConflict, `{"error":"Email already in use"}`},
		{"user email conflict", apperrors.ErrEmailAlreadyExists, http.StatusConflict, `{"error":"Email already in use"}`},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, `{"error":"Invalid email or password"}`},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, `{"error":"something broke"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := runErrorHandler(tt.err, "something broke")
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestHandleAPIErrorValidationKeepsDetail(t *testing.T) {
	err := fmt.Errorf("%w: unknown program \"Alchemy\"", apperrors.ErrValidationFailed)
	w := runErrorHandler(err, "fallback")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown program")
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	err := fmt.Errorf("fetch cohort: %w", apperrors.ErrCohortNotFound)
	w := runErrorHandler(err, "fallback")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotFoundHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.NoRoute(NotFoundHandler())

	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Route not found"}`, w.Body.String())
}

func TestRecoveryHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.CustomRecovery(RecoveryHandler()))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}
