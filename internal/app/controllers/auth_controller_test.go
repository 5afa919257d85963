package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cohorttools/cohort-api/internal/app/models"
	"github.com/cohorttools/cohort-api/internal/middleware"
	"github.com/cohorttools/cohort-api/internal/pkg/apperrors"
)

// stubAuthService returns canned results for controller tests
type stubAuthService struct {
	signupUser *models.User
	signupErr  error
	loginToken string
	loginErr   error
}

func (s *stubAuthService) Signup(ctx context.Context, email, password string) (*models.User, error) {
	return s.signupUser, s.signupErr
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginToken, s.loginErr
}

func newAuthTestRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewAuthController(svc, zerolog.Nop())
	router.POST("/auth/signup", ctrl.Signup)
	router.POST("/auth/login", ctrl.Login)
	router.GET("/auth/verify", func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, int64(42))
		c.Set(middleware.ContextEmailKey, "student@example.com")
	}, ctrl.Verify)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignupCreated(t *testing.T) {
	svc := &stubAuthService{signupUser: &models.User{ID: 7, Email: "new@example.com"}}
	router := newAuthTestRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/auth/signup", gin.H{
		"email":    "new@example.com",
		"password": "pass1234",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User created successfully", resp["message"])

	user := resp["user"].(map[string]interface{})
	assert.Equal(t, "new@example.com", user["email"])
	// The password hash must never appear in the response
	assert.NotContains(t, user, "password")
}

func TestSignupMissingFields(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{})

	w := doJSON(t, router, http.MethodPost, "/auth/signup", gin.H{"email": "only@example.com"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Email and password are required"}`, w.Body.String())
}

func TestSignupDuplicateEmailConflict(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{signupErr: apperrors.ErrEmailAlreadyExists})

	w := doJSON(t, router, http.MethodPost, "/auth/signup", gin.H{
		"email":    "dup@example.com",
		"password": "pass1234",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"Email already in use"}`, w.Body.String())
}

func TestLoginReturnsToken(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{loginToken: "signed.jwt.token"})

	w := doJSON(t, router, http.MethodPost, "/auth/login", gin.H{
		"email":    "user@example.com",
		"password": "pass1234",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"signed.jwt.token"}`, w.Body.String())
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{loginErr: apperrors.ErrInvalidCredentials})

	w := doJSON(t, router, http.MethodPost, "/auth/login", gin.H{
		"email":    "user@example.com",
		"password": "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid email or password"}`, w.Body.String())
}

func TestLoginServiceFailure(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{loginErr: errors.New("db down")})

	w := doJSON(t, router, http.MethodPost, "/auth/login", gin.H{
		"email":    "user@example.com",
		"password": "pass1234",
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Error logging in"}`, w.Body.String())
}

func TestVerifyEchoesIdentity(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{})

	w := doJSON(t, router, http.MethodGet, "/auth/verify", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Token is valid","user":{"id":42,"email":"student@example.com"}}`, w.Body.String())
}
