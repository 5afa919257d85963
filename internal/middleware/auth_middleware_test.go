package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cohorttools/cohort-api/internal/app/models"
	"github.com/cohorttools/cohort-api/internal/pkg/auth"
)

func newProtectedRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mw := NewAuthMiddleware(jwtService)
	router.GET("/protected", mw.RequireToken(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":    c.GetInt64(ContextUserIDKey),
			"email": c.GetString(ContextEmailKey),
		})
	})
	return router
}

func newTestJWTService(now func() time.Time) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "cohort-tools.test",
		Now:         now,
	})
}

func doProtected(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireTokenMissingHeader(t *testing.T) {
	router := newProtectedRouter(newTestJWTService(nil))

	w := doProtected(router, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"No token provided"}`, w.Body.String())
}

func TestRequireTokenGarbageToken(t *testing.T) {
	router := newProtectedRouter(newTestJWTService(nil))

	w := doProtected(router, "Bearer not-a-real-token")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
}

func TestRequireTokenExpired(t *testing.T) {
	issued := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	clock := issued
	jwtService := newTestJWTService(func() time.Time { return clock })
	router := newProtectedRouter(jwtService)

	token, err := jwtService.GenerateToken(&models.User{ID: 5, Email: "late@example.com"})
	require.NoError(t, err)

	clock = issued.Add(2 * time.Hour)
	w := doProtected(router, "Bearer "+token)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
}

func TestRequireTokenSetsIdentity(t *testing.T) {
	jwtService := newTestJWTService(nil)
	router := newProtectedRouter(jwtService)

	token, err := jwtService.GenerateToken(&models.User{ID: 5, Email: "ok@example.com"})
	require.NoError(t, err)

	w := doProtected(router, "Bearer "+token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":5,"email":"ok@example.com"}`, w.Body.String())
}
