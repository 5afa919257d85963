package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cohorttools/cohort-api/internal/app/models/dto"
	"github.com/cohorttools/cohort-api/internal/pkg/auth"
)

// Context keys set by RequireToken for downstream handlers
const (
	ContextUserIDKey = "userID"
	ContextEmailKey  = "email"
)

// AuthMiddleware guards routes behind a valid bearer token
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// RequireToken validates the Authorization header and attaches the decoded
// identity to the request context. A missing header halts with 401
// "No token provided"; any verification failure halts with 401
// "Invalid token".
func (m *AuthMiddleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("No token provided"))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid token"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid token"))
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextEmailKey, claims.Email)

		c.Next()
	}
}
