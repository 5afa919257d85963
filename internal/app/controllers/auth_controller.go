// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cohorttools/cohort-api/internal/app/models/dto"
	"github.com/cohorttools/cohort-api/internal/app/services"
	"github.com/cohorttools/cohort-api/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Signup handles POST /auth/signup
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid signup payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email and password are required"))
		return
	}

	user, err := c.authService.Signup(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to create user")
		middleware.HandleAPIError(ctx, err, "Error creating user")
		return
	}

	ctx.JSON(http.StatusCreated, dto.SignupResponse{
		Message: "User created successfully",
		User:    user,
	})
}

// Login handles POST /auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email and password are required"))
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error logging in")
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Verify handles GET /auth/verify. It runs behind RequireToken, so the
// decoded identity is already on the context.
func (c *AuthController) Verify(ctx *gin.Context) {
	userID := ctx.GetInt64(middleware.ContextUserIDKey)
	email := ctx.GetString(middleware.ContextEmailKey)

	ctx.JSON(http.StatusOK, dto.VerifyResponse{
		Message: "Token is valid",
		User: dto.VerifyIdentity{
			ID:    userID,
			Email: email,
		},
	})
}
