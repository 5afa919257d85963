package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cohorttools/cohort-api/internal/app/models/dto"
	"github.com/cohorttools/cohort-api/internal/app/services"
	"github.com/cohorttools/cohort-api/internal/middleware"
)

// UserController handles user-related operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetUserByID handles GET /api/users/:id (protected)
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("User ID must be a valid number"))
		return
	}

	user, err := c.userService.GetUserByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error retrieving user")
		return
	}

	ctx.JSON(http.StatusOK, user)
}
