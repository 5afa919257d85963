package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cohorttools/cohort-api/internal/app/controllers"
	"github.com/cohorttools/cohort-api/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	cohortController *controllers.CohortController,
	studentController *controllers.StudentController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.GET("/verify", authMiddleware.RequireToken(), authController.Verify)
	}

	api := router.Group("/api")

	// --- Student routes (public) ---
	students := api.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/cohort/:cohortId", studentController.GetStudentsByCohort)
		students.GET("/:studentId", studentController.GetStudentByID)
		students.PUT("/:studentId", studentController.UpdateStudent)
		students.DELETE("/:studentId", studentController.DeleteStudent)
	}

	// --- Cohort routes (public) ---
	cohorts := api.Group("/cohorts")
	{
		cohorts.POST("", cohortController.CreateCohort)
		cohorts.GET("", cohortController.GetAllCohorts)
		cohorts.GET("/:cohortId", cohortController.GetCohortByID)
		cohorts.PUT("/:cohortId", cohortController.UpdateCohort)
		cohorts.DELETE("/:cohortId", cohortController.DeleteCohort)
	}

	// --- Protected user route ---
	api.GET("/users/:id", authMiddleware.RequireToken(), userController.GetUserByID)

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Static API documentation page
	router.StaticFile("/docs", "./public/docs.html")

	// Unmatched routes answer a uniform JSON 404
	router.NoRoute(middleware.NotFoundHandler())
}
