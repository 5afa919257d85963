package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cohorttools/cohort-api/internal/app/models"
	"github.com/cohorttools/cohort-api/internal/app/models/dto"
	"github.com/cohorttools/cohort-api/internal/app/services"
	"github.com/cohorttools/cohort-api/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

func parseStudentID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("studentId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID must be a valid number"))
		return 0, false
	}
	return id, true
}

// CreateStudent handles POST /api/students
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student data"))
		return
	}

	student := req.ToModel()
	if err := c.studentService.CreateStudent(ctx.Request.Context(), student); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to create the student")
		return
	}

	ctx.JSON(http.StatusCreated, student)
}

// GetAllStudents handles GET /api/students. Each student carries its
// cohort document expanded.
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to retrieve students")
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudentsByCohort handles GET /api/students/cohort/:cohortId
func (c *StudentController) GetStudentsByCohort(ctx *gin.Context) {
	cohortID, err := strconv.ParseInt(ctx.Param("cohortId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Cohort ID must be a valid number"))
		return
	}

	students, err := c.studentService.GetStudentsByCohortID(ctx.Request.Context(), cohortID)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to retrieve students")
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudentByID handles GET /api/students/:studentId
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to retrieve student")
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// UpdateStudent handles PUT /api/students/:studentId as a merge-patch:
// only fields present in the body overwrite stored values.
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	var patch models.StudentPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student data"))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to update the student")
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// DeleteStudent handles DELETE /api/students/:studentId. Deleting an
// absent id still answers 204.
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err, "Deleting student failed")
		return
	}

	ctx.Status(http.StatusNoContent)
}
