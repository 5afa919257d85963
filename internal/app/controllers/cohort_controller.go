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

// CohortController handles cohort-related operations
type CohortController struct {
	cohortService services.CohortService
}

// NewCohortController creates a new CohortController
func NewCohortController(cohortService services.CohortService) *CohortController {
	return &CohortController{
		cohortService: cohortService,
	}
}

func parseCohortID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("cohortId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Cohort ID must be a valid number"))
		return 0, false
	}
	return id, true
}

// CreateCohort handles POST /api/cohorts
func (c *CohortController) CreateCohort(ctx *gin.Context) {
	var req dto.CreateCohortRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid cohort data"))
		return
	}

	cohort := req.ToModel()
	if err := c.cohortService.CreateCohort(ctx.Request.Context(), cohort); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to create the cohort")
		return
	}

	ctx.JSON(http.StatusCreated, cohort)
}

// GetAllCohorts handles GET /api/cohorts
func (c *CohortController) GetAllCohorts(ctx *gin.Context) {
	cohorts, err := c.cohortService.GetAllCohorts(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to retrieve cohorts")
		return
	}

	ctx.JSON(http.StatusOK, cohorts)
}

// GetCohortByID handles GET /api/cohorts/:cohortId
func (c *CohortController) GetCohortByID(ctx *gin.Context) {
	id, ok := parseCohortID(ctx)
	if !ok {
		return
	}

	cohort, err := c.cohortService.GetCohortByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to retrieve cohort")
		return
	}

	ctx.JSON(http.StatusOK, cohort)
}

// UpdateCohort handles PUT /api/cohorts/:cohortId as a merge-patch:
// only fields present in the body overwrite stored values.
func (c *CohortController) UpdateCohort(ctx *gin.Context) {
	id, ok := parseCohortID(ctx)
	if !ok {
		return
	}

	var patch models.CohortPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid cohort data"))
		return
	}

	cohort, err := c.cohortService.UpdateCohort(ctx.Request.Context(), id, &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to update the cohort")
		return
	}

	ctx.JSON(http.StatusOK, cohort)
}

// DeleteCohort handles DELETE /api/cohorts/:cohortId. Deleting an absent
// id still answers 204.
func (c *CohortController) DeleteCohort(ctx *gin.Context) {
	id, ok := parseCohortID(ctx)
	if !ok {
		return
	}

	if err := c.cohortService.DeleteCohort(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err, "Deleting cohort failed")
		return
	}

	ctx.Status(http.StatusNoContent)
}
