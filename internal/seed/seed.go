package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/cohorttools/cohort-api/internal/app/models"
	appRepos "github.com/cohorttools/cohort-api/internal/app/repositories"
	"github.com/cohorttools/cohort-api/internal/pkg/apperrors"
)

// CreateDefaultData creates a handful of default cohorts so a fresh
// database has something to attach students to. Existing cohorts are
// left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	cohortRepo := appRepos.NewCohortRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default cohorts...")
	var finalErr error

	defaults := defaultCohorts()
	for i := range defaults {
		err := cohortRepo.Create(ctx, &defaults[i])
		if err != nil && !errors.Is(err, apperrors.ErrCohortSlugExists) {
			lgr.Error().Err(err).Str("slug", defaults[i].CohortSlug).Msg("Error creating default cohort")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

func defaultCohorts() []appModels.Cohort {
	start := time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 6, 0)

	return []appModels.Cohort{
		{
			CohortSlug:     "ft-wd-madrid-2026",
			CohortName:     "FT Web Dev Madrid 2026",
			Program:        appModels.ProgramWebDev,
			Format:         appModels.FormatFullTime,
			Campus:         appModels.CampusMadrid,
			StartDate:      start,
			EndDate:        &end,
			InProgress:     false,
			ProgramManager: "Sara Pérez",
			LeadTeacher:    "Marco Ruiz",
			TotalHours:     appModels.DefaultTotalHours,
		},
		{
			CohortSlug:     "pt-da-remote-2026",
			CohortName:     "PT Data Analytics Remote 2026",
			Program:        appModels.ProgramDataAnalytics,
			Format:         appModels.FormatPartTime,
			Campus:         appModels.CampusRemote,
			StartDate:      start,
			EndDate:        &end,
			InProgress:     false,
			ProgramManager: "Ines Costa",
			LeadTeacher:    "Tom Becker",
			TotalHours:     appModels.DefaultTotalHours,
		},
		{
			CohortSlug:     "ft-cy-berlin-2026",
			CohortName:     "FT Cybersecurity Berlin 2026",
			Program:        appModels.ProgramCybersecurity,
			Format:         appModels.FormatFullTime,
			Campus:         appModels.CampusBerlin,
			StartDate:      start,
			EndDate:        &end,
			InProgress:     false,
			ProgramManager: "Leon Fischer",
			LeadTeacher:    "Ana Duarte",
			TotalHours:     appModels.DefaultTotalHours,
		},
	}
}
