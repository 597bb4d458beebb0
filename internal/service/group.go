package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Vcortez99-hub/essentia/backend/internal/logger"
	"github.com/Vcortez99-hub/essentia/backend/internal/models"
)

// PredictForGroup runs the single-user pipeline for every user matching
// the company/department filter. Users are processed concurrently; each
// user's computation is read-only and independent, so only the final
// ranking needs coordination. A failing user is logged and skipped,
// never aborting the rest.
func (s *moodPredictorService) PredictForGroup(ctx context.Context, filter models.GroupFilter) (*models.GroupResult, error) {
	riskThreshold := filter.RiskThreshold
	if riskThreshold == 0 {
		riskThreshold = DefaultRiskThreshold
	}

	users, err := s.userRepo.ListByFilter(ctx, filter.CompanyID, filter.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var (
		mu        sync.Mutex
		summaries []models.PerUserSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.groupConcurrency)

	for _, user := range users {
		user := user // per-iteration copy; required under the go1.21 language version
		g.Go(func() error {
			result, err := s.PredictMood(gctx, user.ID, DefaultForecastDays)
			if err != nil {
				// Per-user isolation: log and move on
				logger.Ctx(gctx).Warn("group forecast skipped user",
					logger.String("user_id", user.ID),
					logger.Err(err),
				)
				return nil
			}
			if !result.Success {
				logger.Ctx(gctx).Debug("group forecast skipped user with insufficient history",
					logger.String("user_id", user.ID),
					logger.Int("data_points", result.DataPoints),
				)
				return nil
			}

			summary := summarizeForecast(user, result, riskThreshold)

			mu.Lock()
			summaries = append(summaries, summary)
			mu.Unlock()
			return nil
		})
	}

	// Per-user errors are swallowed above, so Wait only flushes the pool
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortGroupSummaries(summaries)

	needingAttention := 0
	for _, summary := range summaries {
		if summary.NeedsAttention {
			needingAttention++
		}
	}

	return &models.GroupResult{
		Success:               true,
		TotalUsers:            len(summaries),
		UsersNeedingAttention: needingAttention,
		Predictions:           summaries,
	}, nil
}

// summarizeForecast condenses one user's forecast into the group row
func summarizeForecast(user models.User, result *models.ForecastResult, riskThreshold float64) models.PerUserSummary {
	var moodSum float64
	highRiskDays := 0
	for _, p := range result.Predictions {
		moodSum += p.PredictedMood
		if p.PredictedMood < riskThreshold {
			highRiskDays++
		}
	}

	avgMood := 0.0
	if len(result.Predictions) > 0 {
		avgMood = moodSum / float64(len(result.Predictions))
	}

	hasHighWarning := false
	for _, w := range result.Warnings {
		if w.Severity == models.SeverityHigh {
			hasHighWarning = true
			break
		}
	}

	return models.PerUserSummary{
		UserID:           user.ID,
		Name:             user.Name,
		AvgPredictedMood: avgMood,
		HighRiskDays:     highRiskDays,
		TrendDirection:   result.Trend.Direction,
		WarningCount:     len(result.Warnings),
		NeedsAttention:   highRiskDays > AttentionHighRiskDays || hasHighWarning,
	}
}

// sortGroupSummaries orders users needing attention first, then by
// ascending predicted mood so the most at-risk people lead the list
func sortGroupSummaries(summaries []models.PerUserSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].NeedsAttention != summaries[j].NeedsAttention {
			return summaries[i].NeedsAttention
		}
		return summaries[i].AvgPredictedMood < summaries[j].AvgPredictedMood
	})
}
