package service

import (
	"context"

	"github.com/Vcortez99-hub/essentia/backend/internal/models"
)

// MoodPredictorService defines the interface for mood forecasting
type MoodPredictorService interface {
	// PredictMood forecasts a user's mood daysAhead days into the future.
	// Too little history yields a ForecastResult with Success=false, not
	// an error; errors are reserved for storage failures.
	PredictMood(ctx context.Context, userID string, daysAhead int) (*models.ForecastResult, error)

	// PredictForGroup runs the forecast pipeline for every user matching
	// the filter and ranks them by risk. One user's failure never aborts
	// the rest.
	PredictForGroup(ctx context.Context, filter models.GroupFilter) (*models.GroupResult, error)

	// GetPersonalizedRecommendations combines forecast-driven and
	// current-mood recommendations, deduplicated and capped.
	GetPersonalizedRecommendations(ctx context.Context, userID string) (*models.RecommendationsResponse, error)
}

// MoodAnalyticsService defines the interface for mood summary statistics
type MoodAnalyticsService interface {
	GetMoodSummary(ctx context.Context, userID string) (*models.MoodSummary, error)
}
