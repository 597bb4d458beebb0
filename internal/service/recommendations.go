package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Vcortez99-hub/essentia/backend/internal/models"
)

// GetPersonalizedRecommendations layers consumer-level policy on top of
// the forecast pipeline: current-mood threshold recommendations and a
// worst-weekday nudge are injected, then the list is deduplicated by
// action (first occurrence wins) and capped.
func (s *moodPredictorService) GetPersonalizedRecommendations(ctx context.Context, userID string) (*models.RecommendationsResponse, error) {
	history, err := s.getMoodHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood history: %w", err)
	}

	currentMood := NeutralMood
	if len(history) > 0 {
		currentMood = history[0].AverageMood
	}

	recommendations := make([]models.Recommendation, 0)

	result := forecastFromHistory(userID, history, DefaultForecastDays)
	if result.Success {
		recommendations = append(recommendations, result.Recommendations...)
	}

	recommendations = append(recommendations, moodThresholdRecommendations(currentMood)...)

	if result.Success && result.WeekdayPatterns.WorstDay == weekdayNames[time.Now().Weekday()] {
		recommendations = append(recommendations, models.Recommendation{
			Priority:    models.PriorityMedium,
			Action:      "difficult_day_support",
			Title:       "Today tends to be your hardest day",
			Description: "Schedule something kind to yourself on " + result.WeekdayPatterns.WorstDay,
			Icon:        "calendar",
		})
	}

	return &models.RecommendationsResponse{
		CurrentMood:     currentMood,
		Recommendations: dedupeRecommendations(recommendations, MaxRecommendations),
	}, nil
}

// moodThresholdRecommendations maps the current mood onto baseline
// suggestions, independent of any forecast
func moodThresholdRecommendations(currentMood float64) []models.Recommendation {
	switch {
	case currentMood <= 2:
		return []models.Recommendation{
			{
				Priority:    models.PriorityHigh,
				Action:      "urgent_support",
				Title:       "Talk to someone today",
				Description: "Your recent mood is very low; reach out to HR or a professional",
				Icon:        "phone",
			},
			{
				Priority:    models.PriorityHigh,
				Action:      "breathing_exercise",
				Title:       "Guided breathing",
				Description: "A five-minute breathing exercise can ease acute stress",
				Icon:        "wind",
			},
		}
	case currentMood <= 3:
		return []models.Recommendation{
			{
				Priority:    models.PriorityMedium,
				Action:      "meditation",
				Title:       "Short meditation",
				Description: "Ten minutes of meditation can lift a flat mood",
				Icon:        "lotus",
			},
			{
				Priority:    models.PriorityMedium,
				Action:      "journaling",
				Title:       "Write it down",
				Description: "Journaling helps untangle what is weighing on you",
				Icon:        "pen",
			},
		}
	default:
		return []models.Recommendation{
			{
				Priority:    models.PriorityLow,
				Action:      "maintenance",
				Title:       "Keep your routine",
				Description: "Your mood is in a good place; stick with what works",
				Icon:        "check",
			},
		}
	}
}

// dedupeRecommendations drops repeated actions (first occurrence wins)
// and caps the result
func dedupeRecommendations(recommendations []models.Recommendation, limit int) []models.Recommendation {
	seen := make(map[string]bool)
	result := make([]models.Recommendation, 0, len(recommendations))

	for _, r := range recommendations {
		if seen[r.Action] {
			continue
		}
		seen[r.Action] = true
		result = append(result, r)
		if len(result) == limit {
			break
		}
	}

	return result
}
