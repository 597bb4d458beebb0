package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Vcortez99-hub/essentia/backend/internal/models"
	"github.com/Vcortez99-hub/essentia/backend/internal/repository"
)

// Summary window in days
const SummaryLookbackDays = 30

type moodAnalyticsService struct {
	entryRepo repository.EntryRepository
}

// NewMoodAnalyticsService creates a new mood analytics service
func NewMoodAnalyticsService(entryRepo repository.EntryRepository) MoodAnalyticsService {
	return &moodAnalyticsService{entryRepo: entryRepo}
}

// GetMoodSummary returns the aggregate statistics behind the dashboard:
// entry totals, rolling mood averages and the dominant sentiment over
// the last 30 days.
func (s *moodAnalyticsService) GetMoodSummary(ctx context.Context, userID string) (*models.MoodSummary, error) {
	since := time.Now().AddDate(0, 0, -SummaryLookbackDays)

	entries, err := s.entryRepo.GetByUserIDSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load diary entries: %w", err)
	}

	points := aggregateDailyHistory(entries)

	weekCutoff := time.Now().AddDate(0, 0, -7)
	var recent []models.DailyMoodPoint
	for _, p := range points {
		if p.Date.After(weekCutoff) {
			recent = append(recent, p)
		}
	}

	sentimentCounts := make(map[string]int)
	for _, e := range entries {
		sentimentCounts[e.Sentiment]++
	}

	return &models.MoodSummary{
		TotalEntries:      len(entries),
		DaysTracked:       len(points),
		AverageMood7Days:  averageMood(recent),
		AverageMood30Days: averageMood(points),
		DominantSentiment: dominantSentiment(sentimentCounts),
	}, nil
}

// dominantSentiment picks the most frequent sentiment label, defaulting
// to neutral when there is nothing to count
func dominantSentiment(counts map[string]int) string {
	dominant := "neutral"
	best := 0
	for _, label := range []string{"positive", "neutral", "negative"} {
		if counts[label] > best {
			best = counts[label]
			dominant = label
		}
	}
	return dominant
}
