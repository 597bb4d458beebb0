package service

import (
	"context"
	"sort"
	"time"

	"github.com/Vcortez99-hub/essentia/backend/internal/models"
)

// getMoodHistory loads the user's diary entries for the lookback window
// and aggregates them into one mood point per calendar day, newest first.
// A user with no entries gets an empty series; only storage failures
// return an error.
func (s *moodPredictorService) getMoodHistory(ctx context.Context, userID string) ([]models.DailyMoodPoint, error) {
	since := time.Now().AddDate(0, 0, -HistoryLookbackDays)

	entries, err := s.entryRepo.GetByUserIDSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	return aggregateDailyHistory(entries), nil
}

// aggregateDailyHistory buckets raw entries by calendar day and produces
// the daily series, most recent day first. Days without entries are
// absent from the result, not zero-filled. Entries without an explicit
// mood score count as neutral before averaging.
func aggregateDailyHistory(entries []models.DiaryEntry) []models.DailyMoodPoint {
	type dayBucket struct {
		moodSum  float64
		count    int
		positive int
		negative int
	}

	buckets := make(map[string]*dayBucket)

	for _, entry := range entries {
		dateStr := entry.CreatedAt.Format("2006-01-02")

		bucket, exists := buckets[dateStr]
		if !exists {
			bucket = &dayBucket{}
			buckets[dateStr] = bucket
		}

		mood := NeutralMood
		if entry.MoodScore != nil {
			mood = float64(*entry.MoodScore)
		}
		bucket.moodSum += mood
		bucket.count++

		switch entry.Sentiment {
		case "positive":
			bucket.positive++
		case "negative":
			bucket.negative++
		}
	}

	points := make([]models.DailyMoodPoint, 0, len(buckets))
	for dateStr, bucket := range buckets {
		date, _ := time.Parse("2006-01-02", dateStr)
		points = append(points, models.DailyMoodPoint{
			Date:           date,
			AverageMood:    bucket.moodSum / float64(bucket.count),
			EntryCount:     bucket.count,
			SentimentScore: float64(bucket.positive-bucket.negative) / float64(bucket.count),
		})
	}

	// Most recent day first, matching how downstream slices the series
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.After(points[j].Date)
	})

	return points
}

// reverseChronological returns a copy of a most-recent-first series in
// oldest-first order, the orientation the regression expects.
func reverseChronological(points []models.DailyMoodPoint) []models.DailyMoodPoint {
	reversed := make([]models.DailyMoodPoint, len(points))
	for i, p := range points {
		reversed[len(points)-1-i] = p
	}
	return reversed
}
