package service

import (
	"testing"
	"time"

	"github.com/Vcortez99-hub/essentia/backend/internal/models"
)

func intPtr(v int) *int { return &v }

func TestAggregateDailyHistoryBucketsByDay(t *testing.T) {
	day := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	entries := []models.DiaryEntry{
		{UserID: "u1", MoodScore: intPtr(4), Sentiment: "positive", CreatedAt: day.Add(8 * time.Hour)},
		{UserID: "u1", MoodScore: intPtr(2), Sentiment: "negative", CreatedAt: day.Add(13 * time.Hour)},
		{UserID: "u1", MoodScore: nil, Sentiment: "neutral", CreatedAt: day.Add(21 * time.Hour)},
	}

	points := aggregateDailyHistory(entries)

	if len(points) != 1 {
		t.Fatalf("len(points) = %d, want 1 (same calendar day)", len(points))
	}

	p := points[0]
	if p.EntryCount != 3 {
		t.Errorf("EntryCount = %d, want 3", p.EntryCount)
	}
	// The scoreless entry counts as neutral 3: (4+2+3)/3
	if !almostEqual(p.AverageMood, 3.0) {
		t.Errorf("AverageMood = %v, want 3.0", p.AverageMood)
	}
	// One positive, one negative, one neutral: (1-1)/3
	if !almostEqual(p.SentimentScore, 0) {
		t.Errorf("SentimentScore = %v, want 0", p.SentimentScore)
	}
}

func TestAggregateDailyHistoryNeutralSubstitution(t *testing.T) {
	day := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

	points := aggregateDailyHistory([]models.DiaryEntry{
		{UserID: "u1", MoodScore: nil, Sentiment: "neutral", CreatedAt: day},
	})

	if len(points) != 1 {
		t.Fatalf("len(points) = %d, want 1", len(points))
	}
	if !almostEqual(points[0].AverageMood, NeutralMood) {
		t.Errorf("AverageMood = %v, want the neutral %v", points[0].AverageMood, NeutralMood)
	}
}

func TestAggregateDailyHistoryMostRecentFirst(t *testing.T) {
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	entries := []models.DiaryEntry{
		{UserID: "u1", MoodScore: intPtr(3), CreatedAt: base},
		{UserID: "u1", MoodScore: intPtr(4), CreatedAt: base.AddDate(0, 0, 2)},
		{UserID: "u1", MoodScore: intPtr(5), CreatedAt: base.AddDate(0, 0, 1)},
	}

	points := aggregateDailyHistory(entries)

	if len(points) != 3 {
		t.Fatalf("len(points) = %d, want 3", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Date.After(points[i-1].Date) {
			t.Fatalf("points are not most-recent-first: %v before %v", points[i-1].Date, points[i].Date)
		}
	}
	if !almostEqual(points[0].AverageMood, 4) {
		t.Errorf("newest point AverageMood = %v, want 4", points[0].AverageMood)
	}

	// Days without entries stay absent rather than zero-filled
	if !almostEqual(points[2].AverageMood, 3) {
		t.Errorf("oldest point AverageMood = %v, want 3", points[2].AverageMood)
	}
}

func TestAggregateDailyHistoryEmpty(t *testing.T) {
	points := aggregateDailyHistory(nil)
	if len(points) != 0 {
		t.Errorf("len(points) = %d, want 0", len(points))
	}
}

func TestReverseChronological(t *testing.T) {
	history := seriesFromChronological([]float64{1, 2, 3})

	reversed := reverseChronological(history)

	if !almostEqual(reversed[0].AverageMood, 1) || !almostEqual(reversed[2].AverageMood, 3) {
		t.Errorf("reversed moods = [%v %v %v], want [1 2 3]",
			reversed[0].AverageMood, reversed[1].AverageMood, reversed[2].AverageMood)
	}

	// The input series is left untouched
	if !almostEqual(history[0].AverageMood, 3) {
		t.Errorf("input was mutated: history[0].AverageMood = %v", history[0].AverageMood)
	}
}
