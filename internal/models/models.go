package models

import "time"

// User represents an employee account in the system
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"` // "employee", "hr", "admin"
	CompanyID    *string   `json:"company_id,omitempty"`
	DepartmentID *string   `json:"department_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsStaff reports whether the user may access group-level analytics
func (u *User) IsStaff() bool {
	return u.Role == "hr" || u.Role == "admin"
}

// DiaryEntry represents a single raw diary/check-in entry.
// MoodScore is nil when the entry carries text only; aggregation
// substitutes a neutral score before averaging.
type DiaryEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	MoodScore *int      `json:"mood_score,omitempty"` // 1-5 scale
	Sentiment string    `json:"sentiment"`            // "positive", "neutral", "negative"
	CreatedAt time.Time `json:"created_at"`
}

// DailyMoodPoint is one aggregated day of mood history. A point exists
// only for days with at least one entry; missing days are simply absent,
// not zero-filled.
type DailyMoodPoint struct {
	Date           time.Time `json:"date"`
	AverageMood    float64   `json:"average_mood"`
	EntryCount     int       `json:"entry_count"`
	SentimentScore float64   `json:"sentiment_score"` // [-1, 1]
}

// MoodSummary represents aggregate mood statistics for a user
type MoodSummary struct {
	TotalEntries      int     `json:"total_entries"`
	DaysTracked       int     `json:"days_tracked"`
	AverageMood7Days  float64 `json:"average_mood_7_days"`
	AverageMood30Days float64 `json:"average_mood_30_days"`
	DominantSentiment string  `json:"dominant_sentiment"`
}
