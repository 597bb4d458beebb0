package models

import "time"

// RiskLevel classifies a predicted day's mood risk
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// TrendDirection represents the overall direction of a mood trend
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// WarningType identifies a specific risk pattern in history or forecast
type WarningType string

const (
	WarningDecliningTrend  WarningType = "declining_trend"
	WarningLowMoodPredict  WarningType = "low_mood_predicted"
	WarningHighVariability WarningType = "high_variability"
	WarningSuddenDrop      WarningType = "sudden_drop"
)

// Severity represents how serious a warning is
type Severity string

const (
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Priority represents the urgency of a recommendation
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// TrendResult holds the fitted linear trend over a daily mood series,
// in mood units per day. Computed fresh per forecast call, never persisted.
type TrendResult struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// SeasonalitySignal is the short-term momentum signal comparing the most
// recent 7-day average mood against the previous 7-day average.
type SeasonalitySignal struct {
	Detected   bool    `json:"detected"`
	Adjustment float64 `json:"adjustment"`
}

// WeekdayPatterns holds per-weekday mood deviations from the overall mean.
// Patterns contains only weekdays observed in the history; a missing key
// means "no pattern", not zero.
type WeekdayPatterns struct {
	BestDay  string                   `json:"best_day"`
	WorstDay string                   `json:"worst_day"`
	Patterns map[time.Weekday]float64 `json:"patterns"`
}

// TrendInfo is the caller-facing description of a fitted trend
type TrendInfo struct {
	Direction   TrendDirection `json:"direction"`
	Strength    float64        `json:"strength"`
	Description string         `json:"description"`
}

// ForecastDay is one future day's mood prediction
type ForecastDay struct {
	Date          time.Time `json:"date"`
	WeekdayLabel  string    `json:"weekday_label"`
	PredictedMood float64   `json:"predicted_mood"` // clamped to [1, 5]
	Confidence    float64   `json:"confidence"`     // 0-100, decays with horizon
	RiskLevel     RiskLevel `json:"risk_level"`
	RiskMessage   string    `json:"risk_message"`
}

// Warning is a structured risk alert derived from history and forecast
type Warning struct {
	Type           WarningType `json:"type"`
	Severity       Severity    `json:"severity"`
	Message        string      `json:"message"`
	Recommendation string      `json:"recommendation"`
}

// Recommendation is a prioritized, human-readable suggested action
type Recommendation struct {
	Priority    Priority `json:"priority"`
	Action      string   `json:"action"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
}

// ForecastResult is the full output of a single-user mood forecast.
// When Success is false only Message and DataPoints are populated; too
// little history is a normal result, not an error.
type ForecastResult struct {
	Success         bool             `json:"success"`
	UserID          string           `json:"user_id,omitempty"`
	Message         string           `json:"message,omitempty"`
	DataPoints      int              `json:"data_points"`
	Trend           *TrendInfo       `json:"trend,omitempty"`
	WeekdayPatterns *WeekdayPatterns `json:"weekday_patterns,omitempty"`
	Predictions     []ForecastDay    `json:"predictions,omitempty"`
	Warnings        []Warning        `json:"warnings,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

// GroupFilter selects the users included in a group forecast
type GroupFilter struct {
	CompanyID     *string `json:"company_id,omitempty"`
	DepartmentID  *string `json:"department_id,omitempty"`
	RiskThreshold float64 `json:"risk_threshold"`
}

// PerUserSummary is one user's row in a group forecast
type PerUserSummary struct {
	UserID           string         `json:"user_id"`
	Name             string         `json:"name"`
	AvgPredictedMood float64        `json:"avg_predicted_mood"`
	HighRiskDays     int            `json:"high_risk_days"`
	TrendDirection   TrendDirection `json:"trend_direction"`
	WarningCount     int            `json:"warning_count"`
	NeedsAttention   bool           `json:"needs_attention"`
}

// GroupResult is the output of a group forecast, sorted so that users
// needing attention come first, lowest predicted mood first within each group
type GroupResult struct {
	Success               bool             `json:"success"`
	TotalUsers            int              `json:"total_users"`
	UsersNeedingAttention int              `json:"users_needing_attention"`
	Predictions           []PerUserSummary `json:"predictions"`
}

// RecommendationsResponse is the personalized-recommendations payload
type RecommendationsResponse struct {
	CurrentMood     float64          `json:"current_mood"`
	Recommendations []Recommendation `json:"recommendations"`
}

// PredictMoodRequest carries query parameters for the mood forecast endpoint
type PredictMoodRequest struct {
	Days int `form:"days" binding:"omitempty,min=1,max=30"`
}

// GroupForecastRequest carries query parameters for the group forecast endpoint
type GroupForecastRequest struct {
	CompanyID     string  `form:"company_id"`
	DepartmentID  string  `form:"department_id"`
	RiskThreshold float64 `form:"risk_threshold" binding:"omitempty,min=1,max=5"`
}
