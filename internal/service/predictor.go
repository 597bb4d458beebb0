package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Vcortez99-hub/essentia/backend/internal/models"
	"github.com/Vcortez99-hub/essentia/backend/internal/repository"
)

const (
	// Minimum daily points required before fitting a trend
	MinDataPoints = 7

	// History window fed into the pipeline
	HistoryLookbackDays = 90

	// Default forecast horizon in days
	DefaultForecastDays = 7

	// Neutral mood substituted for entries without an explicit score
	NeutralMood = 3.0

	// Seasonality: 7-vs-7 day momentum signal
	SeasonalityWindowDays = 7
	SeasonalityThreshold  = 0.3
	SeasonalityDamping    = 0.5

	// Confidence decays 5 points per day of horizon
	ConfidenceDecayPerDay = 5.0

	// Risk tiers on the clamped predicted mood
	RiskHighBelow   = 2.5
	RiskMediumBelow = 3.5

	// Mood scale bounds
	MoodMin = 1.0
	MoodMax = 5.0

	// Slope thresholds
	DecliningDirectionSlope = -0.01
	DecliningWarningSlope   = -0.05
	PreventiveSupportSlope  = -0.03
	PositiveTrendSlope      = 0.05

	// Warning thresholds
	HighVariabilityStdDev = 1.2
	SuddenDropDelta       = -1.5
	LowMoodHighSeverity   = 3 // more than this many low days escalates severity

	// Group-mode defaults
	DefaultRiskThreshold  = 3.0
	AttentionHighRiskDays = 2

	// Personalized recommendations cap
	MaxRecommendations = 5
)

var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

type moodPredictorService struct {
	entryRepo        repository.EntryRepository
	userRepo         repository.UserRepository
	groupConcurrency int
}

// NewMoodPredictorService creates a new mood predictor service.
// groupConcurrency bounds how many users a group forecast processes
// concurrently.
func NewMoodPredictorService(entryRepo repository.EntryRepository, userRepo repository.UserRepository, groupConcurrency int) MoodPredictorService {
	if groupConcurrency < 1 {
		groupConcurrency = 1
	}
	return &moodPredictorService{
		entryRepo:        entryRepo,
		userRepo:         userRepo,
		groupConcurrency: groupConcurrency,
	}
}

// PredictMood runs the full single-user pipeline: history aggregation,
// trend fit, weekday profile, seasonality, day-by-day forecast, warnings
// and recommendations.
func (s *moodPredictorService) PredictMood(ctx context.Context, userID string, daysAhead int) (*models.ForecastResult, error) {
	if daysAhead <= 0 {
		daysAhead = DefaultForecastDays
	}

	history, err := s.getMoodHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood history: %w", err)
	}

	return forecastFromHistory(userID, history, daysAhead), nil
}

// forecastFromHistory runs the in-memory pipeline over an already-loaded
// daily series (most-recent-first). Pure and deterministic apart from
// anchoring the forecast dates at the current day.
func forecastFromHistory(userID string, history []models.DailyMoodPoint, daysAhead int) *models.ForecastResult {
	// Not enough data is a normal outcome, not an error: the UI shows an
	// encouraging message instead of a forecast.
	if len(history) < MinDataPoints {
		return &models.ForecastResult{
			Success:    false,
			Message:    fmt.Sprintf("At least %d days of mood history are needed for a forecast", MinDataPoints),
			DataPoints: len(history),
		}
	}

	chronological := reverseChronological(history)

	trend := calculateLinearTrend(chronological)
	profile := calculateWeekdayProfile(history)
	seasonality := detectSeasonality(history)

	predictions := buildForecast(trend, profile.Patterns, seasonality, len(chronological), daysAhead, time.Now())
	warnings := generateWarnings(history, predictions, trend)
	recommendations := generateRecommendations(predictions, warnings, trend)

	return &models.ForecastResult{
		Success:         true,
		UserID:          userID,
		DataPoints:      len(history),
		Trend:           describeTrend(trend),
		WeekdayPatterns: profile,
		Predictions:     predictions,
		Warnings:        warnings,
		Recommendations: recommendations,
	}
}

// =============================================================================
// Trend
// =============================================================================

// calculateLinearTrend fits an ordinary least squares line over the
// chronological (oldest-first) series, with x = 0-based day index and
// y = average mood.
//
// Precondition: len(points) >= MinDataPoints. The pipeline gates on the
// point count before calling, which keeps the denominator nonzero.
func calculateLinearTrend(points []models.DailyMoodPoint) models.TrendResult {
	n := float64(len(points))
	var sumX, sumY, sumXY, sumXX float64

	for i, p := range points {
		x := float64(i)
		y := p.AverageMood
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n

	return models.TrendResult{Slope: slope, Intercept: intercept}
}

// describeTrend maps a fitted slope onto the caller-facing direction,
// strength and severity-banded description.
func describeTrend(trend models.TrendResult) *models.TrendInfo {
	direction := models.TrendStable
	if trend.Slope > 0 {
		direction = models.TrendImproving
	} else if trend.Slope < DecliningDirectionSlope {
		direction = models.TrendDeclining
	}

	var description string
	switch {
	case trend.Slope > 0.1:
		description = "Mood is improving strongly"
	case trend.Slope > 0.03:
		description = "Mood is improving gradually"
	case trend.Slope > -0.03:
		description = "Mood is holding steady"
	case trend.Slope > -0.1:
		description = "Mood is declining gradually"
	default:
		description = "Mood is declining sharply"
	}

	return &models.TrendInfo{
		Direction:   direction,
		Strength:    math.Abs(trend.Slope),
		Description: description,
	}
}

// =============================================================================
// Weekday patterns
// =============================================================================

// calculateWeekdayProfile buckets the series by weekday and reports each
// weekday's deviation from the overall mean mood. Weekdays absent from
// the history are omitted from the map; a missing key means "no
// pattern", not zero. Best/worst ties resolve to the lowest weekday
// index.
func calculateWeekdayProfile(points []models.DailyMoodPoint) *models.WeekdayPatterns {
	var sums [7]float64
	var counts [7]int
	var overallSum float64

	for _, p := range points {
		day := p.Date.Weekday()
		sums[day] += p.AverageMood
		counts[day]++
		overallSum += p.AverageMood
	}

	if len(points) == 0 {
		return &models.WeekdayPatterns{Patterns: map[time.Weekday]float64{}}
	}

	overallMean := overallSum / float64(len(points))

	patterns := make(map[time.Weekday]float64)
	bestDay, worstDay := -1, -1
	bestDev, worstDev := math.Inf(-1), math.Inf(1)

	// Iterate weekday indices 0..6 so ties resolve deterministically
	for day := 0; day < 7; day++ {
		if counts[day] == 0 {
			continue
		}
		deviation := sums[day]/float64(counts[day]) - overallMean
		patterns[time.Weekday(day)] = deviation

		if deviation > bestDev {
			bestDev = deviation
			bestDay = day
		}
		if deviation < worstDev {
			worstDev = deviation
			worstDay = day
		}
	}

	result := &models.WeekdayPatterns{Patterns: patterns}
	if bestDay >= 0 {
		result.BestDay = weekdayNames[bestDay]
	}
	if worstDay >= 0 {
		result.WorstDay = weekdayNames[worstDay]
	}

	return result
}

// =============================================================================
// Seasonality
// =============================================================================

// detectSeasonality compares the most recent 7-day average mood with the
// previous 7-day average on the most-recent-first series. With fewer
// than 14 points the signal is a neutral no-op.
func detectSeasonality(points []models.DailyMoodPoint) models.SeasonalitySignal {
	if len(points) < 2*SeasonalityWindowDays {
		return models.SeasonalitySignal{}
	}

	recent := averageMood(points[:SeasonalityWindowDays])
	previous := averageMood(points[SeasonalityWindowDays : 2*SeasonalityWindowDays])

	diff := recent - previous

	return models.SeasonalitySignal{
		Detected:   math.Abs(diff) > SeasonalityThreshold,
		Adjustment: diff * SeasonalityDamping,
	}
}

func averageMood(points []models.DailyMoodPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += p.AverageMood
	}
	return sum / float64(len(points))
}

// =============================================================================
// Forecast
// =============================================================================

// buildForecast projects the trend daysAhead days past the end of the
// historical series. The regression x-index continues from n, so future
// days sit at n+1, n+2, ... rather than restarting at zero. Each day
// gets the weekday deviation (zero when the weekday was never observed)
// and the seasonality adjustment, then is clamped to the mood scale.
func buildForecast(trend models.TrendResult, patterns map[time.Weekday]float64, seasonality models.SeasonalitySignal, n, daysAhead int, from time.Time) []models.ForecastDay {
	predictions := make([]models.ForecastDay, 0, daysAhead)

	for i := 1; i <= daysAhead; i++ {
		futureDate := from.AddDate(0, 0, i)
		weekday := futureDate.Weekday()

		base := trend.Slope*float64(n+i) + trend.Intercept
		adjusted := base + patterns[weekday] + seasonality.Adjustment
		adjusted = math.Max(MoodMin, math.Min(MoodMax, adjusted))

		confidence := math.Max(0, 100-ConfidenceDecayPerDay*float64(i))

		risk, message := classifyRisk(adjusted)

		predictions = append(predictions, models.ForecastDay{
			Date:          futureDate,
			WeekdayLabel:  weekdayNames[weekday],
			PredictedMood: adjusted,
			Confidence:    confidence,
			RiskLevel:     risk,
			RiskMessage:   message,
		})
	}

	return predictions
}

// classifyRisk maps a clamped predicted mood onto the three risk tiers
func classifyRisk(predictedMood float64) (models.RiskLevel, string) {
	switch {
	case predictedMood < RiskHighBelow:
		return models.RiskHigh, "Low mood predicted"
	case predictedMood < RiskMediumBelow:
		return models.RiskMedium, "Mood may dip"
	default:
		return models.RiskLow, "Stable mood predicted"
	}
}

// =============================================================================
// Warnings
// =============================================================================

// generateWarnings evaluates the four risk predicates independently, in
// a fixed order that only affects display sequence. History arrives
// most-recent-first.
func generateWarnings(history []models.DailyMoodPoint, predictions []models.ForecastDay, trend models.TrendResult) []models.Warning {
	warnings := make([]models.Warning, 0)

	if trend.Slope < DecliningWarningSlope {
		warnings = append(warnings, models.Warning{
			Type:           models.WarningDecliningTrend,
			Severity:       models.SeverityHigh,
			Message:        "Mood has been on a declining trend",
			Recommendation: "Consider scheduling a wellness check-in this week",
		})
	}

	lowDays := 0
	for _, p := range predictions {
		if p.PredictedMood < RiskHighBelow {
			lowDays++
		}
	}
	if lowDays > 0 {
		severity := models.SeverityMedium
		if lowDays > LowMoodHighSeverity {
			severity = models.SeverityHigh
		}
		warnings = append(warnings, models.Warning{
			Type:           models.WarningLowMoodPredict,
			Severity:       severity,
			Message:        fmt.Sprintf("Low mood predicted on %d of the coming days", lowDays),
			Recommendation: "Plan restorative activities for the flagged days",
		})
	}

	if recentStdDev(history, SeasonalityWindowDays) > HighVariabilityStdDev {
		warnings = append(warnings, models.Warning{
			Type:           models.WarningHighVariability,
			Severity:       models.SeverityMedium,
			Message:        "Mood has been highly variable over the last week",
			Recommendation: "A consistent daily routine can help stabilize mood",
		})
	}

	if len(history) >= 2 && history[0].AverageMood-history[1].AverageMood < SuddenDropDelta {
		warnings = append(warnings, models.Warning{
			Type:           models.WarningSuddenDrop,
			Severity:       models.SeverityHigh,
			Message:        "Mood dropped sharply compared to the previous day",
			Recommendation: "Reach out today; a sudden drop often signals an acute stressor",
		})
	}

	return warnings
}

// recentStdDev computes the population standard deviation of average
// mood over the most recent window of the series
func recentStdDev(history []models.DailyMoodPoint, window int) float64 {
	if len(history) < window {
		return 0
	}

	recent := history[:window]
	mean := averageMood(recent)

	var variance float64
	for _, p := range recent {
		d := p.AverageMood - mean
		variance += d * d
	}
	variance /= float64(len(recent))

	return math.Sqrt(variance)
}

// =============================================================================
// Recommendations
// =============================================================================

// generateRecommendations maps warnings, trend and forecast averages
// onto prioritized actions. All rules are evaluated independently; the
// raw forecast output is neither deduplicated nor capped.
func generateRecommendations(predictions []models.ForecastDay, warnings []models.Warning, trend models.TrendResult) []models.Recommendation {
	recommendations := make([]models.Recommendation, 0)

	for _, w := range warnings {
		if w.Severity == models.SeverityHigh {
			recommendations = append(recommendations, models.Recommendation{
				Priority:    models.PriorityHigh,
				Action:      "immediate_intervention",
				Title:       "Check in now",
				Description: "Warning signs suggest support should not wait",
				Icon:        "alert",
			})
			break
		}
	}

	if trend.Slope < PreventiveSupportSlope {
		recommendations = append(recommendations, models.Recommendation{
			Priority:    models.PriorityMedium,
			Action:      "preventive_support",
			Title:       "Preventive support",
			Description: "The downward trend is early; small interventions now go far",
			Icon:        "shield",
		})
	}

	if len(predictions) > 0 {
		var sum float64
		for _, p := range predictions {
			sum += p.PredictedMood
		}
		if sum/float64(len(predictions)) < RiskMediumBelow {
			recommendations = append(recommendations, models.Recommendation{
				Priority:    models.PriorityMedium,
				Action:      "monitor_closely",
				Title:       "Monitor closely",
				Description: "Forecast averages below the comfort range for the coming week",
				Icon:        "eye",
			})
		}
	}

	if trend.Slope > PositiveTrendSlope {
		recommendations = append(recommendations, models.Recommendation{
			Priority:    models.PriorityLow,
			Action:      "positive_reinforcement",
			Title:       "Keep it up",
			Description: "Mood is clearly improving; reinforce what is working",
			Icon:        "trending-up",
		})
	}

	return recommendations
}
