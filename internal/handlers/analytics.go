package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vcortez99-hub/essentia/backend/internal/apierror"
	"github.com/Vcortez99-hub/essentia/backend/internal/logger"
	"github.com/Vcortez99-hub/essentia/backend/internal/service"
)

// AnalyticsHandler handles mood analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService service.MoodAnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.MoodAnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetMoodSummary returns aggregate mood statistics for the dashboard
// GET /api/v1/analytics/mood-summary
func (h *AnalyticsHandler) GetMoodSummary(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	log := logger.Ctx(c.Request.Context())

	summary, err := h.analyticsService.GetMoodSummary(c.Request.Context(), userID.(string))
	if err != nil {
		log.Error("failed to compute mood summary", logger.Err(err), logger.String("user_id", userID.(string)))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, summary)
}
