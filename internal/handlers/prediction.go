package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vcortez99-hub/essentia/backend/internal/apierror"
	"github.com/Vcortez99-hub/essentia/backend/internal/logger"
	"github.com/Vcortez99-hub/essentia/backend/internal/models"
	"github.com/Vcortez99-hub/essentia/backend/internal/service"
)

// PredictionHandler handles mood forecast HTTP requests
type PredictionHandler struct {
	predictorService service.MoodPredictorService
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(predictorService service.MoodPredictorService) *PredictionHandler {
	return &PredictionHandler{
		predictorService: predictorService,
	}
}

// GetMoodForecast returns the mood forecast for the authenticated user
// GET /api/v1/predictions/mood?days=N
func (h *PredictionHandler) GetMoodForecast(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	var req models.PredictMoodRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "days", Message: "must be an integer between 1 and 30", Code: "range"},
		}))
		return
	}

	days := req.Days
	if days == 0 {
		days = service.DefaultForecastDays
	}

	log := logger.Ctx(c.Request.Context())

	result, err := h.predictorService.PredictMood(c.Request.Context(), userID.(string), days)
	if err != nil {
		log.Error("failed to compute mood forecast", logger.Err(err), logger.String("user_id", userID.(string)))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRecommendations returns personalized wellness recommendations
// GET /api/v1/predictions/recommendations
func (h *PredictionHandler) GetRecommendations(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	log := logger.Ctx(c.Request.Context())

	response, err := h.predictorService.GetPersonalizedRecommendations(c.Request.Context(), userID.(string))
	if err != nil {
		log.Error("failed to build recommendations", logger.Err(err), logger.String("user_id", userID.(string)))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetGroupForecast returns per-user forecast summaries for a company or
// department, ranked by risk. Restricted to HR and admin users.
// GET /api/v1/predictions/group?company_id=X&department_id=Y&risk_threshold=Z
func (h *PredictionHandler) GetGroupForecast(c *gin.Context) {
	var req models.GroupForecastRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "risk_threshold", Message: "must be a number between 1 and 5", Code: "range"},
		}))
		return
	}

	filter := models.GroupFilter{RiskThreshold: req.RiskThreshold}
	if req.CompanyID != "" {
		filter.CompanyID = &req.CompanyID
	}
	if req.DepartmentID != "" {
		filter.DepartmentID = &req.DepartmentID
	}

	log := logger.Ctx(c.Request.Context())

	result, err := h.predictorService.PredictForGroup(c.Request.Context(), filter)
	if err != nil {
		log.Error("failed to compute group forecast", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, result)
}
