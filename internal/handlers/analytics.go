package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/luminus-backend/internal/pkg/logger"
	"github.com/yungbote/luminus-backend/internal/services"
)

type AnalyticsHandler struct {
	log                *logger.Logger
	analyticsService   services.AnalyticsService
	insightsService    services.InsightsService
	performanceService services.PerformanceService
}

func NewAnalyticsHandler(log *logger.Logger, analyticsService services.AnalyticsService, insightsService services.InsightsService, performanceService services.PerformanceService) *AnalyticsHandler {
	handlerLog := log.With("handler", "AnalyticsHandler")
	return &AnalyticsHandler{
		log:                handlerLog,
		analyticsService:   analyticsService,
		insightsService:    insightsService,
		performanceService: performanceService,
	}
}

func (h *AnalyticsHandler) Analytics(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	report, err := h.analyticsService.Report(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) Insights(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	report, err := h.insightsService.Report(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) Performance(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	report, err := h.performanceService.Report(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
