package handler

import (
	"Parchment/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
	changeLog    service.ChangeLogService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService, changeLog service.ChangeLogService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
		changeLog:    changeLog,
	}
}

func (s *AnalyticsHandler) CreateAnalytics(c *gin.Context) {
	createEntity(c, s.changeLog, entityAnalytics, s.analyticsSvc.CreateAnalytics)
}

func (s *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	getEntity(c, s.analyticsSvc.GetAnalytics)
}

func (s *AnalyticsHandler) UpdateAnalytics(c *gin.Context) {
	updateEntity(c, s.changeLog, entityAnalytics, s.analyticsSvc.UpdateAnalytics)
}

func (s *AnalyticsHandler) DeleteAnalytics(c *gin.Context) {
	deleteEntity(c, s.changeLog, entityAnalytics, s.analyticsSvc.DeleteAnalytics)
}
