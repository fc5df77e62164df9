package handler

import (
	"Parchment/internal/service"

	"github.com/gin-gonic/gin"
)

type PerformanceHandler struct {
	performanceSvc service.PerformanceService
	changeLog      service.ChangeLogService
}

func NewPerformanceHandler(performanceSvc service.PerformanceService, changeLog service.ChangeLogService) *PerformanceHandler {
	return &PerformanceHandler{
		performanceSvc: performanceSvc,
		changeLog:      changeLog,
	}
}

func (s *PerformanceHandler) CreateMetrics(c *gin.Context) {
	createEntity(c, s.changeLog, entityPerformanceMetrics, s.performanceSvc.CreateMetrics)
}

func (s *PerformanceHandler) GetMetrics(c *gin.Context) {
	getEntity(c, s.performanceSvc.GetMetrics)
}

func (s *PerformanceHandler) UpdateMetrics(c *gin.Context) {
	updateEntity(c, s.changeLog, entityPerformanceMetrics, s.performanceSvc.UpdateMetrics)
}

func (s *PerformanceHandler) DeleteMetrics(c *gin.Context) {
	deleteEntity(c, s.changeLog, entityPerformanceMetrics, s.performanceSvc.DeleteMetrics)
}
