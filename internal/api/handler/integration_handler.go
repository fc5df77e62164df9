package handler

import (
	"Parchment/internal/service"

	"github.com/gin-gonic/gin"
)

type IntegrationHandler struct {
	integrationSvc service.IntegrationService
	changeLog      service.ChangeLogService
}

func NewIntegrationHandler(integrationSvc service.IntegrationService, changeLog service.ChangeLogService) *IntegrationHandler {
	return &IntegrationHandler{
		integrationSvc: integrationSvc,
		changeLog:      changeLog,
	}
}

func (s *IntegrationHandler) CreateIntegration(c *gin.Context) {
	createEntity(c, s.changeLog, entityIntegrations, s.integrationSvc.CreateIntegration)
}

func (s *IntegrationHandler) GetIntegration(c *gin.Context) {
	getEntity(c, s.integrationSvc.GetIntegration)
}

func (s *IntegrationHandler) UpdateIntegration(c *gin.Context) {
	updateEntity(c, s.changeLog, entityIntegrations, s.integrationSvc.UpdateIntegration)
}

func (s *IntegrationHandler) DeleteIntegration(c *gin.Context) {
	deleteEntity(c, s.changeLog, entityIntegrations, s.integrationSvc.DeleteIntegration)
}
