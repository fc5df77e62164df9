package handler

import (
	"Parchment/internal/service"

	"github.com/gin-gonic/gin"
)

type SecurityLogHandler struct {
	securityLogSvc service.SecurityLogService
	changeLog      service.ChangeLogService
}

func NewSecurityLogHandler(securityLogSvc service.SecurityLogService, changeLog service.ChangeLogService) *SecurityLogHandler {
	return &SecurityLogHandler{
		securityLogSvc: securityLogSvc,
		changeLog:      changeLog,
	}
}

func (s *SecurityLogHandler) CreateSecurityLog(c *gin.Context) {
	createEntity(c, s.changeLog, entitySecurityLogs, s.securityLogSvc.CreateSecurityLog)
}

func (s *SecurityLogHandler) GetSecurityLog(c *gin.Context) {
	getEntity(c, s.securityLogSvc.GetSecurityLog)
}

func (s *SecurityLogHandler) UpdateSecurityLog(c *gin.Context) {
	updateEntity(c, s.changeLog, entitySecurityLogs, s.securityLogSvc.UpdateSecurityLog)
}

func (s *SecurityLogHandler) DeleteSecurityLog(c *gin.Context) {
	deleteEntity(c, s.changeLog, entitySecurityLogs, s.securityLogSvc.DeleteSecurityLog)
}
