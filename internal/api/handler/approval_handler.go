package handler

import (
	"Parchment/internal/service"

	"github.com/gin-gonic/gin"
)

type ApprovalHandler struct {
	approvalSvc service.ApprovalService
	changeLog   service.ChangeLogService
}

func NewApprovalHandler(approvalSvc service.ApprovalService, changeLog service.ChangeLogService) *ApprovalHandler {
	return &ApprovalHandler{
		approvalSvc: approvalSvc,
		changeLog:   changeLog,
	}
}

func (s *ApprovalHandler) CreateApproval(c *gin.Context) {
	createEntity(c, s.changeLog, entityApprovals, s.approvalSvc.CreateApproval)
}

func (s *ApprovalHandler) GetApproval(c *gin.Context) {
	getEntity(c, s.approvalSvc.GetApproval)
}

func (s *ApprovalHandler) UpdateApproval(c *gin.Context) {
	updateEntity(c, s.changeLog, entityApprovals, s.approvalSvc.UpdateApproval)
}

func (s *ApprovalHandler) DeleteApproval(c *gin.Context) {
	deleteEntity(c, s.changeLog, entityApprovals, s.approvalSvc.DeleteApproval)
}
