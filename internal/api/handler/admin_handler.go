package handler

import (
	"Parchment/internal/api/dto"
	"Parchment/internal/pkg/response"
	"Parchment/internal/pkg/util"
	"Parchment/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminSvc  service.AdminService
	changeLog service.ChangeLogService
}

func NewAdminHandler(adminSvc service.AdminService, changeLog service.ChangeLogService) *AdminHandler {
	return &AdminHandler{
		adminSvc:  adminSvc,
		changeLog: changeLog,
	}
}

// Describe 返回后台注册表
func (s *AdminHandler) Describe(c *gin.Context) {
	response.Success(c, s.adminSvc.Describe())
}

// List 实体列表，支持 q 搜索、过滤字段与 page/page_size
func (s *AdminHandler) List(c *gin.Context) {
	list, err := s.adminSvc.List(c.Request.Context(), c.Param("entity"), c.Request.URL.Query())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *AdminHandler) Log(c *gin.Context) {
	var query dto.AdminLogQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Fail(c, response.BadRequest, "参数错误")
		return
	}
	if err := util.ValidateDTO(&query); err != nil {
		response.Error(c, err)
		return
	}
	logs, err := s.changeLog.ListLogs(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, logs)
}
