package handler

import (
	"Parchment/internal/api/dto"
	"Parchment/internal/pkg/response"
	"Parchment/internal/pkg/util"
	"Parchment/internal/service"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentSvc   service.ContentService
	analyticsSvc service.AnalyticsService
	changeLog    service.ChangeLogService
}

func NewContentHandler(contentSvc service.ContentService, analyticsSvc service.AnalyticsService, changeLog service.ChangeLogService) *ContentHandler {
	return &ContentHandler{
		contentSvc:   contentSvc,
		analyticsSvc: analyticsSvc,
		changeLog:    changeLog,
	}
}

func (s *ContentHandler) CreateContent(c *gin.Context) {
	createEntity(c, s.changeLog, entityContents, s.contentSvc.CreateContent)
}

func (s *ContentHandler) GetContent(c *gin.Context) {
	getEntity(c, s.contentSvc.GetContent)
}

func (s *ContentHandler) GetContentBySlug(c *gin.Context) {
	content, err := s.contentSvc.GetContentBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, content)
}

func (s *ContentHandler) UpdateContent(c *gin.Context) {
	updateEntity(c, s.changeLog, entityContents, s.contentSvc.UpdateContent)
}

// DeleteContent 级联删除审核、SEO、媒体、翻译、统计与性能记录
func (s *ContentHandler) DeleteContent(c *gin.Context) {
	deleteEntity(c, s.changeLog, entityContents, s.contentSvc.DeleteContent)
}

// SearchContents 全文检索已发布内容
func (s *ContentHandler) SearchContents(c *gin.Context) {
	var searchDTO dto.ContentSearchDTO
	if err := c.ShouldBindQuery(&searchDTO); err != nil {
		response.Fail(c, response.BadRequest, "参数错误")
		return
	}
	if err := util.ValidateDTO(&searchDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.contentSvc.SearchContents(c.Request.Context(), &searchDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// RecordHit 记录一次浏览、点赞或分享
func (s *ContentHandler) RecordHit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.analyticsSvc.RecordHit(c.Request.Context(), id, c.Param("kind")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
