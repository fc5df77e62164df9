package handler

import (
	"Parchment/internal/service"

	"github.com/gin-gonic/gin"
)

type SEOHandler struct {
	seoSvc    service.SEOService
	changeLog service.ChangeLogService
}

func NewSEOHandler(seoSvc service.SEOService, changeLog service.ChangeLogService) *SEOHandler {
	return &SEOHandler{
		seoSvc:    seoSvc,
		changeLog: changeLog,
	}
}

func (s *SEOHandler) CreateSEOData(c *gin.Context) {
	createEntity(c, s.changeLog, entitySEO, s.seoSvc.CreateSEOData)
}

func (s *SEOHandler) GetSEOData(c *gin.Context) {
	getEntity(c, s.seoSvc.GetSEOData)
}

func (s *SEOHandler) UpdateSEOData(c *gin.Context) {
	updateEntity(c, s.changeLog, entitySEO, s.seoSvc.UpdateSEOData)
}

func (s *SEOHandler) DeleteSEOData(c *gin.Context) {
	deleteEntity(c, s.changeLog, entitySEO, s.seoSvc.DeleteSEOData)
}
