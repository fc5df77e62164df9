package handler

import (
	"Parchment/internal/pkg/response"
	"Parchment/internal/service"

	"github.com/gin-gonic/gin"
)

type TranslationHandler struct {
	translationSvc service.TranslationService
	changeLog      service.ChangeLogService
}

func NewTranslationHandler(translationSvc service.TranslationService, changeLog service.ChangeLogService) *TranslationHandler {
	return &TranslationHandler{
		translationSvc: translationSvc,
		changeLog:      changeLog,
	}
}

func (s *TranslationHandler) CreateTranslation(c *gin.Context) {
	createEntity(c, s.changeLog, entityTranslations, s.translationSvc.CreateTranslation)
}

func (s *TranslationHandler) GetTranslation(c *gin.Context) {
	getEntity(c, s.translationSvc.GetTranslation)
}

// GetTranslationsByContent 列出某内容的全部翻译，同一语言可有多条
func (s *TranslationHandler) GetTranslationsByContent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	translations, err := s.translationSvc.GetTranslationsByContent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, translations)
}

func (s *TranslationHandler) UpdateTranslation(c *gin.Context) {
	updateEntity(c, s.changeLog, entityTranslations, s.translationSvc.UpdateTranslation)
}

func (s *TranslationHandler) DeleteTranslation(c *gin.Context) {
	deleteEntity(c, s.changeLog, entityTranslations, s.translationSvc.DeleteTranslation)
}
