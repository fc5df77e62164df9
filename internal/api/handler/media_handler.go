package handler

import (
	"Parchment/internal/api/dto"
	"Parchment/internal/pkg/response"
	"Parchment/internal/pkg/util"
	"Parchment/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc  service.MediaService
	changeLog service.ChangeLogService
}

func NewMediaHandler(mediaSvc service.MediaService, changeLog service.ChangeLogService) *MediaHandler {
	return &MediaHandler{
		mediaSvc:  mediaSvc,
		changeLog: changeLog,
	}
}

// Upload 接收 multipart 文件并登记为内容的媒体文件
func (s *MediaHandler) Upload(c *gin.Context) {
	var uploadDTO dto.MediaUploadDTO
	if err := c.ShouldBind(&uploadDTO); err != nil {
		response.Fail(c, response.BadRequest, "参数错误")
		return
	}
	if err := util.ValidateDTO(&uploadDTO); err != nil {
		response.Error(c, err)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, response.BadRequest, "缺少上传文件")
		return
	}
	reader, err := file.Open()
	if err != nil {
		log.ErrorContext(c.Request.Context(), "open multipart file failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}
	defer func() { _ = reader.Close() }()

	ctx := c.Request.Context()
	media, err := s.mediaSvc.UploadMediaFile(ctx, &service.MediaUpload{
		ContentID: uploadDTO.ContentID,
		Filename:  file.Filename,
		Size:      file.Size,
		Reader:    reader,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	s.changeLog.RecordAddition(ctx, entityMedia, media.ID, media.String())
	response.Success(c, media)
}

func (s *MediaHandler) CreateMediaFile(c *gin.Context) {
	createEntity(c, s.changeLog, entityMedia, s.mediaSvc.CreateMediaFile)
}

func (s *MediaHandler) GetMediaFile(c *gin.Context) {
	getEntity(c, s.mediaSvc.GetMediaFile)
}

func (s *MediaHandler) UpdateMediaFile(c *gin.Context) {
	updateEntity(c, s.changeLog, entityMedia, s.mediaSvc.UpdateMediaFile)
}

// DeleteMediaFile 对象存储中的文件由清理任务异步删除
func (s *MediaHandler) DeleteMediaFile(c *gin.Context) {
	deleteEntity(c, s.changeLog, entityMedia, s.mediaSvc.DeleteMediaFile)
}
