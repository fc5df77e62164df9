package dto

import "Parchment/internal/model"

type CreateMediaFileDTO struct {
	ContentID uint64 `json:"content_id" validate:"required"`
	File      string `json:"file" validate:"required,max=100,startswith=media/"`
}

type UpdateMediaFileDTO struct {
	ContentID *uint64 `json:"content_id" validate:"omitempty,gt=0"`
	File      *string `json:"file" validate:"omitempty,max=100,startswith=media/"`
}

// MediaUploadDTO multipart 上传时的表单字段
type MediaUploadDTO struct {
	ContentID uint64 `form:"content_id" validate:"required"`
}

// MediaFileDTO 附带公共访问地址的媒体文件
type MediaFileDTO struct {
	*model.MediaFile
	URL string `json:"url"`
}
