package model

import "time"

// MediaUploadPrefix 媒体文件在对象存储中的前缀
const MediaUploadPrefix = "media/"

type MediaFile struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	ContentID  uint64    `gorm:"not null;index:idx_content_id" json:"content_id"`
	File       string    `gorm:"type:varchar(100);not null" json:"file"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`

	Content *Content `gorm:"foreignKey:ContentID;references:ID;constraint:OnDelete:CASCADE" json:"content,omitempty"`
}

func (MediaFile) TableName() string {
	return "media_files"
}

func (m *MediaFile) String() string {
	return m.File
}

func (m *MediaFile) PrimaryKey() uint64 {
	return m.ID
}

func (m *MediaFile) AdminValue(field string) any {
	switch field {
	case "content":
		return contentTitle(m.Content, m.ContentID)
	case "file":
		return m.File
	case "uploaded_at":
		return m.UploadedAt
	}
	return nil
}
