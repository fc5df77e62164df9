package model

import "fmt"

type ContentTranslation struct {
	ID              uint64 `gorm:"primaryKey" json:"id"`
	ContentID       uint64 `gorm:"not null;index:idx_content_id" json:"content_id"`
	Language        string `gorm:"type:varchar(10);not null;index:idx_language" json:"language"`
	TranslatedTitle string `gorm:"type:varchar(255);not null" json:"translated_title"`
	TranslatedBody  string `gorm:"type:longtext;not null" json:"translated_body"`

	Content *Content `gorm:"foreignKey:ContentID;references:ID;constraint:OnDelete:CASCADE" json:"content,omitempty"`
}

func (ContentTranslation) TableName() string {
	return "content_translations"
}

func (t *ContentTranslation) String() string {
	return fmt.Sprintf("%s - %s", contentTitle(t.Content, t.ContentID), t.Language)
}

func (t *ContentTranslation) PrimaryKey() uint64 {
	return t.ID
}

func (t *ContentTranslation) AdminValue(field string) any {
	switch field {
	case "content":
		return contentTitle(t.Content, t.ContentID)
	case "language":
		return t.Language
	case "translated_title":
		return t.TranslatedTitle
	}
	return nil
}
