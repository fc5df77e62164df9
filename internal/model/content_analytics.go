package model

import (
	"fmt"
	"time"
)

type ContentAnalytics struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	ContentID    uint64    `gorm:"not null;index:idx_content_id" json:"content_id"`
	Views        uint64    `gorm:"not null;default:0" json:"views"`
	Likes        uint64    `gorm:"not null;default:0" json:"likes"`
	Shares       uint64    `gorm:"not null;default:0" json:"shares"`
	LastAccessed time.Time `gorm:"autoUpdateTime" json:"last_accessed"`

	Content *Content `gorm:"foreignKey:ContentID;references:ID;constraint:OnDelete:CASCADE" json:"content,omitempty"`
}

func (ContentAnalytics) TableName() string {
	return "content_analytics"
}

func (a *ContentAnalytics) String() string {
	return fmt.Sprintf("%s - %d Views", contentTitle(a.Content, a.ContentID), a.Views)
}

func (a *ContentAnalytics) PrimaryKey() uint64 {
	return a.ID
}

func (a *ContentAnalytics) AdminValue(field string) any {
	switch field {
	case "content":
		return contentTitle(a.Content, a.ContentID)
	case "views":
		return a.Views
	case "likes":
		return a.Likes
	case "shares":
		return a.Shares
	case "last_accessed":
		return a.LastAccessed
	}
	return nil
}
