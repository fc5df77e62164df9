package model

import (
	"fmt"
	"time"
)

const SlugMaxLength = 50

type Content struct {
	ID          uint64        `gorm:"primaryKey" json:"id"`
	Title       string        `gorm:"type:varchar(255);not null" json:"title"`
	Slug        string        `gorm:"type:varchar(50);not null;uniqueIndex:idx_slug" json:"slug"`
	Body        string        `gorm:"type:longtext;not null" json:"body"`
	AuthorID    uint64        `gorm:"not null;index:idx_author_id" json:"author_id"`
	Status      ContentStatus `gorm:"type:varchar(20);not null;index:idx_status" json:"status"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
	PublishedAt *time.Time    `json:"published_at"`

	Author *User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
}

func (Content) TableName() string {
	return "contents"
}

func (c *Content) String() string {
	return c.Title
}

func (c *Content) PrimaryKey() uint64 {
	return c.ID
}

func (c *Content) AdminValue(field string) any {
	switch field {
	case "title":
		return c.Title
	case "author":
		return userDisplay(c.Author)
	case "status":
		return c.Status
	case "created_at":
		return c.CreatedAt
	case "updated_at":
		return c.UpdatedAt
	case "published_at":
		return c.PublishedAt
	}
	return nil
}

// contentTitle 关联内容的展示名，未预加载时退化为 "Content object (id)"
func contentTitle(c *Content, id uint64) string {
	if c == nil {
		return fmt.Sprintf("Content object (%d)", id)
	}
	return c.Title
}
