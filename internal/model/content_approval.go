package model

import (
	"fmt"
	"time"
)

type ContentApproval struct {
	ID         uint64         `gorm:"primaryKey" json:"id"`
	ContentID  uint64         `gorm:"not null;index:idx_content_id" json:"content_id"`
	ReviewerID *uint64        `gorm:"index:idx_reviewer_id" json:"reviewer_id"`
	Status     ApprovalStatus `gorm:"type:varchar(20);not null;index:idx_status" json:"status"`
	Comments   *string        `gorm:"type:text" json:"comments"`
	ReviewedAt time.Time      `gorm:"autoCreateTime" json:"reviewed_at"`

	Content  *Content `gorm:"foreignKey:ContentID;references:ID;constraint:OnDelete:CASCADE" json:"content,omitempty"`
	Reviewer *User    `gorm:"foreignKey:ReviewerID;references:ID;constraint:OnDelete:SET NULL" json:"reviewer,omitempty"`
}

func (ContentApproval) TableName() string {
	return "content_approvals"
}

func (a *ContentApproval) String() string {
	return fmt.Sprintf("%s - %s", contentTitle(a.Content, a.ContentID), a.Status)
}

func (a *ContentApproval) PrimaryKey() uint64 {
	return a.ID
}

func (a *ContentApproval) AdminValue(field string) any {
	switch field {
	case "content":
		return contentTitle(a.Content, a.ContentID)
	case "reviewer":
		if a.Reviewer == nil {
			return nil
		}
		return a.Reviewer.String()
	case "status":
		return a.Status
	case "reviewed_at":
		return a.ReviewedAt
	}
	return nil
}
