package model

import (
	"fmt"
	"time"
)

type SecurityLog struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Action    string    `gorm:"type:varchar(255);not null" json:"action"`
	Timestamp time.Time `gorm:"autoCreateTime;index:idx_timestamp" json:"timestamp"`
	IPAddress string    `gorm:"type:varchar(39);not null" json:"ip_address"`

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (SecurityLog) TableName() string {
	return "security_logs"
}

func (l *SecurityLog) String() string {
	return fmt.Sprintf("%s - %s at %s", l.username(), l.Action, l.Timestamp.Format(time.DateTime))
}

func (l *SecurityLog) username() string {
	if l.User == nil {
		return fmt.Sprintf("User object (%d)", l.UserID)
	}
	return l.User.Username
}

func (l *SecurityLog) PrimaryKey() uint64 {
	return l.ID
}

func (l *SecurityLog) AdminValue(field string) any {
	switch field {
	case "user":
		return userDisplay(l.User)
	case "action":
		return l.Action
	case "timestamp":
		return l.Timestamp
	case "ip_address":
		return l.IPAddress
	}
	return nil
}
