package model

import (
	"fmt"
	"time"
)

type User struct {
	ID          uint64     `gorm:"primaryKey" json:"id"`
	Username    string     `gorm:"type:varchar(150) COLLATE utf8mb4_bin;not null;uniqueIndex:idx_username" json:"username"`
	Email       string     `gorm:"type:varchar(254);not null" json:"email"`
	Password    string     `gorm:"type:varchar(128);not null" json:"-"`
	FirstName   string     `gorm:"type:varchar(150);not null" json:"first_name"`
	LastName    string     `gorm:"type:varchar(150);not null" json:"last_name"`
	Role        Role       `gorm:"type:varchar(20);not null;index:idx_role" json:"role"`
	IsActive    bool       `gorm:"not null" json:"is_active"`
	IsStaff     bool       `gorm:"not null" json:"is_staff"`
	IsSuperuser bool       `gorm:"not null" json:"is_superuser"`
	LastLogin   *time.Time `json:"last_login"`
	DateJoined  time.Time  `gorm:"autoCreateTime;not null" json:"date_joined"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) String() string {
	return fmt.Sprintf("%s (%s)", u.Username, u.Role)
}

func (u *User) PrimaryKey() uint64 {
	return u.ID
}

func (u *User) AdminValue(field string) any {
	switch field {
	case "username":
		return u.Username
	case "email":
		return u.Email
	case "role":
		return u.Role
	case "is_active":
		return u.IsActive
	case "date_joined":
		return u.DateJoined
	}
	return nil
}
