package dto

import "Parchment/internal/model"

type CreateUserDTO struct {
	Username    string     `json:"username" validate:"required,max=150,username"`
	Email       string     `json:"email" validate:"omitempty,email,max=254"`
	Password    string     `json:"password" validate:"required,min=8,max=128"`
	FirstName   string     `json:"first_name" validate:"max=150"`
	LastName    string     `json:"last_name" validate:"max=150"`
	Role        model.Role `json:"role" validate:"omitempty,oneof=admin editor contributor viewer"`
	IsActive    *bool      `json:"is_active"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
}

type UpdateUserDTO struct {
	Username    *string     `json:"username" validate:"omitempty,max=150,username"`
	Email       *string     `json:"email" validate:"omitempty,email,max=254"`
	Password    *string     `json:"password" validate:"omitempty,min=8,max=128"`
	FirstName   *string     `json:"first_name" validate:"omitempty,max=150"`
	LastName    *string     `json:"last_name" validate:"omitempty,max=150"`
	Role        *model.Role `json:"role" validate:"omitempty,oneof=admin editor contributor viewer"`
	IsActive    *bool       `json:"is_active"`
	IsStaff     *bool       `json:"is_staff"`
	IsSuperuser *bool       `json:"is_superuser"`
}
