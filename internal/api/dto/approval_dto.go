package dto

import "Parchment/internal/model"

type CreateApprovalDTO struct {
	ContentID  uint64               `json:"content_id" validate:"required"`
	ReviewerID *uint64              `json:"reviewer_id" validate:"omitempty,gt=0"`
	Status     model.ApprovalStatus `json:"status" validate:"required,oneof=approved rejected"`
	Comments   *string              `json:"comments"`
}

type UpdateApprovalDTO struct {
	ContentID  *uint64               `json:"content_id" validate:"omitempty,gt=0"`
	ReviewerID *uint64               `json:"reviewer_id" validate:"omitempty,gt=0"`
	Status     *model.ApprovalStatus `json:"status" validate:"omitempty,oneof=approved rejected"`
	Comments   *string               `json:"comments"`
}
