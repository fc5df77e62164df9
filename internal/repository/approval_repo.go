package repository

import (
	"Parchment/internal/model"
	"context"

	"gorm.io/gorm"
)

type ApprovalRepo interface {
	GetApprovalById(ctx context.Context, id uint64) (*model.ContentApproval, error)
	CreateApproval(ctx context.Context, approval *model.ContentApproval) error
	UpdateApproval(ctx context.Context, id uint64, fields map[string]any) error
	DeleteApproval(ctx context.Context, id uint64) error
}

type ApprovalRepoImpl struct {
	db *gorm.DB
}

func NewApprovalRepo(db *gorm.DB) ApprovalRepo {
	return &ApprovalRepoImpl{db: db}
}

func (s *ApprovalRepoImpl) GetApprovalById(ctx context.Context, id uint64) (*model.ContentApproval, error) {
	return getByID[model.ContentApproval](ctx, s.db, id, "Content", "Reviewer")
}

func (s *ApprovalRepoImpl) CreateApproval(ctx context.Context, approval *model.ContentApproval) error {
	return s.db.WithContext(ctx).Omit("Content", "Reviewer").Create(approval).Error
}

func (s *ApprovalRepoImpl) UpdateApproval(ctx context.Context, id uint64, fields map[string]any) error {
	return updateByID[model.ContentApproval](ctx, s.db, id, fields)
}

func (s *ApprovalRepoImpl) DeleteApproval(ctx context.Context, id uint64) error {
	return deleteByID[model.ContentApproval](ctx, s.db, id)
}
