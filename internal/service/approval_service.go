package service

import (
	"Parchment/internal/api/dto"
	"Parchment/internal/model"
	"Parchment/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type ApprovalService interface {
	CreateApproval(ctx context.Context, dto *dto.CreateApprovalDTO) (*model.ContentApproval, error)
	GetApproval(ctx context.Context, id uint64) (*model.ContentApproval, error)
	UpdateApproval(ctx context.Context, id uint64, dto *dto.UpdateApprovalDTO) (*model.ContentApproval, error)
	DeleteApproval(ctx context.Context, id uint64) (*model.ContentApproval, error)
}

type ApprovalServiceImpl struct {
	approvalRepo repository.ApprovalRepo
	contentRepo  repository.ContentRepo
	userRepo     repository.UserRepo
}

func NewApprovalService(approvalRepo repository.ApprovalRepo, contentRepo repository.ContentRepo, userRepo repository.UserRepo) ApprovalService {
	return &ApprovalServiceImpl{
		approvalRepo: approvalRepo,
		contentRepo:  contentRepo,
		userRepo:     userRepo,
	}
}

func (s *ApprovalServiceImpl) CreateApproval(ctx context.Context, createDTO *dto.CreateApprovalDTO) (*model.ContentApproval, error) {
	if err := requireContent(ctx, s.contentRepo, createDTO.ContentID); err != nil {
		return nil, err
	}
	if createDTO.ReviewerID != nil {
		if err := requireUser(ctx, s.userRepo, *createDTO.ReviewerID, ErrReviewerNotFound); err != nil {
			return nil, err
		}
	}

	approval := &model.ContentApproval{}
	if err := copier.Copy(approval, createDTO); err != nil {
		return nil, err
	}
	if err := s.approvalRepo.CreateApproval(ctx, approval); err != nil {
		return nil, translateStoreError(err, nil, ErrContentNotFound)
	}
	return s.GetApproval(ctx, approval.ID)
}

func (s *ApprovalServiceImpl) GetApproval(ctx context.Context, id uint64) (*model.ContentApproval, error) {
	approval, err := s.approvalRepo.GetApprovalById(ctx, id)
	if err != nil {
		return nil, err
	}
	if approval == nil {
		return nil, ErrApprovalNotFound
	}
	return approval, nil
}

func (s *ApprovalServiceImpl) UpdateApproval(ctx context.Context, id uint64, updateDTO *dto.UpdateApprovalDTO) (*model.ContentApproval, error) {
	if _, err := s.GetApproval(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if updateDTO.ContentID != nil {
		if err := requireContent(ctx, s.contentRepo, *updateDTO.ContentID); err != nil {
			return nil, err
		}
		fields["content_id"] = *updateDTO.ContentID
	}
	if updateDTO.ReviewerID != nil {
		if err := requireUser(ctx, s.userRepo, *updateDTO.ReviewerID, ErrReviewerNotFound); err != nil {
			return nil, err
		}
		fields["reviewer_id"] = *updateDTO.ReviewerID
	}
	setField(fields, "status", updateDTO.Status)
	setField(fields, "comments", updateDTO.Comments)

	if err := s.approvalRepo.UpdateApproval(ctx, id, fields); err != nil {
		return nil, translateStoreError(err, nil, ErrContentNotFound)
	}
	return s.GetApproval(ctx, id)
}

func (s *ApprovalServiceImpl) DeleteApproval(ctx context.Context, id uint64) (*model.ContentApproval, error) {
	approval, err := s.GetApproval(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = s.approvalRepo.DeleteApproval(ctx, id); err != nil {
		return nil, err
	}
	return approval, nil
}
