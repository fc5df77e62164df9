package service

import (
	"Parchment/internal/api/dto"
	"Parchment/internal/model"
	"Parchment/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type SecurityLogService interface {
	CreateSecurityLog(ctx context.Context, dto *dto.CreateSecurityLogDTO) (*model.SecurityLog, error)
	GetSecurityLog(ctx context.Context, id uint64) (*model.SecurityLog, error)
	UpdateSecurityLog(ctx context.Context, id uint64, dto *dto.UpdateSecurityLogDTO) (*model.SecurityLog, error)
	DeleteSecurityLog(ctx context.Context, id uint64) (*model.SecurityLog, error)
}

type SecurityLogServiceImpl struct {
	securityLogRepo repository.SecurityLogRepo
	userRepo        repository.UserRepo
}

func NewSecurityLogService(securityLogRepo repository.SecurityLogRepo, userRepo repository.UserRepo) SecurityLogService {
	return &SecurityLogServiceImpl{
		securityLogRepo: securityLogRepo,
		userRepo:        userRepo,
	}
}

func (s *SecurityLogServiceImpl) CreateSecurityLog(ctx context.Context, createDTO *dto.CreateSecurityLogDTO) (*model.SecurityLog, error) {
	if err := requireUser(ctx, s.userRepo, createDTO.UserID, ErrUserNotFound); err != nil {
		return nil, err
	}

	securityLog := &model.SecurityLog{}
	if err := copier.Copy(securityLog, createDTO); err != nil {
		return nil, err
	}
	if err := s.securityLogRepo.CreateSecurityLog(ctx, securityLog); err != nil {
		return nil, translateStoreError(err, nil, ErrUserNotFound)
	}
	return s.GetSecurityLog(ctx, securityLog.ID)
}

func (s *SecurityLogServiceImpl) GetSecurityLog(ctx context.Context, id uint64) (*model.SecurityLog, error) {
	securityLog, err := s.securityLogRepo.GetSecurityLogById(ctx, id)
	if err != nil {
		return nil, err
	}
	if securityLog == nil {
		return nil, ErrSecurityLogNotFound
	}
	return securityLog, nil
}

func (s *SecurityLogServiceImpl) UpdateSecurityLog(ctx context.Context, id uint64, updateDTO *dto.UpdateSecurityLogDTO) (*model.SecurityLog, error) {
	if _, err := s.GetSecurityLog(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	setField(fields, "action", updateDTO.Action)
	setField(fields, "ip_address", updateDTO.IPAddress)

	if err := s.securityLogRepo.UpdateSecurityLog(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.GetSecurityLog(ctx, id)
}

func (s *SecurityLogServiceImpl) DeleteSecurityLog(ctx context.Context, id uint64) (*model.SecurityLog, error) {
	securityLog, err := s.GetSecurityLog(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = s.securityLogRepo.DeleteSecurityLog(ctx, id); err != nil {
		return nil, err
	}
	return securityLog, nil
}
