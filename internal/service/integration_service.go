package service

import (
	"Parchment/internal/api/dto"
	"Parchment/internal/model"
	"Parchment/internal/repository"
	"context"
)

type IntegrationService interface {
	CreateIntegration(ctx context.Context, dto *dto.CreateIntegrationDTO) (*model.Integration, error)
	GetIntegration(ctx context.Context, id uint64) (*model.Integration, error)
	UpdateIntegration(ctx context.Context, id uint64, dto *dto.UpdateIntegrationDTO) (*model.Integration, error)
	DeleteIntegration(ctx context.Context, id uint64) (*model.Integration, error)
}

type IntegrationServiceImpl struct {
	integrationRepo repository.IntegrationRepo
}

func NewIntegrationService(integrationRepo repository.IntegrationRepo) IntegrationService {
	return &IntegrationServiceImpl{integrationRepo: integrationRepo}
}

func (s *IntegrationServiceImpl) CreateIntegration(ctx context.Context, createDTO *dto.CreateIntegrationDTO) (*model.Integration, error) {
	integration := &model.Integration{
		Name:     createDTO.Name,
		APIKey:   createDTO.APIKey,
		IsActive: createDTO.IsActive == nil || *createDTO.IsActive,
	}
	if err := s.integrationRepo.CreateIntegration(ctx, integration); err != nil {
		return nil, err
	}
	return integration, nil
}

func (s *IntegrationServiceImpl) GetIntegration(ctx context.Context, id uint64) (*model.Integration, error) {
	integration, err := s.integrationRepo.GetIntegrationById(ctx, id)
	if err != nil {
		return nil, err
	}
	if integration == nil {
		return nil, ErrIntegrationNotFound
	}
	return integration, nil
}

func (s *IntegrationServiceImpl) UpdateIntegration(ctx context.Context, id uint64, updateDTO *dto.UpdateIntegrationDTO) (*model.Integration, error) {
	if _, err := s.GetIntegration(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	setField(fields, "name", updateDTO.Name)
	setField(fields, "api_key", updateDTO.APIKey)
	setField(fields, "is_active", updateDTO.IsActive)

	if err := s.integrationRepo.UpdateIntegration(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.GetIntegration(ctx, id)
}

func (s *IntegrationServiceImpl) DeleteIntegration(ctx context.Context, id uint64) (*model.Integration, error) {
	integration, err := s.GetIntegration(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = s.integrationRepo.DeleteIntegration(ctx, id); err != nil {
		return nil, err
	}
	return integration, nil
}
