package dto

import "Parchment/internal/model"

type CreateIntegrationDTO struct {
	Name     model.IntegrationName `json:"name" validate:"required,oneof=google_analytics crm social_media"`
	APIKey   string                `json:"api_key" validate:"required,max=255"`
	IsActive *bool                 `json:"is_active"`
}

type UpdateIntegrationDTO struct {
	Name     *model.IntegrationName `json:"name" validate:"omitempty,oneof=google_analytics crm social_media"`
	APIKey   *string                `json:"api_key" validate:"omitempty,max=255"`
	IsActive *bool                  `json:"is_active"`
}
