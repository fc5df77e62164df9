package dto

import "Parchment/internal/model"

type CreatePerformanceDTO struct {
	ContentID   uint64            `json:"content_id" validate:"required"`
	LoadTime    float64           `json:"load_time" validate:"gte=0"`
	CacheStatus model.CacheStatus `json:"cache_status" validate:"required,oneof=hit miss"`
	Optimized   bool              `json:"optimized"`
}

type UpdatePerformanceDTO struct {
	ContentID   *uint64            `json:"content_id" validate:"omitempty,gt=0"`
	LoadTime    *float64           `json:"load_time" validate:"omitempty,gte=0"`
	CacheStatus *model.CacheStatus `json:"cache_status" validate:"omitempty,oneof=hit miss"`
	Optimized   *bool              `json:"optimized"`
}
