package dto

import (
	"Parchment/internal/admin"
	"time"
)

// AdminEntityDTO 后台实体描述，供前端渲染列表页
type AdminEntityDTO struct {
	Name         string         `json:"name"`
	Verbose      string         `json:"verbose"`
	ListDisplay  []string       `json:"list_display"`
	ListFilter   []admin.Filter `json:"list_filter"`
	SearchFields []string       `json:"search_fields"`
}

type AdminListDTO struct {
	Entity   string         `json:"entity"`
	Columns  []string       `json:"columns"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	Rows     []*AdminRowDTO `json:"rows"`
}

type AdminRowDTO struct {
	Display string         `json:"display"`
	Values  map[string]any `json:"values"`
}

// AdminLogDTO 后台操作日志
type AdminLogDTO struct {
	ID            string    `json:"id"`
	ActionFlag    string    `json:"action_flag"`
	Entity        string    `json:"entity"`
	ObjectID      uint64    `json:"object_id"`
	ObjectRepr    string    `json:"object_repr"`
	ChangeMessage string    `json:"change_message"`
	Actor         string    `json:"actor"`
	TraceID       string    `json:"trace_id"`
	ActionTime    time.Time `json:"action_time"`
}

type AdminLogQueryDTO struct {
	Entity string `form:"entity" validate:"omitempty,max=50"`
	Limit  int64  `form:"limit" validate:"omitempty,min=1,max=200"`
	Offset int64  `form:"offset" validate:"omitempty,min=0"`
}
