package dto

import (
	"Parchment/internal/model"
	"time"
)

type CreateContentDTO struct {
	Title       string              `json:"title" validate:"required,max=255"`
	Slug        string              `json:"slug" validate:"omitempty,max=50,slug"`
	Body        string              `json:"body"`
	AuthorID    uint64              `json:"author_id" validate:"required"`
	Status      model.ContentStatus `json:"status" validate:"omitempty,oneof=draft pending published archived"`
	PublishedAt *time.Time          `json:"published_at"`
}

type UpdateContentDTO struct {
	Title       *string              `json:"title" validate:"omitempty,max=255"`
	Slug        *string              `json:"slug" validate:"omitempty,max=50,slug"`
	Body        *string              `json:"body"`
	AuthorID    *uint64              `json:"author_id" validate:"omitempty,gt=0"`
	Status      *model.ContentStatus `json:"status" validate:"omitempty,oneof=draft pending published archived"`
	PublishedAt *time.Time           `json:"published_at"`
}

// ContentSearchDTO 已发布内容全文检索
type ContentSearchDTO struct {
	Query string `form:"q" validate:"required,max=100"`
	Page  int    `form:"page" validate:"omitempty,min=1"`
	Size  int    `form:"size" validate:"omitempty,min=1,max=50"`
}

type ContentSearchResultDTO struct {
	Total int64                `json:"total"`
	Items []*ContentSummaryDTO `json:"items"`
}

type ContentSummaryDTO struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	AuthorID    uint64     `json:"author_id"`
	PublishedAt *time.Time `json:"published_at"`
}
