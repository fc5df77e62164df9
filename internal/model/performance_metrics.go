package model

import (
	"fmt"
	"math"
	"strconv"
)

type PerformanceMetrics struct {
	ID          uint64      `gorm:"primaryKey" json:"id"`
	ContentID   uint64      `gorm:"not null;index:idx_content_id" json:"content_id"`
	LoadTime    float64     `gorm:"not null" json:"load_time"`
	CacheStatus CacheStatus `gorm:"type:varchar(50);not null;index:idx_cache_status" json:"cache_status"`
	Optimized   bool        `gorm:"not null;index:idx_optimized" json:"optimized"`

	Content *Content `gorm:"foreignKey:ContentID;references:ID;constraint:OnDelete:CASCADE" json:"content,omitempty"`
}

func (PerformanceMetrics) TableName() string {
	return "performance_metrics"
}

func (p *PerformanceMetrics) String() string {
	return fmt.Sprintf("%s - %ss Load Time", contentTitle(p.Content, p.ContentID), formatSeconds(p.LoadTime))
}

func (p *PerformanceMetrics) PrimaryKey() uint64 {
	return p.ID
}

func (p *PerformanceMetrics) AdminValue(field string) any {
	switch field {
	case "content":
		return contentTitle(p.Content, p.ContentID)
	case "load_time":
		return p.LoadTime
	case "cache_status":
		return p.CacheStatus
	case "optimized":
		return p.Optimized
	}
	return nil
}

// formatSeconds 整数秒保留一位小数，如 2 -> "2.0"
func formatSeconds(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
