package database

import (
	"Parchment/internal/model"
	"fmt"
	log "log/slog"

	"gorm.io/gorm"
)

// Migrate 按依赖顺序建表，外键的级联规则由模型上的 constraint 标签声明
func Migrate(db *gorm.DB) error {
	err := db.Set("gorm:table_options", "ENGINE=InnoDB DEFAULT CHARSET=utf8mb4").
		AutoMigrate(model.All()...)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	log.Info("Database schema migrated.", "tables", len(model.All()))
	return nil
}
