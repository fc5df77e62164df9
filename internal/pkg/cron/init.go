package cron

import (
	"fmt"
	log "log/slog"
)

// InitCron 注册统计刷新与媒体清理任务并启动调度，全部任务被禁用时不启动引擎
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		return fmt.Errorf("register cron jobs: %w", err)
	}
	enabled := len(mgr.engine.Entries())
	if enabled == 0 {
		log.Warn("no cron job enabled, scheduler not started")
		return nil
	}
	log.Info("Cron Jobs starting...", "enabled", enabled)
	mgr.Start()
	return nil
}
