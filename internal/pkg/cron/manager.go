package cron

import (
	"Parchment/internal/api/config"
	"Parchment/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine            *cron.Cron
	cfg               config.CronConfig
	analyticsFlushJob *job.AnalyticsFlushJob
	mediaCleanupJob   *job.MediaCleanupJob
}

func NewCronManager(cfg config.CronConfig, analyticsFlushJob *job.AnalyticsFlushJob, mediaCleanupJob *job.MediaCleanupJob) *Manager {
	return &Manager{
		engine:            cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		cfg:               cfg,
		analyticsFlushJob: analyticsFlushJob,
		mediaCleanupJob:   mediaCleanupJob,
	}
}

// RegisterJobs 注册定时任务，表达式为空的任务不启用
func (s *Manager) RegisterJobs() error {
	jobs := []struct {
		name string
		spec string
		job  cron.Job
	}{
		{"analytics_flush", s.cfg.AnalyticsFlush, s.analyticsFlushJob},
		{"media_cleanup", s.cfg.MediaCleanup, s.mediaCleanupJob},
	}
	for _, j := range jobs {
		if j.spec == "" {
			log.Warn("cron job disabled", "job", j.name)
			continue
		}
		if _, err := s.engine.AddJob(j.spec, j.job); err != nil {
			return err
		}
		log.Info("cron job registered", "job", j.name, "spec", j.spec)
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

// Stop 停止调度并等待运行中的任务结束
func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
