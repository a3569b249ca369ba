/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-13 14:15:32
 * @LastEditTime: 2026-02-25 21:04:08
 * @LastEditors: 安知鱼
 */
package task

import (
	"log/slog"
	"os"

	"github.com/networkk/networkk-app/pkg/service/page"
	revision_service "github.com/networkk/networkk-app/pkg/service/revision"

	"github.com/robfig/cron/v3"
)

// Scheduler 封装了 cron 实例和其依赖。
// 它是整个定时任务模块的核心协调者，负责任务的注册、启动和停止。
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger

	pageSvc     page.Service
	revisionSvc revision_service.Service
}

// NewScheduler 是 Scheduler 的构造函数。
func NewScheduler(pageSvc page.Service, revisionSvc revision_service.Service) *Scheduler {
	slogHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(slogHandler).With("system", "cron")

	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(
			NewPanicRecoveryWrapper(logger),
			NewLoggingWrapper(logger),
			cron.DelayIfStillRunning(cron.DefaultLogger),
		),
	)

	return &Scheduler{
		cron:        c,
		logger:      logger,
		pageSvc:     pageSvc,
		revisionSvc: revisionSvc,
	}
}

// RegisterJobs 在调度器中注册所有定义好的定时任务。
func (s *Scheduler) RegisterJobs() {
	s.logger.Info("Registering all periodic jobs...")

	// --- 任务1: 定时发布页面，每分钟检查一次 ---
	scheduledPublishJob := NewScheduledPublishJob(s.pageSvc, s.logger)
	_, err := s.cron.AddJob("0 * * * * *", scheduledPublishJob)
	if err != nil {
		s.logger.Error("Failed to add 'ScheduledPublishJob'", slog.Any("error", err))
		os.Exit(1)
	}
	s.logger.Info("-> Successfully registered 'ScheduledPublishJob'", "schedule", "every minute")

	// --- 任务2: 按保留策略清理历史版本 ---
	if s.revisionSvc != nil {
		revisionCleanupJob := NewRevisionCleanupJob(s.revisionSvc)
		_, err = s.cron.AddJob("0 30 3 * * *", revisionCleanupJob)
		if err != nil {
			s.logger.Error("Failed to add 'RevisionCleanupJob'", slog.Any("error", err))
			os.Exit(1)
		}
		s.logger.Info("-> Successfully registered 'RevisionCleanupJob'", "schedule", "every day at 3:30:00 AM")
	}

	s.logger.Info("All periodic jobs registered.")
}

// Start 启动 cron 调度器。
func (s *Scheduler) Start() {
	s.logger.Info("Cron scheduler started.")
	s.cron.Start()
}

// Stop 优雅地停止 cron 调度器。
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler gracefully stopped.")
}
