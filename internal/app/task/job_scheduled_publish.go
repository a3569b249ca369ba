/*
 * @Description: 定时发布页面任务
 * @Author: 安知鱼
 * @Date: 2026-02-13 14:02:18
 */
package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/networkk/networkk-app/pkg/service/page"
)

// ScheduledPublishJob 是定时发布页面的任务
// 每分钟执行一次，发布所有定时发布时间已到的页面
type ScheduledPublishJob struct {
	pageSvc page.Service
	logger  *slog.Logger
}

// NewScheduledPublishJob 创建定时发布任务实例
func NewScheduledPublishJob(pageSvc page.Service, logger *slog.Logger) *ScheduledPublishJob {
	return &ScheduledPublishJob{
		pageSvc: pageSvc,
		logger:  logger,
	}
}

// Name 返回任务名称
func (j *ScheduledPublishJob) Name() string {
	return "ScheduledPublishJob"
}

// Run 是 Job 接口要求实现的方法
func (j *ScheduledPublishJob) Run() {
	published, err := j.pageSvc.PublishDue(context.Background(), time.Now())
	if err != nil {
		j.logger.Error("定时发布执行失败", slog.Any("error", err))
		return
	}
	if published > 0 {
		j.logger.Info("定时发布完成", slog.Int("published", published))
	}
}
