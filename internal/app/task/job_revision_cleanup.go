/*
 * @Description: 历史版本清理定时任务
 * @Author: 安知鱼
 * @Date: 2026-02-13 14:10:45
 */
package task

import (
	"context"
	"log"

	revision_service "github.com/networkk/networkk-app/pkg/service/revision"
)

// RevisionCleanupJob 负责按配置的保留策略清理文档的旧历史版本
// KeepCount 为 0 时任务直接空转，所有版本永久保留
type RevisionCleanupJob struct {
	revisionService revision_service.Service
}

// NewRevisionCleanupJob 是任务的构造函数
func NewRevisionCleanupJob(revisionService revision_service.Service) *RevisionCleanupJob {
	return &RevisionCleanupJob{
		revisionService: revisionService,
	}
}

// Run 是 Job 接口要求实现的方法
func (j *RevisionCleanupJob) Run() {
	processed, err := j.revisionService.Cleanup(context.Background())
	if err != nil {
		log.Printf("任务 '%s' 在执行业务逻辑时捕获到错误: %v", j.Name(), err)
	} else {
		log.Printf("任务 '%s' 业务逻辑执行完毕，共处理了 %d 个文档的历史版本。", j.Name(), processed)
	}
}

// Name 方法让日志包装器可以打印出更有意义的任务名
func (j *RevisionCleanupJob) Name() string {
	return "RevisionCleanupJob"
}
