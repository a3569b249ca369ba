/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-13 14:18:22
 * @LastEditTime: 2026-03-05 11:33:54
 * @LastEditors: 安知鱼
 */
// internal/app/task/jobs.go
package task

// Job 是本包全部定时任务遵循的契约：
// 与 cron.Job 兼容，另带一个日志装饰器使用的可读名称。
type Job interface {
	Run()
	Name() string
}
