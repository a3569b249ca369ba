/*
 * @Description: cron 任务的通用装饰器
 * @Author: 安知鱼
 * @Date: 2026-02-13 14:20:41
 * @LastEditTime: 2026-03-05 11:31:07
 * @LastEditors: 安知鱼
 */
package task

import (
	"log/slog"
	"reflect"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// JobWrapper 是 cron.JobWrapper 的类型别名。
type JobWrapper = cron.JobWrapper

// NewLoggingWrapper 记录每次任务执行的起止与耗时。
// 每次执行带一个唯一的 run_id，串起同一次运行的所有日志行。
func NewLoggingWrapper(logger *slog.Logger) JobWrapper {
	return func(j cron.Job) cron.Job {
		return cron.FuncJob(func() {
			runLogger := logger.With(
				slog.String("job", jobNameOf(j)),
				slog.String("run_id", uuid.New().String()),
			)

			start := time.Now()
			runLogger.Info("cron job started")

			j.Run()

			runLogger.Info("cron job finished", slog.Duration("duration", time.Since(start)))
		})
	}
}

// NewPanicRecoveryWrapper 捕获任务内的 panic，记录堆栈后吞掉，
// 单个任务崩溃不允许拖垮整个进程。
func NewPanicRecoveryWrapper(logger *slog.Logger) JobWrapper {
	return func(j cron.Job) cron.Job {
		return cron.FuncJob(func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("cron job panicked",
						slog.String("job", jobNameOf(j)),
						slog.Any("panic", r),
						slog.String("stack_trace", string(debug.Stack())),
					)
				}
			}()

			j.Run()
		})
	}
}

// jobNameOf 优先取任务自带的 Name()，否则退回到反射出的类型名。
func jobNameOf(j cron.Job) string {
	if namedJob, ok := j.(interface{ Name() string }); ok {
		return namedJob.Name()
	}

	jobType := reflect.TypeOf(j)
	if jobType.Kind() == reflect.Ptr {
		return jobType.Elem().String()
	}
	return jobType.String()
}
