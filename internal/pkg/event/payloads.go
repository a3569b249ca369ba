/*
 * @Description: 各事件主题的负载结构
 * @Author: 安知鱼
 * @Date: 2026-03-05 11:08:26
 */
package event

import "github.com/networkk/networkk-app/pkg/domain/model"

// PageUpdatedPayload 随 PageUpdated 事件携带更新后的页面与更新前的 slug。
// slug 被重命名时，订阅方需要连同旧 slug 下的缓存一起失效。
type PageUpdatedPayload struct {
	Page     *model.Page
	PrevSlug string
}

// InsightUpdatedPayload 与 PageUpdatedPayload 镜像。
type InsightUpdatedPayload struct {
	Insight  *model.Insight
	PrevSlug string
}
