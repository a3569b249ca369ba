/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-10 15:36:40
 * @LastEditTime: 2026-02-10 15:36:40
 * @LastEditors: 安知鱼
 */
package constant

import "github.com/networkk/networkk-app/internal/pkg/event"

// EventTopic 事件主题类型
type EventTopic = event.Topic

// 导出事件主题常量，供外部使用
const (
	// 页面事件
	EventPageUpdated   EventTopic = event.PageUpdated
	EventPagePublished EventTopic = event.PagePublished
	EventPageDeleted   EventTopic = event.PageDeleted
	// 洞察文章事件
	EventInsightPublished EventTopic = event.InsightPublished
	EventInsightUpdated   EventTopic = event.InsightUpdated
	EventInsightDeleted   EventTopic = event.InsightDeleted
)
