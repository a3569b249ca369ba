/*
 * @Description: 页面（Page）聚合根模型与 DTO
 * @Author: 安知鱼
 * @Date: 2026-02-10 10:40:55
 * @LastEditTime: 2026-02-24 11:18:30
 * @LastEditors: 安知鱼
 */
package model

import (
	"regexp"
	"time"
)

// PageStatus 页面发布状态机的状态。
type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusReview    PageStatus = "review"
	PageStatusPublished PageStatus = "published"
	PageStatusArchived  PageStatus = "archived"
)

// SlugPattern 是 slug 的合法形式：小写字母、数字、连字符。
var SlugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// pageTransitions 定义状态机的合法边：
// draft -> review -> published -> archived，另有任意状态 -> draft。
// 小团队场景下草稿可以跳过审核直接发布。
var pageTransitions = map[PageStatus][]PageStatus{
	PageStatusDraft:     {PageStatusReview, PageStatusPublished},
	PageStatusReview:    {PageStatusPublished, PageStatusDraft},
	PageStatusPublished: {PageStatusArchived, PageStatusPublished, PageStatusDraft},
	PageStatusArchived:  {PageStatusDraft},
}

// IsValidPageStatus 判断字符串是否是已知状态。
func IsValidPageStatus(s PageStatus) bool {
	switch s {
	case PageStatusDraft, PageStatusReview, PageStatusPublished, PageStatusArchived:
		return true
	}
	return false
}

// CanTransition 判断 from -> to 是否是状态机的合法边。
// 重复发布（published -> published）是刻意允许的，用于编辑强制刷新缓存。
func CanTransition(from, to PageStatus) bool {
	if to == PageStatusDraft {
		return true
	}
	for _, next := range pageTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// 页面标题长度边界。
const (
	PageTitleMinLen = 10
	PageTitleMaxLen = 90
)

// Page 是页面的核心领域模型，业务逻辑（Service 层）围绕它进行。
// ID 是 sqids 公共 ID；营销站点只读取 published 快照。
type Page struct {
	ID          string          `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Status      PageStatus      `json:"status"`
	SEO         *SEO            `json:"seo"`
	Blocks      []BlockInstance `json:"blocks"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	PublishedAt *time.Time      `json:"publishedAt,omitempty"` // 仅在发布后有值
	ScheduledAt *time.Time      `json:"scheduledAt,omitempty"` // 定时发布时间
}

// CreatePageRequest 创建页面的请求体。
type CreatePageRequest struct {
	Slug        string          `json:"slug" binding:"required"`
	Title       string          `json:"title" binding:"required"`
	SEO         *SEO            `json:"seo"`
	Blocks      []BlockInstance `json:"blocks"`
	ScheduledAt *string         `json:"scheduledAt,omitempty"` // RFC3339
}

// UpdatePageRequest 更新页面的请求体。
// 浅合并：只有非 nil 的顶层字段会被替换，Blocks 整体替换而不做深合并。
type UpdatePageRequest struct {
	Slug        *string          `json:"slug,omitempty"`
	Title       *string          `json:"title,omitempty"`
	SEO         *SEO             `json:"seo,omitempty"`
	Blocks      *[]BlockInstance `json:"blocks,omitempty"`
	ScheduledAt *string          `json:"scheduledAt,omitempty"` // 空字符串表示取消定时发布
}

// TransitionPageRequest 状态流转请求体。
type TransitionPageRequest struct {
	Status PageStatus `json:"status" binding:"required"`
}

// ListPagesOptions 分页列出页面的选项。
type ListPagesOptions struct {
	Page     int
	PageSize int
	Query    string     // 标题 / slug 模糊搜索
	Status   PageStatus // 按状态过滤，空表示全部
}

// PageListResponse 页面列表的标准 API 响应结构。
type PageListResponse struct {
	List     []*Page `json:"list"`
	Total    int     `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
}
