/*
 * @Description: 洞察文章（Insight）聚合模型与 DTO
 * @Author: 安知鱼
 * @Date: 2026-02-10 11:02:13
 * @LastEditTime: 2026-02-24 11:20:05
 * @LastEditors: 安知鱼
 */
package model

import "time"

// 摘要长度边界。
const (
	InsightExcerptMinLen = 50
	InsightExcerptMaxLen = 200
)

// InsightAuthor 文章作者信息（冗余存储在文档内，不关联用户表）。
type InsightAuthor struct {
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
	Image string `json:"image,omitempty"`
}

// FeaturedImage 文章头图。
type FeaturedImage struct {
	URL     string `json:"url"`
	Alt     string `json:"alt"`
	Caption string `json:"caption,omitempty"`
}

// Insight 是洞察（博客）文章的核心领域模型。
// Content 存 Markdown 原文，ContentHTML 是渲染并消毒后的结果，写入时同步生成。
type Insight struct {
	ID            string         `json:"id"`
	Slug          string         `json:"slug"`
	Title         string         `json:"title"`
	Excerpt       string         `json:"excerpt"`
	Content       string         `json:"content"`
	ContentHTML   string         `json:"contentHtml,omitempty"`
	Author        InsightAuthor  `json:"author"`
	Status        PageStatus     `json:"status"`
	Category      string         `json:"category"`
	Tags          []string       `json:"tags"`
	ReadingTime   int            `json:"readingTime"` // 分钟
	SEO           *SEO           `json:"seo"`
	FeaturedImage *FeaturedImage `json:"featuredImage,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	PublishedAt   *time.Time     `json:"publishedAt,omitempty"`
}

// CreateInsightRequest 创建文章的请求体。
type CreateInsightRequest struct {
	Slug          string         `json:"slug" binding:"required"`
	Title         string         `json:"title" binding:"required"`
	Excerpt       string         `json:"excerpt"`
	Content       string         `json:"content"`
	Author        InsightAuthor  `json:"author"`
	Category      string         `json:"category"`
	Tags          []string       `json:"tags"`
	SEO           *SEO           `json:"seo"`
	FeaturedImage *FeaturedImage `json:"featuredImage,omitempty"`
}

// UpdateInsightRequest 更新文章的请求体，浅合并语义与页面一致。
type UpdateInsightRequest struct {
	Slug          *string        `json:"slug,omitempty"`
	Title         *string        `json:"title,omitempty"`
	Excerpt       *string        `json:"excerpt,omitempty"`
	Content       *string        `json:"content,omitempty"`
	Author        *InsightAuthor `json:"author,omitempty"`
	Category      *string        `json:"category,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
	SEO           *SEO           `json:"seo,omitempty"`
	FeaturedImage *FeaturedImage `json:"featuredImage,omitempty"`
}

// ListInsightsOptions 分页列出文章的选项。
type ListInsightsOptions struct {
	Page     int
	PageSize int
	Category string
	Status   PageStatus
}

// InsightListResponse 文章列表的标准 API 响应结构。
type InsightListResponse struct {
	List     []*Insight `json:"list"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
}
