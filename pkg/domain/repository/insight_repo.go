/*
 * @Description: 洞察文章仓储接口
 * @Author: 安知鱼
 * @Date: 2026-02-10 14:09:21
 * @LastEditTime: 2026-02-10 14:09:21
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/networkk/networkk-app/pkg/domain/model"
)

// InsightRepository 定义了洞察文章数据仓库的接口。
type InsightRepository interface {
	// Create 创建文章
	Create(ctx context.Context, insight *model.Insight) (*model.Insight, error)

	// GetByID 根据公共 ID 获取文章
	GetByID(ctx context.Context, publicID string) (*model.Insight, error)

	// GetBySlug 根据 slug 获取文章
	GetBySlug(ctx context.Context, slug string) (*model.Insight, error)

	// List 分页列出文章
	List(ctx context.Context, options *model.ListInsightsOptions) ([]*model.Insight, int, error)

	// Update 整体覆盖写入文章
	Update(ctx context.Context, insight *model.Insight) (*model.Insight, error)

	// Delete 删除文章
	Delete(ctx context.Context, publicID string) error

	// ExistsBySlug 检查 slug 是否被其他文章占用
	ExistsBySlug(ctx context.Context, slug string, excludeID string) (bool, error)

	// ExistsBySeoTitle 检查 SEO 标题是否被其他文章占用
	ExistsBySeoTitle(ctx context.Context, title string, excludeID string) (bool, error)
}
