/*
 * @Description: 页面仓储接口
 * @Author: 安知鱼
 * @Date: 2026-02-10 14:05:33
 * @LastEditTime: 2026-02-24 11:26:08
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"
	"time"

	"github.com/networkk/networkk-app/pkg/domain/model"
)

// PageRepository 定义了页面数据仓库的接口。
// 实现方对找不到的记录统一返回 constant.ErrNotFound（或其包装）。
type PageRepository interface {
	// Create 创建页面，返回携带公共 ID 的完整模型
	Create(ctx context.Context, page *model.Page) (*model.Page, error)

	// GetByID 根据公共 ID 获取页面
	GetByID(ctx context.Context, publicID string) (*model.Page, error)

	// GetBySlug 根据 slug 获取页面
	GetBySlug(ctx context.Context, slug string) (*model.Page, error)

	// List 分页列出页面
	List(ctx context.Context, options *model.ListPagesOptions) ([]*model.Page, int, error)

	// Update 整体覆盖写入页面（浅合并在 Service 层完成）
	Update(ctx context.Context, page *model.Page) (*model.Page, error)

	// Delete 删除页面
	Delete(ctx context.Context, publicID string) error

	// ExistsBySlug 检查 slug 是否被其他页面占用
	ExistsBySlug(ctx context.Context, slug string, excludeID string) (bool, error)

	// ExistsBySeoTitle 检查 SEO 标题是否被其他页面占用（站点级唯一性判定的一半）
	ExistsBySeoTitle(ctx context.Context, title string, excludeID string) (bool, error)

	// ListScheduledBefore 列出所有处于 review 且定时发布时间早于 t 的页面
	ListScheduledBefore(ctx context.Context, t time.Time) ([]*model.Page, error)
}
