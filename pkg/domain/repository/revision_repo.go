/*
 * @Description: 文档历史版本仓储接口
 * @Author: 安知鱼
 * @Date: 2026-02-10 14:13:02
 * @LastEditTime: 2026-02-10 14:13:02
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/networkk/networkk-app/pkg/domain/model"
)

// RevisionRepository 定义了历史版本数据仓库的接口。
// 版本记录只追加；除保留策略清理任务外不存在删除路径。
type RevisionRepository interface {
	// Create 追加一条历史版本记录，版本号由实现方取「最新版本 + 1」
	Create(ctx context.Context, params *model.CreateRevisionParams) (*model.Revision, error)

	// GetByEntityAndVersion 根据实体和版本号获取历史记录
	GetByEntityAndVersion(ctx context.Context, entityType string, entityDBID uint, version int) (*model.Revision, error)

	// ListByEntity 分页获取某个实体的历史版本列表（不含快照本体）
	ListByEntity(ctx context.Context, entityType string, entityDBID uint, page, pageSize int) ([]model.RevisionListItem, int64, error)

	// GetLatestVersion 获取实体的最新版本号，没有历史记录时返回 0
	GetLatestVersion(ctx context.Context, entityType string, entityDBID uint) (int, error)

	// CountByEntity 获取实体的历史版本总数
	CountByEntity(ctx context.Context, entityType string, entityDBID uint) (int, error)

	// DeleteOldVersions 仅保留最近 keepCount 个版本（保留策略清理任务专用）
	DeleteOldVersions(ctx context.Context, entityType string, entityDBID uint, keepCount int) error

	// ListEntitiesWithHistory 列出所有存在历史记录的实体（清理任务遍历用）
	ListEntitiesWithHistory(ctx context.Context, entityType string) ([]uint, error)
}
