/*
 * @Description: 历史版本仓储实现
 * @Author: 安知鱼
 * @Date: 2026-02-10 16:55:30
 * @LastEditTime: 2026-02-10 16:55:30
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"
	"log"

	"github.com/networkk/networkk-app/ent"
	"github.com/networkk/networkk-app/ent/revision"
	"github.com/networkk/networkk-app/pkg/constant"
	"github.com/networkk/networkk-app/pkg/domain/model"
	"github.com/networkk/networkk-app/pkg/domain/repository"
	"github.com/networkk/networkk-app/pkg/idgen"
)

type revisionRepo struct {
	db *ent.Client
}

// NewRevisionRepo 是 revisionRepo 的构造函数。
func NewRevisionRepo(db *ent.Client) repository.RevisionRepository {
	return &revisionRepo{db: db}
}

// entityTypeOf 返回实体类型对应的公共 ID 类型标识。
func entityTypeOf(entityType string) uint64 {
	if entityType == model.RevisionEntityInsight {
		return idgen.EntityTypeInsight
	}
	return idgen.EntityTypePage
}

// toModel 负责将 ent.Revision 实体转换为 model.Revision 领域模型。
func (r *revisionRepo) toModel(h *ent.Revision) *model.Revision {
	if h == nil {
		return nil
	}

	publicID, err := idgen.GeneratePublicID(h.ID, idgen.EntityTypeRevision)
	if err != nil {
		log.Printf("[严重错误] 生成历史版本公共ID失败: dbID=%d, error=%v", h.ID, err)
		return nil
	}

	entityPublicID, err := idgen.GeneratePublicID(h.EntityID, entityTypeOf(h.EntityType))
	if err != nil {
		log.Printf("[严重错误] 生成实体公共ID失败: dbID=%d, error=%v", h.EntityID, err)
		return nil
	}

	return &model.Revision{
		ID:         publicID,
		EntityType: h.EntityType,
		EntityID:   entityPublicID,
		Version:    h.Version,
		Snapshot:   h.Snapshot,
		CreatedAt:  h.CreatedAt,
	}
}

// toListItem 转换为列表项（不含快照本体）
func (r *revisionRepo) toListItem(h *ent.Revision) model.RevisionListItem {
	publicID, _ := idgen.GeneratePublicID(h.ID, idgen.EntityTypeRevision)

	return model.RevisionListItem{
		ID:         publicID,
		EntityType: h.EntityType,
		Version:    h.Version,
		CreatedAt:  h.CreatedAt,
	}
}

// Create 追加一条历史版本记录，版本号取「最新版本 + 1」
func (r *revisionRepo) Create(ctx context.Context, params *model.CreateRevisionParams) (*model.Revision, error) {
	latest, err := r.GetLatestVersion(ctx, params.EntityType, params.EntityDBID)
	if err != nil {
		return nil, err
	}

	entity, err := r.db.Revision.Create().
		SetEntityType(params.EntityType).
		SetEntityID(params.EntityDBID).
		SetVersion(latest + 1).
		SetSnapshot(params.Snapshot).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("创建历史版本失败: %w", err)
	}

	log.Printf("[RevisionRepo] 创建历史版本成功: %s=%d, 版本=%d", params.EntityType, params.EntityDBID, latest+1)
	return r.toModel(entity), nil
}

// GetByEntityAndVersion 根据实体和版本号获取历史记录
func (r *revisionRepo) GetByEntityAndVersion(ctx context.Context, entityType string, entityDBID uint, version int) (*model.Revision, error) {
	entity, err := r.db.Revision.Query().
		Where(
			revision.EntityTypeEQ(entityType),
			revision.EntityIDEQ(entityDBID),
			revision.VersionEQ(version),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询历史版本失败: %w", err)
	}

	return r.toModel(entity), nil
}

// ListByEntity 分页获取某个实体的历史版本列表
func (r *revisionRepo) ListByEntity(ctx context.Context, entityType string, entityDBID uint, page, pageSize int) ([]model.RevisionListItem, int64, error) {
	total, err := r.db.Revision.Query().
		Where(
			revision.EntityTypeEQ(entityType),
			revision.EntityIDEQ(entityDBID),
		).
		Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询历史版本总数失败: %w", err)
	}

	// 按版本号倒序排列，最新版本在前
	entities, err := r.db.Revision.Query().
		Where(
			revision.EntityTypeEQ(entityType),
			revision.EntityIDEQ(entityDBID),
		).
		Order(ent.Desc(revision.FieldVersion)).
		Offset((page-1)*pageSize).
		Limit(pageSize).
		Select(
			revision.FieldID,
			revision.FieldEntityType,
			revision.FieldVersion,
			revision.FieldCreatedAt,
		).
		All(ctx)

	if err != nil {
		return nil, 0, fmt.Errorf("查询历史版本列表失败: %w", err)
	}

	items := make([]model.RevisionListItem, len(entities))
	for i, entity := range entities {
		items[i] = r.toListItem(entity)
	}

	return items, int64(total), nil
}

// GetLatestVersion 获取实体的最新版本号，没有历史记录时返回 0
func (r *revisionRepo) GetLatestVersion(ctx context.Context, entityType string, entityDBID uint) (int, error) {
	entity, err := r.db.Revision.Query().
		Where(
			revision.EntityTypeEQ(entityType),
			revision.EntityIDEQ(entityDBID),
		).
		Order(ent.Desc(revision.FieldVersion)).
		Select(revision.FieldVersion).
		First(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("查询最新版本号失败: %w", err)
	}

	return entity.Version, nil
}

// CountByEntity 获取实体的历史版本总数
func (r *revisionRepo) CountByEntity(ctx context.Context, entityType string, entityDBID uint) (int, error) {
	count, err := r.db.Revision.Query().
		Where(
			revision.EntityTypeEQ(entityType),
			revision.EntityIDEQ(entityDBID),
		).
		Count(ctx)

	if err != nil {
		return 0, fmt.Errorf("查询历史版本总数失败: %w", err)
	}

	return count, nil
}

// DeleteOldVersions 删除旧版本，仅保留最近 keepCount 个
func (r *revisionRepo) DeleteOldVersions(ctx context.Context, entityType string, entityDBID uint, keepCount int) error {
	if keepCount <= 0 {
		return nil
	}

	entities, err := r.db.Revision.Query().
		Where(
			revision.EntityTypeEQ(entityType),
			revision.EntityIDEQ(entityDBID),
		).
		Order(ent.Desc(revision.FieldVersion)).
		Limit(keepCount).
		Select(revision.FieldVersion).
		All(ctx)

	if err != nil {
		return fmt.Errorf("查询保留版本失败: %w", err)
	}

	if len(entities) < keepCount {
		// 版本数不足，无需删除
		return nil
	}

	minKeepVersion := entities[len(entities)-1].Version

	deleted, err := r.db.Revision.Delete().
		Where(
			revision.EntityTypeEQ(entityType),
			revision.EntityIDEQ(entityDBID),
			revision.VersionLT(minKeepVersion),
		).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("删除旧版本失败: %w", err)
	}

	if deleted > 0 {
		log.Printf("[RevisionRepo] 清理旧版本: %s=%d, 删除了%d个版本", entityType, entityDBID, deleted)
	}

	return nil
}

// ListEntitiesWithHistory 列出所有存在历史记录的实体 ID
func (r *revisionRepo) ListEntitiesWithHistory(ctx context.Context, entityType string) ([]uint, error) {
	raw, err := r.db.Revision.Query().
		Where(revision.EntityTypeEQ(entityType)).
		GroupBy(revision.FieldEntityID).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询存在历史记录的实体失败: %w", err)
	}

	ids := make([]uint, len(raw))
	for i, id := range raw {
		ids[i] = uint(id)
	}

	return ids, nil
}
