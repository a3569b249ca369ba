/*
 * @Description: 文档历史版本服务，负责历史查询、回滚与保留策略清理
 * @Author: 安知鱼
 * @Date: 2026-02-11 15:21:08
 * @LastEditTime: 2026-02-25 17:40:33
 * @LastEditors: 安知鱼
 */
package revision

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/networkk/networkk-app/pkg/config"
	"github.com/networkk/networkk-app/pkg/constant"
	"github.com/networkk/networkk-app/pkg/domain/model"
	"github.com/networkk/networkk-app/pkg/domain/repository"
	"github.com/networkk/networkk-app/pkg/idgen"
)

// Service 历史版本服务接口。
type Service interface {
	// List 分页列出某个文档的历史版本（不含快照本体）
	List(ctx context.Context, entityType, publicID string, page, pageSize int) (*model.RevisionListResponse, error)

	// Get 获取某个文档指定版本的完整快照
	Get(ctx context.Context, entityType, publicID string, version int) (*model.Revision, error)

	// Restore 回滚文档到指定版本。回滚本身也是一次变更：
	// 先把「当前」状态写成新版本，再用目标快照覆盖文档，两步同一事务。
	Restore(ctx context.Context, entityType, publicID string, version int) error

	// Cleanup 按保留策略清理历史版本，返回处理过的文档数。
	// keepCount 为 0 时不清理（永久保留）。
	Cleanup(ctx context.Context) (int, error)
}

type service struct {
	txManager    repository.TransactionManager
	revisionRepo repository.RevisionRepository
	cfg          *config.Config
}

// NewService 创建历史版本服务。
func NewService(txManager repository.TransactionManager, revisionRepo repository.RevisionRepository, cfg *config.Config) Service {
	return &service{txManager: txManager, revisionRepo: revisionRepo, cfg: cfg}
}

// decodeEntity 把对外的 (entityType, publicID) 解析为持久层坐标。
func decodeEntity(entityType, publicID string) (uint, error) {
	var want uint64
	switch entityType {
	case model.RevisionEntityPage:
		want = idgen.EntityTypePage
	case model.RevisionEntityInsight:
		want = idgen.EntityTypeInsight
	default:
		return 0, fmt.Errorf("未知实体类型 %q: %w", entityType, constant.ErrBadRequest)
	}

	dbID, got, err := idgen.DecodePublicID(publicID)
	if err != nil || got != want {
		return 0, constant.ErrInvalidPublicID
	}
	return dbID, nil
}

func (s *service) List(ctx context.Context, entityType, publicID string, page, pageSize int) (*model.RevisionListResponse, error) {
	dbID, err := decodeEntity(entityType, publicID)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	items, total, err := s.revisionRepo.ListByEntity(ctx, entityType, dbID, page, pageSize)
	if err != nil {
		return nil, err
	}

	return &model.RevisionListResponse{
		List:     items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *service) Get(ctx context.Context, entityType, publicID string, version int) (*model.Revision, error) {
	dbID, err := decodeEntity(entityType, publicID)
	if err != nil {
		return nil, err
	}

	rev, err := s.revisionRepo.GetByEntityAndVersion(ctx, entityType, dbID, version)
	if err != nil {
		return nil, err
	}
	rev.EntityID = publicID
	return rev, nil
}

func (s *service) Restore(ctx context.Context, entityType, publicID string, version int) error {
	dbID, err := decodeEntity(entityType, publicID)
	if err != nil {
		return err
	}

	target, err := s.revisionRepo.GetByEntityAndVersion(ctx, entityType, dbID, version)
	if err != nil {
		return err
	}

	switch entityType {
	case model.RevisionEntityPage:
		return s.restorePage(ctx, publicID, dbID, target)
	case model.RevisionEntityInsight:
		return s.restoreInsight(ctx, publicID, dbID, target)
	}
	return constant.ErrBadRequest
}

func (s *service) restorePage(ctx context.Context, publicID string, dbID uint, target *model.Revision) error {
	var restored model.Page
	if err := json.Unmarshal(target.Snapshot, &restored); err != nil {
		return fmt.Errorf("解析版本快照失败: %w", err)
	}
	// 身份字段以当前文档为准，快照可能来自 slug 变更之前
	restored.ID = publicID

	return s.txManager.Do(ctx, func(repos repository.Repositories) error {
		current, err := repos.Page.GetByID(ctx, publicID)
		if err != nil {
			return err
		}
		snapshot, err := json.Marshal(current)
		if err != nil {
			return fmt.Errorf("序列化当前状态失败: %w", err)
		}

		if _, err := repos.Revision.Create(ctx, &model.CreateRevisionParams{
			EntityType: model.RevisionEntityPage,
			EntityDBID: dbID,
			Snapshot:   snapshot,
		}); err != nil {
			return err
		}

		_, err = repos.Page.Update(ctx, &restored)
		return err
	})
}

func (s *service) restoreInsight(ctx context.Context, publicID string, dbID uint, target *model.Revision) error {
	var restored model.Insight
	if err := json.Unmarshal(target.Snapshot, &restored); err != nil {
		return fmt.Errorf("解析版本快照失败: %w", err)
	}
	restored.ID = publicID

	return s.txManager.Do(ctx, func(repos repository.Repositories) error {
		current, err := repos.Insight.GetByID(ctx, publicID)
		if err != nil {
			return err
		}
		snapshot, err := json.Marshal(current)
		if err != nil {
			return fmt.Errorf("序列化当前状态失败: %w", err)
		}

		if _, err := repos.Revision.Create(ctx, &model.CreateRevisionParams{
			EntityType: model.RevisionEntityInsight,
			EntityDBID: dbID,
			Snapshot:   snapshot,
		}); err != nil {
			return err
		}

		_, err = repos.Insight.Update(ctx, &restored)
		return err
	})
}

func (s *service) Cleanup(ctx context.Context) (int, error) {
	keepCount := s.cfg.GetInt(config.KeyRevisionKeep)
	if keepCount <= 0 {
		return 0, nil
	}

	processed := 0
	for _, entityType := range []string{model.RevisionEntityPage, model.RevisionEntityInsight} {
		ids, err := s.revisionRepo.ListEntitiesWithHistory(ctx, entityType)
		if err != nil {
			return processed, fmt.Errorf("遍历 %s 历史实体失败: %w", entityType, err)
		}
		for _, dbID := range ids {
			if err := s.revisionRepo.DeleteOldVersions(ctx, entityType, dbID, keepCount); err != nil {
				log.Printf("[RevisionService] 清理历史版本失败: type=%s, id=%d, error=%v", entityType, dbID, err)
				continue
			}
			processed++
		}
	}
	return processed, nil
}
