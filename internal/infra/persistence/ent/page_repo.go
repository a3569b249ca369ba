/*
 * @Description: 页面仓储实现
 * @Author: 安知鱼
 * @Date: 2026-02-10 16:20:14
 * @LastEditTime: 2026-02-10 16:20:14
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/networkk/networkk-app/ent"
	"github.com/networkk/networkk-app/ent/page"
	"github.com/networkk/networkk-app/pkg/constant"
	"github.com/networkk/networkk-app/pkg/domain/model"
	"github.com/networkk/networkk-app/pkg/domain/repository"
	"github.com/networkk/networkk-app/pkg/idgen"
)

type pageRepo struct {
	db *ent.Client
}

// NewPageRepo 是 pageRepo 的构造函数。
func NewPageRepo(db *ent.Client) repository.PageRepository {
	return &pageRepo{db: db}
}

// toModel 负责将 ent.Page 实体转换为 model.Page 领域模型。
func (r *pageRepo) toModel(p *ent.Page) *model.Page {
	if p == nil {
		return nil
	}

	publicID, err := idgen.GeneratePublicID(p.ID, idgen.EntityTypePage)
	if err != nil {
		log.Printf("[严重错误] 生成页面公共ID失败: dbID=%d, error=%v", p.ID, err)
		return nil
	}

	return &model.Page{
		ID:          publicID,
		Slug:        p.Slug,
		Title:       p.Title,
		Status:      model.PageStatus(strings.ToLower(string(p.Status))),
		SEO:         p.Seo,
		Blocks:      p.Blocks,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		PublishedAt: p.PublishedAt,
		ScheduledAt: p.ScheduledAt,
	}
}

func (r *pageRepo) decodeID(publicID string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypePage {
		return 0, constant.ErrInvalidPublicID
	}
	return dbID, nil
}

// Create 创建页面
func (r *pageRepo) Create(ctx context.Context, p *model.Page) (*model.Page, error) {
	creator := r.db.Page.Create().
		SetSlug(p.Slug).
		SetTitle(p.Title).
		SetStatus(page.Status(strings.ToUpper(string(p.Status)))).
		SetBlocks(p.Blocks)

	if p.SEO != nil {
		creator.SetSeo(p.SEO)
	}
	if p.ScheduledAt != nil {
		creator.SetScheduledAt(*p.ScheduledAt)
	}

	entity, err := creator.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("slug '%s' 已存在: %w", p.Slug, constant.ErrSlugConflict)
		}
		return nil, fmt.Errorf("创建页面失败: %w", err)
	}

	return r.toModel(entity), nil
}

// GetByID 根据公共 ID 获取页面
func (r *pageRepo) GetByID(ctx context.Context, publicID string) (*model.Page, error) {
	dbID, err := r.decodeID(publicID)
	if err != nil {
		return nil, err
	}

	entity, err := r.db.Page.Get(ctx, dbID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("获取页面失败: %w", err)
	}

	return r.toModel(entity), nil
}

// GetBySlug 根据 slug 获取页面
func (r *pageRepo) GetBySlug(ctx context.Context, slug string) (*model.Page, error) {
	entity, err := r.db.Page.Query().
		Where(page.Slug(slug)).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("获取页面失败: %w", err)
	}

	return r.toModel(entity), nil
}

// List 分页列出页面
func (r *pageRepo) List(ctx context.Context, options *model.ListPagesOptions) ([]*model.Page, int, error) {
	query := r.db.Page.Query()

	if options.Query != "" {
		query = query.Where(
			page.Or(
				page.TitleContainsFold(options.Query),
				page.SlugContainsFold(options.Query),
			),
		)
	}

	if options.Status != "" {
		query = query.Where(page.StatusEQ(page.Status(strings.ToUpper(string(options.Status)))))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("获取页面总数失败: %w", err)
	}

	offset := (options.Page - 1) * options.PageSize
	entities, err := query.
		Order(ent.Desc(page.FieldUpdatedAt)).
		Offset(offset).
		Limit(options.PageSize).
		All(ctx)

	if err != nil {
		return nil, 0, fmt.Errorf("获取页面列表失败: %w", err)
	}

	pages := make([]*model.Page, len(entities))
	for i, entity := range entities {
		pages[i] = r.toModel(entity)
	}

	return pages, total, nil
}

// Update 整体覆盖写入页面
func (r *pageRepo) Update(ctx context.Context, p *model.Page) (*model.Page, error) {
	dbID, err := r.decodeID(p.ID)
	if err != nil {
		return nil, err
	}

	updater := r.db.Page.UpdateOneID(dbID).
		SetSlug(p.Slug).
		SetTitle(p.Title).
		SetStatus(page.Status(strings.ToUpper(string(p.Status)))).
		SetBlocks(p.Blocks)

	if p.SEO != nil {
		updater.SetSeo(p.SEO)
	} else {
		updater.ClearSeo()
	}
	if p.PublishedAt != nil {
		updater.SetPublishedAt(*p.PublishedAt)
	}
	if p.ScheduledAt != nil {
		updater.SetScheduledAt(*p.ScheduledAt)
	} else {
		updater.ClearScheduledAt()
	}

	entity, err := updater.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("slug '%s' 已存在: %w", p.Slug, constant.ErrSlugConflict)
		}
		return nil, fmt.Errorf("更新页面失败: %w", err)
	}

	return r.toModel(entity), nil
}

// Delete 删除页面
func (r *pageRepo) Delete(ctx context.Context, publicID string) error {
	dbID, err := r.decodeID(publicID)
	if err != nil {
		return err
	}

	if err := r.db.Page.DeleteOneID(dbID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("删除页面失败: %w", err)
	}

	return nil
}

// ExistsBySlug 检查 slug 是否被其他页面占用
func (r *pageRepo) ExistsBySlug(ctx context.Context, slug string, excludeID string) (bool, error) {
	query := r.db.Page.Query().Where(page.Slug(slug))

	if excludeID != "" {
		dbID, err := r.decodeID(excludeID)
		if err != nil {
			return false, err
		}
		query = query.Where(page.IDNEQ(dbID))
	}

	exists, err := query.Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("检查 slug 是否存在失败: %w", err)
	}

	return exists, nil
}

// ExistsBySeoTitle 检查 SEO 标题是否被其他页面占用。
// seo 是 JSON 字段，无法下推到 SQL，这里拉取候选集后在内存中比较。
// 站点页面量级很小，全量扫描可接受。
func (r *pageRepo) ExistsBySeoTitle(ctx context.Context, title string, excludeID string) (bool, error) {
	var excludeDBID uint
	if excludeID != "" {
		dbID, err := r.decodeID(excludeID)
		if err != nil {
			return false, err
		}
		excludeDBID = dbID
	}

	entities, err := r.db.Page.Query().
		Where(page.SeoNotNil()).
		Select(page.FieldID, page.FieldSeo).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("检查 SEO 标题是否存在失败: %w", err)
	}

	for _, entity := range entities {
		if entity.ID == excludeDBID {
			continue
		}
		if entity.Seo != nil && entity.Seo.Title == title {
			return true, nil
		}
	}

	return false, nil
}

// ListScheduledBefore 列出所有处于 REVIEW 且定时发布时间早于 t 的页面
func (r *pageRepo) ListScheduledBefore(ctx context.Context, t time.Time) ([]*model.Page, error) {
	entities, err := r.db.Page.Query().
		Where(
			page.StatusEQ(page.StatusREVIEW),
			page.ScheduledAtNotNil(),
			page.ScheduledAtLTE(t),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询待定时发布页面失败: %w", err)
	}

	pages := make([]*model.Page, len(entities))
	for i, entity := range entities {
		pages[i] = r.toModel(entity)
	}

	return pages, nil
}
