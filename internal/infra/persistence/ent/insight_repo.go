/*
 * @Description: 洞察文章仓储实现
 * @Author: 安知鱼
 * @Date: 2026-02-10 16:41:09
 * @LastEditTime: 2026-02-10 16:41:09
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/networkk/networkk-app/ent"
	"github.com/networkk/networkk-app/ent/insight"
	"github.com/networkk/networkk-app/pkg/constant"
	"github.com/networkk/networkk-app/pkg/domain/model"
	"github.com/networkk/networkk-app/pkg/domain/repository"
	"github.com/networkk/networkk-app/pkg/idgen"
)

type insightRepo struct {
	db *ent.Client
}

// NewInsightRepo 是 insightRepo 的构造函数。
func NewInsightRepo(db *ent.Client) repository.InsightRepository {
	return &insightRepo{db: db}
}

// toModel 负责将 ent.Insight 实体转换为 model.Insight 领域模型。
func (r *insightRepo) toModel(i *ent.Insight) *model.Insight {
	if i == nil {
		return nil
	}

	publicID, err := idgen.GeneratePublicID(i.ID, idgen.EntityTypeInsight)
	if err != nil {
		log.Printf("[严重错误] 生成洞察文章公共ID失败: dbID=%d, error=%v", i.ID, err)
		return nil
	}

	m := &model.Insight{
		ID:            publicID,
		Slug:          i.Slug,
		Title:         i.Title,
		Excerpt:       i.Excerpt,
		Content:       i.ContentMd,
		ContentHTML:   i.ContentHTML,
		Status:        model.PageStatus(strings.ToLower(string(i.Status))),
		Category:      i.Category,
		Tags:          i.Tags,
		ReadingTime:   i.ReadingTime,
		SEO:           i.Seo,
		FeaturedImage: i.FeaturedImage,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
		PublishedAt:   i.PublishedAt,
	}
	if i.Author != nil {
		m.Author = *i.Author
	}
	return m
}

func (r *insightRepo) decodeID(publicID string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeInsight {
		return 0, constant.ErrInvalidPublicID
	}
	return dbID, nil
}

// Create 创建文章
func (r *insightRepo) Create(ctx context.Context, m *model.Insight) (*model.Insight, error) {
	creator := r.db.Insight.Create().
		SetSlug(m.Slug).
		SetTitle(m.Title).
		SetExcerpt(m.Excerpt).
		SetContentMd(m.Content).
		SetContentHTML(m.ContentHTML).
		SetStatus(insight.Status(strings.ToUpper(string(m.Status)))).
		SetCategory(m.Category).
		SetTags(m.Tags).
		SetReadingTime(m.ReadingTime).
		SetAuthor(&m.Author)

	if m.SEO != nil {
		creator.SetSeo(m.SEO)
	}
	if m.FeaturedImage != nil {
		creator.SetFeaturedImage(m.FeaturedImage)
	}

	entity, err := creator.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("slug '%s' 已存在: %w", m.Slug, constant.ErrSlugConflict)
		}
		return nil, fmt.Errorf("创建洞察文章失败: %w", err)
	}

	return r.toModel(entity), nil
}

// GetByID 根据公共 ID 获取文章
func (r *insightRepo) GetByID(ctx context.Context, publicID string) (*model.Insight, error) {
	dbID, err := r.decodeID(publicID)
	if err != nil {
		return nil, err
	}

	entity, err := r.db.Insight.Get(ctx, dbID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("获取洞察文章失败: %w", err)
	}

	return r.toModel(entity), nil
}

// GetBySlug 根据 slug 获取文章
func (r *insightRepo) GetBySlug(ctx context.Context, slug string) (*model.Insight, error) {
	entity, err := r.db.Insight.Query().
		Where(insight.Slug(slug)).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("获取洞察文章失败: %w", err)
	}

	return r.toModel(entity), nil
}

// List 分页列出文章
func (r *insightRepo) List(ctx context.Context, options *model.ListInsightsOptions) ([]*model.Insight, int, error) {
	query := r.db.Insight.Query()

	if options.Category != "" {
		query = query.Where(insight.Category(options.Category))
	}
	if options.Status != "" {
		query = query.Where(insight.StatusEQ(insight.Status(strings.ToUpper(string(options.Status)))))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("获取洞察文章总数失败: %w", err)
	}

	offset := (options.Page - 1) * options.PageSize
	entities, err := query.
		Order(ent.Desc(insight.FieldCreatedAt)).
		Offset(offset).
		Limit(options.PageSize).
		All(ctx)

	if err != nil {
		return nil, 0, fmt.Errorf("获取洞察文章列表失败: %w", err)
	}

	insights := make([]*model.Insight, len(entities))
	for i, entity := range entities {
		insights[i] = r.toModel(entity)
	}

	return insights, total, nil
}

// Update 整体覆盖写入文章
func (r *insightRepo) Update(ctx context.Context, m *model.Insight) (*model.Insight, error) {
	dbID, err := r.decodeID(m.ID)
	if err != nil {
		return nil, err
	}

	updater := r.db.Insight.UpdateOneID(dbID).
		SetSlug(m.Slug).
		SetTitle(m.Title).
		SetExcerpt(m.Excerpt).
		SetContentMd(m.Content).
		SetContentHTML(m.ContentHTML).
		SetStatus(insight.Status(strings.ToUpper(string(m.Status)))).
		SetCategory(m.Category).
		SetTags(m.Tags).
		SetReadingTime(m.ReadingTime).
		SetAuthor(&m.Author)

	if m.SEO != nil {
		updater.SetSeo(m.SEO)
	} else {
		updater.ClearSeo()
	}
	if m.FeaturedImage != nil {
		updater.SetFeaturedImage(m.FeaturedImage)
	} else {
		updater.ClearFeaturedImage()
	}
	if m.PublishedAt != nil {
		updater.SetPublishedAt(*m.PublishedAt)
	}

	entity, err := updater.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("slug '%s' 已存在: %w", m.Slug, constant.ErrSlugConflict)
		}
		return nil, fmt.Errorf("更新洞察文章失败: %w", err)
	}

	return r.toModel(entity), nil
}

// Delete 删除文章
func (r *insightRepo) Delete(ctx context.Context, publicID string) error {
	dbID, err := r.decodeID(publicID)
	if err != nil {
		return err
	}

	if err := r.db.Insight.DeleteOneID(dbID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("删除洞察文章失败: %w", err)
	}

	return nil
}

// ExistsBySlug 检查 slug 是否被其他文章占用
func (r *insightRepo) ExistsBySlug(ctx context.Context, slug string, excludeID string) (bool, error) {
	query := r.db.Insight.Query().Where(insight.Slug(slug))

	if excludeID != "" {
		dbID, err := r.decodeID(excludeID)
		if err != nil {
			return false, err
		}
		query = query.Where(insight.IDNEQ(dbID))
	}

	exists, err := query.Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("检查 slug 是否存在失败: %w", err)
	}

	return exists, nil
}

// ExistsBySeoTitle 检查 SEO 标题是否被其他文章占用。
// 与页面仓储相同，JSON 字段在内存中比较。
func (r *insightRepo) ExistsBySeoTitle(ctx context.Context, title string, excludeID string) (bool, error) {
	var excludeDBID uint
	if excludeID != "" {
		dbID, err := r.decodeID(excludeID)
		if err != nil {
			return false, err
		}
		excludeDBID = dbID
	}

	entities, err := r.db.Insight.Query().
		Where(insight.SeoNotNil()).
		Select(insight.FieldID, insight.FieldSeo).
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
