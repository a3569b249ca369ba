/*
 * @Description: 洞察文章服务，负责文章 CRUD、Markdown 渲染与发布
 * @Author: 安知鱼
 * @Date: 2026-02-11 09:32:40
 * @LastEditTime: 2026-02-25 16:08:12
 * @LastEditors: 安知鱼
 */
package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/networkk/networkk-app/internal/pkg/event"
	"github.com/networkk/networkk-app/pkg/constant"
	"github.com/networkk/networkk-app/pkg/domain/model"
	"github.com/networkk/networkk-app/pkg/domain/repository"
	"github.com/networkk/networkk-app/pkg/idgen"
	"github.com/networkk/networkk-app/pkg/service/builder"
	"github.com/networkk/networkk-app/pkg/service/parser"
)

// Service 洞察文章服务接口。
// 版本纪律与页面一致：每次变更先在事务内写「变更前」快照，再覆盖写文档。
type Service interface {
	// Create 创建文章，校验不通过时返回问题列表
	Create(ctx context.Context, req *model.CreateInsightRequest) (*model.Insight, []model.ValidationIssue, error)

	// GetByID 根据公共 ID 获取文章
	GetByID(ctx context.Context, id string) (*model.Insight, error)

	// GetBySlug 根据 slug 获取文章
	GetBySlug(ctx context.Context, slug string) (*model.Insight, error)

	// List 分页列出文章
	List(ctx context.Context, options *model.ListInsightsOptions) (*model.InsightListResponse, error)

	// Update 浅合并更新文章，正文变化时重新渲染 HTML 并重算阅读时长
	Update(ctx context.Context, id string, req *model.UpdateInsightRequest) (*model.Insight, []model.ValidationIssue, error)

	// Delete 删除文章
	Delete(ctx context.Context, id string) error

	// Publish 发布文章，幂等语义与页面发布一致
	Publish(ctx context.Context, id string) (*model.Insight, []model.ValidationIssue, error)

	// Transition 执行一次状态流转，非法边返回 ErrInvalidTransition
	Transition(ctx context.Context, id string, to model.PageStatus) (*model.Insight, error)

	// Validate 只校验不落库，供编辑器实时反馈
	Validate(ctx context.Context, i *model.Insight) []model.ValidationIssue
}

type service struct {
	txManager   repository.TransactionManager
	insightRepo repository.InsightRepository
	pageRepo    repository.PageRepository
	validator   *builder.Validator
	parserSvc   *parser.Service
	bus         *event.EventBus
}

// NewService 创建文章服务。
func NewService(
	txManager repository.TransactionManager,
	insightRepo repository.InsightRepository,
	pageRepo repository.PageRepository,
	validator *builder.Validator,
	parserSvc *parser.Service,
	bus *event.EventBus,
) Service {
	return &service{
		txManager:   txManager,
		insightRepo: insightRepo,
		pageRepo:    pageRepo,
		validator:   validator,
		parserSvc:   parserSvc,
		bus:         bus,
	}
}

// titleOracle 与页面服务镜像：SEO 标题唯一性横跨文章与页面两个语料。
func (s *service) titleOracle(ctx context.Context, excludeInsightID string) builder.UniquenessOracle {
	return func(title string) bool {
		taken, err := s.insightRepo.ExistsBySeoTitle(ctx, title, excludeInsightID)
		if err != nil {
			log.Printf("[InsightService] 检查文章 SEO 标题唯一性失败: %v", err)
			return true
		}
		if taken {
			return false
		}
		taken, err = s.pageRepo.ExistsBySeoTitle(ctx, title, "")
		if err != nil {
			log.Printf("[InsightService] 检查页面 SEO 标题唯一性失败: %v", err)
			return true
		}
		return !taken
	}
}

func (s *service) Validate(ctx context.Context, i *model.Insight) []model.ValidationIssue {
	return s.validator.ValidateInsight(i, s.titleOracle(ctx, i.ID))
}

// render 渲染正文并顺带更新阅读时长。
func (s *service) render(i *model.Insight) error {
	html, err := s.parserSvc.Render(i.Content)
	if err != nil {
		return fmt.Errorf("渲染文章正文失败: %w", err)
	}
	i.ContentHTML = html
	i.ReadingTime = parser.ReadingTime(i.Content)
	return nil
}

func (s *service) Create(ctx context.Context, req *model.CreateInsightRequest) (*model.Insight, []model.ValidationIssue, error) {
	i := &model.Insight{
		Slug:          req.Slug,
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Author:        req.Author,
		Status:        model.PageStatusDraft,
		Category:      req.Category,
		Tags:          req.Tags,
		SEO:           req.SEO,
		FeaturedImage: req.FeaturedImage,
	}
	if i.Tags == nil {
		i.Tags = []string{}
	}

	if issues := s.validator.ValidateInsight(i, s.titleOracle(ctx, "")); len(issues) > 0 {
		return nil, issues, nil
	}

	exists, err := s.insightRepo.ExistsBySlug(ctx, req.Slug, "")
	if err != nil {
		return nil, nil, fmt.Errorf("检查 slug 是否存在失败: %w", err)
	}
	if exists {
		return nil, nil, fmt.Errorf("slug %q: %w", req.Slug, constant.ErrSlugConflict)
	}

	if err := s.render(i); err != nil {
		return nil, nil, err
	}

	created, err := s.insightRepo.Create(ctx, i)
	if err != nil {
		return nil, nil, err
	}

	log.Printf("[InsightService] 文章创建成功: id=%s, slug=%s", created.ID, created.Slug)
	return created, nil, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*model.Insight, error) {
	return s.insightRepo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*model.Insight, error) {
	return s.insightRepo.GetBySlug(ctx, slug)
}

func (s *service) List(ctx context.Context, options *model.ListInsightsOptions) (*model.InsightListResponse, error) {
	if options.Page < 1 {
		options.Page = 1
	}
	if options.PageSize < 1 || options.PageSize > 100 {
		options.PageSize = 20
	}

	insights, total, err := s.insightRepo.List(ctx, options)
	if err != nil {
		return nil, err
	}

	return &model.InsightListResponse{
		List:     insights,
		Total:    total,
		Page:     options.Page,
		PageSize: options.PageSize,
	}, nil
}

// applyPartial 浅合并：只替换提供的顶层字段，Tags 整体替换。
// 返回正文是否发生了变化，变化时调用方需要重新渲染。
func applyPartial(i *model.Insight, req *model.UpdateInsightRequest) bool {
	contentChanged := false
	if req.Slug != nil {
		i.Slug = *req.Slug
	}
	if req.Title != nil {
		i.Title = *req.Title
	}
	if req.Excerpt != nil {
		i.Excerpt = *req.Excerpt
	}
	if req.Content != nil && *req.Content != i.Content {
		i.Content = *req.Content
		contentChanged = true
	}
	if req.Author != nil {
		i.Author = *req.Author
	}
	if req.Category != nil {
		i.Category = *req.Category
	}
	if req.Tags != nil {
		i.Tags = req.Tags
	}
	if req.SEO != nil {
		i.SEO = req.SEO
	}
	if req.FeaturedImage != nil {
		i.FeaturedImage = req.FeaturedImage
	}
	return contentChanged
}

func (s *service) Update(ctx context.Context, id string, req *model.UpdateInsightRequest) (*model.Insight, []model.ValidationIssue, error) {
	existing, err := s.insightRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	snapshot, err := json.Marshal(existing)
	if err != nil {
		return nil, nil, fmt.Errorf("序列化变更前快照失败: %w", err)
	}

	merged := *existing
	contentChanged := applyPartial(&merged, req)

	if issues := s.validator.ValidateInsight(&merged, s.titleOracle(ctx, id)); len(issues) > 0 {
		return nil, issues, nil
	}

	if req.Slug != nil && *req.Slug != existing.Slug {
		exists, err := s.insightRepo.ExistsBySlug(ctx, *req.Slug, id)
		if err != nil {
			return nil, nil, fmt.Errorf("检查 slug 是否存在失败: %w", err)
		}
		if exists {
			return nil, nil, fmt.Errorf("slug %q: %w", *req.Slug, constant.ErrSlugConflict)
		}
	}

	if contentChanged {
		if err := s.render(&merged); err != nil {
			return nil, nil, err
		}
	}

	updated, err := s.commitWithRevision(ctx, &merged, snapshot)
	if err != nil {
		return nil, nil, err
	}

	s.bus.Publish(event.InsightUpdated, &event.InsightUpdatedPayload{Insight: updated, PrevSlug: existing.Slug})
	log.Printf("[InsightService] 文章更新成功: id=%s, slug=%s", updated.ID, updated.Slug)
	return updated, nil, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	i, err := s.insightRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.insightRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(event.InsightDeleted, i)
	log.Printf("[InsightService] 文章删除成功: id=%s, slug=%s", id, i.Slug)
	return nil
}

func (s *service) Publish(ctx context.Context, id string) (*model.Insight, []model.ValidationIssue, error) {
	existing, err := s.insightRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if !model.CanTransition(existing.Status, model.PageStatusPublished) {
		return nil, nil, fmt.Errorf("%s -> published: %w", existing.Status, constant.ErrInvalidTransition)
	}

	// 空问题列表是发布门槛
	if issues := s.validator.ValidateInsight(existing, s.titleOracle(ctx, id)); len(issues) > 0 {
		return nil, issues, nil
	}

	snapshot, err := json.Marshal(existing)
	if err != nil {
		return nil, nil, fmt.Errorf("序列化变更前快照失败: %w", err)
	}

	now := time.Now()
	next := *existing
	next.Status = model.PageStatusPublished
	next.PublishedAt = &now

	// 发布前保证 HTML 是最新的，老数据可能从未渲染过
	if next.ContentHTML == "" && next.Content != "" {
		if err := s.render(&next); err != nil {
			return nil, nil, err
		}
	}

	published, err := s.commitWithRevision(ctx, &next, snapshot)
	if err != nil {
		return nil, nil, err
	}

	s.bus.Publish(event.InsightPublished, published)

	log.Printf("[InsightService] 文章发布成功: id=%s, slug=%s", published.ID, published.Slug)
	return published, nil, nil
}

func (s *service) Transition(ctx context.Context, id string, to model.PageStatus) (*model.Insight, error) {
	if !model.IsValidPageStatus(to) {
		return nil, fmt.Errorf("未知状态 %q: %w", to, constant.ErrBadRequest)
	}

	if to == model.PageStatusPublished {
		i, issues, err := s.Publish(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(issues) > 0 {
			return nil, fmt.Errorf("%w: %d 个问题", constant.ErrValidationFailed, len(issues))
		}
		return i, nil
	}

	existing, err := s.insightRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !model.CanTransition(existing.Status, to) {
		return nil, fmt.Errorf("%s -> %s: %w", existing.Status, to, constant.ErrInvalidTransition)
	}

	snapshot, err := json.Marshal(existing)
	if err != nil {
		return nil, fmt.Errorf("序列化变更前快照失败: %w", err)
	}

	next := *existing
	next.Status = to

	updated, err := s.commitWithRevision(ctx, &next, snapshot)
	if err != nil {
		return nil, err
	}

	log.Printf("[InsightService] 文章状态流转: id=%s, %s -> %s", id, existing.Status, to)
	return updated, nil
}

// commitWithRevision 在单个事务中先追加「变更前」快照，再覆盖写文档。
func (s *service) commitWithRevision(ctx context.Context, next *model.Insight, snapshot json.RawMessage) (*model.Insight, error) {
	dbID, entityType, err := idgen.DecodePublicID(next.ID)
	if err != nil || entityType != idgen.EntityTypeInsight {
		return nil, constant.ErrInvalidPublicID
	}

	var updated *model.Insight
	err = s.txManager.Do(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Revision.Create(ctx, &model.CreateRevisionParams{
			EntityType: model.RevisionEntityInsight,
			EntityDBID: dbID,
			Snapshot:   snapshot,
		}); err != nil {
			return err
		}

		var err error
		updated, err = repos.Insight.Update(ctx, next)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
