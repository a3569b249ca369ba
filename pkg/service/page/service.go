package page

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/networkk/networkk-app/internal/pkg/event"
	"github.com/networkk/networkk-app/pkg/constant"
	"github.com/networkk/networkk-app/pkg/domain/model"
	"github.com/networkk/networkk-app/pkg/domain/repository"
	"github.com/networkk/networkk-app/pkg/idgen"
	"github.com/networkk/networkk-app/pkg/service/builder"
	"github.com/networkk/networkk-app/pkg/service/preview"
)

// Service 页面服务接口。
// 所有变更操作遵循同一条版本纪律：先用事务写入「变更前」快照，
// 再覆盖写文档本体——任一步失败则整体回滚，保证每个历史状态可恢复。
type Service interface {
	// Create 创建页面，校验不通过时返回问题列表
	Create(ctx context.Context, req *model.CreatePageRequest) (*model.Page, []model.ValidationIssue, error)

	// GetByID 根据公共 ID 获取页面
	GetByID(ctx context.Context, id string) (*model.Page, error)

	// GetBySlug 根据 slug 获取页面
	GetBySlug(ctx context.Context, slug string) (*model.Page, error)

	// List 分页列出页面
	List(ctx context.Context, options *model.ListPagesOptions) (*model.PageListResponse, error)

	// Update 浅合并更新页面：只替换提供的顶层字段，区块整体替换不做深合并。
	// 成功后向该 slug 的预览订阅者广播一次更新通知。
	Update(ctx context.Context, id string, req *model.UpdatePageRequest) (*model.Page, []model.ValidationIssue, error)

	// Delete 删除页面
	Delete(ctx context.Context, id string) error

	// Publish 发布页面：置为 published 并盖发布时间戳。
	// 幂等：重复发布同一页面会再次产生版本快照、通知与新的 publishedAt。
	Publish(ctx context.Context, id string) (*model.Page, []model.ValidationIssue, error)

	// Transition 执行一次状态流转，非法边返回 ErrInvalidTransition
	Transition(ctx context.Context, id string, to model.PageStatus) (*model.Page, error)

	// PublishDue 发布全部定时发布时间已到的页面，返回成功发布的数量（定时任务用）
	PublishDue(ctx context.Context, now time.Time) (int, error)

	// Validate 只校验不落库，供编辑器实时反馈
	Validate(ctx context.Context, p *model.Page) []model.ValidationIssue
}

type service struct {
	txManager   repository.TransactionManager
	pageRepo    repository.PageRepository
	insightRepo repository.InsightRepository
	validator   *builder.Validator
	hub         *preview.Hub
	bus         *event.EventBus
}

// NewService 创建页面服务。
func NewService(
	txManager repository.TransactionManager,
	pageRepo repository.PageRepository,
	insightRepo repository.InsightRepository,
	validator *builder.Validator,
	hub *preview.Hub,
	bus *event.EventBus,
) Service {
	return &service{
		txManager:   txManager,
		pageRepo:    pageRepo,
		insightRepo: insightRepo,
		validator:   validator,
		hub:         hub,
		bus:         bus,
	}
}

// titleOracle 构造跨文档的 SEO 标题唯一性判定。
// 唯一性需要知道语料库中所有其他文档，页面和洞察文章都参与判定。
// 查询失败时放行并记日志：唯一性是内容质量约束，不应让存储抖动阻塞编辑。
func (s *service) titleOracle(ctx context.Context, excludePageID string) builder.UniquenessOracle {
	return func(title string) bool {
		taken, err := s.pageRepo.ExistsBySeoTitle(ctx, title, excludePageID)
		if err != nil {
			log.Printf("[PageService] 检查页面 SEO 标题唯一性失败: %v", err)
			return true
		}
		if taken {
			return false
		}
		taken, err = s.insightRepo.ExistsBySeoTitle(ctx, title, "")
		if err != nil {
			log.Printf("[PageService] 检查文章 SEO 标题唯一性失败: %v", err)
			return true
		}
		return !taken
	}
}

func (s *service) Validate(ctx context.Context, p *model.Page) []model.ValidationIssue {
	return s.validator.ValidatePage(p, s.titleOracle(ctx, p.ID))
}

func (s *service) Create(ctx context.Context, req *model.CreatePageRequest) (*model.Page, []model.ValidationIssue, error) {
	p := &model.Page{
		Slug:   req.Slug,
		Title:  req.Title,
		Status: model.PageStatusDraft,
		SEO:    req.SEO,
		Blocks: req.Blocks,
	}
	if p.Blocks == nil {
		p.Blocks = []model.BlockInstance{}
	}
	ensureBlockIDs(p.Blocks)

	if req.ScheduledAt != nil && *req.ScheduledAt != "" {
		t, err := time.Parse(time.RFC3339, *req.ScheduledAt)
		if err != nil {
			return nil, nil, fmt.Errorf("无效的定时发布时间 %q: %w", *req.ScheduledAt, constant.ErrBadRequest)
		}
		p.ScheduledAt = &t
	}

	if issues := s.validator.ValidatePage(p, s.titleOracle(ctx, "")); len(issues) > 0 {
		return nil, issues, nil
	}

	exists, err := s.pageRepo.ExistsBySlug(ctx, req.Slug, "")
	if err != nil {
		return nil, nil, fmt.Errorf("检查 slug 是否存在失败: %w", err)
	}
	if exists {
		return nil, nil, fmt.Errorf("slug %q: %w", req.Slug, constant.ErrSlugConflict)
	}

	created, err := s.pageRepo.Create(ctx, p)
	if err != nil {
		return nil, nil, err
	}

	log.Printf("[PageService] 页面创建成功: id=%s, slug=%s", created.ID, created.Slug)
	return created, nil, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*model.Page, error) {
	return s.pageRepo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*model.Page, error) {
	return s.pageRepo.GetBySlug(ctx, slug)
}

func (s *service) List(ctx context.Context, options *model.ListPagesOptions) (*model.PageListResponse, error) {
	if options.Page < 1 {
		options.Page = 1
	}
	if options.PageSize < 1 || options.PageSize > 100 {
		options.PageSize = 20
	}

	pages, total, err := s.pageRepo.List(ctx, options)
	if err != nil {
		return nil, err
	}

	return &model.PageListResponse{
		List:     pages,
		Total:    total,
		Page:     options.Page,
		PageSize: options.PageSize,
	}, nil
}

// applyPartial 把浅合并语义落到已加载的页面上。
// ensureBlockIDs 为没有 ID 的新区块生成 UUID。
// 已有的 ID 绝不改写：文档生命周期内区块 ID 不可变，布局引用依赖这一点。
func ensureBlockIDs(blocks []model.BlockInstance) {
	for i := range blocks {
		if blocks[i].ID == "" {
			blocks[i].ID = uuid.NewString()
		}
		ensureBlockIDs(blocks[i].Children)
	}
}

func applyPartial(p *model.Page, req *model.UpdatePageRequest) error {
	if req.Slug != nil {
		p.Slug = *req.Slug
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.SEO != nil {
		p.SEO = req.SEO
	}
	if req.Blocks != nil {
		p.Blocks = *req.Blocks
		ensureBlockIDs(p.Blocks)
	}
	if req.ScheduledAt != nil {
		if *req.ScheduledAt == "" {
			p.ScheduledAt = nil
		} else {
			t, err := time.Parse(time.RFC3339, *req.ScheduledAt)
			if err != nil {
				return fmt.Errorf("无效的定时发布时间 %q: %w", *req.ScheduledAt, constant.ErrBadRequest)
			}
			p.ScheduledAt = &t
		}
	}
	return nil
}

func (s *service) Update(ctx context.Context, id string, req *model.UpdatePageRequest) (*model.Page, []model.ValidationIssue, error) {
	existing, err := s.pageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	// 变更前的完整状态先序列化，之后无论怎么改都不影响快照
	snapshot, err := json.Marshal(existing)
	if err != nil {
		return nil, nil, fmt.Errorf("序列化变更前快照失败: %w", err)
	}

	merged := *existing
	if err := applyPartial(&merged, req); err != nil {
		return nil, nil, err
	}

	if issues := s.validator.ValidatePage(&merged, s.titleOracle(ctx, id)); len(issues) > 0 {
		return nil, issues, nil
	}

	if req.Slug != nil && *req.Slug != existing.Slug {
		exists, err := s.pageRepo.ExistsBySlug(ctx, *req.Slug, id)
		if err != nil {
			return nil, nil, fmt.Errorf("检查 slug 是否存在失败: %w", err)
		}
		if exists {
			return nil, nil, fmt.Errorf("slug %q: %w", *req.Slug, constant.ErrSlugConflict)
		}
	}

	updated, err := s.commitWithRevision(ctx, &merged, snapshot)
	if err != nil {
		return nil, nil, err
	}

	// 预览通知与事件都是尽力而为，失败不回传给调用方
	s.hub.Publish(updated.Slug)
	s.bus.Publish(event.PageUpdated, &event.PageUpdatedPayload{Page: updated, PrevSlug: existing.Slug})

	log.Printf("[PageService] 页面更新成功: id=%s, slug=%s", updated.ID, updated.Slug)
	return updated, nil, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	p, err := s.pageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.pageRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(event.PageDeleted, p)
	log.Printf("[PageService] 页面删除成功: id=%s, slug=%s", id, p.Slug)
	return nil
}

func (s *service) Publish(ctx context.Context, id string) (*model.Page, []model.ValidationIssue, error) {
	existing, err := s.pageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if !model.CanTransition(existing.Status, model.PageStatusPublished) {
		return nil, nil, fmt.Errorf("%s -> published: %w", existing.Status, constant.ErrInvalidTransition)
	}

	// 空问题列表是发布门槛
	if issues := s.validator.ValidatePage(existing, s.titleOracle(ctx, id)); len(issues) > 0 {
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
	next.ScheduledAt = nil

	published, err := s.commitWithRevision(ctx, &next, snapshot)
	if err != nil {
		return nil, nil, err
	}

	s.hub.Publish(published.Slug)
	s.bus.Publish(event.PagePublished, published)

	log.Printf("[PageService] 页面发布成功: id=%s, slug=%s", published.ID, published.Slug)
	return published, nil, nil
}

func (s *service) Transition(ctx context.Context, id string, to model.PageStatus) (*model.Page, error) {
	if !model.IsValidPageStatus(to) {
		return nil, fmt.Errorf("未知状态 %q: %w", to, constant.ErrBadRequest)
	}

	// 发布走完整的发布流程，含校验门槛与预览通知
	if to == model.PageStatusPublished {
		p, issues, err := s.Publish(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(issues) > 0 {
			return nil, fmt.Errorf("%w: %d 个问题", constant.ErrValidationFailed, len(issues))
		}
		return p, nil
	}

	existing, err := s.pageRepo.GetByID(ctx, id)
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

	log.Printf("[PageService] 页面状态流转: id=%s, %s -> %s", id, existing.Status, to)
	return updated, nil
}

func (s *service) PublishDue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.pageRepo.ListScheduledBefore(ctx, now)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, p := range due {
		if _, issues, err := s.Publish(ctx, p.ID); err != nil {
			log.Printf("[PageService] 定时发布失败: id=%s, error=%v", p.ID, err)
		} else if len(issues) > 0 {
			log.Printf("[PageService] 定时发布被校验拦截: id=%s, %d 个问题", p.ID, len(issues))
		} else {
			published++
		}
	}
	return published, nil
}

// commitWithRevision 在单个事务中先追加「变更前」快照，再覆盖写文档。
// 版本写入失败会使整个事务回滚，绝不留下没有历史记录的状态变更。
func (s *service) commitWithRevision(ctx context.Context, next *model.Page, snapshot json.RawMessage) (*model.Page, error) {
	dbID, entityType, err := idgen.DecodePublicID(next.ID)
	if err != nil || entityType != idgen.EntityTypePage {
		return nil, constant.ErrInvalidPublicID
	}

	var updated *model.Page
	err = s.txManager.Do(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Revision.Create(ctx, &model.CreateRevisionParams{
			EntityType: model.RevisionEntityPage,
			EntityDBID: dbID,
			Snapshot:   snapshot,
		}); err != nil {
			return err
		}

		var err error
		updated, err = repos.Page.Update(ctx, next)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
