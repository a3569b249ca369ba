package page

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/networkk/networkk-app/internal/pkg/event"
	"github.com/networkk/networkk-app/pkg/constant"
	"github.com/networkk/networkk-app/pkg/domain/model"
	"github.com/networkk/networkk-app/pkg/domain/repository"
	"github.com/networkk/networkk-app/pkg/idgen"
	"github.com/networkk/networkk-app/pkg/service/builder"
	"github.com/networkk/networkk-app/pkg/service/preview"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	m.Run()
}

// --- 内存版仓储，按页面服务的调用面实现 ---

type fakePageRepo struct {
	mu     sync.Mutex
	nextID uint
	pages  map[string]*model.Page
}

func newFakePageRepo() *fakePageRepo {
	return &fakePageRepo{pages: make(map[string]*model.Page)}
}

func clonePage(p *model.Page) *model.Page {
	raw, _ := json.Marshal(p)
	var out model.Page
	_ = json.Unmarshal(raw, &out)
	return &out
}

func (f *fakePageRepo) Create(_ context.Context, p *model.Page) (*model.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id, err := idgen.GeneratePublicID(f.nextID, idgen.EntityTypePage)
	if err != nil {
		return nil, err
	}
	stored := clonePage(p)
	stored.ID = id
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.pages[id] = stored
	return clonePage(stored), nil
}

func (f *fakePageRepo) GetByID(_ context.Context, id string) (*model.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pages[id]
	if !ok {
		return nil, constant.ErrNotFound
	}
	return clonePage(p), nil
}

func (f *fakePageRepo) GetBySlug(_ context.Context, slug string) (*model.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.pages {
		if p.Slug == slug {
			return clonePage(p), nil
		}
	}
	return nil, constant.ErrNotFound
}

func (f *fakePageRepo) List(_ context.Context, _ *model.ListPagesOptions) ([]*model.Page, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Page
	for _, p := range f.pages {
		out = append(out, clonePage(p))
	}
	return out, len(out), nil
}

func (f *fakePageRepo) Update(_ context.Context, p *model.Page) (*model.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.pages[p.ID]; !ok {
		return nil, constant.ErrNotFound
	}
	stored := clonePage(p)
	stored.UpdatedAt = time.Now()
	f.pages[p.ID] = stored
	return clonePage(stored), nil
}

func (f *fakePageRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.pages[id]; !ok {
		return constant.ErrNotFound
	}
	delete(f.pages, id)
	return nil
}

func (f *fakePageRepo) ExistsBySlug(_ context.Context, slug, excludeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, p := range f.pages {
		if id != excludeID && p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePageRepo) ExistsBySeoTitle(_ context.Context, title, excludeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, p := range f.pages {
		if id != excludeID && p.SEO != nil && p.SEO.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePageRepo) ListScheduledBefore(_ context.Context, t time.Time) ([]*model.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Page
	for _, p := range f.pages {
		if p.Status == model.PageStatusReview && p.ScheduledAt != nil && !p.ScheduledAt.After(t) {
			out = append(out, clonePage(p))
		}
	}
	return out, nil
}

type fakeInsightRepo struct{}

func (fakeInsightRepo) Create(context.Context, *model.Insight) (*model.Insight, error) {
	return nil, errors.New("not implemented")
}
func (fakeInsightRepo) GetByID(context.Context, string) (*model.Insight, error) {
	return nil, constant.ErrNotFound
}
func (fakeInsightRepo) GetBySlug(context.Context, string) (*model.Insight, error) {
	return nil, constant.ErrNotFound
}
func (fakeInsightRepo) List(context.Context, *model.ListInsightsOptions) ([]*model.Insight, int, error) {
	return nil, 0, nil
}
func (fakeInsightRepo) Update(context.Context, *model.Insight) (*model.Insight, error) {
	return nil, errors.New("not implemented")
}
func (fakeInsightRepo) Delete(context.Context, string) error { return constant.ErrNotFound }
func (fakeInsightRepo) ExistsBySlug(context.Context, string, string) (bool, error) {
	return false, nil
}
func (fakeInsightRepo) ExistsBySeoTitle(context.Context, string, string) (bool, error) {
	return false, nil
}

type fakeRevisionRepo struct {
	mu        sync.Mutex
	revisions []*model.Revision
	failNext  error
}

func (f *fakeRevisionRepo) Create(_ context.Context, params *model.CreateRevisionParams) (*model.Revision, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return nil, err
	}
	version := 0
	for _, r := range f.revisions {
		if r.EntityType == params.EntityType && r.Version > version {
			version = r.Version
		}
	}
	rev := &model.Revision{
		ID:         fmt.Sprintf("rev%d", len(f.revisions)+1),
		EntityType: params.EntityType,
		Version:    version + 1,
		Snapshot:   params.Snapshot,
		CreatedAt:  time.Now(),
	}
	f.revisions = append(f.revisions, rev)
	return rev, nil
}

func (f *fakeRevisionRepo) GetByEntityAndVersion(context.Context, string, uint, int) (*model.Revision, error) {
	return nil, constant.ErrNotFound
}
func (f *fakeRevisionRepo) ListByEntity(context.Context, string, uint, int, int) ([]model.RevisionListItem, int64, error) {
	return nil, 0, nil
}
func (f *fakeRevisionRepo) GetLatestVersion(context.Context, string, uint) (int, error) {
	return len(f.revisions), nil
}
func (f *fakeRevisionRepo) CountByEntity(context.Context, string, uint) (int, error) {
	return len(f.revisions), nil
}
func (f *fakeRevisionRepo) DeleteOldVersions(context.Context, string, uint, int) error { return nil }
func (f *fakeRevisionRepo) ListEntitiesWithHistory(context.Context, string) ([]uint, error) {
	return nil, nil
}

func (f *fakeRevisionRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.revisions)
}

func (f *fakeRevisionRepo) last() *model.Revision {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.revisions) == 0 {
		return nil
	}
	return f.revisions[len(f.revisions)-1]
}

// fakeTxManager 模拟事务语义：业务函数失败时恢复两个仓储的先前状态。
type fakeTxManager struct {
	pageRepo     *fakePageRepo
	insightRepo  fakeInsightRepo
	revisionRepo *fakeRevisionRepo
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	f.pageRepo.mu.Lock()
	pagesBackup := make(map[string]*model.Page, len(f.pageRepo.pages))
	for k, v := range f.pageRepo.pages {
		pagesBackup[k] = clonePage(v)
	}
	f.pageRepo.mu.Unlock()
	revCountBackup := f.revisionRepo.count()

	err := fn(repository.Repositories{
		Page:     f.pageRepo,
		Insight:  f.insightRepo,
		Revision: f.revisionRepo,
	})
	if err != nil {
		f.pageRepo.mu.Lock()
		f.pageRepo.pages = pagesBackup
		f.pageRepo.mu.Unlock()
		f.revisionRepo.mu.Lock()
		f.revisionRepo.revisions = f.revisionRepo.revisions[:revCountBackup]
		f.revisionRepo.mu.Unlock()
	}
	return err
}

// notifyHandle 记录收到的预览通知次数。
type notifyHandle struct {
	mu   sync.Mutex
	hits int
}

func (n *notifyHandle) SendUpdate() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.hits++
	return nil
}
func (n *notifyHandle) Close() error { return nil }
func (n *notifyHandle) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.hits
}

type fixture struct {
	svc      Service
	pages    *fakePageRepo
	revs     *fakeRevisionRepo
	hub      *preview.Hub
	bus      *event.EventBus
}

func newFixture() *fixture {
	pages := newFakePageRepo()
	revs := &fakeRevisionRepo{}
	hub := preview.NewHub()
	bus := event.NewEventBus()
	tx := &fakeTxManager{pageRepo: pages, revisionRepo: revs}

	svc := NewService(tx, pages, fakeInsightRepo{}, builder.NewValidator(builder.NewRegistry()), hub, bus)
	return &fixture{svc: svc, pages: pages, revs: revs, hub: hub, bus: bus}
}

func validCreateReq() *model.CreatePageRequest {
	return &model.CreatePageRequest{
		Slug:  "about",
		Title: "About Our Firm And Its History",
		SEO: &model.SEO{
			Title:       "About Us | Networkk",
			Description: strings.Repeat("Networkk is a consulting firm. ", 5)[:130],
			Canonical:   "https://networkk.com/about",
		},
		Blocks: []model.BlockInstance{{
			ID:   "b1",
			Type: model.BlockTypeHero,
			Props: &model.HeroProps{
				Title: "Leadership You Can Trust Today",
				CTAs:  []model.CTALink{},
			},
		}},
	}
}

func mustCreate(t *testing.T, f *fixture) *model.Page {
	t.Helper()
	p, issues, err := f.svc.Create(context.Background(), validCreateReq())
	if err != nil {
		t.Fatalf("创建页面失败: %v", err)
	}
	if len(issues) > 0 {
		t.Fatalf("合法页面不应有校验问题: %v", issues)
	}
	return p
}

func TestCreate(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	p := mustCreate(t, f)
	if p.Status != model.PageStatusDraft {
		t.Errorf("新页面应为 draft, 实际 %s", p.Status)
	}
	if p.ID == "" {
		t.Error("新页面应携带公共 ID")
	}

	t.Run("slug冲突", func(t *testing.T) {
		req := validCreateReq()
		req.SEO.Title = "Our Story | Networkk"
		req.SEO.Canonical = "https://networkk.com/story"
		_, issues, err := f.svc.Create(context.Background(), req)
		if !errors.Is(err, constant.ErrSlugConflict) {
			t.Fatalf("重复 slug 应返回 ErrSlugConflict, 实际: err=%v issues=%v", err, issues)
		}
	})

	t.Run("SEO标题跨文档冲突", func(t *testing.T) {
		req := validCreateReq()
		req.Slug = "history"
		_, issues, err := f.svc.Create(context.Background(), req)
		if err != nil {
			t.Fatalf("唯一性冲突不应是 error: %v", err)
		}
		if len(issues) != 1 || issues[0].Code != model.IssueSeoTitleConflict {
			t.Errorf("期望 SeoTitleConflict, 实际: %v", issues)
		}
	})

	t.Run("校验不通过返回问题列表", func(t *testing.T) {
		req := validCreateReq()
		req.Slug = "team"
		req.SEO = nil
		_, issues, err := f.svc.Create(context.Background(), req)
		if err != nil {
			t.Fatalf("校验失败不应是 error: %v", err)
		}
		if len(issues) != 1 || issues[0].Code != model.IssueSeoMissing {
			t.Errorf("期望 SeoMissing, 实际: %v", issues)
		}
	})
}

// 更新后读回的文档包含新字段，且恰好多出一条快照等于更新前状态的版本记录。
func TestUpdateRecordsPriorRevision(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	p := mustCreate(t, f)
	before, _ := f.pages.GetByID(context.Background(), p.ID)

	newTitle := "About Our Firm And New Chapter"
	updated, issues, err := f.svc.Update(context.Background(), p.ID, &model.UpdatePageRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if len(issues) > 0 {
		t.Fatalf("不应有校验问题: %v", issues)
	}
	if updated.Title != newTitle {
		t.Errorf("标题未更新: %s", updated.Title)
	}

	if f.revs.count() != 1 {
		t.Fatalf("期望恰好 1 条版本记录, 实际 %d", f.revs.count())
	}
	var snap model.Page
	if err := json.Unmarshal(f.revs.last().Snapshot, &snap); err != nil {
		t.Fatalf("快照不是合法的页面 JSON: %v", err)
	}
	if snap.Title != before.Title {
		t.Errorf("快照应等于更新前状态: 快照=%q, 更新前=%q", snap.Title, before.Title)
	}
}

// 版本写入失败时文档更新必须整体回滚，不允许出现无历史记录的状态变更。
func TestUpdateRollsBackWhenRevisionFails(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	p := mustCreate(t, f)
	f.revs.failNext = errors.New("disk full")

	newTitle := "About Our Firm And New Chapter"
	_, _, err := f.svc.Update(context.Background(), p.ID, &model.UpdatePageRequest{Title: &newTitle})
	if err == nil {
		t.Fatal("版本写入失败应使更新报错")
	}

	after, _ := f.pages.GetByID(context.Background(), p.ID)
	if after.Title != p.Title {
		t.Errorf("文档更新应已回滚: %s", after.Title)
	}
	if f.revs.count() != 0 {
		t.Errorf("不应留下版本记录: %d", f.revs.count())
	}
}

func TestUpdateNotFound(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	badID, _ := idgen.GeneratePublicID(999, idgen.EntityTypePage)
	newTitle := "About Our Firm And New Chapter"
	_, _, err := f.svc.Update(context.Background(), badID, &model.UpdatePageRequest{Title: &newTitle})
	if !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("期望 ErrNotFound, 实际: %v", err)
	}
}

// 发布：draft -> published、盖上发布时间戳、快照保留 draft 状态、订阅者收到一次通知。
func TestPublish(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	p := mustCreate(t, f)
	handle := &notifyHandle{}
	f.hub.Subscribe("about", handle)

	published, issues, err := f.svc.Publish(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("发布失败: %v", err)
	}
	if len(issues) > 0 {
		t.Fatalf("不应有校验问题: %v", issues)
	}

	if published.Status != model.PageStatusPublished {
		t.Errorf("状态应为 published, 实际 %s", published.Status)
	}
	if published.PublishedAt == nil {
		t.Error("publishedAt 应被盖上时间戳")
	}
	if handle.count() != 1 {
		t.Errorf("订阅者应恰好收到 1 次通知, 实际 %d", handle.count())
	}

	var snap model.Page
	if err := json.Unmarshal(f.revs.last().Snapshot, &snap); err != nil {
		t.Fatal(err)
	}
	if snap.Status != model.PageStatusDraft {
		t.Errorf("快照应保留发布前的 draft 状态, 实际 %s", snap.Status)
	}
}

// 幂等：重复发布产生两条版本与两次通知，文档状态除 publishedAt 外不变。
func TestPublishIdempotent(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	p := mustCreate(t, f)
	handle := &notifyHandle{}
	f.hub.Subscribe("about", handle)

	first, _, err := f.svc.Publish(context.Background(), p.ID)
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	second, _, err := f.svc.Publish(context.Background(), p.ID)
	if err != nil {
		t.Fatal(err)
	}

	if f.revs.count() != 2 {
		t.Errorf("期望 2 条版本记录, 实际 %d", f.revs.count())
	}
	if handle.count() != 2 {
		t.Errorf("期望 2 次通知, 实际 %d", handle.count())
	}
	if first.Slug != second.Slug || first.Status != second.Status || len(first.Blocks) != len(second.Blocks) {
		t.Error("重复发布后的文档状态应保持一致")
	}
	if !second.PublishedAt.After(*first.PublishedAt) {
		t.Error("重复发布应刷新 publishedAt")
	}
}

// 校验不通过是发布门槛：有问题的文档不能发布，也不产生版本与通知。
func TestPublishBlockedByValidation(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	p := mustCreate(t, f)

	// 直接在存储里弄坏 SEO，模拟老数据
	f.pages.mu.Lock()
	f.pages.pages[p.ID].SEO = nil
	f.pages.mu.Unlock()

	_, issues, err := f.svc.Publish(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("校验拦截不应是 error: %v", err)
	}
	if len(issues) == 0 {
		t.Fatal("应返回校验问题")
	}
	if f.revs.count() != 0 {
		t.Errorf("被拦截的发布不应产生版本记录: %d", f.revs.count())
	}
}

func TestTransition(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	p := mustCreate(t, f)

	reviewed, err := f.svc.Transition(context.Background(), p.ID, model.PageStatusReview)
	if err != nil {
		t.Fatalf("draft -> review 应合法: %v", err)
	}
	if reviewed.Status != model.PageStatusReview {
		t.Errorf("状态应为 review, 实际 %s", reviewed.Status)
	}

	t.Run("非法流转", func(t *testing.T) {
		_, err := f.svc.Transition(context.Background(), p.ID, model.PageStatusArchived)
		if !errors.Is(err, constant.ErrInvalidTransition) {
			t.Errorf("review -> archived 应返回 ErrInvalidTransition, 实际: %v", err)
		}
	})

	t.Run("任意状态可回到draft", func(t *testing.T) {
		back, err := f.svc.Transition(context.Background(), p.ID, model.PageStatusDraft)
		if err != nil {
			t.Fatalf("review -> draft 应合法: %v", err)
		}
		if back.Status != model.PageStatusDraft {
			t.Errorf("状态应为 draft, 实际 %s", back.Status)
		}
	})
}

func TestCreateAssignsBlockIDs(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	req := validCreateReq()
	// b1 自带 ID；第二个区块及其子区块没有 ID，由服务生成
	req.Blocks = append(req.Blocks, model.BlockInstance{
		Type: model.BlockTypeCTA,
		Props: &model.CTAProps{
			Heading:    "Talk to our consultants",
			PrimaryCTA: model.CTALink{Label: "Contact", Href: "/contact"},
		},
		Children: []model.BlockInstance{{
			Type: model.BlockTypeCTA,
			Props: &model.CTAProps{
				Heading:    "Book an intro call today",
				PrimaryCTA: model.CTALink{Label: "Book", Href: "/book"},
			},
		}},
	})

	p, issues, err := f.svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if len(issues) > 0 {
		t.Fatalf("缺失的区块 ID 应被补齐而不是报校验问题: %v", issues)
	}

	if p.Blocks[0].ID != "b1" {
		t.Errorf("已有 ID 不得改写, 实际 %q", p.Blocks[0].ID)
	}
	if p.Blocks[1].ID == "" {
		t.Error("新区块应被分配 ID")
	}
	if p.Blocks[1].Children[0].ID == "" {
		t.Error("子区块同样应被分配 ID")
	}
	if p.Blocks[1].ID == p.Blocks[1].Children[0].ID {
		t.Error("生成的区块 ID 不应重复")
	}
}

func TestUpdateRenameCarriesPrevSlug(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	p := mustCreate(t, f)

	got := make(chan *event.PageUpdatedPayload, 1)
	f.bus.Subscribe(event.PageUpdated, func(payload interface{}) {
		if ev, ok := payload.(*event.PageUpdatedPayload); ok {
			got <- ev
		}
	})

	newSlug := "about-us"
	if _, issues, err := f.svc.Update(context.Background(), p.ID, &model.UpdatePageRequest{Slug: &newSlug}); err != nil || len(issues) > 0 {
		t.Fatalf("重命名失败: err=%v issues=%v", err, issues)
	}

	// 事件总线是异步的，给 worker 一点时间
	select {
	case ev := <-got:
		if ev.Page.Slug != "about-us" {
			t.Errorf("事件中的新 slug = %q", ev.Page.Slug)
		}
		// 缓存订阅方靠 PrevSlug 失效旧地址下的快照
		if ev.PrevSlug != "about" {
			t.Errorf("PrevSlug = %q, 期望 %q", ev.PrevSlug, "about")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("等待 PageUpdated 事件超时")
	}
}

func TestDeleteFreesSlug(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	p := mustCreate(t, f)
	if err := f.svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("删除页面失败: %v", err)
	}

	if _, err := f.svc.GetByID(context.Background(), p.ID); !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("删除后读取应返回 ErrNotFound, 实际: %v", err)
	}

	// 删除是物理删除，slug 必须立即可以复用
	recreated, issues, err := f.svc.Create(context.Background(), validCreateReq())
	if err != nil {
		t.Fatalf("删除后用相同 slug 重建失败: %v", err)
	}
	if len(issues) > 0 {
		t.Fatalf("重建不应有校验问题: %v", issues)
	}
	if recreated.Slug != p.Slug {
		t.Errorf("slug = %q, 期望 %q", recreated.Slug, p.Slug)
	}
	if recreated.ID == p.ID {
		t.Error("重建的页面不应复用旧的公共 ID")
	}
}

func TestPublishDue(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	p := mustCreate(t, f)

	// 排入过去的定时发布时间并送审
	past := time.Now().Add(-time.Hour).Format(time.RFC3339)
	if _, issues, err := f.svc.Update(context.Background(), p.ID, &model.UpdatePageRequest{ScheduledAt: &past}); err != nil || len(issues) > 0 {
		t.Fatalf("排定日程失败: err=%v issues=%v", err, issues)
	}
	if _, err := f.svc.Transition(context.Background(), p.ID, model.PageStatusReview); err != nil {
		t.Fatal(err)
	}

	n, err := f.svc.PublishDue(context.Background(), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("应发布 1 个页面, 实际 %d", n)
	}

	after, _ := f.svc.GetByID(context.Background(), p.ID)
	if after.Status != model.PageStatusPublished {
		t.Errorf("页面应已发布, 实际 %s", after.Status)
	}
	if after.ScheduledAt != nil {
		t.Error("发布后应清除定时发布时间")
	}
}
