package insight

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
	"github.com/networkk/networkk-app/pkg/service/parser"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	m.Run()
}

type fakeInsightRepo struct {
	mu       sync.Mutex
	nextID   uint
	insights map[string]*model.Insight
}

func newFakeInsightRepo() *fakeInsightRepo {
	return &fakeInsightRepo{insights: make(map[string]*model.Insight)}
}

func cloneInsight(i *model.Insight) *model.Insight {
	raw, _ := json.Marshal(i)
	var out model.Insight
	_ = json.Unmarshal(raw, &out)
	return &out
}

func (f *fakeInsightRepo) Create(_ context.Context, i *model.Insight) (*model.Insight, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id, err := idgen.GeneratePublicID(f.nextID, idgen.EntityTypeInsight)
	if err != nil {
		return nil, err
	}
	stored := cloneInsight(i)
	stored.ID = id
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.insights[id] = stored
	return cloneInsight(stored), nil
}

func (f *fakeInsightRepo) GetByID(_ context.Context, id string) (*model.Insight, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.insights[id]
	if !ok {
		return nil, constant.ErrNotFound
	}
	return cloneInsight(i), nil
}

func (f *fakeInsightRepo) GetBySlug(_ context.Context, slug string) (*model.Insight, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, i := range f.insights {
		if i.Slug == slug {
			return cloneInsight(i), nil
		}
	}
	return nil, constant.ErrNotFound
}

func (f *fakeInsightRepo) List(_ context.Context, _ *model.ListInsightsOptions) ([]*model.Insight, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Insight
	for _, i := range f.insights {
		out = append(out, cloneInsight(i))
	}
	return out, len(out), nil
}

func (f *fakeInsightRepo) Update(_ context.Context, i *model.Insight) (*model.Insight, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.insights[i.ID]; !ok {
		return nil, constant.ErrNotFound
	}
	stored := cloneInsight(i)
	stored.UpdatedAt = time.Now()
	f.insights[i.ID] = stored
	return cloneInsight(stored), nil
}

func (f *fakeInsightRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.insights[id]; !ok {
		return constant.ErrNotFound
	}
	delete(f.insights, id)
	return nil
}

func (f *fakeInsightRepo) ExistsBySlug(_ context.Context, slug, excludeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, i := range f.insights {
		if id != excludeID && i.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeInsightRepo) ExistsBySeoTitle(_ context.Context, title, excludeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, i := range f.insights {
		if id != excludeID && i.SEO != nil && i.SEO.Title == title {
			return true, nil
		}
	}
	return false, nil
}

type fakePageRepo struct{}

func (fakePageRepo) Create(context.Context, *model.Page) (*model.Page, error) {
	return nil, errors.New("not implemented")
}
func (fakePageRepo) GetByID(context.Context, string) (*model.Page, error) {
	return nil, constant.ErrNotFound
}
func (fakePageRepo) GetBySlug(context.Context, string) (*model.Page, error) {
	return nil, constant.ErrNotFound
}
func (fakePageRepo) List(context.Context, *model.ListPagesOptions) ([]*model.Page, int, error) {
	return nil, 0, nil
}
func (fakePageRepo) Update(context.Context, *model.Page) (*model.Page, error) {
	return nil, errors.New("not implemented")
}
func (fakePageRepo) Delete(context.Context, string) error { return constant.ErrNotFound }
func (fakePageRepo) ExistsBySlug(context.Context, string, string) (bool, error) {
	return false, nil
}
func (fakePageRepo) ExistsBySeoTitle(context.Context, string, string) (bool, error) {
	return false, nil
}
func (fakePageRepo) ListScheduledBefore(context.Context, time.Time) ([]*model.Page, error) {
	return nil, nil
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
	rev := &model.Revision{
		ID:         fmt.Sprintf("rev%d", len(f.revisions)+1),
		EntityType: params.EntityType,
		Version:    len(f.revisions) + 1,
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

type fakeTxManager struct {
	insightRepo  *fakeInsightRepo
	revisionRepo *fakeRevisionRepo
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	f.insightRepo.mu.Lock()
	backup := make(map[string]*model.Insight, len(f.insightRepo.insights))
	for k, v := range f.insightRepo.insights {
		backup[k] = cloneInsight(v)
	}
	f.insightRepo.mu.Unlock()
	revCountBackup := f.revisionRepo.count()

	err := fn(repository.Repositories{
		Page:     fakePageRepo{},
		Insight:  f.insightRepo,
		Revision: f.revisionRepo,
	})
	if err != nil {
		f.insightRepo.mu.Lock()
		f.insightRepo.insights = backup
		f.insightRepo.mu.Unlock()
		f.revisionRepo.mu.Lock()
		f.revisionRepo.revisions = f.revisionRepo.revisions[:revCountBackup]
		f.revisionRepo.mu.Unlock()
	}
	return err
}

type fixture struct {
	svc      Service
	insights *fakeInsightRepo
	revs     *fakeRevisionRepo
	bus      *event.EventBus
}

func newFixture() *fixture {
	insights := newFakeInsightRepo()
	revs := &fakeRevisionRepo{}
	bus := event.NewEventBus()
	tx := &fakeTxManager{insightRepo: insights, revisionRepo: revs}

	svc := NewService(tx, insights, fakePageRepo{}, builder.NewValidator(builder.NewRegistry()), parser.NewService(), bus)
	return &fixture{svc: svc, insights: insights, revs: revs, bus: bus}
}

func validCreateReq() *model.CreateInsightRequest {
	return &model.CreateInsightRequest{
		Slug:    "digital-transformation-trends",
		Title:   "Digital Transformation Trends For 2026",
		Excerpt: strings.Repeat("Consulting firms must adapt. ", 3)[:80],
		Content: "# Trends\n\n" + strings.Repeat("Enterprise buyers now expect measurable outcomes from every engagement. ", 4),
		Author:  model.InsightAuthor{Name: "Jordan Lee", Title: "Partner"},
		SEO: &model.SEO{
			Title:       "Transformation Trends | Networkk",
			Description: strings.Repeat("What enterprise leaders should watch in 2026. ", 4)[:140],
			Canonical:   "https://networkk.com/insights/digital-transformation-trends",
		},
		Category: "strategy",
		Tags:     []string{"strategy", "trends"},
	}
}

func mustCreate(t *testing.T, f *fixture) *model.Insight {
	t.Helper()
	i, issues, err := f.svc.Create(context.Background(), validCreateReq())
	if err != nil {
		t.Fatalf("创建文章失败: %v", err)
	}
	if len(issues) > 0 {
		t.Fatalf("合法文章不应有校验问题: %v", issues)
	}
	return i
}

func TestCreateRendersContent(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	i := mustCreate(t, f)
	if i.Status != model.PageStatusDraft {
		t.Errorf("新文章应为 draft, 实际 %s", i.Status)
	}
	if !strings.Contains(i.ContentHTML, "<h1") {
		t.Errorf("正文应已渲染为 HTML: %q", i.ContentHTML)
	}
	if i.ReadingTime < 1 {
		t.Errorf("阅读时长至少 1 分钟, 实际 %d", i.ReadingTime)
	}

	t.Run("摘要过短", func(t *testing.T) {
		req := validCreateReq()
		req.Slug = "short-excerpt"
		req.SEO.Title = "Short Excerpt | Networkk"
		req.Excerpt = "too short"
		_, issues, err := f.svc.Create(context.Background(), req)
		if err != nil {
			t.Fatalf("校验失败不应是 error: %v", err)
		}
		if len(issues) == 0 {
			t.Fatal("过短摘要应产生校验问题")
		}
	})
}

func TestUpdateRerendersOnContentChange(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	i := mustCreate(t, f)
	newContent := "## New Angle\n\n" + strings.Repeat("Boards now ask for proof before funding another platform program. ", 4)
	updated, issues, err := f.svc.Update(context.Background(), i.ID, &model.UpdateInsightRequest{Content: &newContent})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if len(issues) > 0 {
		t.Fatalf("不应有校验问题: %v", issues)
	}
	if !strings.Contains(updated.ContentHTML, "<h2") {
		t.Errorf("正文变化后应重新渲染: %q", updated.ContentHTML)
	}

	if f.revs.count() != 1 {
		t.Fatalf("期望恰好 1 条版本记录, 实际 %d", f.revs.count())
	}
	var snap model.Insight
	if err := json.Unmarshal(f.revs.last().Snapshot, &snap); err != nil {
		t.Fatal(err)
	}
	if snap.Content != i.Content {
		t.Error("快照应保留更新前的正文")
	}
	if f.revs.last().EntityType != model.RevisionEntityInsight {
		t.Errorf("版本实体类型应为 Insight, 实际 %s", f.revs.last().EntityType)
	}
}

func TestUpdateRenameCarriesPrevSlug(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	i := mustCreate(t, f)

	got := make(chan *event.InsightUpdatedPayload, 1)
	f.bus.Subscribe(event.InsightUpdated, func(payload interface{}) {
		if ev, ok := payload.(*event.InsightUpdatedPayload); ok {
			got <- ev
		}
	})

	newSlug := "transformation-trends-2026"
	if _, issues, err := f.svc.Update(context.Background(), i.ID, &model.UpdateInsightRequest{Slug: &newSlug}); err != nil || len(issues) > 0 {
		t.Fatalf("重命名失败: err=%v issues=%v", err, issues)
	}

	select {
	case ev := <-got:
		if ev.Insight.Slug != newSlug {
			t.Errorf("事件中的新 slug = %q", ev.Insight.Slug)
		}
		// 缓存订阅方靠 PrevSlug 失效旧地址下的快照
		if ev.PrevSlug != "digital-transformation-trends" {
			t.Errorf("PrevSlug = %q", ev.PrevSlug)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("等待 InsightUpdated 事件超时")
	}
}

func TestUpdateRollsBackWhenRevisionFails(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	i := mustCreate(t, f)
	f.revs.failNext = errors.New("disk full")

	newTitle := "Digital Transformation In Five Acts"
	_, _, err := f.svc.Update(context.Background(), i.ID, &model.UpdateInsightRequest{Title: &newTitle})
	if err == nil {
		t.Fatal("版本写入失败应使更新报错")
	}

	after, _ := f.insights.GetByID(context.Background(), i.ID)
	if after.Title != i.Title {
		t.Errorf("文档更新应已回滚: %s", after.Title)
	}
	if f.revs.count() != 0 {
		t.Errorf("不应留下版本记录: %d", f.revs.count())
	}
}

func TestPublish(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	i := mustCreate(t, f)
	published, issues, err := f.svc.Publish(context.Background(), i.ID)
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
	if f.revs.count() != 1 {
		t.Errorf("发布应产生 1 条版本记录, 实际 %d", f.revs.count())
	}

	t.Run("缺少头图alt被拦截", func(t *testing.T) {
		req := validCreateReq()
		req.Slug = "no-alt"
		req.SEO.Title = "No Alt Image | Networkk"
		req.FeaturedImage = &model.FeaturedImage{URL: "https://cdn.networkk.com/cover.jpg"}
		created, issues, err := f.svc.Create(context.Background(), req)
		if err != nil {
			t.Fatal(err)
		}
		if created != nil {
			t.Fatal("缺 alt 的创建应被校验拦截")
		}
		hasA11y := false
		for _, is := range issues {
			if is.Code == model.IssueAccessibility {
				hasA11y = true
			}
		}
		if !hasA11y {
			t.Errorf("期望 AccessibilityIssue, 实际: %v", issues)
		}
	})
}

func TestTransitionInvalidEdge(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	i := mustCreate(t, f)
	_, err := f.svc.Transition(context.Background(), i.ID, model.PageStatusArchived)
	if !errors.Is(err, constant.ErrInvalidTransition) {
		t.Errorf("draft -> archived 应返回 ErrInvalidTransition, 实际: %v", err)
	}
}

func TestDelete(t *testing.T) {
	f := newFixture()
	defer f.bus.Shutdown()

	i := mustCreate(t, f)
	if err := f.svc.Delete(context.Background(), i.ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	if _, err := f.svc.GetByID(context.Background(), i.ID); !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("删除后应返回 ErrNotFound, 实际: %v", err)
	}
}
