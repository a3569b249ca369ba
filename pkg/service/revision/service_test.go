package revision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/networkk/networkk-app/pkg/config"
	"github.com/networkk/networkk-app/pkg/constant"
	"github.com/networkk/networkk-app/pkg/domain/model"
	"github.com/networkk/networkk-app/pkg/domain/repository"
	"github.com/networkk/networkk-app/pkg/idgen"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	m.Run()
}

type entityKey struct {
	entityType string
	dbID       uint
}

type fakeRevisionRepo struct {
	mu      sync.Mutex
	nextID  int
	byKey   map[entityKey][]*model.Revision
	deleted []entityKey // DeleteOldVersions 调用记录
}

func newFakeRevisionRepo() *fakeRevisionRepo {
	return &fakeRevisionRepo{byKey: make(map[entityKey][]*model.Revision)}
}

func (f *fakeRevisionRepo) Create(_ context.Context, params *model.CreateRevisionParams) (*model.Revision, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := entityKey{params.EntityType, params.EntityDBID}
	f.nextID++
	rev := &model.Revision{
		ID:         fmt.Sprintf("rev%d", f.nextID),
		EntityType: params.EntityType,
		Version:    len(f.byKey[key]) + 1,
		Snapshot:   params.Snapshot,
		CreatedAt:  time.Now(),
	}
	f.byKey[key] = append(f.byKey[key], rev)
	return rev, nil
}

func (f *fakeRevisionRepo) GetByEntityAndVersion(_ context.Context, entityType string, dbID uint, version int) (*model.Revision, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.byKey[entityKey{entityType, dbID}] {
		if r.Version == version {
			return r, nil
		}
	}
	return nil, constant.ErrNotFound
}

func (f *fakeRevisionRepo) ListByEntity(_ context.Context, entityType string, dbID uint, page, pageSize int) ([]model.RevisionListItem, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	revs := f.byKey[entityKey{entityType, dbID}]
	var items []model.RevisionListItem
	for i := len(revs) - 1; i >= 0; i-- {
		items = append(items, model.RevisionListItem{
			ID:         revs[i].ID,
			EntityType: revs[i].EntityType,
			Version:    revs[i].Version,
			CreatedAt:  revs[i].CreatedAt,
		})
	}
	return items, int64(len(revs)), nil
}

func (f *fakeRevisionRepo) GetLatestVersion(_ context.Context, entityType string, dbID uint) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byKey[entityKey{entityType, dbID}]), nil
}

func (f *fakeRevisionRepo) CountByEntity(_ context.Context, entityType string, dbID uint) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byKey[entityKey{entityType, dbID}]), nil
}

func (f *fakeRevisionRepo) DeleteOldVersions(_ context.Context, entityType string, dbID uint, keepCount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := entityKey{entityType, dbID}
	f.deleted = append(f.deleted, key)
	if revs := f.byKey[key]; len(revs) > keepCount {
		f.byKey[key] = revs[len(revs)-keepCount:]
	}
	return nil
}

func (f *fakeRevisionRepo) ListEntitiesWithHistory(_ context.Context, entityType string) ([]uint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []uint
	for key := range f.byKey {
		if key.entityType == entityType {
			ids = append(ids, key.dbID)
		}
	}
	return ids, nil
}

type fakePageRepo struct {
	mu    sync.Mutex
	pages map[string]*model.Page
}

func (f *fakePageRepo) Create(context.Context, *model.Page) (*model.Page, error) {
	return nil, errors.New("not implemented")
}
func (f *fakePageRepo) GetByID(_ context.Context, id string) (*model.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pages[id]
	if !ok {
		return nil, constant.ErrNotFound
	}
	cp := *p
	return &cp, nil
}
func (f *fakePageRepo) GetBySlug(context.Context, string) (*model.Page, error) {
	return nil, constant.ErrNotFound
}
func (f *fakePageRepo) List(context.Context, *model.ListPagesOptions) ([]*model.Page, int, error) {
	return nil, 0, nil
}
func (f *fakePageRepo) Update(_ context.Context, p *model.Page) (*model.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.pages[p.ID]; !ok {
		return nil, constant.ErrNotFound
	}
	cp := *p
	f.pages[p.ID] = &cp
	return p, nil
}
func (f *fakePageRepo) Delete(context.Context, string) error { return constant.ErrNotFound }
func (f *fakePageRepo) ExistsBySlug(context.Context, string, string) (bool, error) {
	return false, nil
}
func (f *fakePageRepo) ExistsBySeoTitle(context.Context, string, string) (bool, error) {
	return false, nil
}
func (f *fakePageRepo) ListScheduledBefore(context.Context, time.Time) ([]*model.Page, error) {
	return nil, nil
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

type fakeTxManager struct {
	pageRepo     *fakePageRepo
	revisionRepo *fakeRevisionRepo
}

func (f *fakeTxManager) Do(_ context.Context, fn func(repos repository.Repositories) error) error {
	return fn(repository.Repositories{
		Page:     f.pageRepo,
		Insight:  fakeInsightRepo{},
		Revision: f.revisionRepo,
	})
}

func newFixture(keepCount int) (Service, *fakePageRepo, *fakeRevisionRepo) {
	pages := &fakePageRepo{pages: make(map[string]*model.Page)}
	revs := newFakeRevisionRepo()
	cfg := config.NewFromMap(map[string]any{config.KeyRevisionKeep: keepCount})
	svc := NewService(&fakeTxManager{pageRepo: pages, revisionRepo: revs}, revs, cfg)
	return svc, pages, revs
}

// seedPage 放入一个带两条历史的页面：v1 标题 "Old Title For The About Page"，当前标题不同。
func seedPage(t *testing.T, pages *fakePageRepo, revs *fakeRevisionRepo) (string, uint) {
	t.Helper()
	const dbID = uint(7)
	id, err := idgen.GeneratePublicID(dbID, idgen.EntityTypePage)
	if err != nil {
		t.Fatal(err)
	}

	old := &model.Page{ID: id, Slug: "about", Title: "Old Title For The About Page", Status: model.PageStatusDraft}
	snap, _ := json.Marshal(old)
	if _, err := revs.Create(context.Background(), &model.CreateRevisionParams{
		EntityType: model.RevisionEntityPage, EntityDBID: dbID, Snapshot: snap,
	}); err != nil {
		t.Fatal(err)
	}

	current := &model.Page{ID: id, Slug: "about", Title: "Current Title Of The Page", Status: model.PageStatusReview}
	pages.pages[id] = current
	return id, dbID
}

func TestListAndGet(t *testing.T) {
	svc, pages, revs := newFixture(0)
	id, _ := seedPage(t, pages, revs)

	resp, err := svc.List(context.Background(), model.RevisionEntityPage, id, 1, 20)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if resp.Total != 1 || len(resp.List) != 1 {
		t.Fatalf("期望 1 条历史, 实际 total=%d len=%d", resp.Total, len(resp.List))
	}
	if resp.List[0].Version != 1 {
		t.Errorf("版本号应为 1, 实际 %d", resp.List[0].Version)
	}

	rev, err := svc.Get(context.Background(), model.RevisionEntityPage, id, 1)
	if err != nil {
		t.Fatalf("Get 失败: %v", err)
	}
	if rev.EntityID != id {
		t.Errorf("EntityID 应回填公共 ID, 实际 %q", rev.EntityID)
	}
	var snap model.Page
	if err := json.Unmarshal(rev.Snapshot, &snap); err != nil {
		t.Fatal(err)
	}
	if snap.Title != "Old Title For The About Page" {
		t.Errorf("快照标题不符: %q", snap.Title)
	}

	t.Run("不存在的版本", func(t *testing.T) {
		_, err := svc.Get(context.Background(), model.RevisionEntityPage, id, 99)
		if !errors.Is(err, constant.ErrNotFound) {
			t.Errorf("期望 ErrNotFound, 实际: %v", err)
		}
	})

	t.Run("错误的实体类型", func(t *testing.T) {
		_, err := svc.Get(context.Background(), model.RevisionEntityInsight, id, 1)
		if !errors.Is(err, constant.ErrInvalidPublicID) {
			t.Errorf("页面 ID 不能按文章解码, 实际: %v", err)
		}
	})
}

// 回滚把文档覆盖回目标快照，且先把当前状态追加成新版本，历史链不断。
func TestRestore(t *testing.T) {
	svc, pages, revs := newFixture(0)
	id, dbID := seedPage(t, pages, revs)

	if err := svc.Restore(context.Background(), model.RevisionEntityPage, id, 1); err != nil {
		t.Fatalf("回滚失败: %v", err)
	}

	after, err := pages.GetByID(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if after.Title != "Old Title For The About Page" {
		t.Errorf("文档应回到 v1 状态, 实际标题 %q", after.Title)
	}

	latest, _ := revs.GetLatestVersion(context.Background(), model.RevisionEntityPage, dbID)
	if latest != 2 {
		t.Fatalf("回滚应追加 1 条新版本, 最新版本应为 2, 实际 %d", latest)
	}
	v2, _ := revs.GetByEntityAndVersion(context.Background(), model.RevisionEntityPage, dbID, 2)
	var preRestore model.Page
	if err := json.Unmarshal(v2.Snapshot, &preRestore); err != nil {
		t.Fatal(err)
	}
	if preRestore.Title != "Current Title Of The Page" {
		t.Errorf("v2 快照应是回滚前的当前状态, 实际 %q", preRestore.Title)
	}
}

func TestCleanup(t *testing.T) {
	t.Run("keepCount为0时不清理", func(t *testing.T) {
		svc, pages, revs := newFixture(0)
		seedPage(t, pages, revs)

		n, err := svc.Cleanup(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if n != 0 || len(revs.deleted) != 0 {
			t.Errorf("不应触发清理: processed=%d calls=%d", n, len(revs.deleted))
		}
	})

	t.Run("清理每个有历史的实体", func(t *testing.T) {
		svc, pages, revs := newFixture(5)
		seedPage(t, pages, revs)

		n, err := svc.Cleanup(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if n != 1 {
			t.Errorf("应处理 1 个实体, 实际 %d", n)
		}
		if len(revs.deleted) != 1 || revs.deleted[0].entityType != model.RevisionEntityPage {
			t.Errorf("DeleteOldVersions 调用记录不符: %v", revs.deleted)
		}
	})
}
