package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/networkk/networkk-app/pkg/constant"
	"github.com/networkk/networkk-app/pkg/domain/model"
)

type fakePageRepo struct {
	pages map[string]*model.Page
}

func (f *fakePageRepo) Create(context.Context, *model.Page) (*model.Page, error) {
	return nil, errors.New("not implemented")
}
func (f *fakePageRepo) GetByID(context.Context, string) (*model.Page, error) {
	return nil, constant.ErrNotFound
}
func (f *fakePageRepo) GetBySlug(_ context.Context, slug string) (*model.Page, error) {
	p, ok := f.pages[slug]
	if !ok {
		return nil, constant.ErrNotFound
	}
	return p, nil
}
func (f *fakePageRepo) List(context.Context, *model.ListPagesOptions) ([]*model.Page, int, error) {
	return nil, 0, nil
}
func (f *fakePageRepo) Update(context.Context, *model.Page) (*model.Page, error) {
	return nil, errors.New("not implemented")
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

type fakeInsightRepo struct {
	insights map[string]*model.Insight
}

func (f *fakeInsightRepo) Create(context.Context, *model.Insight) (*model.Insight, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeInsightRepo) GetByID(context.Context, string) (*model.Insight, error) {
	return nil, constant.ErrNotFound
}
func (f *fakeInsightRepo) GetBySlug(_ context.Context, slug string) (*model.Insight, error) {
	i, ok := f.insights[slug]
	if !ok {
		return nil, constant.ErrNotFound
	}
	return i, nil
}
func (f *fakeInsightRepo) List(context.Context, *model.ListInsightsOptions) ([]*model.Insight, int, error) {
	return nil, 0, nil
}
func (f *fakeInsightRepo) Update(context.Context, *model.Insight) (*model.Insight, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeInsightRepo) Delete(context.Context, string) error { return constant.ErrNotFound }
func (f *fakeInsightRepo) ExistsBySlug(context.Context, string, string) (bool, error) {
	return false, nil
}
func (f *fakeInsightRepo) ExistsBySeoTitle(context.Context, string, string) (bool, error) {
	return false, nil
}

// Redis 未配置（rdb 为 nil）时整条读取路径直查仓储，行为不变。
func TestGetPageWithoutRedis(t *testing.T) {
	pages := &fakePageRepo{pages: map[string]*model.Page{
		"about": {Slug: "about", Title: "About Our Firm And Its History", Status: model.PageStatusPublished},
		"draft": {Slug: "draft", Title: "A Draft Page Not Yet Visible", Status: model.PageStatusDraft},
	}}
	svc := NewService(nil, pages, &fakeInsightRepo{})

	tests := []struct {
		name    string
		slug    string
		wantErr bool
	}{
		{"已发布页面可读", "about", false},
		{"草稿对公开读取不可见", "draft", true},
		{"不存在的slug", "missing", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := svc.GetPage(context.Background(), tt.slug)
			if tt.wantErr {
				if !errors.Is(err, constant.ErrNotFound) {
					t.Errorf("期望 ErrNotFound, 实际: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("读取失败: %v", err)
			}
			if p.Slug != tt.slug {
				t.Errorf("slug 不符: %s", p.Slug)
			}
		})
	}
}

func TestGetInsightWithoutRedis(t *testing.T) {
	insights := &fakeInsightRepo{insights: map[string]*model.Insight{
		"trends": {Slug: "trends", Status: model.PageStatusPublished},
	}}
	svc := NewService(nil, &fakePageRepo{}, insights)

	if _, err := svc.GetInsight(context.Background(), "trends"); err != nil {
		t.Errorf("已发布文章应可读: %v", err)
	}
	if _, err := svc.GetInsight(context.Background(), "missing"); !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("期望 ErrNotFound, 实际: %v", err)
	}
}

// 缓存写入与失效在 rdb 为 nil 时必须是安全的空操作。
func TestNilRedisOps(t *testing.T) {
	svc := NewService(nil, &fakePageRepo{}, &fakeInsightRepo{})
	svc.StorePage(context.Background(), &model.Page{Slug: "x", Status: model.PageStatusPublished})
	svc.InvalidatePage(context.Background(), "x")
	svc.StoreInsight(context.Background(), &model.Insight{Slug: "y", Status: model.PageStatusPublished})
	svc.InvalidateInsight(context.Background(), "y")
}
