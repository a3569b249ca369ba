package seo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/networkk/networkk-app/pkg/constant"
	"github.com/networkk/networkk-app/pkg/domain/model"
	"github.com/networkk/networkk-app/pkg/service/builder"
)

type fakePageRepo struct {
	pages []*model.Page
}

func (f *fakePageRepo) Create(context.Context, *model.Page) (*model.Page, error) {
	return nil, errors.New("not implemented")
}
func (f *fakePageRepo) GetByID(context.Context, string) (*model.Page, error) {
	return nil, constant.ErrNotFound
}
func (f *fakePageRepo) GetBySlug(context.Context, string) (*model.Page, error) {
	return nil, constant.ErrNotFound
}
func (f *fakePageRepo) List(_ context.Context, options *model.ListPagesOptions) ([]*model.Page, int, error) {
	start := (options.Page - 1) * options.PageSize
	if start >= len(f.pages) {
		return nil, len(f.pages), nil
	}
	end := start + options.PageSize
	if end > len(f.pages) {
		end = len(f.pages)
	}
	return f.pages[start:end], len(f.pages), nil
}
func (f *fakePageRepo) Update(context.Context, *model.Page) (*model.Page, error) {
	return nil, errors.New("not implemented")
}
func (f *fakePageRepo) Delete(context.Context, string) error { return constant.ErrNotFound }
func (f *fakePageRepo) ExistsBySlug(context.Context, string, string) (bool, error) {
	return false, nil
}
func (f *fakePageRepo) ExistsBySeoTitle(_ context.Context, title, excludeID string) (bool, error) {
	for _, p := range f.pages {
		if p.ID != excludeID && p.SEO != nil && p.SEO.Title == title {
			return true, nil
		}
	}
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

func validSEO(title string) *model.SEO {
	return &model.SEO{
		Title:       title,
		Description: strings.Repeat("Networkk is a consulting firm for the enterprise. ", 3)[:130],
		Canonical:   "https://networkk.com/" + strings.ToLower(strings.Fields(title)[0]),
	}
}

func TestLint(t *testing.T) {
	pages := &fakePageRepo{pages: []*model.Page{
		{
			ID: "pg1", Slug: "about", Title: "About Our Firm And Its History",
			Status: model.PageStatusPublished, SEO: validSEO("About Us | Networkk"),
			Blocks: []model.BlockInstance{},
		},
		{
			// 缺 SEO 且 slug 非法，应贡献 2 个问题
			ID: "pg2", Slug: "Bad Slug!", Title: "Another Marketing Page Title",
			Status: model.PageStatusDraft,
			Blocks: []model.BlockInstance{},
		},
		{
			// SEO 标题与 pg1 撞车
			ID: "pg3", Slug: "history", Title: "History Of The Consulting Firm",
			Status: model.PageStatusDraft, SEO: validSEO("About Us | Networkk"),
			Blocks: []model.BlockInstance{},
		},
	}}

	svc := NewService(pages, fakeInsightRepo{}, builder.NewValidator(builder.NewRegistry()))

	report, err := svc.Lint(context.Background())
	if err != nil {
		t.Fatalf("体检失败: %v", err)
	}

	if report.TotalDocs != 3 {
		t.Errorf("应扫描 3 个文档, 实际 %d", report.TotalDocs)
	}
	// 标题冲突是对称的：pg1 与 pg3 互相撞车，两边都要上报
	if len(report.Entries) != 3 {
		t.Fatalf("应有 3 个带问题的文档, 实际 %d: %v", len(report.Entries), report.Entries)
	}

	byID := map[string]model.LintEntry{}
	for _, e := range report.Entries {
		byID[e.ID] = e
	}

	if e, ok := byID["pg1"]; !ok || len(e.Issues) != 1 || e.Issues[0].Code != model.IssueSeoTitleConflict {
		t.Errorf("pg1 应只有标题冲突问题: %v", e.Issues)
	}
	if e, ok := byID["pg2"]; !ok || len(e.Issues) != 2 {
		t.Errorf("pg2 应有 2 个问题: %v", e.Issues)
	}
	if e, ok := byID["pg3"]; !ok || len(e.Issues) != 1 || e.Issues[0].Code != model.IssueSeoTitleConflict {
		t.Errorf("pg3 应只有标题冲突问题: %v", e.Issues)
	}
	if report.IssueCount != 4 {
		t.Errorf("问题总数应为 4, 实际 %d", report.IssueCount)
	}
}
