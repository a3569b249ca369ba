package builder

import (
	"strings"
	"testing"

	"github.com/networkk/networkk-app/pkg/domain/model"
)

func alwaysUnique(string) bool { return true }

// validSEO 构造一个满足全部长度边界的 SEO 对象。
func validSEO() *model.SEO {
	return &model.SEO{
		Title:       "About Us | Networkk",
		Description: strings.Repeat("Networkk is a consulting firm. ", 5)[:130],
		Canonical:   "https://networkk.com/about",
	}
}

func validHeroBlock(id string) model.BlockInstance {
	return model.BlockInstance{
		ID:   id,
		Type: model.BlockTypeHero,
		Props: &model.HeroProps{
			Title: "Leadership You Can Trust Today",
			CTAs:  []model.CTALink{},
		},
	}
}

func validPage() *model.Page {
	return &model.Page{
		ID:     "pg1",
		Slug:   "about",
		Title:  "About Our Firm And Its History",
		Status: model.PageStatusDraft,
		SEO:    validSEO(),
		Blocks: []model.BlockInstance{validHeroBlock("b1")},
	}
}

func countIssues(list []model.ValidationIssue, code model.IssueCode) int {
	n := 0
	for _, issue := range list {
		if issue.Code == code {
			n++
		}
	}
	return n
}

func TestValidatePage(t *testing.T) {
	v := NewValidator(NewRegistry())

	tests := []struct {
		name    string
		mutate  func(p *model.Page)
		oracle  UniquenessOracle
		want    int
		wantOne model.IssueCode
	}{
		{
			name:   "合法文档返回空问题列表",
			mutate: func(p *model.Page) {},
			want:   0,
		},
		{
			name: "非法slug",
			mutate: func(p *model.Page) {
				p.Slug = "About Page"
			},
			want:    1,
			wantOne: model.IssueInvalidSlug,
		},
		{
			name: "标题过短",
			mutate: func(p *model.Page) {
				p.Title = "About"
			},
			want:    1,
			wantOne: model.IssueTitleLength,
		},
		{
			name: "缺少SEO",
			mutate: func(p *model.Page) {
				p.SEO = nil
			},
			want:    1,
			wantOne: model.IssueSeoMissing,
		},
		{
			name: "SEO标题过长",
			mutate: func(p *model.Page) {
				p.SEO.Title = strings.Repeat("x", 61)
			},
			want:    1,
			wantOne: model.IssueSeoLength,
		},
		{
			name: "SEO描述过短",
			mutate: func(p *model.Page) {
				p.SEO.Description = "too short"
			},
			want:    1,
			wantOne: model.IssueSeoLength,
		},
		{
			name:   "SEO标题冲突",
			mutate: func(p *model.Page) {},
			oracle: func(string) bool { return false },
			want:   1,
			wantOne: model.IssueSeoTitleConflict,
		},
		{
			name: "第二个Hero产生DuplicateHeading",
			mutate: func(p *model.Page) {
				p.Blocks = append(p.Blocks, validHeroBlock("b2"))
			},
			want:    1,
			wantOne: model.IssueDuplicateHeading,
		},
		{
			name: "重复的区块ID",
			mutate: func(p *model.Page) {
				second := validHeroBlock("b1")
				second.Type = model.BlockTypeCTA
				second.Props = &model.CTAProps{
					Heading:    "Talk To Our Advisory Team",
					PrimaryCTA: model.CTALink{Label: "Contact", Href: "/contact"},
				}
				p.Blocks = append(p.Blocks, second)
			},
			want:    1,
			wantOne: model.IssueDuplicateBlockID,
		},
		{
			name: "未注册的区块类型",
			mutate: func(p *model.Page) {
				p.Blocks = append(p.Blocks, model.BlockInstance{
					ID:    "b9",
					Type:  "VideoWall",
					Props: model.UnknownProps{},
				})
			},
			want:    1,
			wantOne: model.IssueUnknownBlockType,
		},
		{
			name: "布局越出栅格",
			mutate: func(p *model.Page) {
				p.Blocks[0].Layout = &model.BlockLayout{ColSpan: 13}
			},
			want:    1,
			wantOne: model.IssueInvalidLayout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPage()
			tt.mutate(p)

			oracle := tt.oracle
			if oracle == nil {
				oracle = alwaysUnique
			}

			got := v.ValidatePage(p, oracle)
			if len(got) != tt.want {
				t.Fatalf("期望 %d 个问题, 实际 %d 个: %v", tt.want, len(got), got)
			}
			if tt.want > 0 && got[0].Code != tt.wantOne {
				t.Errorf("期望问题类型 %s, 实际 %s", tt.wantOne, got[0].Code)
			}
		})
	}
}

// TilesGrid 只有 2 个卡片时，应恰好产出一条 items 的 min 3 违规。
func TestValidatePage_TilesGridCardinality(t *testing.T) {
	v := NewValidator(NewRegistry())

	p := validPage()
	p.Blocks = append(p.Blocks, model.BlockInstance{
		ID:   "b2",
		Type: model.BlockTypeTilesGrid,
		Props: &model.TilesGridProps{
			Heading: "What We Offer",
			Items: []model.TileItem{
				{Title: "Strategy", Description: "Long term planning", Href: "/services/strategy"},
				{Title: "Delivery", Description: "Hands on execution", Href: "/services/delivery"},
			},
		},
	})

	got := v.ValidatePage(p, alwaysUnique)
	if len(got) != 1 {
		t.Fatalf("期望恰好 1 个问题, 实际 %d 个: %v", len(got), got)
	}
	issue := got[0]
	if issue.Code != model.IssueSchemaViolation || issue.BlockID != "b2" || issue.Field != "items" || issue.Constraint != "min 3" {
		t.Errorf("问题内容不符: %+v", issue)
	}
}

// 每个缺少替代文本的媒体区块恰好产出一条 AccessibilityIssue。
func TestValidatePage_Accessibility(t *testing.T) {
	v := NewValidator(NewRegistry())

	p := validPage()
	hero := p.Blocks[0].Props.(*model.HeroProps)
	hero.Media = &model.MediaRef{Image: "https://cdn.networkk.com/hero.jpg", Alt: ""}

	p.Blocks = append(p.Blocks, model.BlockInstance{
		ID:   "b2",
		Type: model.BlockTypeLogosStrip,
		Props: &model.LogosStripProps{
			Logos: []model.MediaRef{
				{Image: "https://cdn.networkk.com/logo1.png", Alt: ""},
				{Image: "https://cdn.networkk.com/logo2.png", Alt: "Acme Corp"},
				{Image: "https://cdn.networkk.com/logo3.png", Alt: "Globex"},
			},
		},
	})

	got := v.ValidatePage(p, alwaysUnique)
	if n := countIssues(got, model.IssueAccessibility); n != 2 {
		t.Errorf("期望每个缺 alt 的区块各 1 条可访问性问题(共2条), 实际 %d 条: %v", n, got)
	}
	// 空 alt 只由可访问性规则报告，不重复计为 schema 违规
	if n := countIssues(got, model.IssueSchemaViolation); n != 0 {
		t.Errorf("期望 0 条 schema 违规, 实际 %d 条: %v", n, got)
	}
}

// 校验不短路：一次调用收齐所有问题。
func TestValidatePage_CollectsAllIssues(t *testing.T) {
	v := NewValidator(NewRegistry())

	p := validPage()
	p.Slug = "Bad Slug"
	p.SEO = nil
	p.Blocks[0].Props.(*model.HeroProps).Title = "short"

	got := v.ValidatePage(p, alwaysUnique)
	if len(got) != 3 {
		t.Fatalf("期望收齐 3 个问题, 实际 %d 个: %v", len(got), got)
	}
}

// 校验是纯函数，不得修改输入文档。
func TestValidatePage_DoesNotMutateInput(t *testing.T) {
	v := NewValidator(NewRegistry())

	p := validPage()
	before := p.Blocks[0].Props.(*model.HeroProps).Title

	v.ValidatePage(p, alwaysUnique)

	if p.Blocks[0].Props.(*model.HeroProps).Title != before {
		t.Error("校验修改了输入文档")
	}
}

func TestValidateInsight(t *testing.T) {
	v := NewValidator(NewRegistry())

	valid := func() *model.Insight {
		return &model.Insight{
			ID:      "in1",
			Slug:    "market-outlook-2026",
			Title:   "Market Outlook For The Coming Year",
			Excerpt: strings.Repeat("A close look at what the coming year holds. ", 2)[:80],
			Content: strings.Repeat("The market continues to evolve in interesting ways. ", 4),
			Author:  model.InsightAuthor{Name: "Dana Reeve"},
			SEO: &model.SEO{
				Title:       "Market Outlook 2026 | Networkk",
				Description: strings.Repeat("Our analysts break down the trends to watch. ", 3)[:130],
				Canonical:   "https://networkk.com/insights/market-outlook-2026",
			},
		}
	}

	t.Run("合法文章返回空问题列表", func(t *testing.T) {
		if got := v.ValidateInsight(valid(), alwaysUnique); len(got) != 0 {
			t.Errorf("期望空列表, 实际: %v", got)
		}
	})

	t.Run("摘要过短", func(t *testing.T) {
		m := valid()
		m.Excerpt = "too short"
		got := v.ValidateInsight(m, alwaysUnique)
		if len(got) != 1 || got[0].Field != "excerpt" {
			t.Errorf("期望 excerpt 长度违规, 实际: %v", got)
		}
	})

	t.Run("头图缺少替代文本", func(t *testing.T) {
		m := valid()
		m.FeaturedImage = &model.FeaturedImage{URL: "https://cdn.networkk.com/cover.jpg"}
		got := v.ValidateInsight(m, alwaysUnique)
		if countIssues(got, model.IssueAccessibility) != 1 {
			t.Errorf("期望 1 条可访问性问题, 实际: %v", got)
		}
	})
}
