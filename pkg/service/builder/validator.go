/*
 * @Description: 文档校验引擎
 * @Author: 安知鱼
 * @Date: 2026-02-11 10:21:05
 * @LastEditTime: 2026-02-11 10:21:05
 * @LastEditors: 安知鱼
 */
package builder

import (
	"fmt"
	"unicode/utf8"

	"github.com/networkk/networkk-app/pkg/domain/model"
)

// maxBlockDepth 是区块树的最大嵌套深度。
// 区块是树不是图，正常生产者不会制造环；超深嵌套按环处理，防御性拒绝。
const maxBlockDepth = 32

// UniquenessOracle 回答「该 SEO 标题在语料库中是否唯一」。
// 跨文档唯一性需要知道所有其他文档，必须由调用方提供。
type UniquenessOracle func(title string) bool

// Validator 是无状态的校验引擎。
// Validate 系列方法是纯函数：不修改输入，一次调用收齐全部问题后返回。
// 空问题列表意味着文档可发布。
type Validator struct {
	registry *Registry
}

// NewValidator 创建校验引擎。
func NewValidator(registry *Registry) *Validator {
	return &Validator{registry: registry}
}

// ValidatePage 校验整个页面文档。
func (v *Validator) ValidatePage(p *model.Page, isTitleUnique UniquenessOracle) []model.ValidationIssue {
	var list []model.ValidationIssue

	if !model.SlugPattern.MatchString(p.Slug) {
		list = append(list, model.ValidationIssue{
			Code:       model.IssueInvalidSlug,
			Field:      "slug",
			Constraint: "lowercase letters, digits and hyphens only",
			Message:    fmt.Sprintf("slug %q 不合法", p.Slug),
		})
	}

	if n := utf8.RuneCountInString(p.Title); n < model.PageTitleMinLen || n > model.PageTitleMaxLen {
		list = append(list, model.ValidationIssue{
			Code:       model.IssueTitleLength,
			Field:      "title",
			Constraint: fmt.Sprintf("between %d and %d", model.PageTitleMinLen, model.PageTitleMaxLen),
		})
	}

	list = append(list, v.validateSEO(p.SEO, isTitleUnique)...)
	list = append(list, v.validateBlocks(p.Blocks)...)
	return list
}

// ValidateInsight 校验洞察文章。文章没有区块树，约束集中在正文与 SEO。
func (v *Validator) ValidateInsight(m *model.Insight, isTitleUnique UniquenessOracle) []model.ValidationIssue {
	var list []model.ValidationIssue

	if !model.SlugPattern.MatchString(m.Slug) {
		list = append(list, model.ValidationIssue{
			Code:       model.IssueInvalidSlug,
			Field:      "slug",
			Constraint: "lowercase letters, digits and hyphens only",
			Message:    fmt.Sprintf("slug %q 不合法", m.Slug),
		})
	}

	if n := utf8.RuneCountInString(m.Title); n < model.PageTitleMinLen || n > model.PageTitleMaxLen {
		list = append(list, model.ValidationIssue{
			Code:       model.IssueTitleLength,
			Field:      "title",
			Constraint: fmt.Sprintf("between %d and %d", model.PageTitleMinLen, model.PageTitleMaxLen),
		})
	}

	if n := utf8.RuneCountInString(m.Excerpt); n < model.InsightExcerptMinLen || n > model.InsightExcerptMaxLen {
		list = append(list, model.ValidationIssue{
			Code:       model.IssueSchemaViolation,
			Field:      "excerpt",
			Constraint: fmt.Sprintf("between %d and %d", model.InsightExcerptMinLen, model.InsightExcerptMaxLen),
		})
	}

	if utf8.RuneCountInString(m.Content) < 100 {
		list = append(list, model.ValidationIssue{
			Code:       model.IssueSchemaViolation,
			Field:      "content",
			Constraint: "min length 100",
		})
	}

	if m.Author.Name == "" {
		list = append(list, model.ValidationIssue{
			Code:       model.IssueSchemaViolation,
			Field:      "author.name",
			Constraint: "required",
		})
	}

	if m.FeaturedImage != nil && m.FeaturedImage.Alt == "" {
		list = append(list, model.ValidationIssue{
			Code:    model.IssueAccessibility,
			Field:   "featuredImage.alt",
			Message: "头图缺少替代文本",
		})
	}

	list = append(list, v.validateSEO(m.SEO, isTitleUnique)...)
	return list
}

// validateSEO 校验 SEO 对象：存在性、长度边界、canonical、标题唯一性。
func (v *Validator) validateSEO(seo *model.SEO, isTitleUnique UniquenessOracle) []model.ValidationIssue {
	if seo == nil {
		return []model.ValidationIssue{{
			Code:    model.IssueSeoMissing,
			Field:   "seo",
			Message: "文档缺少 SEO 元数据",
		}}
	}

	var list []model.ValidationIssue

	if n := utf8.RuneCountInString(seo.Title); n < model.SeoTitleMinLen || n > model.SeoTitleMaxLen {
		list = append(list, model.ValidationIssue{
			Code:       model.IssueSeoLength,
			Field:      "seo.title",
			Constraint: fmt.Sprintf("between %d and %d", model.SeoTitleMinLen, model.SeoTitleMaxLen),
		})
	}

	if n := utf8.RuneCountInString(seo.Description); n < model.SeoDescriptionMinLen || n > model.SeoDescriptionMaxLen {
		list = append(list, model.ValidationIssue{
			Code:       model.IssueSeoLength,
			Field:      "seo.description",
			Constraint: fmt.Sprintf("between %d and %d", model.SeoDescriptionMinLen, model.SeoDescriptionMaxLen),
		})
	}

	if seo.Canonical == "" {
		list = append(list, model.ValidationIssue{
			Code:       model.IssueSchemaViolation,
			Field:      "seo.canonical",
			Constraint: "required",
		})
	}

	if isTitleUnique != nil && seo.Title != "" && !isTitleUnique(seo.Title) {
		list = append(list, model.ValidationIssue{
			Code:    model.IssueSeoTitleConflict,
			Field:   "seo.title",
			Message: fmt.Sprintf("SEO 标题 %q 已被其他文档使用", seo.Title),
		})
	}

	return list
}

// validateBlocks 深度遍历区块树，收集结构性与 schema 问题。
func (v *Validator) validateBlocks(blocks []model.BlockInstance) []model.ValidationIssue {
	w := &blockWalker{
		validator: v,
		seenIDs:   make(map[string]bool),
	}
	for i := range blocks {
		w.walk(&blocks[i], 0)
	}
	return w.list
}

type blockWalker struct {
	validator *Validator
	seenIDs   map[string]bool
	heroSeen  bool
	list      []model.ValidationIssue
}

func (w *blockWalker) walk(b *model.BlockInstance, depth int) {
	if depth >= maxBlockDepth {
		w.list = append(w.list, model.ValidationIssue{
			Code:       model.IssueSchemaViolation,
			BlockID:    b.ID,
			Field:      "children",
			Constraint: fmt.Sprintf("max depth %d", maxBlockDepth),
			Message:    "区块嵌套过深，疑似环引用",
		})
		return
	}

	if b.ID == "" {
		w.list = append(w.list, model.ValidationIssue{
			Code:       model.IssueSchemaViolation,
			BlockID:    b.ID,
			Field:      "id",
			Constraint: "required",
		})
	} else if w.seenIDs[b.ID] {
		w.list = append(w.list, model.ValidationIssue{
			Code:    model.IssueDuplicateBlockID,
			BlockID: b.ID,
			Message: fmt.Sprintf("区块 ID %q 在文档内重复", b.ID),
		})
	} else {
		w.seenIDs[b.ID] = true
	}

	// Hero 等价于 H1，每个文档至多一个
	if b.Type == model.BlockTypeHero {
		if w.heroSeen {
			w.list = append(w.list, model.ValidationIssue{
				Code:    model.IssueDuplicateHeading,
				BlockID: b.ID,
				Message: "文档中出现了第二个 H1 等价区块",
			})
		}
		w.heroSeen = true
	}

	w.checkLayout(b)
	w.checkAccessibility(b)
	w.list = append(w.list, w.validator.registry.ValidateProps(b.ID, b.Type, b.Props)...)

	for i := range b.Children {
		w.walk(&b.Children[i], depth+1)
	}
}

// checkLayout 校验 12 列栅格约束。零值表示未设置，取默认值。
func (w *blockWalker) checkLayout(b *model.BlockInstance) {
	if b.Layout == nil {
		return
	}
	if b.Layout.ColSpan != 0 && (b.Layout.ColSpan < 1 || b.Layout.ColSpan > 12) {
		w.list = append(w.list, model.ValidationIssue{
			Code:       model.IssueInvalidLayout,
			BlockID:    b.ID,
			Field:      "layout.colSpan",
			Constraint: "between 1 and 12",
		})
	}
	if b.Layout.RowSpan < 0 {
		w.list = append(w.list, model.ValidationIssue{
			Code:       model.IssueInvalidLayout,
			BlockID:    b.ID,
			Field:      "layout.rowSpan",
			Constraint: "min 1",
		})
	}
}

// checkAccessibility 检查区块携带的媒体引用是否都有替代文本。
// 可访问性是发布门槛：每个存在空 alt 媒体的区块恰好产出一条硬错误。
func (w *blockWalker) checkAccessibility(b *model.BlockInstance) {
	for _, ref := range mediaRefsOf(b.Props) {
		if ref.Image != "" && ref.Alt == "" {
			w.list = append(w.list, model.ValidationIssue{
				Code:    model.IssueAccessibility,
				BlockID: b.ID,
				Message: "媒体引用缺少替代文本",
			})
			return
		}
	}
}

// mediaRefsOf 枚举 props 中携带的全部媒体引用。
func mediaRefsOf(props model.BlockProps) []model.MediaRef {
	switch p := props.(type) {
	case *model.HeroProps:
		if p.Media != nil {
			return []model.MediaRef{*p.Media}
		}
	case *model.CaseStudyProps:
		if p.Media != nil {
			return []model.MediaRef{*p.Media}
		}
	case *model.TeamProfilesProps:
		var refs []model.MediaRef
		for _, m := range p.Members {
			if m.Photo != nil {
				refs = append(refs, *m.Photo)
			}
		}
		return refs
	case *model.LogosStripProps:
		return p.Logos
	}
	return nil
}
