/*
 * @Description: 站点级 SEO 体检服务，扫描全部文档并汇总校验问题
 * @Author: 安知鱼
 * @Date: 2026-02-12 14:47:51
 * @LastEditTime: 2026-02-25 18:30:44
 * @LastEditors: 安知鱼
 */
package seo

import (
	"context"
	"log"
	"time"

	"github.com/networkk/networkk-app/pkg/domain/model"
	"github.com/networkk/networkk-app/pkg/domain/repository"
	"github.com/networkk/networkk-app/pkg/service/builder"
)

// 全量扫描的分页步长。
const scanPageSize = 100

// Service 对语料库里的每个文档跑一遍完整校验，生成体检报告。
// 报告是诊断工具，不是发布门槛：有问题的文档照常保留当前状态。
type Service interface {
	// Lint 扫描全部页面与文章，返回带问题的文档清单
	Lint(ctx context.Context) (*model.LintReport, error)
}

type service struct {
	pageRepo    repository.PageRepository
	insightRepo repository.InsightRepository
	validator   *builder.Validator
}

// NewService 创建 SEO 体检服务。
func NewService(pageRepo repository.PageRepository, insightRepo repository.InsightRepository, validator *builder.Validator) Service {
	return &service{pageRepo: pageRepo, insightRepo: insightRepo, validator: validator}
}

// pageOracle 为单个页面构造唯一性判定，排除其自身。
func (s *service) pageOracle(ctx context.Context, excludeID string) builder.UniquenessOracle {
	return func(title string) bool {
		taken, err := s.pageRepo.ExistsBySeoTitle(ctx, title, excludeID)
		if err != nil {
			log.Printf("[SeoService] 检查页面 SEO 标题唯一性失败: %v", err)
			return true
		}
		if taken {
			return false
		}
		taken, err = s.insightRepo.ExistsBySeoTitle(ctx, title, "")
		if err != nil {
			log.Printf("[SeoService] 检查文章 SEO 标题唯一性失败: %v", err)
			return true
		}
		return !taken
	}
}

func (s *service) insightOracle(ctx context.Context, excludeID string) builder.UniquenessOracle {
	return func(title string) bool {
		taken, err := s.insightRepo.ExistsBySeoTitle(ctx, title, excludeID)
		if err != nil {
			log.Printf("[SeoService] 检查文章 SEO 标题唯一性失败: %v", err)
			return true
		}
		if taken {
			return false
		}
		taken, err = s.pageRepo.ExistsBySeoTitle(ctx, title, "")
		if err != nil {
			log.Printf("[SeoService] 检查页面 SEO 标题唯一性失败: %v", err)
			return true
		}
		return !taken
	}
}

func (s *service) Lint(ctx context.Context) (*model.LintReport, error) {
	report := &model.LintReport{
		CheckedAt: time.Now().Unix(),
		Entries:   []model.LintEntry{},
	}

	if err := s.lintPages(ctx, report); err != nil {
		return nil, err
	}
	if err := s.lintInsights(ctx, report); err != nil {
		return nil, err
	}

	log.Printf("[SeoService] 体检完成: docs=%d, issues=%d", report.TotalDocs, report.IssueCount)
	return report, nil
}

func (s *service) lintPages(ctx context.Context, report *model.LintReport) error {
	for page := 1; ; page++ {
		pages, total, err := s.pageRepo.List(ctx, &model.ListPagesOptions{Page: page, PageSize: scanPageSize})
		if err != nil {
			return err
		}
		for _, p := range pages {
			report.TotalDocs++
			issues := s.validator.ValidatePage(p, s.pageOracle(ctx, p.ID))
			if len(issues) == 0 {
				continue
			}
			report.IssueCount += len(issues)
			report.Entries = append(report.Entries, model.LintEntry{
				EntityType: model.RevisionEntityPage,
				ID:         p.ID,
				Slug:       p.Slug,
				Issues:     issues,
			})
		}
		if page*scanPageSize >= total {
			return nil
		}
	}
}

func (s *service) lintInsights(ctx context.Context, report *model.LintReport) error {
	for page := 1; ; page++ {
		insights, total, err := s.insightRepo.List(ctx, &model.ListInsightsOptions{Page: page, PageSize: scanPageSize})
		if err != nil {
			return err
		}
		for _, i := range insights {
			report.TotalDocs++
			issues := s.validator.ValidateInsight(i, s.insightOracle(ctx, i.ID))
			if len(issues) == 0 {
				continue
			}
			report.IssueCount += len(issues)
			report.Entries = append(report.Entries, model.LintEntry{
				EntityType: model.RevisionEntityInsight,
				ID:         i.ID,
				Slug:       i.Slug,
				Issues:     issues,
			})
		}
		if page*scanPageSize >= total {
			return nil
		}
	}
}
