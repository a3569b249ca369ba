// internal/app/bootstrap/bootstrap.go
package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/networkk/networkk-app/ent"
	"github.com/networkk/networkk-app/pkg/domain/model"
	"github.com/networkk/networkk-app/pkg/domain/repository"
)

// Bootstrapper 负责首次启动时的数据库初始化：同步 Schema 并播种默认内容。
type Bootstrapper struct {
	entClient *ent.Client
	pageRepo  repository.PageRepository
}

func NewBootstrapper(entClient *ent.Client, pageRepo repository.PageRepository) *Bootstrapper {
	return &Bootstrapper{
		entClient: entClient,
		pageRepo:  pageRepo,
	}
}

func (b *Bootstrapper) InitializeDatabase() error {
	log.Println("--- 开始执行数据库初始化引导程序 ---")

	if err := b.entClient.Schema.Create(context.Background()); err != nil {
		return fmt.Errorf("数据库 schema 创建/更新失败: %w", err)
	}
	log.Println("--- 数据库 Schema 同步成功 ---")

	b.initDefaultPages()

	log.Println("--- 数据库初始化引导程序执行完成 ---")
	return nil
}

// initDefaultPages 在页面表为空时播种一个示例页面，
// 让编辑在全新安装后立刻有一份可预览、可发布的文档。
func (b *Bootstrapper) initDefaultPages() {
	log.Println("--- 开始初始化默认页面 (Page 表) ---")
	ctx := context.Background()

	pageCount, err := b.entClient.Page.Query().Count(ctx)
	if err != nil {
		log.Printf("⚠️ 失败: 查询页面数量失败: %v", err)
		return
	}
	if pageCount > 0 {
		log.Printf("--- 页面表已有 %d 条数据，跳过默认页面初始化。---", pageCount)
		return
	}

	about := &model.Page{
		Slug:   "about",
		Title:  "About Our Firm And Its History",
		Status: model.PageStatusDraft,
		SEO: &model.SEO{
			Title:       "About Us | Networkk",
			Description: "Learn about our firm, the people behind it, and the principles that have guided two decades of consulting work on infrastructure and product strategy.",
			Canonical:   "https://networkk.com/about",
		},
		Blocks: []model.BlockInstance{
			{
				ID:   "b1",
				Type: model.BlockTypeHero,
				Props: &model.HeroProps{
					Title:    "Leadership You Can Trust Today",
					Subtitle: "Two decades of steady hands on hard problems.",
					Media: &model.MediaRef{
						Image: "https://networkk.com/media/about-hero.jpg",
						Alt:   "Our leadership team gathered around a conference table",
					},
					CTAs: []model.CTALink{
						{Label: "Meet the team", Href: "/team", Variant: "primary"},
					},
				},
			},
		},
	}

	if _, err := b.pageRepo.Create(ctx, about); err != nil {
		log.Printf("⚠️ 失败: 创建默认页面 '%s' 失败: %v", about.Slug, err)
		return
	}
	log.Printf("    - 默认页面 '/%s' 已创建（草稿状态）。", about.Slug)
}
