/*
 * @Description: 应用装配：初始化基础设施、仓储、服务与路由
 * @Author: 安知鱼
 * @Date: 2026-02-10 16:40:12
 * @LastEditTime: 2026-03-05 10:22:47
 * @LastEditors: 安知鱼
 */
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/networkk/networkk-app/internal/app/bootstrap"
	"github.com/networkk/networkk-app/internal/app/middleware"
	"github.com/networkk/networkk-app/internal/app/task"
	"github.com/networkk/networkk-app/internal/infra/persistence/database"
	ent_impl "github.com/networkk/networkk-app/internal/infra/persistence/ent"
	"github.com/networkk/networkk-app/internal/infra/router"
	"github.com/networkk/networkk-app/internal/pkg/event"
	"github.com/networkk/networkk-app/internal/pkg/version"
	"github.com/networkk/networkk-app/pkg/config"
	auth_handler "github.com/networkk/networkk-app/pkg/handler/auth"
	builder_handler "github.com/networkk/networkk-app/pkg/handler/builder"
	insight_handler "github.com/networkk/networkk-app/pkg/handler/insight"
	page_handler "github.com/networkk/networkk-app/pkg/handler/page"
	preview_handler "github.com/networkk/networkk-app/pkg/handler/preview"
	public_handler "github.com/networkk/networkk-app/pkg/handler/public"
	revision_handler "github.com/networkk/networkk-app/pkg/handler/revision"
	seo_handler "github.com/networkk/networkk-app/pkg/handler/seo"
	"github.com/networkk/networkk-app/pkg/idgen"
	"github.com/networkk/networkk-app/pkg/service/auth"
	"github.com/networkk/networkk-app/pkg/service/builder"
	insight_service "github.com/networkk/networkk-app/pkg/service/insight"
	page_service "github.com/networkk/networkk-app/pkg/service/page"
	"github.com/networkk/networkk-app/pkg/service/parser"
	"github.com/networkk/networkk-app/pkg/service/preview"
	revision_service "github.com/networkk/networkk-app/pkg/service/revision"
	seo_service "github.com/networkk/networkk-app/pkg/service/seo"
	"github.com/networkk/networkk-app/pkg/service/snapshot"
)

// App 聚合应用的根组件，负责启动 HTTP 服务与后台任务。
type App struct {
	cfg         *config.Config
	engine      *gin.Engine
	scheduler   *task.Scheduler
	sqlDB       *sql.DB
	redisClient *redis.Client
	eventBus    *event.EventBus
	previewHub  *preview.Hub

	pageService     page_service.Service
	insightService  insight_service.Service
	revisionService revision_service.Service
	tokenService    auth.TokenService
}

func (a *App) PrintBanner() {
	banner := `

      ███╗   ██╗███████╗████████╗██╗    ██╗██████╗ ██╗  ██╗██╗  ██╗
      ████╗  ██║██╔════╝╚══██╔══╝██║    ██║██╔══██╗██║ ██╔╝██║ ██╔╝
      ██╔██╗ ██║█████╗     ██║   ██║ █╗ ██║██████╔╝█████╔╝ █████╔╝
      ██║╚██╗██║██╔══╝     ██║   ██║███╗██║██╔══██╗██╔═██╗ ██╔═██╗
      ██║ ╚████║███████╗   ██║   ╚███╔███╔╝██║  ██║██║  ██╗██║  ██╗
      ╚═╝  ╚═══╝╚══════╝   ╚═╝    ╚══╝╚══╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝

`
	log.Println(banner)
	log.Println("--------------------------------------------------------")
	log.Printf(" Networkk App - Version: %s", version.GetVersionString())
	log.Println("--------------------------------------------------------")
}

// NewApp 是应用的构造函数，它执行所有的初始化和依赖注入工作
func NewApp() (*App, func(), error) {
	// --- Phase 1: 加载外部配置 ---
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	// --- Phase 2: 初始化基础设施 ---
	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("创建数据库连接池失败: %w", err)
	}
	entClient, err := database.NewEntClient(sqlDB, cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	// Redis 缺席时快照缓存被禁用，公开读取直接走数据库
	redisClient, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("redis 初始化失败: %w", err)
	}

	cleanup := func() {
		log.Println("执行清理操作：关闭数据库连接...")
		sqlDB.Close()
		if redisClient != nil {
			log.Println("关闭 Redis 连接...")
			redisClient.Close()
		}
	}

	// --- Phase 3: 初始化数据仓库层 ---
	pageRepo := ent_impl.NewPageRepo(entClient)
	insightRepo := ent_impl.NewInsightRepo(entClient)
	revisionRepo := ent_impl.NewRevisionRepo(entClient)
	txManager := ent_impl.NewEntTransactionManager(entClient)

	// --- Phase 4: 数据库引导与 ID 编码器 ---
	bootstrapper := bootstrap.NewBootstrapper(entClient, pageRepo)
	if err := bootstrapper.InitializeDatabase(); err != nil {
		return nil, cleanup, fmt.Errorf("数据库初始化失败: %w", err)
	}
	if err := idgen.InitSqidsEncoder(); err != nil {
		return nil, cleanup, fmt.Errorf("初始化 ID 编码器失败: %w", err)
	}
	log.Println("✅ ID 编码器初始化成功")

	// --- Phase 5: 初始化业务逻辑层 ---
	eventBus := event.NewEventBus()
	registry := builder.NewRegistry()
	validator := builder.NewValidator(registry)
	parserSvc := parser.NewService()
	previewHub := preview.NewHub()

	pageSvc := page_service.NewService(txManager, pageRepo, insightRepo, validator, previewHub, eventBus)
	insightSvc := insight_service.NewService(txManager, insightRepo, pageRepo, validator, parserSvc, eventBus)
	revisionSvc := revision_service.NewService(txManager, revisionRepo, cfg)
	seoSvc := seo_service.NewService(pageRepo, insightRepo, validator)
	tokenSvc := auth.NewTokenService(cfg)

	snapshotSvc := snapshot.NewService(redisClient, pageRepo, insightRepo)
	snapshotSvc.RegisterListeners(eventBus)

	// --- Phase 6: 初始化 HTTP 处理器与路由 ---
	mw := middleware.NewMiddleware(tokenSvc)

	appRouter := router.NewRouter(
		auth_handler.NewHandler(tokenSvc, cfg),
		page_handler.NewHandler(pageSvc),
		insight_handler.NewHandler(insightSvc),
		revision_handler.NewHandler(revisionSvc),
		builder_handler.NewHandler(registry),
		preview_handler.NewHandler(previewHub),
		public_handler.NewHandler(snapshotSvc, insightSvc),
		seo_handler.NewHandler(seoSvc),
		mw,
	)

	// --- Phase 7: 配置 Gin 引擎 ---
	if cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.DebugMode)
		log.Println("运行模式: Debug (Gin 将打印详细路由日志)")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("运行模式: Release (Gin 启动日志已禁用)")
	}

	engine := gin.Default()
	err = engine.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})
	if err != nil {
		return nil, cleanup, fmt.Errorf("设置信任代理失败: %w", err)
	}
	engine.ForwardedByClientIP = true
	engine.Use(middleware.Cors())
	appRouter.Setup(engine)

	// --- Phase 8: 后台任务调度器 ---
	scheduler := task.NewScheduler(pageSvc, revisionSvc)

	app := &App{
		cfg:             cfg,
		engine:          engine,
		scheduler:       scheduler,
		sqlDB:           sqlDB,
		redisClient:     redisClient,
		eventBus:        eventBus,
		previewHub:      previewHub,
		pageService:     pageSvc,
		insightService:  insightSvc,
		revisionService: revisionSvc,
		tokenService:    tokenSvc,
	}
	return app, cleanup, nil
}

// Config 返回应用配置
func (a *App) Config() *config.Config {
	return a.cfg
}

// PageService 返回页面服务（用于集成测试注入场景）
func (a *App) PageService() page_service.Service {
	return a.pageService
}

// InsightService 返回文章服务
func (a *App) InsightService() insight_service.Service {
	return a.insightService
}

// RevisionService 返回历史版本服务
func (a *App) RevisionService() revision_service.Service {
	return a.revisionService
}

// TokenService 返回令牌服务
func (a *App) TokenService() auth.TokenService {
	return a.tokenService
}

func (a *App) Run() error {
	a.scheduler.RegisterJobs()
	a.scheduler.Start()
	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8091"
	}
	fmt.Printf("应用程序启动成功，正在监听端口: %s\n", port)

	return a.engine.Run(":" + port)
}

func (a *App) Stop() {
	if a.scheduler != nil {
		a.scheduler.Stop()
		log.Println("任务调度器已停止。")
	}
	if a.previewHub != nil {
		a.previewHub.Close()
		log.Println("预览通道已关闭。")
	}
	if a.eventBus != nil {
		a.eventBus.Shutdown()
		log.Println("事件总线已停止。")
	}
}
