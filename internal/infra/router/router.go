/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-13 11:40:22
 * @LastEditTime: 2026-02-25 20:48:15
 * @LastEditors: 安知鱼
 */
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/networkk/networkk-app/internal/app/middleware"
	auth_handler "github.com/networkk/networkk-app/pkg/handler/auth"
	builder_handler "github.com/networkk/networkk-app/pkg/handler/builder"
	insight_handler "github.com/networkk/networkk-app/pkg/handler/insight"
	page_handler "github.com/networkk/networkk-app/pkg/handler/page"
	preview_handler "github.com/networkk/networkk-app/pkg/handler/preview"
	public_handler "github.com/networkk/networkk-app/pkg/handler/public"
	revision_handler "github.com/networkk/networkk-app/pkg/handler/revision"
	seo_handler "github.com/networkk/networkk-app/pkg/handler/seo"
)

// NoCacheMiddleware 反缓存中间件，编辑后台的 API 响应不允许被 CDN 缓存
func NoCacheMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")

		c.Next()
	})
}

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	authHandler     *auth_handler.Handler
	pageHandler     *page_handler.Handler
	insightHandler  *insight_handler.Handler
	revisionHandler *revision_handler.Handler
	builderHandler  *builder_handler.Handler
	previewHandler  *preview_handler.Handler
	publicHandler   *public_handler.Handler
	seoHandler      *seo_handler.Handler
	mw              *middleware.Middleware
}

// NewRouter 是 Router 的构造函数，通过依赖注入接收所有处理器。
func NewRouter(
	authHandler *auth_handler.Handler,
	pageHandler *page_handler.Handler,
	insightHandler *insight_handler.Handler,
	revisionHandler *revision_handler.Handler,
	builderHandler *builder_handler.Handler,
	previewHandler *preview_handler.Handler,
	publicHandler *public_handler.Handler,
	seoHandler *seo_handler.Handler,
	mw *middleware.Middleware,
) *Router {
	return &Router{
		authHandler:     authHandler,
		pageHandler:     pageHandler,
		insightHandler:  insightHandler,
		revisionHandler: revisionHandler,
		builderHandler:  builderHandler,
		previewHandler:  previewHandler,
		publicHandler:   publicHandler,
		seoHandler:      seoHandler,
		mw:              mw,
	}
}

// Setup 注册全部路由。
func (r *Router) Setup(engine *gin.Engine) {
	api := engine.Group("/api")
	api.Use(NoCacheMiddleware())

	// 认证：用访问密钥换取会话令牌
	api.POST("/auth/token", middleware.CustomRateLimit(10, 20), r.authHandler.Token)

	// 公开读取：营销站点前端，无需认证
	publicGroup := api.Group("/public")
	{
		publicGroup.GET("/pages/:slug", r.publicHandler.GetPage)
		publicGroup.GET("/insights", r.publicHandler.ListInsights)
		publicGroup.GET("/insights/:slug", r.publicHandler.GetInsight)
	}

	// 预览长连接：WebSocket 无法带 Authorization 头，用限流兜底
	api.GET("/preview/stream", middleware.PreviewSubscribeRateLimit(), r.previewHandler.Stream)

	// 编辑后台：全部挂 JWT 认证
	editorGroup := api.Group("")
	editorGroup.Use(r.mw.JWTAuth())
	{
		pages := editorGroup.Group("/pages")
		{
			pages.POST("", r.pageHandler.Create)
			pages.GET("", r.pageHandler.List)
			pages.POST("/validate", r.pageHandler.Validate)
			pages.GET("/:id", r.pageHandler.GetByID)
			pages.PUT("/:id", r.pageHandler.Update)
			pages.DELETE("/:id", r.pageHandler.Delete)
			pages.POST("/:id/publish", r.pageHandler.Publish)
			pages.POST("/:id/transition", r.pageHandler.Transition)
		}

		insights := editorGroup.Group("/insights")
		{
			insights.POST("", r.insightHandler.Create)
			insights.GET("", r.insightHandler.List)
			insights.GET("/:id", r.insightHandler.GetByID)
			insights.PUT("/:id", r.insightHandler.Update)
			insights.DELETE("/:id", r.insightHandler.Delete)
			insights.POST("/:id/publish", r.insightHandler.Publish)
			insights.POST("/:id/transition", r.insightHandler.Transition)
		}

		builderGroup := editorGroup.Group("/builder")
		{
			builderGroup.GET("/blocks", r.builderHandler.ListBlocks)
			builderGroup.GET("/blocks/:type/template", r.builderHandler.NewBlock)
		}

		revisions := editorGroup.Group("/revisions")
		{
			revisions.GET("/:entityType/:id", r.revisionHandler.List)
			revisions.GET("/:entityType/:id/:version", r.revisionHandler.Get)
		}

		editorGroup.GET("/seo/lint", r.seoHandler.Lint)
	}

	// 管理员：回滚与清理是破坏性操作
	adminGroup := api.Group("")
	adminGroup.Use(r.mw.JWTAuth(), r.mw.AdminAuth())
	{
		adminGroup.POST("/revisions/:entityType/:id/:version/restore", r.revisionHandler.Restore)
		adminGroup.POST("/revisions/cleanup", r.revisionHandler.Cleanup)
	}
}
