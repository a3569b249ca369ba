package public

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/networkk/networkk-app/pkg/constant"
	"github.com/networkk/networkk-app/pkg/domain/model"
	"github.com/networkk/networkk-app/pkg/response"
	"github.com/networkk/networkk-app/pkg/service/insight"
	"github.com/networkk/networkk-app/pkg/service/snapshot"
)

// Handler 公开读取处理器，营销站点前端只访问这里。
// 读取统一走快照缓存，未发布的内容一律不可见。
type Handler struct {
	snapshotService *snapshot.Service
	insightService  insight.Service
}

// NewHandler 创建公开读取处理器
func NewHandler(snapshotService *snapshot.Service, insightService insight.Service) *Handler {
	return &Handler{
		snapshotService: snapshotService,
		insightService:  insightService,
	}
}

// GetPage 按 slug 获取已发布页面
// @Summary      获取公开页面
// @Description  按 slug 返回已发布页面的完整文档，优先命中快照缓存
// @Tags         公开内容
// @Produce      json
// @Param        slug  path  string  true  "页面 slug"
// @Success      200  {object}  response.Response{data=model.Page}  "获取成功"
// @Failure      404  {object}  response.Response  "页面不存在或未发布"
// @Router       /public/pages/{slug} [get]
func (h *Handler) GetPage(c *gin.Context) {
	slug := c.Param("slug")
	if !model.SlugPattern.MatchString(slug) {
		response.Fail(c, http.StatusBadRequest, "slug 格式无效")
		return
	}

	p, err := h.snapshotService.GetPage(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "页面不存在")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "获取页面失败")
		return
	}

	response.Success(c, p, "获取页面成功")
}

// GetInsight 按 slug 获取已发布文章
// @Summary      获取公开文章
// @Tags         公开内容
// @Produce      json
// @Param        slug  path  string  true  "文章 slug"
// @Success      200  {object}  response.Response{data=model.Insight}  "获取成功"
// @Failure      404  {object}  response.Response  "文章不存在或未发布"
// @Router       /public/insights/{slug} [get]
func (h *Handler) GetInsight(c *gin.Context) {
	slug := c.Param("slug")
	if !model.SlugPattern.MatchString(slug) {
		response.Fail(c, http.StatusBadRequest, "slug 格式无效")
		return
	}

	i, err := h.snapshotService.GetInsight(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "文章不存在")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "获取文章失败")
		return
	}

	response.Success(c, i, "获取文章成功")
}

// ListInsights 列出已发布文章
// @Summary      公开文章列表
// @Description  只返回已发布的文章，供营销站点的洞察列表页使用
// @Tags         公开内容
// @Produce      json
// @Param        page      query  int     false  "页码"
// @Param        pageSize  query  int     false  "每页数量"
// @Param        category  query  string  false  "分类过滤"
// @Success      200  {object}  response.Response{data=model.InsightListResponse}  "获取成功"
// @Router       /public/insights [get]
func (h *Handler) ListInsights(c *gin.Context) {
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	options := &model.ListInsightsOptions{
		Page:     pageNum,
		PageSize: pageSize,
		Category: c.Query("category"),
		Status:   model.PageStatusPublished,
	}

	resp, err := h.insightService.List(c.Request.Context(), options)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "获取文章列表失败")
		return
	}

	response.Success(c, resp, "获取文章列表成功")
}
