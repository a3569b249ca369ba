package insight

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/networkk/networkk-app/pkg/constant"
	"github.com/networkk/networkk-app/pkg/domain/model"
	"github.com/networkk/networkk-app/pkg/response"
	"github.com/networkk/networkk-app/pkg/service/insight"
)

// Handler 洞察文章处理器
type Handler struct {
	insightService insight.Service
}

// NewHandler 创建文章处理器
func NewHandler(insightService insight.Service) *Handler {
	return &Handler{
		insightService: insightService,
	}
}

func failFromError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, constant.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "文章不存在")
	case errors.Is(err, constant.ErrSlugConflict):
		response.Fail(c, http.StatusConflict, "slug 已被占用")
	case errors.Is(err, constant.ErrInvalidTransition):
		response.Fail(c, http.StatusConflict, "非法的状态流转")
	case errors.Is(err, constant.ErrInvalidPublicID), errors.Is(err, constant.ErrBadRequest):
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
	default:
		response.Fail(c, http.StatusInternalServerError, fallback)
	}
}

// Create 创建文章
// @Summary      创建文章
// @Description  创建新的洞察文章，Markdown 正文在保存时渲染
// @Tags         文章管理
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  model.CreateInsightRequest  true  "文章信息"
// @Success      200  {object}  response.Response{data=model.Insight}  "创建成功"
// @Failure      400  {object}  response.Response{data=[]model.ValidationIssue}  "校验不通过"
// @Failure      409  {object}  response.Response  "slug 冲突"
// @Router       /insights [post]
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	created, issues, err := h.insightService.Create(c.Request.Context(), &req)
	if err != nil {
		failFromError(c, err, "创建文章失败")
		return
	}
	if len(issues) > 0 {
		response.FailWithData(c, http.StatusBadRequest, issues, "文章校验不通过")
		return
	}

	response.Success(c, created, "创建文章成功")
}

// GetByID 根据ID获取文章
// @Summary      获取文章
// @Tags         文章管理
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "文章ID"
// @Success      200  {object}  response.Response{data=model.Insight}  "获取成功"
// @Failure      404  {object}  response.Response  "文章不存在"
// @Router       /insights/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, "文章ID不能为空")
		return
	}

	i, err := h.insightService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err, "获取文章失败")
		return
	}

	response.Success(c, i, "获取文章成功")
}

// List 分页列出文章
// @Summary      文章列表
// @Tags         文章管理
// @Security     BearerAuth
// @Produce      json
// @Param        page      query  int     false  "页码"
// @Param        pageSize  query  int     false  "每页数量"
// @Param        category  query  string  false  "分类过滤"
// @Param        status    query  string  false  "状态过滤"
// @Success      200  {object}  response.Response{data=model.InsightListResponse}  "获取成功"
// @Router       /insights [get]
func (h *Handler) List(c *gin.Context) {
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	options := &model.ListInsightsOptions{
		Page:     pageNum,
		PageSize: pageSize,
		Category: c.Query("category"),
		Status:   model.PageStatus(c.Query("status")),
	}
	if options.Status != "" && !model.IsValidPageStatus(options.Status) {
		response.Fail(c, http.StatusBadRequest, "未知的文章状态")
		return
	}

	resp, err := h.insightService.List(c.Request.Context(), options)
	if err != nil {
		failFromError(c, err, "获取文章列表失败")
		return
	}

	response.Success(c, resp, "获取文章列表成功")
}

// Update 更新文章
// @Summary      更新文章
// @Description  浅合并更新文章，正文变化时重新渲染 HTML
// @Tags         文章管理
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "文章ID"
// @Param        body  body  model.UpdateInsightRequest  true  "更新内容"
// @Success      200  {object}  response.Response{data=model.Insight}  "更新成功"
// @Failure      400  {object}  response.Response{data=[]model.ValidationIssue}  "校验不通过"
// @Failure      404  {object}  response.Response  "文章不存在"
// @Router       /insights/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	var req model.UpdateInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	updated, issues, err := h.insightService.Update(c.Request.Context(), id, &req)
	if err != nil {
		failFromError(c, err, "更新文章失败")
		return
	}
	if len(issues) > 0 {
		response.FailWithData(c, http.StatusBadRequest, issues, "文章校验不通过")
		return
	}

	response.Success(c, updated, "更新文章成功")
}

// Delete 删除文章
// @Summary      删除文章
// @Tags         文章管理
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "文章ID"
// @Success      200  {object}  response.Response  "删除成功"
// @Failure      404  {object}  response.Response  "文章不存在"
// @Router       /insights/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.insightService.Delete(c.Request.Context(), id); err != nil {
		failFromError(c, err, "删除文章失败")
		return
	}

	response.Success(c, nil, "删除文章成功")
}

// Publish 发布文章
// @Summary      发布文章
// @Tags         文章管理
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "文章ID"
// @Success      200  {object}  response.Response{data=model.Insight}  "发布成功"
// @Failure      400  {object}  response.Response{data=[]model.ValidationIssue}  "校验不通过"
// @Failure      409  {object}  response.Response  "非法的状态流转"
// @Router       /insights/{id}/publish [post]
func (h *Handler) Publish(c *gin.Context) {
	id := c.Param("id")

	published, issues, err := h.insightService.Publish(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err, "发布文章失败")
		return
	}
	if len(issues) > 0 {
		response.FailWithData(c, http.StatusBadRequest, issues, "文章校验不通过，无法发布")
		return
	}

	response.Success(c, published, "发布文章成功")
}

// Transition 状态流转
// @Summary      文章状态流转
// @Tags         文章管理
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "文章ID"
// @Param        body  body  model.TransitionPageRequest  true  "目标状态"
// @Success      200  {object}  response.Response{data=model.Insight}  "流转成功"
// @Failure      409  {object}  response.Response  "非法的状态流转"
// @Router       /insights/{id}/transition [post]
func (h *Handler) Transition(c *gin.Context) {
	id := c.Param("id")
	var req model.TransitionPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	i, err := h.insightService.Transition(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, constant.ErrValidationFailed) {
			response.Fail(c, http.StatusBadRequest, "文章校验不通过，无法发布")
			return
		}
		failFromError(c, err, "文章状态流转失败")
		return
	}

	response.Success(c, i, "文章状态流转成功")
}
