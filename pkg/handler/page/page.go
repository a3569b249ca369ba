package page

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/networkk/networkk-app/pkg/constant"
	"github.com/networkk/networkk-app/pkg/domain/model"
	"github.com/networkk/networkk-app/pkg/response"
	"github.com/networkk/networkk-app/pkg/service/page"
)

// Handler 页面处理器
type Handler struct {
	pageService page.Service
}

// NewHandler 创建页面处理器
func NewHandler(pageService page.Service) *Handler {
	return &Handler{
		pageService: pageService,
	}
}

// failFromError 把服务层错误映射为 HTTP 状态码
func failFromError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, constant.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "页面不存在")
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

// Create 创建页面
// @Summary      创建页面
// @Description  创建新的页面，校验不通过时随 400 返回问题列表
// @Tags         页面管理
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  model.CreatePageRequest  true  "页面信息"
// @Success      200  {object}  response.Response{data=model.Page}  "创建成功"
// @Failure      400  {object}  response.Response{data=[]model.ValidationIssue}  "校验不通过"
// @Failure      409  {object}  response.Response  "slug 冲突"
// @Router       /pages [post]
func (h *Handler) Create(c *gin.Context) {
	var req model.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	created, issues, err := h.pageService.Create(c.Request.Context(), &req)
	if err != nil {
		failFromError(c, err, "创建页面失败")
		return
	}
	if len(issues) > 0 {
		response.FailWithData(c, http.StatusBadRequest, issues, "页面校验不通过")
		return
	}

	response.Success(c, created, "创建页面成功")
}

// GetByID 根据ID获取页面
// @Summary      获取页面
// @Description  根据公共ID获取页面详情
// @Tags         页面管理
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "页面ID"
// @Success      200  {object}  response.Response{data=model.Page}  "获取成功"
// @Failure      404  {object}  response.Response  "页面不存在"
// @Router       /pages/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, "页面ID不能为空")
		return
	}

	p, err := h.pageService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err, "获取页面失败")
		return
	}

	response.Success(c, p, "获取页面成功")
}

// List 分页列出页面
// @Summary      页面列表
// @Description  分页列出页面，支持标题/slug 搜索与状态过滤
// @Tags         页面管理
// @Security     BearerAuth
// @Produce      json
// @Param        page      query  int     false  "页码"
// @Param        pageSize  query  int     false  "每页数量"
// @Param        query     query  string  false  "搜索关键词"
// @Param        status    query  string  false  "状态过滤"
// @Success      200  {object}  response.Response{data=model.PageListResponse}  "获取成功"
// @Router       /pages [get]
func (h *Handler) List(c *gin.Context) {
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	options := &model.ListPagesOptions{
		Page:     pageNum,
		PageSize: pageSize,
		Query:    c.Query("query"),
		Status:   model.PageStatus(c.Query("status")),
	}
	if options.Status != "" && !model.IsValidPageStatus(options.Status) {
		response.Fail(c, http.StatusBadRequest, "未知的页面状态")
		return
	}

	resp, err := h.pageService.List(c.Request.Context(), options)
	if err != nil {
		failFromError(c, err, "获取页面列表失败")
		return
	}

	response.Success(c, resp, "获取页面列表成功")
}

// Update 更新页面
// @Summary      更新页面
// @Description  浅合并更新页面，只替换提供的顶层字段
// @Tags         页面管理
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "页面ID"
// @Param        body  body  model.UpdatePageRequest  true  "更新内容"
// @Success      200  {object}  response.Response{data=model.Page}  "更新成功"
// @Failure      400  {object}  response.Response{data=[]model.ValidationIssue}  "校验不通过"
// @Failure      404  {object}  response.Response  "页面不存在"
// @Router       /pages/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	var req model.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	updated, issues, err := h.pageService.Update(c.Request.Context(), id, &req)
	if err != nil {
		failFromError(c, err, "更新页面失败")
		return
	}
	if len(issues) > 0 {
		response.FailWithData(c, http.StatusBadRequest, issues, "页面校验不通过")
		return
	}

	response.Success(c, updated, "更新页面成功")
}

// Delete 删除页面
// @Summary      删除页面
// @Tags         页面管理
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "页面ID"
// @Success      200  {object}  response.Response  "删除成功"
// @Failure      404  {object}  response.Response  "页面不存在"
// @Router       /pages/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.pageService.Delete(c.Request.Context(), id); err != nil {
		failFromError(c, err, "删除页面失败")
		return
	}

	response.Success(c, nil, "删除页面成功")
}

// Publish 发布页面
// @Summary      发布页面
// @Description  校验通过后把页面置为 published 并通知预览订阅者
// @Tags         页面管理
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "页面ID"
// @Success      200  {object}  response.Response{data=model.Page}  "发布成功"
// @Failure      400  {object}  response.Response{data=[]model.ValidationIssue}  "校验不通过"
// @Failure      409  {object}  response.Response  "非法的状态流转"
// @Router       /pages/{id}/publish [post]
func (h *Handler) Publish(c *gin.Context) {
	id := c.Param("id")

	published, issues, err := h.pageService.Publish(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err, "发布页面失败")
		return
	}
	if len(issues) > 0 {
		response.FailWithData(c, http.StatusBadRequest, issues, "页面校验不通过，无法发布")
		return
	}

	response.Success(c, published, "发布页面成功")
}

// Transition 状态流转
// @Summary      页面状态流转
// @Description  沿状态机的合法边流转页面状态
// @Tags         页面管理
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "页面ID"
// @Param        body  body  model.TransitionPageRequest  true  "目标状态"
// @Success      200  {object}  response.Response{data=model.Page}  "流转成功"
// @Failure      409  {object}  response.Response  "非法的状态流转"
// @Router       /pages/{id}/transition [post]
func (h *Handler) Transition(c *gin.Context) {
	id := c.Param("id")
	var req model.TransitionPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	p, err := h.pageService.Transition(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, constant.ErrValidationFailed) {
			response.Fail(c, http.StatusBadRequest, "页面校验不通过，无法发布")
			return
		}
		failFromError(c, err, "页面状态流转失败")
		return
	}

	response.Success(c, p, "页面状态流转成功")
}

// Validate 只校验不落库
// @Summary      校验页面
// @Description  对请求体中的页面文档跑一遍完整校验，供编辑器实时反馈
// @Tags         页面管理
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  model.Page  true  "页面文档"
// @Success      200  {object}  response.Response{data=[]model.ValidationIssue}  "校验完成"
// @Router       /pages/validate [post]
func (h *Handler) Validate(c *gin.Context) {
	var p model.Page
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	issues := h.pageService.Validate(c.Request.Context(), &p)
	if issues == nil {
		issues = []model.ValidationIssue{}
	}

	response.Success(c, issues, "校验完成")
}
