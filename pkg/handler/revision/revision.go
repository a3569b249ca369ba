package revision

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/networkk/networkk-app/pkg/constant"
	"github.com/networkk/networkk-app/pkg/response"
	"github.com/networkk/networkk-app/pkg/service/revision"
)

// Handler 历史版本处理器
type Handler struct {
	revisionService revision.Service
}

// NewHandler 创建历史版本处理器
func NewHandler(revisionService revision.Service) *Handler {
	return &Handler{
		revisionService: revisionService,
	}
}

func failFromError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, constant.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "版本记录不存在")
	case errors.Is(err, constant.ErrInvalidPublicID), errors.Is(err, constant.ErrBadRequest):
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
	default:
		response.Fail(c, http.StatusInternalServerError, fallback)
	}
}

// List 列出文档的历史版本
// @Summary      历史版本列表
// @Description  分页列出某个文档的历史版本，不含快照本体
// @Tags         历史版本
// @Security     BearerAuth
// @Produce      json
// @Param        entityType  path   string  true   "实体类型 Page/Insight"
// @Param        id          path   string  true   "文档ID"
// @Param        page        query  int     false  "页码"
// @Param        pageSize    query  int     false  "每页数量"
// @Success      200  {object}  response.Response{data=model.RevisionListResponse}  "获取成功"
// @Router       /revisions/{entityType}/{id} [get]
func (h *Handler) List(c *gin.Context) {
	entityType := c.Param("entityType")
	id := c.Param("id")
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	resp, err := h.revisionService.List(c.Request.Context(), entityType, id, pageNum, pageSize)
	if err != nil {
		failFromError(c, err, "获取历史版本列表失败")
		return
	}

	response.Success(c, resp, "获取历史版本列表成功")
}

// Get 获取指定版本的完整快照
// @Summary      获取历史版本
// @Tags         历史版本
// @Security     BearerAuth
// @Produce      json
// @Param        entityType  path  string  true  "实体类型 Page/Insight"
// @Param        id          path  string  true  "文档ID"
// @Param        version     path  int     true  "版本号"
// @Success      200  {object}  response.Response{data=model.Revision}  "获取成功"
// @Failure      404  {object}  response.Response  "版本记录不存在"
// @Router       /revisions/{entityType}/{id}/{version} [get]
func (h *Handler) Get(c *gin.Context) {
	entityType := c.Param("entityType")
	id := c.Param("id")
	version, err := strconv.Atoi(c.Param("version"))
	if err != nil || version < 1 {
		response.Fail(c, http.StatusBadRequest, "版本号无效")
		return
	}

	rev, err := h.revisionService.Get(c.Request.Context(), entityType, id, version)
	if err != nil {
		failFromError(c, err, "获取历史版本失败")
		return
	}

	response.Success(c, rev, "获取历史版本成功")
}

// Restore 回滚到指定版本
// @Summary      回滚历史版本
// @Description  把文档覆盖回目标版本的快照，回滚前的当前状态会先存为新版本
// @Tags         历史版本
// @Security     BearerAuth
// @Produce      json
// @Param        entityType  path  string  true  "实体类型 Page/Insight"
// @Param        id          path  string  true  "文档ID"
// @Param        version     path  int     true  "版本号"
// @Success      200  {object}  response.Response  "回滚成功"
// @Failure      404  {object}  response.Response  "版本记录不存在"
// @Router       /revisions/{entityType}/{id}/{version}/restore [post]
func (h *Handler) Restore(c *gin.Context) {
	entityType := c.Param("entityType")
	id := c.Param("id")
	version, err := strconv.Atoi(c.Param("version"))
	if err != nil || version < 1 {
		response.Fail(c, http.StatusBadRequest, "版本号无效")
		return
	}

	if err := h.revisionService.Restore(c.Request.Context(), entityType, id, version); err != nil {
		failFromError(c, err, "回滚失败")
		return
	}

	response.Success(c, nil, "回滚成功")
}

// Cleanup 按保留策略清理历史版本
// @Summary      清理历史版本
// @Description  对所有文档应用配置的版本保留策略
// @Tags         历史版本
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=object{processed=int}}  "清理完成"
// @Router       /revisions/cleanup [post]
func (h *Handler) Cleanup(c *gin.Context) {
	processed, err := h.revisionService.Cleanup(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "清理历史版本失败")
		return
	}

	response.Success(c, gin.H{"processed": processed}, "清理完成")
}
