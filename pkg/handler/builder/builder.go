package builder

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/networkk/networkk-app/pkg/domain/model"
	"github.com/networkk/networkk-app/pkg/response"
	"github.com/networkk/networkk-app/pkg/service/builder"
)

// Handler 区块 Schema 处理器，服务于可视化编辑器
type Handler struct {
	registry *builder.Registry
}

// NewHandler 创建区块 Schema 处理器
func NewHandler(registry *builder.Registry) *Handler {
	return &Handler{
		registry: registry,
	}
}

// ListBlocks 列出全部区块类型
// @Summary      区块类型列表
// @Description  按展示顺序返回全部区块 Schema，含约束说明与默认 props
// @Tags         页面构建器
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]builder.BlockSchema}  "获取成功"
// @Router       /builder/blocks [get]
func (h *Handler) ListBlocks(c *gin.Context) {
	response.Success(c, h.registry.List(), "获取区块类型成功")
}

// NewBlock 生成一个新的区块实例模板
// @Summary      新建区块模板
// @Description  返回带新 ID 与默认 props 的区块实例，编辑器将其插入文档
// @Tags         页面构建器
// @Security     BearerAuth
// @Produce      json
// @Param        type  path  string  true  "区块类型"
// @Success      200  {object}  response.Response{data=model.BlockInstance}  "生成成功"
// @Failure      400  {object}  response.Response  "未知的区块类型"
// @Router       /builder/blocks/{type}/template [get]
func (h *Handler) NewBlock(c *gin.Context) {
	blockType := model.BlockType(c.Param("type"))

	schema, err := h.registry.Get(blockType)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "未知的区块类型")
		return
	}

	// 深拷贝默认 props，注册表实例是进程级共享的
	props := model.NewBlockProps(blockType)
	if schema.Defaults != nil {
		raw, err := json.Marshal(schema.Defaults)
		if err == nil {
			_ = json.Unmarshal(raw, props)
		}
	}

	instance := model.BlockInstance{
		ID:    uuid.NewString(),
		Type:  blockType,
		Props: props,
	}

	response.Success(c, instance, "生成区块模板成功")
}
