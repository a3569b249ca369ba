package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	internal_auth "github.com/networkk/networkk-app/internal/pkg/auth"
	"github.com/networkk/networkk-app/pkg/config"
	"github.com/networkk/networkk-app/pkg/response"
	service_auth "github.com/networkk/networkk-app/pkg/service/auth"
)

// Handler 编辑会话处理器
type Handler struct {
	tokenSvc service_auth.TokenService
	cfg      *config.Config
}

// NewHandler 创建编辑会话处理器
func NewHandler(tokenSvc service_auth.TokenService, cfg *config.Config) *Handler {
	return &Handler{
		tokenSvc: tokenSvc,
		cfg:      cfg,
	}
}

// Token 换取编辑会话令牌
// @Summary      换取会话令牌
// @Description  用配置的访问密钥换取编辑会话 JWT
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        body  body  object{name=string,role=string,accessKey=string}  true  "凭证"
// @Success      200  {object}  response.Response{data=object{token=string}}  "签发成功"
// @Failure      401  {object}  response.Response  "访问密钥无效"
// @Router       /auth/token [post]
func (h *Handler) Token(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		Role      string `json:"role"`
		AccessKey string `json:"accessKey" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}
	if req.Role == "" {
		req.Role = internal_auth.RoleEditor
	}

	accessKey := h.cfg.GetString(config.KeyAccessKey)
	if accessKey == "" {
		response.Fail(c, http.StatusInternalServerError, "访问密钥未配置，无法签发令牌")
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.AccessKey), []byte(accessKey)) != 1 {
		response.Fail(c, http.StatusUnauthorized, "访问密钥无效")
		return
	}

	token, err := h.tokenSvc.GenerateEditorToken(c.Request.Context(), req.Name, req.Role)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "签发令牌失败")
		return
	}

	response.Success(c, gin.H{"token": token}, "签发令牌成功")
}
