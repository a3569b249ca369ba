package seo

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/networkk/networkk-app/pkg/response"
	"github.com/networkk/networkk-app/pkg/service/seo"
)

// Handler 站点级 SEO 体检处理器
type Handler struct {
	seoService seo.Service
}

// NewHandler 创建 SEO 体检处理器
func NewHandler(seoService seo.Service) *Handler {
	return &Handler{
		seoService: seoService,
	}
}

// Lint 站点级 SEO 体检
// @Summary      SEO 体检
// @Description  扫描全部页面与文章，汇总所有校验问题
// @Tags         SEO
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=model.LintReport}  "体检完成"
// @Router       /seo/lint [get]
func (h *Handler) Lint(c *gin.Context) {
	report, err := h.seoService.Lint(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "SEO 体检失败")
		return
	}

	response.Success(c, report, "体检完成")
}
