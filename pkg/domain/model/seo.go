/*
 * @Description: SEO 元数据模型
 * @Author: 安知鱼
 * @Date: 2026-02-10 10:31:02
 * @LastEditTime: 2026-02-10 10:31:02
 * @LastEditors: 安知鱼
 */
package model

// SEO 长度边界。这些是内容质量约束，超界必须报校验错误而不是静默截断。
const (
	SeoTitleMinLen       = 10
	SeoTitleMaxLen       = 60
	SeoDescriptionMinLen = 120
	SeoDescriptionMaxLen = 160
)

// SEO 是每个 Page / Insight 必须携带且只携带一份的元数据。
// 缺失 SEO 对象本身就是校验错误，不存在默认值。
type SEO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Canonical   string   `json:"canonical"` // 绝对 URL
	NoIndex     bool     `json:"noindex"`
	Image       string   `json:"image,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}
