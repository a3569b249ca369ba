/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-12 16:20:11
 * @LastEditTime: 2026-02-12 16:20:11
 * @LastEditors: 安知鱼
 */
package auth

import "github.com/golang-jwt/jwt/v5"

// ClaimsKey 是用于在 gin.Context 中存储和检索编辑身份信息的键。
const ClaimsKey = "editor_claims"

// 编辑角色。admin 额外拥有回滚与清理权限。
const (
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

// CustomClaims 定义了编辑会话 JWT 的自定义 Claims 结构体
type CustomClaims struct {
	Name string `json:"name"` // 编辑的显示名
	Role string `json:"role"` // editor / admin
	jwt.RegisteredClaims
}
