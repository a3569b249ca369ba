/*
 * @Description: 编辑会话令牌服务
 * @Author: 安知鱼
 * @Date: 2026-02-12 16:31:02
 * @LastEditTime: 2026-02-25 19:10:48
 * @LastEditors: 安知鱼
 */
package auth

import (
	"context"
	"fmt"

	"github.com/networkk/networkk-app/internal/pkg/auth"
	"github.com/networkk/networkk-app/pkg/config"
	"github.com/networkk/networkk-app/pkg/constant"
)

type TokenService interface {
	// GenerateEditorToken 为通过外部身份源认证的编辑签发会话令牌
	GenerateEditorToken(ctx context.Context, name, role string) (string, error)
	// ParseAccessToken 解析并验证会话令牌
	ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error)
}

type tokenService struct {
	cfg *config.Config
}

// NewTokenService 构造函数
func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) secret() ([]byte, error) {
	jwtSecret := s.cfg.GetString(config.KeyJWTSecret)
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT Secret 未配置")
	}
	return []byte(jwtSecret), nil
}

func (s *tokenService) GenerateEditorToken(_ context.Context, name, role string) (string, error) {
	if role != auth.RoleEditor && role != auth.RoleAdmin {
		return "", fmt.Errorf("未知角色 %q: %w", role, constant.ErrBadRequest)
	}
	secret, err := s.secret()
	if err != nil {
		return "", err
	}
	return auth.GenerateToken(name, role, secret)
}

func (s *tokenService) ParseAccessToken(_ context.Context, accessToken string) (*auth.CustomClaims, error) {
	secret, err := s.secret()
	if err != nil {
		return nil, err
	}
	claims, err := auth.ParseToken(accessToken, secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidToken, err)
	}
	return claims, nil
}
