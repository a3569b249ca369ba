// pkg/service/parser/service.go
package parser

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// 缓存配置常量
const (
	// 缓存容量：最多缓存 500 条解析结果
	cacheCapacity = 500
	// 缓存 TTL：30 分钟
	cacheTTL = 30 * time.Minute

	// wordsPerMinute 阅读时长估算基准（中英文混合取保守值）
	wordsPerMinute = 250
)

// Service 将 Markdown 原文渲染为消毒后的 HTML，并估算字数与阅读时长。
// 渲染结果按内容哈希缓存，重复保存同一篇文章不会重复解析。
type Service struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy

	htmlCache *LRUCache // Markdown -> SafeHTML 缓存
}

// NewService 创建解析服务实例。
func NewService() *Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, extension.Footnote, extension.Typographer,
			extension.Linkify, extension.Strikethrough, extension.Table, extension.TaskList,
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps(), gmhtml.WithXHTML()),
	)

	// UGC 策略覆盖文章正文需要的全部元素；正文不含脚本与内联事件
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre", "span", "div")
	policy.AllowAttrs("src", "alt", "title", "width", "height").OnElements("img")
	policy.AllowAttrs("target", "rel").OnElements("a")

	return &Service{
		md:        md,
		policy:    policy,
		htmlCache: NewLRUCache(cacheCapacity, cacheTTL),
	}
}

// Render 将 Markdown 渲染为消毒后的 HTML。
func (s *Service) Render(markdown string) (string, error) {
	if markdown == "" {
		return "", nil
	}

	key := computeCacheKey(markdown)
	if cached, ok := s.htmlCache.Get(key); ok {
		return cached, nil
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("渲染 Markdown 失败: %w", err)
	}

	safe := s.policy.Sanitize(buf.String())
	s.htmlCache.Set(key, safe)
	return safe, nil
}

// CountWords 统计字数：CJK 每个字符算一个词，其余按空白分词。
func CountWords(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Han, r):
			count++
			inWord = false
		case unicode.IsSpace(r):
			inWord = false
		default:
			if !inWord {
				count++
				inWord = true
			}
		}
	}
	return count
}

// ReadingTime 估算阅读时长（分钟），向上取整且至少 1 分钟。
func ReadingTime(markdown string) int {
	if strings.TrimSpace(markdown) == "" {
		return 0
	}
	words := CountWords(markdown)
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
