/*
 * @Description: 文档校验问题的结构化表示
 * @Author: 安知鱼
 * @Date: 2026-02-10 11:40:18
 * @LastEditTime: 2026-02-18 09:55:41
 * @LastEditors: 安知鱼
 */
package model

import "fmt"

// IssueCode 标识校验问题的种类。
type IssueCode string

const (
	// IssueSchemaViolation 区块 props 违反其类型 schema（必填、长度、数量、枚举）。
	IssueSchemaViolation IssueCode = "SchemaViolation"
	// IssueAccessibility 媒体引用缺少替代文本。可访问性是发布门槛，属于硬错误。
	IssueAccessibility IssueCode = "AccessibilityIssue"
	// IssueDuplicateHeading 文档中出现了第二个 H1 等价区块。
	IssueDuplicateHeading IssueCode = "DuplicateHeading"
	// IssueSeoLength SEO 标题或描述超出长度边界。
	IssueSeoLength IssueCode = "SeoLengthViolation"
	// IssueSeoMissing 文档缺少 SEO 对象。
	IssueSeoMissing IssueCode = "SeoMissing"
	// IssueSeoTitleConflict SEO 标题与语料库中其他文档冲突（由调用方提供唯一性判定）。
	IssueSeoTitleConflict IssueCode = "SeoTitleConflict"
	// IssueUnknownBlockType 区块类型不在封闭枚举内，属于配置缺陷。
	IssueUnknownBlockType IssueCode = "UnknownBlockType"
	// IssueDuplicateBlockID 区块 ID 在文档内重复（包括子树），破坏布局引用稳定性。
	IssueDuplicateBlockID IssueCode = "DuplicateBlockID"
	// IssueInvalidSlug slug 不符合 [a-z0-9-]+。
	IssueInvalidSlug IssueCode = "InvalidSlug"
	// IssueTitleLength 文档标题超出长度边界。
	IssueTitleLength IssueCode = "TitleLengthViolation"
	// IssueInvalidLayout 布局越出 12 列栅格。
	IssueInvalidLayout IssueCode = "InvalidLayout"
)

// ValidationIssue 是一条结构化校验问题。
// 校验引擎不短路：一次 Validate 调用收齐所有问题后一并返回。
type ValidationIssue struct {
	Code       IssueCode `json:"code"`
	BlockID    string    `json:"blockId,omitempty"`
	Field      string    `json:"field,omitempty"`
	Constraint string    `json:"constraint,omitempty"`
	Message    string    `json:"message,omitempty"`
}

func (i ValidationIssue) String() string {
	if i.BlockID != "" {
		return fmt.Sprintf("%s[block=%s field=%s]: %s", i.Code, i.BlockID, i.Field, i.Constraint)
	}
	if i.Field != "" {
		return fmt.Sprintf("%s[field=%s]: %s", i.Code, i.Field, i.Constraint)
	}
	return fmt.Sprintf("%s: %s", i.Code, i.Message)
}

// LintEntry 站点级 SEO 体检中单个文档的结果。
type LintEntry struct {
	EntityType string            `json:"entityType"`
	ID         string            `json:"id"`
	Slug       string            `json:"slug"`
	Issues     []ValidationIssue `json:"issues"`
}

// LintReport 站点级 SEO 体检报告。
type LintReport struct {
	CheckedAt  int64       `json:"checkedAt"`
	TotalDocs  int         `json:"totalDocs"`
	IssueCount int         `json:"issueCount"`
	Entries    []LintEntry `json:"entries"`
}
