/*
 * @Description: 文档历史版本（Revision）模型
 * @Author: 安知鱼
 * @Date: 2026-02-10 11:24:47
 * @LastEditTime: 2026-02-10 11:24:47
 * @LastEditors: 安知鱼
 */
package model

import (
	"encoding/json"
	"time"
)

// 历史版本的实体类型标识。
const (
	RevisionEntityPage    = "Page"
	RevisionEntityInsight = "Insight"
)

// Revision 是文档在某次变更「之前」状态的不可变快照。
// 每次成功的变更或发布操作恰好产生一条，只追加、正常运行中永不删除，
// 构成审计与撤销链。快照本体由持久层拥有，领域层只引用。
type Revision struct {
	ID         string          `json:"id"`
	EntityType string          `json:"entityType"` // Page / Insight
	EntityID   string          `json:"entityId"`   // 被快照文档的公共 ID
	Version    int             `json:"version"`    // 从 1 开始递增
	Snapshot   json.RawMessage `json:"snapshot"`   // 变更前的完整文档 JSON
	CreatedAt  time.Time       `json:"createdAt"`
}

// CreateRevisionParams 创建历史版本的参数。
type CreateRevisionParams struct {
	EntityType string
	EntityDBID uint
	Snapshot   json.RawMessage
}

// RevisionListItem 列表场景下的精简信息，不携带快照本体。
type RevisionListItem struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entityType"`
	Version    int       `json:"version"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RevisionListResponse 历史版本列表的标准 API 响应结构。
type RevisionListResponse struct {
	List     []RevisionListItem `json:"list"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"pageSize"`
}
