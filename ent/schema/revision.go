/*
 * @Description: 历史版本表
 * @Author: 安知鱼
 * @Date: 2026-02-10 15:11:47
 * @LastEditTime: 2026-02-10 15:11:47
 * @LastEditors: 安知鱼
 */
package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Revision holds the schema definition for the Revision entity.
type Revision struct {
	ent.Schema
}

// Annotations of the Revision.
func (Revision) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("历史版本表"),
	}
}

// Fields of the Revision.
func (Revision) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.String("entity_type").
			MaxLen(50).
			NotEmpty().
			Comment("实体类型：Page 或 Insight"),
		field.Uint("entity_id").
			Comment("关联的实体ID"),
		field.Int("version").
			Positive().
			Comment("版本号，从1开始递增"),
		field.JSON("snapshot", json.RawMessage{}).
			Comment("变更前的完整实体快照"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("创建时间"),
	}
}

// Edges of the Revision.
func (Revision) Edges() []ent.Edge {
	return nil
}

// Indexes of the Revision.
func (Revision) Indexes() []ent.Index {
	return []ent.Index{
		// 联合唯一索引：同一实体的版本号唯一
		index.Fields("entity_type", "entity_id", "version").Unique(),
		index.Fields("entity_type", "entity_id", "created_at"),
	}
}
