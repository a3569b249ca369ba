/*
 * @Description: 页面实体
 * @Author: 安知鱼
 * @Date: 2026-02-10 15:02:33
 * @LastEditTime: 2026-02-10 15:02:33
 * @LastEditors: 安知鱼
 */
package schema

import (
	"time"

	"github.com/networkk/networkk-app/pkg/domain/model"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Page holds the schema definition for the Page entity.
type Page struct {
	ent.Schema
}

// Annotations of the Page.
func (Page) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("页面表"),
	}
}

// Fields of the Page.
func (Page) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.String("slug").
			MaxLen(255).
			Unique().
			NotEmpty().
			Comment("页面路径标识，仅允许小写字母、数字和连字符"),
		field.String("title").
			MaxLen(255).
			NotEmpty().
			Comment("页面标题"),
		field.Enum("status").
			Values("DRAFT", "REVIEW", "PUBLISHED", "ARCHIVED").
			Default("DRAFT").
			Comment("页面状态"),
		field.JSON("seo", &model.SEO{}).
			Optional().
			Comment("SEO 元数据"),
		field.JSON("blocks", []model.BlockInstance{}).
			Optional().
			Comment("页面内容块树"),
		field.Time("published_at").
			Optional().
			Nillable().
			Comment("首次发布时间"),
		field.Time("scheduled_at").
			Optional().
			Nillable().
			Comment("定时发布时间"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("创建时间"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("更新时间"),
	}
}

// Edges of the Page.
func (Page) Edges() []ent.Edge {
	return nil
}

// Indexes of the Page.
func (Page) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("scheduled_at"),
	}
}
