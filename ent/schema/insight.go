/*
 * @Description: 洞察文章实体
 * @Author: 安知鱼
 * @Date: 2026-02-10 15:06:18
 * @LastEditTime: 2026-02-10 15:06:18
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

// Insight holds the schema definition for the Insight entity.
type Insight struct {
	ent.Schema
}

// Annotations of the Insight.
func (Insight) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("洞察文章表"),
	}
}

// Fields of the Insight.
func (Insight) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.String("slug").
			MaxLen(255).
			Unique().
			NotEmpty().
			Comment("文章路径标识"),
		field.String("title").
			MaxLen(255).
			NotEmpty().
			Comment("文章标题"),
		field.String("excerpt").
			MaxLen(500).
			Optional().
			Comment("文章摘要"),
		field.Text("content_md").
			Optional().
			Comment("Markdown 原文"),
		field.Text("content_html").
			Optional().
			Comment("由 content_md 解析和净化后的 HTML"),
		field.Enum("status").
			Values("DRAFT", "REVIEW", "PUBLISHED", "ARCHIVED").
			Default("DRAFT").
			Comment("文章状态"),
		field.String("category").
			MaxLen(100).
			Optional().
			Comment("分类"),
		field.JSON("tags", []string{}).
			Optional().
			Comment("标签列表"),
		field.Int("reading_time").
			Default(0).
			NonNegative().
			Comment("阅读时长(分钟)"),
		field.JSON("author", &model.InsightAuthor{}).
			Optional().
			Comment("作者信息"),
		field.JSON("seo", &model.SEO{}).
			Optional().
			Comment("SEO 元数据"),
		field.JSON("featured_image", &model.FeaturedImage{}).
			Optional().
			Comment("头图"),
		field.Time("published_at").
			Optional().
			Nillable().
			Comment("首次发布时间"),
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

// Edges of the Insight.
func (Insight) Edges() []ent.Edge {
	return nil
}

// Indexes of the Insight.
func (Insight) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("category"),
	}
}
