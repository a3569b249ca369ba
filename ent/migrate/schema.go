// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InsightsColumns holds the columns for the "insights" table.
	InsightsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 255, Comment: "文章路径标识"},
		{Name: "title", Type: field.TypeString, Size: 255, Comment: "文章标题"},
		{Name: "excerpt", Type: field.TypeString, Nullable: true, Size: 500, Comment: "文章摘要"},
		{Name: "content_md", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "Markdown 原文"},
		{Name: "content_html", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "由 content_md 解析和净化后的 HTML"},
		{Name: "status", Type: field.TypeEnum, Comment: "文章状态", Enums: []string{"DRAFT", "REVIEW", "PUBLISHED", "ARCHIVED"}, Default: "DRAFT"},
		{Name: "category", Type: field.TypeString, Nullable: true, Size: 100, Comment: "分类"},
		{Name: "tags", Type: field.TypeJSON, Nullable: true, Comment: "标签列表"},
		{Name: "reading_time", Type: field.TypeInt, Comment: "阅读时长(分钟)", Default: 0},
		{Name: "author", Type: field.TypeJSON, Nullable: true, Comment: "作者信息"},
		{Name: "seo", Type: field.TypeJSON, Nullable: true, Comment: "SEO 元数据"},
		{Name: "featured_image", Type: field.TypeJSON, Nullable: true, Comment: "头图"},
		{Name: "published_at", Type: field.TypeTime, Nullable: true, Comment: "首次发布时间"},
		{Name: "created_at", Type: field.TypeTime, Comment: "创建时间"},
		{Name: "updated_at", Type: field.TypeTime, Comment: "更新时间"},
	}
	// InsightsTable holds the schema information for the "insights" table.
	InsightsTable = &schema.Table{
		Name:       "insights",
		Comment:    "洞察文章表",
		Columns:    InsightsColumns,
		PrimaryKey: []*schema.Column{InsightsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "insight_status",
				Unique:  false,
				Columns: []*schema.Column{InsightsColumns[6]},
			},
			{
				Name:    "insight_category",
				Unique:  false,
				Columns: []*schema.Column{InsightsColumns[7]},
			},
		},
	}
	// PagesColumns holds the columns for the "pages" table.
	PagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 255, Comment: "页面路径标识，仅允许小写字母、数字和连字符"},
		{Name: "title", Type: field.TypeString, Size: 255, Comment: "页面标题"},
		{Name: "status", Type: field.TypeEnum, Comment: "页面状态", Enums: []string{"DRAFT", "REVIEW", "PUBLISHED", "ARCHIVED"}, Default: "DRAFT"},
		{Name: "seo", Type: field.TypeJSON, Nullable: true, Comment: "SEO 元数据"},
		{Name: "blocks", Type: field.TypeJSON, Nullable: true, Comment: "页面内容块树"},
		{Name: "published_at", Type: field.TypeTime, Nullable: true, Comment: "首次发布时间"},
		{Name: "scheduled_at", Type: field.TypeTime, Nullable: true, Comment: "定时发布时间"},
		{Name: "created_at", Type: field.TypeTime, Comment: "创建时间"},
		{Name: "updated_at", Type: field.TypeTime, Comment: "更新时间"},
	}
	// PagesTable holds the schema information for the "pages" table.
	PagesTable = &schema.Table{
		Name:       "pages",
		Comment:    "页面表",
		Columns:    PagesColumns,
		PrimaryKey: []*schema.Column{PagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "page_status",
				Unique:  false,
				Columns: []*schema.Column{PagesColumns[3]},
			},
			{
				Name:    "page_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{PagesColumns[7]},
			},
		},
	}
	// RevisionsColumns holds the columns for the "revisions" table.
	RevisionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "entity_type", Type: field.TypeString, Size: 50, Comment: "实体类型：Page 或 Insight"},
		{Name: "entity_id", Type: field.TypeUint, Comment: "关联的实体ID"},
		{Name: "version", Type: field.TypeInt, Comment: "版本号，从1开始递增"},
		{Name: "snapshot", Type: field.TypeJSON, Comment: "变更前的完整实体快照"},
		{Name: "created_at", Type: field.TypeTime, Comment: "创建时间"},
	}
	// RevisionsTable holds the schema information for the "revisions" table.
	RevisionsTable = &schema.Table{
		Name:       "revisions",
		Comment:    "历史版本表",
		Columns:    RevisionsColumns,
		PrimaryKey: []*schema.Column{RevisionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "revision_entity_type_entity_id_version",
				Unique:  true,
				Columns: []*schema.Column{RevisionsColumns[1], RevisionsColumns[2], RevisionsColumns[3]},
			},
			{
				Name:    "revision_entity_type_entity_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RevisionsColumns[1], RevisionsColumns[2], RevisionsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InsightsTable,
		PagesTable,
		RevisionsTable,
	}
)

func init() {
}
