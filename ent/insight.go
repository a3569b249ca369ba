// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/networkk/networkk-app/ent/insight"
	"github.com/networkk/networkk-app/pkg/domain/model"
)

// 洞察文章表
type Insight struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// 文章路径标识
	Slug string `json:"slug,omitempty"`
	// 文章标题
	Title string `json:"title,omitempty"`
	// 文章摘要
	Excerpt string `json:"excerpt,omitempty"`
	// Markdown 原文
	ContentMd string `json:"content_md,omitempty"`
	// 由 content_md 解析和净化后的 HTML
	ContentHTML string `json:"content_html,omitempty"`
	// 文章状态
	Status insight.Status `json:"status,omitempty"`
	// 分类
	Category string `json:"category,omitempty"`
	// 标签列表
	Tags []string `json:"tags,omitempty"`
	// 阅读时长(分钟)
	ReadingTime int `json:"reading_time,omitempty"`
	// 作者信息
	Author *model.InsightAuthor `json:"author,omitempty"`
	// SEO 元数据
	Seo *model.SEO `json:"seo,omitempty"`
	// 头图
	FeaturedImage *model.FeaturedImage `json:"featured_image,omitempty"`
	// 首次发布时间
	PublishedAt *time.Time `json:"published_at,omitempty"`
	// 创建时间
	CreatedAt time.Time `json:"created_at,omitempty"`
	// 更新时间
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Insight) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case insight.FieldTags, insight.FieldAuthor, insight.FieldSeo, insight.FieldFeaturedImage:
			values[i] = new([]byte)
		case insight.FieldID, insight.FieldReadingTime:
			values[i] = new(sql.NullInt64)
		case insight.FieldSlug, insight.FieldTitle, insight.FieldExcerpt, insight.FieldContentMd, insight.FieldContentHTML, insight.FieldStatus, insight.FieldCategory:
			values[i] = new(sql.NullString)
		case insight.FieldPublishedAt, insight.FieldCreatedAt, insight.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Insight fields.
func (i *Insight) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for j := range columns {
		switch columns[j] {
		case insight.FieldID:
			value, ok := values[j].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			i.ID = uint(value.Int64)
		case insight.FieldSlug:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[j])
			} else if value.Valid {
				i.Slug = value.String
			}
		case insight.FieldTitle:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[j])
			} else if value.Valid {
				i.Title = value.String
			}
		case insight.FieldExcerpt:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field excerpt", values[j])
			} else if value.Valid {
				i.Excerpt = value.String
			}
		case insight.FieldContentMd:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_md", values[j])
			} else if value.Valid {
				i.ContentMd = value.String
			}
		case insight.FieldContentHTML:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_html", values[j])
			} else if value.Valid {
				i.ContentHTML = value.String
			}
		case insight.FieldStatus:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[j])
			} else if value.Valid {
				i.Status = insight.Status(value.String)
			}
		case insight.FieldCategory:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[j])
			} else if value.Valid {
				i.Category = value.String
			}
		case insight.FieldTags:
			if value, ok := values[j].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[j])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &i.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case insight.FieldReadingTime:
			if value, ok := values[j].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reading_time", values[j])
			} else if value.Valid {
				i.ReadingTime = int(value.Int64)
			}
		case insight.FieldAuthor:
			if value, ok := values[j].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[j])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &i.Author); err != nil {
					return fmt.Errorf("unmarshal field author: %w", err)
				}
			}
		case insight.FieldSeo:
			if value, ok := values[j].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field seo", values[j])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &i.Seo); err != nil {
					return fmt.Errorf("unmarshal field seo: %w", err)
				}
			}
		case insight.FieldFeaturedImage:
			if value, ok := values[j].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field featured_image", values[j])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &i.FeaturedImage); err != nil {
					return fmt.Errorf("unmarshal field featured_image: %w", err)
				}
			}
		case insight.FieldPublishedAt:
			if value, ok := values[j].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[j])
			} else if value.Valid {
				i.PublishedAt = new(time.Time)
				*i.PublishedAt = value.Time
			}
		case insight.FieldCreatedAt:
			if value, ok := values[j].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[j])
			} else if value.Valid {
				i.CreatedAt = value.Time
			}
		case insight.FieldUpdatedAt:
			if value, ok := values[j].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[j])
			} else if value.Valid {
				i.UpdatedAt = value.Time
			}
		default:
			i.selectValues.Set(columns[j], values[j])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Insight.
// This includes values selected through modifiers, order, etc.
func (i *Insight) Value(name string) (ent.Value, error) {
	return i.selectValues.Get(name)
}

// Update returns a builder for updating this Insight.
// Note that you need to call Insight.Unwrap() before calling this method if this Insight
// was returned from a transaction, and the transaction was committed or rolled back.
func (i *Insight) Update() *InsightUpdateOne {
	return NewInsightClient(i.config).UpdateOne(i)
}

// Unwrap unwraps the Insight entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (i *Insight) Unwrap() *Insight {
	_tx, ok := i.config.driver.(*txDriver)
	if !ok {
		panic("ent: Insight is not a transactional entity")
	}
	i.config.driver = _tx.drv
	return i
}

// String implements the fmt.Stringer.
func (i *Insight) String() string {
	var builder strings.Builder
	builder.WriteString("Insight(")
	builder.WriteString(fmt.Sprintf("id=%v, ", i.ID))
	builder.WriteString("slug=")
	builder.WriteString(i.Slug)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(i.Title)
	builder.WriteString(", ")
	builder.WriteString("excerpt=")
	builder.WriteString(i.Excerpt)
	builder.WriteString(", ")
	builder.WriteString("content_md=")
	builder.WriteString(i.ContentMd)
	builder.WriteString(", ")
	builder.WriteString("content_html=")
	builder.WriteString(i.ContentHTML)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", i.Status))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(i.Category)
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", i.Tags))
	builder.WriteString(", ")
	builder.WriteString("reading_time=")
	builder.WriteString(fmt.Sprintf("%v", i.ReadingTime))
	builder.WriteString(", ")
	builder.WriteString("author=")
	builder.WriteString(fmt.Sprintf("%v", i.Author))
	builder.WriteString(", ")
	builder.WriteString("seo=")
	builder.WriteString(fmt.Sprintf("%v", i.Seo))
	builder.WriteString(", ")
	builder.WriteString("featured_image=")
	builder.WriteString(fmt.Sprintf("%v", i.FeaturedImage))
	builder.WriteString(", ")
	if v := i.PublishedAt; v != nil {
		builder.WriteString("published_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(i.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(i.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Insights is a parsable slice of Insight.
type Insights []*Insight
