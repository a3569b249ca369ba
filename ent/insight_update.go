// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/networkk/networkk-app/ent/insight"
	"github.com/networkk/networkk-app/ent/predicate"
	"github.com/networkk/networkk-app/pkg/domain/model"
)

// InsightUpdate is the builder for updating Insight entities.
type InsightUpdate struct {
	config
	hooks    []Hook
	mutation *InsightMutation
}

// Where appends a list predicates to the InsightUpdate builder.
func (iu *InsightUpdate) Where(ps ...predicate.Insight) *InsightUpdate {
	iu.mutation.Where(ps...)
	return iu
}

// SetSlug sets the "slug" field.
func (iu *InsightUpdate) SetSlug(s string) *InsightUpdate {
	iu.mutation.SetSlug(s)
	return iu
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (iu *InsightUpdate) SetNillableSlug(s *string) *InsightUpdate {
	if s != nil {
		iu.SetSlug(*s)
	}
	return iu
}

// SetTitle sets the "title" field.
func (iu *InsightUpdate) SetTitle(s string) *InsightUpdate {
	iu.mutation.SetTitle(s)
	return iu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (iu *InsightUpdate) SetNillableTitle(s *string) *InsightUpdate {
	if s != nil {
		iu.SetTitle(*s)
	}
	return iu
}

// SetExcerpt sets the "excerpt" field.
func (iu *InsightUpdate) SetExcerpt(s string) *InsightUpdate {
	iu.mutation.SetExcerpt(s)
	return iu
}

// SetNillableExcerpt sets the "excerpt" field if the given value is not nil.
func (iu *InsightUpdate) SetNillableExcerpt(s *string) *InsightUpdate {
	if s != nil {
		iu.SetExcerpt(*s)
	}
	return iu
}

// ClearExcerpt clears the value of the "excerpt" field.
func (iu *InsightUpdate) ClearExcerpt() *InsightUpdate {
	iu.mutation.ClearExcerpt()
	return iu
}

// SetContentMd sets the "content_md" field.
func (iu *InsightUpdate) SetContentMd(s string) *InsightUpdate {
	iu.mutation.SetContentMd(s)
	return iu
}

// SetNillableContentMd sets the "content_md" field if the given value is not nil.
func (iu *InsightUpdate) SetNillableContentMd(s *string) *InsightUpdate {
	if s != nil {
		iu.SetContentMd(*s)
	}
	return iu
}

// ClearContentMd clears the value of the "content_md" field.
func (iu *InsightUpdate) ClearContentMd() *InsightUpdate {
	iu.mutation.ClearContentMd()
	return iu
}

// SetContentHTML sets the "content_html" field.
func (iu *InsightUpdate) SetContentHTML(s string) *InsightUpdate {
	iu.mutation.SetContentHTML(s)
	return iu
}

// SetNillableContentHTML sets the "content_html" field if the given value is not nil.
func (iu *InsightUpdate) SetNillableContentHTML(s *string) *InsightUpdate {
	if s != nil {
		iu.SetContentHTML(*s)
	}
	return iu
}

// ClearContentHTML clears the value of the "content_html" field.
func (iu *InsightUpdate) ClearContentHTML() *InsightUpdate {
	iu.mutation.ClearContentHTML()
	return iu
}

// SetStatus sets the "status" field.
func (iu *InsightUpdate) SetStatus(i insight.Status) *InsightUpdate {
	iu.mutation.SetStatus(i)
	return iu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iu *InsightUpdate) SetNillableStatus(i *insight.Status) *InsightUpdate {
	if i != nil {
		iu.SetStatus(*i)
	}
	return iu
}

// SetCategory sets the "category" field.
func (iu *InsightUpdate) SetCategory(s string) *InsightUpdate {
	iu.mutation.SetCategory(s)
	return iu
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (iu *InsightUpdate) SetNillableCategory(s *string) *InsightUpdate {
	if s != nil {
		iu.SetCategory(*s)
	}
	return iu
}

// ClearCategory clears the value of the "category" field.
func (iu *InsightUpdate) ClearCategory() *InsightUpdate {
	iu.mutation.ClearCategory()
	return iu
}

// SetTags sets the "tags" field.
func (iu *InsightUpdate) SetTags(s []string) *InsightUpdate {
	iu.mutation.SetTags(s)
	return iu
}

// AppendTags appends s to the "tags" field.
func (iu *InsightUpdate) AppendTags(s []string) *InsightUpdate {
	iu.mutation.AppendTags(s)
	return iu
}

// ClearTags clears the value of the "tags" field.
func (iu *InsightUpdate) ClearTags() *InsightUpdate {
	iu.mutation.ClearTags()
	return iu
}

// SetReadingTime sets the "reading_time" field.
func (iu *InsightUpdate) SetReadingTime(i int) *InsightUpdate {
	iu.mutation.ResetReadingTime()
	iu.mutation.SetReadingTime(i)
	return iu
}

// SetNillableReadingTime sets the "reading_time" field if the given value is not nil.
func (iu *InsightUpdate) SetNillableReadingTime(i *int) *InsightUpdate {
	if i != nil {
		iu.SetReadingTime(*i)
	}
	return iu
}

// AddReadingTime adds i to the "reading_time" field.
func (iu *InsightUpdate) AddReadingTime(i int) *InsightUpdate {
	iu.mutation.AddReadingTime(i)
	return iu
}

// SetAuthor sets the "author" field.
func (iu *InsightUpdate) SetAuthor(ma *model.InsightAuthor) *InsightUpdate {
	iu.mutation.SetAuthor(ma)
	return iu
}

// ClearAuthor clears the value of the "author" field.
func (iu *InsightUpdate) ClearAuthor() *InsightUpdate {
	iu.mutation.ClearAuthor()
	return iu
}

// SetSeo sets the "seo" field.
func (iu *InsightUpdate) SetSeo(m *model.SEO) *InsightUpdate {
	iu.mutation.SetSeo(m)
	return iu
}

// ClearSeo clears the value of the "seo" field.
func (iu *InsightUpdate) ClearSeo() *InsightUpdate {
	iu.mutation.ClearSeo()
	return iu
}

// SetFeaturedImage sets the "featured_image" field.
func (iu *InsightUpdate) SetFeaturedImage(mi *model.FeaturedImage) *InsightUpdate {
	iu.mutation.SetFeaturedImage(mi)
	return iu
}

// ClearFeaturedImage clears the value of the "featured_image" field.
func (iu *InsightUpdate) ClearFeaturedImage() *InsightUpdate {
	iu.mutation.ClearFeaturedImage()
	return iu
}

// SetPublishedAt sets the "published_at" field.
func (iu *InsightUpdate) SetPublishedAt(t time.Time) *InsightUpdate {
	iu.mutation.SetPublishedAt(t)
	return iu
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (iu *InsightUpdate) SetNillablePublishedAt(t *time.Time) *InsightUpdate {
	if t != nil {
		iu.SetPublishedAt(*t)
	}
	return iu
}

// ClearPublishedAt clears the value of the "published_at" field.
func (iu *InsightUpdate) ClearPublishedAt() *InsightUpdate {
	iu.mutation.ClearPublishedAt()
	return iu
}

// SetUpdatedAt sets the "updated_at" field.
func (iu *InsightUpdate) SetUpdatedAt(t time.Time) *InsightUpdate {
	iu.mutation.SetUpdatedAt(t)
	return iu
}

// Mutation returns the InsightMutation object of the builder.
func (iu *InsightUpdate) Mutation() *InsightMutation {
	return iu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iu *InsightUpdate) Save(ctx context.Context) (int, error) {
	iu.defaults()
	return withHooks(ctx, iu.sqlSave, iu.mutation, iu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iu *InsightUpdate) SaveX(ctx context.Context) int {
	affected, err := iu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iu *InsightUpdate) Exec(ctx context.Context) error {
	_, err := iu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iu *InsightUpdate) ExecX(ctx context.Context) {
	if err := iu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iu *InsightUpdate) defaults() {
	if _, ok := iu.mutation.UpdatedAt(); !ok {
		v := insight.UpdateDefaultUpdatedAt()
		iu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iu *InsightUpdate) check() error {
	if v, ok := iu.mutation.Slug(); ok {
		if err := insight.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Insight.slug": %w`, err)}
		}
	}
	if v, ok := iu.mutation.Title(); ok {
		if err := insight.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Insight.title": %w`, err)}
		}
	}
	if v, ok := iu.mutation.Excerpt(); ok {
		if err := insight.ExcerptValidator(v); err != nil {
			return &ValidationError{Name: "excerpt", err: fmt.Errorf(`ent: validator failed for field "Insight.excerpt": %w`, err)}
		}
	}
	if v, ok := iu.mutation.Status(); ok {
		if err := insight.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Insight.status": %w`, err)}
		}
	}
	if v, ok := iu.mutation.Category(); ok {
		if err := insight.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Insight.category": %w`, err)}
		}
	}
	if v, ok := iu.mutation.ReadingTime(); ok {
		if err := insight.ReadingTimeValidator(v); err != nil {
			return &ValidationError{Name: "reading_time", err: fmt.Errorf(`ent: validator failed for field "Insight.reading_time": %w`, err)}
		}
	}
	return nil
}

func (iu *InsightUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := iu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(insight.Table, insight.Columns, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeUint))
	if ps := iu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iu.mutation.Slug(); ok {
		_spec.SetField(insight.FieldSlug, field.TypeString, value)
	}
	if value, ok := iu.mutation.Title(); ok {
		_spec.SetField(insight.FieldTitle, field.TypeString, value)
	}
	if value, ok := iu.mutation.Excerpt(); ok {
		_spec.SetField(insight.FieldExcerpt, field.TypeString, value)
	}
	if iu.mutation.ExcerptCleared() {
		_spec.ClearField(insight.FieldExcerpt, field.TypeString)
	}
	if value, ok := iu.mutation.ContentMd(); ok {
		_spec.SetField(insight.FieldContentMd, field.TypeString, value)
	}
	if iu.mutation.ContentMdCleared() {
		_spec.ClearField(insight.FieldContentMd, field.TypeString)
	}
	if value, ok := iu.mutation.ContentHTML(); ok {
		_spec.SetField(insight.FieldContentHTML, field.TypeString, value)
	}
	if iu.mutation.ContentHTMLCleared() {
		_spec.ClearField(insight.FieldContentHTML, field.TypeString)
	}
	if value, ok := iu.mutation.Status(); ok {
		_spec.SetField(insight.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := iu.mutation.Category(); ok {
		_spec.SetField(insight.FieldCategory, field.TypeString, value)
	}
	if iu.mutation.CategoryCleared() {
		_spec.ClearField(insight.FieldCategory, field.TypeString)
	}
	if value, ok := iu.mutation.Tags(); ok {
		_spec.SetField(insight.FieldTags, field.TypeJSON, value)
	}
	if value, ok := iu.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, insight.FieldTags, value)
		})
	}
	if iu.mutation.TagsCleared() {
		_spec.ClearField(insight.FieldTags, field.TypeJSON)
	}
	if value, ok := iu.mutation.ReadingTime(); ok {
		_spec.SetField(insight.FieldReadingTime, field.TypeInt, value)
	}
	if value, ok := iu.mutation.AddedReadingTime(); ok {
		_spec.AddField(insight.FieldReadingTime, field.TypeInt, value)
	}
	if value, ok := iu.mutation.Author(); ok {
		_spec.SetField(insight.FieldAuthor, field.TypeJSON, value)
	}
	if iu.mutation.AuthorCleared() {
		_spec.ClearField(insight.FieldAuthor, field.TypeJSON)
	}
	if value, ok := iu.mutation.Seo(); ok {
		_spec.SetField(insight.FieldSeo, field.TypeJSON, value)
	}
	if iu.mutation.SeoCleared() {
		_spec.ClearField(insight.FieldSeo, field.TypeJSON)
	}
	if value, ok := iu.mutation.FeaturedImage(); ok {
		_spec.SetField(insight.FieldFeaturedImage, field.TypeJSON, value)
	}
	if iu.mutation.FeaturedImageCleared() {
		_spec.ClearField(insight.FieldFeaturedImage, field.TypeJSON)
	}
	if value, ok := iu.mutation.PublishedAt(); ok {
		_spec.SetField(insight.FieldPublishedAt, field.TypeTime, value)
	}
	if iu.mutation.PublishedAtCleared() {
		_spec.ClearField(insight.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := iu.mutation.UpdatedAt(); ok {
		_spec.SetField(insight.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iu.mutation.done = true
	return n, nil
}

// InsightUpdateOne is the builder for updating a single Insight entity.
type InsightUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InsightMutation
}

// SetSlug sets the "slug" field.
func (iuo *InsightUpdateOne) SetSlug(s string) *InsightUpdateOne {
	iuo.mutation.SetSlug(s)
	return iuo
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (iuo *InsightUpdateOne) SetNillableSlug(s *string) *InsightUpdateOne {
	if s != nil {
		iuo.SetSlug(*s)
	}
	return iuo
}

// SetTitle sets the "title" field.
func (iuo *InsightUpdateOne) SetTitle(s string) *InsightUpdateOne {
	iuo.mutation.SetTitle(s)
	return iuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (iuo *InsightUpdateOne) SetNillableTitle(s *string) *InsightUpdateOne {
	if s != nil {
		iuo.SetTitle(*s)
	}
	return iuo
}

// SetExcerpt sets the "excerpt" field.
func (iuo *InsightUpdateOne) SetExcerpt(s string) *InsightUpdateOne {
	iuo.mutation.SetExcerpt(s)
	return iuo
}

// SetNillableExcerpt sets the "excerpt" field if the given value is not nil.
func (iuo *InsightUpdateOne) SetNillableExcerpt(s *string) *InsightUpdateOne {
	if s != nil {
		iuo.SetExcerpt(*s)
	}
	return iuo
}

// ClearExcerpt clears the value of the "excerpt" field.
func (iuo *InsightUpdateOne) ClearExcerpt() *InsightUpdateOne {
	iuo.mutation.ClearExcerpt()
	return iuo
}

// SetContentMd sets the "content_md" field.
func (iuo *InsightUpdateOne) SetContentMd(s string) *InsightUpdateOne {
	iuo.mutation.SetContentMd(s)
	return iuo
}

// SetNillableContentMd sets the "content_md" field if the given value is not nil.
func (iuo *InsightUpdateOne) SetNillableContentMd(s *string) *InsightUpdateOne {
	if s != nil {
		iuo.SetContentMd(*s)
	}
	return iuo
}

// ClearContentMd clears the value of the "content_md" field.
func (iuo *InsightUpdateOne) ClearContentMd() *InsightUpdateOne {
	iuo.mutation.ClearContentMd()
	return iuo
}

// SetContentHTML sets the "content_html" field.
func (iuo *InsightUpdateOne) SetContentHTML(s string) *InsightUpdateOne {
	iuo.mutation.SetContentHTML(s)
	return iuo
}

// SetNillableContentHTML sets the "content_html" field if the given value is not nil.
func (iuo *InsightUpdateOne) SetNillableContentHTML(s *string) *InsightUpdateOne {
	if s != nil {
		iuo.SetContentHTML(*s)
	}
	return iuo
}

// ClearContentHTML clears the value of the "content_html" field.
func (iuo *InsightUpdateOne) ClearContentHTML() *InsightUpdateOne {
	iuo.mutation.ClearContentHTML()
	return iuo
}

// SetStatus sets the "status" field.
func (iuo *InsightUpdateOne) SetStatus(i insight.Status) *InsightUpdateOne {
	iuo.mutation.SetStatus(i)
	return iuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iuo *InsightUpdateOne) SetNillableStatus(i *insight.Status) *InsightUpdateOne {
	if i != nil {
		iuo.SetStatus(*i)
	}
	return iuo
}

// SetCategory sets the "category" field.
func (iuo *InsightUpdateOne) SetCategory(s string) *InsightUpdateOne {
	iuo.mutation.SetCategory(s)
	return iuo
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (iuo *InsightUpdateOne) SetNillableCategory(s *string) *InsightUpdateOne {
	if s != nil {
		iuo.SetCategory(*s)
	}
	return iuo
}

// ClearCategory clears the value of the "category" field.
func (iuo *InsightUpdateOne) ClearCategory() *InsightUpdateOne {
	iuo.mutation.ClearCategory()
	return iuo
}

// SetTags sets the "tags" field.
func (iuo *InsightUpdateOne) SetTags(s []string) *InsightUpdateOne {
	iuo.mutation.SetTags(s)
	return iuo
}

// AppendTags appends s to the "tags" field.
func (iuo *InsightUpdateOne) AppendTags(s []string) *InsightUpdateOne {
	iuo.mutation.AppendTags(s)
	return iuo
}

// ClearTags clears the value of the "tags" field.
func (iuo *InsightUpdateOne) ClearTags() *InsightUpdateOne {
	iuo.mutation.ClearTags()
	return iuo
}

// SetReadingTime sets the "reading_time" field.
func (iuo *InsightUpdateOne) SetReadingTime(i int) *InsightUpdateOne {
	iuo.mutation.ResetReadingTime()
	iuo.mutation.SetReadingTime(i)
	return iuo
}

// SetNillableReadingTime sets the "reading_time" field if the given value is not nil.
func (iuo *InsightUpdateOne) SetNillableReadingTime(i *int) *InsightUpdateOne {
	if i != nil {
		iuo.SetReadingTime(*i)
	}
	return iuo
}

// AddReadingTime adds i to the "reading_time" field.
func (iuo *InsightUpdateOne) AddReadingTime(i int) *InsightUpdateOne {
	iuo.mutation.AddReadingTime(i)
	return iuo
}

// SetAuthor sets the "author" field.
func (iuo *InsightUpdateOne) SetAuthor(ma *model.InsightAuthor) *InsightUpdateOne {
	iuo.mutation.SetAuthor(ma)
	return iuo
}

// ClearAuthor clears the value of the "author" field.
func (iuo *InsightUpdateOne) ClearAuthor() *InsightUpdateOne {
	iuo.mutation.ClearAuthor()
	return iuo
}

// SetSeo sets the "seo" field.
func (iuo *InsightUpdateOne) SetSeo(m *model.SEO) *InsightUpdateOne {
	iuo.mutation.SetSeo(m)
	return iuo
}

// ClearSeo clears the value of the "seo" field.
func (iuo *InsightUpdateOne) ClearSeo() *InsightUpdateOne {
	iuo.mutation.ClearSeo()
	return iuo
}

// SetFeaturedImage sets the "featured_image" field.
func (iuo *InsightUpdateOne) SetFeaturedImage(mi *model.FeaturedImage) *InsightUpdateOne {
	iuo.mutation.SetFeaturedImage(mi)
	return iuo
}

// ClearFeaturedImage clears the value of the "featured_image" field.
func (iuo *InsightUpdateOne) ClearFeaturedImage() *InsightUpdateOne {
	iuo.mutation.ClearFeaturedImage()
	return iuo
}

// SetPublishedAt sets the "published_at" field.
func (iuo *InsightUpdateOne) SetPublishedAt(t time.Time) *InsightUpdateOne {
	iuo.mutation.SetPublishedAt(t)
	return iuo
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (iuo *InsightUpdateOne) SetNillablePublishedAt(t *time.Time) *InsightUpdateOne {
	if t != nil {
		iuo.SetPublishedAt(*t)
	}
	return iuo
}

// ClearPublishedAt clears the value of the "published_at" field.
func (iuo *InsightUpdateOne) ClearPublishedAt() *InsightUpdateOne {
	iuo.mutation.ClearPublishedAt()
	return iuo
}

// SetUpdatedAt sets the "updated_at" field.
func (iuo *InsightUpdateOne) SetUpdatedAt(t time.Time) *InsightUpdateOne {
	iuo.mutation.SetUpdatedAt(t)
	return iuo
}

// Mutation returns the InsightMutation object of the builder.
func (iuo *InsightUpdateOne) Mutation() *InsightMutation {
	return iuo.mutation
}

// Where appends a list predicates to the InsightUpdate builder.
func (iuo *InsightUpdateOne) Where(ps ...predicate.Insight) *InsightUpdateOne {
	iuo.mutation.Where(ps...)
	return iuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iuo *InsightUpdateOne) Select(field string, fields ...string) *InsightUpdateOne {
	iuo.fields = append([]string{field}, fields...)
	return iuo
}

// Save executes the query and returns the updated Insight entity.
func (iuo *InsightUpdateOne) Save(ctx context.Context) (*Insight, error) {
	iuo.defaults()
	return withHooks(ctx, iuo.sqlSave, iuo.mutation, iuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iuo *InsightUpdateOne) SaveX(ctx context.Context) *Insight {
	node, err := iuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iuo *InsightUpdateOne) Exec(ctx context.Context) error {
	_, err := iuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iuo *InsightUpdateOne) ExecX(ctx context.Context) {
	if err := iuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iuo *InsightUpdateOne) defaults() {
	if _, ok := iuo.mutation.UpdatedAt(); !ok {
		v := insight.UpdateDefaultUpdatedAt()
		iuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iuo *InsightUpdateOne) check() error {
	if v, ok := iuo.mutation.Slug(); ok {
		if err := insight.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Insight.slug": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.Title(); ok {
		if err := insight.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Insight.title": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.Excerpt(); ok {
		if err := insight.ExcerptValidator(v); err != nil {
			return &ValidationError{Name: "excerpt", err: fmt.Errorf(`ent: validator failed for field "Insight.excerpt": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.Status(); ok {
		if err := insight.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Insight.status": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.Category(); ok {
		if err := insight.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Insight.category": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.ReadingTime(); ok {
		if err := insight.ReadingTimeValidator(v); err != nil {
			return &ValidationError{Name: "reading_time", err: fmt.Errorf(`ent: validator failed for field "Insight.reading_time": %w`, err)}
		}
	}
	return nil
}

func (iuo *InsightUpdateOne) sqlSave(ctx context.Context) (_node *Insight, err error) {
	if err := iuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insight.Table, insight.Columns, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeUint))
	id, ok := iuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Insight.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insight.FieldID)
		for _, f := range fields {
			if !insight.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != insight.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iuo.mutation.Slug(); ok {
		_spec.SetField(insight.FieldSlug, field.TypeString, value)
	}
	if value, ok := iuo.mutation.Title(); ok {
		_spec.SetField(insight.FieldTitle, field.TypeString, value)
	}
	if value, ok := iuo.mutation.Excerpt(); ok {
		_spec.SetField(insight.FieldExcerpt, field.TypeString, value)
	}
	if iuo.mutation.ExcerptCleared() {
		_spec.ClearField(insight.FieldExcerpt, field.TypeString)
	}
	if value, ok := iuo.mutation.ContentMd(); ok {
		_spec.SetField(insight.FieldContentMd, field.TypeString, value)
	}
	if iuo.mutation.ContentMdCleared() {
		_spec.ClearField(insight.FieldContentMd, field.TypeString)
	}
	if value, ok := iuo.mutation.ContentHTML(); ok {
		_spec.SetField(insight.FieldContentHTML, field.TypeString, value)
	}
	if iuo.mutation.ContentHTMLCleared() {
		_spec.ClearField(insight.FieldContentHTML, field.TypeString)
	}
	if value, ok := iuo.mutation.Status(); ok {
		_spec.SetField(insight.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := iuo.mutation.Category(); ok {
		_spec.SetField(insight.FieldCategory, field.TypeString, value)
	}
	if iuo.mutation.CategoryCleared() {
		_spec.ClearField(insight.FieldCategory, field.TypeString)
	}
	if value, ok := iuo.mutation.Tags(); ok {
		_spec.SetField(insight.FieldTags, field.TypeJSON, value)
	}
	if value, ok := iuo.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, insight.FieldTags, value)
		})
	}
	if iuo.mutation.TagsCleared() {
		_spec.ClearField(insight.FieldTags, field.TypeJSON)
	}
	if value, ok := iuo.mutation.ReadingTime(); ok {
		_spec.SetField(insight.FieldReadingTime, field.TypeInt, value)
	}
	if value, ok := iuo.mutation.AddedReadingTime(); ok {
		_spec.AddField(insight.FieldReadingTime, field.TypeInt, value)
	}
	if value, ok := iuo.mutation.Author(); ok {
		_spec.SetField(insight.FieldAuthor, field.TypeJSON, value)
	}
	if iuo.mutation.AuthorCleared() {
		_spec.ClearField(insight.FieldAuthor, field.TypeJSON)
	}
	if value, ok := iuo.mutation.Seo(); ok {
		_spec.SetField(insight.FieldSeo, field.TypeJSON, value)
	}
	if iuo.mutation.SeoCleared() {
		_spec.ClearField(insight.FieldSeo, field.TypeJSON)
	}
	if value, ok := iuo.mutation.FeaturedImage(); ok {
		_spec.SetField(insight.FieldFeaturedImage, field.TypeJSON, value)
	}
	if iuo.mutation.FeaturedImageCleared() {
		_spec.ClearField(insight.FieldFeaturedImage, field.TypeJSON)
	}
	if value, ok := iuo.mutation.PublishedAt(); ok {
		_spec.SetField(insight.FieldPublishedAt, field.TypeTime, value)
	}
	if iuo.mutation.PublishedAtCleared() {
		_spec.ClearField(insight.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := iuo.mutation.UpdatedAt(); ok {
		_spec.SetField(insight.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Insight{config: iuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iuo.mutation.done = true
	return _node, nil
}
