// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/networkk/networkk-app/ent/insight"
	"github.com/networkk/networkk-app/pkg/domain/model"
)

// InsightCreate is the builder for creating a Insight entity.
type InsightCreate struct {
	config
	mutation *InsightMutation
	hooks    []Hook
}

// SetSlug sets the "slug" field.
func (ic *InsightCreate) SetSlug(s string) *InsightCreate {
	ic.mutation.SetSlug(s)
	return ic
}

// SetTitle sets the "title" field.
func (ic *InsightCreate) SetTitle(s string) *InsightCreate {
	ic.mutation.SetTitle(s)
	return ic
}

// SetExcerpt sets the "excerpt" field.
func (ic *InsightCreate) SetExcerpt(s string) *InsightCreate {
	ic.mutation.SetExcerpt(s)
	return ic
}

// SetNillableExcerpt sets the "excerpt" field if the given value is not nil.
func (ic *InsightCreate) SetNillableExcerpt(s *string) *InsightCreate {
	if s != nil {
		ic.SetExcerpt(*s)
	}
	return ic
}

// SetContentMd sets the "content_md" field.
func (ic *InsightCreate) SetContentMd(s string) *InsightCreate {
	ic.mutation.SetContentMd(s)
	return ic
}

// SetNillableContentMd sets the "content_md" field if the given value is not nil.
func (ic *InsightCreate) SetNillableContentMd(s *string) *InsightCreate {
	if s != nil {
		ic.SetContentMd(*s)
	}
	return ic
}

// SetContentHTML sets the "content_html" field.
func (ic *InsightCreate) SetContentHTML(s string) *InsightCreate {
	ic.mutation.SetContentHTML(s)
	return ic
}

// SetNillableContentHTML sets the "content_html" field if the given value is not nil.
func (ic *InsightCreate) SetNillableContentHTML(s *string) *InsightCreate {
	if s != nil {
		ic.SetContentHTML(*s)
	}
	return ic
}

// SetStatus sets the "status" field.
func (ic *InsightCreate) SetStatus(i insight.Status) *InsightCreate {
	ic.mutation.SetStatus(i)
	return ic
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ic *InsightCreate) SetNillableStatus(i *insight.Status) *InsightCreate {
	if i != nil {
		ic.SetStatus(*i)
	}
	return ic
}

// SetCategory sets the "category" field.
func (ic *InsightCreate) SetCategory(s string) *InsightCreate {
	ic.mutation.SetCategory(s)
	return ic
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (ic *InsightCreate) SetNillableCategory(s *string) *InsightCreate {
	if s != nil {
		ic.SetCategory(*s)
	}
	return ic
}

// SetTags sets the "tags" field.
func (ic *InsightCreate) SetTags(s []string) *InsightCreate {
	ic.mutation.SetTags(s)
	return ic
}

// SetReadingTime sets the "reading_time" field.
func (ic *InsightCreate) SetReadingTime(i int) *InsightCreate {
	ic.mutation.SetReadingTime(i)
	return ic
}

// SetNillableReadingTime sets the "reading_time" field if the given value is not nil.
func (ic *InsightCreate) SetNillableReadingTime(i *int) *InsightCreate {
	if i != nil {
		ic.SetReadingTime(*i)
	}
	return ic
}

// SetAuthor sets the "author" field.
func (ic *InsightCreate) SetAuthor(ma *model.InsightAuthor) *InsightCreate {
	ic.mutation.SetAuthor(ma)
	return ic
}

// SetSeo sets the "seo" field.
func (ic *InsightCreate) SetSeo(m *model.SEO) *InsightCreate {
	ic.mutation.SetSeo(m)
	return ic
}

// SetFeaturedImage sets the "featured_image" field.
func (ic *InsightCreate) SetFeaturedImage(mi *model.FeaturedImage) *InsightCreate {
	ic.mutation.SetFeaturedImage(mi)
	return ic
}

// SetPublishedAt sets the "published_at" field.
func (ic *InsightCreate) SetPublishedAt(t time.Time) *InsightCreate {
	ic.mutation.SetPublishedAt(t)
	return ic
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (ic *InsightCreate) SetNillablePublishedAt(t *time.Time) *InsightCreate {
	if t != nil {
		ic.SetPublishedAt(*t)
	}
	return ic
}

// SetCreatedAt sets the "created_at" field.
func (ic *InsightCreate) SetCreatedAt(t time.Time) *InsightCreate {
	ic.mutation.SetCreatedAt(t)
	return ic
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ic *InsightCreate) SetNillableCreatedAt(t *time.Time) *InsightCreate {
	if t != nil {
		ic.SetCreatedAt(*t)
	}
	return ic
}

// SetUpdatedAt sets the "updated_at" field.
func (ic *InsightCreate) SetUpdatedAt(t time.Time) *InsightCreate {
	ic.mutation.SetUpdatedAt(t)
	return ic
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ic *InsightCreate) SetNillableUpdatedAt(t *time.Time) *InsightCreate {
	if t != nil {
		ic.SetUpdatedAt(*t)
	}
	return ic
}

// SetID sets the "id" field.
func (ic *InsightCreate) SetID(u uint) *InsightCreate {
	ic.mutation.SetID(u)
	return ic
}

// Mutation returns the InsightMutation object of the builder.
func (ic *InsightCreate) Mutation() *InsightMutation {
	return ic.mutation
}

// Save creates the Insight in the database.
func (ic *InsightCreate) Save(ctx context.Context) (*Insight, error) {
	ic.defaults()
	return withHooks(ctx, ic.sqlSave, ic.mutation, ic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ic *InsightCreate) SaveX(ctx context.Context) *Insight {
	v, err := ic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ic *InsightCreate) Exec(ctx context.Context) error {
	_, err := ic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ic *InsightCreate) ExecX(ctx context.Context) {
	if err := ic.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ic *InsightCreate) defaults() {
	if _, ok := ic.mutation.Status(); !ok {
		v := insight.DefaultStatus
		ic.mutation.SetStatus(v)
	}
	if _, ok := ic.mutation.ReadingTime(); !ok {
		v := insight.DefaultReadingTime
		ic.mutation.SetReadingTime(v)
	}
	if _, ok := ic.mutation.CreatedAt(); !ok {
		v := insight.DefaultCreatedAt()
		ic.mutation.SetCreatedAt(v)
	}
	if _, ok := ic.mutation.UpdatedAt(); !ok {
		v := insight.DefaultUpdatedAt()
		ic.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ic *InsightCreate) check() error {
	if _, ok := ic.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Insight.slug"`)}
	}
	if v, ok := ic.mutation.Slug(); ok {
		if err := insight.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Insight.slug": %w`, err)}
		}
	}
	if _, ok := ic.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Insight.title"`)}
	}
	if v, ok := ic.mutation.Title(); ok {
		if err := insight.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Insight.title": %w`, err)}
		}
	}
	if v, ok := ic.mutation.Excerpt(); ok {
		if err := insight.ExcerptValidator(v); err != nil {
			return &ValidationError{Name: "excerpt", err: fmt.Errorf(`ent: validator failed for field "Insight.excerpt": %w`, err)}
		}
	}
	if _, ok := ic.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Insight.status"`)}
	}
	if v, ok := ic.mutation.Status(); ok {
		if err := insight.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Insight.status": %w`, err)}
		}
	}
	if v, ok := ic.mutation.Category(); ok {
		if err := insight.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Insight.category": %w`, err)}
		}
	}
	if _, ok := ic.mutation.ReadingTime(); !ok {
		return &ValidationError{Name: "reading_time", err: errors.New(`ent: missing required field "Insight.reading_time"`)}
	}
	if v, ok := ic.mutation.ReadingTime(); ok {
		if err := insight.ReadingTimeValidator(v); err != nil {
			return &ValidationError{Name: "reading_time", err: fmt.Errorf(`ent: validator failed for field "Insight.reading_time": %w`, err)}
		}
	}
	if _, ok := ic.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Insight.created_at"`)}
	}
	if _, ok := ic.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Insight.updated_at"`)}
	}
	return nil
}

func (ic *InsightCreate) sqlSave(ctx context.Context) (*Insight, error) {
	if err := ic.check(); err != nil {
		return nil, err
	}
	_node, _spec := ic.createSpec()
	if err := sqlgraph.CreateNode(ctx, ic.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	ic.mutation.id = &_node.ID
	ic.mutation.done = true
	return _node, nil
}

func (ic *InsightCreate) createSpec() (*Insight, *sqlgraph.CreateSpec) {
	var (
		_node = &Insight{config: ic.config}
		_spec = sqlgraph.NewCreateSpec(insight.Table, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeUint))
	)
	if id, ok := ic.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ic.mutation.Slug(); ok {
		_spec.SetField(insight.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := ic.mutation.Title(); ok {
		_spec.SetField(insight.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := ic.mutation.Excerpt(); ok {
		_spec.SetField(insight.FieldExcerpt, field.TypeString, value)
		_node.Excerpt = value
	}
	if value, ok := ic.mutation.ContentMd(); ok {
		_spec.SetField(insight.FieldContentMd, field.TypeString, value)
		_node.ContentMd = value
	}
	if value, ok := ic.mutation.ContentHTML(); ok {
		_spec.SetField(insight.FieldContentHTML, field.TypeString, value)
		_node.ContentHTML = value
	}
	if value, ok := ic.mutation.Status(); ok {
		_spec.SetField(insight.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := ic.mutation.Category(); ok {
		_spec.SetField(insight.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := ic.mutation.Tags(); ok {
		_spec.SetField(insight.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := ic.mutation.ReadingTime(); ok {
		_spec.SetField(insight.FieldReadingTime, field.TypeInt, value)
		_node.ReadingTime = value
	}
	if value, ok := ic.mutation.Author(); ok {
		_spec.SetField(insight.FieldAuthor, field.TypeJSON, value)
		_node.Author = value
	}
	if value, ok := ic.mutation.Seo(); ok {
		_spec.SetField(insight.FieldSeo, field.TypeJSON, value)
		_node.Seo = value
	}
	if value, ok := ic.mutation.FeaturedImage(); ok {
		_spec.SetField(insight.FieldFeaturedImage, field.TypeJSON, value)
		_node.FeaturedImage = value
	}
	if value, ok := ic.mutation.PublishedAt(); ok {
		_spec.SetField(insight.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := ic.mutation.CreatedAt(); ok {
		_spec.SetField(insight.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ic.mutation.UpdatedAt(); ok {
		_spec.SetField(insight.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// InsightCreateBulk is the builder for creating many Insight entities in bulk.
type InsightCreateBulk struct {
	config
	err      error
	builders []*InsightCreate
}

// Save creates the Insight entities in the database.
func (icb *InsightCreateBulk) Save(ctx context.Context) ([]*Insight, error) {
	if icb.err != nil {
		return nil, icb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(icb.builders))
	nodes := make([]*Insight, len(icb.builders))
	mutators := make([]Mutator, len(icb.builders))
	for i := range icb.builders {
		func(i int, root context.Context) {
			builder := icb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InsightMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, icb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, icb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = uint(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, icb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (icb *InsightCreateBulk) SaveX(ctx context.Context) []*Insight {
	v, err := icb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (icb *InsightCreateBulk) Exec(ctx context.Context) error {
	_, err := icb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (icb *InsightCreateBulk) ExecX(ctx context.Context) {
	if err := icb.Exec(ctx); err != nil {
		panic(err)
	}
}
