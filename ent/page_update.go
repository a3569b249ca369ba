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
	"github.com/networkk/networkk-app/ent/page"
	"github.com/networkk/networkk-app/ent/predicate"
	"github.com/networkk/networkk-app/pkg/domain/model"
)

// PageUpdate is the builder for updating Page entities.
type PageUpdate struct {
	config
	hooks    []Hook
	mutation *PageMutation
}

// Where appends a list predicates to the PageUpdate builder.
func (pu *PageUpdate) Where(ps ...predicate.Page) *PageUpdate {
	pu.mutation.Where(ps...)
	return pu
}

// SetSlug sets the "slug" field.
func (pu *PageUpdate) SetSlug(s string) *PageUpdate {
	pu.mutation.SetSlug(s)
	return pu
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (pu *PageUpdate) SetNillableSlug(s *string) *PageUpdate {
	if s != nil {
		pu.SetSlug(*s)
	}
	return pu
}

// SetTitle sets the "title" field.
func (pu *PageUpdate) SetTitle(s string) *PageUpdate {
	pu.mutation.SetTitle(s)
	return pu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (pu *PageUpdate) SetNillableTitle(s *string) *PageUpdate {
	if s != nil {
		pu.SetTitle(*s)
	}
	return pu
}

// SetStatus sets the "status" field.
func (pu *PageUpdate) SetStatus(pa page.Status) *PageUpdate {
	pu.mutation.SetStatus(pa)
	return pu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (pu *PageUpdate) SetNillableStatus(pa *page.Status) *PageUpdate {
	if pa != nil {
		pu.SetStatus(*pa)
	}
	return pu
}

// SetSeo sets the "seo" field.
func (pu *PageUpdate) SetSeo(m *model.SEO) *PageUpdate {
	pu.mutation.SetSeo(m)
	return pu
}

// ClearSeo clears the value of the "seo" field.
func (pu *PageUpdate) ClearSeo() *PageUpdate {
	pu.mutation.ClearSeo()
	return pu
}

// SetBlocks sets the "blocks" field.
func (pu *PageUpdate) SetBlocks(mi []model.BlockInstance) *PageUpdate {
	pu.mutation.SetBlocks(mi)
	return pu
}

// AppendBlocks appends mi to the "blocks" field.
func (pu *PageUpdate) AppendBlocks(mi []model.BlockInstance) *PageUpdate {
	pu.mutation.AppendBlocks(mi)
	return pu
}

// ClearBlocks clears the value of the "blocks" field.
func (pu *PageUpdate) ClearBlocks() *PageUpdate {
	pu.mutation.ClearBlocks()
	return pu
}

// SetPublishedAt sets the "published_at" field.
func (pu *PageUpdate) SetPublishedAt(t time.Time) *PageUpdate {
	pu.mutation.SetPublishedAt(t)
	return pu
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (pu *PageUpdate) SetNillablePublishedAt(t *time.Time) *PageUpdate {
	if t != nil {
		pu.SetPublishedAt(*t)
	}
	return pu
}

// ClearPublishedAt clears the value of the "published_at" field.
func (pu *PageUpdate) ClearPublishedAt() *PageUpdate {
	pu.mutation.ClearPublishedAt()
	return pu
}

// SetScheduledAt sets the "scheduled_at" field.
func (pu *PageUpdate) SetScheduledAt(t time.Time) *PageUpdate {
	pu.mutation.SetScheduledAt(t)
	return pu
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (pu *PageUpdate) SetNillableScheduledAt(t *time.Time) *PageUpdate {
	if t != nil {
		pu.SetScheduledAt(*t)
	}
	return pu
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (pu *PageUpdate) ClearScheduledAt() *PageUpdate {
	pu.mutation.ClearScheduledAt()
	return pu
}

// SetUpdatedAt sets the "updated_at" field.
func (pu *PageUpdate) SetUpdatedAt(t time.Time) *PageUpdate {
	pu.mutation.SetUpdatedAt(t)
	return pu
}

// Mutation returns the PageMutation object of the builder.
func (pu *PageUpdate) Mutation() *PageMutation {
	return pu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pu *PageUpdate) Save(ctx context.Context) (int, error) {
	pu.defaults()
	return withHooks(ctx, pu.sqlSave, pu.mutation, pu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pu *PageUpdate) SaveX(ctx context.Context) int {
	affected, err := pu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pu *PageUpdate) Exec(ctx context.Context) error {
	_, err := pu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pu *PageUpdate) ExecX(ctx context.Context) {
	if err := pu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pu *PageUpdate) defaults() {
	if _, ok := pu.mutation.UpdatedAt(); !ok {
		v := page.UpdateDefaultUpdatedAt()
		pu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pu *PageUpdate) check() error {
	if v, ok := pu.mutation.Slug(); ok {
		if err := page.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Page.slug": %w`, err)}
		}
	}
	if v, ok := pu.mutation.Title(); ok {
		if err := page.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Page.title": %w`, err)}
		}
	}
	if v, ok := pu.mutation.Status(); ok {
		if err := page.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Page.status": %w`, err)}
		}
	}
	return nil
}

func (pu *PageUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(page.Table, page.Columns, sqlgraph.NewFieldSpec(page.FieldID, field.TypeUint))
	if ps := pu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pu.mutation.Slug(); ok {
		_spec.SetField(page.FieldSlug, field.TypeString, value)
	}
	if value, ok := pu.mutation.Title(); ok {
		_spec.SetField(page.FieldTitle, field.TypeString, value)
	}
	if value, ok := pu.mutation.Status(); ok {
		_spec.SetField(page.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := pu.mutation.Seo(); ok {
		_spec.SetField(page.FieldSeo, field.TypeJSON, value)
	}
	if pu.mutation.SeoCleared() {
		_spec.ClearField(page.FieldSeo, field.TypeJSON)
	}
	if value, ok := pu.mutation.Blocks(); ok {
		_spec.SetField(page.FieldBlocks, field.TypeJSON, value)
	}
	if value, ok := pu.mutation.AppendedBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, page.FieldBlocks, value)
		})
	}
	if pu.mutation.BlocksCleared() {
		_spec.ClearField(page.FieldBlocks, field.TypeJSON)
	}
	if value, ok := pu.mutation.PublishedAt(); ok {
		_spec.SetField(page.FieldPublishedAt, field.TypeTime, value)
	}
	if pu.mutation.PublishedAtCleared() {
		_spec.ClearField(page.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := pu.mutation.ScheduledAt(); ok {
		_spec.SetField(page.FieldScheduledAt, field.TypeTime, value)
	}
	if pu.mutation.ScheduledAtCleared() {
		_spec.ClearField(page.FieldScheduledAt, field.TypeTime)
	}
	if value, ok := pu.mutation.UpdatedAt(); ok {
		_spec.SetField(page.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{page.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pu.mutation.done = true
	return n, nil
}

// PageUpdateOne is the builder for updating a single Page entity.
type PageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PageMutation
}

// SetSlug sets the "slug" field.
func (puo *PageUpdateOne) SetSlug(s string) *PageUpdateOne {
	puo.mutation.SetSlug(s)
	return puo
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (puo *PageUpdateOne) SetNillableSlug(s *string) *PageUpdateOne {
	if s != nil {
		puo.SetSlug(*s)
	}
	return puo
}

// SetTitle sets the "title" field.
func (puo *PageUpdateOne) SetTitle(s string) *PageUpdateOne {
	puo.mutation.SetTitle(s)
	return puo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (puo *PageUpdateOne) SetNillableTitle(s *string) *PageUpdateOne {
	if s != nil {
		puo.SetTitle(*s)
	}
	return puo
}

// SetStatus sets the "status" field.
func (puo *PageUpdateOne) SetStatus(pa page.Status) *PageUpdateOne {
	puo.mutation.SetStatus(pa)
	return puo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (puo *PageUpdateOne) SetNillableStatus(pa *page.Status) *PageUpdateOne {
	if pa != nil {
		puo.SetStatus(*pa)
	}
	return puo
}

// SetSeo sets the "seo" field.
func (puo *PageUpdateOne) SetSeo(m *model.SEO) *PageUpdateOne {
	puo.mutation.SetSeo(m)
	return puo
}

// ClearSeo clears the value of the "seo" field.
func (puo *PageUpdateOne) ClearSeo() *PageUpdateOne {
	puo.mutation.ClearSeo()
	return puo
}

// SetBlocks sets the "blocks" field.
func (puo *PageUpdateOne) SetBlocks(mi []model.BlockInstance) *PageUpdateOne {
	puo.mutation.SetBlocks(mi)
	return puo
}

// AppendBlocks appends mi to the "blocks" field.
func (puo *PageUpdateOne) AppendBlocks(mi []model.BlockInstance) *PageUpdateOne {
	puo.mutation.AppendBlocks(mi)
	return puo
}

// ClearBlocks clears the value of the "blocks" field.
func (puo *PageUpdateOne) ClearBlocks() *PageUpdateOne {
	puo.mutation.ClearBlocks()
	return puo
}

// SetPublishedAt sets the "published_at" field.
func (puo *PageUpdateOne) SetPublishedAt(t time.Time) *PageUpdateOne {
	puo.mutation.SetPublishedAt(t)
	return puo
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (puo *PageUpdateOne) SetNillablePublishedAt(t *time.Time) *PageUpdateOne {
	if t != nil {
		puo.SetPublishedAt(*t)
	}
	return puo
}

// ClearPublishedAt clears the value of the "published_at" field.
func (puo *PageUpdateOne) ClearPublishedAt() *PageUpdateOne {
	puo.mutation.ClearPublishedAt()
	return puo
}

// SetScheduledAt sets the "scheduled_at" field.
func (puo *PageUpdateOne) SetScheduledAt(t time.Time) *PageUpdateOne {
	puo.mutation.SetScheduledAt(t)
	return puo
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (puo *PageUpdateOne) SetNillableScheduledAt(t *time.Time) *PageUpdateOne {
	if t != nil {
		puo.SetScheduledAt(*t)
	}
	return puo
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (puo *PageUpdateOne) ClearScheduledAt() *PageUpdateOne {
	puo.mutation.ClearScheduledAt()
	return puo
}

// SetUpdatedAt sets the "updated_at" field.
func (puo *PageUpdateOne) SetUpdatedAt(t time.Time) *PageUpdateOne {
	puo.mutation.SetUpdatedAt(t)
	return puo
}

// Mutation returns the PageMutation object of the builder.
func (puo *PageUpdateOne) Mutation() *PageMutation {
	return puo.mutation
}

// Where appends a list predicates to the PageUpdate builder.
func (puo *PageUpdateOne) Where(ps ...predicate.Page) *PageUpdateOne {
	puo.mutation.Where(ps...)
	return puo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (puo *PageUpdateOne) Select(field string, fields ...string) *PageUpdateOne {
	puo.fields = append([]string{field}, fields...)
	return puo
}

// Save executes the query and returns the updated Page entity.
func (puo *PageUpdateOne) Save(ctx context.Context) (*Page, error) {
	puo.defaults()
	return withHooks(ctx, puo.sqlSave, puo.mutation, puo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (puo *PageUpdateOne) SaveX(ctx context.Context) *Page {
	node, err := puo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (puo *PageUpdateOne) Exec(ctx context.Context) error {
	_, err := puo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (puo *PageUpdateOne) ExecX(ctx context.Context) {
	if err := puo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (puo *PageUpdateOne) defaults() {
	if _, ok := puo.mutation.UpdatedAt(); !ok {
		v := page.UpdateDefaultUpdatedAt()
		puo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (puo *PageUpdateOne) check() error {
	if v, ok := puo.mutation.Slug(); ok {
		if err := page.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Page.slug": %w`, err)}
		}
	}
	if v, ok := puo.mutation.Title(); ok {
		if err := page.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Page.title": %w`, err)}
		}
	}
	if v, ok := puo.mutation.Status(); ok {
		if err := page.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Page.status": %w`, err)}
		}
	}
	return nil
}

func (puo *PageUpdateOne) sqlSave(ctx context.Context) (_node *Page, err error) {
	if err := puo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(page.Table, page.Columns, sqlgraph.NewFieldSpec(page.FieldID, field.TypeUint))
	id, ok := puo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Page.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := puo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, page.FieldID)
		for _, f := range fields {
			if !page.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != page.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := puo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := puo.mutation.Slug(); ok {
		_spec.SetField(page.FieldSlug, field.TypeString, value)
	}
	if value, ok := puo.mutation.Title(); ok {
		_spec.SetField(page.FieldTitle, field.TypeString, value)
	}
	if value, ok := puo.mutation.Status(); ok {
		_spec.SetField(page.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := puo.mutation.Seo(); ok {
		_spec.SetField(page.FieldSeo, field.TypeJSON, value)
	}
	if puo.mutation.SeoCleared() {
		_spec.ClearField(page.FieldSeo, field.TypeJSON)
	}
	if value, ok := puo.mutation.Blocks(); ok {
		_spec.SetField(page.FieldBlocks, field.TypeJSON, value)
	}
	if value, ok := puo.mutation.AppendedBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, page.FieldBlocks, value)
		})
	}
	if puo.mutation.BlocksCleared() {
		_spec.ClearField(page.FieldBlocks, field.TypeJSON)
	}
	if value, ok := puo.mutation.PublishedAt(); ok {
		_spec.SetField(page.FieldPublishedAt, field.TypeTime, value)
	}
	if puo.mutation.PublishedAtCleared() {
		_spec.ClearField(page.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := puo.mutation.ScheduledAt(); ok {
		_spec.SetField(page.FieldScheduledAt, field.TypeTime, value)
	}
	if puo.mutation.ScheduledAtCleared() {
		_spec.ClearField(page.FieldScheduledAt, field.TypeTime)
	}
	if value, ok := puo.mutation.UpdatedAt(); ok {
		_spec.SetField(page.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Page{config: puo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, puo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{page.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	puo.mutation.done = true
	return _node, nil
}
