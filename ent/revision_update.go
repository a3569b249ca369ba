// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/networkk/networkk-app/ent/predicate"
	"github.com/networkk/networkk-app/ent/revision"
)

// RevisionUpdate is the builder for updating Revision entities.
type RevisionUpdate struct {
	config
	hooks    []Hook
	mutation *RevisionMutation
}

// Where appends a list predicates to the RevisionUpdate builder.
func (ru *RevisionUpdate) Where(ps ...predicate.Revision) *RevisionUpdate {
	ru.mutation.Where(ps...)
	return ru
}

// SetEntityType sets the "entity_type" field.
func (ru *RevisionUpdate) SetEntityType(s string) *RevisionUpdate {
	ru.mutation.SetEntityType(s)
	return ru
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (ru *RevisionUpdate) SetNillableEntityType(s *string) *RevisionUpdate {
	if s != nil {
		ru.SetEntityType(*s)
	}
	return ru
}

// SetEntityID sets the "entity_id" field.
func (ru *RevisionUpdate) SetEntityID(u uint) *RevisionUpdate {
	ru.mutation.ResetEntityID()
	ru.mutation.SetEntityID(u)
	return ru
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (ru *RevisionUpdate) SetNillableEntityID(u *uint) *RevisionUpdate {
	if u != nil {
		ru.SetEntityID(*u)
	}
	return ru
}

// AddEntityID adds u to the "entity_id" field.
func (ru *RevisionUpdate) AddEntityID(u int) *RevisionUpdate {
	ru.mutation.AddEntityID(u)
	return ru
}

// SetVersion sets the "version" field.
func (ru *RevisionUpdate) SetVersion(i int) *RevisionUpdate {
	ru.mutation.ResetVersion()
	ru.mutation.SetVersion(i)
	return ru
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (ru *RevisionUpdate) SetNillableVersion(i *int) *RevisionUpdate {
	if i != nil {
		ru.SetVersion(*i)
	}
	return ru
}

// AddVersion adds i to the "version" field.
func (ru *RevisionUpdate) AddVersion(i int) *RevisionUpdate {
	ru.mutation.AddVersion(i)
	return ru
}

// SetSnapshot sets the "snapshot" field.
func (ru *RevisionUpdate) SetSnapshot(jm json.RawMessage) *RevisionUpdate {
	ru.mutation.SetSnapshot(jm)
	return ru
}

// AppendSnapshot appends jm to the "snapshot" field.
func (ru *RevisionUpdate) AppendSnapshot(jm json.RawMessage) *RevisionUpdate {
	ru.mutation.AppendSnapshot(jm)
	return ru
}

// Mutation returns the RevisionMutation object of the builder.
func (ru *RevisionUpdate) Mutation() *RevisionMutation {
	return ru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ru *RevisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ru.sqlSave, ru.mutation, ru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ru *RevisionUpdate) SaveX(ctx context.Context) int {
	affected, err := ru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ru *RevisionUpdate) Exec(ctx context.Context) error {
	_, err := ru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ru *RevisionUpdate) ExecX(ctx context.Context) {
	if err := ru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ru *RevisionUpdate) check() error {
	if v, ok := ru.mutation.EntityType(); ok {
		if err := revision.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "Revision.entity_type": %w`, err)}
		}
	}
	if v, ok := ru.mutation.Version(); ok {
		if err := revision.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Revision.version": %w`, err)}
		}
	}
	return nil
}

func (ru *RevisionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(revision.Table, revision.Columns, sqlgraph.NewFieldSpec(revision.FieldID, field.TypeUint))
	if ps := ru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ru.mutation.EntityType(); ok {
		_spec.SetField(revision.FieldEntityType, field.TypeString, value)
	}
	if value, ok := ru.mutation.EntityID(); ok {
		_spec.SetField(revision.FieldEntityID, field.TypeUint, value)
	}
	if value, ok := ru.mutation.AddedEntityID(); ok {
		_spec.AddField(revision.FieldEntityID, field.TypeUint, value)
	}
	if value, ok := ru.mutation.Version(); ok {
		_spec.SetField(revision.FieldVersion, field.TypeInt, value)
	}
	if value, ok := ru.mutation.AddedVersion(); ok {
		_spec.AddField(revision.FieldVersion, field.TypeInt, value)
	}
	if value, ok := ru.mutation.Snapshot(); ok {
		_spec.SetField(revision.FieldSnapshot, field.TypeJSON, value)
	}
	if value, ok := ru.mutation.AppendedSnapshot(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, revision.FieldSnapshot, value)
		})
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{revision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ru.mutation.done = true
	return n, nil
}

// RevisionUpdateOne is the builder for updating a single Revision entity.
type RevisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RevisionMutation
}

// SetEntityType sets the "entity_type" field.
func (ruo *RevisionUpdateOne) SetEntityType(s string) *RevisionUpdateOne {
	ruo.mutation.SetEntityType(s)
	return ruo
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (ruo *RevisionUpdateOne) SetNillableEntityType(s *string) *RevisionUpdateOne {
	if s != nil {
		ruo.SetEntityType(*s)
	}
	return ruo
}

// SetEntityID sets the "entity_id" field.
func (ruo *RevisionUpdateOne) SetEntityID(u uint) *RevisionUpdateOne {
	ruo.mutation.ResetEntityID()
	ruo.mutation.SetEntityID(u)
	return ruo
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (ruo *RevisionUpdateOne) SetNillableEntityID(u *uint) *RevisionUpdateOne {
	if u != nil {
		ruo.SetEntityID(*u)
	}
	return ruo
}

// AddEntityID adds u to the "entity_id" field.
func (ruo *RevisionUpdateOne) AddEntityID(u int) *RevisionUpdateOne {
	ruo.mutation.AddEntityID(u)
	return ruo
}

// SetVersion sets the "version" field.
func (ruo *RevisionUpdateOne) SetVersion(i int) *RevisionUpdateOne {
	ruo.mutation.ResetVersion()
	ruo.mutation.SetVersion(i)
	return ruo
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (ruo *RevisionUpdateOne) SetNillableVersion(i *int) *RevisionUpdateOne {
	if i != nil {
		ruo.SetVersion(*i)
	}
	return ruo
}

// AddVersion adds i to the "version" field.
func (ruo *RevisionUpdateOne) AddVersion(i int) *RevisionUpdateOne {
	ruo.mutation.AddVersion(i)
	return ruo
}

// SetSnapshot sets the "snapshot" field.
func (ruo *RevisionUpdateOne) SetSnapshot(jm json.RawMessage) *RevisionUpdateOne {
	ruo.mutation.SetSnapshot(jm)
	return ruo
}

// AppendSnapshot appends jm to the "snapshot" field.
func (ruo *RevisionUpdateOne) AppendSnapshot(jm json.RawMessage) *RevisionUpdateOne {
	ruo.mutation.AppendSnapshot(jm)
	return ruo
}

// Mutation returns the RevisionMutation object of the builder.
func (ruo *RevisionUpdateOne) Mutation() *RevisionMutation {
	return ruo.mutation
}

// Where appends a list predicates to the RevisionUpdate builder.
func (ruo *RevisionUpdateOne) Where(ps ...predicate.Revision) *RevisionUpdateOne {
	ruo.mutation.Where(ps...)
	return ruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ruo *RevisionUpdateOne) Select(field string, fields ...string) *RevisionUpdateOne {
	ruo.fields = append([]string{field}, fields...)
	return ruo
}

// Save executes the query and returns the updated Revision entity.
func (ruo *RevisionUpdateOne) Save(ctx context.Context) (*Revision, error) {
	return withHooks(ctx, ruo.sqlSave, ruo.mutation, ruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ruo *RevisionUpdateOne) SaveX(ctx context.Context) *Revision {
	node, err := ruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ruo *RevisionUpdateOne) Exec(ctx context.Context) error {
	_, err := ruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ruo *RevisionUpdateOne) ExecX(ctx context.Context) {
	if err := ruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ruo *RevisionUpdateOne) check() error {
	if v, ok := ruo.mutation.EntityType(); ok {
		if err := revision.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "Revision.entity_type": %w`, err)}
		}
	}
	if v, ok := ruo.mutation.Version(); ok {
		if err := revision.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Revision.version": %w`, err)}
		}
	}
	return nil
}

func (ruo *RevisionUpdateOne) sqlSave(ctx context.Context) (_node *Revision, err error) {
	if err := ruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(revision.Table, revision.Columns, sqlgraph.NewFieldSpec(revision.FieldID, field.TypeUint))
	id, ok := ruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Revision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, revision.FieldID)
		for _, f := range fields {
			if !revision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != revision.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ruo.mutation.EntityType(); ok {
		_spec.SetField(revision.FieldEntityType, field.TypeString, value)
	}
	if value, ok := ruo.mutation.EntityID(); ok {
		_spec.SetField(revision.FieldEntityID, field.TypeUint, value)
	}
	if value, ok := ruo.mutation.AddedEntityID(); ok {
		_spec.AddField(revision.FieldEntityID, field.TypeUint, value)
	}
	if value, ok := ruo.mutation.Version(); ok {
		_spec.SetField(revision.FieldVersion, field.TypeInt, value)
	}
	if value, ok := ruo.mutation.AddedVersion(); ok {
		_spec.AddField(revision.FieldVersion, field.TypeInt, value)
	}
	if value, ok := ruo.mutation.Snapshot(); ok {
		_spec.SetField(revision.FieldSnapshot, field.TypeJSON, value)
	}
	if value, ok := ruo.mutation.AppendedSnapshot(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, revision.FieldSnapshot, value)
		})
	}
	_node = &Revision{config: ruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{revision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ruo.mutation.done = true
	return _node, nil
}
