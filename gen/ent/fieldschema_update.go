// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/akaraszi/billscan/gen/ent/fieldschema"
	"github.com/akaraszi/billscan/gen/ent/predicate"
	"github.com/akaraszi/billscan/gen/ent/profile"
	"github.com/google/uuid"
)

// FieldSchemaUpdate is the builder for updating FieldSchema entities.
type FieldSchemaUpdate struct {
	config
	hooks    []Hook
	mutation *FieldSchemaMutation
}

// Where appends a list predicates to the FieldSchemaUpdate builder.
func (_u *FieldSchemaUpdate) Where(ps ...predicate.FieldSchema) *FieldSchemaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *FieldSchemaUpdate) SetProfileID(v uuid.UUID) *FieldSchemaUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *FieldSchemaUpdate) SetNillableProfileID(v *uuid.UUID) *FieldSchemaUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetEntries sets the "entries" field.
func (_u *FieldSchemaUpdate) SetEntries(v json.RawMessage) *FieldSchemaUpdate {
	_u.mutation.SetEntries(v)
	return _u
}

// AppendEntries appends value to the "entries" field.
func (_u *FieldSchemaUpdate) AppendEntries(v json.RawMessage) *FieldSchemaUpdate {
	_u.mutation.AppendEntries(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *FieldSchemaUpdate) SetVersion(v int) *FieldSchemaUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *FieldSchemaUpdate) SetNillableVersion(v *int) *FieldSchemaUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *FieldSchemaUpdate) AddVersion(v int) *FieldSchemaUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FieldSchemaUpdate) SetCreatedAt(v time.Time) *FieldSchemaUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FieldSchemaUpdate) SetNillableCreatedAt(v *time.Time) *FieldSchemaUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FieldSchemaUpdate) SetUpdatedAt(v time.Time) *FieldSchemaUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *FieldSchemaUpdate) SetProfile(v *Profile) *FieldSchemaUpdate {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the FieldSchemaMutation object of the builder.
func (_u *FieldSchemaUpdate) Mutation() *FieldSchemaMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *FieldSchemaUpdate) ClearProfile() *FieldSchemaUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FieldSchemaUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldSchemaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FieldSchemaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldSchemaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FieldSchemaUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fieldschema.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldSchemaUpdate) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := fieldschema.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "FieldSchema.version": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FieldSchema.profile"`)
	}
	return nil
}

func (_u *FieldSchemaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fieldschema.Table, fieldschema.Columns, sqlgraph.NewFieldSpec(fieldschema.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Entries(); ok {
		_spec.SetField(fieldschema.FieldEntries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fieldschema.FieldEntries, value)
		})
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(fieldschema.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(fieldschema.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fieldschema.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fieldschema.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldschema.ProfileTable,
			Columns: []string{fieldschema.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldschema.ProfileTable,
			Columns: []string{fieldschema.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldschema.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FieldSchemaUpdateOne is the builder for updating a single FieldSchema entity.
type FieldSchemaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FieldSchemaMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *FieldSchemaUpdateOne) SetProfileID(v uuid.UUID) *FieldSchemaUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *FieldSchemaUpdateOne) SetNillableProfileID(v *uuid.UUID) *FieldSchemaUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetEntries sets the "entries" field.
func (_u *FieldSchemaUpdateOne) SetEntries(v json.RawMessage) *FieldSchemaUpdateOne {
	_u.mutation.SetEntries(v)
	return _u
}

// AppendEntries appends value to the "entries" field.
func (_u *FieldSchemaUpdateOne) AppendEntries(v json.RawMessage) *FieldSchemaUpdateOne {
	_u.mutation.AppendEntries(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *FieldSchemaUpdateOne) SetVersion(v int) *FieldSchemaUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *FieldSchemaUpdateOne) SetNillableVersion(v *int) *FieldSchemaUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *FieldSchemaUpdateOne) AddVersion(v int) *FieldSchemaUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FieldSchemaUpdateOne) SetCreatedAt(v time.Time) *FieldSchemaUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FieldSchemaUpdateOne) SetNillableCreatedAt(v *time.Time) *FieldSchemaUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FieldSchemaUpdateOne) SetUpdatedAt(v time.Time) *FieldSchemaUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *FieldSchemaUpdateOne) SetProfile(v *Profile) *FieldSchemaUpdateOne {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the FieldSchemaMutation object of the builder.
func (_u *FieldSchemaUpdateOne) Mutation() *FieldSchemaMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *FieldSchemaUpdateOne) ClearProfile() *FieldSchemaUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// Where appends a list predicates to the FieldSchemaUpdate builder.
func (_u *FieldSchemaUpdateOne) Where(ps ...predicate.FieldSchema) *FieldSchemaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FieldSchemaUpdateOne) Select(field string, fields ...string) *FieldSchemaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FieldSchema entity.
func (_u *FieldSchemaUpdateOne) Save(ctx context.Context) (*FieldSchema, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldSchemaUpdateOne) SaveX(ctx context.Context) *FieldSchema {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FieldSchemaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldSchemaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FieldSchemaUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fieldschema.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldSchemaUpdateOne) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := fieldschema.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "FieldSchema.version": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FieldSchema.profile"`)
	}
	return nil
}

func (_u *FieldSchemaUpdateOne) sqlSave(ctx context.Context) (_node *FieldSchema, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fieldschema.Table, fieldschema.Columns, sqlgraph.NewFieldSpec(fieldschema.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FieldSchema.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fieldschema.FieldID)
		for _, f := range fields {
			if !fieldschema.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fieldschema.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Entries(); ok {
		_spec.SetField(fieldschema.FieldEntries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fieldschema.FieldEntries, value)
		})
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(fieldschema.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(fieldschema.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fieldschema.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fieldschema.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldschema.ProfileTable,
			Columns: []string{fieldschema.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldschema.ProfileTable,
			Columns: []string{fieldschema.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FieldSchema{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldschema.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
