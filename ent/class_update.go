// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/nmt/ent/class"
	"github.com/abhisek/nmt/ent/predicate"
	"github.com/abhisek/nmt/ent/student"
)

// ClassUpdate is the builder for updating Class entities.
type ClassUpdate struct {
	config
	hooks    []Hook
	mutation *ClassMutation
}

// Where appends a list predicates to the ClassUpdate builder.
func (_u *ClassUpdate) Where(ps ...predicate.Class) *ClassUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ClassUpdate) SetName(v string) *ClassUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ClassUpdate) SetNillableName(v *string) *ClassUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetJoinCode sets the "join_code" field.
func (_u *ClassUpdate) SetJoinCode(v string) *ClassUpdate {
	_u.mutation.SetJoinCode(v)
	return _u
}

// SetNillableJoinCode sets the "join_code" field if the given value is not nil.
func (_u *ClassUpdate) SetNillableJoinCode(v *string) *ClassUpdate {
	if v != nil {
		_u.SetJoinCode(*v)
	}
	return _u
}

// ClearJoinCode clears the value of the "join_code" field.
func (_u *ClassUpdate) ClearJoinCode() *ClassUpdate {
	_u.mutation.ClearJoinCode()
	return _u
}

// SetJoinCodeExpiresAt sets the "join_code_expires_at" field.
func (_u *ClassUpdate) SetJoinCodeExpiresAt(v time.Time) *ClassUpdate {
	_u.mutation.SetJoinCodeExpiresAt(v)
	return _u
}

// SetNillableJoinCodeExpiresAt sets the "join_code_expires_at" field if the given value is not nil.
func (_u *ClassUpdate) SetNillableJoinCodeExpiresAt(v *time.Time) *ClassUpdate {
	if v != nil {
		_u.SetJoinCodeExpiresAt(*v)
	}
	return _u
}

// ClearJoinCodeExpiresAt clears the value of the "join_code_expires_at" field.
func (_u *ClassUpdate) ClearJoinCodeExpiresAt() *ClassUpdate {
	_u.mutation.ClearJoinCodeExpiresAt()
	return _u
}

// AddStudentIDs adds the "students" edge to the Student entity by IDs.
func (_u *ClassUpdate) AddStudentIDs(ids ...int) *ClassUpdate {
	_u.mutation.AddStudentIDs(ids...)
	return _u
}

// AddStudents adds the "students" edges to the Student entity.
func (_u *ClassUpdate) AddStudents(v ...*Student) *ClassUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStudentIDs(ids...)
}

// Mutation returns the ClassMutation object of the builder.
func (_u *ClassUpdate) Mutation() *ClassMutation {
	return _u.mutation
}

// ClearStudents clears all "students" edges to the Student entity.
func (_u *ClassUpdate) ClearStudents() *ClassUpdate {
	_u.mutation.ClearStudents()
	return _u
}

// RemoveStudentIDs removes the "students" edge to Student entities by IDs.
func (_u *ClassUpdate) RemoveStudentIDs(ids ...int) *ClassUpdate {
	_u.mutation.RemoveStudentIDs(ids...)
	return _u
}

// RemoveStudents removes "students" edges to Student entities.
func (_u *ClassUpdate) RemoveStudents(v ...*Student) *ClassUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStudentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClassUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClassUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClassUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClassUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClassUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := class.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Class.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ClassUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(class.Table, class.Columns, sqlgraph.NewFieldSpec(class.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(class.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.JoinCode(); ok {
		_spec.SetField(class.FieldJoinCode, field.TypeString, value)
	}
	if _u.mutation.JoinCodeCleared() {
		_spec.ClearField(class.FieldJoinCode, field.TypeString)
	}
	if value, ok := _u.mutation.JoinCodeExpiresAt(); ok {
		_spec.SetField(class.FieldJoinCodeExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.JoinCodeExpiresAtCleared() {
		_spec.ClearField(class.FieldJoinCodeExpiresAt, field.TypeTime)
	}
	if _u.mutation.StudentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   class.StudentsTable,
			Columns: []string{class.StudentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(student.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStudentsIDs(); len(nodes) > 0 && !_u.mutation.StudentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   class.StudentsTable,
			Columns: []string{class.StudentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(student.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   class.StudentsTable,
			Columns: []string{class.StudentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(student.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{class.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClassUpdateOne is the builder for updating a single Class entity.
type ClassUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClassMutation
}

// SetName sets the "name" field.
func (_u *ClassUpdateOne) SetName(v string) *ClassUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ClassUpdateOne) SetNillableName(v *string) *ClassUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetJoinCode sets the "join_code" field.
func (_u *ClassUpdateOne) SetJoinCode(v string) *ClassUpdateOne {
	_u.mutation.SetJoinCode(v)
	return _u
}

// SetNillableJoinCode sets the "join_code" field if the given value is not nil.
func (_u *ClassUpdateOne) SetNillableJoinCode(v *string) *ClassUpdateOne {
	if v != nil {
		_u.SetJoinCode(*v)
	}
	return _u
}

// ClearJoinCode clears the value of the "join_code" field.
func (_u *ClassUpdateOne) ClearJoinCode() *ClassUpdateOne {
	_u.mutation.ClearJoinCode()
	return _u
}

// SetJoinCodeExpiresAt sets the "join_code_expires_at" field.
func (_u *ClassUpdateOne) SetJoinCodeExpiresAt(v time.Time) *ClassUpdateOne {
	_u.mutation.SetJoinCodeExpiresAt(v)
	return _u
}

// SetNillableJoinCodeExpiresAt sets the "join_code_expires_at" field if the given value is not nil.
func (_u *ClassUpdateOne) SetNillableJoinCodeExpiresAt(v *time.Time) *ClassUpdateOne {
	if v != nil {
		_u.SetJoinCodeExpiresAt(*v)
	}
	return _u
}

// ClearJoinCodeExpiresAt clears the value of the "join_code_expires_at" field.
func (_u *ClassUpdateOne) ClearJoinCodeExpiresAt() *ClassUpdateOne {
	_u.mutation.ClearJoinCodeExpiresAt()
	return _u
}

// AddStudentIDs adds the "students" edge to the Student entity by IDs.
func (_u *ClassUpdateOne) AddStudentIDs(ids ...int) *ClassUpdateOne {
	_u.mutation.AddStudentIDs(ids...)
	return _u
}

// AddStudents adds the "students" edges to the Student entity.
func (_u *ClassUpdateOne) AddStudents(v ...*Student) *ClassUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStudentIDs(ids...)
}

// Mutation returns the ClassMutation object of the builder.
func (_u *ClassUpdateOne) Mutation() *ClassMutation {
	return _u.mutation
}

// ClearStudents clears all "students" edges to the Student entity.
func (_u *ClassUpdateOne) ClearStudents() *ClassUpdateOne {
	_u.mutation.ClearStudents()
	return _u
}

// RemoveStudentIDs removes the "students" edge to Student entities by IDs.
func (_u *ClassUpdateOne) RemoveStudentIDs(ids ...int) *ClassUpdateOne {
	_u.mutation.RemoveStudentIDs(ids...)
	return _u
}

// RemoveStudents removes "students" edges to Student entities.
func (_u *ClassUpdateOne) RemoveStudents(v ...*Student) *ClassUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStudentIDs(ids...)
}

// Where appends a list predicates to the ClassUpdate builder.
func (_u *ClassUpdateOne) Where(ps ...predicate.Class) *ClassUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClassUpdateOne) Select(field string, fields ...string) *ClassUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Class entity.
func (_u *ClassUpdateOne) Save(ctx context.Context) (*Class, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClassUpdateOne) SaveX(ctx context.Context) *Class {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClassUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClassUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClassUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := class.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Class.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ClassUpdateOne) sqlSave(ctx context.Context) (_node *Class, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(class.Table, class.Columns, sqlgraph.NewFieldSpec(class.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Class.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, class.FieldID)
		for _, f := range fields {
			if !class.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != class.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(class.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.JoinCode(); ok {
		_spec.SetField(class.FieldJoinCode, field.TypeString, value)
	}
	if _u.mutation.JoinCodeCleared() {
		_spec.ClearField(class.FieldJoinCode, field.TypeString)
	}
	if value, ok := _u.mutation.JoinCodeExpiresAt(); ok {
		_spec.SetField(class.FieldJoinCodeExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.JoinCodeExpiresAtCleared() {
		_spec.ClearField(class.FieldJoinCodeExpiresAt, field.TypeTime)
	}
	if _u.mutation.StudentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   class.StudentsTable,
			Columns: []string{class.StudentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(student.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStudentsIDs(); len(nodes) > 0 && !_u.mutation.StudentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   class.StudentsTable,
			Columns: []string{class.StudentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(student.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   class.StudentsTable,
			Columns: []string{class.StudentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(student.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Class{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{class.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
