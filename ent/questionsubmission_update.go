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
	"github.com/abhisek/nmt/ent/predicate"
	"github.com/abhisek/nmt/ent/questionsubmission"
)

// QuestionSubmissionUpdate is the builder for updating QuestionSubmission entities.
type QuestionSubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionSubmissionMutation
}

// Where appends a list predicates to the QuestionSubmissionUpdate builder.
func (_u *QuestionSubmissionUpdate) Where(ps ...predicate.QuestionSubmission) *QuestionSubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuestionSubmissionUpdate) SetStatus(v questionsubmission.Status) *QuestionSubmissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuestionSubmissionUpdate) SetNillableStatus(v *questionsubmission.Status) *QuestionSubmissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuestionSubmissionUpdate) SetTopic(v string) *QuestionSubmissionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuestionSubmissionUpdate) SetNillableTopic(v *string) *QuestionSubmissionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *QuestionSubmissionUpdate) SetKind(v string) *QuestionSubmissionUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *QuestionSubmissionUpdate) SetNillableKind(v *string) *QuestionSubmissionUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetRecord sets the "record" field.
func (_u *QuestionSubmissionUpdate) SetRecord(v json.RawMessage) *QuestionSubmissionUpdate {
	_u.mutation.SetRecord(v)
	return _u
}

// AppendRecord appends value to the "record" field.
func (_u *QuestionSubmissionUpdate) AppendRecord(v json.RawMessage) *QuestionSubmissionUpdate {
	_u.mutation.AppendRecord(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *QuestionSubmissionUpdate) SetSource(v string) *QuestionSubmissionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *QuestionSubmissionUpdate) SetNillableSource(v *string) *QuestionSubmissionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *QuestionSubmissionUpdate) SetAuthor(v string) *QuestionSubmissionUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *QuestionSubmissionUpdate) SetNillableAuthor(v *string) *QuestionSubmissionUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetReviewNote sets the "review_note" field.
func (_u *QuestionSubmissionUpdate) SetReviewNote(v string) *QuestionSubmissionUpdate {
	_u.mutation.SetReviewNote(v)
	return _u
}

// SetNillableReviewNote sets the "review_note" field if the given value is not nil.
func (_u *QuestionSubmissionUpdate) SetNillableReviewNote(v *string) *QuestionSubmissionUpdate {
	if v != nil {
		_u.SetReviewNote(*v)
	}
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *QuestionSubmissionUpdate) SetReviewedAt(v time.Time) *QuestionSubmissionUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *QuestionSubmissionUpdate) SetNillableReviewedAt(v *time.Time) *QuestionSubmissionUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *QuestionSubmissionUpdate) ClearReviewedAt() *QuestionSubmissionUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// Mutation returns the QuestionSubmissionMutation object of the builder.
func (_u *QuestionSubmissionUpdate) Mutation() *QuestionSubmissionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionSubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionSubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionSubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionSubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionSubmissionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := questionsubmission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuestionSubmission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionSubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionsubmission.Table, questionsubmission.Columns, sqlgraph.NewFieldSpec(questionsubmission.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(questionsubmission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(questionsubmission.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(questionsubmission.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Record(); ok {
		_spec.SetField(questionsubmission.FieldRecord, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecord(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionsubmission.FieldRecord, value)
		})
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(questionsubmission.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(questionsubmission.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewNote(); ok {
		_spec.SetField(questionsubmission.FieldReviewNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(questionsubmission.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(questionsubmission.FieldReviewedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionsubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionSubmissionUpdateOne is the builder for updating a single QuestionSubmission entity.
type QuestionSubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionSubmissionMutation
}

// SetStatus sets the "status" field.
func (_u *QuestionSubmissionUpdateOne) SetStatus(v questionsubmission.Status) *QuestionSubmissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuestionSubmissionUpdateOne) SetNillableStatus(v *questionsubmission.Status) *QuestionSubmissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuestionSubmissionUpdateOne) SetTopic(v string) *QuestionSubmissionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuestionSubmissionUpdateOne) SetNillableTopic(v *string) *QuestionSubmissionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *QuestionSubmissionUpdateOne) SetKind(v string) *QuestionSubmissionUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *QuestionSubmissionUpdateOne) SetNillableKind(v *string) *QuestionSubmissionUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetRecord sets the "record" field.
func (_u *QuestionSubmissionUpdateOne) SetRecord(v json.RawMessage) *QuestionSubmissionUpdateOne {
	_u.mutation.SetRecord(v)
	return _u
}

// AppendRecord appends value to the "record" field.
func (_u *QuestionSubmissionUpdateOne) AppendRecord(v json.RawMessage) *QuestionSubmissionUpdateOne {
	_u.mutation.AppendRecord(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *QuestionSubmissionUpdateOne) SetSource(v string) *QuestionSubmissionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *QuestionSubmissionUpdateOne) SetNillableSource(v *string) *QuestionSubmissionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *QuestionSubmissionUpdateOne) SetAuthor(v string) *QuestionSubmissionUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *QuestionSubmissionUpdateOne) SetNillableAuthor(v *string) *QuestionSubmissionUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetReviewNote sets the "review_note" field.
func (_u *QuestionSubmissionUpdateOne) SetReviewNote(v string) *QuestionSubmissionUpdateOne {
	_u.mutation.SetReviewNote(v)
	return _u
}

// SetNillableReviewNote sets the "review_note" field if the given value is not nil.
func (_u *QuestionSubmissionUpdateOne) SetNillableReviewNote(v *string) *QuestionSubmissionUpdateOne {
	if v != nil {
		_u.SetReviewNote(*v)
	}
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *QuestionSubmissionUpdateOne) SetReviewedAt(v time.Time) *QuestionSubmissionUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *QuestionSubmissionUpdateOne) SetNillableReviewedAt(v *time.Time) *QuestionSubmissionUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *QuestionSubmissionUpdateOne) ClearReviewedAt() *QuestionSubmissionUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// Mutation returns the QuestionSubmissionMutation object of the builder.
func (_u *QuestionSubmissionUpdateOne) Mutation() *QuestionSubmissionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionSubmissionUpdate builder.
func (_u *QuestionSubmissionUpdateOne) Where(ps ...predicate.QuestionSubmission) *QuestionSubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionSubmissionUpdateOne) Select(field string, fields ...string) *QuestionSubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionSubmission entity.
func (_u *QuestionSubmissionUpdateOne) Save(ctx context.Context) (*QuestionSubmission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionSubmissionUpdateOne) SaveX(ctx context.Context) *QuestionSubmission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionSubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionSubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionSubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := questionsubmission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuestionSubmission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionSubmissionUpdateOne) sqlSave(ctx context.Context) (_node *QuestionSubmission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionsubmission.Table, questionsubmission.Columns, sqlgraph.NewFieldSpec(questionsubmission.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionSubmission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionsubmission.FieldID)
		for _, f := range fields {
			if !questionsubmission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionsubmission.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(questionsubmission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(questionsubmission.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(questionsubmission.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Record(); ok {
		_spec.SetField(questionsubmission.FieldRecord, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecord(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionsubmission.FieldRecord, value)
		})
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(questionsubmission.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(questionsubmission.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewNote(); ok {
		_spec.SetField(questionsubmission.FieldReviewNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(questionsubmission.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(questionsubmission.FieldReviewedAt, field.TypeTime)
	}
	_node = &QuestionSubmission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionsubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
