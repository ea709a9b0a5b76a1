// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/nmt/ent/questionsubmission"
)

// QuestionSubmissionCreate is the builder for creating a QuestionSubmission entity.
type QuestionSubmissionCreate struct {
	config
	mutation *QuestionSubmissionMutation
	hooks    []Hook
}

// SetStatus sets the "status" field.
func (_c *QuestionSubmissionCreate) SetStatus(v questionsubmission.Status) *QuestionSubmissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QuestionSubmissionCreate) SetNillableStatus(v *questionsubmission.Status) *QuestionSubmissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuestionSubmissionCreate) SetTopic(v string) *QuestionSubmissionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *QuestionSubmissionCreate) SetNillableTopic(v *string) *QuestionSubmissionCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *QuestionSubmissionCreate) SetKind(v string) *QuestionSubmissionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *QuestionSubmissionCreate) SetNillableKind(v *string) *QuestionSubmissionCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetRecord sets the "record" field.
func (_c *QuestionSubmissionCreate) SetRecord(v json.RawMessage) *QuestionSubmissionCreate {
	_c.mutation.SetRecord(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *QuestionSubmissionCreate) SetSource(v string) *QuestionSubmissionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *QuestionSubmissionCreate) SetNillableSource(v *string) *QuestionSubmissionCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetAuthor sets the "author" field.
func (_c *QuestionSubmissionCreate) SetAuthor(v string) *QuestionSubmissionCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *QuestionSubmissionCreate) SetNillableAuthor(v *string) *QuestionSubmissionCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetReviewNote sets the "review_note" field.
func (_c *QuestionSubmissionCreate) SetReviewNote(v string) *QuestionSubmissionCreate {
	_c.mutation.SetReviewNote(v)
	return _c
}

// SetNillableReviewNote sets the "review_note" field if the given value is not nil.
func (_c *QuestionSubmissionCreate) SetNillableReviewNote(v *string) *QuestionSubmissionCreate {
	if v != nil {
		_c.SetReviewNote(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionSubmissionCreate) SetCreatedAt(v time.Time) *QuestionSubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionSubmissionCreate) SetNillableCreatedAt(v *time.Time) *QuestionSubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *QuestionSubmissionCreate) SetReviewedAt(v time.Time) *QuestionSubmissionCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *QuestionSubmissionCreate) SetNillableReviewedAt(v *time.Time) *QuestionSubmissionCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// Mutation returns the QuestionSubmissionMutation object of the builder.
func (_c *QuestionSubmissionCreate) Mutation() *QuestionSubmissionMutation {
	return _c.mutation
}

// Save creates the QuestionSubmission in the database.
func (_c *QuestionSubmissionCreate) Save(ctx context.Context) (*QuestionSubmission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionSubmissionCreate) SaveX(ctx context.Context) *QuestionSubmission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionSubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionSubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionSubmissionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := questionsubmission.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := questionsubmission.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.Kind(); !ok {
		v := questionsubmission.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := questionsubmission.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.Author(); !ok {
		v := questionsubmission.DefaultAuthor
		_c.mutation.SetAuthor(v)
	}
	if _, ok := _c.mutation.ReviewNote(); !ok {
		v := questionsubmission.DefaultReviewNote
		_c.mutation.SetReviewNote(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := questionsubmission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionSubmissionCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QuestionSubmission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := questionsubmission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuestionSubmission.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "QuestionSubmission.topic"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "QuestionSubmission.kind"`)}
	}
	if _, ok := _c.mutation.Record(); !ok {
		return &ValidationError{Name: "record", err: errors.New(`ent: missing required field "QuestionSubmission.record"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "QuestionSubmission.source"`)}
	}
	if _, ok := _c.mutation.Author(); !ok {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required field "QuestionSubmission.author"`)}
	}
	if _, ok := _c.mutation.ReviewNote(); !ok {
		return &ValidationError{Name: "review_note", err: errors.New(`ent: missing required field "QuestionSubmission.review_note"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuestionSubmission.created_at"`)}
	}
	return nil
}

func (_c *QuestionSubmissionCreate) sqlSave(ctx context.Context) (*QuestionSubmission, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionSubmissionCreate) createSpec() (*QuestionSubmission, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionSubmission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionsubmission.Table, sqlgraph.NewFieldSpec(questionsubmission.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(questionsubmission.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(questionsubmission.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(questionsubmission.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Record(); ok {
		_spec.SetField(questionsubmission.FieldRecord, field.TypeJSON, value)
		_node.Record = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(questionsubmission.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(questionsubmission.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := _c.mutation.ReviewNote(); ok {
		_spec.SetField(questionsubmission.FieldReviewNote, field.TypeString, value)
		_node.ReviewNote = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(questionsubmission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(questionsubmission.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	return _node, _spec
}

// QuestionSubmissionCreateBulk is the builder for creating many QuestionSubmission entities in bulk.
type QuestionSubmissionCreateBulk struct {
	config
	err      error
	builders []*QuestionSubmissionCreate
}

// Save creates the QuestionSubmission entities in the database.
func (_c *QuestionSubmissionCreateBulk) Save(ctx context.Context) ([]*QuestionSubmission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionSubmission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionSubmissionMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuestionSubmissionCreateBulk) SaveX(ctx context.Context) []*QuestionSubmission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionSubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionSubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
