// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/nmt/ent/questionsubmission"
)

// QuestionSubmission is the model entity for the QuestionSubmission schema.
type QuestionSubmission struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Status holds the value of the "status" field.
	Status questionsubmission.Status `json:"status,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// single, matching or short as classified at submission
	Kind string `json:"kind,omitempty"`
	// Pool record in question-bank format
	Record json.RawMessage `json:"record,omitempty"`
	// manual, import or the drafting model ID
	Source string `json:"source,omitempty"`
	// Author holds the value of the "author" field.
	Author string `json:"author,omitempty"`
	// ReviewNote holds the value of the "review_note" field.
	ReviewNote string `json:"review_note,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ReviewedAt holds the value of the "reviewed_at" field.
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionSubmission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionsubmission.FieldRecord:
			values[i] = new([]byte)
		case questionsubmission.FieldID:
			values[i] = new(sql.NullInt64)
		case questionsubmission.FieldStatus, questionsubmission.FieldTopic, questionsubmission.FieldKind, questionsubmission.FieldSource, questionsubmission.FieldAuthor, questionsubmission.FieldReviewNote:
			values[i] = new(sql.NullString)
		case questionsubmission.FieldCreatedAt, questionsubmission.FieldReviewedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionSubmission fields.
func (_m *QuestionSubmission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionsubmission.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case questionsubmission.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = questionsubmission.Status(value.String)
			}
		case questionsubmission.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case questionsubmission.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case questionsubmission.FieldRecord:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field record", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Record); err != nil {
					return fmt.Errorf("unmarshal field record: %w", err)
				}
			}
		case questionsubmission.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case questionsubmission.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = value.String
			}
		case questionsubmission.FieldReviewNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_note", values[i])
			} else if value.Valid {
				_m.ReviewNote = value.String
			}
		case questionsubmission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case questionsubmission.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = new(time.Time)
				*_m.ReviewedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionSubmission.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionSubmission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuestionSubmission.
// Note that you need to call QuestionSubmission.Unwrap() before calling this method if this QuestionSubmission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionSubmission) Update() *QuestionSubmissionUpdateOne {
	return NewQuestionSubmissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionSubmission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionSubmission) Unwrap() *QuestionSubmission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestionSubmission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionSubmission) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionSubmission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("record=")
	builder.WriteString(fmt.Sprintf("%v", _m.Record))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("author=")
	builder.WriteString(_m.Author)
	builder.WriteString(", ")
	builder.WriteString("review_note=")
	builder.WriteString(_m.ReviewNote)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// QuestionSubmissions is a parsable slice of QuestionSubmission.
type QuestionSubmissions []*QuestionSubmission
