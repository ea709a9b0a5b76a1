package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records exam session lifecycle events.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start, resume or finish"),
		field.String("student_email").
			Default(""),
		field.String("reason").
			Default("").
			Comment("manual, timeout or error (on finish only)"),
		field.Int("questions").
			Default(0).
			Comment("Number of slots in the session"),
		field.Int("answered").
			Default(0).
			Comment("Answered slots (on finish only)"),
		field.Int("score").
			Default(0).
			Comment("Total score (on finish only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Time spent in seconds (on finish only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
