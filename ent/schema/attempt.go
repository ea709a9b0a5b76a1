package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt is one finished exam. Name and email are copied from the student
// at recording time so results stay searchable after roster edits.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Default(""),
		field.String("student_email").
			NotEmpty(),
		field.String("student_name").
			Default(""),
		field.Int("score").
			NonNegative(),
		field.Int("percent").
			Range(0, 100),
		field.JSON("answers", json.RawMessage{}).
			Comment("Per-question detail"),
		field.JSON("incorrect", json.RawMessage{}).
			Comment("Incorrect-answer summary"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Attempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("student", Student.Type).
			Ref("attempts").
			Unique().
			Required(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("student_email"),
	}
}
