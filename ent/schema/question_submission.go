package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionSubmission is a candidate pool record awaiting review.
type QuestionSubmission struct {
	ent.Schema
}

func (QuestionSubmission) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("pending"),
		field.String("topic").
			Default(""),
		field.String("kind").
			Default("").
			Comment("single, matching or short as classified at submission"),
		field.JSON("record", json.RawMessage{}).
			Comment("Pool record in question-bank format"),
		field.String("source").
			Default("manual").
			Comment("manual, import or the drafting model ID"),
		field.String("author").
			Default(""),
		field.String("review_note").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("reviewed_at").
			Optional().
			Nillable(),
	}
}

func (QuestionSubmission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
