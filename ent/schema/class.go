package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Class is a group of students sharing a join code.
type Class struct {
	ent.Schema
}

func (Class) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.String("join_code").
			Optional().
			Comment("6-digit code students enter to join the class"),
		field.Time("join_code_expires_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Class) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("students", Student.Type),
	}
}

func (Class) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("join_code"),
	}
}
