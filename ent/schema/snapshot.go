package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot holds the in-flight exam session of one client context, keyed
// by a fixed slot name so a reload can resume where it left off.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("slot").
			NotEmpty().
			Unique().
			Comment("Logical slot name, one in-flight session per slot"),
		field.Int("version").
			Default(1).
			Comment("Snapshot format version"),
		field.Time("timestamp").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the snapshot was last written"),
		field.JSON("data", map[string]any{}).
			Comment("Serialized session state"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
