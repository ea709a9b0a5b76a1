package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent is one attempt at a model call. Retried calls leave one
// row per attempt.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider"),
		field.String("model").Comment("model ID the API reported"),
		field.String("purpose").Comment("what the call was for, e.g. bank-draft"),
		field.Int("input_tokens").NonNegative().Default(0),
		field.Int("output_tokens").NonNegative().Default(0),
		field.Float("cost").Default(0).Comment("estimated USD, 0 when the model has no known price"),
		field.Int64("latency_ms").Default(0),
		field.Bool("success"),
		field.String("error_kind").Default("").Comment("rate_limited, unavailable, rejected, invalid_output, truncated or other"),
		field.Text("error_message").Default(""),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("purpose", "timestamp"),
	}
}
