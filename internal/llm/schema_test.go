package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaCheck(t *testing.T) {
	tests := []struct {
		raw string
		ok  bool
	}{
		{`{"answer":"2,5"}`, true},
		{`{"answer":"2,5","extra":1}`, true},
		{`{}`, false},
		{`{"answer":3}`, false},
		{`not json`, false},
	}
	for _, tt := range tests {
		err := answerSchema.Check(json.RawMessage(tt.raw))
		if tt.ok {
			assert.NoError(t, err, tt.raw)
		} else {
			assert.Error(t, err, tt.raw)
		}
	}
}

func TestSchemaCheck_BadDefinition(t *testing.T) {
	s := &Schema{Name: "broken", Definition: map[string]any{"type": 42}}
	assert.Error(t, s.Check(json.RawMessage(`{}`)))
}

func TestChecked(t *testing.T) {
	inner := NewScripted(
		Reply{Content: json.RawMessage(`{"question":"?"}`)},
		Reply{Content: json.RawMessage(`{"answer":"1"}`)},
	)
	p := checked{inner}

	_, err := p.Generate(context.Background(), Request{Schema: answerSchema})
	require.ErrorIs(t, err, ErrInvalidOutput)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.JSONEq(t, `{"question":"?"}`, string(pe.Content))

	resp, err := p.Generate(context.Background(), Request{Schema: answerSchema})
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"1"}`, string(resp.Content))
}
