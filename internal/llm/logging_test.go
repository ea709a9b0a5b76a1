package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/nmt/ent/llmrequestevent"
	"github.com/abhisek/nmt/internal/store"
)

func TestLogging_RecordsEveryAttempt(t *testing.T) {
	s, err := store.Open("file:llm_logging?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	core, logs := observer.New(zap.InfoLevel)
	inner := NewScripted(
		Reply{Content: json.RawMessage(`{"question":"?"}`), Usage: Usage{Input: 120, Output: 40}},
		Reply{Err: errors.New("boom")},
		Reply{Content: json.RawMessage(`{"answer":"1"}`), Usage: Usage{Input: 130, Output: 20}},
	)
	cfg := DefaultConfig()
	cfg.Retry.InitialWait = 0
	p := Wrap(inner, cfg, s.EventRepo(), zap.New(core))

	// Invalid output, then a transport error, then success.
	resp, err := p.Generate(context.Background(), Request{Purpose: "bank-draft", Schema: answerSchema})
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"1"}`, string(resp.Content))

	rows, err := s.Client().LLMRequestEvent.Query().Order(llmrequestevent.BySequence()).All(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.False(t, rows[0].Success)
	assert.Equal(t, 120, rows[0].InputTokens)
	assert.Contains(t, rows[0].ErrorMessage, "does not match schema")
	assert.Equal(t, "invalid_output", rows[0].ErrorKind)
	assert.False(t, rows[1].Success)
	assert.Equal(t, "other", rows[1].ErrorKind)
	assert.Contains(t, rows[1].ErrorMessage, "boom")
	assert.True(t, rows[2].Success)
	for _, r := range rows {
		assert.Equal(t, "bank-draft", r.Purpose)
		assert.Equal(t, "scripted", r.Provider)
	}

	assert.Equal(t, 2, logs.FilterMessage("llm request failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("llm request").Len())
}

func TestLogging_NilSinks(t *testing.T) {
	p := withLogging(NewScripted(Reply{Content: json.RawMessage(`{}`)}), nil, nil)
	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
}

func TestEstimateCost(t *testing.T) {
	usd, ok := EstimateCost("gpt-4o-mini", Usage{Input: 1_000_000, Output: 1_000_000})
	require.True(t, ok)
	assert.InDelta(t, 0.75, usd, 1e-9)

	_, ok = EstimateCost("scripted", Usage{Input: 1})
	assert.False(t, ok)
}
