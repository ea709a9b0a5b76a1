package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/abhisek/nmt/ent"
	"github.com/abhisek/nmt/ent/llmrequestevent"
)

// eventRepo implements EventRepo on ent plus the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, d LLMRequestEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	err = r.client.LLMRequestEvent.Create().
		SetSequence(seq).
		SetProvider(d.Provider).
		SetModel(d.Model).
		SetPurpose(d.Purpose).
		SetInputTokens(max(d.InputTokens, 0)).
		SetOutputTokens(max(d.OutputTokens, 0)).
		SetCost(d.Cost).
		SetLatencyMs(d.LatencyMs).
		SetSuccess(d.Success).
		SetErrorKind(d.ErrorKind).
		SetErrorMessage(d.ErrorMessage).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) LLMUsage(ctx context.Context, since time.Time) ([]LLMUsage, error) {
	rows, err := r.client.LLMRequestEvent.Query().
		Where(llmrequestevent.TimestampGTE(since.UTC())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm request events: %w", err)
	}

	type key struct{ provider, model, purpose string }
	totals := map[key]*LLMUsage{}
	for _, e := range rows {
		k := key{e.Provider, e.Model, e.Purpose}
		u := totals[k]
		if u == nil {
			u = &LLMUsage{Provider: e.Provider, Model: e.Model, Purpose: e.Purpose}
			totals[k] = u
		}
		u.Requests++
		if !e.Success {
			u.Failures++
		}
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		u.Cost += e.Cost
	}

	out := make([]LLMUsage, 0, len(totals))
	for _, u := range totals {
		out = append(out, *u)
	}
	slices.SortFunc(out, func(a, b LLMUsage) int {
		if c := cmp.Compare(b.Cost, a.Cost); c != 0 {
			return c
		}
		return cmp.Or(
			cmp.Compare(b.Requests, a.Requests),
			cmp.Compare(a.Provider, b.Provider),
			cmp.Compare(a.Model, b.Model),
			cmp.Compare(a.Purpose, b.Purpose),
		)
	})
	return out, nil
}
