package llm

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/nmt/internal/store"
)

// logged writes a log line and an LLM request event for every attempt.
type logged struct {
	Provider
	events store.EventRepo
	log    *zap.Logger
}

func withLogging(p Provider, events store.EventRepo, log *zap.Logger) *logged {
	if log == nil {
		log = zap.NewNop()
	}
	return &logged{Provider: p, events: events, log: log}
}

func (l *logged) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.Provider.Generate(ctx, req)

	ev := store.LLMRequestEventData{
		Provider:  l.Name(),
		Model:     l.Model(),
		Purpose:   req.Purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		if resp.Model != "" {
			ev.Model = resp.Model
		}
		ev.InputTokens = resp.Usage.Input
		ev.OutputTokens = resp.Usage.Output
	}
	if err != nil {
		ev.ErrorKind = kindName(err)
		ev.ErrorMessage = err.Error()
	}

	fields := []zap.Field{
		zap.String("provider", ev.Provider),
		zap.String("model", ev.Model),
		zap.String("purpose", ev.Purpose),
		zap.Int64("latency_ms", ev.LatencyMs),
	}
	if resp != nil {
		fields = append(fields,
			zap.Int("input_tokens", resp.Usage.Input),
			zap.Int("output_tokens", resp.Usage.Output))
		if usd, ok := EstimateCost(ev.Model, resp.Usage); ok {
			ev.Cost = usd
			fields = append(fields, zap.Float64("cost_usd", usd))
		}
	}
	if err != nil {
		fields = append(fields, zap.String("kind", ev.ErrorKind), zap.Error(err))
		l.log.Warn("llm request failed", fields...)
	} else {
		l.log.Info("llm request", fields...)
	}

	if l.events != nil {
		if aerr := l.events.AppendLLMRequest(ctx, ev); aerr != nil {
			l.log.Warn("record llm request", zap.Error(aerr))
		}
	}
	return resp, err
}

func kindName(err error) string {
	for _, k := range []struct {
		err  error
		name string
	}{
		{ErrRateLimited, "rate_limited"},
		{ErrUnavailable, "unavailable"},
		{ErrRejected, "rejected"},
		{ErrInvalidOutput, "invalid_output"},
		{ErrTruncated, "truncated"},
	} {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "other"
}
