// Package drafting asks an LLM for candidate question-bank records and files
// them as pending submissions for a teacher to review.
package drafting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/nmt/internal/llm"
	"github.com/abhisek/nmt/internal/question"
	"github.com/abhisek/nmt/internal/store"
)

// Purpose labels drafting requests in the LLM event log.
const Purpose = "bank-draft"

// SourceLLM marks submissions created by Draft.
const SourceLLM = "llm"

// Input describes the question to draft.
type Input struct {
	Topic  string
	Kind   question.Kind
	Author string
	Notes  string

	// Prior holds question texts already in the bank for the topic.
	Prior []string
}

// Config controls a Drafter.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxPrior caps how many prior questions go into the prompt.
	MaxPrior int

	// MaxAttempts is how many drafts to request before giving up on
	// retryable validation failures.
	MaxAttempts int

	// IDBase is the smallest id handed to a drafted record, keeping
	// bank ids clear of the file pool.
	IDBase int
}

// DefaultConfig returns the standard drafting settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
		MaxPrior:    10,
		MaxAttempts: 2,
		IDBase:      100000,
	}
}

// Drafter produces pending question-bank submissions.
type Drafter struct {
	provider llm.Provider
	subs     store.SubmissionRepo
	cfg      Config
	log      *zap.Logger
}

// New creates a Drafter. A nil logger discards log output.
func New(provider llm.Provider, subs store.SubmissionRepo, cfg Config, log *zap.Logger) *Drafter {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Drafter{provider: provider, subs: subs, cfg: cfg, log: log}
}

// draftOutput is the raw model response.
type draftOutput struct {
	Question   string       `json:"question"`
	Latex      string       `json:"latex"`
	Options    []labelText  `json:"options"`
	Statements []labelText  `json:"statements"`
	Endings    []labelText  `json:"endings"`
	Answer     string       `json:"answer"`
	Pairs      []pairOutput `json:"pairs"`
}

type labelText struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

type pairOutput struct {
	Statement string `json:"statement"`
	Label     string `json:"label"`
}

// Draft requests a record, validates it and stores it as a pending
// submission.
func (d *Drafter) Draft(ctx context.Context, in Input) (*store.Submission, error) {
	if in.Topic == "" {
		return nil, errors.New("topic is required")
	}
	if !in.Kind.Valid() {
		return nil, fmt.Errorf("unknown question kind %q", in.Kind)
	}

	id, err := d.nextID(ctx)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	for attempt := 1; ; attempt++ {
		raw, err = d.generate(ctx, in, id)
		if err == nil {
			break
		}
		var verr *ValidationError
		if !errors.As(err, &verr) || !verr.Retryable || attempt >= d.cfg.MaxAttempts {
			return nil, err
		}
		d.log.Warn("draft rejected, retrying",
			zap.String("topic", in.Topic),
			zap.String("kind", string(in.Kind)),
			zap.Int("attempt", attempt),
			zap.Error(err))
	}

	sub, err := d.subs.Submit(ctx, store.Submission{
		Topic:  in.Topic,
		Kind:   string(in.Kind),
		Record: raw,
		Source: SourceLLM,
		Author: in.Author,
	})
	if err != nil {
		return nil, err
	}
	d.log.Info("draft submitted",
		zap.Int("submission", sub.ID),
		zap.Int("record_id", id),
		zap.String("topic", in.Topic),
		zap.String("kind", string(in.Kind)))
	return sub, nil
}

func (d *Drafter) generate(ctx context.Context, in Input, id int) (json.RawMessage, error) {
	req := llm.Request{
		Purpose:     Purpose,
		System:      systemPrompt,
		Prompt:      buildUserMessage(in, d.cfg.MaxPrior),
		Schema:      DraftSchema,
		MaxTokens:   d.cfg.MaxTokens,
		Temperature: d.cfg.Temperature,
	}
	resp, err := d.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM drafting failed: %w", err)
	}

	var out draftOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	raw, err := json.Marshal(toRecord(out, in, id))
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	if err := question.ValidateRecord(raw); err != nil {
		return nil, &ValidationError{Check: "schema", Message: err.Error(), Retryable: true}
	}
	var rec question.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	if verr := checkDraft(question.Decode(rec), in.Kind); verr != nil {
		return nil, verr
	}
	return raw, nil
}

// toRecord lays the draft out in the pool-record shape for its kind.
func toRecord(out draftOutput, in Input, id int) question.Record {
	rec := question.Record{
		ID:       id,
		Topic:    in.Topic,
		Question: out.Question,
		Latex:    out.Latex,
	}
	switch in.Kind {
	case question.KindSingle:
		rec.Options = mustJSON(out.Options)
		answer := labelText{Label: out.Answer}
		for _, o := range out.Options {
			if o.Label == out.Answer {
				answer.Text = o.Text
			}
		}
		rec.Answer = mustJSON([]labelText{answer})
	case question.KindMatching:
		rec.Statements = mustJSON(out.Statements)
		rec.Endings = mustJSON(out.Endings)
		rec.Answer = mustJSON(out.Pairs)
	case question.KindShort:
		rec.AnswerFormat = "decimal"
		rec.Answer = mustJSON(out.Answer)
	}
	return rec
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

// nextID returns one past the largest record id in the bank, and at least
// IDBase.
func (d *Drafter) nextID(ctx context.Context) (int, error) {
	subs, err := d.subs.List(ctx, "")
	if err != nil {
		return 0, err
	}
	next := d.cfg.IDBase
	for _, s := range subs {
		var head struct {
			ID int `json:"id"`
		}
		if json.Unmarshal(s.Record, &head) == nil && head.ID >= next {
			next = head.ID + 1
		}
	}
	return next, nil
}
