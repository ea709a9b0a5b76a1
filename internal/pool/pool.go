// Package pool fetches the question pool from its configured sources.
package pool

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/nmt/internal/question"
)

// ErrUnavailable is matched by every error a Source returns when the pool
// cannot be fetched at all.
var ErrUnavailable = errors.New("question pool unavailable")

// UnavailableError reports which source failed and why.
type UnavailableError struct {
	Source string
	Err    error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("question pool unavailable (%s): %v", e.Source, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrUnavailable) hold for every UnavailableError.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

func unavailable(source string, err error) error {
	return &UnavailableError{Source: source, Err: err}
}

// Source yields decoded questions. Records that fail validation are
// skipped; only a source that cannot be read at all returns an error.
type Source interface {
	Fetch(ctx context.Context) ([]question.Question, error)
}

// decode parses a JSON array of records, logging the rejected ones.
func decode(source string, data []byte, logger *zap.Logger) ([]question.Question, error) {
	records, rejected, err := question.ParseRecords(data)
	if err != nil {
		return nil, unavailable(source, err)
	}
	if logger != nil {
		for _, r := range rejected {
			logger.Warn("skipping pool record",
				zap.String("source", source),
				zap.Int("index", r.Index),
				zap.Int("id", r.ID),
				zap.Error(r.Err),
			)
		}
	}
	return question.DecodeAll(records), nil
}

type merged struct {
	sources []Source
}

// Merge combines sources into one. Questions are unioned by ID with the
// earlier source winning. Any failing source fails the merged fetch.
func Merge(sources ...Source) Source {
	return &merged{sources: sources}
}

func (m *merged) Fetch(ctx context.Context) ([]question.Question, error) {
	var out []question.Question
	seen := make(map[int]bool)
	for _, src := range m.sources {
		qs, err := src.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		for _, q := range qs {
			if seen[q.ID] {
				continue
			}
			seen[q.ID] = true
			out = append(out, q)
		}
	}
	return out, nil
}

// Static is a fixed in-memory pool.
type Static []question.Question

func (s Static) Fetch(context.Context) ([]question.Question, error) {
	return append([]question.Question(nil), s...), nil
}
