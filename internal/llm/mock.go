package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// Reply is one scripted answer. Err, when set, is returned instead.
type Reply struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// Scripted is a Provider that plays back replies in order and records the
// requests it saw. Once the script runs out it fails with ErrUnavailable.
type Scripted struct {
	mu       sync.Mutex
	replies  []Reply
	Requests []Request
}

func NewScripted(replies ...Reply) *Scripted {
	return &Scripted{replies: replies}
}

func (s *Scripted) Name() string  { return "scripted" }
func (s *Scripted) Model() string { return "scripted" }

func (s *Scripted) Generate(_ context.Context, req Request) (*Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Requests = append(s.Requests, req)
	if len(s.replies) == 0 {
		return nil, &Error{Provider: s.Name(), Kind: ErrUnavailable}
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	if r.Err != nil {
		return nil, r.Err
	}
	return &Response{Content: r.Content, Usage: r.Usage, Model: s.Model()}, nil
}

// Calls reports how many requests were made.
func (s *Scripted) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Requests)
}
