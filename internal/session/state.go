// Package session holds the state of one in-progress exam attempt.
//
// A State is owned by a single goroutine (the UI event loop). Once Finish
// has been called every mutating operation is rejected with ErrFinished.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/nmt/internal/question"
)

var (
	// ErrFinished is returned by mutations after the session was finished.
	ErrFinished = errors.New("session is finished")

	// ErrKindMismatch is returned when an answer does not fit the slot type.
	ErrKindMismatch = errors.New("answer kind does not match question kind")

	// ErrOutOfRange is returned for slot indexes outside the session.
	ErrOutOfRange = errors.New("slot index out of range")

	// ErrEmpty is returned when a session is created without questions.
	ErrEmpty = errors.New("session has no questions")
)

// Slot is one question of the session with the student's answer state.
type Slot struct {
	ID       int
	Question question.Question
	// Kind is frozen when the session is assembled.
	Kind    question.Kind
	Answer  *Answer
	Flagged bool
	Visited bool
}

// Answered reports whether the slot holds a non-empty answer.
func (s Slot) Answered() bool {
	return !s.Answer.Empty()
}

// State is an in-progress exam attempt.
type State struct {
	ID           string
	StudentName  string
	StudentEmail string
	// EndTime is the absolute deadline. It is set once when the session is
	// created and carried over unchanged on resume.
	EndTime time.Time

	slots    []Slot
	current  int
	finished bool
}

// New wraps assembled questions into a fresh session.
func New(questions []question.Question, name, email string, endTime time.Time) (*State, error) {
	if len(questions) == 0 {
		return nil, ErrEmpty
	}
	slots := make([]Slot, len(questions))
	for i, q := range questions {
		slots[i] = Slot{ID: q.ID, Question: q, Kind: q.Kind}
	}
	return &State{
		ID:           uuid.NewString(),
		StudentName:  name,
		StudentEmail: email,
		EndTime:      endTime,
		slots:        slots,
	}, nil
}

// Len returns the number of slots.
func (s *State) Len() int { return len(s.slots) }

// Current returns the index of the displayed slot.
func (s *State) Current() int { return s.current }

// Finished reports whether the session has been finished.
func (s *State) Finished() bool { return s.finished }

// Slot returns a copy of slot i.
func (s *State) Slot(i int) (Slot, error) {
	if i < 0 || i >= len(s.slots) {
		return Slot{}, fmt.Errorf("slot %d: %w", i, ErrOutOfRange)
	}
	sl := s.slots[i]
	sl.Answer = sl.Answer.clone()
	return sl, nil
}

// Slots returns a copy of all slots in order.
func (s *State) Slots() []Slot {
	out := make([]Slot, len(s.slots))
	for i, sl := range s.slots {
		sl.Answer = sl.Answer.clone()
		out[i] = sl
	}
	return out
}

// AnsweredCount returns the number of slots with a non-empty answer.
func (s *State) AnsweredCount() int {
	n := 0
	for _, sl := range s.slots {
		if sl.Answered() {
			n++
		}
	}
	return n
}

// FlaggedCount returns the number of flagged slots.
func (s *State) FlaggedCount() int {
	n := 0
	for _, sl := range s.slots {
		if sl.Flagged {
			n++
		}
	}
	return n
}

func (s *State) check(i int) error {
	if s.finished {
		return ErrFinished
	}
	if i < 0 || i >= len(s.slots) {
		return fmt.Errorf("slot %d: %w", i, ErrOutOfRange)
	}
	return nil
}

// GoTo moves to slot i and marks it visited.
func (s *State) GoTo(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.current = i
	s.slots[i].Visited = true
	return nil
}

// SetAnswer replaces the answer of slot i. Short answers are trimmed.
func (s *State) SetAnswer(i int, a Answer) error {
	if err := s.check(i); err != nil {
		return err
	}
	if a.Kind != s.slots[i].Kind {
		return fmt.Errorf("slot %d is %s, got %s: %w", i, s.slots[i].Kind, a.Kind, ErrKindMismatch)
	}
	n := a.normalized()
	s.slots[i].Answer = &n
	return nil
}

// SetPair sets one stem → ending pair of a matching slot, creating the
// mapping on first write. An empty label removes the pair.
func (s *State) SetPair(i int, key, label string) error {
	if err := s.check(i); err != nil {
		return err
	}
	sl := &s.slots[i]
	if sl.Kind != question.KindMatching {
		return fmt.Errorf("slot %d is %s: %w", i, sl.Kind, ErrKindMismatch)
	}
	if sl.Answer == nil {
		sl.Answer = &Answer{Kind: question.KindMatching, Pairs: map[string]string{}}
	}
	if label == "" {
		delete(sl.Answer.Pairs, key)
		return nil
	}
	sl.Answer.Pairs[key] = label
	return nil
}

// ToggleFlag flips the bookmark on slot i.
func (s *State) ToggleFlag(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.slots[i].Flagged = !s.slots[i].Flagged
	return nil
}

// Finish latches the session as finished. It returns true only for the
// call that performed the transition; every later call returns false.
func (s *State) Finish() bool {
	if s.finished {
		return false
	}
	s.finished = true
	return true
}
