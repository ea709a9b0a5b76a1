package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/nmt/internal/question"
)

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion = 1

var (
	// ErrNotResumable is returned when restoring a finished or empty snapshot.
	ErrNotResumable = errors.New("session is not resumable")

	// ErrSnapshotVersion is returned for snapshots written by a newer format.
	ErrSnapshotVersion = errors.New("unsupported snapshot version")
)

// Snapshot is the persisted form of a State.
type Snapshot struct {
	Version      int            `json:"version"`
	SessionID    string         `json:"session_id"`
	StudentName  string         `json:"student_name"`
	StudentEmail string         `json:"student_email"`
	Slots        []SlotSnapshot `json:"slots"`
	Current      int            `json:"current"`
	EndTime      time.Time      `json:"end_time"`
	Finished     bool           `json:"finished"`
}

// SlotSnapshot is the persisted form of a Slot. The question is stored as
// its raw pool record together with the kind it was assembled as.
type SlotSnapshot struct {
	ID      int             `json:"id"`
	Kind    question.Kind   `json:"kind"`
	Record  question.Record `json:"record"`
	Answer  *Answer         `json:"answer,omitempty"`
	Flagged bool            `json:"flagged,omitempty"`
	Visited bool            `json:"visited,omitempty"`
}

// Snapshot captures the full session.
func (s *State) Snapshot() Snapshot {
	slots := make([]SlotSnapshot, len(s.slots))
	for i, sl := range s.slots {
		slots[i] = SlotSnapshot{
			ID:      sl.ID,
			Kind:    sl.Kind,
			Record:  sl.Question.Record,
			Answer:  sl.Answer.clone(),
			Flagged: sl.Flagged,
			Visited: sl.Visited,
		}
	}
	return Snapshot{
		Version:      SnapshotVersion,
		SessionID:    s.ID,
		StudentName:  s.StudentName,
		StudentEmail: s.StudentEmail,
		Slots:        slots,
		Current:      s.current,
		EndTime:      s.EndTime,
		Finished:     s.finished,
	}
}

// Restore rebuilds a State from a snapshot. Finished or empty snapshots are
// rejected with ErrNotResumable. Answers whose kind no longer fits their
// slot are dropped.
func Restore(snap Snapshot) (*State, error) {
	if snap.Version > SnapshotVersion {
		return nil, fmt.Errorf("version %d: %w", snap.Version, ErrSnapshotVersion)
	}
	if snap.Finished || len(snap.Slots) == 0 {
		return nil, ErrNotResumable
	}

	slots := make([]Slot, len(snap.Slots))
	for i, ss := range snap.Slots {
		q := question.DecodeAs(ss.Record, ss.Kind)
		ans := ss.Answer.clone()
		if ans != nil && ans.Kind != q.Kind {
			ans = nil
		}
		slots[i] = Slot{
			ID:       ss.ID,
			Question: q,
			Kind:     q.Kind,
			Answer:   ans,
			Flagged:  ss.Flagged,
			Visited:  ss.Visited,
		}
	}

	current := snap.Current
	if current < 0 || current >= len(slots) {
		current = 0
	}
	return &State{
		ID:           snap.SessionID,
		StudentName:  snap.StudentName,
		StudentEmail: snap.StudentEmail,
		EndTime:      snap.EndTime,
		slots:        slots,
		current:      current,
	}, nil
}
