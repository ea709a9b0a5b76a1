package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidJoinCode is returned for unknown or expired join codes.
	ErrInvalidJoinCode = errors.New("invalid or expired join code")

	// ErrEmailRequired is returned when a student email is blank.
	ErrEmailRequired = errors.New("student email is required")
)

// Snapshot is the persisted state of one in-flight session slot.
type Snapshot struct {
	ID        int
	Slot      string
	Version   int
	Timestamp time.Time
	Data      map[string]any
}

// SnapshotRepo stores session snapshots keyed by slot name.
type SnapshotRepo interface {
	// Save writes the snapshot, replacing any earlier one in the same slot.
	Save(ctx context.Context, snap *Snapshot) error

	// Load returns the snapshot in slot, or nil if the slot is empty.
	Load(ctx context.Context, slot string) (*Snapshot, error)

	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context, slot string) error
}

// Session lifecycle actions.
const (
	ActionStart  = "start"
	ActionResume = "resume"
	ActionFinish = "finish"
)

// SessionEventData captures one session lifecycle event.
type SessionEventData struct {
	SessionID    string
	Action       string
	StudentEmail string
	Reason       string
	Questions    int
	Answered     int
	Score        int
	DurationSecs int
}

// SessionEvent is a stored session lifecycle event.
type SessionEvent struct {
	SessionEventData
	Sequence  int64
	Timestamp time.Time
}

// LLMRequestEventData is one model call attempt.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	Cost         float64
	LatencyMs    int64
	Success      bool
	ErrorKind    string
	ErrorMessage string
}

// LLMUsage totals the calls for one provider, model and purpose.
type LLMUsage struct {
	Provider     string
	Model        string
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	Cost         float64
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// SessionEvents returns the events of a session in sequence order.
	SessionEvents(ctx context.Context, sessionID string) ([]SessionEvent, error)

	// LLMUsage sums model calls made at or after since, most expensive
	// first.
	LLMUsage(ctx context.Context, since time.Time) ([]LLMUsage, error)
}

// AttemptData is a finished exam to be recorded.
type AttemptData struct {
	SessionID string
	Email     string
	Name      string
	Score     int
	Percent   int
	Answers   json.RawMessage
	Incorrect json.RawMessage
}

// Attempt is a recorded exam result.
type Attempt struct {
	ID           int
	StudentID    int
	SessionID    string
	StudentEmail string
	StudentName  string
	Score        int
	Percent      int
	Answers      json.RawMessage
	Incorrect    json.RawMessage
	CreatedAt    time.Time
}

// ResultFilter narrows class results. Zero values disable a filter.
type ResultFilter struct {
	From     time.Time // first day included
	To       time.Time // last day included
	MinScore *int
	MaxScore *int
	Search   string // substring of student name or email
}

// AttemptRepo records and queries exam attempts.
type AttemptRepo interface {
	// Record stores an attempt, creating the student on first sight and
	// refreshing the stored name otherwise.
	Record(ctx context.Context, data AttemptData) (*Attempt, error)

	// ByStudent returns a student and their attempts, newest first.
	ByStudent(ctx context.Context, email string) (*Student, []Attempt, error)

	// ClassResults returns the attempts of a class's students, newest first.
	ClassResults(ctx context.Context, classID int, f ResultFilter) ([]Attempt, error)

	// Recent returns the latest attempts across all students.
	Recent(ctx context.Context, limit int) ([]Attempt, error)
}

// Class is a student group with its current join code.
type Class struct {
	ID            int
	Name          string
	JoinCode      string
	CodeExpiresAt *time.Time
	CreatedAt     time.Time
	Students      int
}

// Student is a roster entry. ClassID is zero when unassigned.
type Student struct {
	ID        int
	Email     string
	Name      string
	ClassID   int
	CreatedAt time.Time
}

// RosterRepo manages classes, students and join codes.
type RosterRepo interface {
	CreateClass(ctx context.Context, name string, now time.Time) (*Class, error)
	Classes(ctx context.Context) ([]Class, error)
	Class(ctx context.Context, id int) (*Class, error)

	// EnsureJoinCode returns the class with a valid join code, issuing a
	// new one when the current code is missing or expired.
	EnsureJoinCode(ctx context.Context, classID int, now time.Time) (*Class, error)

	// RegenerateJoinCode always issues a fresh join code.
	RegenerateJoinCode(ctx context.Context, classID int, now time.Time) (*Class, error)

	// Join moves the student with email into the class owning code,
	// creating the student when needed.
	Join(ctx context.Context, code, email, name string, now time.Time) (*Class, error)

	AddStudent(ctx context.Context, classID int, email, name string) (*Student, error)
	RemoveStudent(ctx context.Context, classID, studentID int) error
	Students(ctx context.Context, classID int) ([]Student, error)
}

// Submission review states.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Submission is a candidate question-bank record.
type Submission struct {
	ID         int
	Status     string
	Topic      string
	Kind       string
	Record     json.RawMessage
	Source     string
	Author     string
	ReviewNote string
	CreatedAt  time.Time
	ReviewedAt *time.Time
}

// SubmissionRepo manages question-bank submissions.
type SubmissionRepo interface {
	Submit(ctx context.Context, s Submission) (*Submission, error)
	Get(ctx context.Context, id int) (*Submission, error)

	// List returns submissions with the given status, or all when empty.
	List(ctx context.Context, status string) ([]Submission, error)

	Review(ctx context.Context, id int, approve bool, note string, now time.Time) (*Submission, error)

	// Approved returns the records of all approved submissions, oldest first.
	Approved(ctx context.Context) ([]json.RawMessage, error)
}
