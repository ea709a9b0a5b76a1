// Package exam owns the lifecycle of one exam attempt: assembling a fresh
// session or resuming a saved one, persisting it after every change and
// scoring it exactly once when it ends.
//
// Controller methods that touch the session run on the UI event loop. The
// persistence they trigger is returned as tea.Cmds working on copies, so
// background goroutines never see the live session.
package exam

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/nmt/internal/assembler"
	"github.com/abhisek/nmt/internal/pool"
	"github.com/abhisek/nmt/internal/scoring"
	"github.com/abhisek/nmt/internal/session"
	"github.com/abhisek/nmt/internal/store"
)

// Finish reasons.
const (
	ReasonManual  = "manual"
	ReasonTimeout = "timeout"
	ReasonError   = "error"
)

// persistTimeout bounds every background persistence call.
const persistTimeout = 10 * time.Second

var (
	// ErrNoSnapshot is returned by Resume when there is nothing to resume.
	ErrNoSnapshot = errors.New("no saved session")

	// ErrEmptyTest is returned when the pool yields no questions at all.
	ErrEmptyTest = errors.New("assembled test has no questions")

	// ErrNoSession is returned by Mutate before a session is attached.
	ErrNoSession = errors.New("no active session")
)

// Options configures a Controller. Snapshots, Sink and Events are optional.
type Options struct {
	Source    pool.Source
	Assembler assembler.Assembler
	Snapshots SnapshotStore
	Sink      AttemptSink
	Events    store.EventRepo
	Logger    *zap.Logger

	Duration time.Duration
	MaxScore int
	Now      func() time.Time
}

// Controller drives one exam attempt at a time.
type Controller struct {
	opts  Options
	log   *zap.Logger
	snaps *snapshotWriter // nil without Options.Snapshots

	state     *session.State
	startedAt time.Time
	report    *scoring.Report
}

// New creates a Controller, filling in defaults for unset options.
func New(opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Duration <= 0 {
		opts.Duration = 60 * time.Minute
	}
	if opts.MaxScore <= 0 {
		opts.MaxScore = scoring.MaxScore
	}
	c := &Controller{opts: opts, log: opts.Logger}
	if opts.Snapshots != nil {
		c.snaps = &snapshotWriter{store: opts.Snapshots}
	}
	return c
}

// State returns the attached session, or nil.
func (c *Controller) State() *session.State { return c.state }

// Report returns the final report once the session has been finished.
func (c *Controller) Report() *scoring.Report { return c.report }

// Prepare fetches the pool and assembles a fresh session for the student.
// It does not attach the session and is safe to call from a tea.Cmd.
func (c *Controller) Prepare(ctx context.Context, name, email string) (*session.State, error) {
	qs, err := c.opts.Source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	test := c.opts.Assembler.Assemble(qs)
	if len(test) == 0 {
		return nil, ErrEmptyTest
	}
	c.log.Info("assembled test",
		zap.Int("pool", len(qs)),
		zap.Int("questions", len(test)),
	)
	return session.New(test, name, email, c.opts.Now().Add(c.opts.Duration))
}

// Resumable loads the saved session, if any. It returns ErrNoSnapshot when
// the slot is empty and session.ErrNotResumable for finished snapshots.
// Safe to call from a tea.Cmd.
func (c *Controller) Resumable(ctx context.Context) (*session.State, error) {
	if c.opts.Snapshots == nil {
		return nil, ErrNoSnapshot
	}
	snap, err := c.opts.Snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	return session.Restore(*snap)
}

// Attach makes st the active session and persists it.
func (c *Controller) Attach(st *session.State, resumed bool) tea.Cmd {
	c.state = st
	c.report = nil
	c.startedAt = c.opts.Now()

	action := store.ActionStart
	if resumed {
		action = store.ActionResume
	}
	c.log.Info("session attached",
		zap.String("session_id", st.ID),
		zap.String("action", action),
		zap.Time("end_time", st.EndTime),
	)
	return tea.Batch(
		c.save(),
		c.event(store.SessionEventData{
			SessionID:    st.ID,
			Action:       action,
			StudentEmail: st.StudentEmail,
			Questions:    st.Len(),
			Answered:     st.AnsweredCount(),
		}),
	)
}

// Mutate applies fn to the active session and persists the result. Errors
// from fn are returned unchanged; nothing is saved in that case.
func (c *Controller) Mutate(fn func(*session.State) error) (tea.Cmd, error) {
	if c.state == nil {
		return nil, ErrNoSession
	}
	if err := fn(c.state); err != nil {
		return nil, err
	}
	return c.save(), nil
}

// Finish ends the session exactly once. The first call scores the session,
// clears the snapshot and hands the report to the attempt sink; later calls
// return ok=false and no command.
func (c *Controller) Finish(reason string) (report scoring.Report, cmd tea.Cmd, ok bool) {
	if c.state == nil || !c.state.Finish() {
		return scoring.Report{}, nil, false
	}
	st := c.state
	slots := st.Slots()

	result, err := scoring.SafeEvaluate(slots, c.opts.MaxScore)
	if err != nil {
		c.log.Error("scoring failed", zap.String("session_id", st.ID), zap.Error(err))
		reason = ReasonError
	}

	report = c.buildReport(st, slots, result)
	c.report = &report

	c.log.Info("session finished",
		zap.String("session_id", st.ID),
		zap.String("reason", reason),
		zap.Int("score", report.Score),
		zap.Int("percent", report.Percent),
	)

	return report, tea.Batch(
		c.clear(),
		c.record(report),
		c.event(store.SessionEventData{
			SessionID:    st.ID,
			Action:       store.ActionFinish,
			StudentEmail: st.StudentEmail,
			Reason:       reason,
			Questions:    st.Len(),
			Answered:     st.AnsweredCount(),
			Score:        report.Score,
			DurationSecs: int(c.opts.Now().Sub(c.startedAt).Seconds()),
		}),
	), true
}

// buildReport assembles the sink payload. Panics while building the
// per-question detail leave the answers empty but keep the score.
func (c *Controller) buildReport(st *session.State, slots []session.Slot, result scoring.Result) (report scoring.Report) {
	defer func() {
		if p := recover(); p != nil {
			c.log.Error("building report failed", zap.String("session_id", st.ID), zap.Any("panic", p))
			report = scoring.BuildReport(st.StudentName, st.StudentEmail, nil, result)
			report.SessionID = st.ID
		}
	}()
	report = scoring.BuildReport(st.StudentName, st.StudentEmail, slots, result)
	report.SessionID = st.ID
	return report
}
