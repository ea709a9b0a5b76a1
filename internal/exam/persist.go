package exam

import (
	"context"
	"sync"
	"sync/atomic"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/nmt/internal/scoring"
	"github.com/abhisek/nmt/internal/store"
)

// SavedMsg reports the outcome of a background snapshot save.
type SavedMsg struct {
	Err error
}

// RecordedMsg reports the outcome of handing the report to the sink.
type RecordedMsg struct {
	Err error
}

// snapshotWriter applies snapshot writes in the order they were issued.
// Each write takes a ticket on the UI loop; a write whose ticket is older
// than the last one applied is dropped, so a save that lands after the
// clear that finished the session cannot bring the session back.
type snapshotWriter struct {
	store  SnapshotStore
	issued atomic.Uint64

	mu      sync.Mutex
	applied uint64
}

func (w *snapshotWriter) ticket() uint64 { return w.issued.Add(1) }

// apply runs write unless a later write already ran. skipped reports a
// dropped write.
func (w *snapshotWriter) apply(ticket uint64, write func(SnapshotStore) error) (skipped bool, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if ticket <= w.applied {
		return true, nil
	}
	w.applied = ticket
	return false, write(w.store)
}

// save captures a snapshot now and writes it in the background. Finished
// sessions are never saved.
func (c *Controller) save() tea.Cmd {
	if c.snaps == nil || c.state == nil || c.state.Finished() {
		return nil
	}
	snap := c.state.Snapshot()
	w, log := c.snaps, c.log
	t := w.ticket()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		skipped, err := w.apply(t, func(s SnapshotStore) error { return s.Save(ctx, snap) })
		if skipped {
			log.Debug("stale snapshot dropped", zap.String("session_id", snap.SessionID))
		}
		if err != nil {
			log.Warn("save snapshot", zap.String("session_id", snap.SessionID), zap.Error(err))
		}
		return SavedMsg{Err: err}
	}
}

func (c *Controller) clear() tea.Cmd {
	if c.snaps == nil {
		return nil
	}
	w, log := c.snaps, c.log
	t := w.ticket()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		_, err := w.apply(t, func(s SnapshotStore) error { return s.Clear(ctx) })
		if err != nil {
			log.Warn("clear snapshot", zap.Error(err))
		}
		return SavedMsg{Err: err}
	}
}

func (c *Controller) record(report scoring.Report) tea.Cmd {
	if c.opts.Sink == nil {
		return nil
	}
	sink, log := c.opts.Sink, c.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		err := sink.Record(ctx, report)
		if err != nil {
			log.Warn("record attempt",
				zap.String("session_id", report.SessionID),
				zap.String("email", report.StudentEmail),
				zap.Error(err),
			)
		}
		return RecordedMsg{Err: err}
	}
}

func (c *Controller) event(data store.SessionEventData) tea.Cmd {
	if c.opts.Events == nil {
		return nil
	}
	events, log := c.opts.Events, c.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := events.AppendSessionEvent(ctx, data); err != nil {
			log.Warn("append session event", zap.String("action", data.Action), zap.Error(err))
		}
		return nil
	}
}
