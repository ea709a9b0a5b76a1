package exam

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/nmt/internal/assembler"
	"github.com/abhisek/nmt/internal/pool"
	"github.com/abhisek/nmt/internal/question"
	"github.com/abhisek/nmt/internal/scoring"
	"github.com/abhisek/nmt/internal/session"
	"github.com/abhisek/nmt/internal/store"
)

var examNow = time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)

type memSnapshots struct {
	mu    sync.Mutex
	snap  *session.Snapshot
	saves int
	err   error
}

func (m *memSnapshots) Save(_ context.Context, snap session.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.snap = &snap
	return nil
}

func (m *memSnapshots) Load(context.Context) (*session.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap, m.err
}

func (m *memSnapshots) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = nil
	return m.err
}

type memSink struct {
	mu      sync.Mutex
	reports []scoring.Report
	err     error
}

func (m *memSink) Record(_ context.Context, r scoring.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, r)
	return m.err
}

// drain runs cmd and every command it batches, collecting the messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func testPool() pool.Static {
	return pool.Static{
		question.Decode(question.Record{
			ID:       1,
			Question: "2+2?",
			Options:  json.RawMessage(`[{"label":"А","text":"3"},{"label":"Б","text":"4"}]`),
			Answer:   json.RawMessage(`[{"label":"Б","text":"4"}]`),
		}),
		question.Decode(question.Record{
			ID:           2,
			Question:     "x?",
			AnswerFormat: "decimal",
			Answer:       json.RawMessage(`"2,5"`),
		}),
	}
}

type identity struct{}

func (identity) Assemble(pool []question.Question) []question.Question { return pool }

func newController(t *testing.T, snaps SnapshotStore, sink AttemptSink) *Controller {
	t.Helper()
	return New(Options{
		Source:    testPool(),
		Assembler: identity{},
		Snapshots: snaps,
		Sink:      sink,
		Duration:  30 * time.Minute,
		Now:       func() time.Time { return examNow },
	})
}

func TestPrepareSetsDeadline(t *testing.T) {
	c := newController(t, nil, nil)
	st, err := c.Prepare(context.Background(), "Оля", "olia@example.com")
	require.NoError(t, err)

	assert.Equal(t, 2, st.Len())
	assert.Equal(t, examNow.Add(30*time.Minute), st.EndTime)
	assert.Nil(t, c.State(), "Prepare must not attach")
}

func TestPrepareErrors(t *testing.T) {
	missing := pool.NewFileSource(t.TempDir()+"/missing.json", nil)
	c := New(Options{Source: missing, Assembler: identity{}})
	_, err := c.Prepare(context.Background(), "", "")
	assert.ErrorIs(t, err, pool.ErrUnavailable)

	c = New(Options{Source: pool.Static{}, Assembler: identity{}})
	_, err = c.Prepare(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrEmptyTest)
}

func TestMutateSavesSnapshot(t *testing.T) {
	snaps := &memSnapshots{}
	c := newController(t, snaps, nil)

	_, err := c.Mutate(func(*session.State) error { return nil })
	assert.ErrorIs(t, err, ErrNoSession)

	st, err := c.Prepare(context.Background(), "Оля", "olia@example.com")
	require.NoError(t, err)
	drain(c.Attach(st, false))
	assert.Equal(t, 1, snaps.saves)

	cmd, err := c.Mutate(func(s *session.State) error { return s.SetAnswer(0, session.SingleAnswer("Б")) })
	require.NoError(t, err)
	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, SavedMsg{}, msgs[0])
	require.NotNil(t, snaps.snap)
	assert.Equal(t, "Б", snaps.snap.Slots[0].Answer.Label)

	_, err = c.Mutate(func(s *session.State) error { return s.GoTo(9) })
	assert.ErrorIs(t, err, session.ErrOutOfRange)
	assert.Equal(t, 2, snaps.saves, "failed mutation is not saved")
}

func TestSnapshotTakenBeforeCommandRuns(t *testing.T) {
	snaps := &memSnapshots{}
	c := newController(t, snaps, nil)
	st, _ := c.Prepare(context.Background(), "", "")
	c.Attach(st, false)

	cmd, err := c.Mutate(func(s *session.State) error { return s.SetAnswer(1, session.ShortAnswer("2.5")) })
	require.NoError(t, err)
	_ = st.SetAnswer(1, session.ShortAnswer("999"))
	drain(cmd)

	assert.Equal(t, "2.5", snaps.snap.Slots[1].Answer.Text)
}

func TestResume(t *testing.T) {
	snaps := &memSnapshots{}
	c := newController(t, snaps, nil)

	_, err := c.Resumable(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)

	st, _ := c.Prepare(context.Background(), "Оля", "olia@example.com")
	drain(c.Attach(st, false))
	cmd, _ := c.Mutate(func(s *session.State) error {
		if err := s.ToggleFlag(1); err != nil {
			return err
		}
		return s.GoTo(1)
	})
	drain(cmd)

	other := newController(t, snaps, nil)
	resumed, err := other.Resumable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, st.ID, resumed.ID)
	assert.Equal(t, st.EndTime, resumed.EndTime)
	assert.Equal(t, 1, resumed.Current())
	sl, _ := resumed.Slot(1)
	assert.True(t, sl.Flagged)
	assert.Equal(t, question.KindShort, sl.Kind)
}

func TestFinishOnce(t *testing.T) {
	snaps := &memSnapshots{}
	sink := &memSink{}
	c := newController(t, snaps, sink)

	_, _, ok := c.Finish(ReasonManual)
	assert.False(t, ok, "finish without session")

	st, _ := c.Prepare(context.Background(), "Оля", "olia@example.com")
	drain(c.Attach(st, false))
	cmd, _ := c.Mutate(func(s *session.State) error { return s.SetAnswer(1, session.ShortAnswer("2.5")) })
	drain(cmd)

	report, cmd, ok := c.Finish(ReasonManual)
	require.True(t, ok)
	assert.Equal(t, 2, report.Score)
	assert.Equal(t, 6, report.Percent) // 2/32 = 6.25
	assert.Equal(t, st.ID, report.SessionID)
	assert.Len(t, report.Answers, 2)
	assert.Len(t, report.Incorrect, 1)

	msgs := drain(cmd)
	assert.Contains(t, msgs, tea.Msg(RecordedMsg{}))
	assert.Nil(t, snaps.snap, "snapshot cleared on finish")

	// A timeout racing the manual finish is ignored.
	_, cmd, ok = c.Finish(ReasonTimeout)
	assert.False(t, ok)
	assert.Nil(t, cmd)
	drain(cmd)
	assert.Len(t, sink.reports, 1)

	// Nothing is saved after finishing.
	cmd, err := c.Mutate(func(s *session.State) error { return s.SetAnswer(0, session.SingleAnswer("Б")) })
	assert.ErrorIs(t, err, session.ErrFinished)
	assert.Nil(t, cmd)
	assert.Equal(t, report, *c.Report())
}

func TestFinishSwallowsPersistenceErrors(t *testing.T) {
	boom := errors.New("disk full")
	snaps := &memSnapshots{}
	sink := &memSink{err: boom}
	c := newController(t, snaps, sink)

	st, _ := c.Prepare(context.Background(), "", "")
	drain(c.Attach(st, false))
	snaps.err = boom

	_, cmd, ok := c.Finish(ReasonTimeout)
	require.True(t, ok)
	msgs := drain(cmd)
	assert.Contains(t, msgs, tea.Msg(RecordedMsg{Err: boom}))
	assert.Contains(t, msgs, tea.Msg(SavedMsg{Err: boom}))
}

func TestSaveLandingAfterFinishIsDropped(t *testing.T) {
	snaps := &memSnapshots{}
	c := newController(t, snaps, &memSink{})
	st, _ := c.Prepare(context.Background(), "Оля", "olia@example.com")
	drain(c.Attach(st, false))

	late, err := c.Mutate(func(s *session.State) error { return s.SetAnswer(0, session.SingleAnswer("Б")) })
	require.NoError(t, err)

	_, cmd, ok := c.Finish(ReasonTimeout)
	require.True(t, ok)
	drain(cmd)
	require.Nil(t, snaps.snap)

	// The answer's save goroutine was scheduled before the timeout but runs last.
	msgs := drain(late)
	assert.Equal(t, []tea.Msg{SavedMsg{}}, msgs)
	assert.Nil(t, snaps.snap, "finished session must stay cleared")

	_, err = newController(t, snaps, nil).Resumable(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestSnapshotWritesKeepIssueOrder(t *testing.T) {
	snaps := &memSnapshots{}
	c := newController(t, snaps, nil)
	st, _ := c.Prepare(context.Background(), "", "")
	drain(c.Attach(st, false))

	first, _ := c.Mutate(func(s *session.State) error { return s.SetAnswer(1, session.ShortAnswer("1")) })
	second, _ := c.Mutate(func(s *session.State) error { return s.SetAnswer(1, session.ShortAnswer("2,5")) })

	drain(second)
	drain(first)
	require.NotNil(t, snaps.snap)
	assert.Equal(t, "2,5", snaps.snap.Slots[1].Answer.Text)
	assert.Equal(t, 2, snaps.saves, "older save is skipped")
}

func TestStoreBackedPersistence(t *testing.T) {
	s, err := store.Open("file:TestStoreBackedPersistence?mode=memory&cache=shared")
	require.NoError(t, err)
	defer s.Close()

	snaps := NewStoreSnapshots(s.SnapshotRepo())
	c := New(Options{
		Source:    testPool(),
		Assembler: assembler.NewShuffled(assembler.Config{Single: 1, Short: 1}, assembler.NewRand()),
		Snapshots: snaps,
		Sink:      &StoreSink{Attempts: s.AttemptRepo()},
		Events:    s.EventRepo(),
		Now:       func() time.Time { return examNow },
	})

	st, err := c.Prepare(context.Background(), "Оля", "olia@example.com")
	require.NoError(t, err)
	drain(c.Attach(st, false))

	loaded, err := snaps.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, st.ID, loaded.SessionID)
	assert.True(t, loaded.EndTime.Equal(st.EndTime))

	_, cmd, _ := c.Finish(ReasonManual)
	drain(cmd)

	loaded, err = snaps.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, loaded)

	_, attempts, err := s.AttemptRepo().ByStudent(context.Background(), "olia@example.com")
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, st.ID, attempts[0].SessionID)

	events, err := s.EventRepo().SessionEvents(context.Background(), st.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, store.ActionFinish, events[1].Action)
	assert.Equal(t, ReasonManual, events[1].Reason)
}

func TestHTTPSink(t *testing.T) {
	var got scoring.Report
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != AttemptsPath {
			http.NotFound(w, r)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	sink := NewHTTPSink(srv.URL)
	err := sink.Record(context.Background(), scoring.Report{StudentEmail: "a@b.c", Score: 5})
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", got.StudentEmail)
	assert.Equal(t, 5, got.Score)

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "email required", http.StatusBadRequest)
	}))
	defer failing.Close()
	err = NewHTTPSink(failing.URL).Record(context.Background(), scoring.Report{})
	assert.ErrorContains(t, err, "status 400")
}
