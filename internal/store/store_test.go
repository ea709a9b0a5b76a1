package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestOpenDriverRejectsUnknown(t *testing.T) {
	if _, err := OpenDriver("mysql", "x"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveLoadClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Load(ctx, "nmt-test-state")
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when slot is empty")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Slot:      "nmt-test-state",
		Version:   1,
		Timestamp: now,
		Data:      map[string]any{"current": float64(3)},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Load(ctx, "nmt-test-state")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap == nil {
		t.Fatal("expected snapshot after save")
	}
	if snap.Version != 1 || snap.Data["current"] != float64(3) {
		t.Errorf("snapshot = %+v", snap)
	}

	if err := repo.Clear(ctx, "nmt-test-state"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	snap, err = repo.Load(ctx, "nmt-test-state")
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if snap != nil {
		t.Error("expected empty slot after clear")
	}

	if err := repo.Clear(ctx, "nmt-test-state"); err != nil {
		t.Errorf("clearing an empty slot: %v", err)
	}
}

func TestSnapshotSaveReplacesSlot(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Slot:    "nmt-test-state",
			Version: 1,
			Data:    map[string]any{"current": float64(i)},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	_ = repo.Save(ctx, &Snapshot{Slot: "other", Version: 1, Data: map[string]any{}})

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("snapshots = %d, want 2 (one per slot)", count)
	}

	snap, _ := repo.Load(ctx, "nmt-test-state")
	if snap.Data["current"] != float64(3) {
		t.Errorf("current = %v, want 3", snap.Data["current"])
	}
}

func TestToMapFromMap(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Slots []int  `json:"slots"`
	}
	m, err := ToMap(payload{Name: "x", Slots: []int{1, 2}})
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}
	var back payload
	if err := FromMap(m, &back); err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if back.Name != "x" || len(back.Slots) != 2 {
		t.Errorf("round trip = %+v", back)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}

	// Re-initializing keeps the counter position.
	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}
	if seq, _ := sc.Next(ctx); seq != 6 {
		t.Errorf("seq after reinit = %d, want 6", seq)
	}
}

func TestSessionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "s1", Action: ActionStart, StudentEmail: "a@b.c", Questions: 22},
		{SessionID: "s2", Action: ActionStart, Questions: 22},
		{SessionID: "s1", Action: ActionFinish, Reason: "timeout", Questions: 22, Answered: 20, Score: 25, DurationSecs: 3600},
	}
	for _, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.SessionEvents(ctx, "s1")
	if err != nil {
		t.Fatalf("SessionEvents: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("events = %d, want 2", len(got))
	}
	if got[0].Action != ActionStart || got[1].Action != ActionFinish {
		t.Errorf("actions = %s, %s", got[0].Action, got[1].Action)
	}
	if got[0].Sequence >= got[1].Sequence {
		t.Errorf("sequences not increasing: %d, %d", got[0].Sequence, got[1].Sequence)
	}
	if got[1].Reason != "timeout" || got[1].Score != 25 {
		t.Errorf("finish event = %+v", got[1])
	}
}

func TestLLMUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "bank-draft", InputTokens: 100, OutputTokens: 50, Cost: 0.01, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "bank-draft", InputTokens: 80, ErrorKind: "invalid_output", ErrorMessage: "bad"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "bank-draft", InputTokens: 10, OutputTokens: 5, Cost: 0.002, Success: true},
	}
	for _, c := range calls {
		if err := repo.AppendLLMRequest(ctx, c); err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	usage, err := repo.LLMUsage(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("LLMUsage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("groups = %d, want 2", len(usage))
	}
	g := usage[0]
	if g.Provider != "gemini" || g.Requests != 2 || g.Failures != 1 || g.InputTokens != 180 || g.OutputTokens != 50 {
		t.Errorf("gemini group = %+v", g)
	}
	if usage[1].Provider != "openai" {
		t.Errorf("second group = %+v, want openai", usage[1])
	}

	later, err := repo.LLMUsage(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("LLMUsage: %v", err)
	}
	if len(later) != 0 {
		t.Errorf("future window = %+v, want empty", later)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"snapshots", "attempts", "students", "classes", "question_submissions", "session_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
