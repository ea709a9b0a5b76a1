package session

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := newState(t)
	_ = s.GoTo(1)
	_ = s.SetAnswer(0, SingleAnswer("A"))
	_ = s.SetPair(1, "2", "Б")
	_ = s.SetAnswer(2, ShortAnswer("3,5"))
	_ = s.ToggleFlag(2)

	snap := s.Snapshot()
	if snap.Version != SnapshotVersion {
		t.Errorf("Version = %d, want %d", snap.Version, SnapshotVersion)
	}

	restored, err := Restore(snap)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored.ID != s.ID || restored.StudentName != s.StudentName || restored.StudentEmail != s.StudentEmail {
		t.Errorf("identity not restored: %+v", restored)
	}
	if !restored.EndTime.Equal(s.EndTime) {
		t.Errorf("EndTime = %v, want %v", restored.EndTime, s.EndTime)
	}
	if restored.Current() != 1 {
		t.Errorf("Current() = %d, want 1", restored.Current())
	}
	if !reflect.DeepEqual(restored.Slots(), s.Slots()) {
		t.Errorf("slots differ after restore\n got %+v\nwant %+v", restored.Slots(), s.Slots())
	}
}

func TestSnapshotSurvivesJSON(t *testing.T) {
	s := newState(t)
	_ = s.SetPair(1, "1", "В")
	_ = s.SetAnswer(2, ShortAnswer("12,5"))

	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored, err := Restore(snap)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	for i, want := range s.Slots() {
		got, _ := restored.Slot(i)
		if got.ID != want.ID || got.Kind != want.Kind {
			t.Errorf("slot %d = %d/%s, want %d/%s", i, got.ID, got.Kind, want.ID, want.Kind)
		}
		if !reflect.DeepEqual(got.Answer, want.Answer) {
			t.Errorf("slot %d answer = %+v, want %+v", i, got.Answer, want.Answer)
		}
	}
	sl, _ := restored.Slot(1)
	if len(sl.Question.Matching.Pairs) != 3 {
		t.Errorf("matching key lost on restore: %+v", sl.Question.Matching)
	}
}

func TestRestoreRejects(t *testing.T) {
	s := newState(t)

	finished := s.Snapshot()
	finished.Finished = true
	if _, err := Restore(finished); !errors.Is(err, ErrNotResumable) {
		t.Errorf("finished snapshot err = %v, want ErrNotResumable", err)
	}

	empty := s.Snapshot()
	empty.Slots = nil
	if _, err := Restore(empty); !errors.Is(err, ErrNotResumable) {
		t.Errorf("empty snapshot err = %v, want ErrNotResumable", err)
	}

	future := s.Snapshot()
	future.Version = SnapshotVersion + 1
	if _, err := Restore(future); !errors.Is(err, ErrSnapshotVersion) {
		t.Errorf("future snapshot err = %v, want ErrSnapshotVersion", err)
	}
}

func TestRestoreKeepsFrozenKind(t *testing.T) {
	s := newState(t)
	snap := s.Snapshot()
	// The pool record changed shape after assembly; the slot keeps its kind.
	snap.Slots[0].Record.AnswerFormat = "decimal"
	snap.Slots[0].Answer = &Answer{Kind: "single", Label: "B"}

	restored, err := Restore(snap)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	sl, _ := restored.Slot(0)
	if sl.Kind != "single" || sl.Question.Single == nil {
		t.Errorf("slot 0 kind = %q, want single", sl.Kind)
	}
	if sl.Answer == nil || sl.Answer.Label != "B" {
		t.Errorf("answer = %+v, want B", sl.Answer)
	}
}

func TestRestoreDropsMismatchedAnswer(t *testing.T) {
	snap := newState(t).Snapshot()
	snap.Slots[2].Answer = &Answer{Kind: "single", Label: "A"}
	snap.Current = 99

	restored, err := Restore(snap)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	sl, _ := restored.Slot(2)
	if sl.Answer != nil {
		t.Errorf("mismatched answer kept: %+v", sl.Answer)
	}
	if restored.Current() != 0 {
		t.Errorf("Current() = %d, want clamped 0", restored.Current())
	}
}
