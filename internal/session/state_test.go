package session

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/nmt/internal/question"
)

func decode(t *testing.T, src string) question.Question {
	t.Helper()
	var r question.Record
	if err := json.Unmarshal([]byte(src), &r); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	return question.Decode(r)
}

func testQuestions(t *testing.T) []question.Question {
	return []question.Question{
		decode(t, `{"id":1,"topic":"Числа і вирази","options":[{"label":"A","text":"1"},{"label":"B","text":"2"}],"answer":[{"label":"B"}]}`),
		decode(t, `{"id":2,"statements":{"1":"a","2":"b","3":"c"},"endings":{"А":"x","Б":"y","В":"z"},"answer":{"1":"А","2":"Б","3":"В"}}`),
		decode(t, `{"id":3,"answer_format":"decimal","answer":"12.5"}`),
	}
}

var testEnd = time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC)

func newState(t *testing.T) *State {
	t.Helper()
	s, err := New(testQuestions(t), "Олена", "olena@example.com", testEnd)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNew(t *testing.T) {
	s := newState(t)
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if s.ID == "" {
		t.Error("expected a session ID")
	}
	if s.Current() != 0 || s.Finished() {
		t.Errorf("fresh state current=%d finished=%v", s.Current(), s.Finished())
	}
	wantKinds := []question.Kind{question.KindSingle, question.KindMatching, question.KindShort}
	for i, sl := range s.Slots() {
		if sl.Kind != wantKinds[i] {
			t.Errorf("slot %d kind = %q, want %q", i, sl.Kind, wantKinds[i])
		}
		if sl.Answer != nil || sl.Flagged || sl.Visited {
			t.Errorf("slot %d not pristine: %+v", i, sl)
		}
	}

	if _, err := New(nil, "x", "y", testEnd); !errors.Is(err, ErrEmpty) {
		t.Errorf("New(nil) err = %v, want ErrEmpty", err)
	}
}

func TestGoTo(t *testing.T) {
	s := newState(t)
	if err := s.GoTo(2); err != nil {
		t.Fatalf("GoTo(2): %v", err)
	}
	if s.Current() != 2 {
		t.Errorf("Current() = %d, want 2", s.Current())
	}
	sl, _ := s.Slot(2)
	if !sl.Visited {
		t.Error("slot 2 not marked visited")
	}

	for _, i := range []int{-1, 3} {
		if err := s.GoTo(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("GoTo(%d) err = %v, want ErrOutOfRange", i, err)
		}
	}
	if s.Current() != 2 {
		t.Errorf("out of range GoTo moved current to %d", s.Current())
	}
}

func TestSetAnswer(t *testing.T) {
	s := newState(t)

	if err := s.SetAnswer(0, SingleAnswer("B")); err != nil {
		t.Fatalf("SetAnswer single: %v", err)
	}
	if err := s.SetAnswer(2, ShortAnswer("  12,5 ")); err != nil {
		t.Fatalf("SetAnswer short: %v", err)
	}
	sl, _ := s.Slot(2)
	if sl.Answer.Text != "12,5" {
		t.Errorf("short answer = %q, want trimmed 12,5", sl.Answer.Text)
	}

	if err := s.SetAnswer(0, ShortAnswer("1")); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("mismatched kind err = %v, want ErrKindMismatch", err)
	}
	sl, _ = s.Slot(0)
	if sl.Answer.Label != "B" {
		t.Errorf("rejected answer changed slot: %+v", sl.Answer)
	}
	if s.AnsweredCount() != 2 {
		t.Errorf("AnsweredCount() = %d, want 2", s.AnsweredCount())
	}
}

func TestSetAnswerCopiesPairs(t *testing.T) {
	s := newState(t)
	pairs := map[string]string{"1": "А"}
	if err := s.SetAnswer(1, MatchingAnswer(pairs)); err != nil {
		t.Fatalf("SetAnswer matching: %v", err)
	}
	pairs["2"] = "Б"
	sl, _ := s.Slot(1)
	if len(sl.Answer.Pairs) != 1 {
		t.Errorf("slot shares caller map: %v", sl.Answer.Pairs)
	}

	// Slot returns a copy.
	sl.Answer.Pairs["3"] = "В"
	again, _ := s.Slot(1)
	if len(again.Answer.Pairs) != 1 {
		t.Errorf("Slot() exposed internal map: %v", again.Answer.Pairs)
	}
}

func TestSetPair(t *testing.T) {
	s := newState(t)
	if err := s.SetPair(1, "1", "Б"); err != nil {
		t.Fatalf("SetPair: %v", err)
	}
	if err := s.SetPair(1, "2", "А"); err != nil {
		t.Fatalf("SetPair: %v", err)
	}
	sl, _ := s.Slot(1)
	want := map[string]string{"1": "Б", "2": "А"}
	if !reflect.DeepEqual(sl.Answer.Pairs, want) {
		t.Errorf("pairs = %v, want %v", sl.Answer.Pairs, want)
	}

	if err := s.SetPair(1, "1", ""); err != nil {
		t.Fatalf("SetPair clear: %v", err)
	}
	sl, _ = s.Slot(1)
	if _, ok := sl.Answer.Pairs["1"]; ok {
		t.Error("empty label did not remove pair")
	}

	if err := s.SetPair(0, "1", "А"); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("SetPair on single err = %v, want ErrKindMismatch", err)
	}
}

func TestToggleFlag(t *testing.T) {
	s := newState(t)
	_ = s.ToggleFlag(1)
	if s.FlaggedCount() != 1 {
		t.Errorf("FlaggedCount() = %d, want 1", s.FlaggedCount())
	}
	_ = s.ToggleFlag(1)
	if s.FlaggedCount() != 0 {
		t.Errorf("FlaggedCount() = %d after second toggle, want 0", s.FlaggedCount())
	}
}

func TestFinishLatch(t *testing.T) {
	s := newState(t)
	if !s.Finish() {
		t.Fatal("first Finish() = false, want true")
	}
	if s.Finish() {
		t.Error("second Finish() = true, want false")
	}
	if !s.Finished() {
		t.Error("Finished() = false after Finish")
	}
}

func TestMutationsRejectedAfterFinish(t *testing.T) {
	s := newState(t)
	_ = s.SetAnswer(0, SingleAnswer("A"))
	before := s.Slots()
	s.Finish()

	for i := 0; i < s.Len(); i++ {
		errs := []error{
			s.SetAnswer(i, SingleAnswer("B")),
			s.SetAnswer(i, ShortAnswer("1")),
			s.SetPair(i, "1", "А"),
			s.ToggleFlag(i),
			s.GoTo(i),
		}
		for _, err := range errs {
			if !errors.Is(err, ErrFinished) {
				t.Errorf("slot %d: err = %v, want ErrFinished", i, err)
			}
		}
	}
	if !reflect.DeepEqual(s.Slots(), before) {
		t.Error("slots changed after finish")
	}
}
