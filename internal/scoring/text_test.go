package scoring

import (
	"encoding/json"
	"testing"

	"github.com/abhisek/nmt/internal/session"
)

func TestIncorrectTextSingle(t *testing.T) {
	s := newSession(t, singleSrc, singleSrc)
	_ = s.SetAnswer(0, session.SingleAnswer("A"))

	r := Evaluate(s.Slots())
	got := r.Incorrect[0]
	want := Incorrect{
		Index:        1,
		QuestionText: "1+1?",
		Kind:         "single",
		YourText:     "A) 1",
		CorrectText:  "B) 2",
		CorrectLatex: "2",
	}
	if got != want {
		t.Errorf("entry = %+v\nwant    %+v", got, want)
	}

	if r.Incorrect[1].YourText != Placeholder {
		t.Errorf("unanswered YourText = %q, want placeholder", r.Incorrect[1].YourText)
	}
	if r.Incorrect[1].Index != 2 {
		t.Errorf("Index = %d, want 2", r.Incorrect[1].Index)
	}
}

func TestIncorrectTextSingleMultipleKeys(t *testing.T) {
	s := newSession(t, `{"id":1,"options":[{"label":"A","text":"x"}],"answer":[{"label":"A","text":"x"},{"label":"C"}]}`)
	_ = s.SetAnswer(0, session.SingleAnswer("B"))

	got := Evaluate(s.Slots()).Incorrect[0]
	if got.CorrectText != "A) x, C) " {
		t.Errorf("CorrectText = %q", got.CorrectText)
	}
	// B is not an option of the question.
	if got.YourText != Placeholder {
		t.Errorf("YourText = %q, want placeholder", got.YourText)
	}
}

func TestIncorrectTextMatching(t *testing.T) {
	s := newSession(t, matchingSrc)
	_ = s.SetPair(0, "3", "Г")
	_ = s.SetPair(0, "1", "А")

	got := Evaluate(s.Slots()).Incorrect[0]
	if got.CorrectText != "1 → А; 2 → Б; 3 → В" {
		t.Errorf("CorrectText = %q", got.CorrectText)
	}
	if got.YourText != "1 → А; 3 → Г" {
		t.Errorf("YourText = %q", got.YourText)
	}

	empty := newSession(t, matchingSrc)
	if got := Evaluate(empty.Slots()).Incorrect[0].YourText; got != Placeholder {
		t.Errorf("empty matching YourText = %q, want placeholder", got)
	}
}

func TestIncorrectTextShort(t *testing.T) {
	s := newSession(t, shortSrc, shortSrc)
	_ = s.SetAnswer(0, session.ShortAnswer("7"))

	r := Evaluate(s.Slots())
	if got := r.Incorrect[0]; got.YourText != "7" || got.CorrectText != "12.5" {
		t.Errorf("entry = %+v", got)
	}
	if got := r.Incorrect[1].YourText; got != Placeholder {
		t.Errorf("unanswered YourText = %q, want placeholder", got)
	}
}

func TestFullAnswers(t *testing.T) {
	s := newSession(t, singleSrc, matchingSrc, shortSrc)
	_ = s.SetAnswer(0, session.SingleAnswer("B"))
	_ = s.SetPair(1, "1", "А")
	_ = s.SetAnswer(2, session.ShortAnswer("12,5"))

	answers := FullAnswers(s.Slots())
	if len(answers) != 3 {
		t.Fatalf("len = %d, want 3", len(answers))
	}

	single := answers[0]
	if single.Index != 1 || single.CorrectAnswer != "B) 2" || !single.IsCorrect || single.Points != 1 {
		t.Errorf("single = %+v", single)
	}
	if single.UserAnswer != "B" || single.YourLatex != "2" {
		t.Errorf("single user answer = %v latex %q", single.UserAnswer, single.YourLatex)
	}

	matching := answers[1]
	if matching.CorrectAnswer != "1→А; 2→Б; 3→В" {
		t.Errorf("matching CorrectAnswer = %q", matching.CorrectAnswer)
	}
	if matching.Points != 1 || matching.IsCorrect {
		t.Errorf("matching = %+v", matching)
	}

	short := answers[2]
	if short.Points != 2 || short.UserAnswer != "12,5" || short.CorrectAnswer != "12.5" {
		t.Errorf("short = %+v", short)
	}

	data, err := json.Marshal(answers[1])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	_ = json.Unmarshal(data, &decoded)
	if _, ok := decoded["userAnswer"].(map[string]any); !ok {
		t.Errorf("matching userAnswer should serialize as an object: %s", data)
	}
}

func TestBuildReport(t *testing.T) {
	s := newSession(t, singleSrc, shortSrc)
	_ = s.SetAnswer(0, session.SingleAnswer("B"))
	slots := s.Slots()
	r := Evaluate(slots)

	rep := BuildReport(s.StudentName, s.StudentEmail, slots, r)
	if rep.StudentEmail != "taras@example.com" || rep.Score != 1 || rep.Percent != 3 {
		t.Errorf("report = %+v", rep)
	}
	if rep.Comment != Comment(3) {
		t.Errorf("Comment = %q", rep.Comment)
	}
	if len(rep.Answers) != 2 || len(rep.Incorrect) != 1 {
		t.Errorf("answers = %d incorrect = %d", len(rep.Answers), len(rep.Incorrect))
	}

	zero := BuildReport("a", "b", nil, ZeroResult())
	data, _ := json.Marshal(zero)
	var m map[string]any
	_ = json.Unmarshal(data, &m)
	if inc, ok := m["incorrect"].([]any); !ok || len(inc) != 0 {
		t.Errorf("zero report incorrect = %v, want []", m["incorrect"])
	}
}
