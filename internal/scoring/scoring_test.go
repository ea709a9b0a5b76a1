package scoring

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/nmt/internal/question"
	"github.com/abhisek/nmt/internal/session"
)

const (
	singleSrc   = `{"id":1,"question":"1+1?","options":[{"label":"A","text":"1"},{"label":"B","text":"2","latex":"2"}],"answer":[{"label":"B","text":"2","latex":"2"}]}`
	matchingSrc = `{"id":2,"question":"Match","statements":{"1":"a","2":"b","3":"c"},"endings":{"А":"x","Б":"y","В":"z","Г":"w"},"answer":[{"statement":"1","label":"А"},{"statement":"2","label":"Б"},{"statement":"3","label":"В"}]}`
	shortSrc    = `{"id":3,"question":"x?","answer_format":"decimal","answer":"12.5"}`
)

func decode(t *testing.T, src string) question.Question {
	t.Helper()
	var r question.Record
	if err := json.Unmarshal([]byte(src), &r); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	return question.Decode(r)
}

func newSession(t *testing.T, srcs ...string) *session.State {
	t.Helper()
	qs := make([]question.Question, len(srcs))
	for i, s := range srcs {
		qs[i] = decode(t, s)
	}
	s, err := session.New(qs, "Тарас", "taras@example.com", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return s
}

func TestSingleCorrect(t *testing.T) {
	s := newSession(t, `{"id":1,"options":[{"label":"A","text":"1"},{"label":"B","text":"2"}],"answer":[{"label":"B"}]}`)
	_ = s.SetAnswer(0, session.SingleAnswer("B"))

	r := Evaluate(s.Slots())
	if r.Score != 1 {
		t.Errorf("Score = %d, want 1", r.Score)
	}
	if !r.Outcomes[0].Correct {
		t.Error("Correct = false, want true")
	}
	if len(r.Incorrect) != 0 {
		t.Errorf("Incorrect = %v, want none", r.Incorrect)
	}
}

func TestSingleAnyKeyLabel(t *testing.T) {
	s := newSession(t, `{"id":1,"options":[{"label":"A"},{"label":"B"}],"answer":[{"label":"A"},{"label":"B"}]}`)
	_ = s.SetAnswer(0, session.SingleAnswer("B"))
	if got := Evaluate(s.Slots()).Score; got != 1 {
		t.Errorf("Score = %d, want 1 for second key label", got)
	}
}

func TestSingleWrongOrMissing(t *testing.T) {
	s := newSession(t, singleSrc, singleSrc)
	_ = s.SetAnswer(0, session.SingleAnswer("A"))

	r := Evaluate(s.Slots())
	if r.Score != 0 {
		t.Errorf("Score = %d, want 0", r.Score)
	}
	if len(r.Incorrect) != 2 {
		t.Fatalf("Incorrect = %d entries, want 2", len(r.Incorrect))
	}
}

func TestMatchingPartialCredit(t *testing.T) {
	s := newSession(t, matchingSrc)
	_ = s.SetPair(0, "1", "А")
	_ = s.SetPair(0, "2", "Б")
	_ = s.SetPair(0, "3", "Г")

	r := Evaluate(s.Slots())
	if r.Score != 2 {
		t.Errorf("Score = %d, want 2", r.Score)
	}
	o := r.Outcomes[0]
	if o.Correct || o.Max != 3 {
		t.Errorf("outcome = %+v, want incorrect with max 3", o)
	}
}

func TestMatchingAllCorrect(t *testing.T) {
	s := newSession(t, matchingSrc)
	_ = s.SetAnswer(0, session.MatchingAnswer(map[string]string{"1": "А", "2": "Б", "3": "В"}))

	r := Evaluate(s.Slots())
	if r.Score != 3 || !r.Outcomes[0].Correct {
		t.Errorf("Score = %d correct=%v, want 3 true", r.Score, r.Outcomes[0].Correct)
	}
}

func TestShortAnswer(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		answer string
		want   int
	}{
		{"comma decimal", "12.5", "12,5", 2},
		{"same text", "12.5", "12.5", 2},
		{"padded", "12.5", "  12.50 ", 2},
		{"within tolerance", "1", "1.0000001", 2},
		{"outside tolerance", "1", "1.00001", 0},
		{"wrong", "12.5", "12.6", 0},
		{"not a number", "12.5", "дванадцять", 0},
		{"empty answer against zero", "0", "", 0},
		{"key with comma", "3,5", "3.5", 2},
		{"negative", "-2", "-2", 2},
		{"infinite", "1", "Inf", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := `{"id":3,"answer_format":"decimal","answer":"` + tc.key + `"}`
			s := newSession(t, src)
			_ = s.SetAnswer(0, session.ShortAnswer(tc.answer))
			if got := Evaluate(s.Slots()).Score; got != tc.want {
				t.Errorf("key %q answer %q: Score = %d, want %d", tc.key, tc.answer, got, tc.want)
			}
		})
	}
}

func TestShortNumericKey(t *testing.T) {
	s := newSession(t, `{"id":3,"answer_format":"decimal","answer":12.5}`)
	_ = s.SetAnswer(0, session.ShortAnswer("12,5"))
	if got := Evaluate(s.Slots()).Score; got != 2 {
		t.Errorf("Score = %d, want 2", got)
	}
}

func TestNormalizeNumber(t *testing.T) {
	a, okA := NormalizeNumber("3,5")
	b, okB := NormalizeNumber("3.5")
	if !okA || !okB || a != b {
		t.Errorf("NormalizeNumber(3,5) = %v,%v; NormalizeNumber(3.5) = %v,%v", a, okA, b, okB)
	}

	for _, in := range []string{"", "   ", "abc", "NaN", "-Inf", "1,2,3"} {
		if v, ok := NormalizeNumber(in); ok {
			t.Errorf("NormalizeNumber(%q) = %v, want no parse", in, v)
		}
	}
}

func TestToleranceBoundary(t *testing.T) {
	if !NumbersEqual("1", "1.0000005") {
		t.Error("difference 5e-7 should be equal")
	}
	if NumbersEqual("1", "1.00001") {
		t.Error("difference 1e-5 should not be equal")
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		score, max, want int
	}{
		{0, 32, 0},
		{32, 32, 100},
		{16, 32, 50},
		{1, 32, 3},   // 3.125
		{11, 32, 34}, // 34.375
		{5, 8, 63},   // 62.5 rounds half up
		{29, 32, 91}, // 90.625
		{40, 32, 100},
		{5, 0, 0},
	}
	for _, tc := range tests {
		if got := Percent(tc.score, tc.max); got != tc.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tc.score, tc.max, got, tc.want)
		}
	}
}

func TestComment(t *testing.T) {
	tests := []struct {
		percent int
		want    Band
	}{
		{100, BandExcellent},
		{90, BandExcellent},
		{89, BandGood},
		{70, BandGood},
		{69, BandNeedsWork},
		{0, BandNeedsWork},
	}
	for _, tc := range tests {
		if got := BandFor(tc.percent); got != tc.want {
			t.Errorf("BandFor(%d) = %d, want %d", tc.percent, got, tc.want)
		}
	}
	if Comment(95) == Comment(75) || Comment(75) == Comment(10) {
		t.Error("bands must have distinct comments")
	}
	if Comment(90) != "Відмінний результат! Ви чудово підготовлені до НМТ." {
		t.Errorf("Comment(90) = %q", Comment(90))
	}
}

func TestEvaluateIdempotentAndSums(t *testing.T) {
	s := newSession(t, singleSrc, matchingSrc, shortSrc)
	_ = s.SetAnswer(0, session.SingleAnswer("B"))
	_ = s.SetPair(1, "1", "А")
	_ = s.SetAnswer(2, session.ShortAnswer("12,5"))
	slots := s.Slots()

	first := Evaluate(slots)
	second := Evaluate(slots)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Evaluate not idempotent:\n%+v\n%+v", first, second)
	}

	sum := 0
	for _, o := range first.Outcomes {
		sum += o.Points
	}
	if sum != first.Score || first.Score != 4 {
		t.Errorf("Score = %d, sum of outcomes = %d, want 4", first.Score, sum)
	}
	if first.Percent != 13 {
		t.Errorf("Percent = %d, want 13", first.Percent)
	}
}

func TestSafeEvaluate(t *testing.T) {
	s := newSession(t, shortSrc)
	r, err := SafeEvaluate(s.Slots(), MaxScore)
	if err != nil {
		t.Fatalf("SafeEvaluate: %v", err)
	}
	if r.Score != 0 || len(r.Incorrect) != 1 {
		t.Errorf("result = %+v", r)
	}

	z := ZeroResult()
	if z.Score != 0 || z.Percent != 0 || z.Incorrect == nil || len(z.Incorrect) != 0 {
		t.Errorf("ZeroResult() = %+v", z)
	}
}
