package drafting

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/nmt/internal/question"
)

func decode(t *testing.T, raw string) question.Question {
	t.Helper()
	var rec question.Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("unmarshal %s: %v", raw, err)
	}
	return question.Decode(rec)
}

func TestCheckDraft(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		kind      question.Kind
		wantCheck string // empty when the draft passes
	}{
		{"single ok", `{"id":1,"question":"q","options":[{"label":"А","text":"1"},{"label":"Б","text":"2"}],"answer":[{"label":"Б"}]}`, question.KindSingle, ""},
		{"empty body", `{"id":1,"options":[{"label":"А","text":"1"}],"answer":"А"}`, question.KindSingle, "body"},
		{"wrong kind", `{"id":1,"question":"q","answer_format":"decimal","answer":"1"}`, question.KindSingle, "kind"},
		{"one option", `{"id":1,"question":"q","options":[{"label":"А","text":"1"}],"answer":"А"}`, question.KindSingle, "single"},
		{"repeated label", `{"id":1,"question":"q","options":[{"label":"А","text":"1"},{"label":"А","text":"2"}],"answer":"А"}`, question.KindSingle, "single"},
		{"no key", `{"id":1,"question":"q","options":[{"label":"А","text":"1"},{"label":"Б","text":"2"}]}`, question.KindSingle, "single"},
		{"short ok", `{"id":1,"question":"q","answer_format":"decimal","answer":"-0,5"}`, question.KindShort, ""},
		{"short not a number", `{"id":1,"question":"q","answer_format":"decimal","answer":"x"}`, question.KindShort, "short"},
		{"matching ok", `{"id":1,"question":"q","statements":{"1":"a","2":"b"},"endings":{"А":"x","Б":"y","В":"z"},"answer":{"1":"В","2":"А"}}`, question.KindMatching, ""},
		{"too few endings", `{"id":1,"question":"q","statements":{"1":"a","2":"b"},"endings":{"А":"x"},"answer":{"1":"А","2":"А"}}`, question.KindMatching, "matching"},
		{"unknown ending", `{"id":1,"question":"q","statements":{"1":"a","2":"b"},"endings":{"А":"x","Б":"y"},"answer":{"1":"Г","2":"А"}}`, question.KindMatching, "matching"},
		{"unknown stem", `{"id":1,"question":"q","statements":{"1":"a","2":"b"},"endings":{"А":"x","Б":"y"},"answer":{"1":"А","2":"Б","7":"А"}}`, question.KindMatching, "matching"},
		{"unpaired stem", `{"id":1,"question":"q","statements":{"1":"a","2":"b"},"endings":{"А":"x","Б":"y"},"answer":{"1":"А"}}`, question.KindMatching, "matching"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := checkDraft(decode(t, tt.raw), tt.kind)
			got := ""
			if verr != nil {
				got = verr.Check
			}
			if got != tt.wantCheck {
				t.Errorf("checkDraft() = %v, want check %q", verr, tt.wantCheck)
			}
		})
	}
}

func TestCheckDraft_LongBody(t *testing.T) {
	raw := `{"id":1,"question":"` + strings.Repeat("я", maxBodyLen+1) + `","answer_format":"decimal","answer":"1"}`
	if verr := checkDraft(decode(t, raw), question.KindShort); verr == nil || verr.Check != "body" {
		t.Errorf("checkDraft() = %v, want body error", verr)
	}
}

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage(Input{
		Topic: "Тригонометрія",
		Kind:  question.KindMatching,
		Notes: "рівень НМТ",
		Prior: []string{"a", "b", "c"},
	}, 2)

	for _, want := range []string{"Topic: Тригонометрія", "Kind: matching", "Author notes: рівень НМТ", "1. b\n2. c"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "1. a") {
		t.Errorf("message kept more than 2 prior questions:\n%s", msg)
	}
}

func TestBuildPrior_None(t *testing.T) {
	if got := buildPrior(nil, 5); got != "None" {
		t.Errorf("buildPrior(nil) = %q, want None", got)
	}
}
