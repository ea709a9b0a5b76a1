package question

import (
	"reflect"
	"testing"
)

func TestDecodeSingle(t *testing.T) {
	q := Decode(record(t, `{
		"id": 1, "topic": "Числа і вирази", "question": "2+2?",
		"options": [{"label":"A","text":"3"},{"label":"B","text":"4","latex":"4"}],
		"answer": [{"label":"B","text":"4"}]
	}`))

	if q.Kind != KindSingle {
		t.Fatalf("kind = %q, want single", q.Kind)
	}
	if q.Single == nil || q.Matching != nil || q.Short != nil {
		t.Fatal("expected only the single variant to be set")
	}
	if len(q.Single.Options) != 2 {
		t.Fatalf("options = %d, want 2", len(q.Single.Options))
	}
	if got := q.Single.Answer[0].Label; got != "B" {
		t.Errorf("answer label = %q, want B", got)
	}
	if o, ok := q.Option("B"); !ok || o.Latex != "4" {
		t.Errorf("Option(B) = %+v, %v", o, ok)
	}
	if q.Text != "2+2?" || q.Topic != "Числа і вирази" {
		t.Errorf("presentation fields not decoded: %+v", q)
	}
}

func TestDecodeSingleBareLabelAnswer(t *testing.T) {
	q := Decode(record(t, `{"id":1,"options":[{"label":"A"}],"answer":"A"}`))
	if len(q.Single.Answer) != 1 || q.Single.Answer[0].Label != "A" {
		t.Errorf("answer = %+v, want [A]", q.Single.Answer)
	}
}

func TestDecodeSingleMalformedOptions(t *testing.T) {
	q := Decode(record(t, `{"id":1,"options":"oops"}`))
	if q.Kind != KindSingle {
		t.Fatalf("kind = %q, want single", q.Kind)
	}
	if len(q.Single.Options) != 0 {
		t.Errorf("options = %v, want none", q.Single.Options)
	}
}

func TestDecodeMatchingStatementsArray(t *testing.T) {
	q := Decode(record(t, `{
		"id": 2,
		"statements": [{"label":"2","text":"b"},{"label":"1","latex":"a^2"},{"label":"3","text":"c"}],
		"endings": {"А":"x","Б":"y","В":"z","Г":"w"},
		"answer": [{"statement":1,"label":"Б"},{"statement":2,"label":"А"},{"statement":3,"label":"Г"}]
	}`))

	if q.Kind != KindMatching {
		t.Fatalf("kind = %q, want matching", q.Kind)
	}
	wantLeft := []Item{{"1", "a^2"}, {"2", "b"}, {"3", "c"}}
	if !reflect.DeepEqual(q.Matching.Left, wantLeft) {
		t.Errorf("left = %v, want %v", q.Matching.Left, wantLeft)
	}
	if len(q.Matching.Right) != 4 || q.Matching.Right[0].Key != "А" {
		t.Errorf("right = %v", q.Matching.Right)
	}
	wantPairs := []Pair{{"1", "Б"}, {"2", "А"}, {"3", "Г"}}
	if !reflect.DeepEqual(q.Matching.Pairs, wantPairs) {
		t.Errorf("pairs = %v, want %v", q.Matching.Pairs, wantPairs)
	}
	if text, ok := q.Ending("В"); !ok || text != "z" {
		t.Errorf("Ending(В) = %q, %v", text, ok)
	}
}

func TestDecodeMatchingObjectAnswerOrder(t *testing.T) {
	q := Decode(record(t, `{
		"id": 3,
		"expressions": {"3":"c","1":"a","2":"b"},
		"options": {"A":"1","B":"2"},
		"answer": {"3":"B","1":"A","2":"A"}
	}`))

	wantPairs := []Pair{{"1", "A"}, {"2", "A"}, {"3", "B"}}
	if !reflect.DeepEqual(q.Matching.Pairs, wantPairs) {
		t.Errorf("pairs = %v, want %v", q.Matching.Pairs, wantPairs)
	}
	wantRight := []Item{{"A", "1"}, {"B", "2"}}
	if !reflect.DeepEqual(q.Matching.Right, wantRight) {
		t.Errorf("right = %v, want %v", q.Matching.Right, wantRight)
	}
}

func TestDecodeMatchingOptionsWithMatches(t *testing.T) {
	q := Decode(record(t, `{
		"id": 4,
		"options": [{"label":"1","text":"one","matches":"А"},{"label":"2","latex":"\\frac12","matches":"Б"}],
		"answer": [{"label":"А","statement":"1"}]
	}`))

	if q.Kind != KindMatching {
		t.Fatalf("kind = %q, want matching", q.Kind)
	}
	wantLeft := []Item{{"1", "one"}, {"2", `\frac12`}}
	if !reflect.DeepEqual(q.Matching.Left, wantLeft) {
		t.Errorf("left = %v, want %v", q.Matching.Left, wantLeft)
	}
	if len(q.Matching.Pairs) != 1 || q.Matching.Pairs[0] != (Pair{"1", "А"}) {
		t.Errorf("pairs = %v", q.Matching.Pairs)
	}
}

func TestDecodeMatchingDropsPairsWithoutKey(t *testing.T) {
	q := Decode(record(t, `{"id":5,"segments":{"1":"AB"},"answer":[{"text":"x"},{"segment":"1","label":"В"}]}`))
	if len(q.Matching.Pairs) != 1 {
		t.Errorf("pairs = %v, want one pair", q.Matching.Pairs)
	}
}

func TestDecodeShort(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`{"id":6,"answer_format":"decimal","answer":"12,5"}`, "12,5"},
		{`{"id":7,"answer_format":"decimal","answer":12.5}`, "12.5"},
		{`{"id":8,"answer_format":"decimal","answer":-3}`, "-3"},
		{`{"id":9,"answer_format":"decimal"}`, ""},
	}
	for _, tc := range tests {
		q := Decode(record(t, tc.src))
		if q.Kind != KindShort {
			t.Fatalf("kind = %q, want short", q.Kind)
		}
		if q.Short.Answer != tc.want {
			t.Errorf("Decode(%s).Short.Answer = %q, want %q", tc.src, q.Short.Answer, tc.want)
		}
	}
}

func TestDecodeAsKeepsFrozenKind(t *testing.T) {
	r := record(t, `{"id":10,"options":[{"label":"A"}],"answer":[{"label":"A"}]}`)
	q := DecodeAs(r, KindMatching)
	if q.Kind != KindMatching || q.Matching == nil {
		t.Errorf("DecodeAs kept kind %q, want matching", q.Kind)
	}

	q = DecodeAs(r, Kind("bogus"))
	if q.Kind != KindSingle {
		t.Errorf("DecodeAs with unknown kind = %q, want reclassified single", q.Kind)
	}
}
