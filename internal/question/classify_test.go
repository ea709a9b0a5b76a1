package question

import (
	"encoding/json"
	"testing"
)

func record(t *testing.T, src string) Record {
	t.Helper()
	var r Record
	if err := json.Unmarshal([]byte(src), &r); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	return r
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Kind
	}{
		{"decimal format", `{"id":1,"answer_format":"decimal","answer":"2,5"}`, KindShort},
		{"decimal wins over statements", `{"id":2,"answer_format":"decimal","statements":{"1":"x"}}`, KindShort},
		{"statements", `{"id":3,"statements":[{"label":"1","text":"a"}]}`, KindMatching},
		{"expressions", `{"id":4,"expressions":{"1":"x^2"}}`, KindMatching},
		{"segments", `{"id":5,"segments":{"1":"AB"}}`, KindMatching},
		{"endings only", `{"id":6,"endings":{"А":"1"}}`, KindMatching},
		{"options with matches", `{"id":7,"options":[{"label":"1","text":"a","matches":true}]}`, KindMatching},
		{"options without matches", `{"id":8,"options":[{"label":"A","text":"1"}]}`, KindSingle},
		{"empty options", `{"id":9,"options":[]}`, KindSingle},
		{"null statements", `{"id":10,"statements":null,"options":[{"label":"A"}]}`, KindSingle},
		{"no shape at all", `{"id":11}`, KindSingle},
		{"other answer format", `{"id":12,"answer_format":"integer"}`, KindSingle},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(record(t, tc.src))
			if got != tc.want {
				t.Errorf("Classify(%s) = %q, want %q", tc.src, got, tc.want)
			}
		})
	}
}
