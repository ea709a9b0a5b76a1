package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/nmt/internal/question"
)

func TestEncodePool(t *testing.T) {
	records := []json.RawMessage{
		json.RawMessage(`{"id":1000000,"question":"x?","answer_format":"decimal","answer":"2,5"}`),
	}

	data, err := encodePool("out.json", records)
	if err != nil {
		t.Fatal(err)
	}
	parsed, rejected, err := question.ParseRecords(data)
	if err != nil || len(rejected) != 0 || len(parsed) != 1 {
		t.Fatalf("json round trip: parsed=%d rejected=%v err=%v", len(parsed), rejected, err)
	}

	data, err = encodePool("out.YAML", records)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "id: 1000000") {
		t.Errorf("yaml id not kept as integer:\n%s", data)
	}
	var elems []map[string]any
	if err := yaml.Unmarshal(data, &elems); err != nil || len(elems) != 1 {
		t.Fatalf("yaml decode: %v", err)
	}

	data, err = encodePool("empty.json", nil)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty export = %q, want []", data)
	}
}

func TestRecordText(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`{"question":"Скільки?"}`, "Скільки?"},
		{`{"id":1}`, ""},
		{`not json`, ""},
	}
	for _, tt := range tests {
		if got := recordText(json.RawMessage(tt.raw)); got != tt.want {
			t.Errorf("recordText(%s) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestClip(t *testing.T) {
	if got := clip("короткий", 10); got != "короткий" {
		t.Errorf("clip short = %q", got)
	}
	if got := clip("дуже довгий\nрядок", 6); got != "дуже …" {
		t.Errorf("clip long = %q", got)
	}
}

func TestParseID(t *testing.T) {
	for _, s := range []string{"0", "-1", "abc", ""} {
		if _, err := parseID(s); err == nil {
			t.Errorf("parseID(%q) should fail", s)
		}
	}
	if id, err := parseID("42"); err != nil || id != 42 {
		t.Errorf("parseID(42) = %d, %v", id, err)
	}
}
