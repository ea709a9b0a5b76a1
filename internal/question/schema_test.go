package question

import (
	"errors"
	"testing"
)

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"minimal", `{"id":1}`, false},
		{"null latex", `{"id":1,"latex":null,"image":null}`, false},
		{"missing id", `{"topic":"x"}`, true},
		{"string id", `{"id":"1"}`, true},
		{"options scalar", `{"id":1,"options":"A"}`, true},
		{"not json", `{`, true},
	}
	for _, tc := range tests {
		err := ValidateRecord([]byte(tc.src))
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: ValidateRecord err = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestParseRecords(t *testing.T) {
	data := []byte(`[
		{"id":1,"topic":"A"},
		{"id":"bad"},
		{"id":2,"topic":"B"},
		{"id":1,"topic":"dup"}
	]`)

	records, rejected, err := ParseRecords(data)
	if err != nil {
		t.Fatalf("ParseRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].Topic != "A" || records[1].Topic != "B" {
		t.Errorf("records out of order: %+v", records)
	}
	if len(rejected) != 2 {
		t.Fatalf("rejected = %d, want 2", len(rejected))
	}
	if rejected[0].Index != 1 || rejected[1].ID != 1 {
		t.Errorf("rejected = %v", rejected)
	}

	var recErr *RecordError
	if !errors.As(error(rejected[1]), &recErr) {
		t.Error("expected *RecordError")
	}
}

func TestParseRecordsNotArray(t *testing.T) {
	if _, _, err := ParseRecords([]byte(`{"id":1}`)); err == nil {
		t.Error("expected error for non-array pool")
	}
}
