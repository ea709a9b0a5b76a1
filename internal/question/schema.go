package question

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const recordSchemaURL = "schema://nmt/pool-record.json"

// RecordSchema is the JSON Schema every pool record must satisfy. It only
// pins down field types; shape ambiguity is resolved by Classify.
var RecordSchema = map[string]any{
	"type":     "object",
	"required": []any{"id"},
	"properties": map[string]any{
		"id":            map[string]any{"type": "integer"},
		"topic":         map[string]any{"type": "string"},
		"question":      map[string]any{"type": "string"},
		"latex":         map[string]any{"type": []any{"string", "null"}},
		"image":         map[string]any{"type": []any{"string", "null"}},
		"answer_format": map[string]any{"type": "string"},
		"options":       map[string]any{"type": []any{"array", "object"}},
		"statements":    map[string]any{"type": []any{"array", "object", "null"}},
		"expressions":   map[string]any{"type": []any{"array", "object", "null"}},
		"segments":      map[string]any{"type": []any{"array", "object", "null"}},
		"endings":       map[string]any{"type": []any{"array", "object", "null"}},
	},
}

var (
	recordSchemaOnce sync.Once
	recordSchema     *jsonschema.Schema
	recordSchemaErr  error
)

func compiledRecordSchema() (*jsonschema.Schema, error) {
	recordSchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(recordSchemaURL, RecordSchema); err != nil {
			recordSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		recordSchema, recordSchemaErr = c.Compile(recordSchemaURL)
	})
	return recordSchema, recordSchemaErr
}

// RecordError describes a pool record that was rejected at load time.
type RecordError struct {
	Index int // position in the source array
	ID    int // zero when the id itself is unreadable
	Err   error
}

func (e *RecordError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("record %d (id %d): %v", e.Index, e.ID, e.Err)
	}
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// ValidateRecord checks one raw record against RecordSchema.
func ValidateRecord(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	compiled, err := compiledRecordSchema()
	if err != nil {
		return fmt.Errorf("compile record schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// ParseRecords decodes a JSON array of pool records. Records that fail
// validation or repeat an earlier id are skipped and reported in rejected;
// err is only set when data is not a JSON array at all.
func ParseRecords(data []byte) (records []Record, rejected []*RecordError, err error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, nil, fmt.Errorf("decode question pool: %w", err)
	}

	seen := make(map[int]bool, len(elems))
	for i, raw := range elems {
		if err := ValidateRecord(raw); err != nil {
			rejected = append(rejected, &RecordError{Index: i, Err: err})
			continue
		}
		var r Record
		if err := json.Unmarshal(raw, &r); err != nil {
			rejected = append(rejected, &RecordError{Index: i, Err: err})
			continue
		}
		if seen[r.ID] {
			rejected = append(rejected, &RecordError{Index: i, ID: r.ID, Err: fmt.Errorf("duplicate id")})
			continue
		}
		seen[r.ID] = true
		records = append(records, r)
	}
	return records, rejected, nil
}

// DecodeAll decodes every record in order.
func DecodeAll(records []Record) []Question {
	out := make([]Question, len(records))
	for i, r := range records {
		out[i] = Decode(r)
	}
	return out
}
