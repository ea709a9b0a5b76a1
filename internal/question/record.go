package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Record is a raw pool record as stored in the question bank file.
// Shape-dependent fields are kept as raw JSON until Decode.
type Record struct {
	ID           int             `json:"id"`
	Topic        string          `json:"topic,omitempty"`
	Question     string          `json:"question,omitempty"`
	Latex        string          `json:"latex,omitempty"`
	Image        string          `json:"image,omitempty"`
	AnswerFormat string          `json:"answer_format,omitempty"`
	Options      json.RawMessage `json:"options,omitempty"`
	Statements   json.RawMessage `json:"statements,omitempty"`
	Expressions  json.RawMessage `json:"expressions,omitempty"`
	Segments     json.RawMessage `json:"segments,omitempty"`
	Endings      json.RawMessage `json:"endings,omitempty"`
	Answer       json.RawMessage `json:"answer,omitempty"`
}

var errNotObject = errors.New("not a JSON object")

// field is one key/value pair of a JSON object, in enumeration order.
type field struct {
	Key   string
	Value json.RawMessage
}

// jsonKind returns the first significant byte of a raw JSON value,
// or 0 for an empty value.
func jsonKind(raw json.RawMessage) byte {
	t := bytes.TrimSpace(raw)
	if len(t) == 0 {
		return 0
	}
	return t[0]
}

// present reports whether a raw field carries a truthy value. Missing,
// null, false, zero and empty-string values count as absent.
func present(raw json.RawMessage) bool {
	t := string(bytes.TrimSpace(raw))
	switch t {
	case "", "null", "false", `""`, "0":
		return false
	}
	return true
}

// objectFields decodes a JSON object into its fields. Integer-like keys come
// first in ascending order, the rest keep their source order, the same
// enumeration order the question bank editor produces.
func objectFields(raw json.RawMessage) ([]field, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errNotObject
	}

	var out []field
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := kt.(string)
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, field{Key: key, Value: v})
	}

	var index, named []field
	for _, f := range out {
		if _, ok := arrayIndex(f.Key); ok {
			index = append(index, f)
		} else {
			named = append(named, f)
		}
	}
	sort.SliceStable(index, func(i, j int) bool {
		a, _ := arrayIndex(index[i].Key)
		b, _ := arrayIndex(index[j].Key)
		return a < b
	})
	return append(index, named...), nil
}

// arrayIndex parses canonical non-negative integer keys ("0", "12", not "012").
func arrayIndex(key string) (uint64, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil {
		return 0, false
	}
	return n, true
}

// arrayElems decodes a JSON array into its raw elements.
func arrayElems(raw json.RawMessage) ([]json.RawMessage, bool) {
	if jsonKind(raw) != '[' {
		return nil, false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, false
	}
	return elems, true
}

// objectMap decodes a JSON object into a lookup map.
func objectMap(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	if jsonKind(raw) != '{' {
		return nil, false
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false
	}
	return m, true
}

// scalarText renders a scalar JSON value as text. Strings are unquoted,
// numbers use their shortest decimal form and null becomes "".
func scalarText(raw json.RawMessage) string {
	t := bytes.TrimSpace(raw)
	if len(t) == 0 {
		return ""
	}
	switch t[0] {
	case '"':
		var s string
		if err := json.Unmarshal(t, &s); err == nil {
			return s
		}
	case 'n':
		return ""
	case '{', '[':
		return ""
	}
	if f, err := strconv.ParseFloat(string(t), 64); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strings.Trim(string(t), `"`)
}

// itemText returns the display text of a value that is either a scalar or
// an object carrying text or latex.
func itemText(raw json.RawMessage) string {
	m, ok := objectMap(raw)
	if !ok {
		return scalarText(raw)
	}
	if v, ok := m["text"]; ok && jsonKind(v) != 'n' {
		return scalarText(v)
	}
	if v, ok := m["latex"]; ok && jsonKind(v) != 'n' {
		return scalarText(v)
	}
	return ""
}

// hasTextOrLatex reports whether an object value carries text or latex.
func hasTextOrLatex(raw json.RawMessage) bool {
	m, ok := objectMap(raw)
	if !ok {
		return false
	}
	for _, k := range []string{"text", "latex"} {
		if v, ok := m[k]; ok && jsonKind(v) != 'n' {
			return true
		}
	}
	return false
}
