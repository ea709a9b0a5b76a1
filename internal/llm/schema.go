package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is the JSON shape a Request asks for. Providers pass Definition
// to their native structured-output option and the result is checked
// against it before it is returned.
type Schema struct {
	// Name is sent as the schema name where the API wants one.
	Name        string
	Description string
	Definition  map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		// Round-trip through JSON so Go-typed values ([]string etc.)
		// become the plain any tree the compiler expects.
		data, err := json.Marshal(s.Definition)
		if err != nil {
			s.err = fmt.Errorf("marshal schema %q: %w", s.Name, err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			s.err = fmt.Errorf("parse schema %q: %w", s.Name, err)
			return
		}
		url := "schema://nmt/llm/" + s.Name + ".json"
		c := jsonschema.NewCompiler()
		if err := c.AddResource(url, def); err != nil {
			s.err = fmt.Errorf("add schema %q: %w", s.Name, err)
			return
		}
		s.compiled, s.err = c.Compile(url)
	})
	return s.compiled, s.err
}

// Check validates raw against the schema.
func (s *Schema) Check(raw json.RawMessage) error {
	compiled, err := s.compile()
	if err != nil {
		return err
	}
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return compiled.Validate(v)
}

// checked validates every successful response against the request schema.
// A reply that fails the check is returned along with the error so its
// usage can still be logged.
type checked struct {
	Provider
}

func (c checked) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := c.Provider.Generate(ctx, req)
	if err != nil || req.Schema == nil {
		return resp, err
	}
	if err := req.Schema.Check(resp.Content); err != nil {
		return resp, &Error{Provider: c.Name(), Kind: ErrInvalidOutput, Content: resp.Content, Err: err}
	}
	return resp, nil
}
