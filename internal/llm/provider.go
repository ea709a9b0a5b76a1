// Package llm talks to hosted language models. Every provider takes a
// single-turn prompt, asks for JSON matching a Schema and reports token
// usage so the calls can be logged and priced.
package llm

import (
	"context"
	"encoding/json"
)

type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	// Name is the provider name, e.g. "gemini".
	Name() string
	// Model is the resolved model ID requests are sent to.
	Model() string
}

// Request is one prompt. Purpose only labels the call in logs and events.
type Request struct {
	Purpose string
	System  string
	Prompt  string

	// Schema, when set, switches the provider to structured output and
	// the reply is checked against it.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

type Response struct {
	Content json.RawMessage
	Usage   Usage
	// Model is what the API reports it served, which may be more
	// specific than Provider.Model.
	Model string
}

type Usage struct {
	Input  int
	Output int
}

func (u Usage) Total() int { return u.Input + u.Output }

// resolveModel maps a short alias to a model ID. Unknown names pass through.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
