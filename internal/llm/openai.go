package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const openRouterURL = "https://openrouter.ai/api/v1"

// OpenAIProvider speaks the chat completions API. OpenRouter serves the
// same API, so it shares this type under a different name.
type OpenAIProvider struct {
	name   string
	client *openai.Client
	model  string
}

func NewOpenAIProvider(cfg ProviderConfig) (*OpenAIProvider, error) {
	return newChatProvider(OpenAI, cfg, "")
}

func NewOpenRouterProvider(cfg ProviderConfig) (*OpenAIProvider, error) {
	return newChatProvider(OpenRouter, cfg, openRouterURL)
}

func newChatProvider(name string, cfg ProviderConfig, defaultURL string) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s: missing API key", name)
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	switch {
	case cfg.BaseURL != "":
		oc.BaseURL = cfg.BaseURL
	case defaultURL != "":
		oc.BaseURL = defaultURL
	}
	return &OpenAIProvider{
		name:   name,
		client: openai.NewClientWithConfig(oc),
		model:  cfg.Model,
	}, nil
}

func (p *OpenAIProvider) Name() string  { return p.name }
func (p *OpenAIProvider) Model() string { return p.model }

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var msgs []openai.ChatCompletionMessage
	if req.System != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Prompt})

	cr := openai.ChatCompletionRequest{
		Model:               p.model,
		Messages:            msgs,
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
	}
	if req.Schema != nil {
		def, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			return nil, fmt.Errorf("marshal schema %q: %w", req.Schema.Name, err)
		}
		cr.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:        req.Schema.Name,
				Description: req.Schema.Description,
				Schema:      json.RawMessage(def),
				Strict:      true,
			},
		}
	}

	out, err := p.client.CreateChatCompletion(ctx, cr)
	if err != nil {
		return nil, p.wrapErr(err)
	}
	if len(out.Choices) == 0 {
		return nil, &Error{Provider: p.name, Kind: ErrInvalidOutput, Err: errors.New("no choices in reply")}
	}
	choice := out.Choices[0]
	content := json.RawMessage(choice.Message.Content)
	if choice.FinishReason == openai.FinishReasonLength {
		return nil, &Error{Provider: p.name, Kind: ErrTruncated, Content: content}
	}
	return &Response{
		Content: content,
		Model:   out.Model,
		Usage:   Usage{Input: out.Usage.PromptTokens, Output: out.Usage.CompletionTokens},
	}, nil
}

func (p *OpenAIProvider) wrapErr(err error) error {
	var (
		apiErr *openai.APIError
		reqErr *openai.RequestError
	)
	switch {
	case errors.As(err, &apiErr):
		return statusError(p.name, apiErr.HTTPStatusCode, err)
	case errors.As(err, &reqErr):
		return statusError(p.name, reqErr.HTTPStatusCode, err)
	}
	return statusError(p.name, 0, err)
}
