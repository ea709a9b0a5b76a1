package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "draft",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string", "enum": []any{"А", "Б"}},
			"latex":  map[string]any{"type": []any{"string", "null"}},
			"options": map[string]any{
				"type":     "array",
				"minItems": 5,
				"maxItems": float64(5),
				"items":    map[string]any{"type": "integer"},
			},
		},
		"required": []string{"answer"},
	}

	s := geminiSchema(def)
	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, "draft", s.Description)
	assert.Equal(t, []string{"answer"}, s.Required)

	require.Contains(t, s.Properties, "answer")
	assert.Equal(t, []string{"А", "Б"}, s.Properties["answer"].Enum)

	latex := s.Properties["latex"]
	assert.Equal(t, genai.TypeString, latex.Type)
	require.NotNil(t, latex.Nullable)
	assert.True(t, *latex.Nullable)

	opts := s.Properties["options"]
	assert.Equal(t, genai.TypeArray, opts.Type)
	assert.Equal(t, genai.TypeInteger, opts.Items.Type)
	require.NotNil(t, opts.MinItems)
	assert.EqualValues(t, 5, *opts.MinItems)
	assert.EqualValues(t, 5, *opts.MaxItems)
}

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "gemini-2.5-flash", resolveModel("gemini-flash", geminiAliases))
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-2.0-flash", geminiAliases))
}
