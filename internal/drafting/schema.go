package drafting

import "github.com/abhisek/nmt/internal/llm"

var labeled = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"label": map[string]any{"type": "string"},
			"text":  map[string]any{"type": "string"},
		},
		"required":             []any{"label", "text"},
		"additionalProperties": false,
	},
}

// DraftSchema is the response shape requested from the model. Fields that
// do not apply to the requested kind come back empty and are dropped when
// the draft is turned into a pool record.
var DraftSchema = &llm.Schema{
	Name:        "nmt-draft",
	Description: "One NMT mathematics exam question with its answer key",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "Question body in Ukrainian",
			},
			"latex": map[string]any{
				"type":        "string",
				"description": "Formula markup shown under the body, or empty",
			},
			"options":    withDescription(labeled, "single: five options labelled А, Б, В, Г, Д. Empty otherwise."),
			"statements": withDescription(labeled, "matching: stems labelled 1, 2, 3. Empty otherwise."),
			"endings":    withDescription(labeled, "matching: five endings labelled А, Б, В, Г, Д. Empty otherwise."),
			"answer": map[string]any{
				"type":        "string",
				"description": "single: the correct option label. short: the numeric answer with a comma as decimal separator. Empty for matching.",
			},
			"pairs": map[string]any{
				"type":        "array",
				"description": "matching: the correct ending label for every stem. Empty otherwise.",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"statement": map[string]any{"type": "string"},
						"label":     map[string]any{"type": "string"},
					},
					"required":             []any{"statement", "label"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"question", "latex", "options", "statements", "endings", "answer", "pairs"},
		"additionalProperties": false,
	},
}

func withDescription(def map[string]any, desc string) map[string]any {
	out := make(map[string]any, len(def)+1)
	for k, v := range def {
		out[k] = v
	}
	out["description"] = desc
	return out
}
