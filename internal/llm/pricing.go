package llm

// price is USD per million tokens, from models.dev.
type price struct{ in, out float64 }

var prices = map[string]price{
	"claude-haiku-4-5":           {1, 5},
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-sonnet-4-20250514":   {3, 15},
	"claude-sonnet-4-5":          {3, 15},
	"claude-sonnet-4-5-20250929": {3, 15},

	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},

	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},

	"google/gemini-2.0-flash-001": {0.1, 0.4},
	"openai/gpt-4o-mini":          {0.15, 0.6},
}

// EstimateCost prices usage for model in USD. ok is false for models
// without a known price.
func EstimateCost(model string, u Usage) (usd float64, ok bool) {
	p, ok := prices[model]
	if !ok {
		return 0, false
	}
	return (float64(u.Input)*p.in + float64(u.Output)*p.out) / 1e6, true
}
