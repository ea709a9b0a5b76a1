// Package assembler selects and orders the questions of one exam session.
package assembler

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/nmt/internal/question"
)

// Topic labels used by the NMT mathematics pool.
const (
	TopicNumbers     = "Числа і вирази"
	TopicEquations   = "Рівняння і нерівності"
	TopicFunctions   = "Функції, прогресії"
	TopicProbability = "Елементи комбінаторики, початки теорії ймовірностей та елементи статистики"
	TopicPlanimetry  = "Планіметрія"
	TopicStereometry = "Стереометрія"
	TopicParameter   = "Параметр"
)

// Default NMT question counts.
const (
	DefaultSingle   = 15
	DefaultMatching = 3
	DefaultShort    = 4
)

// Variant names accepted by New.
const (
	VariantBalanced = "balanced"
	VariantShuffled = "shuffled"
)

// Assembler picks an ordered question sequence from a pool.
//
// Implementations never fail: a pool that cannot satisfy the configured
// counts yields a shorter sequence. No question ID appears twice.
type Assembler interface {
	Assemble(pool []question.Question) []question.Question
}

// TopicQuota reserves matching questions for a topic category.
type TopicQuota struct {
	Topics []string `mapstructure:"topics" yaml:"topics"`
	Count  int      `mapstructure:"count" yaml:"count"`
	// Distinct forbids drawing two questions of the same topic.
	Distinct bool `mapstructure:"distinct" yaml:"distinct"`
	// Random picks among available topics at random instead of in list order.
	Random bool `mapstructure:"random" yaml:"random"`
}

// Config holds the per-type counts and topic rules.
type Config struct {
	Single        int          `mapstructure:"single" yaml:"single"`
	Matching      int          `mapstructure:"matching" yaml:"matching"`
	Short         int          `mapstructure:"short" yaml:"short"`
	MatchingQuota []TopicQuota `mapstructure:"matching_quota" yaml:"matching_quota"`
	// ShortSlots is the required topic of each short-answer slot, in order.
	ShortSlots []string `mapstructure:"short_slots" yaml:"short_slots"`
}

// DefaultConfig returns the NMT mathematics layout: 15 single-choice,
// 3 matching (two distinct algebra topics and one geometry topic) and
// 4 short-answer questions bound to slots 19–22.
func DefaultConfig() Config {
	return Config{
		Single:   DefaultSingle,
		Matching: DefaultMatching,
		Short:    DefaultShort,
		MatchingQuota: []TopicQuota{
			{
				Topics:   []string{TopicNumbers, TopicEquations, TopicFunctions, TopicProbability},
				Count:    2,
				Distinct: true,
			},
			{
				Topics: []string{TopicPlanimetry, TopicStereometry},
				Count:  1,
				Random: true,
			},
		},
		ShortSlots: []string{TopicFunctions, TopicProbability, TopicStereometry, TopicParameter},
	}
}

// Total is the target sequence length.
func (c Config) Total() int {
	return c.Single + c.Matching + c.Short
}

// Validate checks the configuration for impossible values.
func (c Config) Validate() error {
	if c.Single < 0 || c.Matching < 0 || c.Short < 0 {
		return fmt.Errorf("question counts must not be negative (single=%d matching=%d short=%d)", c.Single, c.Matching, c.Short)
	}
	if c.Total() == 0 {
		return fmt.Errorf("exam has no questions")
	}
	for i, q := range c.MatchingQuota {
		if q.Count < 0 {
			return fmt.Errorf("matching quota %d: negative count", i)
		}
		if len(q.Topics) == 0 && q.Count > 0 {
			return fmt.Errorf("matching quota %d: no topics", i)
		}
	}
	return nil
}

// New returns the assembler for the named variant. An empty name selects
// the topic-balanced variant. A nil rng is replaced with a randomly seeded one.
func New(variant string, cfg Config, rng *rand.Rand) (Assembler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch variant {
	case "", VariantBalanced:
		return NewBalanced(cfg, rng), nil
	case VariantShuffled:
		return NewShuffled(cfg, rng), nil
	default:
		return nil, fmt.Errorf("unknown assembler variant %q", variant)
	}
}

// NewRand returns a randomly seeded generator.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// byKind splits a pool by question kind, dropping repeated IDs.
func byKind(pool []question.Question) (singles, matchings, shorts []question.Question) {
	seen := make(map[int]bool, len(pool))
	for _, q := range pool {
		if seen[q.ID] {
			continue
		}
		seen[q.ID] = true
		switch q.Kind {
		case question.KindShort:
			shorts = append(shorts, q)
		case question.KindMatching:
			matchings = append(matchings, q)
		default:
			singles = append(singles, q)
		}
	}
	return singles, matchings, shorts
}

// take returns at most n leading elements.
func take[T any](s []T, n int) []T {
	if n < len(s) {
		return s[:n]
	}
	return s
}
