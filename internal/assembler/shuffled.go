package assembler

import (
	"math/rand/v2"

	"github.com/abhisek/nmt/internal/question"
)

// Shuffled is the unconstrained assembler: per-type random samples with
// single-choice and matching questions interleaved, and short-answer
// questions always forming the final block.
type Shuffled struct {
	cfg Config
	rng *rand.Rand
}

// NewShuffled creates an unconstrained assembler.
func NewShuffled(cfg Config, rng *rand.Rand) *Shuffled {
	if rng == nil {
		rng = NewRand()
	}
	return &Shuffled{cfg: cfg, rng: rng}
}

// Assemble implements Assembler.
func (s *Shuffled) Assemble(pool []question.Question) []question.Question {
	singles, matchings, shorts := byKind(pool)

	singles = Shuffle(s.rng, singles)
	matchings = Shuffle(s.rng, matchings)

	pickedSingles := take(singles, s.cfg.Single)
	pickedMatching := take(matchings, s.cfg.Matching)
	pickedShort := take(Shuffle(s.rng, shorts), s.cfg.Short)

	head := make([]question.Question, 0, s.cfg.Total())
	head = append(head, pickedSingles...)
	head = append(head, pickedMatching...)

	// Backfill from unused non-short questions so shorts stay last.
	if deficit := s.cfg.Total() - len(head) - len(pickedShort); deficit > 0 {
		var spare []question.Question
		spare = append(spare, singles[len(pickedSingles):]...)
		spare = append(spare, matchings[len(pickedMatching):]...)
		head = append(head, take(Shuffle(s.rng, spare), deficit)...)
	}

	return append(Shuffle(s.rng, head), pickedShort...)
}
