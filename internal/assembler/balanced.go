package assembler

import (
	"math/rand/v2"

	"github.com/abhisek/nmt/internal/question"
)

// Balanced is the topic-balanced assembler. Output order is all
// single-choice, then matching, then short-answer questions.
type Balanced struct {
	cfg Config
	rng *rand.Rand
}

// NewBalanced creates a topic-balanced assembler.
func NewBalanced(cfg Config, rng *rand.Rand) *Balanced {
	if rng == nil {
		rng = NewRand()
	}
	return &Balanced{cfg: cfg, rng: rng}
}

// Assemble implements Assembler.
func (b *Balanced) Assemble(pool []question.Question) []question.Question {
	singles, matchings, shorts := byKind(pool)

	out := make([]question.Question, 0, b.cfg.Total())
	out = append(out, take(Shuffle(b.rng, singles), b.cfg.Single)...)
	out = append(out, b.pickMatching(matchings)...)
	out = append(out, b.pickShort(shorts)...)
	return out
}

// pickMatching fills the topic quotas in order, then tops up from any
// remaining matching question.
func (b *Balanced) pickMatching(matchings []question.Question) []question.Question {
	picked := make([]question.Question, 0, b.cfg.Matching)
	used := make(map[int]bool)

	remaining := func(topic string) []question.Question {
		var out []question.Question
		for _, q := range matchings {
			if q.Topic == topic && !used[q.ID] {
				out = append(out, q)
			}
		}
		return out
	}
	add := func(q question.Question) {
		picked = append(picked, q)
		used[q.ID] = true
	}

	for _, quota := range b.cfg.MatchingQuota {
		usedTopics := make(map[string]bool)
		for n := 0; n < quota.Count && len(picked) < b.cfg.Matching; n++ {
			var available []string
			for _, t := range quota.Topics {
				if quota.Distinct && usedTopics[t] {
					continue
				}
				if len(remaining(t)) > 0 {
					available = append(available, t)
				}
			}
			if len(available) == 0 {
				break
			}
			topic := available[0]
			if quota.Random {
				topic = available[b.rng.IntN(len(available))]
			}
			add(Shuffle(b.rng, remaining(topic))[0])
			usedTopics[topic] = true
		}
	}

	if len(picked) < b.cfg.Matching {
		var rest []question.Question
		for _, q := range matchings {
			if !used[q.ID] {
				rest = append(rest, q)
			}
		}
		for _, q := range take(Shuffle(b.rng, rest), b.cfg.Matching-len(picked)) {
			add(q)
		}
	}
	return picked
}

// pickShort assigns one question per short slot. Every slot first takes a
// question of its own topic where one exists; slots still empty then take
// leftovers, in pool order for topic slots and at random beyond ShortSlots.
// Slots left empty by a depleted pool are dropped.
func (b *Balanced) pickShort(shorts []question.Question) []question.Question {
	slots := make([]*question.Question, b.cfg.Short)
	used := make(map[int]bool)
	assign := func(slot int, q question.Question) {
		slots[slot] = &q
		used[q.ID] = true
	}

	for slot := 0; slot < b.cfg.Short && slot < len(b.cfg.ShortSlots); slot++ {
		var candidates []question.Question
		for _, q := range shorts {
			if !used[q.ID] && q.Topic == b.cfg.ShortSlots[slot] {
				candidates = append(candidates, q)
			}
		}
		if len(candidates) > 0 {
			assign(slot, Shuffle(b.rng, candidates)[0])
		}
	}

	for slot := range slots {
		if slots[slot] != nil {
			continue
		}
		var unused []question.Question
		for _, q := range shorts {
			if !used[q.ID] {
				unused = append(unused, q)
			}
		}
		if len(unused) == 0 {
			break
		}
		if slot < len(b.cfg.ShortSlots) {
			assign(slot, unused[0])
		} else {
			assign(slot, unused[b.rng.IntN(len(unused))])
		}
	}

	picked := make([]question.Question, 0, b.cfg.Short)
	for _, q := range slots {
		if q != nil {
			picked = append(picked, *q)
		}
	}
	return picked
}
