package assembler

import (
	"math/rand/v2"
	"testing"

	"github.com/abhisek/nmt/internal/question"
)

type poolBuilder struct {
	nextID int
	qs     []question.Question
}

func (p *poolBuilder) add(kind question.Kind, topic string, n int) *poolBuilder {
	for i := 0; i < n; i++ {
		p.nextID++
		p.qs = append(p.qs, question.Question{ID: p.nextID, Kind: kind, Topic: topic})
	}
	return p
}

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// nmtPool has 20 single, 6 matching (3 numbers, 1 equations, 2 geometry)
// and one short question per required slot topic plus two spares.
func nmtPool() []question.Question {
	p := &poolBuilder{}
	p.add(question.KindSingle, TopicNumbers, 20)
	p.add(question.KindMatching, TopicNumbers, 3)
	p.add(question.KindMatching, TopicEquations, 1)
	p.add(question.KindMatching, TopicPlanimetry, 1)
	p.add(question.KindMatching, TopicStereometry, 1)
	p.add(question.KindShort, TopicFunctions, 1)
	p.add(question.KindShort, TopicProbability, 1)
	p.add(question.KindShort, TopicStereometry, 1)
	p.add(question.KindShort, TopicParameter, 1)
	p.add(question.KindShort, TopicNumbers, 2)
	return p.qs
}

func assertNoDuplicates(t *testing.T, qs []question.Question) {
	t.Helper()
	seen := make(map[int]bool)
	for _, q := range qs {
		if seen[q.ID] {
			t.Fatalf("question %d appears twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func kindsOf(qs []question.Question) []question.Kind {
	out := make([]question.Kind, len(qs))
	for i, q := range qs {
		out[i] = q.Kind
	}
	return out
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Total() != 22 {
		t.Errorf("Total() = %d, want 22", cfg.Total())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if len(cfg.ShortSlots) != cfg.Short {
		t.Errorf("short slots = %d, want %d", len(cfg.ShortSlots), cfg.Short)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"negative", Config{Single: -1, Matching: 3}},
		{"empty", Config{}},
		{"quota without topics", Config{Single: 1, MatchingQuota: []TopicQuota{{Count: 1}}}},
	}
	for _, tc := range tests {
		if err := tc.cfg.Validate(); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestNewVariants(t *testing.T) {
	cfg := DefaultConfig()
	if a, err := New("", cfg, nil); err != nil {
		t.Fatalf("New(\"\"): %v", err)
	} else if _, ok := a.(*Balanced); !ok {
		t.Errorf("default variant = %T, want *Balanced", a)
	}
	if a, err := New(VariantShuffled, cfg, nil); err != nil {
		t.Fatalf("New(shuffled): %v", err)
	} else if _, ok := a.(*Shuffled); !ok {
		t.Errorf("shuffled variant = %T, want *Shuffled", a)
	}
	if _, err := New("weighted", cfg, nil); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestBalancedConcreteScenario(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		got := NewBalanced(DefaultConfig(), testRand(seed)).Assemble(nmtPool())

		if len(got) != 22 {
			t.Fatalf("seed %d: len = %d, want 22", seed, len(got))
		}
		assertNoDuplicates(t, got)

		for i, k := range kindsOf(got) {
			want := question.KindSingle
			switch {
			case i >= 18:
				want = question.KindShort
			case i >= 15:
				want = question.KindMatching
			}
			if k != want {
				t.Fatalf("seed %d: slot %d kind = %q, want %q", seed, i+1, k, want)
			}
		}

		geometry := 0
		algebraTopics := make(map[string]bool)
		for _, q := range got[15:18] {
			switch q.Topic {
			case TopicPlanimetry, TopicStereometry:
				geometry++
			default:
				algebraTopics[q.Topic] = true
			}
		}
		if geometry != 1 {
			t.Errorf("seed %d: geometry matching = %d, want 1", seed, geometry)
		}
		if len(algebraTopics) != 2 {
			t.Errorf("seed %d: distinct algebra topics = %d, want 2", seed, len(algebraTopics))
		}
	}
}

func TestBalancedShortSlotTopics(t *testing.T) {
	cfg := DefaultConfig()
	for seed := uint64(1); seed <= 20; seed++ {
		got := NewBalanced(cfg, testRand(seed)).Assemble(nmtPool())
		shorts := got[len(got)-4:]
		for i, q := range shorts {
			if q.Topic != cfg.ShortSlots[i] {
				t.Errorf("seed %d: short slot %d topic = %q, want %q", seed, 19+i, q.Topic, cfg.ShortSlots[i])
			}
		}
	}
}

func TestBalancedShortFallback(t *testing.T) {
	p := &poolBuilder{}
	p.add(question.KindShort, TopicFunctions, 1)
	p.add(question.KindShort, TopicNumbers, 2)
	pool := p.qs

	got := NewBalanced(DefaultConfig(), testRand(7)).Assemble(pool)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	assertNoDuplicates(t, got)
	if got[0].Topic != TopicFunctions {
		t.Errorf("slot 19 topic = %q, want %q", got[0].Topic, TopicFunctions)
	}
	// Substitutes are taken in pool order.
	if got[1].ID != 2 || got[2].ID != 3 {
		t.Errorf("substitutes = %d, %d, want 2, 3", got[1].ID, got[2].ID)
	}
}

func TestBalancedShortKeepsOwnTopicWhenDepleted(t *testing.T) {
	// No question for slots 19 and 20; the two that exist belong to the
	// later slots and must not be spent as substitutes.
	p := &poolBuilder{}
	p.add(question.KindShort, TopicParameter, 1)
	p.add(question.KindShort, TopicStereometry, 1)

	for seed := uint64(1); seed <= 10; seed++ {
		got := NewBalanced(DefaultConfig(), testRand(seed)).Assemble(p.qs)
		if len(got) != 2 {
			t.Fatalf("seed %d: len = %d, want 2", seed, len(got))
		}
		if got[0].Topic != TopicStereometry || got[1].Topic != TopicParameter {
			t.Errorf("seed %d: topics = %q, %q, want slot order %q, %q",
				seed, got[0].Topic, got[1].Topic, TopicStereometry, TopicParameter)
		}
	}
}

func TestBalancedShortSubstitutesLeftovers(t *testing.T) {
	p := &poolBuilder{}
	p.add(question.KindShort, TopicNumbers, 1)
	p.add(question.KindShort, TopicParameter, 1)
	p.add(question.KindShort, TopicNumbers, 1)

	got := NewBalanced(DefaultConfig(), testRand(5)).Assemble(p.qs)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	assertNoDuplicates(t, got)
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("substitutes = %d, %d, want 1, 3", got[0].ID, got[1].ID)
	}
	if got[2].Topic != TopicParameter {
		t.Errorf("last short topic = %q, want %q", got[2].Topic, TopicParameter)
	}
}

func TestBalancedMatchingFallback(t *testing.T) {
	// Only one algebra topic and no geometry: the quota falls short and the
	// remaining places are filled from any matching question.
	p := &poolBuilder{}
	p.add(question.KindMatching, TopicNumbers, 4)
	p.add(question.KindMatching, "Інше", 1)

	got := NewBalanced(DefaultConfig(), testRand(3)).Assemble(p.qs)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	assertNoDuplicates(t, got)
	if got[0].Topic != TopicNumbers {
		t.Errorf("first matching topic = %q, want %q", got[0].Topic, TopicNumbers)
	}
}

func TestBalancedDepletedPool(t *testing.T) {
	p := &poolBuilder{}
	p.add(question.KindSingle, TopicNumbers, 4)
	p.add(question.KindMatching, TopicPlanimetry, 1)

	got := NewBalanced(DefaultConfig(), testRand(1)).Assemble(p.qs)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if got[4].Kind != question.KindMatching {
		t.Errorf("last kind = %q, want matching", got[4].Kind)
	}

	if got := NewBalanced(DefaultConfig(), testRand(1)).Assemble(nil); len(got) != 0 {
		t.Errorf("empty pool produced %d questions", len(got))
	}
}

func TestBalancedDropsRepeatedIDs(t *testing.T) {
	pool := nmtPool()
	pool = append(pool, pool[:10]...)
	for seed := uint64(1); seed <= 20; seed++ {
		assertNoDuplicates(t, NewBalanced(DefaultConfig(), testRand(seed)).Assemble(pool))
	}
}

func TestShuffledShortsLast(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		got := NewShuffled(DefaultConfig(), testRand(seed)).Assemble(nmtPool())
		if len(got) != 22 {
			t.Fatalf("seed %d: len = %d, want 22", seed, len(got))
		}
		assertNoDuplicates(t, got)

		singles, matchings := 0, 0
		for i, q := range got {
			if i >= 18 {
				if q.Kind != question.KindShort {
					t.Fatalf("seed %d: slot %d kind = %q, want short", seed, i+1, q.Kind)
				}
				continue
			}
			switch q.Kind {
			case question.KindShort:
				t.Fatalf("seed %d: short question at slot %d", seed, i+1)
			case question.KindMatching:
				matchings++
			default:
				singles++
			}
		}
		if singles != 15 || matchings != 3 {
			t.Errorf("seed %d: singles=%d matchings=%d, want 15/3", seed, singles, matchings)
		}
	}
}

func TestShuffledBackfill(t *testing.T) {
	p := &poolBuilder{}
	p.add(question.KindSingle, TopicNumbers, 25)
	p.add(question.KindMatching, TopicNumbers, 1)
	p.add(question.KindShort, TopicParameter, 2)

	got := NewShuffled(DefaultConfig(), testRand(9)).Assemble(p.qs)
	if len(got) != 22 {
		t.Fatalf("len = %d, want 22", len(got))
	}
	assertNoDuplicates(t, got)
	for i, q := range got[20:] {
		if q.Kind != question.KindShort {
			t.Errorf("slot %d kind = %q, want short", 21+i, q.Kind)
		}
	}
	for i, q := range got[:20] {
		if q.Kind == question.KindShort {
			t.Errorf("short question at slot %d", i+1)
		}
	}
}

func TestShuffledDepletedPool(t *testing.T) {
	p := &poolBuilder{}
	p.add(question.KindSingle, TopicNumbers, 3)
	p.add(question.KindShort, TopicParameter, 1)

	got := NewShuffled(DefaultConfig(), testRand(2)).Assemble(p.qs)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	if got[3].Kind != question.KindShort {
		t.Errorf("last kind = %q, want short", got[3].Kind)
	}
}
