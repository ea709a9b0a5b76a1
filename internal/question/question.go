// Package question decodes raw pool records into typed exam questions.
//
// Pool records come in several historical shapes. Decoding happens once at
// the pool boundary: each record is classified and turned into exactly one
// of the Single, Matching or Short variants, so nothing downstream has to
// sniff field names again.
package question

// Kind is the interaction type of a question.
type Kind string

const (
	KindSingle   Kind = "single"
	KindMatching Kind = "matching"
	KindShort    Kind = "short"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindSingle, KindMatching, KindShort:
		return true
	}
	return false
}

// Question is a decoded pool record. Exactly one of Single, Matching or
// Short is set, matching Kind.
type Question struct {
	ID    int
	Topic string
	Kind  Kind

	// Presentation only; never used for scoring.
	Text  string
	Latex string
	Image string

	Single   *Single
	Matching *Matching
	Short    *Short

	// Record is the raw record the question was decoded from. It is what
	// gets persisted in session snapshots.
	Record Record
}

// Option is a single-choice option or an answer-key entry.
type Option struct {
	Label string `json:"label"`
	Text  string `json:"text,omitempty"`
	Latex string `json:"latex,omitempty"`
}

// Single is a question with one correct option label.
type Single struct {
	Options []Option
	// Answer lists the answer-key entries. Scoring accepts any of their
	// labels; the first entry is the canonical key.
	Answer []Option
}

// Item is one row of a matching question, either a stem or an ending.
type Item struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Pair maps a stem key to its correct ending label.
type Pair struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Matching is a question where each stem is paired with an ending.
type Matching struct {
	Left  []Item // stems, sorted by key
	Right []Item // endings, sorted by key
	Pairs []Pair // answer key in source order
}

// Short is an open numeric-answer question.
type Short struct {
	// Answer is the raw stored answer text, parsed leniently when scoring.
	Answer string
}

// Option returns the single-choice option with the given label.
func (q Question) Option(label string) (Option, bool) {
	if q.Single == nil {
		return Option{}, false
	}
	for _, o := range q.Single.Options {
		if o.Label == label {
			return o, true
		}
	}
	return Option{}, false
}

// Ending returns the text of the matching ending with the given key.
func (q Question) Ending(key string) (string, bool) {
	if q.Matching == nil {
		return "", false
	}
	for _, it := range q.Matching.Right {
		if it.Key == key {
			return it.Text, true
		}
	}
	return "", false
}
