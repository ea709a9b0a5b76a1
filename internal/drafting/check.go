package drafting

import (
	"fmt"

	"github.com/abhisek/nmt/internal/question"
	"github.com/abhisek/nmt/internal/scoring"
)

// ValidationError describes why a draft was rejected.
type ValidationError struct {
	Check     string
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("draft check %q: %s", e.Check, e.Message)
}

func invalid(check, format string, args ...any) *ValidationError {
	return &ValidationError{Check: check, Message: fmt.Sprintf(format, args...), Retryable: true}
}

const maxBodyLen = 1000

// checkDraft verifies a decoded draft against the kind it was requested
// as. It runs after the record has passed the pool-record schema.
func checkDraft(q question.Question, want question.Kind) *ValidationError {
	if q.Text == "" && q.Latex == "" {
		return invalid("body", "question and latex are both empty")
	}
	if len([]rune(q.Text)) > maxBodyLen {
		return invalid("body", "question exceeds %d characters", maxBodyLen)
	}
	if q.Kind != want {
		return invalid("kind", "draft classifies as %s, want %s", q.Kind, want)
	}

	switch q.Kind {
	case question.KindSingle:
		return checkSingle(q)
	case question.KindMatching:
		return checkMatching(q)
	case question.KindShort:
		if _, ok := scoring.NormalizeNumber(q.Short.Answer); !ok {
			return invalid("short", "answer %q is not a number", q.Short.Answer)
		}
	}
	return nil
}

func checkSingle(q question.Question) *ValidationError {
	s := q.Single
	if len(s.Options) < 2 {
		return invalid("single", "%d options, want at least 2", len(s.Options))
	}
	seen := make(map[string]bool, len(s.Options))
	for _, o := range s.Options {
		if o.Label == "" || seen[o.Label] {
			return invalid("single", "option label %q is empty or repeated", o.Label)
		}
		seen[o.Label] = true
	}
	if len(s.Answer) == 0 {
		return invalid("single", "answer key is empty")
	}
	if !seen[s.Answer[0].Label] {
		return invalid("single", "answer %q is not an option", s.Answer[0].Label)
	}
	return nil
}

func checkMatching(q question.Question) *ValidationError {
	m := q.Matching
	if len(m.Left) < 2 {
		return invalid("matching", "%d stems, want at least 2", len(m.Left))
	}
	if len(m.Right) < len(m.Left) {
		return invalid("matching", "%d endings for %d stems", len(m.Right), len(m.Left))
	}
	endings := make(map[string]bool, len(m.Right))
	for _, it := range m.Right {
		endings[it.Key] = true
	}
	stems := make(map[string]bool, len(m.Left))
	for _, it := range m.Left {
		stems[it.Key] = true
	}
	paired := make(map[string]bool, len(m.Pairs))
	for _, p := range m.Pairs {
		if !stems[p.Key] {
			return invalid("matching", "answer names unknown stem %q", p.Key)
		}
		if !endings[p.Label] {
			return invalid("matching", "stem %s points at unknown ending %q", p.Key, p.Label)
		}
		paired[p.Key] = true
	}
	for _, it := range m.Left {
		if !paired[it.Key] {
			return invalid("matching", "stem %s has no answer", it.Key)
		}
	}
	if len(paired) != len(m.Pairs) {
		return invalid("matching", "a stem is paired more than once")
	}
	return nil
}
