package scoring

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/abhisek/nmt/internal/question"
	"github.com/abhisek/nmt/internal/session"
)

// Placeholder stands in for a missing answer.
const Placeholder = "—"

// Incorrect describes a slot that was not fully correct, with text
// renditions of the student's and the keyed answer.
type Incorrect struct {
	Index        int           `json:"index"` // 1-based
	QuestionText string        `json:"questionText"`
	Kind         question.Kind `json:"type"`
	YourText     string        `json:"yourText"`
	CorrectText  string        `json:"correctText"`
	YourLatex    string        `json:"yourLatex,omitempty"`
	CorrectLatex string        `json:"correctLatex,omitempty"`
}

func incorrectEntry(i int, sl session.Slot) Incorrect {
	e := Incorrect{
		Index:        i + 1,
		QuestionText: sl.Question.Text,
		Kind:         sl.Kind,
		YourText:     Placeholder,
	}
	switch sl.Kind {
	case question.KindSingle:
		if s := sl.Question.Single; s != nil {
			keys := make([]string, len(s.Answer))
			for j, k := range s.Answer {
				keys[j] = optionText(k)
			}
			e.CorrectText = strings.Join(keys, ", ")
			if len(s.Answer) > 0 {
				e.CorrectLatex = s.Answer[0].Latex
			}
		}
		if !sl.Answer.Empty() {
			if o, ok := sl.Question.Option(sl.Answer.Label); ok {
				e.YourText = optionText(o)
				e.YourLatex = o.Latex
			}
		}
	case question.KindMatching:
		if m := sl.Question.Matching; m != nil {
			e.CorrectText = pairsText(m.Pairs, " → ")
		}
		if !sl.Answer.Empty() {
			e.YourText = pairsText(userPairs(sl.Answer), " → ")
		}
	case question.KindShort:
		e.CorrectText = Placeholder
		if s := sl.Question.Short; s != nil && s.Answer != "" {
			e.CorrectText = s.Answer
		}
		if !sl.Answer.Empty() {
			e.YourText = sl.Answer.Text
		}
	}
	return e
}

// optionText renders an option as "{label}) {text}".
func optionText(o question.Option) string {
	return fmt.Sprintf("%s) %s", o.Label, o.Text)
}

// pairsText renders pairs as "{key}{sep}{label}" joined by "; ".
func pairsText(pairs []question.Pair, sep string) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.Key + sep + p.Label
	}
	return strings.Join(parts, "; ")
}

// userPairs lists a matching answer in stem order: numeric keys ascending,
// then the remaining keys alphabetically.
func userPairs(a *session.Answer) []question.Pair {
	keys := a.PairKeys()
	sort.SliceStable(keys, func(i, j int) bool {
		x, errX := strconv.Atoi(keys[i])
		y, errY := strconv.Atoi(keys[j])
		switch {
		case errX == nil && errY == nil:
			return x < y
		case errX == nil:
			return true
		case errY == nil:
			return false
		}
		return keys[i] < keys[j]
	})
	pairs := make([]question.Pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, question.Pair{Key: k, Label: a.Pairs[k]})
	}
	return pairs
}
