package session

import (
	"maps"
	"slices"
	"strings"

	"github.com/abhisek/nmt/internal/question"
)

// Answer is a student's answer to one slot. Which field is meaningful
// depends on Kind: Label for single choice, Pairs (stem key → ending
// label) for matching and Text for short answers.
type Answer struct {
	Kind  question.Kind     `json:"kind"`
	Label string            `json:"label,omitempty"`
	Pairs map[string]string `json:"pairs,omitempty"`
	Text  string            `json:"text,omitempty"`
}

// SingleAnswer selects an option label.
func SingleAnswer(label string) Answer {
	return Answer{Kind: question.KindSingle, Label: label}
}

// MatchingAnswer sets the whole stem → ending mapping.
func MatchingAnswer(pairs map[string]string) Answer {
	return Answer{Kind: question.KindMatching, Pairs: pairs}
}

// ShortAnswer sets the raw numeric answer text.
func ShortAnswer(text string) Answer {
	return Answer{Kind: question.KindShort, Text: text}
}

// Empty reports whether the answer carries nothing worth scoring.
func (a *Answer) Empty() bool {
	if a == nil {
		return true
	}
	switch a.Kind {
	case question.KindSingle:
		return a.Label == ""
	case question.KindMatching:
		return len(a.Pairs) == 0
	case question.KindShort:
		return a.Text == ""
	}
	return true
}

// PairKeys returns the answered stem keys in sorted order.
func (a *Answer) PairKeys() []string {
	if a == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(a.Pairs))
}

// normalized returns a copy safe to store in a slot.
func (a Answer) normalized() Answer {
	switch a.Kind {
	case question.KindShort:
		a.Text = strings.TrimSpace(a.Text)
	case question.KindMatching:
		a.Pairs = maps.Clone(a.Pairs)
		if a.Pairs == nil {
			a.Pairs = map[string]string{}
		}
	}
	return a
}

func (a *Answer) clone() *Answer {
	if a == nil {
		return nil
	}
	c := *a
	c.Pairs = maps.Clone(a.Pairs)
	return &c
}
