package exam

import (
	"github.com/abhisek/nmt/internal/question"
	"github.com/abhisek/nmt/internal/session"
)

// OptionView is one choosable row: a single-choice option or a matching
// ending.
type OptionView struct {
	Label string
	Text  string
	// Chosen is set for the selected single-choice option and for endings
	// used by at least one stem.
	Chosen bool
}

// StemView is one matching stem with the ending currently paired to it.
type StemView struct {
	Key    string
	Text   string
	Chosen string // ending label, empty when unpaired
}

// View is the data needed to draw one question, independent of styling.
// Malformed questions produce empty collections, never a panic.
type View struct {
	Kind    question.Kind
	Text    string
	Latex   string
	Image   string
	Flagged bool

	Options []OptionView // single
	Stems   []StemView   // matching
	Endings []OptionView // matching
	Short   string       // short: the raw answer text
}

// BuildView maps a slot and its answer to a View.
func BuildView(sl session.Slot) View {
	q := sl.Question
	v := View{
		Kind:    sl.Kind,
		Text:    q.Text,
		Latex:   q.Latex,
		Image:   q.Image,
		Flagged: sl.Flagged,
	}

	switch sl.Kind {
	case question.KindSingle:
		if q.Single == nil {
			break
		}
		var chosen string
		if sl.Answer != nil {
			chosen = sl.Answer.Label
		}
		for _, o := range q.Single.Options {
			v.Options = append(v.Options, OptionView{
				Label:  o.Label,
				Text:   displayText(o.Text, o.Latex),
				Chosen: chosen != "" && o.Label == chosen,
			})
		}

	case question.KindMatching:
		if q.Matching == nil {
			break
		}
		var pairs map[string]string
		if sl.Answer != nil {
			pairs = sl.Answer.Pairs
		}
		used := make(map[string]bool, len(pairs))
		for _, label := range pairs {
			used[label] = true
		}
		for _, it := range q.Matching.Left {
			v.Stems = append(v.Stems, StemView{Key: it.Key, Text: it.Text, Chosen: pairs[it.Key]})
		}
		for _, it := range q.Matching.Right {
			v.Endings = append(v.Endings, OptionView{Label: it.Key, Text: it.Text, Chosen: used[it.Key]})
		}

	case question.KindShort:
		if sl.Answer != nil {
			v.Short = sl.Answer.Text
		}
	}
	return v
}

func displayText(text, latex string) string {
	if text == "" {
		return latex
	}
	return text
}
