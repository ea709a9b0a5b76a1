package scoring

import (
	"github.com/abhisek/nmt/internal/question"
	"github.com/abhisek/nmt/internal/session"
)

// Answer is the per-question detail stored with an attempt.
type Answer struct {
	Index         int           `json:"index"` // 1-based
	QuestionText  string        `json:"questionText"`
	QuestionLatex string        `json:"questionLatex,omitempty"`
	Image         string        `json:"image,omitempty"`
	Kind          question.Kind `json:"type"`
	Points        int           `json:"points"`
	// UserAnswer is a map for matching questions and a string otherwise.
	UserAnswer    any    `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	// Options holds the choice options of single-choice questions and the
	// keyed pairs of matching questions.
	Options      any    `json:"options"`
	YourLatex    string `json:"yourLatex,omitempty"`
	CorrectLatex string `json:"correctLatex,omitempty"`
}

// Report is the attempt payload handed to the attempt sink.
type Report struct {
	SessionID    string      `json:"sessionId,omitempty"`
	StudentName  string      `json:"name"`
	StudentEmail string      `json:"email"`
	Score        int         `json:"score"`
	Percent      int         `json:"percent"`
	Comment      string      `json:"comment"`
	Answers      []Answer    `json:"answers"`
	Incorrect    []Incorrect `json:"incorrect"`
}

// BuildReport assembles the attempt payload for a session result.
func BuildReport(name, email string, slots []session.Slot, r Result) Report {
	incorrect := r.Incorrect
	if incorrect == nil {
		incorrect = []Incorrect{}
	}
	return Report{
		StudentName:  name,
		StudentEmail: email,
		Score:        r.Score,
		Percent:      r.Percent,
		Comment:      Comment(r.Percent),
		Answers:      FullAnswers(slots),
		Incorrect:    incorrect,
	}
}

// FullAnswers returns the per-question detail of every slot. Points and
// correctness agree with Evaluate; the correct-answer text of single-choice
// questions shows the canonical (first) key entry.
func FullAnswers(slots []session.Slot) []Answer {
	out := make([]Answer, len(slots))
	for i, sl := range slots {
		o := ScoreSlot(sl)
		a := Answer{
			Index:         i + 1,
			QuestionText:  sl.Question.Text,
			QuestionLatex: sl.Question.Latex,
			Image:         sl.Question.Image,
			Kind:          sl.Kind,
			Points:        o.Points,
			IsCorrect:     o.Correct,
			UserAnswer:    "",
		}
		switch sl.Kind {
		case question.KindSingle:
			a.Options = []question.Option{}
			if s := sl.Question.Single; s != nil {
				if len(s.Options) > 0 {
					a.Options = s.Options
				}
				if len(s.Answer) > 0 {
					a.CorrectAnswer = optionText(s.Answer[0])
					a.CorrectLatex = s.Answer[0].Latex
				}
			}
			if !sl.Answer.Empty() {
				a.UserAnswer = sl.Answer.Label
				if o, ok := sl.Question.Option(sl.Answer.Label); ok {
					a.YourLatex = o.Latex
				}
			}
		case question.KindMatching:
			a.Options = []question.Pair{}
			if m := sl.Question.Matching; m != nil {
				a.CorrectAnswer = pairsText(m.Pairs, "→")
				if len(m.Pairs) > 0 {
					a.Options = m.Pairs
				}
			}
			a.UserAnswer = map[string]string{}
			if sl.Answer != nil && sl.Answer.Pairs != nil {
				a.UserAnswer = sl.Answer.Pairs
			}
		case question.KindShort:
			a.Options = []question.Option{}
			if s := sl.Question.Short; s != nil {
				a.CorrectAnswer = s.Answer
			}
			if sl.Answer != nil {
				a.UserAnswer = sl.Answer.Text
			}
		}
		out[i] = a
	}
	return out
}
