// Package scoring evaluates a finished exam session.
//
// Evaluation is a pure function of the final slot state: calling it twice on
// the same slots yields the same Result.
package scoring

import (
	"fmt"
	"math"

	"github.com/abhisek/nmt/internal/question"
	"github.com/abhisek/nmt/internal/session"
)

const (
	// MaxScore is the NMT mathematics maximum: 15 single-choice points,
	// 3 matching questions of 3 pairs and 4 short answers of 2 points.
	MaxScore = 32

	// SinglePoints is awarded for a correct single-choice answer.
	SinglePoints = 1

	// ShortPoints is awarded for a correct short answer. There is no
	// partial credit.
	ShortPoints = 2

	// Tolerance is the largest difference at which two short answers are
	// still considered equal.
	Tolerance = 1e-6
)

// Outcome is the evaluation of one slot.
type Outcome struct {
	Index   int // 0-based slot index
	Kind    question.Kind
	Points  int
	Max     int
	Correct bool
}

// Result is the evaluation of a whole session.
type Result struct {
	Score     int         `json:"score"`
	Percent   int         `json:"percent"`
	Outcomes  []Outcome   `json:"-"`
	Incorrect []Incorrect `json:"incorrect"`
}

// Comment returns the qualitative comment for the result.
func (r Result) Comment() string {
	return Comment(r.Percent)
}

// ZeroResult is the fallback result used when evaluation fails.
func ZeroResult() Result {
	return Result{Incorrect: []Incorrect{}}
}

// Evaluate scores the slots against MaxScore.
func Evaluate(slots []session.Slot) Result {
	return EvaluateMax(slots, MaxScore)
}

// EvaluateMax scores the slots with a custom maximum score, used for
// non-standard exam layouts. The percentage is clamped to 0..100.
func EvaluateMax(slots []session.Slot, maxScore int) Result {
	r := Result{
		Outcomes:  make([]Outcome, len(slots)),
		Incorrect: []Incorrect{},
	}
	for i, sl := range slots {
		o := ScoreSlot(sl)
		o.Index = i
		r.Outcomes[i] = o
		r.Score += o.Points
		if !o.Correct {
			r.Incorrect = append(r.Incorrect, incorrectEntry(i, sl))
		}
	}
	r.Percent = Percent(r.Score, maxScore)
	return r
}

// SafeEvaluate is Evaluate with panics from unexpected slot data turned
// into ZeroResult and an error.
func SafeEvaluate(slots []session.Slot, maxScore int) (r Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			r = ZeroResult()
			err = fmt.Errorf("evaluate session: %v", p)
		}
	}()
	return EvaluateMax(slots, maxScore), nil
}

// ScoreSlot evaluates a single slot. Index is left zero.
func ScoreSlot(sl session.Slot) Outcome {
	switch sl.Kind {
	case question.KindMatching:
		return scoreMatching(sl)
	case question.KindShort:
		return scoreShort(sl)
	default:
		return scoreSingle(sl)
	}
}

// scoreSingle awards a point when the chosen label is any answer-key label.
func scoreSingle(sl session.Slot) Outcome {
	o := Outcome{Kind: question.KindSingle, Max: SinglePoints}
	if sl.Answer.Empty() || sl.Question.Single == nil {
		return o
	}
	for _, key := range sl.Question.Single.Answer {
		if key.Label == sl.Answer.Label {
			o.Points = SinglePoints
			o.Correct = true
			break
		}
	}
	return o
}

// scoreMatching awards a point per stem paired with its keyed ending.
// The question is correct only when every pair matches.
func scoreMatching(sl session.Slot) Outcome {
	o := Outcome{Kind: question.KindMatching}
	var pairs []question.Pair
	if sl.Question.Matching != nil {
		pairs = sl.Question.Matching.Pairs
	}
	o.Max = len(pairs)
	for _, p := range pairs {
		if sl.Answer == nil {
			break
		}
		if got := sl.Answer.Pairs[p.Key]; got != "" && got == p.Label {
			o.Points++
		}
	}
	o.Correct = o.Points == o.Max
	return o
}

// scoreShort awards ShortPoints when both numbers parse and agree within
// Tolerance.
func scoreShort(sl session.Slot) Outcome {
	o := Outcome{Kind: question.KindShort, Max: ShortPoints}
	if sl.Answer.Empty() || sl.Question.Short == nil {
		return o
	}
	if NumbersEqual(sl.Answer.Text, sl.Question.Short.Answer) {
		o.Points = ShortPoints
		o.Correct = true
	}
	return o
}

// Percent converts a score to a whole percentage of max, rounding half up.
func Percent(score, max int) int {
	if max <= 0 || score <= 0 {
		return 0
	}
	p := int(math.Floor(100*float64(score)/float64(max) + 0.5))
	return min(p, 100)
}
