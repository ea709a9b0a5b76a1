package drafting

import (
	"fmt"
	"strings"

	"github.com/abhisek/nmt/internal/question"
)

const systemPrompt = `You write questions for a Ukrainian NMT (national multi-subject test) mathematics mock exam.

Rules:
- Write the question body in Ukrainian. Put formulas in the latex field, not in the body.
- The question must be self-contained and have exactly one correct answer key.
- single: give exactly five options labelled А, Б, В, Г, Д and put the correct label in answer.
- matching: give three stems labelled 1, 2, 3, five endings labelled А, Б, В, Г, Д, and one pair per stem. Two of the endings are distractors.
- short: the answer is a single number. Use a comma as the decimal separator and no units.
- Leave every field that does not apply to the requested kind empty.
- Do not repeat any question from the "already in the bank" list.`

var kindNames = map[question.Kind]string{
	question.KindSingle:   "single (one correct option out of five)",
	question.KindMatching: "matching (pair each stem with an ending)",
	question.KindShort:    "short (open numeric answer)",
}

func buildUserMessage(in Input, maxPrior int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", in.Topic)
	fmt.Fprintf(&b, "Kind: %s\n", kindNames[in.Kind])
	if in.Notes != "" {
		fmt.Fprintf(&b, "Author notes: %s\n", in.Notes)
	}

	b.WriteString("\nAlready in the bank for this topic:\n")
	b.WriteString(buildPrior(in.Prior, maxPrior))
	return b.String()
}

// buildPrior lists the most recent max prior question texts, or "None".
func buildPrior(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}
	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
