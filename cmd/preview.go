package cmd

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/nmt/internal/assembler"
	"github.com/abhisek/nmt/internal/pool"
	"github.com/abhisek/nmt/internal/question"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print an assembled test with its answer keys",
	Long: `Assemble a test from the configured pool and print it with the keys.

No session is started and nothing is recorded. Useful for checking pool
coverage and the assembler settings before a class sits the test.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("variant", "", "Assembler variant: balanced or shuffled (overrides exam.variant)")
	previewCmd.Flags().Uint64("seed", 0, "Random seed for a reproducible test (0 picks one)")
	previewCmd.Flags().Bool("no-keys", false, "Hide answer keys")
}

func runPreview(cmd *cobra.Command, args []string) error {
	variant, _ := cmd.Flags().GetString("variant")
	seed, _ := cmd.Flags().GetUint64("seed")
	noKeys, _ := cmd.Flags().GetBool("no-keys")

	e, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	if variant == "" {
		variant = e.cfg.Exam.Variant
	}
	rng := assembler.NewRand()
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	asm, err := assembler.New(variant, e.cfg.Exam.Assembly, rng)
	if err != nil {
		return err
	}

	var src pool.Source
	if url := e.cfg.Remote.URL; url != "" {
		src = pool.NewHTTPSource(url, e.log)
	} else if src, err = e.localPool(); err != nil {
		return err
	}
	qs, err := src.Fetch(cmd.Context())
	if err != nil {
		return err
	}

	test := asm.Assemble(qs)
	fmt.Printf("Pool: %d questions. Assembled: %d.\n\n", len(qs), len(test))
	for i, q := range test {
		printQuestion(i+1, q, !noKeys)
	}
	return nil
}

func printQuestion(n int, q question.Question, keys bool) {
	fmt.Printf("%2d. [%s] %s (id %d)\n", n, q.Kind, q.Topic, q.ID)
	text := q.Text
	if text == "" {
		text = q.Latex
	}
	fmt.Printf("    %s\n", strings.ReplaceAll(text, "\n", "\n    "))
	if q.Image != "" {
		fmt.Printf("    [image: %s]\n", q.Image)
	}

	switch q.Kind {
	case question.KindSingle:
		for _, o := range q.Single.Options {
			fmt.Printf("      %s) %s\n", o.Label, optionText(o))
		}
		if keys {
			labels := make([]string, len(q.Single.Answer))
			for i, a := range q.Single.Answer {
				labels[i] = a.Label
			}
			fmt.Printf("    Key: %s\n", strings.Join(labels, ", "))
		}
	case question.KindMatching:
		for _, it := range q.Matching.Left {
			fmt.Printf("      %s. %s\n", it.Key, it.Text)
		}
		for _, it := range q.Matching.Right {
			fmt.Printf("      %s) %s\n", it.Key, it.Text)
		}
		if keys {
			pairs := make([]string, len(q.Matching.Pairs))
			for i, p := range q.Matching.Pairs {
				pairs[i] = p.Key + "-" + p.Label
			}
			fmt.Printf("    Key: %s\n", strings.Join(pairs, " "))
		}
	case question.KindShort:
		if keys {
			fmt.Printf("    Key: %s\n", q.Short.Answer)
		}
	}
	fmt.Println()
}

func optionText(o question.Option) string {
	if o.Text != "" {
		return o.Text
	}
	return o.Latex
}
