package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/nmt/internal/drafting"
	"github.com/abhisek/nmt/internal/llm"
	"github.com/abhisek/nmt/internal/pool"
	"github.com/abhisek/nmt/internal/question"
	"github.com/abhisek/nmt/internal/store"
)

const draftTimeout = 2 * time.Minute

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Curate the question bank",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a JSON or YAML pool file and report rejected records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := pool.ReadFile(args[0])
		if err != nil {
			return err
		}
		records, rejected, err := question.ParseRecords(data)
		if err != nil {
			return err
		}

		counts := make(map[question.Kind]int)
		for _, r := range records {
			counts[question.Classify(r)]++
		}
		fmt.Printf("%d records accepted: %d single, %d matching, %d short\n",
			len(records),
			counts[question.KindSingle],
			counts[question.KindMatching],
			counts[question.KindShort])

		for _, re := range rejected {
			fmt.Printf("  ✗ %v\n", re)
		}
		if len(rejected) > 0 {
			return fmt.Errorf("%d records rejected", len(rejected))
		}
		return nil
	},
}

var bankDraftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft a new question with the configured LLM provider",
	Long: `Ask the LLM for a new question on a topic. The draft is validated and
stored as a pending submission for review; it never enters the pool directly.`,
	RunE: runBankDraft,
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List question-bank submissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		switch status {
		case "", store.StatusPending, store.StatusApproved, store.StatusRejected:
		default:
			return fmt.Errorf("invalid status %q: must be pending, approved or rejected", status)
		}
		return withStore(cmd, func(st *store.Store) error {
			subs, err := st.SubmissionRepo().List(cmd.Context(), status)
			if err != nil {
				return err
			}
			if len(subs) == 0 {
				fmt.Println("No submissions found.")
				return nil
			}
			fmt.Printf("%-5s  %-9s  %-8s  %-24s  %-6s  %-16s  %s\n",
				"ID", "Status", "Kind", "Topic", "Source", "Created", "Question")
			fmt.Println(strings.Repeat("─", 110))
			for _, s := range subs {
				fmt.Printf("%-5d  %-9s  %-8s  %-24s  %-6s  %-16s  %s\n",
					s.ID, s.Status, s.Kind, clip(s.Topic, 24), s.Source,
					s.CreatedAt.Local().Format("2006-01-02 15:04"),
					clip(recordText(s.Record), 40))
			}
			return nil
		})
	},
}

var bankReviewCmd = &cobra.Command{
	Use:   "review <id>",
	Short: "Approve or reject a pending submission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		approve, _ := cmd.Flags().GetBool("approve")
		reject, _ := cmd.Flags().GetBool("reject")
		if approve == reject {
			return errors.New("pass exactly one of --approve or --reject")
		}
		note, _ := cmd.Flags().GetString("note")

		return withStore(cmd, func(st *store.Store) error {
			sub, err := st.SubmissionRepo().Review(cmd.Context(), id, approve, note, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Submission %d is now %s\n", sub.ID, sub.Status)
			return nil
		})
	},
}

var bankExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write approved submissions as a pool file (JSON, or YAML by extension)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			records, err := st.SubmissionRepo().Approved(cmd.Context())
			if err != nil {
				return err
			}
			data, err := encodePool(args[0], records)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", args[0], err)
			}
			fmt.Printf("Exported %d records to %s\n", len(records), args[0])
			return nil
		})
	},
}

var bankUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show model calls and estimated spend for drafting",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		if days < 1 {
			return errors.New("--days must be at least 1")
		}
		since := time.Now().UTC().AddDate(0, 0, -days)

		return withStore(cmd, func(st *store.Store) error {
			usage, err := st.EventRepo().LLMUsage(cmd.Context(), since)
			if err != nil {
				return err
			}
			if len(usage) == 0 {
				fmt.Printf("No model calls in the last %d days.\n", days)
				return nil
			}
			fmt.Printf("%-11s %-28s %-12s %6s %6s %9s %9s %9s\n",
				"PROVIDER", "MODEL", "PURPOSE", "CALLS", "FAILED", "IN", "OUT", "USD")
			fmt.Println(strings.Repeat("─", 98))
			var total float64
			for _, u := range usage {
				total += u.Cost
				fmt.Printf("%-11s %-28s %-12s %6d %6d %9d %9d %9.4f\n",
					u.Provider, clip(u.Model, 28), clip(u.Purpose, 12),
					u.Requests, u.Failures, u.InputTokens, u.OutputTokens, u.Cost)
			}
			fmt.Printf("\nEstimated total: $%.4f since %s\n", total, since.Format(dateLayout))
			return nil
		})
	},
}

func init() {
	bankDraftCmd.Flags().String("topic", "", "Topic of the question (required)")
	bankDraftCmd.Flags().String("kind", string(question.KindSingle), "Question kind: single, matching or short")
	bankDraftCmd.Flags().String("author", "", "Who requested the draft")
	bankDraftCmd.Flags().String("notes", "", "Extra guidance for the drafter")
	_ = bankDraftCmd.MarkFlagRequired("topic")

	bankListCmd.Flags().String("status", "", "Filter by status: pending, approved or rejected")

	bankReviewCmd.Flags().Bool("approve", false, "Approve the submission")
	bankReviewCmd.Flags().Bool("reject", false, "Reject the submission")
	bankReviewCmd.Flags().String("note", "", "Review note")
	bankReviewCmd.MarkFlagsMutuallyExclusive("approve", "reject")

	bankCmd.AddCommand(bankValidateCmd)
	bankCmd.AddCommand(bankDraftCmd)
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankReviewCmd)
	bankUsageCmd.Flags().Int("days", 30, "How many days back to count")

	bankCmd.AddCommand(bankExportCmd)
	bankCmd.AddCommand(bankUsageCmd)
}

func runBankDraft(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	kind, _ := cmd.Flags().GetString("kind")
	author, _ := cmd.Flags().GetString("author")
	notes, _ := cmd.Flags().GetString("notes")

	e, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()
	st, err := e.store()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), draftTimeout)
	defer cancel()

	provider, err := newProvider(ctx, e, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	subs := st.SubmissionRepo()
	prior, err := priorQuestions(ctx, subs, topic)
	if err != nil {
		return err
	}

	fmt.Printf("Drafting a %s question on %q...\n", kind, topic)
	d := drafting.New(provider, subs, drafting.DefaultConfig(), e.log)
	sub, err := d.Draft(ctx, drafting.Input{
		Topic:  topic,
		Kind:   question.Kind(kind),
		Author: author,
		Notes:  notes,
		Prior:  prior,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Submission %d created (pending review):\n  %s\n", sub.ID, recordText(sub.Record))
	return nil
}

// newProvider builds the configured provider, falling back to whichever
// API key is present in the environment when the configured one has none.
func newProvider(ctx context.Context, e *env, events store.EventRepo) (llm.Provider, error) {
	cfg := e.cfg.LLM
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		e.log.Info("using LLM provider from environment", zap.String("provider", discovered.Provider))
		discovered.Retry = cfg.Retry
		discovered.Timeout = cfg.Timeout
		cfg = discovered
	}
	return llm.NewProvider(ctx, cfg, events, e.log)
}

// priorQuestions returns the texts of non-rejected submissions on topic,
// so the drafter can avoid repeating them.
func priorQuestions(ctx context.Context, subs store.SubmissionRepo, topic string) ([]string, error) {
	all, err := subs.List(ctx, "")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, s := range all {
		if s.Status == store.StatusRejected || !strings.EqualFold(s.Topic, topic) {
			continue
		}
		if text := recordText(s.Record); text != "" {
			out = append(out, text)
		}
	}
	return out, nil
}

func recordText(raw json.RawMessage) string {
	var r struct {
		Question string `json:"question"`
	}
	if err := json.Unmarshal(raw, &r); err != nil {
		return ""
	}
	return r.Question
}

// encodePool renders records as an indented JSON array, or YAML when path
// ends in .yaml or .yml. Numbers are kept as written so ids stay integers.
func encodePool(path string, records []json.RawMessage) ([]byte, error) {
	if records == nil {
		records = []json.RawMessage{}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		elems := make([]any, len(records))
		for i, raw := range records {
			dec := json.NewDecoder(bytes.NewReader(raw))
			dec.UseNumber()
			if err := dec.Decode(&elems[i]); err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
		}
		return yaml.Marshal(elems)
	default:
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}

func clip(s string, n int) string {
	r := []rune(strings.ReplaceAll(s, "\n", " "))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}
