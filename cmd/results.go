package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/nmt/internal/store"
)

const dateLayout = "2006-01-02"

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recorded attempts for a class or a student",
	Long: `Show recorded attempts, newest first.

  nmt results --class 3 --from 2026-05-01 --min-score 20
  nmt results --student olena@example.com`,
	RunE: runResults,
}

func init() {
	f := resultsCmd.Flags()
	f.Int("class", 0, "Class ID")
	f.String("student", "", "Student email")
	f.String("from", "", "First day included, UTC (YYYY-MM-DD)")
	f.String("to", "", "Last day included, UTC (YYYY-MM-DD)")
	f.Int("min-score", 0, "Lowest score included")
	f.Int("max-score", 0, "Highest score included")
	f.String("search", "", "Substring of student name or email")
	f.Int("limit", 0, "Show only the latest N attempts")
	resultsCmd.MarkFlagsMutuallyExclusive("class", "student")
}

func runResults(cmd *cobra.Command, args []string) error {
	classID, _ := cmd.Flags().GetInt("class")
	email, _ := cmd.Flags().GetString("student")
	limit, _ := cmd.Flags().GetInt("limit")

	var filter store.ResultFilter
	if classID != 0 {
		var err error
		if filter, err = resultFilter(cmd); err != nil {
			return err
		}
	}

	return withStore(cmd, func(st *store.Store) error {
		repo := st.AttemptRepo()
		var (
			attempts []store.Attempt
			err      error
		)
		switch {
		case email != "":
			var s *store.Student
			s, attempts, err = repo.ByStudent(cmd.Context(), email)
			if errors.Is(err, store.ErrNotFound) {
				fmt.Printf("No attempts for %s.\n", email)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s>\n\n", s.Name, s.Email)
		case classID != 0:
			attempts, err = repo.ClassResults(cmd.Context(), classID, filter)
		default:
			if limit <= 0 {
				limit = 20
			}
			attempts, err = repo.Recent(cmd.Context(), limit)
		}
		if err != nil {
			return err
		}
		if limit > 0 && len(attempts) > limit {
			attempts = attempts[:limit]
		}
		printAttempts(attempts)
		return nil
	})
}

func resultFilter(cmd *cobra.Command) (store.ResultFilter, error) {
	var f store.ResultFilter
	var err error
	if s, _ := cmd.Flags().GetString("from"); s != "" {
		if f.From, err = time.Parse(dateLayout, s); err != nil {
			return f, fmt.Errorf("--from: %w", err)
		}
	}
	if s, _ := cmd.Flags().GetString("to"); s != "" {
		if f.To, err = time.Parse(dateLayout, s); err != nil {
			return f, fmt.Errorf("--to: %w", err)
		}
	}
	if cmd.Flags().Changed("min-score") {
		v, _ := cmd.Flags().GetInt("min-score")
		f.MinScore = &v
	}
	if cmd.Flags().Changed("max-score") {
		v, _ := cmd.Flags().GetInt("max-score")
		f.MaxScore = &v
	}
	f.Search, _ = cmd.Flags().GetString("search")
	return f, nil
}

func printAttempts(attempts []store.Attempt) {
	if len(attempts) == 0 {
		fmt.Println("No attempts found.")
		return
	}
	fmt.Printf("%-5s  %-16s  %-32s  %-24s  %5s  %4s\n", "ID", "Date", "Email", "Name", "Score", "%")
	fmt.Println(strings.Repeat("─", 96))
	for _, a := range attempts {
		name := a.StudentName
		if len([]rune(name)) > 24 {
			name = string([]rune(name)[:24])
		}
		fmt.Printf("%-5d  %-16s  %-32s  %-24s  %5d  %4d\n",
			a.ID,
			a.CreatedAt.Local().Format("2006-01-02 15:04"),
			a.StudentEmail,
			name,
			a.Score,
			a.Percent,
		)
	}
}
