package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/nmt/internal/app"
	"github.com/abhisek/nmt/internal/assembler"
	ctl "github.com/abhisek/nmt/internal/exam"
	"github.com/abhisek/nmt/internal/pool"
	"github.com/abhisek/nmt/internal/screens/history"
	"github.com/abhisek/nmt/internal/store"
)

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Take a timed mock test (default command)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTake(cmd)
	},
}

// runTake builds the exam dependencies and launches the TUI. With
// remote.url set the pool comes from the server and attempts are posted
// back to it; the in-flight snapshot always stays on this machine.
func runTake(cmd *cobra.Command) error {
	e, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()

	st, err := e.store()
	if err != nil {
		return err
	}

	asm, err := assembler.New(e.cfg.Exam.Variant, e.cfg.Exam.Assembly, assembler.NewRand())
	if err != nil {
		return fmt.Errorf("assembler: %w", err)
	}

	opts := ctl.Options{
		Assembler: asm,
		Snapshots: ctl.NewStoreSnapshots(st.SnapshotRepo()),
		Events:    st.EventRepo(),
		Logger:    e.log,
		Duration:  e.cfg.Exam.Duration,
		MaxScore:  e.cfg.Exam.MaxScore,
		Now:       time.Now,
	}
	appOpts := app.Options{MaxScore: e.cfg.Exam.MaxScore, Now: time.Now}

	if url := e.cfg.Remote.URL; url != "" {
		opts.Source = pool.NewHTTPSource(url, e.log)
		opts.Sink = ctl.NewHTTPSink(url)
		e.log.Info("remote mode", zap.String("url", url))
	} else {
		src, err := e.localPool()
		if err != nil {
			return err
		}
		opts.Source = src
		opts.Sink = &ctl.StoreSink{Attempts: st.AttemptRepo()}
		appOpts.History = attemptLister(st.AttemptRepo())
	}

	appOpts.Controller = ctl.New(opts)
	return app.Run(appOpts)
}

// attemptLister adapts the attempt repo to the history screen. An unknown
// email has no attempts rather than an error.
func attemptLister(repo store.AttemptRepo) history.Lister {
	return func(ctx context.Context, email string) ([]store.Attempt, error) {
		_, attempts, err := repo.ByStudent(ctx, email)
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return attempts, err
	}
}
