package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/nmt/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the back-office HTTP API",
	Long: `Serve the question pool to remote terminals, accept attempts and expose
class, results and question-bank endpoints. Stops gracefully on SIGINT/SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		e.cfg.Server.Addr = addr
	}

	st, err := e.store()
	if err != nil {
		return err
	}
	src, err := e.localPool()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := api.New(e.cfg.Server, api.Deps{
		Pool:        src,
		Attempts:    st.AttemptRepo(),
		Roster:      st.RosterRepo(),
		Submissions: st.SubmissionRepo(),
		Logger:      e.log,
	})
	return srv.ListenAndServe(ctx)
}
