package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	ctl "github.com/abhisek/nmt/internal/exam"
	"github.com/abhisek/nmt/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the in-progress test on this machine",
	Long: `Clear the saved in-progress test so the next run starts fresh.
Recorded attempts are not touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			snaps := ctl.NewStoreSnapshots(st.SnapshotRepo())
			snap, err := snaps.Load(cmd.Context())
			if err != nil {
				return err
			}
			if snap == nil {
				fmt.Println("No test in progress.")
				return nil
			}
			if err := snaps.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("In-progress test discarded.")
			return nil
		})
	},
}
