package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/courier/internal/cli/tui"
)

// NewTUICmd creates the interactive terminal UI command
func NewTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive control panel",
		Long: `Open a full-screen control panel showing the run state, the loaded
accounts and the live log.

Keys:
  s  start activity      x  stop activity
  c  set repetitions     l  clear logs
  r  refresh wallets     q  quit
  :  command palette`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), app)
		},
	}
}
