package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/courier/internal/adapters/progress"
	"github.com/trebuchet-org/courier/internal/cli/render"
)

// NewWalletsCmd creates the wallets command
func NewWalletsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wallets",
		Short: "Show the native balance of every loaded account",
		Long: `Reload the private keys and proxies and query each account's native
balance on the bridge network through the account's proxy. Accounts whose
query fails are listed with an error instead of a balance.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RefreshWallets.Run(cmd.Context())
			if sink, ok := app.Progress.(*progress.SpinnerSink); ok {
				sink.Stop()
			}
			if err != nil {
				return err
			}

			return render.NewWalletsRenderer(cmd.OutOrStdout()).Render(result)
		},
	}
}
