package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/courier/internal/app"
	"github.com/trebuchet-org/courier/internal/cli/render"
	"github.com/trebuchet-org/courier/internal/domain"
)

// errInterrupted is returned when a second interrupt arrives while the
// runner is still finishing its current step.
var errInterrupted = errors.New("interrupted")

// NewRunCmd creates the headless run command
func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run activity for every loaded account without the TUI",
		Long: `Load the private keys and proxies, then run the bridge and swap actions
for every account in order. Progress is logged to stderr.

The first Ctrl-C requests a stop: the transaction in flight is allowed to
confirm and no further step starts. A second Ctrl-C exits immediately.

Examples:
  courier run
  courier run --secrets keys.txt --proxies proxies.txt
  COURIER_LOG_LEVEL=debug courier run`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			sigs := make(chan os.Signal, 2)
			signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigs)

			return runActivity(cmd, app, sigs)
		},
	}
}

// runActivity loads the accounts, starts the runner and blocks until it
// exits. Signals received on sigs request a stop.
func runActivity(cmd *cobra.Command, app *app.App, sigs <-chan os.Signal) error {
	ctx := cmd.Context()

	if _, err := app.LoadAccounts.Run(ctx); err != nil {
		return err
	}
	if !app.Runner.Start(ctx) {
		if app.Runner.State().Running {
			return domain.ErrAlreadyRunning
		}
		return domain.ErrNoAccounts
	}

	done := make(chan struct{})
	go func() {
		app.Runner.Wait()
		close(done)
	}()

	for {
		select {
		case <-done:
			return render.NewSummaryRenderer(cmd.OutOrStdout()).Render(app.Runner.LastSummary())
		case <-sigs:
			if app.Runner.State().CancelRequested {
				return errInterrupted
			}
			app.Runner.Stop()
		}
	}
}
