package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/courier/internal/adapters/progress"
	"github.com/trebuchet-org/courier/internal/app"
	"github.com/trebuchet-org/courier/internal/config"
	"github.com/trebuchet-org/courier/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "courier",
		Short: "Scripted bridge and swap activity across a set of wallets",
		Long: `Courier runs a fixed sequence of on-chain actions for every configured
private key: token approval and bridge deposit on the bridge network, then
a router swap on the swap network. Each account can be routed through its
own HTTP or SOCKS proxy.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsApp(cmd) {
				return nil
			}

			// Set up viper
			v := config.SetupViper(cmd)

			// The TUI owns the terminal, so logs only go to its buffer
			if cmd.Name() == "tui" {
				v.Set("log_stderr", false)
			}

			appInstance, err := app.InitApp(v, progressSink(cmd))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("data-dir", config.DefaultDataDir, "Directory for activity state")
	flags.String("secrets", config.DefaultSecretsFile, "File with one private key per line")
	flags.String("proxies", config.DefaultProxiesFile, "File with one proxy URL per line")
	flags.String("networks", config.DefaultNetworksFile, "Network file (toml or yaml)")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.Int("log-cap", 1000, "Number of log lines kept in memory")
	flags.String("secret-policy", "strict", "Private key validation (strict, loose)")
	flags.String("bridge-allowance", "ensure", "Approval step before the bridge deposit (ensure, skip)")
	flags.String("swap-allowance", "skip", "Approval step before the swap (ensure, skip)")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	tuiCmd := NewTUICmd()
	tuiCmd.GroupID = "main"
	rootCmd.AddCommand(tuiCmd)

	runCmd := NewRunCmd()
	runCmd.GroupID = "main"
	rootCmd.AddCommand(runCmd)

	// Management commands
	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	walletsCmd := NewWalletsCmd()
	walletsCmd.GroupID = "management"
	rootCmd.AddCommand(walletsCmd)

	// Version command
	versionCmd := NewVersionCmd()
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// needsApp reports whether cmd runs against a wired app
func needsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion", "__complete":
		return false
	}
	return cmd.Runnable()
}

// progressSink picks the progress output for cmd. Only interactive table
// commands draw a spinner.
func progressSink(cmd *cobra.Command) usecase.ProgressSink {
	if cmd.Name() == "wallets" {
		return progress.NewSpinnerSinkTo(cmd.ErrOrStderr())
	}
	return progress.NewNopSink()
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
