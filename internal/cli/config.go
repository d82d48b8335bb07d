package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/courier/internal/cli/render"
	"github.com/trebuchet-org/courier/internal/domain/config"
	"github.com/trebuchet-org/courier/internal/usecase"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage activity repetitions",
		Long: `Manage the activity config stored in <data-dir>/activity.json

The config holds how many bridge and swap transactions are sent per
account in one run. Both default to 1.

Available subcommands:
  config           Show current config
  config set       Set the repetition counts

When run without subcommands, displays the current config.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default action is to show config
			return showConfig(cmd)
		},
	}

	// Add subcommands
	cmd.AddCommand(NewConfigSetCmd())

	return cmd
}

// NewConfigSetCmd creates the config set subcommand
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [bridge swap | <key> <value>...]",
		Short: "Set the repetition counts",
		Long: `Set how many times each action runs per account.
Available keys: bridgeRepetitions (bridge), swapRepetitions (swap)

Values below 1 or not numeric are stored as 1. Without arguments both
counts are prompted for.

Examples:
  courier config set 2 3
  courier config set swap 4
  courier config set bridge=1 swap=2
  courier config set`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var params usecase.SetConfigParams
			if len(args) == 0 {
				current, err := app.ShowConfig.Run(cmd.Context())
				if err != nil {
					return err
				}
				params, err = promptRepetitions(current.Config.BridgeRepetitions, current.Config.SwapRepetitions)
				if err != nil {
					return err
				}
			} else {
				params, err = parseSetArgs(args)
				if err != nil {
					return err
				}
			}

			result, err := app.SetConfig.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			// Render result
			renderer := render.NewConfigRenderer(cmd.OutOrStdout())
			return renderer.RenderSet(result)
		},
	}
}

// parseSetArgs accepts "<bridge> <swap>", "<key> <value>" pairs or
// "key=value" arguments.
func parseSetArgs(args []string) (usecase.SetConfigParams, error) {
	if len(args) == 2 && !strings.Contains(args[0], "=") {
		if _, isKey := config.NormalizeConfigKey(args[0]); !isKey {
			return usecase.SetConfigParams{Bridge: args[0], Swap: args[1]}, nil
		}
	}

	pairs := make(map[string]string, len(args))
	for i := 0; i < len(args); i++ {
		if key, value, ok := strings.Cut(args[i], "="); ok {
			pairs[key] = value
			continue
		}
		if i+1 >= len(args) {
			return usecase.SetConfigParams{}, fmt.Errorf("missing value for %s", args[i])
		}
		pairs[args[i]] = args[i+1]
		i++
	}
	return usecase.ParamsFromPairs(pairs)
}

// promptRepetitions asks for both counts, defaulting to the current values
func promptRepetitions(bridge, swap int) (usecase.SetConfigParams, error) {
	validate := func(input string) error {
		if _, err := strconv.Atoi(strings.TrimSpace(input)); err != nil {
			return fmt.Errorf("enter a whole number")
		}
		return nil
	}

	bridgePrompt := promptui.Prompt{
		Label:    "Bridge repetitions",
		Default:  strconv.Itoa(bridge),
		Validate: validate,
	}
	b, err := bridgePrompt.Run()
	if err != nil {
		return usecase.SetConfigParams{}, err
	}

	swapPrompt := promptui.Prompt{
		Label:    "Swap repetitions",
		Default:  strconv.Itoa(swap),
		Validate: validate,
	}
	s, err := swapPrompt.Run()
	if err != nil {
		return usecase.SetConfigParams{}, err
	}

	return usecase.SetConfigParams{Bridge: b, Swap: s}, nil
}

// showConfig displays the current configuration
func showConfig(cmd *cobra.Command) error {
	// Get app from context
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.ShowConfig.Run(cmd.Context())
	if err != nil {
		return err
	}

	// Render result
	renderer := render.NewConfigRenderer(cmd.OutOrStdout())
	return renderer.RenderConfig(result)
}
