package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/courier/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if !result.Exists {
		fmt.Fprintln(r.out, FormatWarning("No activity config found, created one with defaults"))
	}

	fmt.Fprintln(r.out, "📋 Activity config:")
	fmt.Fprintf(r.out, "Bridge repetitions: %s\n", color.New(color.Bold).Sprint(result.Config.BridgeRepetitions))
	fmt.Fprintf(r.out, "Swap repetitions:   %s\n", color.New(color.Bold).Sprint(result.Config.SwapRepetitions))
	fmt.Fprintf(r.out, "📁 config file: %s\n", relativePath(result.ConfigPath))

	return nil
}

// RenderSet renders the result of setting the repetition counts
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Set bridge x%d, swap x%d",
		result.UpdatedConfig.BridgeRepetitions,
		result.UpdatedConfig.SwapRepetitions)))
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", relativePath(result.ConfigPath))
	return nil
}
