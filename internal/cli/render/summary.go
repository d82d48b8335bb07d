package render

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/trebuchet-org/courier/internal/domain"
)

// SummaryRenderer renders the outcome of an activity run
type SummaryRenderer struct {
	out io.Writer
}

// NewSummaryRenderer creates a new summary renderer
func NewSummaryRenderer(out io.Writer) *SummaryRenderer {
	return &SummaryRenderer{out: out}
}

// Render renders a finished run. A nil summary renders nothing.
func (r *SummaryRenderer) Render(summary *domain.RunSummary) error {
	if summary == nil {
		return nil
	}

	switch {
	case summary.Crashed:
		fmt.Fprintln(r.out, FormatError("activity crashed"))
	case summary.Cancelled:
		fmt.Fprintln(r.out, FormatWarning("Activity cancelled"))
	default:
		fmt.Fprintln(r.out, FormatSuccess("Activity completed"))
	}

	fmt.Fprintf(r.out, "Accounts: %d/%d processed in %s\n",
		summary.Processed, summary.Accounts, summary.Duration().Round(time.Second))
	fmt.Fprintf(r.out, "Bridge:   %s\n", tally(summary.Bridge))
	fmt.Fprintf(r.out, "Swap:     %s\n", tally(summary.Swap))
	return nil
}

func tally(t domain.ActionTally) string {
	ok := color.New(color.FgGreen).Sprintf("%d ok", t.Succeeded)
	if t.Failed == 0 {
		return ok
	}
	return ok + ", " + color.New(color.FgRed).Sprintf("%d failed", t.Failed)
}
