package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/courier/internal/usecase"
)

// SpinnerSink shows a spinner with the latest progress message while a
// long operation, such as a wallet refresh, is running.
type SpinnerSink struct {
	mu      sync.Mutex
	spinner *spinner.Spinner
	out     io.Writer
	stage   string
	started time.Time
}

// NewSpinnerSink creates a spinner sink writing to stderr
func NewSpinnerSink() *SpinnerSink {
	return NewSpinnerSinkTo(os.Stderr)
}

// NewSpinnerSinkTo creates a spinner sink writing to out
func NewSpinnerSinkTo(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false
	return &SpinnerSink{spinner: s, out: out}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.Stage != r.stage {
		r.stage = event.Stage
		r.started = time.Now()
	}

	if event.Spinner {
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		r.spinner.Suffix = " " + event.Message
		return
	}

	if r.spinner.Active() {
		r.spinner.Stop()
		if event.Total > 0 {
			fmt.Fprintf(r.out, "%s %s %d/%d (%s)\n",
				color.GreenString("✓"),
				event.Stage,
				event.Current,
				event.Total,
				time.Since(r.started).Round(time.Millisecond))
		}
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.printAround(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.printAround(color.New(color.FgRed), message)
}

// Stop halts the spinner if it is still running
func (r *SpinnerSink) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

func (r *SpinnerSink) printAround(c *color.Color, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	c.Fprintln(r.out, message)
	if wasActive {
		r.spinner.Start()
	}
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
