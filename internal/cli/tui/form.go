package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/usecase"
)

// formModel edits the two repetition counts. Empty fields keep the
// current value.
type formModel struct {
	inputs [2]textinput.Model
	focus  int
}

func newFormModel() formModel {
	var f formModel
	for i, label := range []string{"bridge x ", "swap   x "} {
		ti := textinput.New()
		ti.Prompt = label
		ti.CharLimit = 6
		ti.Validate = func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			_, err := strconv.Atoi(s)
			return err
		}
		f.inputs[i] = ti
	}
	return f
}

func (f *formModel) open(current *domain.ActivityConfig) tea.Cmd {
	if current == nil {
		current = domain.DefaultActivityConfig()
	}
	f.inputs[0].SetValue("")
	f.inputs[0].Placeholder = strconv.Itoa(current.BridgeRepetitions)
	f.inputs[1].SetValue("")
	f.inputs[1].Placeholder = strconv.Itoa(current.SwapRepetitions)
	f.focus = 0
	f.inputs[1].Blur()
	return f.inputs[0].Focus()
}

func (f *formModel) close() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f *formModel) next() tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f *formModel) params() usecase.SetConfigParams {
	return usecase.SetConfigParams{
		Bridge: f.inputs[0].Value(),
		Swap:   f.inputs[1].Value(),
	}
}

func (f *formModel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *formModel) View() string {
	return panelStyle.Render(strings.Join([]string{
		sectionStyle.Render("Repetitions per account"),
		f.inputs[0].View(),
		f.inputs[1].View(),
		dimStyle.Render("tab switch · enter save · esc cancel"),
	}, "\n"))
}
