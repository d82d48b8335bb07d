package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// paletteCommand is one entry of the command palette.
type paletteCommand struct {
	name string
	desc string
	run  func(m *Model) tea.Cmd
}

func defaultPaletteCommands() []paletteCommand {
	return []paletteCommand{
		{name: "start", desc: "start activity for all accounts", run: (*Model).startCmd},
		{name: "stop", desc: "stop after the current step", run: (*Model).stopCmd},
		{name: "config", desc: "set bridge and swap repetitions", run: (*Model).openForm},
		{name: "clear-logs", desc: "empty the log view", run: (*Model).clearLogsCmd},
		{name: "refresh-wallets", desc: "reload keys and query balances", run: (*Model).refreshCmd},
		{name: "quit", desc: "stop and exit", run: (*Model).quitCmd},
	}
}

type paletteSource []paletteCommand

func (s paletteSource) String(i int) string { return s[i].name }
func (s paletteSource) Len() int            { return len(s) }

// paletteModel is the ":" command prompt with fuzzy matching.
type paletteModel struct {
	input    textinput.Model
	commands []paletteCommand
	matches  []paletteCommand
	cursor   int
}

func newPaletteModel() paletteModel {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "command"
	ti.CharLimit = 32
	commands := defaultPaletteCommands()
	return paletteModel{input: ti, commands: commands, matches: commands}
}

func (p *paletteModel) open() tea.Cmd {
	p.input.SetValue("")
	p.filter()
	return p.input.Focus()
}

func (p *paletteModel) close() {
	p.input.Blur()
}

// filter ranks the commands against the current input. An empty input
// lists every command in its natural order.
func (p *paletteModel) filter() {
	p.cursor = 0
	pattern := strings.TrimSpace(p.input.Value())
	if pattern == "" {
		p.matches = p.commands
		return
	}
	found := fuzzy.FindFrom(pattern, paletteSource(p.commands))
	p.matches = make([]paletteCommand, len(found))
	for i, match := range found {
		p.matches[i] = p.commands[match.Index]
	}
}

func (p *paletteModel) selected() (paletteCommand, bool) {
	if p.cursor < 0 || p.cursor >= len(p.matches) {
		return paletteCommand{}, false
	}
	return p.matches[p.cursor], true
}

func (p *paletteModel) move(delta int) {
	if len(p.matches) == 0 {
		return
	}
	p.cursor = (p.cursor + delta + len(p.matches)) % len(p.matches)
}

func (p *paletteModel) update(msg tea.Msg) tea.Cmd {
	prev := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != prev {
		p.filter()
	}
	return cmd
}

func (p *paletteModel) View() string {
	var b strings.Builder
	b.WriteString(p.input.View())
	for i, c := range p.matches {
		b.WriteString("\n")
		if i == p.cursor {
			b.WriteString(selectedItemStyle.Render("> " + c.name))
		} else {
			b.WriteString("  " + c.name)
		}
		b.WriteString(dimStyle.Render("  " + c.desc))
	}
	if len(p.matches) == 0 {
		b.WriteString("\n" + dimStyle.Render("  no matching command"))
	}
	return paletteStyle.Render(b.String())
}
