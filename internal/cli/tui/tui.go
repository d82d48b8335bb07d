package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trebuchet-org/courier/internal/app"
	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/domain/config"
	"github.com/trebuchet-org/courier/internal/usecase"
)

// Runner is the activity runner as seen by the TUI.
type Runner interface {
	Start(ctx context.Context) bool
	Stop() bool
	State() domain.RunState
	LastSummary() *domain.RunSummary
}

// AccountLoader reloads the account store.
type AccountLoader interface {
	Run(ctx context.Context) (*usecase.LoadAccountsResult, error)
}

// ConfigReader reads the activity config.
type ConfigReader interface {
	Run(ctx context.Context) (*usecase.ShowConfigResult, error)
}

// ConfigWriter updates the activity config.
type ConfigWriter interface {
	Run(ctx context.Context, params usecase.SetConfigParams) (*usecase.SetConfigResult, error)
}

// LogCleaner empties the log buffer.
type LogCleaner interface {
	Run() int
}

// WalletRefresher queries the balance of every account.
type WalletRefresher interface {
	Run(ctx context.Context) (*usecase.RefreshWalletsResult, error)
}

// LogView exposes the newest log entries.
type LogView interface {
	Tail(n int) []domain.LogEntry
}

// Deps holds all dependencies injected into the TUI.
type Deps struct {
	Runner   Runner
	Accounts AccountLoader
	Config   ConfigReader
	SetCfg   ConfigWriter
	Clear    LogCleaner
	Wallets  WalletRefresher
	Logs     LogView
	Networks *config.Networks
}

// DepsFromApp maps the session object onto the TUI dependencies.
func DepsFromApp(a *app.App) Deps {
	return Deps{
		Runner:   a.Runner,
		Accounts: a.LoadAccounts,
		Config:   a.ShowConfig,
		SetCfg:   a.SetConfig,
		Clear:    a.ClearLogs,
		Wallets:  a.RefreshWallets,
		Logs:     a.Logs,
		Networks: a.Config.Networks,
	}
}

// Input modes.
const (
	modeNormal = iota
	modeForm
	modePalette
)

// Model is the root BubbleTea model.
type Model struct {
	ctx  context.Context
	deps Deps

	// Dimensions.
	width  int
	height int

	mode    int
	form    formModel
	palette paletteModel
	help    help.Model

	// Session snapshot.
	state    domain.RunState
	accounts int
	proxies  int
	dropped  int
	config   *domain.ActivityConfig
	wallets  *usecase.RefreshWalletsResult
	logs     []domain.LogEntry

	refreshing bool
	quitting   bool

	// Notification.
	notification    string
	notificationErr bool
	notifVersion    int

	spinner spinner.Model
}

// NewModel creates a new root Model.
func NewModel(ctx context.Context, deps Deps) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return &Model{
		ctx:     ctx,
		deps:    deps,
		form:    newFormModel(),
		palette: newPaletteModel(),
		help:    help.New(),
		spinner: s,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		loadAccounts(m.ctx, m.deps.Accounts),
		loadConfig(m.ctx, m.deps.Config),
		tick(),
		m.spinner.Tick,
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	prevNotifVersion := m.notifVersion

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.pollLogs()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tickMsg:
		m.poll()
		cmds = append(cmds, tick())

	// Data loading.
	case accountsLoadedMsg:
		if msg.err != nil {
			m.setNotification(fmt.Sprintf("Loading accounts failed: %v", msg.err), true)
		} else {
			m.setAccounts(msg.result)
		}
	case configLoadedMsg:
		if msg.err != nil {
			m.setNotification(fmt.Sprintf("Loading config failed: %v", msg.err), true)
		} else {
			m.config = msg.config
		}
	case configSavedMsg:
		if msg.err != nil {
			m.setNotification(fmt.Sprintf("Save failed: %v", msg.err), true)
		} else {
			m.config = msg.result.UpdatedConfig
			m.setNotification(fmt.Sprintf("Saved: bridge x%d, swap x%d",
				m.config.BridgeRepetitions, m.config.SwapRepetitions), false)
		}
	case walletsLoadedMsg:
		m.refreshing = false
		if msg.err != nil {
			m.setNotification(fmt.Sprintf("Wallet refresh failed: %v", msg.err), true)
		} else {
			m.wallets = msg.result
			m.accounts = len(msg.result.Wallets)
			m.dropped = msg.result.Dropped
			m.setNotification(fmt.Sprintf("Refreshed %d wallets", len(msg.result.Wallets)), false)
		}

	// Runner control.
	case startedMsg:
		if msg.ok {
			m.setNotification("Activity started", false)
		} else {
			m.setNotification("Activity not started, see log", true)
		}
		m.poll()
	case stopRequestedMsg:
		if msg.ok {
			m.setNotification("Stopping after the current step", false)
		}
		m.poll()
	case logsClearedMsg:
		m.pollLogs()
		m.setNotification(fmt.Sprintf("Cleared %d log lines", msg.dropped), false)

	// Notification.
	case clearNotificationMsg:
		if msg.version == m.notifVersion {
			m.notification = ""
			m.notificationErr = false
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	default:
		cmds = append(cmds, m.updateInput(msg))
	}

	// Schedule notification auto-clear when a new notification was set.
	if m.notifVersion > prevNotifVersion && m.notification != "" {
		cmds = append(cmds, clearNotification(4*time.Second, m.notifVersion))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case modeForm:
		return m.handleFormKey(msg)
	case modePalette:
		return m.handlePaletteKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m.quitCmd()
	case key.Matches(msg, keys.Start):
		return m.startCmd()
	case key.Matches(msg, keys.Stop):
		return m.stopCmd()
	case key.Matches(msg, keys.Config):
		return m.openForm()
	case key.Matches(msg, keys.Clear):
		return m.clearLogsCmd()
	case key.Matches(msg, keys.Refresh):
		return m.refreshCmd()
	case key.Matches(msg, keys.Palette):
		m.mode = modePalette
		return m.palette.open()
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.pollLogs()
	}
	return nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m.quitCmd()
	case key.Matches(msg, keys.Back):
		m.form.close()
		m.mode = modeNormal
		return nil
	case key.Matches(msg, keys.Next):
		return m.form.next()
	case key.Matches(msg, keys.Submit):
		params := m.form.params()
		m.form.close()
		m.mode = modeNormal
		return saveConfig(m.ctx, m.deps.SetCfg, params)
	}
	return m.form.update(msg)
}

func (m *Model) handlePaletteKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m.quitCmd()
	case key.Matches(msg, keys.Back):
		m.palette.close()
		m.mode = modeNormal
		return nil
	case msg.Type == tea.KeyUp || msg.Type == tea.KeyShiftTab:
		m.palette.move(-1)
		return nil
	case msg.Type == tea.KeyDown || msg.Type == tea.KeyTab:
		m.palette.move(1)
		return nil
	case key.Matches(msg, keys.Submit):
		c, ok := m.palette.selected()
		m.palette.close()
		m.mode = modeNormal
		if !ok {
			return nil
		}
		return c.run(m)
	}
	return m.palette.update(msg)
}

// updateInput forwards non-key messages, such as cursor blinks, to the
// focused input.
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	switch m.mode {
	case modeForm:
		return m.form.update(msg)
	case modePalette:
		return m.palette.update(msg)
	}
	return nil
}

func (m *Model) startCmd() tea.Cmd {
	return startActivity(m.ctx, m.deps.Runner)
}

func (m *Model) stopCmd() tea.Cmd {
	return stopActivity(m.deps.Runner)
}

func (m *Model) openForm() tea.Cmd {
	m.mode = modeForm
	return m.form.open(m.config)
}

func (m *Model) clearLogsCmd() tea.Cmd {
	return clearLogs(m.deps.Clear)
}

func (m *Model) refreshCmd() tea.Cmd {
	if m.refreshing {
		return nil
	}
	m.refreshing = true
	return refreshWallets(m.ctx, m.deps.Wallets)
}

// quitCmd requests a stop of an active run before leaving.
func (m *Model) quitCmd() tea.Cmd {
	if m.deps.Runner.State().Running {
		m.deps.Runner.Stop()
	}
	m.quitting = true
	return tea.Quit
}

// poll refreshes the run state and the log view, and reports a run that
// ended since the last poll.
func (m *Model) poll() {
	prev := m.state
	m.state = m.deps.Runner.State()
	if prev.Running && !m.state.Running {
		if s := m.deps.Runner.LastSummary(); s != nil {
			m.setNotification(summaryLine(s), s.Crashed)
		}
	}
	m.pollLogs()
}

func (m *Model) pollLogs() {
	m.logs = m.deps.Logs.Tail(m.logHeight())
}

func (m *Model) setAccounts(result *usecase.LoadAccountsResult) {
	m.accounts = len(result.Accounts)
	m.proxies = len(result.Proxies)
	m.dropped = result.Dropped
}

func (m *Model) setNotification(text string, isErr bool) {
	m.notification = text
	m.notificationErr = isErr
	m.notifVersion++
}

func summaryLine(s *domain.RunSummary) string {
	status := "completed"
	switch {
	case s.Crashed:
		status = "crashed"
	case s.Cancelled:
		status = "cancelled"
	}
	return fmt.Sprintf("Activity %s: %d/%d accounts, bridge %d/%d ok, swap %d/%d ok",
		status, s.Processed, s.Accounts,
		s.Bridge.Succeeded, s.Bridge.Total(),
		s.Swap.Succeeded, s.Swap.Total())
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	parts := []string{m.renderHeader(), m.renderStatus()}

	switch m.mode {
	case modeForm:
		parts = append(parts, m.form.View())
	case modePalette:
		parts = append(parts, m.palette.View())
	}

	if m.wallets != nil {
		parts = append(parts, m.renderWallets())
	}

	if m.notification != "" {
		if m.notificationErr {
			parts = append(parts, notifErrorStyle.Render("! "+m.notification))
		} else {
			parts = append(parts, notifSuccessStyle.Render("* "+m.notification))
		}
	}

	parts = append(parts, m.renderLogs())
	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	footer := m.help.View(keys)

	// Keep the footer on the last line.
	return forceHeight(body, m.width, m.height-lipgloss.Height(footer)) + "\n" + footer
}

func (m *Model) renderHeader() string {
	var pill string
	switch m.state.Phase() {
	case "running":
		pill = runningPillStyle.Render(m.spinner.View() + "RUNNING")
	case "stopping":
		pill = stoppingPillStyle.Render("STOPPING")
	default:
		pill = idlePillStyle.Render("IDLE")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, logoStyle.Render("courier"), pill)
}

func (m *Model) renderStatus() string {
	field := func(label string, value any) string {
		return labelStyle.Render(label+" ") + valueStyle.Render(fmt.Sprint(value))
	}

	bridge, swap := "-", "-"
	if m.config != nil {
		bridge = fmt.Sprintf("x%d", m.config.BridgeRepetitions)
		swap = fmt.Sprintf("x%d", m.config.SwapRepetitions)
	}

	lines := []string{
		strings.Join([]string{
			field("accounts", m.accounts),
			field("proxies", m.proxies),
			field("skipped", m.dropped),
		}, "   "),
		strings.Join([]string{
			field("bridge", bridge) + networkLabel(m.deps.Networks, true),
			field("swap", swap) + networkLabel(m.deps.Networks, false),
		}, "   "),
	}
	if m.refreshing {
		lines = append(lines, m.spinner.View()+dimStyle.Render("refreshing wallets..."))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func networkLabel(n *config.Networks, bridge bool) string {
	if n == nil {
		return ""
	}
	net := n.Swap
	if bridge {
		net = n.Bridge
	}
	if net == nil {
		return ""
	}
	return dimStyle.Render(" on " + net.Name)
}

func (m *Model) renderWallets() string {
	decimals := uint8(18)
	if m.wallets.Network != nil {
		decimals = m.wallets.Network.Decimals
	}
	lines := []string{sectionStyle.Render("Wallets")}
	for _, w := range m.wallets.Wallets {
		balance := domain.FormatUnits(w.Balance, decimals, 6)
		if w.Err != nil {
			balance = errorTextStyle.Render("error")
		}
		lines = append(lines, fmt.Sprintf("%3d  %s  %s", w.Number(), w.Address.Hex(), balance))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderLogs() string {
	lines := []string{sectionStyle.Render("Log")}
	for _, e := range m.logs {
		line := dimStyle.Render(e.Time.Format("15:04:05")) + " " +
			levelStyle(e.Level).Render(fmt.Sprintf("%-5s", e.Level.String())) + " " +
			e.Message
		if e.Fields != "" {
			line += " " + dimStyle.Render(e.Fields)
		}
		lines = append(lines, truncate(line, m.width))
	}
	return strings.Join(lines, "\n")
}

// logHeight is the number of log lines that fit below the fixed panels.
func (m *Model) logHeight() int {
	overhead := 10
	if m.help.ShowAll {
		overhead += 3
	}
	if m.wallets != nil {
		overhead += len(m.wallets.Wallets) + 1
	}
	h := m.height - overhead
	if h < 3 {
		h = 3
	}
	return h
}

// truncate cuts a rendered line to width cells.
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

// forceHeight ensures the string has exactly `height` lines, each padded to `width`.
// This prevents BubbleTea from leaving ghost lines when the layout shrinks.
func forceHeight(s string, width, height int) string {
	if height < 1 {
		height = 1
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	blank := strings.Repeat(" ", width)
	for len(lines) < height {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

// Run opens the TUI for the session and blocks until the user quits.
func Run(ctx context.Context, a *app.App) error {
	m := NewModel(ctx, DepsFromApp(a))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
