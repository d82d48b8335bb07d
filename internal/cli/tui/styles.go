package tui

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors that work on light and dark terminals.
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#0A6E8A", Dark: "#4FC3F7"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#FF4672"}
	colorAmber  = lipgloss.AdaptiveColor{Light: "#FF8C00", Dark: "#FFA500"}
	colorSubtle = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	colorDimFg  = lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"}
	colorBorder = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
)

// Header styles.
var (
	logoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			PaddingRight(2)

	pillStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	idlePillStyle     = pillStyle.Background(colorSubtle)
	runningPillStyle  = pillStyle.Background(colorGreen)
	stoppingPillStyle = pillStyle.Background(colorAmber)
)

// Content styles.
var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorDimFg)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDimFg)

	errorTextStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)

// Notification styles.
var (
	notifSuccessStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Padding(0, 1)

	notifErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Padding(0, 1)
)

// Palette styles.
var (
	paletteStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)
)

// Log level styles.
var levelStyles = map[slog.Level]lipgloss.Style{
	slog.LevelDebug: lipgloss.NewStyle().Foreground(colorSubtle),
	slog.LevelInfo:  lipgloss.NewStyle().Foreground(colorGreen),
	slog.LevelWarn:  lipgloss.NewStyle().Foreground(colorAmber),
	slog.LevelError: lipgloss.NewStyle().Foreground(colorRed).Bold(true),
}

func levelStyle(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return levelStyles[slog.LevelError]
	case l >= slog.LevelWarn:
		return levelStyles[slog.LevelWarn]
	case l >= slog.LevelInfo:
		return levelStyles[slog.LevelInfo]
	default:
		return levelStyles[slog.LevelDebug]
	}
}
