package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trebuchet-org/courier/internal/usecase"
)

// refreshInterval is how often the run state and the log view are polled.
const refreshInterval = 250 * time.Millisecond

// loadAccounts reads the key and proxy files into the session.
func loadAccounts(ctx context.Context, loader AccountLoader) tea.Cmd {
	return func() tea.Msg {
		result, err := loader.Run(ctx)
		return accountsLoadedMsg{result: result, err: err}
	}
}

// loadConfig reads the activity config.
func loadConfig(ctx context.Context, reader ConfigReader) tea.Cmd {
	return func() tea.Msg {
		result, err := reader.Run(ctx)
		if err != nil {
			return configLoadedMsg{err: err}
		}
		return configLoadedMsg{config: result.Config}
	}
}

// saveConfig persists new repetition counts.
func saveConfig(ctx context.Context, writer ConfigWriter, params usecase.SetConfigParams) tea.Cmd {
	return func() tea.Msg {
		result, err := writer.Run(ctx, params)
		return configSavedMsg{result: result, err: err}
	}
}

// refreshWallets reloads accounts and queries their balances.
func refreshWallets(ctx context.Context, wallets WalletRefresher) tea.Cmd {
	return func() tea.Msg {
		result, err := wallets.Run(ctx)
		return walletsLoadedMsg{result: result, err: err}
	}
}

// startActivity launches a run. The runner logs why a start was refused.
func startActivity(ctx context.Context, runner Runner) tea.Cmd {
	return func() tea.Msg {
		return startedMsg{ok: runner.Start(ctx)}
	}
}

// stopActivity requests a cooperative stop.
func stopActivity(runner Runner) tea.Cmd {
	return func() tea.Msg {
		return stopRequestedMsg{ok: runner.Stop()}
	}
}

// clearLogs empties the log buffer.
func clearLogs(cleaner LogCleaner) tea.Cmd {
	return func() tea.Msg {
		return logsClearedMsg{dropped: cleaner.Run()}
	}
}

// tick schedules the next poll.
func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// clearNotification returns a command that clears the notification after a delay.
func clearNotification(d time.Duration, version int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearNotificationMsg{version: version}
	})
}
