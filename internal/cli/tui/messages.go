package tui

import (
	"time"

	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/usecase"
)

// Data loading messages.

type accountsLoadedMsg struct {
	result *usecase.LoadAccountsResult
	err    error
}

type configLoadedMsg struct {
	config *domain.ActivityConfig
	err    error
}

type configSavedMsg struct {
	result *usecase.SetConfigResult
	err    error
}

type walletsLoadedMsg struct {
	result *usecase.RefreshWalletsResult
	err    error
}

// Runner control messages.

type startedMsg struct {
	ok bool
}

type stopRequestedMsg struct {
	ok bool
}

type logsClearedMsg struct {
	dropped int
}

// Polling.

type tickMsg time.Time

// Notification message.

type clearNotificationMsg struct {
	version int
}
