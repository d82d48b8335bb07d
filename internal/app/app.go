package app

import (
	"log/slog"

	"github.com/trebuchet-org/courier/internal/adapters/logbuffer"
	"github.com/trebuchet-org/courier/internal/domain/config"
	"github.com/trebuchet-org/courier/internal/usecase"
)

// App is the session object shared by every frontend. It owns the loaded
// accounts, the log buffer and the single activity runner.
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Logger   *slog.Logger
	Logs     *logbuffer.Buffer
	Progress usecase.ProgressSink

	// Use cases
	LoadAccounts   *usecase.LoadAccounts
	Runner         *usecase.ActivityRunner
	ShowConfig     *usecase.ShowConfig
	SetConfig      *usecase.SetConfig
	ClearLogs      *usecase.ClearLogs
	RefreshWallets *usecase.RefreshWallets
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	logs *logbuffer.Buffer,
	progress usecase.ProgressSink,
	loadAccounts *usecase.LoadAccounts,
	runner *usecase.ActivityRunner,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	clearLogs *usecase.ClearLogs,
	refreshWallets *usecase.RefreshWallets,
) (*App, error) {
	return &App{
		Config:         cfg,
		Logger:         logger,
		Logs:           logs,
		Progress:       progress,
		LoadAccounts:   loadAccounts,
		Runner:         runner,
		ShowConfig:     showConfig,
		SetConfig:      setConfig,
		ClearLogs:      clearLogs,
		RefreshWallets: refreshWallets,
	}, nil
}
