//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/trebuchet-org/courier/internal/adapters"
	"github.com/trebuchet-org/courier/internal/config"
	"github.com/trebuchet-org/courier/internal/logging"
	"github.com/trebuchet-org/courier/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Executors
		usecase.NewBridge,
		usecase.NewSwap,
		usecase.ProvideActivityActions,

		// Use cases
		usecase.NewLoadAccounts,
		usecase.NewActivityRunner,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewClearLogs,
		usecase.NewRefreshWallets,

		// App
		NewApp,
	)
	return nil, nil
}
