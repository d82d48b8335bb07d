package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/domain/config"
)

// SetConfigParams contains parameters for setting configuration. Empty
// values keep the current setting; anything else is parsed leniently.
type SetConfigParams struct {
	Bridge string
	Swap   string
}

// SetConfigResult contains the result of setting configuration
type SetConfigResult struct {
	UpdatedConfig *domain.ActivityConfig
	ConfigPath    string
}

// SetConfig is a use case for setting repetition counts
type SetConfig struct {
	store ActivityConfigRepository
	log   *slog.Logger
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(store ActivityConfigRepository, log *slog.Logger) *SetConfig {
	return &SetConfig{
		store: store,
		log:   log,
	}
}

// Run executes the set config use case
func (uc *SetConfig) Run(ctx context.Context, params SetConfigParams) (*SetConfigResult, error) {
	cfg, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if v := strings.TrimSpace(params.Bridge); v != "" {
		cfg.BridgeRepetitions = domain.ParseRepetitions(v)
	}
	if v := strings.TrimSpace(params.Swap); v != "" {
		cfg.SwapRepetitions = domain.ParseRepetitions(v)
	}
	cfg.Normalize()

	if err := uc.store.Save(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}
	uc.log.Info("activity config updated",
		"bridge", cfg.BridgeRepetitions,
		"swap", cfg.SwapRepetitions)

	return &SetConfigResult{
		UpdatedConfig: cfg,
		ConfigPath:    uc.store.GetPath(),
	}, nil
}

// ParamsFromPairs builds SetConfigParams from key=value or key value
// arguments, accepting the configuration key aliases.
func ParamsFromPairs(pairs map[string]string) (SetConfigParams, error) {
	var params SetConfigParams
	for k, v := range pairs {
		key, ok := config.NormalizeConfigKey(k)
		if !ok {
			valid := make([]string, 0, len(config.ValidConfigKeys()))
			for _, vk := range config.ValidConfigKeys() {
				valid = append(valid, string(vk))
			}
			return params, fmt.Errorf("unknown config key: %s\nAvailable keys: %s", k, strings.Join(valid, ", "))
		}
		switch key {
		case config.ConfigKeyBridgeRepetitions:
			params.Bridge = v
		case config.ConfigKeySwapRepetitions:
			params.Swap = v
		}
	}
	return params, nil
}
