package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/domain/config"
	"github.com/trebuchet-org/courier/internal/usecase"
)

// ActivityConfigFile is the file name of the activity configuration
const ActivityConfigFile = "activity.json"

// ActivityConfigStoreAdapter implements ActivityConfigRepository using the file system
type ActivityConfigStoreAdapter struct {
	configPath string
	log        *slog.Logger
}

// NewActivityConfigStoreAdapter creates a new ActivityConfigStoreAdapter
func NewActivityConfigStoreAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *ActivityConfigStoreAdapter {
	return &ActivityConfigStoreAdapter{
		configPath: filepath.Join(cfg.DataDir, ActivityConfigFile),
		log:        log,
	}
}

// Exists checks if the config file exists
func (s *ActivityConfigStoreAdapter) Exists() bool {
	_, err := os.Stat(s.configPath)
	return !os.IsNotExist(err)
}

// Load reads the configuration. A missing file is created with defaults.
// Missing, non-numeric or non-positive fields load as 1, and a file that
// is not a JSON object loads as defaults.
func (s *ActivityConfigStoreAdapter) Load(ctx context.Context) (*domain.ActivityConfig, error) {
	if !s.Exists() {
		cfg := domain.DefaultActivityConfig()
		if err := s.Save(ctx, cfg); err != nil {
			return nil, err
		}
		s.log.Info("created activity config with defaults", "path", s.configPath)
		return cfg, nil
	}

	data, err := os.ReadFile(s.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		s.log.Warn("invalid activity config, using defaults", "path", s.configPath, "error", err)
		return domain.DefaultActivityConfig(), nil
	}

	return &domain.ActivityConfig{
		BridgeRepetitions: domain.ParseRepetitions(raw["bridgeRepetitions"]),
		SwapRepetitions:   domain.ParseRepetitions(raw["swapRepetitions"]),
	}, nil
}

// Save writes the configuration atomically
func (s *ActivityConfigStoreAdapter) Save(ctx context.Context, cfg *domain.ActivityConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return writeFileAtomic(s.configPath, append(data, '\n'), 0644)
}

// GetPath returns the path to the config file
func (s *ActivityConfigStoreAdapter) GetPath() string {
	return s.configPath
}

// Ensure ActivityConfigStoreAdapter implements ActivityConfigRepository
var _ usecase.ActivityConfigRepository = (*ActivityConfigStoreAdapter)(nil)
