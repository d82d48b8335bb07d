package usecase

import (
	"context"

	"github.com/trebuchet-org/courier/internal/domain"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config     *domain.ActivityConfig
	ConfigPath string
	Exists     bool
}

// ShowConfig is a use case for showing the activity configuration
type ShowConfig struct {
	store ActivityConfigRepository
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(store ActivityConfigRepository) *ShowConfig {
	return &ShowConfig{
		store: store,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	exists := uc.store.Exists()

	config, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &ShowConfigResult{
		Config:     config,
		ConfigPath: uc.store.GetPath(),
		Exists:     exists,
	}, nil
}
