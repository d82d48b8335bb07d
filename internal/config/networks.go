package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/domain/config"
)

// LoadNetworks reads the network file at path and fills every missing field
// from the built-in defaults. A missing file yields the defaults.
func LoadNetworks(path string) (*config.Networks, error) {
	defaults := config.DefaultNetworks()
	if path == "" {
		return defaults, nil
	}

	loadEnvFiles(filepath.Dir(path))

	raw, err := decodeNetworks(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}

	networks := &config.Networks{
		Bridge: config.MergeNetwork(expandNetwork(raw.Bridge), defaults.Bridge),
		Swap:   config.MergeNetwork(expandNetwork(raw.Swap), defaults.Swap),
	}

	if err := validateNetwork("bridge", networks.Bridge); err != nil {
		return nil, err
	}
	if err := validateNetwork("swap", networks.Swap); err != nil {
		return nil, err
	}
	return networks, nil
}

// loadEnvFiles loads .env and .env.local next to the network file. Variables
// already set in the environment win.
func loadEnvFiles(dir string) {
	for _, name := range []string{".env", ".env.local"} {
		envFile := filepath.Join(dir, name)
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
		}
	}
}

func decodeNetworks(path string) (*config.Networks, error) {
	var raw config.Networks

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	default:
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		if _, err := toml.DecodeFile(path, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}
	return &raw, nil
}

func expandNetwork(n *config.Network) *config.Network {
	if n == nil {
		return nil
	}
	out := *n
	out.RPCURL = os.ExpandEnv(out.RPCURL)
	out.ExplorerURL = os.ExpandEnv(out.ExplorerURL)
	return &out
}

func validateNetwork(section string, n *config.Network) error {
	addresses := map[string]string{
		"token":    n.Token,
		"contract": n.Contract,
	}
	if section == "swap" {
		addresses["token_out"] = n.TokenOut
	}
	for field, addr := range addresses {
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("%s.%s %q: %w", section, field, addr, domain.ErrInvalidAddress)
		}
	}
	if n.AmountMin > n.AmountMax {
		return fmt.Errorf("%s: amount_min %.6f exceeds amount_max %.6f", section, n.AmountMin, n.AmountMax)
	}
	return nil
}
