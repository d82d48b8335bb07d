package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/domain/config"
)

// Default file locations, relative to the working directory.
const (
	DefaultDataDir      = ".courier"
	DefaultSecretsFile  = "private_keys.txt"
	DefaultProxiesFile  = "proxies.txt"
	DefaultNetworksFile = "courier.toml"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	secretPolicy, err := domain.ParseSecretPolicy(v.GetString("secret_policy"))
	if err != nil {
		return nil, err
	}
	bridgeAllowance, err := domain.ParseAllowancePolicy(v.GetString("bridge_allowance"), domain.AllowanceEnsure)
	if err != nil {
		return nil, fmt.Errorf("bridge allowance: %w", err)
	}
	swapAllowance, err := domain.ParseAllowancePolicy(v.GetString("swap_allowance"), domain.AllowanceSkip)
	if err != nil {
		return nil, fmt.Errorf("swap allowance: %w", err)
	}

	networksPath := v.GetString("networks")
	networks, err := LoadNetworks(networksPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load networks from %s: %w", networksPath, err)
	}

	dataDir := v.GetString("data_dir")
	if dataDir == "" {
		dataDir = DefaultDataDir
	}

	cfg := &config.RuntimeConfig{
		DataDir:         filepath.Clean(dataDir),
		SecretsPath:     v.GetString("secrets"),
		ProxiesPath:     v.GetString("proxies"),
		NetworksPath:    networksPath,
		LogLevel:        v.GetString("log_level"),
		LogCap:          v.GetInt("log_cap"),
		LogToStderr:     v.GetBool("log_stderr"),
		SecretPolicy:    secretPolicy,
		BridgeAllowance: bridgeAllowance,
		SwapAllowance:   swapAllowance,
		Pacing:          domain.DefaultPacing(),
		Networks:        networks,
	}

	return cfg, nil
}

// SetupViper creates and configures a viper instance
func SetupViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("COURIER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("secrets", DefaultSecretsFile)
	v.SetDefault("proxies", DefaultProxiesFile)
	v.SetDefault("networks", DefaultNetworksFile)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_cap", 1000)
	v.SetDefault("log_stderr", true)
	v.SetDefault("secret_policy", string(domain.SecretPolicyStrict))
	v.SetDefault("bridge_allowance", string(domain.AllowanceEnsure))
	v.SetDefault("swap_allowance", string(domain.AllowanceSkip))

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			err := v.BindPFlag(flagKey(f.Name), f)
			if err != nil {
				panic(err)
			}
		})
	}

	return v
}

// flagKey maps a flag name to its viper key ("data-dir" -> "data_dir").
func flagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
