package config

import (
	"strings"

	"github.com/trebuchet-org/courier/internal/domain"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	DataDir      string
	SecretsPath  string
	ProxiesPath  string
	NetworksPath string

	// Logging
	LogLevel    string
	LogCap      int
	LogToStderr bool

	// Policies
	SecretPolicy    domain.SecretPolicy
	BridgeAllowance domain.AllowancePolicy
	SwapAllowance   domain.AllowancePolicy

	// Delays between on-chain operations
	Pacing domain.Pacing

	// Resolved network configuration
	Networks *Networks
}

// Networks holds the two networks activity runs against.
type Networks struct {
	Bridge *Network `json:"bridge" toml:"bridge" yaml:"bridge"`
	Swap   *Network `json:"swap" toml:"swap" yaml:"swap"`
}

// Network represents network configuration
type Network struct {
	ChainID     uint64 `json:"chainId" toml:"chain_id" yaml:"chain_id"`
	Name        string `json:"name" toml:"name" yaml:"name"`
	RPCURL      string `json:"rpcUrl" toml:"rpc_url" yaml:"rpc_url"`
	ExplorerURL string `json:"explorerUrl,omitempty" toml:"explorer_url" yaml:"explorer_url"`

	// Token spent by the action and the contract it is sent to
	// (bridge or router).
	Token    string `json:"token" toml:"token" yaml:"token"`
	Contract string `json:"contract" toml:"contract" yaml:"contract"`

	// Swap only: output token and pool fee tier.
	TokenOut string `json:"tokenOut,omitempty" toml:"token_out" yaml:"token_out"`
	PoolFee  uint32 `json:"poolFee,omitempty" toml:"pool_fee" yaml:"pool_fee"`

	GasLimit  uint64  `json:"gasLimit" toml:"gas_limit" yaml:"gas_limit"`
	Decimals  uint8   `json:"decimals" toml:"decimals" yaml:"decimals"`
	AmountMin float64 `json:"amountMin" toml:"amount_min" yaml:"amount_min"`
	AmountMax float64 `json:"amountMax" toml:"amount_max" yaml:"amount_max"`
}

// TxURL returns an explorer link for a transaction hash, or "" when no
// explorer is configured.
func (n *Network) TxURL(hash string) string {
	if n == nil || n.ExplorerURL == "" {
		return ""
	}
	return strings.TrimRight(n.ExplorerURL, "/") + "/tx/" + hash
}
