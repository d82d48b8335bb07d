package config

// Placeholder template contracts. Real deployments are configured in the
// networks file.
const (
	defaultBridgeToken    = "0xfFf9976782d46CC05630D1f6eBAb18b2324d6B14"
	defaultBridgeContract = "0x0000000000000000000000000000000000B71d9E"
	defaultSwapToken      = "0x4200000000000000000000000000000000000006"
	defaultSwapTokenOut   = "0x036CbD53842c5426634e7929541eC2318f3dCF7e"
	defaultSwapRouter     = "0x94cC0AaC535CCDB3C01d6787D6413C739ae12bc4"
)

// DefaultNetworks returns the built-in network pair.
func DefaultNetworks() *Networks {
	return &Networks{
		Bridge: &Network{
			ChainID:     11155111,
			Name:        "sepolia",
			RPCURL:      "https://ethereum-sepolia-rpc.publicnode.com",
			ExplorerURL: "https://sepolia.etherscan.io",
			Token:       defaultBridgeToken,
			Contract:    defaultBridgeContract,
			GasLimit:    300_000,
			Decimals:    18,
			AmountMin:   0.01,
			AmountMax:   0.05,
		},
		Swap: &Network{
			ChainID:     84532,
			Name:        "base-sepolia",
			RPCURL:      "https://sepolia.base.org",
			ExplorerURL: "https://sepolia.basescan.org",
			Token:       defaultSwapToken,
			Contract:    defaultSwapRouter,
			TokenOut:    defaultSwapTokenOut,
			PoolFee:     3000,
			GasLimit:    400_000,
			Decimals:    18,
			AmountMin:   0.005,
			AmountMax:   0.02,
		},
	}
}

// MergeNetwork fills every zero field of n from def.
func MergeNetwork(n, def *Network) *Network {
	if n == nil {
		cp := *def
		return &cp
	}
	out := *n
	if out.ChainID == 0 {
		out.ChainID = def.ChainID
	}
	if out.Name == "" {
		out.Name = def.Name
	}
	if out.RPCURL == "" {
		out.RPCURL = def.RPCURL
	}
	if out.ExplorerURL == "" {
		out.ExplorerURL = def.ExplorerURL
	}
	if out.Token == "" {
		out.Token = def.Token
	}
	if out.Contract == "" {
		out.Contract = def.Contract
	}
	if out.TokenOut == "" {
		out.TokenOut = def.TokenOut
	}
	if out.PoolFee == 0 {
		out.PoolFee = def.PoolFee
	}
	if out.GasLimit == 0 {
		out.GasLimit = def.GasLimit
	}
	if out.Decimals == 0 {
		out.Decimals = def.Decimals
	}
	if out.AmountMin == 0 {
		out.AmountMin = def.AmountMin
	}
	if out.AmountMax == 0 {
		out.AmountMax = def.AmountMax
	}
	return &out
}
