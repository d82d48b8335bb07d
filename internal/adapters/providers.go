package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/courier/internal/adapters/blockchain"
	"github.com/trebuchet-org/courier/internal/adapters/clock"
	"github.com/trebuchet-org/courier/internal/adapters/fs"
	"github.com/trebuchet-org/courier/internal/adapters/logbuffer"
	"github.com/trebuchet-org/courier/internal/adapters/memory"
	"github.com/trebuchet-org/courier/internal/adapters/random"
	"github.com/trebuchet-org/courier/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewSecretFileAdapter,
	wire.Bind(new(usecase.SecretSource), new(*fs.SecretFileAdapter)),

	fs.NewProxyFileAdapter,
	wire.Bind(new(usecase.ProxySource), new(*fs.ProxyFileAdapter)),

	fs.NewActivityConfigStoreAdapter,
	wire.Bind(new(usecase.ActivityConfigRepository), new(*fs.ActivityConfigStoreAdapter)),
)

// MemorySet provides session state held in memory
var MemorySet = wire.NewSet(
	memory.NewAccountStore,
	wire.Bind(new(usecase.AccountRepository), new(*memory.AccountStore)),

	logbuffer.NewFromConfig,
	wire.Bind(new(usecase.LogStore), new(*logbuffer.Buffer)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewDialerAdapter,
	wire.Bind(new(usecase.ChainDialer), new(*blockchain.DialerAdapter)),
)

// RuntimeSet provides time and randomness
var RuntimeSet = wire.NewSet(
	clock.NewReal,
	wire.Bind(new(usecase.Clock), new(*clock.Real)),

	random.NewSource,
	wire.Bind(new(usecase.Randomizer), new(*random.Source)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	MemorySet,
	BlockchainSet,
	RuntimeSet,
)
