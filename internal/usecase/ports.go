package usecase

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/domain/config"
)

// LineSource reads a line-oriented text source. A missing source is
// reported with an error wrapping fs.ErrNotExist.
type LineSource interface {
	ReadLines(ctx context.Context) ([]string, error)
	Path() string
}

// SecretSource provides private key lines
type SecretSource interface {
	LineSource
}

// ProxySource provides proxy endpoint lines
type ProxySource interface {
	LineSource
}

// AccountRepository holds the accounts of the current session
type AccountRepository interface {
	Snapshot() domain.AccountSet
	Replace(set domain.AccountSet)
}

// ActivityConfigRepository manages activity configuration persistence
type ActivityConfigRepository interface {
	Exists() bool
	Load(ctx context.Context) (*domain.ActivityConfig, error)
	Save(ctx context.Context, cfg *domain.ActivityConfig) error
	GetPath() string
}

// ChainDialer opens a client for one account on one network
type ChainDialer interface {
	Dial(ctx context.Context, network *config.Network, secret string, proxy string) (ChainClient, error)
}

// ChainClient is an account-bound RPC client
type ChainClient interface {
	Address() common.Address
	NativeBalance(ctx context.Context) (*big.Int, error)
	PendingNonce(ctx context.Context) (uint64, error)
	FeeData(ctx context.Context) (*domain.FeeData, error)
	Allowance(ctx context.Context, token, spender common.Address) (*big.Int, error)
	Submit(ctx context.Context, req domain.TxRequest) (domain.TxHandle, error)
	WaitForConfirmation(ctx context.Context, handle domain.TxHandle) (*domain.TxReceipt, error)
	Close()
}

// Randomizer draws amounts and delays. Implementations are seedable so
// tests can make runs deterministic.
type Randomizer interface {
	Float64Between(min, max float64) float64
	DurationBetween(min, max time.Duration) time.Duration
}

// Clock tells time and sleeps. Sleep returns ctx.Err() when ctx is done
// before d elapses.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// LogStore is the bounded in-memory log
type LogStore interface {
	Entries() []domain.LogEntry
	Clear()
}

// Action is one executor the activity runner repeats per account
type Action interface {
	Name() string
	Execute(ctx context.Context, account domain.Account, proxy string) bool
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
