package usecase_test

import (
	"context"
	"log/slog"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/domain/config"
	"github.com/trebuchet-org/courier/internal/usecase"
)

const (
	testKey1 = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	testKey2 = "0x8da4ef21b864d2cc526dbdb2a120bd2874c36c9d0a1fb7f8c63d7f7a8b41de8f"
)

// MockChainClient is a mock implementation of ChainClient
type MockChainClient struct {
	mock.Mock
}

func (m *MockChainClient) Address() common.Address {
	args := m.Called()
	return args.Get(0).(common.Address)
}

func (m *MockChainClient) NativeBalance(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockChainClient) PendingNonce(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	if fn, ok := args.Get(0).(func(context.Context) uint64); ok {
		return fn(ctx), args.Error(1)
	}
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockChainClient) FeeData(ctx context.Context) (*domain.FeeData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeeData), args.Error(1)
}

func (m *MockChainClient) Allowance(ctx context.Context, token, spender common.Address) (*big.Int, error) {
	args := m.Called(ctx, token, spender)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockChainClient) Submit(ctx context.Context, req domain.TxRequest) (domain.TxHandle, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.TxHandle), args.Error(1)
}

func (m *MockChainClient) WaitForConfirmation(ctx context.Context, handle domain.TxHandle) (*domain.TxReceipt, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TxReceipt), args.Error(1)
}

func (m *MockChainClient) Close() {
	m.Called()
}

// MockChainDialer is a mock implementation of ChainDialer
type MockChainDialer struct {
	mock.Mock
}

func (m *MockChainDialer) Dial(ctx context.Context, network *config.Network, secret string, proxy string) (usecase.ChainClient, error) {
	args := m.Called(ctx, network, secret, proxy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.ChainClient), args.Error(1)
}

// fixedRandom always draws the lower bound
type fixedRandom struct{}

func (fixedRandom) Float64Between(min, _ float64) float64              { return min }
func (fixedRandom) DurationBetween(min, _ time.Duration) time.Duration { return min }

// fakeClock sleeps instantly and records every requested duration
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

func (c *fakeClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

// memAccounts is an in-memory AccountRepository
type memAccounts struct {
	mu  sync.Mutex
	set domain.AccountSet
}

func newMemAccounts(proxies []string, secrets ...string) *memAccounts {
	accounts := make([]domain.Account, len(secrets))
	for i, s := range secrets {
		accounts[i] = domain.Account{PrivateKey: s, Index: i}
	}
	return &memAccounts{set: domain.AccountSet{Accounts: accounts, Proxies: proxies}}
}

func (m *memAccounts) Snapshot() domain.AccountSet {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.set
}

func (m *memAccounts) Replace(set domain.AccountSet) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set = set
}

// memConfigStore is an in-memory ActivityConfigRepository
type memConfigStore struct {
	cfg     *domain.ActivityConfig
	loadErr error
	saveErr error
	saved   int
}

func (m *memConfigStore) Exists() bool { return m.cfg != nil }

func (m *memConfigStore) Load(context.Context) (*domain.ActivityConfig, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.cfg == nil {
		return domain.DefaultActivityConfig(), nil
	}
	cp := *m.cfg
	return &cp, nil
}

func (m *memConfigStore) Save(_ context.Context, cfg *domain.ActivityConfig) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	cp := *cfg
	m.cfg = &cp
	m.saved++
	return nil
}

func (m *memConfigStore) GetPath() string { return "/tmp/courier/activity.json" }

// lineSource is a fixed LineSource
type lineSource struct {
	lines []string
	err   error
	path  string
}

func (s lineSource) ReadLines(context.Context) ([]string, error) { return s.lines, s.err }
func (s lineSource) Path() string                                { return s.path }

// call is one recorded executor invocation
type call struct {
	Action  string
	Account int
	Proxy   string
}

// callLog records executor invocations across actions
type callLog struct {
	mu    sync.Mutex
	calls []call
}

func (l *callLog) add(c call) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, c)
}

func (l *callLog) All() []call {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]call(nil), l.calls...)
}

// recordingAction records its invocations and returns result. hook, when
// set, runs inside Execute before returning.
type recordingAction struct {
	name   string
	log    *callLog
	result bool
	hook   func(call)
}

func (a *recordingAction) Name() string { return a.name }

func (a *recordingAction) Execute(_ context.Context, account domain.Account, proxy string) bool {
	c := call{Action: a.name, Account: account.Index, Proxy: proxy}
	a.log.add(c)
	if a.hook != nil {
		a.hook(c)
	}
	return a.result
}

// recordHandler collects log records for assertions
type recordHandler struct {
	mu      *sync.Mutex
	records *[]slog.Record
}

func newRecordLogger() (*slog.Logger, *recordHandler) {
	h := &recordHandler{mu: &sync.Mutex{}, records: &[]slog.Record{}}
	return slog.New(h), h
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	*h.records = append(*h.records, r.Clone())
	return nil
}

func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(string) slog.Handler      { return h }

// Count returns how many records contain msg.
func (h *recordHandler) Count(msg string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range *h.records {
		if strings.Contains(r.Message, msg) {
			n++
		}
	}
	return n
}

// Attr returns the value of key on the first record containing msg.
func (h *recordHandler) Attr(msg, key string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range *h.records {
		if !strings.Contains(r.Message, msg) {
			continue
		}
		var (
			value string
			found bool
		)
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == key {
				value, found = a.Value.String(), true
				return false
			}
			return true
		})
		return value, found
	}
	return "", false
}

func testRuntimeConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		SecretPolicy:    domain.SecretPolicyStrict,
		BridgeAllowance: domain.AllowanceEnsure,
		SwapAllowance:   domain.AllowanceSkip,
		Pacing:          domain.DefaultPacing(),
		Networks:        config.DefaultNetworks(),
	}
}
