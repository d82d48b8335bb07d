package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/courier/internal/usecase"
)

type recordingSink struct {
	usecase.NopProgress
	events []usecase.ProgressEvent
}

func (s *recordingSink) OnProgress(_ context.Context, e usecase.ProgressEvent) {
	s.events = append(s.events, e)
}

func TestRefreshWallets(t *testing.T) {
	ctx := context.Background()
	cfg := testRuntimeConfig()
	network := cfg.Networks.Bridge
	proxies := []string{"http://p0:1", "http://p1:1"}

	rich := new(MockChainClient)
	rich.On("Address").Return(ownerAddr)
	rich.On("NativeBalance", mock.Anything).Return(big.NewInt(5e17), nil)
	rich.On("Close").Return()

	flaky := new(MockChainClient)
	flaky.On("Address").Return(common.HexToAddress("0x01"))
	flaky.On("NativeBalance", mock.Anything).Return(nil, errors.New("429 too many requests"))
	flaky.On("Close").Return()

	dialer := new(MockChainDialer)
	dialer.On("Dial", mock.Anything, network, testKey1, "http://p0:1").Return(rich, nil).Once()
	dialer.On("Dial", mock.Anything, network, testKey2, "http://p1:1").Return(flaky, nil).Once()
	dialer.On("Dial", mock.Anything, network, testKey1, "http://p0:1").Return(nil, errors.New("proxy unreachable")).Once()

	store := newMemAccounts(nil)
	loader := usecase.NewLoadAccounts(
		lineSource{lines: []string{testKey1, testKey2, "bogus", testKey1}},
		lineSource{lines: proxies},
		store, cfg, discardLogger())
	sink := &recordingSink{}

	result, err := usecase.NewRefreshWallets(cfg, loader, dialer, sink, discardLogger()).Run(ctx)
	require.NoError(t, err)

	require.Len(t, result.Wallets, 3)
	assert.Equal(t, 1, result.Dropped)
	assert.Equal(t, network, result.Network)

	assert.NoError(t, result.Wallets[0].Err)
	assert.Equal(t, big.NewInt(5e17), result.Wallets[0].Balance)
	assert.Equal(t, ownerAddr, result.Wallets[0].Address)
	assert.Equal(t, "http://p0:1", result.Wallets[0].Proxy)

	assert.ErrorContains(t, result.Wallets[1].Err, "429")
	assert.Equal(t, 0, result.Wallets[1].Balance.Sign())

	assert.ErrorContains(t, result.Wallets[2].Err, "proxy unreachable")
	assert.Equal(t, 0, result.Wallets[2].Balance.Sign())
	// address still derived from the key
	assert.Equal(t, ownerAddr, result.Wallets[2].Address)
	assert.Equal(t, 2, result.Wallets[2].Index)

	assert.Len(t, store.Snapshot().Accounts, 3)
	require.NotEmpty(t, sink.events)
	last := sink.events[len(sink.events)-1]
	assert.Equal(t, 3, last.Current)
	assert.Equal(t, 3, last.Total)

	rich.AssertCalled(t, "Close")
	flaky.AssertCalled(t, "Close")
	dialer.AssertExpectations(t)
}
