package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/domain/config"
	"github.com/trebuchet-org/courier/internal/usecase"
)

// DialerAdapter opens account-bound clients, one per account and network
type DialerAdapter struct {
	timeout  time.Duration
	interval time.Duration
	log      *slog.Logger
}

// NewDialerAdapter creates a new DialerAdapter
func NewDialerAdapter(log *slog.Logger) *DialerAdapter {
	return &DialerAdapter{
		timeout:  DefaultRequestTimeout,
		interval: time.Second,
		log:      log,
	}
}

// Dial connects to network through proxy and binds the client to the
// account of secret. The endpoint's chain ID must match the network's.
func (d *DialerAdapter) Dial(ctx context.Context, network *config.Network, secret string, proxy string) (usecase.ChainClient, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(secret), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSecret, err)
	}

	hc, err := NewHTTPClient(proxy, d.timeout)
	if err != nil {
		return nil, err
	}
	rc, err := rpc.DialOptions(ctx, network.RPCURL, rpc.WithHTTPClient(hc))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	client := ethclient.NewClient(rc)

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if network.ChainID != 0 && chainID.Uint64() != network.ChainID {
		client.Close()
		return nil, fmt.Errorf("%w: expected %d, got %d", domain.ErrInvalidChainID, network.ChainID, chainID.Uint64())
	}

	return &ClientAdapter{
		client:   client,
		key:      key,
		address:  crypto.PubkeyToAddress(key.PublicKey),
		chainID:  chainID,
		network:  network.Name,
		interval: d.interval,
		log:      d.log,
	}, nil
}

var _ usecase.ChainDialer = (*DialerAdapter)(nil)
